package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentadmin/internal/errors"
	"rentadmin/internal/models"
	"rentadmin/internal/pagination"
	"rentadmin/internal/services"
)

// ListingHandler handles listing moderation requests
type ListingHandler struct {
	listingService services.ListingServicer
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(listingService services.ListingServicer) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// ListQuery represents the query parameters for listing reads
type ListQuery struct {
	pagination.PageRequest
	Status string `form:"status" binding:"omitempty,listing_status"`
}

// CreateListingRequest represents the request payload for creating a listing
type CreateListingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,listing_status"`
}

// UpdateListingRequest represents the request payload for a partial update.
// Absent fields keep the listing's prior value.
type UpdateListingRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,listing_status"`
}

// List handles the paginated listing read
// @Summary     List listings
// @Description Get a page of listings, optionally filtered by status
// @Tags        listings
// @Produce     json
// @Param       page query int false "Page number (default 1)"
// @Param       pageSize query int false "Page size (default 10, max 100)"
// @Param       status query string false "Filter by status (pending/approved/rejected)"
// @Success     200 {object} map[string]interface{} "Listings page"
// @Failure     400 {object} ErrorResponse "Invalid paging or status"
// @Router      /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	query.Defaults()

	var status *models.ListingStatus
	if query.Status != "" {
		s := models.ListingStatus(query.Status)
		status = &s
	}

	listings, total, err := h.listingService.List(query.PageRequest, status)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}

	c.JSON(http.StatusOK, gin.H{
		"listings": listings,
		"total":    total,
		"page":     query.Page,
		"pageSize": query.PageSize,
	})
}

// Get handles the retrieval of a single listing
// @Summary     Get listing by ID
// @Tags        listings
// @Produce     json
// @Param       id path int true "Listing ID"
// @Success     200 {object} map[string]interface{} "Listing"
// @Failure     404 {object} ErrorResponse "Listing not found"
// @Router      /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, apperrors.ErrListingNotFound)
		return
	}

	listing, err := h.listingService.Get(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// Create handles the creation of a new listing
// @Summary     Create a listing
// @Tags        listings
// @Accept      json
// @Produce     json
// @Param       request body CreateListingRequest true "Listing details"
// @Success     200 {object} map[string]interface{} "Listing created"
// @Failure     400 {object} ErrorResponse "Missing title or invalid status"
// @Router      /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	listing, err := h.listingService.Create(req.Title, req.Description, models.ListingStatus(req.Status))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// Update handles a partial listing update with conditional audit logging
// @Summary     Update a listing
// @Description Apply the supplied fields; a status change is audited
// @Tags        listings
// @Accept      json
// @Produce     json
// @Param       id path int true "Listing ID"
// @Param       request body UpdateListingRequest true "Fields to update"
// @Success     200 {object} map[string]interface{} "Updated listing"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Listing not found"
// @Router      /listings/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, apperrors.ErrListingNotFound)
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.ListingPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		s := models.ListingStatus(*req.Status)
		patch.Status = &s
	}

	listing, err := h.listingService.Update(id, patch, getActor(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// Delete handles the removal of a listing
// @Summary     Delete a listing
// @Tags        listings
// @Produce     json
// @Param       id path int true "Listing ID"
// @Success     200 {object} map[string]bool "Listing removed"
// @Failure     404 {object} ErrorResponse "Listing not found"
// @Router      /listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, apperrors.ErrListingNotFound)
		return
	}

	if err := h.listingService.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
