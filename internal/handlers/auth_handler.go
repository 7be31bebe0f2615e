package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentadmin/internal/errors"
	"rentadmin/internal/middleware"
	"rentadmin/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService services.AuthServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthServicer) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles operator login
// @Summary     Login
// @Description Authenticate the operator and set the session cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Operator credentials"
// @Success     200 {object} map[string]bool "Session cookie set"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.authService.VerifyCredentials(req.Username, req.Password); err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.IssueSessionToken(req.Username)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	middleware.SetSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout handles operator logout
// @Summary     Logout
// @Description Clear the session cookie
// @Tags        auth
// @Produce     json
// @Success     200 {object} map[string]bool "Session cookie cleared"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
