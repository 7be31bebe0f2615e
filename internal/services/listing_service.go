package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "rentadmin/internal/errors"
	"rentadmin/internal/models"
	"rentadmin/internal/pagination"
)

// listingService handles listing moderation business logic.
type listingService struct {
	db    *gorm.DB
	audit AuditServicer
}

// NewListingService creates a new ListingServicer.
func NewListingService(db *gorm.DB, audit AuditServicer) ListingServicer {
	return &listingService{db: db, audit: audit}
}

// List retrieves a page of listings ordered by id ascending, plus the
// total count matching the status filter (or all listings if unset).
func (s *listingService) List(page pagination.PageRequest, status *models.ListingStatus) ([]models.Listing, int64, error) {
	page.Defaults()

	base := s.db.Model(&models.Listing{})
	if status != nil {
		if !status.Valid() {
			return nil, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status filter")
		}
		base = base.Where("status = ?", *status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var listings []models.Listing
	if err := base.Order("id ASC").Scopes(pagination.Paginate(page)).Find(&listings).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return listings, total, nil
}

// Get retrieves a listing by ID
func (s *listingService) Get(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &listing, nil
}

// Create inserts a new listing. Status defaults to pending when empty.
func (s *listingService) Create(title, description string, status models.ListingStatus) (*models.Listing, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}

	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status")
	}

	listing := &models.Listing{
		Title:       title,
		Description: description,
		Status:      status,
	}

	if err := s.db.Create(listing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return listing, nil
}

// Update applies the supplied fields to a listing and, when anything
// changed, appends an audit entry in the same transaction. Unset fields
// keep their prior value; an update that changes nothing records nothing.
func (s *listingService) Update(id uint, patch ListingPatch, actor string) (*models.Listing, error) {
	var listing models.Listing

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&listing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrListingNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		prev := listing.Status
		updates := make(map[string]interface{})

		if patch.Title != nil {
			if *patch.Title == "" {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "title cannot be empty")
			}
			if *patch.Title != listing.Title {
				updates["title"] = *patch.Title
			}
		}
		if patch.Description != nil && *patch.Description != listing.Description {
			updates["description"] = *patch.Description
		}

		next := prev
		if patch.Status != nil {
			if !patch.Status.Valid() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status")
			}
			if *patch.Status != listing.Status {
				updates["status"] = *patch.Status
				next = *patch.Status
			}
		}

		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&listing).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := s.audit.Record(tx, listing.ID, prev, next, actor); err != nil {
			return err
		}

		// Reload so the caller sees the refreshed updated_at.
		if err := tx.First(&listing, id).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

// Delete removes a listing. Audit entries referencing it are kept.
func (s *listingService) Delete(id uint) error {
	result := s.db.Delete(&models.Listing{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrListingNotFound
	}
	return nil
}
