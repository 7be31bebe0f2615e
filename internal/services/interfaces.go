package services

import (
	"gorm.io/gorm"

	"rentadmin/internal/models"
	"rentadmin/internal/pagination"
)

// ListingPatch holds the optional fields of a partial listing update.
// A nil field keeps the listing's prior value.
type ListingPatch struct {
	Title       *string
	Description *string
	Status      *models.ListingStatus
}

// ListingServicer defines the contract for listing moderation logic.
type ListingServicer interface {
	List(page pagination.PageRequest, status *models.ListingStatus) ([]models.Listing, int64, error)
	Get(id uint) (*models.Listing, error)
	Create(title, description string, status models.ListingStatus) (*models.Listing, error)
	Update(id uint, patch ListingPatch, actor string) (*models.Listing, error)
	Delete(id uint) error
}

// AuditServicer defines the contract for the audit trail.
type AuditServicer interface {
	// Record appends an audit entry on tx so the caller's update and the
	// entry commit or roll back together.
	Record(tx *gorm.DB, listingID uint, prevStatus, newStatus models.ListingStatus, actor string) error
	List() ([]models.AuditLog, error)
}

// AuthServicer defines the contract for operator credential checks.
type AuthServicer interface {
	VerifyCredentials(username, password string) error
}
