package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"rentadmin/internal/models"

	"gorm.io/gorm"
)

var fixtureCounter atomic.Int64

// CreateTestListing inserts a listing with a unique title and the given status.
func CreateTestListing(t *testing.T, db *gorm.DB, status models.ListingStatus) *models.Listing {
	t.Helper()

	n := fixtureCounter.Add(1)
	listing := &models.Listing{
		Title:       fmt.Sprintf("Test Car %d", n),
		Description: "A test listing.",
		Status:      status,
	}
	if err := db.Create(listing).Error; err != nil {
		t.Fatalf("failed to create test listing: %v", err)
	}
	return listing
}

// CountAuditEntries returns the number of audit entries for a listing.
func CountAuditEntries(t *testing.T, db *gorm.DB, listingID uint) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.AuditLog{}).Where("listing_id = ?", listingID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count audit entries: %v", err)
	}
	return count
}
