package services

import (
	"gorm.io/gorm"

	apperrors "rentadmin/internal/errors"
	"rentadmin/internal/models"
)

// auditService handles audit trail recording and reads.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Record appends an audit entry for a listing update. The action label is
// derived from the status transition: a changed status maps to approve,
// reject, or pending; an unchanged status means a field-only edit. The
// entry is created on tx, so a failed append rolls the update back.
func (s *auditService) Record(tx *gorm.DB, listingID uint, prevStatus, newStatus models.ListingStatus, actor string) error {
	action := models.ActionEdit
	if newStatus != prevStatus {
		switch newStatus {
		case models.StatusApproved:
			action = models.ActionApprove
		case models.StatusRejected:
			action = models.ActionReject
		case models.StatusPending:
			action = models.ActionPending
		}
	}

	entry := &models.AuditLog{
		ListingID: listingID,
		Action:    action,
		Admin:     actor,
	}

	if err := tx.Create(entry).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// List returns the full audit trail, newest first.
func (s *auditService) List() ([]models.AuditLog, error) {
	var logs []models.AuditLog
	if err := s.db.Order("timestamp DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return logs, nil
}
