package models

import "time"

// AuditAction labels the kind of change recorded in the audit trail.
type AuditAction string

const (
	ActionEdit    AuditAction = "edit"
	ActionApprove AuditAction = "approve"
	ActionReject  AuditAction = "reject"
	ActionPending AuditAction = "pending"
)

// AuditLog records a moderation action taken on a listing. Entries are
// append-only; they reference listings by id only, so they survive the
// deletion of the listing they describe.
type AuditLog struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	ListingID uint        `gorm:"not null;index" json:"listing_id"`
	Action    AuditAction `gorm:"not null" json:"action"`
	Admin     string      `gorm:"not null" json:"admin"`
	Timestamp time.Time   `gorm:"autoCreateTime;index" json:"timestamp"`
}
