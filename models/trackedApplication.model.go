package models

import (
	"time"

	"gorm.io/datatypes"
)

// ChecklistItem is one requirement a student ticks off before the deadline
type ChecklistItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// TrackedApplication is a lightweight bookmark of a scholarship with a checklist.
// It is not part of the review workflow and may be deleted at any time.
type TrackedApplication struct {
	ID            string                              `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID        string                              `gorm:"not null;type:varchar(128);uniqueIndex:idx_tracked_user_scholarship" json:"userId"`
	ScholarshipID string                              `gorm:"not null;type:varchar(64);uniqueIndex:idx_tracked_user_scholarship" json:"scholarshipId"`
	Title         string                              `json:"title"`
	Deadline      time.Time                           `json:"deadline"`
	Checklist     datatypes.JSONType[[]ChecklistItem] `json:"checklist"`
	CreatedAt     time.Time                           `json:"createdAt"`
	UpdatedAt     time.Time                           `json:"updatedAt"`
}

func (TrackedApplication) TableName() string {
	return "tracked_applications"
}
