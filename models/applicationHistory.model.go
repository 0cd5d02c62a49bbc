package models

import (
	"time"

	"gorm.io/datatypes"
)

// HistoryAction enum values
const (
	ActionStarted            = "STARTED"
	ActionDraftSaved         = "DRAFT_SAVED"
	ActionEssaySubmitted     = "ESSAY_SUBMITTED"
	ActionGroupCompleted     = "GROUP_COMPLETED"
	ActionInterviewScheduled = "INTERVIEW_SCHEDULED"
	ActionInterviewCompleted = "INTERVIEW_COMPLETED"
	ActionAIAssisted         = "AI_ASSISTED"
	ActionStageApproved      = "STAGE_APPROVED"
	ActionStageRejected      = "STAGE_REJECTED"
)

// ActorType enum values
const (
	ActorStudent = "STUDENT"
	ActorAdmin   = "ADMIN"
	ActorSystem  = "SYSTEM"
)

// ApplicationHistory is the audit log for all application actions
type ApplicationHistory struct {
	ID            string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ApplicationID string         `gorm:"not null;type:varchar(36);index" json:"applicationId"`
	Action        string         `gorm:"not null;type:varchar(30)" json:"action"`
	Stage         Stage          `gorm:"type:varchar(20)" json:"stage"`
	ActorID       string         `gorm:"not null;type:varchar(128)" json:"actorId"`
	ActorType     string         `gorm:"not null;type:varchar(10)" json:"actorType"`
	Notes         string         `gorm:"type:text" json:"notes"`
	Metadata      datatypes.JSON `json:"metadata"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func (ApplicationHistory) TableName() string {
	return "application_history"
}
