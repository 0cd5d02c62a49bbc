package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Stage is one ordered phase of review
type Stage string

const (
	StageEssay     Stage = "essay"
	StageGroup     Stage = "group"
	StageInterview Stage = "interview"
)

// StageOrder is the only order an application may move through
var StageOrder = []Stage{StageEssay, StageGroup, StageInterview}

// Index returns the position of s in StageOrder, or -1
func (s Stage) Index() int {
	for i, stage := range StageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

// Next returns the stage after s and false when s is the last stage
func (s Stage) Next() (Stage, bool) {
	i := s.Index()
	if i < 0 || i+1 >= len(StageOrder) {
		return "", false
	}
	return StageOrder[i+1], true
}

func (s Stage) Valid() bool {
	return s.Index() >= 0
}

// ApplicationStatus enum values
type ApplicationStatus string

const (
	StatusInProgress  ApplicationStatus = "in_progress"
	StatusEssayPassed ApplicationStatus = "essay_passed"
	StatusGroupPassed ApplicationStatus = "group_passed"
	StatusAccepted    ApplicationStatus = "accepted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusCompleted   ApplicationStatus = "completed"
)

func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusCompleted
}

// InterviewStatus enum values
type InterviewStatus string

const (
	InterviewPending   InterviewStatus = "pending"
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewApproved  InterviewStatus = "approved"
)

// AIHistoryEntry records one AI assistance exchange for a stage
type AIHistoryEntry struct {
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"createdAt"`
}

// Review is the admin-owned part of every stage. Once AdminReviewed is true it is never reset.
type Review struct {
	AdminReviewed bool       `json:"adminReviewed"`
	Passed        bool       `json:"passed"`
	ReviewerNotes *string    `json:"reviewerNotes"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
}

type EssayStage struct {
	Review
	Draft       string           `json:"draft"`
	Submitted   bool             `json:"submitted"`
	SubmittedAt *time.Time       `json:"submittedAt,omitempty"`
	AIUsed      bool             `json:"aiUsed"`
	AIHistory   []AIHistoryEntry `json:"aiHistory"`
}

type GroupStage struct {
	Review
	StudentCompleted  bool             `json:"studentCompleted"`
	CompletedAt       *time.Time       `json:"completedAt,omitempty"`
	AIPreparationUsed bool             `json:"aiPreparationUsed"`
	AIHistory         []AIHistoryEntry `json:"aiHistory"`
}

type InterviewStage struct {
	Review
	Status                 InterviewStatus  `json:"status"`
	StudentCompleted       bool             `json:"studentCompleted"`
	CompletedAt            *time.Time       `json:"completedAt,omitempty"`
	AIPreparationGenerated bool             `json:"aiPreparationGenerated"`
	AIHistory              []AIHistoryEntry `json:"aiHistory"`
	Interviewer            string           `json:"interviewer"`
	ScheduledAt            *time.Time       `json:"scheduledAt"`
	ReflectionNotes        string           `json:"reflectionNotes"`
}

// StageRecord is the common view over the three stage documents
type StageRecord interface {
	Stage() Stage
	// StudentDone reports whether the student has finished their part of the stage.
	StudentDone() bool
	ReviewState() *Review
	AddAIEntry(entry AIHistoryEntry)
}

func (s *EssayStage) Stage() Stage { return StageEssay }
func (s *EssayStage) StudentDone() bool { return s.Submitted }
func (s *EssayStage) ReviewState() *Review { return &s.Review }
func (s *EssayStage) AddAIEntry(entry AIHistoryEntry) {
	s.AIUsed = true
	s.AIHistory = appendEntry(s.AIHistory, entry)
}

func (s *GroupStage) Stage() Stage { return StageGroup }
func (s *GroupStage) StudentDone() bool { return s.StudentCompleted }
func (s *GroupStage) ReviewState() *Review { return &s.Review }
func (s *GroupStage) AddAIEntry(entry AIHistoryEntry) {
	s.AIPreparationUsed = true
	s.AIHistory = appendEntry(s.AIHistory, entry)
}

func (s *InterviewStage) Stage() Stage { return StageInterview }
func (s *InterviewStage) StudentDone() bool { return s.StudentCompleted }
func (s *InterviewStage) ReviewState() *Review { return &s.Review }
func (s *InterviewStage) AddAIEntry(entry AIHistoryEntry) {
	s.AIPreparationGenerated = true
	s.AIHistory = appendEntry(s.AIHistory, entry)
}

// appendEntry never writes into a backing array shared with another copy of the stages.
func appendEntry(history []AIHistoryEntry, entry AIHistoryEntry) []AIHistoryEntry {
	out := make([]AIHistoryEntry, 0, len(history)+1)
	out = append(out, history...)
	return append(out, entry)
}

// Stages holds one sub-document per stage
type Stages struct {
	Essay     EssayStage     `json:"essay"`
	Group     GroupStage     `json:"group"`
	Interview InterviewStage `json:"interview"`
}

func NewStages() Stages {
	return Stages{
		Essay:     EssayStage{AIHistory: []AIHistoryEntry{}},
		Group:     GroupStage{AIHistory: []AIHistoryEntry{}},
		Interview: InterviewStage{Status: InterviewPending, AIHistory: []AIHistoryEntry{}},
	}
}

// Record returns the stage document for stage. Every stage in StageOrder must have a case here.
func (s *Stages) Record(stage Stage) (StageRecord, error) {
	switch stage {
	case StageEssay:
		return &s.Essay, nil
	case StageGroup:
		return &s.Group, nil
	case StageInterview:
		return &s.Interview, nil
	default:
		return nil, fmt.Errorf("unknown stage %q", stage)
	}
}

// EligibilitySnapshot is frozen at application creation and never recomputed
type EligibilitySnapshot struct {
	MeetsGradeRequirement bool      `json:"meetsGradeRequirement"`
	CheckedAt             time.Time `json:"checkedAt"`
}

// AdminAudit is overwritten on every admin review action
type AdminAudit struct {
	LastApprovedBy string    `json:"lastApprovedBy"`
	LastApprovedAt time.Time `json:"lastApprovedAt"`
	Notes          *string   `json:"notes"`
}

// Application is the aggregate for one (student, scholarship) pair.
// Version is bumped on every write and guards compare-and-swap updates.
type Application struct {
	ID                  string                          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID              string                          `gorm:"not null;type:varchar(128);uniqueIndex:idx_application_user_scholarship" json:"userId"`
	ScholarshipID       string                          `gorm:"not null;type:varchar(64);uniqueIndex:idx_application_user_scholarship;index" json:"scholarshipId"`
	Status              ApplicationStatus               `gorm:"not null;type:varchar(20);index" json:"status"`
	CurrentStage        Stage                           `gorm:"not null;type:varchar(20)" json:"currentStage"`
	EligibilitySnapshot EligibilitySnapshot             `gorm:"embedded;embeddedPrefix:eligibility_" json:"eligibilitySnapshot"`
	Stages              datatypes.JSONType[Stages]      `json:"stages"`
	AdminAudit          datatypes.JSONType[*AdminAudit] `json:"adminAudit"`
	Version             int                             `gorm:"not null;default:1" json:"version"`
	CreatedAt           time.Time                       `json:"createdAt"`
	UpdatedAt           time.Time                       `json:"updatedAt"`
}

func (Application) TableName() string {
	return "applications"
}
