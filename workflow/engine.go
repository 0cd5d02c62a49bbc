// Package workflow holds the stage state machine for scholarship applications.
// Every function here is pure: it takes an aggregate by value and returns the
// aggregate that should be written, or an error before anything changes.
package workflow

import (
	"time"

	"scholarhub/apperror"
	"scholarhub/models"

	"gorm.io/datatypes"
)

// Decision is an admin verdict on the current stage
type Decision struct {
	ReviewerID string
	Passed     bool
	Notes      *string
	At         time.Time
}

// Outcome is reported back to the reviewer
type Outcome struct {
	NewStatus models.ApplicationStatus `json:"newStatus"`
	NewStage  models.Stage             `json:"newStage"`
}

// NewApplication builds the initial aggregate: essay stage, in progress, nothing reviewed.
func NewApplication(id, userID, scholarshipID string, snapshot models.EligibilitySnapshot, now time.Time) models.Application {
	now = now.UTC()
	return models.Application{
		ID:                  id,
		UserID:              userID,
		ScholarshipID:       scholarshipID,
		Status:              models.StatusInProgress,
		CurrentStage:        models.StageEssay,
		EligibilitySnapshot: snapshot,
		Stages:              datatypes.NewJSONType(models.NewStages()),
		AdminAudit:          datatypes.NewJSONType[*models.AdminAudit](nil),
		Version:             1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// ApproveStage applies d to the current stage of app.
func ApproveStage(app models.Application, d Decision) (models.Application, Outcome, error) {
	if app.Status.IsTerminal() {
		return app, Outcome{}, apperror.New(apperror.InvalidState, "application is already "+string(app.Status))
	}

	stages := app.Stages.Data()
	record, err := stages.Record(app.CurrentStage)
	if err != nil {
		return app, Outcome{}, apperror.Wrap(apperror.Internal, "application has an unknown current stage", err)
	}

	review := record.ReviewState()
	if review.AdminReviewed {
		return app, Outcome{}, apperror.New(apperror.InvalidState, "stage already reviewed")
	}
	if !record.StudentDone() {
		return app, Outcome{}, apperror.New(apperror.InvalidState, "stage not yet completed by student")
	}

	at := d.At.UTC()
	review.AdminReviewed = true
	review.Passed = d.Passed
	review.ReviewerNotes = d.Notes
	review.ReviewedAt = &at

	next := app
	next.AdminAudit = datatypes.NewJSONType(&models.AdminAudit{
		LastApprovedBy: d.ReviewerID,
		LastApprovedAt: at,
		Notes:          d.Notes,
	})

	if !d.Passed {
		next.Status = models.StatusRejected
	} else if following, ok := app.CurrentStage.Next(); ok {
		next.Status = passedStatus(app.CurrentStage)
		next.CurrentStage = following
	} else {
		next.Status = finalStatus(stages.Interview)
		stages.Interview.Status = models.InterviewApproved
	}

	next.Stages = datatypes.NewJSONType(stages)
	return next, Outcome{NewStatus: next.Status, NewStage: next.CurrentStage}, nil
}

func passedStatus(stage models.Stage) models.ApplicationStatus {
	switch stage {
	case models.StageEssay:
		return models.StatusEssayPassed
	case models.StageGroup:
		return models.StatusGroupPassed
	default:
		return models.StatusInProgress
	}
}

// finalStatus is accepted when an interview was actually held, completed otherwise.
func finalStatus(interview models.InterviewStage) models.ApplicationStatus {
	switch interview.Status {
	case models.InterviewScheduled, models.InterviewCompleted:
		return models.StatusAccepted
	default:
		return models.StatusCompleted
	}
}

// PendingReview reports whether an admin can act on app right now.
func PendingReview(app models.Application) bool {
	if app.Status.IsTerminal() {
		return false
	}
	stages := app.Stages.Data()
	record, err := stages.Record(app.CurrentStage)
	if err != nil {
		return false
	}
	return record.StudentDone() && !record.ReviewState().AdminReviewed
}
