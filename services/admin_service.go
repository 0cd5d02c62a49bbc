package services

import (
	"context"
	"strings"
	"time"

	"scholarhub/apperror"
	"scholarhub/metrics"
	"scholarhub/models"
	"scholarhub/workflow"

	"github.com/sirupsen/logrus"
)

// AdminService runs the reviewer side of the workflow. Every method starts with the role gate.
type AdminService struct {
	gate         *RoleGate
	apps         ApplicationStore
	scholarships ScholarshipStore
	history      HistoryStore
	log          *logrus.Logger
	now          func() time.Time
}

func NewAdminService(gate *RoleGate, apps ApplicationStore, scholarships ScholarshipStore, history HistoryStore, log *logrus.Logger, now func() time.Time) *AdminService {
	return &AdminService{gate: gate, apps: apps, scholarships: scholarships, history: history, log: log, now: now}
}

type ApprovalResult struct {
	Success bool `json:"success"`
	workflow.Outcome
}

// ApproveStage records an admin verdict on the application's current stage. Checks run in
// order: role, existence, terminal status, already reviewed, student completion.
func (s *AdminService) ApproveStage(ctx context.Context, callerUID, applicationID string, passed bool, notes *string) (*ApprovalResult, error) {
	if _, err := s.gate.RequireAdmin(ctx, callerUID); err != nil {
		return nil, err
	}
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	stage := app.CurrentStage
	now := s.now()
	next, outcome, err := workflow.ApproveStage(*app, workflow.Decision{
		ReviewerID: callerUID,
		Passed:     passed,
		Notes:      normalizeNotes(notes),
		At:         now,
	})
	if err != nil {
		metrics.StageReviews.WithLabelValues(string(stage), "refused").Inc()
		return nil, err
	}

	if err := s.apps.CompareAndSwap(ctx, &next, app.Version); err != nil {
		if apperror.Is(err, apperror.Conflict) {
			metrics.WriteConflicts.WithLabelValues("approve_stage").Inc()
			return nil, apperror.Wrap(apperror.InvalidState, "application changed while it was being reviewed", err)
		}
		return nil, err
	}

	action, label := models.ActionStageApproved, "passed"
	if !passed {
		action, label = models.ActionStageRejected, "rejected"
	}
	metrics.StageReviews.WithLabelValues(string(stage), label).Inc()

	notesText := ""
	if n := normalizeNotes(notes); n != nil {
		notesText = *n
	}
	recordHistory(ctx, s.history, s.log, models.ApplicationHistory{
		ApplicationID: next.ID,
		Action:        action,
		Stage:         stage,
		ActorID:       callerUID,
		ActorType:     models.ActorAdmin,
		Notes:         notesText,
	}, map[string]interface{}{"newStatus": outcome.NewStatus, "newStage": outcome.NewStage}, now)

	s.log.WithFields(logrus.Fields{
		"application_id": next.ID,
		"stage":          stage,
		"actor":          callerUID,
		"outcome":        label,
		"new_status":     outcome.NewStatus,
	}).Info("stage reviewed")

	return &ApprovalResult{Success: true, Outcome: outcome}, nil
}

func (s *AdminService) ScheduleInterview(ctx context.Context, callerUID, applicationID, interviewer string, scheduledAt time.Time) (*models.Application, error) {
	if _, err := s.gate.RequireAdmin(ctx, callerUID); err != nil {
		return nil, err
	}
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	next, err := workflow.ScheduleInterview(*app, strings.TrimSpace(interviewer), scheduledAt)
	if err != nil {
		return nil, err
	}
	if err := s.apps.CompareAndSwap(ctx, &next, app.Version); err != nil {
		if apperror.Is(err, apperror.Conflict) {
			metrics.WriteConflicts.WithLabelValues("schedule_interview").Inc()
		}
		return nil, err
	}

	recordHistory(ctx, s.history, s.log, models.ApplicationHistory{
		ApplicationID: next.ID,
		Action:        models.ActionInterviewScheduled,
		Stage:         models.StageInterview,
		ActorID:       callerUID,
		ActorType:     models.ActorAdmin,
	}, map[string]interface{}{"interviewer": interviewer, "scheduledAt": scheduledAt.UTC()}, s.now())

	return &next, nil
}

// AdminApplicationView is what a reviewer sees for one application
type AdminApplicationView struct {
	Application *models.Application         `json:"application"`
	Scholarship *models.Scholarship         `json:"scholarship"`
	History     []models.ApplicationHistory `json:"history"`
}

func (s *AdminService) GetApplicationForAdmin(ctx context.Context, callerUID, applicationID string) (*AdminApplicationView, error) {
	if _, err := s.gate.RequireAdmin(ctx, callerUID); err != nil {
		return nil, err
	}
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	scholarship, err := s.scholarships.GetByID(ctx, app.ScholarshipID)
	if err != nil {
		return nil, err
	}
	history, err := s.history.ListByApplication(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	return &AdminApplicationView{Application: app, Scholarship: scholarship, History: history}, nil
}

// ListPendingReviews returns applications an admin can act on now, oldest first.
func (s *AdminService) ListPendingReviews(ctx context.Context, callerUID string) ([]models.Application, error) {
	if _, err := s.gate.RequireAdmin(ctx, callerUID); err != nil {
		return nil, err
	}
	active, err := s.apps.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]models.Application, 0, len(active))
	for _, app := range active {
		if workflow.PendingReview(app) {
			pending = append(pending, app)
		}
	}
	return pending, nil
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
