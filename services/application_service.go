package services

import (
	"context"
	"strings"
	"time"

	"scholarhub/apperror"
	"scholarhub/eligibility"
	"scholarhub/metrics"
	"scholarhub/models"
	"scholarhub/workflow"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ApplicationService runs the student side of the workflow.
type ApplicationService struct {
	apps         ApplicationStore
	users        UserStore
	scholarships ScholarshipStore
	history      HistoryStore
	log          *logrus.Logger
	now          func() time.Time
}

func NewApplicationService(apps ApplicationStore, users UserStore, scholarships ScholarshipStore, history HistoryStore, log *logrus.Logger, now func() time.Time) *ApplicationService {
	return &ApplicationService{apps: apps, users: users, scholarships: scholarships, history: history, log: log, now: now}
}

type StartResult struct {
	Application   *models.Application `json:"application"`
	AlreadyExists bool                `json:"alreadyExists"`
}

// StartApplication creates the aggregate for (uid, scholarshipID) or returns the existing one.
func (s *ApplicationService) StartApplication(ctx context.Context, uid, scholarshipID string) (*StartResult, error) {
	existing, err := s.apps.FindByUserAndScholarship(ctx, uid, scholarshipID)
	if err == nil {
		return &StartResult{Application: existing, AlreadyExists: true}, nil
	}
	if !apperror.Is(err, apperror.NotFound) {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	scholarship, err := s.scholarships.GetByID(ctx, scholarshipID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	snapshot := eligibility.Snapshot(eligibility.ProfileOf(user), scholarship.MinimumGrades.Data(), now)
	app := workflow.NewApplication(uuid.NewString(), uid, scholarshipID, snapshot, now)

	if err := s.apps.Create(ctx, &app); err != nil {
		if !apperror.Is(err, apperror.Conflict) {
			return nil, err
		}
		// A concurrent start for the same pair won; hand back its aggregate.
		existing, findErr := s.apps.FindByUserAndScholarship(ctx, uid, scholarshipID)
		if findErr != nil {
			return nil, findErr
		}
		return &StartResult{Application: existing, AlreadyExists: true}, nil
	}

	metrics.ApplicationsStarted.Inc()
	recordHistory(ctx, s.history, s.log, models.ApplicationHistory{
		ApplicationID: app.ID,
		Action:        models.ActionStarted,
		Stage:         app.CurrentStage,
		ActorID:       uid,
		ActorType:     models.ActorStudent,
	}, map[string]interface{}{"meetsGradeRequirement": snapshot.MeetsGradeRequirement}, now)

	s.log.WithFields(logrus.Fields{
		"application_id": app.ID,
		"scholarship_id": scholarshipID,
		"actor":          uid,
	}).Info("application started")

	return &StartResult{Application: &app, AlreadyExists: false}, nil
}

func (s *ApplicationService) ListMine(ctx context.Context, uid string) ([]models.Application, error) {
	return s.apps.ListByUser(ctx, uid)
}

func (s *ApplicationService) GetMine(ctx context.Context, uid, applicationID string) (*models.Application, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.UserID != uid {
		return nil, apperror.New(apperror.Forbidden, "application belongs to another student")
	}
	return app, nil
}

func (s *ApplicationService) SaveEssayDraft(ctx context.Context, uid, applicationID, draft string) (*models.Application, error) {
	return s.mutateOwned(ctx, uid, applicationID, models.ActionDraftSaved, models.StageEssay, func(app models.Application) (models.Application, error) {
		return workflow.SaveEssayDraft(app, draft)
	})
}

func (s *ApplicationService) SubmitEssay(ctx context.Context, uid, applicationID string) (*models.Application, error) {
	return s.mutateOwned(ctx, uid, applicationID, models.ActionEssaySubmitted, models.StageEssay, func(app models.Application) (models.Application, error) {
		return workflow.SubmitEssay(app, s.now())
	})
}

func (s *ApplicationService) CompleteGroupTask(ctx context.Context, uid, applicationID string) (*models.Application, error) {
	return s.mutateOwned(ctx, uid, applicationID, models.ActionGroupCompleted, models.StageGroup, func(app models.Application) (models.Application, error) {
		return workflow.CompleteGroupTask(app, s.now())
	})
}

func (s *ApplicationService) CompleteInterview(ctx context.Context, uid, applicationID, reflectionNotes string) (*models.Application, error) {
	return s.mutateOwned(ctx, uid, applicationID, models.ActionInterviewCompleted, models.StageInterview, func(app models.Application) (models.Application, error) {
		return workflow.CompleteInterview(app, strings.TrimSpace(reflectionNotes), s.now())
	})
}

func (s *ApplicationService) RecordAIAssistance(ctx context.Context, uid, applicationID string, stage models.Stage, prompt, response string) (*models.Application, error) {
	return s.mutateOwned(ctx, uid, applicationID, models.ActionAIAssisted, stage, func(app models.Application) (models.Application, error) {
		return workflow.RecordAIAssistance(app, stage, models.AIHistoryEntry{Prompt: prompt, Response: response, CreatedAt: s.now()})
	})
}

// mutateOwned loads the caller's application, applies fn and writes the result with
// compare-and-swap so a concurrent admin review is never overwritten.
func (s *ApplicationService) mutateOwned(ctx context.Context, uid, applicationID, action string, stage models.Stage, fn func(models.Application) (models.Application, error)) (*models.Application, error) {
	app, err := s.GetMine(ctx, uid, applicationID)
	if err != nil {
		return nil, err
	}

	next, err := fn(*app)
	if err != nil {
		return nil, err
	}
	if err := s.apps.CompareAndSwap(ctx, &next, app.Version); err != nil {
		if apperror.Is(err, apperror.Conflict) {
			metrics.WriteConflicts.WithLabelValues(action).Inc()
		}
		return nil, err
	}

	recordHistory(ctx, s.history, s.log, models.ApplicationHistory{
		ApplicationID: next.ID,
		Action:        action,
		Stage:         stage,
		ActorID:       uid,
		ActorType:     models.ActorStudent,
	}, nil, s.now())

	s.log.WithFields(logrus.Fields{
		"application_id": next.ID,
		"stage":          stage,
		"actor":          uid,
		"outcome":        action,
	}).Info("application updated by student")

	return &next, nil
}
