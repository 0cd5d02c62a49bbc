package services

import (
	"context"
	"time"

	"scholarhub/apperror"
	"scholarhub/models"
	"scholarhub/reminders"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// TrackedService manages scholarship bookmarks and their checklists. None of it touches the review workflow.
type TrackedService struct {
	tracked      TrackedStore
	scholarships ScholarshipStore
	log          *logrus.Logger
	now          func() time.Time
}

func NewTrackedService(tracked TrackedStore, scholarships ScholarshipStore, log *logrus.Logger, now func() time.Time) *TrackedService {
	return &TrackedService{tracked: tracked, scholarships: scholarships, log: log, now: now}
}

type TrackResult struct {
	Tracked       *models.TrackedApplication `json:"tracked"`
	AlreadyExists bool                       `json:"alreadyExists"`
}

func (s *TrackedService) Track(ctx context.Context, uid, scholarshipID string) (*TrackResult, error) {
	existing, err := s.tracked.FindByUserAndScholarship(ctx, uid, scholarshipID)
	if err == nil {
		return &TrackResult{Tracked: existing, AlreadyExists: true}, nil
	}
	if !apperror.Is(err, apperror.NotFound) {
		return nil, err
	}

	scholarship, err := s.scholarships.GetByID(ctx, scholarshipID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	t := &models.TrackedApplication{
		ID:            uuid.NewString(),
		UserID:        uid,
		ScholarshipID: scholarshipID,
		Title:         scholarship.Title,
		Deadline:      scholarship.Deadline,
		Checklist:     datatypes.NewJSONType(reminders.BuildChecklist(scholarship.Description)),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.tracked.Create(ctx, t); err != nil {
		if !apperror.Is(err, apperror.Conflict) {
			return nil, err
		}
		existing, findErr := s.tracked.FindByUserAndScholarship(ctx, uid, scholarshipID)
		if findErr != nil {
			return nil, findErr
		}
		return &TrackResult{Tracked: existing, AlreadyExists: true}, nil
	}
	return &TrackResult{Tracked: t}, nil
}

func (s *TrackedService) List(ctx context.Context, uid string) ([]models.TrackedApplication, error) {
	return s.tracked.ListByUser(ctx, uid)
}

func (s *TrackedService) ToggleChecklistItem(ctx context.Context, uid, trackedID, itemID string, completed bool) (*models.TrackedApplication, error) {
	t, err := s.owned(ctx, uid, trackedID)
	if err != nil {
		return nil, err
	}

	checklist := append([]models.ChecklistItem(nil), t.Checklist.Data()...)
	found := false
	for i := range checklist {
		if checklist[i].ID == itemID {
			checklist[i].Completed = completed
			found = true
			break
		}
	}
	if !found {
		return nil, apperror.New(apperror.NotFound, "checklist item not found")
	}

	t.Checklist = datatypes.NewJSONType(checklist)
	if err := s.tracked.UpdateChecklist(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TrackedService) Untrack(ctx context.Context, uid, trackedID string) error {
	if _, err := s.owned(ctx, uid, trackedID); err != nil {
		return err
	}
	return s.tracked.Delete(ctx, trackedID)
}

// GetReminders derives the caller's reminders from their tracked applications as of now.
func (s *TrackedService) GetReminders(ctx context.Context, uid string) ([]reminders.Reminder, error) {
	tracked, err := s.tracked.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	items := make([]reminders.Item, 0, len(tracked))
	for _, t := range tracked {
		items = append(items, reminders.Item{
			ApplicationID: t.ID,
			ScholarshipID: t.ScholarshipID,
			Title:         t.Title,
			Deadline:      t.Deadline,
			Checklist:     t.Checklist.Data(),
		})
	}
	return reminders.Derive(items, s.now()), nil
}

func (s *TrackedService) owned(ctx context.Context, uid, trackedID string) (*models.TrackedApplication, error) {
	t, err := s.tracked.GetByID(ctx, trackedID)
	if err != nil {
		return nil, err
	}
	if t.UserID != uid {
		return nil, apperror.New(apperror.Forbidden, "tracked application belongs to another student")
	}
	return t, nil
}
