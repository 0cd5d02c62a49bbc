package services

import (
	"context"

	"scholarhub/models"
)

// ApplicationStore persists application aggregates. CompareAndSwap is the only way an
// existing aggregate is written.
type ApplicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	FindByUserAndScholarship(ctx context.Context, userID, scholarshipID string) (*models.Application, error)
	ListByUser(ctx context.Context, userID string) ([]models.Application, error)
	ListActive(ctx context.Context) ([]models.Application, error)
	CompareAndSwap(ctx context.Context, app *models.Application, expectedVersion int) error
}

type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Ensure(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
	ListIDs(ctx context.Context) ([]string, error)
}

type ScholarshipStore interface {
	GetByID(ctx context.Context, id string) (*models.Scholarship, error)
	List(ctx context.Context, offset, limit int) ([]models.Scholarship, int64, error)
}

type HistoryStore interface {
	Create(ctx context.Context, entry *models.ApplicationHistory) error
	ListByApplication(ctx context.Context, applicationID string) ([]models.ApplicationHistory, error)
}

type TrackedStore interface {
	Create(ctx context.Context, t *models.TrackedApplication) error
	GetByID(ctx context.Context, id string) (*models.TrackedApplication, error)
	FindByUserAndScholarship(ctx context.Context, userID, scholarshipID string) (*models.TrackedApplication, error)
	ListByUser(ctx context.Context, userID string) ([]models.TrackedApplication, error)
	UpdateChecklist(ctx context.Context, t *models.TrackedApplication) error
	Delete(ctx context.Context, id string) error
}

type DocumentStore interface {
	Create(ctx context.Context, doc *models.Document) error
	CreateTranscript(ctx context.Context, t *models.Transcript) error
	ListByUser(ctx context.Context, userID string) ([]models.Document, error)
	CountByUser(ctx context.Context, userID string) (map[string]int, error)
}
