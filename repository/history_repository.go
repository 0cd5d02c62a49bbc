package repository

import (
	"context"

	"scholarhub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Create(ctx context.Context, entry *models.ApplicationHistory) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return translate(r.db.WithContext(ctx).Create(entry).Error, "history entry")
}

func (r *HistoryRepository) ListByApplication(ctx context.Context, applicationID string) ([]models.ApplicationHistory, error) {
	var entries []models.ApplicationHistory
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, translate(err, "history")
	}
	return entries, nil
}
