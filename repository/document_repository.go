package repository

import (
	"context"

	"scholarhub/models"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	return translate(r.db.WithContext(ctx).Create(doc).Error, "document")
}

func (r *DocumentRepository) CreateTranscript(ctx context.Context, t *models.Transcript) error {
	return translate(r.db.WithContext(ctx).Create(t).Error, "transcript")
}

func (r *DocumentRepository) ListByUser(ctx context.Context, userID string) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, translate(err, "documents")
	}
	return docs, nil
}

// CountByUser returns the number of documents a user uploaded, by kind.
func (r *DocumentRepository) CountByUser(ctx context.Context, userID string) (map[string]int, error) {
	var rows []struct {
		Kind  string
		Count int
	}
	err := r.db.WithContext(ctx).
		Model(&models.Document{}).
		Select("kind, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "documents")
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Kind] = row.Count
	}
	return counts, nil
}
