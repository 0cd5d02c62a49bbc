package repository

import (
	"context"

	"scholarhub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScholarshipRepository struct {
	db *gorm.DB
}

func NewScholarshipRepository(db *gorm.DB) *ScholarshipRepository {
	return &ScholarshipRepository{db: db}
}

func (r *ScholarshipRepository) GetByID(ctx context.Context, id string) (*models.Scholarship, error) {
	var s models.Scholarship
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, translate(err, "scholarship")
	}
	return &s, nil
}

// List returns scholarships ordered by deadline, soonest first.
func (r *ScholarshipRepository) List(ctx context.Context, offset, limit int) ([]models.Scholarship, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Scholarship{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "scholarships")
	}
	var items []models.Scholarship
	err := r.db.WithContext(ctx).
		Order("deadline ASC").
		Offset(offset).Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, translate(err, "scholarships")
	}
	return items, total, nil
}

// Upsert inserts or fully replaces a scholarship. Used by the seed script.
func (r *ScholarshipRepository) Upsert(ctx context.Context, s *models.Scholarship) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(s).Error
	return translate(err, "scholarship")
}
