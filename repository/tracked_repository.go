package repository

import (
	"context"

	"scholarhub/models"

	"gorm.io/gorm"
)

type TrackedApplicationRepository struct {
	db *gorm.DB
}

func NewTrackedApplicationRepository(db *gorm.DB) *TrackedApplicationRepository {
	return &TrackedApplicationRepository{db: db}
}

func (r *TrackedApplicationRepository) Create(ctx context.Context, t *models.TrackedApplication) error {
	return translate(r.db.WithContext(ctx).Create(t).Error, "tracked application")
}

func (r *TrackedApplicationRepository) GetByID(ctx context.Context, id string) (*models.TrackedApplication, error) {
	var t models.TrackedApplication
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, translate(err, "tracked application")
	}
	return &t, nil
}

func (r *TrackedApplicationRepository) FindByUserAndScholarship(ctx context.Context, userID, scholarshipID string) (*models.TrackedApplication, error) {
	var t models.TrackedApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND scholarship_id = ?", userID, scholarshipID).
		First(&t).Error
	if err != nil {
		return nil, translate(err, "tracked application")
	}
	return &t, nil
}

// ListByUser returns tracked applications ordered by deadline, soonest first.
func (r *TrackedApplicationRepository) ListByUser(ctx context.Context, userID string) ([]models.TrackedApplication, error) {
	var items []models.TrackedApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("deadline ASC").
		Find(&items).Error
	if err != nil {
		return nil, translate(err, "tracked applications")
	}
	return items, nil
}

func (r *TrackedApplicationRepository) UpdateChecklist(ctx context.Context, t *models.TrackedApplication) error {
	err := r.db.WithContext(ctx).
		Model(&models.TrackedApplication{}).
		Where("id = ?", t.ID).
		Update("checklist", t.Checklist).Error
	return translate(err, "tracked application")
}

func (r *TrackedApplicationRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.TrackedApplication{})
	if res.Error != nil {
		return translate(res.Error, "tracked application")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "tracked application")
	}
	return nil
}
