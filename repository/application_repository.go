package repository

import (
	"context"
	"time"

	"scholarhub/apperror"
	"scholarhub/models"

	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts app. A second application for the same (user, scholarship) fails with Conflict.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	return translate(r.db.WithContext(ctx).Create(app).Error, "application")
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		return nil, translate(err, "application")
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByUserAndScholarship(ctx context.Context, userID, scholarshipID string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND scholarship_id = ?", userID, scholarshipID).
		First(&app).Error
	if err != nil {
		return nil, translate(err, "application")
	}
	return &app, nil
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, translate(err, "applications")
	}
	return apps, nil
}

// ListActive returns every application whose status is not terminal, oldest update first.
func (r *ApplicationRepository) ListActive(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []models.ApplicationStatus{models.StatusAccepted, models.StatusRejected, models.StatusCompleted}).
		Order("updated_at ASC").
		Find(&apps).Error
	if err != nil {
		return nil, translate(err, "applications")
	}
	return apps, nil
}

// CompareAndSwap writes the mutable fields of app only if the stored version still equals
// expectedVersion. On success app.Version and app.UpdatedAt reflect the stored row.
func (r *ApplicationRepository) CompareAndSwap(ctx context.Context, app *models.Application, expectedVersion int) error {
	updatedAt := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ? AND version = ?", app.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":        app.Status,
			"current_stage": app.CurrentStage,
			"stages":        app.Stages,
			"admin_audit":   app.AdminAudit,
			"version":       expectedVersion + 1,
			"updated_at":    updatedAt,
		})
	if res.Error != nil {
		return translate(res.Error, "application")
	}
	if res.RowsAffected == 0 {
		return apperror.New(apperror.Conflict, "application was modified concurrently")
	}
	app.Version = expectedVersion + 1
	app.UpdatedAt = updatedAt
	return nil
}
