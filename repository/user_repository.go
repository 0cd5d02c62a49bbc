package repository

import (
	"context"

	"scholarhub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err, "user")
	}
	return &user, nil
}

// Ensure creates the user if missing and returns the stored row either way.
func (r *UserRepository) Ensure(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error
	if err != nil {
		return nil, translate(err, "user")
	}
	return r.GetByID(ctx, user.ID)
}

// Update merges fields into the user row. Last write wins.
func (r *UserRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, translate(err, "user")
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&models.User{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, translate(err, "users")
	}
	return ids, nil
}
