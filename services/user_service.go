package services

import (
	"context"
	"strings"

	"scholarhub/apperror"
	"scholarhub/models"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

type UserService struct {
	users UserStore
	log   *logrus.Logger
}

func NewUserService(users UserStore, log *logrus.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// EnsureUser creates the profile the first time an identity is seen.
func (s *UserService) EnsureUser(ctx context.Context, identity models.Identity) (*models.User, error) {
	if strings.TrimSpace(identity.UID) == "" {
		return nil, apperror.New(apperror.Unauthorized, "identity has no uid")
	}
	return s.users.Ensure(ctx, &models.User{
		ID:     identity.UID,
		Email:  identity.Email,
		Name:   identity.Name,
		Role:   models.RoleUser,
		Grades: datatypes.NewJSONType(map[string]float64{}),
	})
}

func (s *UserService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	return s.users.GetByID(ctx, uid)
}

// UpdateGrades replaces the recorded grades. A nil gpa leaves the stored GPA alone.
// Existing applications keep their eligibility snapshot.
func (s *UserService) UpdateGrades(ctx context.Context, uid string, gpa *float64, grades map[string]float64) (*models.User, error) {
	if _, err := s.users.GetByID(ctx, uid); err != nil {
		return nil, err
	}
	if grades == nil {
		grades = map[string]float64{}
	}
	fields := map[string]interface{}{"grades": datatypes.NewJSONType(grades)}
	if gpa != nil {
		fields["gpa"] = *gpa
	}
	return s.users.Update(ctx, uid, fields)
}

// AdvanceOnboarding moves the onboarding step forward. Steps at or behind the current one are ignored.
func (s *UserService) AdvanceOnboarding(ctx context.Context, uid string, step int) (*models.User, error) {
	if step < 0 || step > models.OnboardingFinalStep {
		return nil, apperror.Validation("invalid onboarding step", map[string]string{
			"step": "must be between 0 and 4",
		})
	}
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if step <= user.OnboardingStep {
		return user, nil
	}
	return s.users.Update(ctx, uid, map[string]interface{}{
		"onboarding_step":      step,
		"onboarding_completed": step >= models.OnboardingFinalStep,
	})
}

// ToggleAdminMode switches the caller between student and simulated admin.
// Asking for the current state writes nothing.
func (s *UserService) ToggleAdminMode(ctx context.Context, uid string, enable bool) (*models.User, error) {
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	role := models.RoleUser
	if enable {
		role = models.RoleAdminSimulated
	}
	if user.Role == role && user.HackathonMode == enable {
		return user, nil
	}

	updated, err := s.users.Update(ctx, uid, map[string]interface{}{
		"role":           role,
		"hackathon_mode": enable,
	})
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"actor": uid, "role": role}).Info("admin mode toggled")
	return updated, nil
}
