package services

import (
	"context"

	"scholarhub/apperror"
	"scholarhub/models"
)

// RoleGate is the single authorization check for admin operations.
type RoleGate struct {
	users UserStore
}

func NewRoleGate(users UserStore) *RoleGate {
	return &RoleGate{users: users}
}

// RequireAdmin fails with Forbidden unless uid is a user in admin_simulated role.
// An unknown uid is Forbidden too, never NotFound.
func (g *RoleGate) RequireAdmin(ctx context.Context, uid string) (*models.User, error) {
	user, err := g.users.GetByID(ctx, uid)
	if err != nil {
		if apperror.Is(err, apperror.NotFound) {
			return nil, apperror.New(apperror.Forbidden, "admin role required")
		}
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, apperror.New(apperror.Forbidden, "admin role required")
	}
	return user, nil
}
