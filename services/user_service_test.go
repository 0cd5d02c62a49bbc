package services

import (
	"context"
	"testing"

	"scholarhub/apperror"
	"scholarhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureUserCreatesOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	identity := models.Identity{UID: "uid-1", Email: "ada@example.com", Name: "Ada"}

	user, err := f.Users.EnsureUser(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "Ada", user.Name)

	_, err = f.Users.AdvanceOnboarding(ctx, "uid-1", 2)
	require.NoError(t, err)

	again, err := f.Users.EnsureUser(ctx, models.Identity{UID: "uid-1", Name: "Someone else"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.Name)
	assert.Equal(t, 2, again.OnboardingStep)

	_, err = f.Users.EnsureUser(ctx, models.Identity{UID: " "})
	assert.True(t, apperror.Is(err, apperror.Unauthorized))
}

func TestAdvanceOnboardingIsMonotonic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.Users.EnsureUser(ctx, models.Identity{UID: "uid-1"})
	require.NoError(t, err)

	user, err := f.Users.AdvanceOnboarding(ctx, "uid-1", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, user.OnboardingStep)
	assert.False(t, user.OnboardingCompleted)

	user, err = f.Users.AdvanceOnboarding(ctx, "uid-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, user.OnboardingStep)

	user, err = f.Users.AdvanceOnboarding(ctx, "uid-1", models.OnboardingFinalStep)
	require.NoError(t, err)
	assert.True(t, user.OnboardingCompleted)

	_, err = f.Users.AdvanceOnboarding(ctx, "uid-1", 9)
	assert.True(t, apperror.Is(err, apperror.ValidationError))
}

func TestToggleAdminMode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.Users.EnsureUser(ctx, models.Identity{UID: "uid-1"})
	require.NoError(t, err)

	user, err := f.Users.ToggleAdminMode(ctx, "uid-1", true)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdminSimulated, user.Role)
	assert.True(t, user.HackathonMode)

	again, err := f.Users.ToggleAdminMode(ctx, "uid-1", true)
	require.NoError(t, err)
	assert.Equal(t, user.UpdatedAt, again.UpdatedAt, "same state writes nothing")

	_, err = NewRoleGate(f.users).RequireAdmin(ctx, "uid-1")
	assert.NoError(t, err)

	user, err = f.Users.ToggleAdminMode(ctx, "uid-1", false)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.HackathonMode)

	_, err = NewRoleGate(f.users).RequireAdmin(ctx, "uid-1")
	assert.True(t, apperror.Is(err, apperror.Forbidden))
}

func TestUpdateGradesKeepsGPAWhenOmitted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.Users.EnsureUser(ctx, models.Identity{UID: "uid-1"})
	require.NoError(t, err)

	_, err = f.Users.UpdateGrades(ctx, "uid-1", float(3.7), map[string]float64{"Math": 92})
	require.NoError(t, err)
	user, err := f.Users.UpdateGrades(ctx, "uid-1", nil, map[string]float64{"Physics": 88})
	require.NoError(t, err)

	require.NotNil(t, user.GPA)
	assert.Equal(t, 3.7, *user.GPA)
	assert.Equal(t, map[string]float64{"Physics": 88}, user.Grades.Data())

	_, err = f.Users.UpdateGrades(ctx, "missing", nil, nil)
	assert.True(t, apperror.Is(err, apperror.NotFound))
}
