package services

import (
	"context"
	"testing"

	"scholarhub/apperror"
	"scholarhub/models"
	"scholarhub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartApplicationIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedUser(t, f.db, "student-1", models.RoleUser)
	testutil.SeedScholarship(t, f.db, "sch-1", start.AddDate(0, 1, 0), nil)

	first, err := f.Applications.StartApplication(ctx, "student-1", "sch-1")
	require.NoError(t, err)
	assert.False(t, first.AlreadyExists)
	assert.Equal(t, models.StageEssay, first.Application.CurrentStage)
	assert.Equal(t, models.StatusInProgress, first.Application.Status)

	second, err := f.Applications.StartApplication(ctx, "student-1", "sch-1")
	require.NoError(t, err)
	assert.True(t, second.AlreadyExists)
	assert.Equal(t, first.Application.ID, second.Application.ID)

	var count int64
	require.NoError(t, f.db.Model(&models.Application{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	history, err := f.history.ListByApplication(ctx, first.Application.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.ActionStarted, history[0].Action)
}

func TestStartApplicationFreezesEligibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedUser(t, f.db, "student-1", models.RoleUser)
	testutil.SeedScholarship(t, f.db, "sch-1", start.AddDate(0, 1, 0), float(3.5))

	_, err := f.Users.UpdateGrades(ctx, "student-1", float(3.2), nil)
	require.NoError(t, err)
	app := f.start(t, "student-1", "sch-1")
	assert.False(t, app.EligibilitySnapshot.MeetsGradeRequirement)
	assert.True(t, app.EligibilitySnapshot.CheckedAt.Equal(start))

	_, err = f.Users.UpdateGrades(ctx, "student-1", float(3.9), nil)
	require.NoError(t, err)
	stored, err := f.Applications.GetMine(ctx, "student-1", app.ID)
	require.NoError(t, err)
	assert.False(t, stored.EligibilitySnapshot.MeetsGradeRequirement)
}

func TestStartApplicationMissingScholarship(t *testing.T) {
	f := newFixture(t)
	testutil.SeedUser(t, f.db, "student-1", models.RoleUser)

	_, err := f.Applications.StartApplication(context.Background(), "student-1", "missing")
	assert.True(t, apperror.Is(err, apperror.NotFound))
}

func TestStudentCannotTouchAnotherStudentsApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedUser(t, f.db, "student-1", models.RoleUser)
	testutil.SeedUser(t, f.db, "student-2", models.RoleUser)
	testutil.SeedScholarship(t, f.db, "sch-1", start.AddDate(0, 1, 0), nil)
	app := f.start(t, "student-1", "sch-1")

	_, err := f.Applications.SaveEssayDraft(ctx, "student-2", app.ID, "hijack")
	assert.True(t, apperror.Is(err, apperror.Forbidden))

	_, err = f.Applications.GetMine(ctx, "student-2", app.ID)
	assert.True(t, apperror.Is(err, apperror.Forbidden))
}

func TestStudentWritesBumpVersion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedUser(t, f.db, "student-1", models.RoleUser)
	testutil.SeedScholarship(t, f.db, "sch-1", start.AddDate(0, 1, 0), nil)
	app := f.start(t, "student-1", "sch-1")

	saved, err := f.Applications.SaveEssayDraft(ctx, "student-1", app.ID, "first draft")
	require.NoError(t, err)
	assert.Equal(t, app.Version+1, saved.Version)

	saved, err = f.Applications.RecordAIAssistance(ctx, "student-1", app.ID, models.StageEssay, "help", "try this")
	require.NoError(t, err)
	assert.Equal(t, app.Version+2, saved.Version)

	stored, err := f.apps.GetByID(ctx, app.ID)
	require.NoError(t, err)
	essay := stored.Stages.Data().Essay
	assert.Equal(t, "first draft", essay.Draft)
	assert.True(t, essay.AIUsed)
	require.Len(t, essay.AIHistory, 1)
	assert.Equal(t, "help", essay.AIHistory[0].Prompt)
}

func TestStudentWriteLosesRaceWithConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedUser(t, f.db, "student-1", models.RoleUser)
	testutil.SeedScholarship(t, f.db, "sch-1", start.AddDate(0, 1, 0), nil)
	app := f.start(t, "student-1", "sch-1")

	store := &racingStore{ApplicationStore: f.apps}
	store.beforeSwap = func() {
		_, err := f.Applications.SaveEssayDraft(ctx, "student-1", app.ID, "from another tab")
		require.NoError(t, err)
	}
	racing := NewApplicationService(store, f.users, f.scholarships, f.history, testutil.Logger(), f.clock.Now)

	_, err := racing.SaveEssayDraft(ctx, "student-1", app.ID, "stale")
	assert.True(t, apperror.Is(err, apperror.Conflict))

	stored, err := f.apps.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "from another tab", stored.Stages.Data().Essay.Draft)
}
