package services

import (
	"context"
	"testing"
	"time"

	"scholarhub/apperror"
	"scholarhub/models"
	"scholarhub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReviewScenario(t *testing.T, f *fixture) *models.Application {
	t.Helper()
	testutil.SeedUser(t, f.db, "student-1", models.RoleUser)
	testutil.SeedUser(t, f.db, "admin-1", models.RoleAdminSimulated)
	testutil.SeedScholarship(t, f.db, "sch-1", start.AddDate(0, 1, 0), nil)
	return f.start(t, "student-1", "sch-1")
}

func TestApproveStageRequiresSubmittedEssay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	app := seedReviewScenario(t, f)

	_, err := f.Admin.ApproveStage(ctx, "admin-1", app.ID, true, nil)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.InvalidState))

	f.submitEssay(t, "student-1", app.ID)
	res, err := f.Admin.ApproveStage(ctx, "admin-1", app.ID, true, text("  "))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, models.StatusEssayPassed, res.NewStatus)
	assert.Equal(t, models.StageGroup, res.NewStage)

	stored, err := f.apps.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageGroup, stored.CurrentStage)
	assert.Nil(t, stored.Stages.Data().Essay.ReviewerNotes, "blank notes are stored as null")
	audit := stored.AdminAudit.Data()
	require.NotNil(t, audit)
	assert.Equal(t, "admin-1", audit.LastApprovedBy)
}

func TestNonAdminIsAlwaysForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	app := seedReviewScenario(t, f)
	f.submitEssay(t, "student-1", app.ID)

	for _, id := range []string{app.ID, "no-such-application"} {
		_, err := f.Admin.ApproveStage(ctx, "student-1", id, true, nil)
		assert.True(t, apperror.Is(err, apperror.Forbidden), id)
	}
	_, err := f.Admin.ApproveStage(ctx, "unknown-user", app.ID, true, nil)
	assert.True(t, apperror.Is(err, apperror.Forbidden))

	_, err = f.Admin.ListPendingReviews(ctx, "student-1")
	assert.True(t, apperror.Is(err, apperror.Forbidden))
	_, err = f.Admin.GetApplicationForAdmin(ctx, "student-1", app.ID)
	assert.True(t, apperror.Is(err, apperror.Forbidden))

	stored, err := f.apps.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.False(t, stored.Stages.Data().Essay.AdminReviewed)
}

func TestApproveStageUnknownApplication(t *testing.T) {
	f := newFixture(t)
	seedReviewScenario(t, f)

	_, err := f.Admin.ApproveStage(context.Background(), "admin-1", "no-such-application", true, nil)
	assert.True(t, apperror.Is(err, apperror.NotFound))
}

func TestFullReviewEndsAccepted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	app := seedReviewScenario(t, f)

	f.submitEssay(t, "student-1", app.ID)
	_, err := f.Admin.ApproveStage(ctx, "admin-1", app.ID, true, nil)
	require.NoError(t, err)

	_, err = f.Applications.CompleteGroupTask(ctx, "student-1", app.ID)
	require.NoError(t, err)
	res, err := f.Admin.ApproveStage(ctx, "admin-1", app.ID, true, text("strong teamwork"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusGroupPassed, res.NewStatus)
	assert.Equal(t, models.StageInterview, res.NewStage)

	_, err = f.Admin.ScheduleInterview(ctx, "admin-1", app.ID, "Dr. Rivera", start.Add(72*time.Hour))
	require.NoError(t, err)
	_, err = f.Applications.CompleteInterview(ctx, "student-1", app.ID, "Felt good")
	require.NoError(t, err)
	res, err = f.Admin.ApproveStage(ctx, "admin-1", app.ID, true, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, res.NewStatus)

	_, err = f.Admin.ApproveStage(ctx, "admin-1", app.ID, true, nil)
	assert.True(t, apperror.Is(err, apperror.InvalidState))

	view, err := f.Admin.GetApplicationForAdmin(ctx, "admin-1", app.ID)
	require.NoError(t, err)
	assert.Equal(t, "sch-1", view.Scholarship.ID)
	actions := make([]string, 0, len(view.History))
	for _, h := range view.History {
		actions = append(actions, h.Action)
	}
	assert.Contains(t, actions, models.ActionInterviewScheduled)
	assert.Contains(t, actions, models.ActionInterviewCompleted)
	assert.Contains(t, actions, models.ActionStageApproved)
}

func TestRejectionStopsTheWorkflow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	app := seedReviewScenario(t, f)
	f.submitEssay(t, "student-1", app.ID)
	f.clock.Advance(time.Hour)

	res, err := f.Admin.ApproveStage(ctx, "admin-1", app.ID, false, text("off topic"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, res.NewStatus)
	assert.Equal(t, models.StageEssay, res.NewStage)

	_, err = f.Admin.ApproveStage(ctx, "admin-1", app.ID, true, nil)
	assert.True(t, apperror.Is(err, apperror.InvalidState))

	stored, err := f.apps.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageEssay, stored.CurrentStage)
	assert.Equal(t, "off topic", *stored.Stages.Data().Essay.ReviewerNotes)

	history, err := f.history.ListByApplication(ctx, app.ID)
	require.NoError(t, err)
	last := history[len(history)-1]
	assert.Equal(t, models.ActionStageRejected, last.Action)
	assert.Equal(t, models.ActorAdmin, last.ActorType)
	assert.Equal(t, "off topic", last.Notes)
}

func TestConcurrentApprovalOnlyOneWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	app := seedReviewScenario(t, f)
	testutil.SeedUser(t, f.db, "admin-2", models.RoleAdminSimulated)
	f.submitEssay(t, "student-1", app.ID)

	store := &racingStore{ApplicationStore: f.apps}
	store.beforeSwap = func() {
		_, err := f.Admin.ApproveStage(ctx, "admin-2", app.ID, false, text("rejected first"))
		require.NoError(t, err)
	}
	racing := NewAdminService(NewRoleGate(f.users), store, f.scholarships, f.history, testutil.Logger(), f.clock.Now)

	_, err := racing.ApproveStage(ctx, "admin-1", app.ID, true, nil)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.InvalidState))

	stored, err := f.apps.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, stored.Status)
	assert.Equal(t, "admin-2", stored.AdminAudit.Data().LastApprovedBy)
}

func TestListPendingReviews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	app := seedReviewScenario(t, f)
	testutil.SeedScholarship(t, f.db, "sch-2", start.AddDate(0, 2, 0), nil)
	f.start(t, "student-1", "sch-2")

	pending, err := f.Admin.ListPendingReviews(ctx, "admin-1")
	require.NoError(t, err)
	assert.Empty(t, pending)

	f.submitEssay(t, "student-1", app.ID)
	pending, err = f.Admin.ListPendingReviews(ctx, "admin-1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, app.ID, pending[0].ID)
}
