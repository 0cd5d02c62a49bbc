package services

import (
	"context"
	"testing"

	"scholarhub/apperror"
	"scholarhub/reminders"
	"scholarhub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackBuildsChecklistOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedScholarship(t, f.db, "sch-1", start.AddDate(0, 0, 20), nil)

	first, err := f.Tracked.Track(ctx, "student-1", "sch-1")
	require.NoError(t, err)
	assert.False(t, first.AlreadyExists)
	labels := []string{}
	for _, item := range first.Tracked.Checklist.Data() {
		labels = append(labels, item.Label)
	}
	assert.Equal(t, []string{"Official transcript", "Personal essay", "Submit the application before the deadline"}, labels)

	second, err := f.Tracked.Track(ctx, "student-1", "sch-1")
	require.NoError(t, err)
	assert.True(t, second.AlreadyExists)
	assert.Equal(t, first.Tracked.ID, second.Tracked.ID)

	_, err = f.Tracked.Track(ctx, "student-1", "missing")
	assert.True(t, apperror.Is(err, apperror.NotFound))
}

func TestToggleChecklistItemAndUntrack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedScholarship(t, f.db, "sch-1", start.AddDate(0, 0, 20), nil)
	res, err := f.Tracked.Track(ctx, "student-1", "sch-1")
	require.NoError(t, err)
	id := res.Tracked.ID

	_, err = f.Tracked.ToggleChecklistItem(ctx, "student-2", id, "item-1", true)
	assert.True(t, apperror.Is(err, apperror.Forbidden))

	_, err = f.Tracked.ToggleChecklistItem(ctx, "student-1", id, "item-99", true)
	assert.True(t, apperror.Is(err, apperror.NotFound))

	updated, err := f.Tracked.ToggleChecklistItem(ctx, "student-1", id, "item-1", true)
	require.NoError(t, err)
	assert.True(t, updated.Checklist.Data()[0].Completed)

	list, err := f.Tracked.List(ctx, "student-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Checklist.Data()[0].Completed)

	require.NoError(t, f.Tracked.Untrack(ctx, "student-1", id))
	err = f.Tracked.Untrack(ctx, "student-1", id)
	assert.True(t, apperror.Is(err, apperror.NotFound))
}

func TestGetRemindersOrdersByPriority(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for id, days := range map[string]int{"sch-10": 10, "sch-5": 5, "sch-1": 1} {
		testutil.SeedScholarship(t, f.db, id, start.AddDate(0, 0, days), nil)
		_, err := f.Tracked.Track(ctx, "student-1", id)
		require.NoError(t, err)
	}

	got, err := f.Tracked.GetReminders(ctx, "student-1")
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, reminders.PriorityHigh, got[0].Priority)
	assert.Equal(t, reminders.PriorityHigh, got[1].Priority)
	assert.Equal(t, reminders.PriorityMedium, got[2].Priority)
	assert.Equal(t, reminders.PriorityMedium, got[3].Priority)
	for _, r := range got {
		assert.NotEqual(t, "sch-10", r.ScholarshipID)
	}
	assert.Equal(t, "sch-1", got[0].ScholarshipID)
	assert.Equal(t, 1, got[0].DaysLeft)
	assert.Equal(t, "sch-5", got[2].ScholarshipID)
}

func TestRemindersIgnoreOtherStudents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedScholarship(t, f.db, "sch-1", start.AddDate(0, 0, 1), nil)
	_, err := f.Tracked.Track(ctx, "student-2", "sch-1")
	require.NoError(t, err)

	got, err := f.Tracked.GetReminders(ctx, "student-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
