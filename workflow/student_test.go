package workflow

import (
	"testing"
	"time"

	"scholarhub/apperror"
	"scholarhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitEssayNeedsDraft(t *testing.T) {
	app := newTestApplication()

	_, err := SubmitEssay(app, testNow)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.ValidationError))

	app, err = SaveEssayDraft(app, "  draft  ")
	require.NoError(t, err)
	app, err = SubmitEssay(app, testNow)
	require.NoError(t, err)

	essay := app.Stages.Data().Essay
	assert.True(t, essay.Submitted)
	assert.Equal(t, testNow, *essay.SubmittedAt)
	assert.False(t, essay.AdminReviewed)
}

func TestEssayCannotChangeAfterSubmit(t *testing.T) {
	app := finishStudentPart(t, newTestApplication())

	_, err := SaveEssayDraft(app, "rewrite")
	assert.True(t, apperror.Is(err, apperror.InvalidState))

	_, err = SubmitEssay(app, testNow)
	assert.True(t, apperror.Is(err, apperror.InvalidState))
}

func TestStudentActionsRequireCurrentStage(t *testing.T) {
	app := newTestApplication()

	_, err := CompleteGroupTask(app, testNow)
	assert.True(t, apperror.Is(err, apperror.InvalidState))

	_, err = CompleteInterview(app, "", testNow)
	assert.True(t, apperror.Is(err, apperror.InvalidState))

	_, err = ScheduleInterview(app, "Dr. Rivera", testNow)
	assert.True(t, apperror.Is(err, apperror.InvalidState))
}

func TestGroupTaskCompletesOnce(t *testing.T) {
	app := finishStudentPart(t, newTestApplication())
	app, _, err := ApproveStage(app, pass("admin-1"))
	require.NoError(t, err)

	app, err = CompleteGroupTask(app, testNow)
	require.NoError(t, err)
	assert.True(t, app.Stages.Data().Group.StudentCompleted)
	assert.Equal(t, models.StatusEssayPassed, app.Status)

	_, err = CompleteGroupTask(app, testNow)
	assert.True(t, apperror.Is(err, apperror.InvalidState))
}

func TestUnscheduledInterviewStaysPending(t *testing.T) {
	app := newTestApplication()
	for app.CurrentStage != models.StageInterview {
		app = finishStudentPart(t, app)
		var err error
		app, _, err = ApproveStage(app, pass("admin-1"))
		require.NoError(t, err)
	}

	app, err := CompleteInterview(app, "notes", testNow)
	require.NoError(t, err)
	interview := app.Stages.Data().Interview
	assert.Equal(t, models.InterviewPending, interview.Status)
	assert.Equal(t, "notes", interview.ReflectionNotes)

	_, err = ScheduleInterview(app, "late", testNow.Add(time.Hour))
	assert.True(t, apperror.Is(err, apperror.InvalidState))
}

func TestRecordAIAssistance(t *testing.T) {
	app := newTestApplication()
	entry := models.AIHistoryEntry{Prompt: "outline", Response: "1. intro", CreatedAt: testNow}

	app, err := RecordAIAssistance(app, models.StageEssay, entry)
	require.NoError(t, err)
	essay := app.Stages.Data().Essay
	assert.True(t, essay.AIUsed)
	require.Len(t, essay.AIHistory, 1)
	assert.Equal(t, "outline", essay.AIHistory[0].Prompt)

	_, err = RecordAIAssistance(app, models.StageGroup, entry)
	assert.True(t, apperror.Is(err, apperror.InvalidState), "group has not started")

	_, err = RecordAIAssistance(app, models.Stage("portfolio"), entry)
	assert.True(t, apperror.Is(err, apperror.ValidationError))
}

func TestRecordAIAssistanceDoesNotAliasHistory(t *testing.T) {
	app := newTestApplication()
	entry := models.AIHistoryEntry{Prompt: "p1", CreatedAt: testNow}
	first, err := RecordAIAssistance(app, models.StageEssay, entry)
	require.NoError(t, err)

	entry.Prompt = "p2"
	second, err := RecordAIAssistance(first, models.StageEssay, entry)
	require.NoError(t, err)

	assert.Len(t, first.Stages.Data().Essay.AIHistory, 1)
	assert.Len(t, second.Stages.Data().Essay.AIHistory, 2)
}

func TestReviewedStageRejectsAIHistory(t *testing.T) {
	app := finishStudentPart(t, newTestApplication())
	app, _, err := ApproveStage(app, pass("admin-1"))
	require.NoError(t, err)

	_, err = RecordAIAssistance(app, models.StageEssay, models.AIHistoryEntry{Prompt: "late"})
	assert.True(t, apperror.Is(err, apperror.InvalidState))

	app, err = RecordAIAssistance(app, models.StageGroup, models.AIHistoryEntry{Prompt: "practice"})
	require.NoError(t, err)
	assert.True(t, app.Stages.Data().Group.AIPreparationUsed)
}
