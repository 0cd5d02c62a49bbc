package workflow

import (
	"strings"
	"time"

	"scholarhub/apperror"
	"scholarhub/models"

	"gorm.io/datatypes"
)

// The operations below only touch student-owned fields. None of them changes
// status, currentStage or any Review.

func requireActiveStage(app models.Application, stage models.Stage) error {
	if app.Status.IsTerminal() {
		return apperror.New(apperror.InvalidState, "application is already "+string(app.Status))
	}
	if app.CurrentStage != stage {
		return apperror.New(apperror.InvalidState, "application is at the "+string(app.CurrentStage)+" stage")
	}
	return nil
}

func SaveEssayDraft(app models.Application, draft string) (models.Application, error) {
	if err := requireActiveStage(app, models.StageEssay); err != nil {
		return app, err
	}
	stages := app.Stages.Data()
	if stages.Essay.Submitted {
		return app, apperror.New(apperror.InvalidState, "essay already submitted")
	}
	stages.Essay.Draft = draft
	app.Stages = datatypes.NewJSONType(stages)
	return app, nil
}

func SubmitEssay(app models.Application, at time.Time) (models.Application, error) {
	if err := requireActiveStage(app, models.StageEssay); err != nil {
		return app, err
	}
	stages := app.Stages.Data()
	if stages.Essay.Submitted {
		return app, apperror.New(apperror.InvalidState, "essay already submitted")
	}
	if strings.TrimSpace(stages.Essay.Draft) == "" {
		return app, apperror.Validation("essay draft is empty", map[string]string{"draft": "Save a draft before submitting!"})
	}
	at = at.UTC()
	stages.Essay.Submitted = true
	stages.Essay.SubmittedAt = &at
	app.Stages = datatypes.NewJSONType(stages)
	return app, nil
}

func CompleteGroupTask(app models.Application, at time.Time) (models.Application, error) {
	if err := requireActiveStage(app, models.StageGroup); err != nil {
		return app, err
	}
	stages := app.Stages.Data()
	if stages.Group.StudentCompleted {
		return app, apperror.New(apperror.InvalidState, "group task already completed")
	}
	at = at.UTC()
	stages.Group.StudentCompleted = true
	stages.Group.CompletedAt = &at
	app.Stages = datatypes.NewJSONType(stages)
	return app, nil
}

// CompleteInterview marks the student's side of the interview done. The interview
// status only moves to completed when one was scheduled.
func CompleteInterview(app models.Application, reflectionNotes string, at time.Time) (models.Application, error) {
	if err := requireActiveStage(app, models.StageInterview); err != nil {
		return app, err
	}
	stages := app.Stages.Data()
	if stages.Interview.StudentCompleted {
		return app, apperror.New(apperror.InvalidState, "interview already completed")
	}
	at = at.UTC()
	stages.Interview.StudentCompleted = true
	stages.Interview.CompletedAt = &at
	stages.Interview.ReflectionNotes = reflectionNotes
	if stages.Interview.Status == models.InterviewScheduled {
		stages.Interview.Status = models.InterviewCompleted
	}
	app.Stages = datatypes.NewJSONType(stages)
	return app, nil
}

// ScheduleInterview is admin-driven but does not review the stage. Rescheduling is
// allowed until the student completes the interview.
func ScheduleInterview(app models.Application, interviewer string, scheduledAt time.Time) (models.Application, error) {
	if err := requireActiveStage(app, models.StageInterview); err != nil {
		return app, err
	}
	stages := app.Stages.Data()
	if stages.Interview.StudentCompleted {
		return app, apperror.New(apperror.InvalidState, "interview already completed")
	}
	scheduledAt = scheduledAt.UTC()
	stages.Interview.Interviewer = interviewer
	stages.Interview.ScheduledAt = &scheduledAt
	stages.Interview.Status = models.InterviewScheduled
	app.Stages = datatypes.NewJSONType(stages)
	return app, nil
}

// RecordAIAssistance appends to the AI history of a stage the application has reached
// and that has not been reviewed yet.
func RecordAIAssistance(app models.Application, stage models.Stage, entry models.AIHistoryEntry) (models.Application, error) {
	if !stage.Valid() {
		return app, apperror.Validation("unknown stage", map[string]string{"stage": "Stage must be essay, group or interview!"})
	}
	if app.Status.IsTerminal() {
		return app, apperror.New(apperror.InvalidState, "application is already "+string(app.Status))
	}
	if stage.Index() > app.CurrentStage.Index() {
		return app, apperror.New(apperror.InvalidState, "stage "+string(stage)+" has not started")
	}
	stages := app.Stages.Data()
	record, err := stages.Record(stage)
	if err != nil {
		return app, apperror.Wrap(apperror.Internal, "unknown stage", err)
	}
	if record.ReviewState().AdminReviewed {
		return app, apperror.New(apperror.InvalidState, "stage already reviewed")
	}
	entry.CreatedAt = entry.CreatedAt.UTC()
	record.AddAIEntry(entry)
	app.Stages = datatypes.NewJSONType(stages)
	return app, nil
}
