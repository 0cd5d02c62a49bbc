// Package reminders derives deadline and checklist notices from tracked applications.
// Nothing here is persisted.
package reminders

import (
	"fmt"
	"math"
	"sort"
	"time"

	"scholarhub/models"

	"github.com/jinzhu/now"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Reminder type values
const (
	TypeDeadline  = "deadline"
	TypeChecklist = "checklist"
)

// Item is the reminder view of a tracked application
type Item struct {
	ApplicationID string
	ScholarshipID string
	Title         string
	Deadline      time.Time
	Checklist     []models.ChecklistItem
}

type Reminder struct {
	ApplicationID string   `json:"applicationId"`
	ScholarshipID string   `json:"scholarshipId"`
	Title         string   `json:"title"`
	Type          string   `json:"type"`
	Priority      Priority `json:"priority"`
	DaysLeft      int      `json:"daysLeft"`
	Message       string   `json:"message"`
}

// DaysUntil counts calendar days from ref to deadline in ref's location.
// Negative means the deadline has passed.
func DaysUntil(ref, deadline time.Time) int {
	today := now.With(ref).BeginningOfDay()
	due := now.With(deadline.In(ref.Location())).BeginningOfDay()
	return int(math.Round(due.Sub(today).Hours() / 24))
}

// Derive returns reminders for items ordered high, medium, low. Items keep their
// input order within a priority.
func Derive(items []Item, ref time.Time) []Reminder {
	out := make([]Reminder, 0, len(items))
	for _, item := range items {
		daysLeft := DaysUntil(ref, item.Deadline)
		base := Reminder{
			ApplicationID: item.ApplicationID,
			ScholarshipID: item.ScholarshipID,
			Title:         item.Title,
			DaysLeft:      daysLeft,
		}

		switch {
		case daysLeft < 0:
			r := base
			r.Type, r.Priority = TypeDeadline, PriorityHigh
			r.Message = fmt.Sprintf("%s deadline passed %d day(s) ago", item.Title, -daysLeft)
			out = append(out, r)
		case daysLeft <= 3:
			r := base
			r.Type, r.Priority = TypeDeadline, PriorityHigh
			r.Message = fmt.Sprintf("%s is due in %d day(s)", item.Title, daysLeft)
			out = append(out, r)
		case daysLeft <= 7:
			r := base
			r.Type, r.Priority = TypeDeadline, PriorityMedium
			r.Message = fmt.Sprintf("%s is due in %d day(s)", item.Title, daysLeft)
			out = append(out, r)
		}

		if daysLeft <= 7 {
			if open := incomplete(item.Checklist); open > 0 {
				r := base
				r.Type, r.Priority = TypeChecklist, PriorityMedium
				if daysLeft <= 3 {
					r.Priority = PriorityHigh
				}
				r.Message = fmt.Sprintf("%d checklist item(s) still open for %s", open, item.Title)
				out = append(out, r)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.rank() < out[j].Priority.rank()
	})
	return out
}

func incomplete(checklist []models.ChecklistItem) int {
	n := 0
	for _, item := range checklist {
		if !item.Completed {
			n++
		}
	}
	return n
}
