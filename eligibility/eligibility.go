// Package eligibility builds the point-in-time grade check stored on an application.
package eligibility

import (
	"strings"
	"time"

	"scholarhub/models"
)

// GradeProfile is what a student has on record when the application starts
type GradeProfile struct {
	GPA    *float64
	Grades map[string]float64
}

// ProfileOf reads the grade profile recorded on a user
func ProfileOf(user *models.User) GradeProfile {
	if user == nil {
		return GradeProfile{}
	}
	return GradeProfile{GPA: user.GPA, Grades: user.Grades.Data()}
}

// Meets reports whether profile clears every threshold in min. A missing grade never
// clears a threshold; a scholarship with no thresholds is met by everyone.
func Meets(profile GradeProfile, min models.MinimumGrades) bool {
	if min.GPA != nil {
		if profile.GPA == nil || *profile.GPA < *min.GPA {
			return false
		}
	}
	if len(min.Subjects) == 0 {
		return true
	}
	grades := normalize(profile.Grades)
	for subject, threshold := range min.Subjects {
		grade, ok := grades[normalizeSubject(subject)]
		if !ok || grade < threshold {
			return false
		}
	}
	return true
}

// Snapshot freezes the result of Meets at now.
func Snapshot(profile GradeProfile, min models.MinimumGrades, now time.Time) models.EligibilitySnapshot {
	return models.EligibilitySnapshot{
		MeetsGradeRequirement: Meets(profile, min),
		CheckedAt:             now.UTC(),
	}
}

func normalize(grades map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(grades))
	for subject, grade := range grades {
		out[normalizeSubject(subject)] = grade
	}
	return out
}

func normalizeSubject(subject string) string {
	return strings.ToLower(strings.TrimSpace(subject))
}
