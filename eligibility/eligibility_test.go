package eligibility

import (
	"testing"
	"time"

	"scholarhub/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func ptr(v float64) *float64 { return &v }

func TestMeets(t *testing.T) {
	tests := []struct {
		name    string
		profile GradeProfile
		min     models.MinimumGrades
		want    bool
	}{
		{"no requirements", GradeProfile{}, models.MinimumGrades{}, true},
		{"gpa above threshold", GradeProfile{GPA: ptr(3.6)}, models.MinimumGrades{GPA: ptr(3.5)}, true},
		{"gpa equal to threshold", GradeProfile{GPA: ptr(3.5)}, models.MinimumGrades{GPA: ptr(3.5)}, true},
		{"gpa below threshold", GradeProfile{GPA: ptr(3.2)}, models.MinimumGrades{GPA: ptr(3.5)}, false},
		{"gpa missing", GradeProfile{}, models.MinimumGrades{GPA: ptr(3.0)}, false},
		{
			"subject match ignores case",
			GradeProfile{Grades: map[string]float64{"Mathematics ": 90}},
			models.MinimumGrades{Subjects: map[string]float64{"mathematics": 85}},
			true,
		},
		{
			"subject missing",
			GradeProfile{Grades: map[string]float64{"physics": 95}},
			models.MinimumGrades{Subjects: map[string]float64{"mathematics": 85}},
			false,
		},
		{
			"one subject short",
			GradeProfile{GPA: ptr(3.9), Grades: map[string]float64{"mathematics": 90, "english": 70}},
			models.MinimumGrades{GPA: ptr(3.5), Subjects: map[string]float64{"mathematics": 85, "english": 75}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Meets(tt.profile, tt.min))
		})
	}
}

func TestSnapshotIsFrozenAtCallTime(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	user := &models.User{GPA: ptr(3.0), Grades: datatypes.NewJSONType(map[string]float64{"math": 80})}

	snap := Snapshot(ProfileOf(user), models.MinimumGrades{GPA: ptr(3.5)}, now)
	assert.False(t, snap.MeetsGradeRequirement)
	assert.Equal(t, now.UTC(), snap.CheckedAt)

	*user.GPA = 4.0
	assert.False(t, snap.MeetsGradeRequirement)
}

func TestProfileOfNilUser(t *testing.T) {
	assert.Equal(t, GradeProfile{}, ProfileOf(nil))
}
