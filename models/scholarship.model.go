package models

import (
	"time"

	"gorm.io/datatypes"
)

// MinimumGrades are the grade thresholds a scholarship requires. A nil GPA means no GPA threshold.
type MinimumGrades struct {
	GPA      *float64           `json:"gpa,omitempty"`
	Subjects map[string]float64 `json:"subjects,omitempty"`
}

// Scholarship is read-only from the workflow's point of view
type Scholarship struct {
	ID            string                            `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title         string                            `gorm:"not null" json:"title"`
	Provider      string                            `json:"provider"`
	Description   string                            `gorm:"type:text" json:"description"`
	Amount        float64                           `gorm:"default:0" json:"amount"`
	Deadline      time.Time                         `gorm:"index" json:"deadline"`
	MinimumGrades datatypes.JSONType[MinimumGrades] `json:"minimumGrades"`
	CreatedAt     time.Time                         `json:"createdAt"`
	UpdatedAt     time.Time                         `json:"updatedAt"`
}

func (Scholarship) TableName() string {
	return "scholarships"
}
