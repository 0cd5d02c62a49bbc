package models

import (
	"time"

	"gorm.io/datatypes"
)

// Role enum values
const (
	RoleUser           = "user"
	RoleAdminSimulated = "admin_simulated"
)

// OnboardingFinalStep is the step at which onboarding counts as completed
const OnboardingFinalStep = 4

// User is a student profile keyed by the identity provider uid
type User struct {
	ID                  string                                 `gorm:"primaryKey;type:varchar(128)" json:"id"`
	Email               string                                 `gorm:"index" json:"email"`
	Name                string                                 `gorm:"default:''" json:"name"`
	Role                string                                 `gorm:"not null;type:varchar(20);default:'user'" json:"role"`
	HackathonMode       bool                                   `gorm:"default:false" json:"hackathonMode"`
	OnboardingStep      int                                    `gorm:"default:0" json:"onboardingStep"`
	OnboardingCompleted bool                                   `gorm:"default:false" json:"onboardingCompleted"`
	DocumentsUploaded   int                                    `gorm:"default:0" json:"documentsUploaded"`
	TranscriptUploaded  bool                                   `gorm:"default:false" json:"transcriptUploaded"`
	GPA                 *float64                               `json:"gpa"`
	Grades              datatypes.JSONType[map[string]float64] `json:"grades"`
	CreatedAt           time.Time                              `json:"createdAt"`
	UpdatedAt           time.Time                              `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdminSimulated
}

// Identity is the verified caller supplied by the identity provider
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
