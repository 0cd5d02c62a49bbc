package models

import (
	"time"

	"gorm.io/datatypes"
)

// DocumentKind enum values
const (
	DocumentTranscript  = "transcript"
	DocumentCertificate = "certificate"
)

// Document is an uploaded academic document and what the extractor read from it
type Document struct {
	ID              string            `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID          string            `gorm:"not null;type:varchar(128);index" json:"userId"`
	Kind            string            `gorm:"not null;type:varchar(20)" json:"kind"`
	Filename        string            `json:"filename"`
	MimeType        string            `gorm:"type:varchar(100)" json:"mimeType"`
	SizeBytes       int               `json:"sizeBytes"`
	ExtractedFields datatypes.JSONMap `json:"extractedFields"`
	CreatedAt       time.Time         `json:"createdAt"`
}

func (Document) TableName() string {
	return "documents"
}

// Transcript is the structured grade record extracted from a transcript document
type Transcript struct {
	ID          string                                 `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      string                                 `gorm:"not null;type:varchar(128);index" json:"userId"`
	DocumentID  string                                 `gorm:"not null;type:varchar(36);uniqueIndex" json:"documentId"`
	Institution string                                 `json:"institution"`
	GPA         *float64                               `json:"gpa"`
	Grades      datatypes.JSONType[map[string]float64] `json:"grades"`
	CreatedAt   time.Time                              `json:"createdAt"`
}

func (Transcript) TableName() string {
	return "transcripts"
}
