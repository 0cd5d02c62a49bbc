// Package testutil holds helpers shared by package tests.
package testutil

import (
	"io"
	"testing"
	"time"

	"scholarhub/database"
	"scholarhub/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewDB returns a migrated, private in-memory sqlite database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// Logger discards everything.
func Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Clock returns a fixed time source that can be moved forward.
type Clock struct {
	T time.Time
}

func (c *Clock) Now() time.Time { return c.T }

func (c *Clock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// SeedScholarship inserts a scholarship with the given deadline and GPA threshold (nil for none).
func SeedScholarship(t *testing.T, db *gorm.DB, id string, deadline time.Time, minGPA *float64) *models.Scholarship {
	t.Helper()
	s := &models.Scholarship{
		ID:            id,
		Title:         "Scholarship " + id,
		Provider:      "Test Foundation",
		Description:   "- Official transcript\n- Personal essay",
		Amount:        1000,
		Deadline:      deadline,
		MinimumGrades: datatypes.NewJSONType(models.MinimumGrades{GPA: minGPA}),
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("seed scholarship: %v", err)
	}
	return s
}

// SeedUser inserts a user with the given role.
func SeedUser(t *testing.T, db *gorm.DB, id, role string) *models.User {
	t.Helper()
	u := &models.User{ID: id, Email: id + "@example.com", Name: id, Role: role}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}
