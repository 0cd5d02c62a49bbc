package main

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"scholarhub/config"
	"scholarhub/database"
	"scholarhub/models"
	"scholarhub/repository"
	"scholarhub/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

type scholarshipRecord struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Provider      string               `json:"provider"`
	Description   string               `json:"description"`
	Amount        float64              `json:"amount"`
	Deadline      string               `json:"deadline"`
	MinimumGrades models.MinimumGrades `json:"minimumGrades"`
}

// Usage: go run scripts/seedScholarships.go [file.json]
func main() {
	cfg := config.LoadConfig()
	log := utils.NewLogger(cfg.LogLevel)

	path := "scripts/scholarships.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Fatalf("failed to read %s", path)
	}
	var records []scholarshipRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.WithError(err).Fatal("failed to parse scholarships")
	}

	db, err := database.ConnectDb(cfg)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	repo := repository.NewScholarshipRepository(db)

	ctx := context.Background()
	inserted, skipped := 0, 0
	for i, rec := range records {
		if strings.TrimSpace(rec.ID) == "" || strings.TrimSpace(rec.Title) == "" {
			log.WithField("row", i).Warn("skipping scholarship without id or title")
			skipped++
			continue
		}
		deadline, err := time.Parse("2006-01-02", rec.Deadline)
		if err != nil {
			log.WithField("id", rec.ID).WithError(err).Warn("skipping scholarship with bad deadline")
			skipped++
			continue
		}

		err = repo.Upsert(ctx, &models.Scholarship{
			ID:            rec.ID,
			Title:         rec.Title,
			Provider:      rec.Provider,
			Description:   rec.Description,
			Amount:        rec.Amount,
			Deadline:      deadline.Add(23*time.Hour + 59*time.Minute),
			MinimumGrades: datatypes.NewJSONType(rec.MinimumGrades),
		})
		if err != nil {
			log.WithField("id", rec.ID).WithError(err).Error("failed to upsert scholarship")
			skipped++
			continue
		}
		inserted++
	}

	log.WithFields(logrus.Fields{"inserted": inserted, "skipped": skipped}).Info("seed finished")
}
