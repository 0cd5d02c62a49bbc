package services

import (
	"context"
	"encoding/json"
	"time"

	"scholarhub/models"

	"github.com/sirupsen/logrus"
)

// recordHistory appends an audit row after the aggregate write. The aggregate is the
// source of truth, so a failed history write is logged and otherwise ignored.
func recordHistory(ctx context.Context, store HistoryStore, log *logrus.Logger, entry models.ApplicationHistory, metadata map[string]interface{}, at time.Time) {
	entry.CreatedAt = at.UTC()
	if metadata != nil {
		if raw, err := json.Marshal(metadata); err == nil {
			entry.Metadata = raw
		}
	}
	if err := store.Create(ctx, &entry); err != nil {
		log.WithFields(logrus.Fields{
			"application_id": entry.ApplicationID,
			"action":         entry.Action,
		}).WithError(err).Warn("failed to record application history")
	}
}
