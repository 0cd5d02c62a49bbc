package services

import (
	"context"

	"scholarhub/metrics"

	"github.com/sirupsen/logrus"
)

// ReconcileService repairs user counters that drifted from the documents table.
type ReconcileService struct {
	users     UserStore
	documents DocumentStore
	log       *logrus.Logger
}

func NewReconcileService(users UserStore, documents DocumentStore, log *logrus.Logger) *ReconcileService {
	return &ReconcileService{users: users, documents: documents, log: log}
}

// ReconcileUserCounters recomputes documentsUploaded and transcriptUploaded for every user
// and returns how many users were corrected. A failure on one user does not stop the run.
func (s *ReconcileService) ReconcileUserCounters(ctx context.Context) (int, error) {
	ids, err := s.users.ListIDs(ctx)
	if err != nil {
		return 0, err
	}

	corrected := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return corrected, ctx.Err()
		}
		counts, err := s.documents.CountByUser(ctx, id)
		if err != nil {
			s.log.WithField("user_id", id).WithError(err).Warn("count documents")
			continue
		}
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			s.log.WithField("user_id", id).WithError(err).Warn("load user")
			continue
		}

		total := 0
		for _, n := range counts {
			total += n
		}
		hasTranscript := counts["transcript"] > 0
		if user.DocumentsUploaded == total && user.TranscriptUploaded == hasTranscript {
			continue
		}

		if _, err := s.users.Update(ctx, id, map[string]interface{}{
			"documents_uploaded":  total,
			"transcript_uploaded": hasTranscript,
		}); err != nil {
			s.log.WithField("user_id", id).WithError(err).Warn("update user counters")
			continue
		}
		corrected++
	}

	metrics.ReconciledUsers.Add(float64(corrected))
	s.log.WithField("corrected", corrected).Info("user counters reconciled")
	return corrected, nil
}
