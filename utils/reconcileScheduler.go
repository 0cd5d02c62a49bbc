package utils

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const reconcileTimeout = 5 * time.Minute

// Reconciler repairs aggregate counters that cannot be kept consistent transactionally
type Reconciler interface {
	ReconcileUserCounters(ctx context.Context) (int, error)
}

// runReconcile is one scheduled run, bounded by reconcileTimeout
func runReconcile(r Reconciler, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
	defer cancel()

	started := time.Now()
	corrected, err := r.ReconcileUserCounters(ctx)
	entry := log.WithFields(logrus.Fields{
		"job":       "reconcile_user_counters",
		"corrected": corrected,
		"took":      time.Since(started).String(),
	})
	if err != nil {
		entry.WithError(err).Error("reconcile run failed")
		return
	}
	entry.Debug("reconcile run finished")
}

// StartReconcileScheduler runs counter reconciliation on schedule (standard cron or "@every" syntax).
// Overlapping runs are skipped. The caller stops the returned cron on shutdown.
func StartReconcileScheduler(schedule string, r Reconciler, log *logrus.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(schedule, func() { runReconcile(r, log) }); err != nil {
		return nil, err
	}
	c.Start()

	log.WithField("schedule", schedule).Info("reconcile scheduler started")
	return c, nil
}
