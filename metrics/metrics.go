package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ApplicationsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "scholarhub_applications_started_total", Help: "Total applications created"},
	)
	StageReviews = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "scholarhub_stage_reviews_total", Help: "Admin stage reviews by stage and outcome"},
		[]string{"stage", "outcome"},
	)
	WriteConflicts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "scholarhub_write_conflicts_total", Help: "Compare-and-swap writes that lost a race"},
		[]string{"operation"},
	)
	ExtractionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "scholarhub_extraction_failures_total", Help: "Failed document extractions by reason"},
		[]string{"reason"},
	)
	ReconciledUsers = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "scholarhub_reconciled_users_total", Help: "User counters corrected by reconciliation"},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(ApplicationsStarted, StageReviews, WriteConflicts, ExtractionFailures, ReconciledUsers)
}
