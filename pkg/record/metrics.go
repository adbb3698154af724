package record

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	faultDoubleRelease   = "double_release"
	faultPresentReleased = "present_released"
)

// lifecycleMetrics holds all Prometheus metrics for record lifecycle tracking
type lifecycleMetrics struct {
	recordsCreated  prometheus.Counter
	recordsReleased prometheus.Counter
	nameTruncations prometheus.Counter
	presentations   prometheus.Counter
	allocFailures   prometheus.Counter
	lifecycleFaults *prometheus.CounterVec
}

// metrics is registered once on the default registry; an embedding
// process exposes it however it likes.
var metrics = newLifecycleMetrics()

func newLifecycleMetrics() *lifecycleMetrics {
	return &lifecycleMetrics{
		recordsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recordkit_records_created_total",
				Help: "Total number of records created",
			},
		),

		recordsReleased: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recordkit_records_released_total",
				Help: "Total number of records released",
			},
		),

		nameTruncations: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recordkit_name_truncations_total",
				Help: "Total number of record names truncated to capacity",
			},
		),

		presentations: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recordkit_presentations_total",
				Help: "Total number of record presentations",
			},
		),

		allocFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recordkit_alloc_failures_total",
				Help: "Total number of failed record allocations",
			},
		),

		lifecycleFaults: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recordkit_lifecycle_faults_total",
				Help: "Total number of caller contract violations caught",
			},
			[]string{"fault"},
		),
	}
}
