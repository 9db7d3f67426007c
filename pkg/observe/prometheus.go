package observe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"branchstore/pkg/branch"
)

var _ branch.MetricsRecorder = (*PrometheusRecorder)(nil)

// PrometheusRecorder exports manager operation counters and durations through
// a Prometheus registerer.
type PrometheusRecorder struct {
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
}

// NewPrometheusRecorder constructs a recorder and registers its collectors.
// A nil registerer falls back to the default registry.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "branchstore",
		Name:      "operations_total",
		Help:      "Branch manager operations by result.",
	}, []string{"operation", "status"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "branchstore",
		Name:      "operation_duration_seconds",
		Help:      "Branch manager operation durations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
	for _, collector := range []prometheus.Collector{operations, durations} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return &PrometheusRecorder{operations: operations, durations: durations}, nil
}

// Observe records a manager operation outcome.
func (r *PrometheusRecorder) Observe(operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	r.operations.WithLabelValues(operation, status).Inc()
	r.durations.WithLabelValues(operation).Observe(duration.Seconds())
}
