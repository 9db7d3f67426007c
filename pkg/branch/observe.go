package branch

import "time"

// MetricsRecorder receives one observation per manager operation. Recorders
// must be cheap and non-blocking; the manager calls them synchronously.
type MetricsRecorder interface {
	Observe(operation string, success bool, duration time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) Observe(string, bool, time.Duration) {}

// Operation names reported to the metrics recorder.
const (
	OpCreate   = "create"
	OpGet      = "get"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpSetOrder = "set_order"
	OpReduce   = "reduce"
)
