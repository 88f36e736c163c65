package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request latency per route.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "coursespeak_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
			Buckets: []float64{
				0.001, // 1ms
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
				5.0,   // 5s
			},
		},
		[]string{"route", "method", "status"},
	)

	// StoreMutations counts admin write operations by kind and outcome.
	StoreMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coursespeak_store_mutations_total",
			Help: "Number of deal store mutations",
		},
		[]string{"op", "status"}, // op: create/update/delete, status: success or failure
	)
)

// RecordRequestDuration records the duration of one HTTP request.
func RecordRequestDuration(route, method, status string, seconds float64) {
	RequestDuration.WithLabelValues(route, method, status).Observe(seconds)
}

// RecordMutation records the outcome of one store mutation.
func RecordMutation(op, status string) {
	StoreMutations.WithLabelValues(op, status).Inc()
}
