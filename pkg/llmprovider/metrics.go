package llmprovider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CallsTotal counts provider calls per model and outcome
	CallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finmail_llm_calls_total",
			Help: "Total number of completion calls",
		},
		[]string{"model", "outcome"},
	)

	// CallDuration tracks completion call latency
	CallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "finmail_llm_call_duration_seconds",
			Help:    "Completion call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)

	// BackoffSeconds accumulates time spent waiting between attempts
	BackoffSeconds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finmail_llm_backoff_seconds_total",
			Help: "Total seconds spent in retry backoff",
		},
		[]string{"reason"},
	)
)

func outcomeLabel(o Outcome) string {
	if o.Err == nil {
		return "success"
	}
	return o.Kind.String()
}
