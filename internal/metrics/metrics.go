package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	DispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlement_dispatch_total",
			Help: "Settlement dispatches by outcome and failure classification",
		},
		[]string{"outcome", "classification"},
	)

	GatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "settlement_gateway_request_duration_seconds",
			Help:    "Latency of debit submissions to the gateway",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"status"},
	)

	MessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlement_messages_total",
			Help: "Queue messages by acknowledge/retry decision",
		},
		[]string{"decision"},
	)

	PersistFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "settlement_persist_failures_total",
			Help: "Gateway-accepted settlements whose settlement event could not be recorded",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		DispatchTotal,
		GatewayRequestDuration,
		MessagesTotal,
		PersistFailuresTotal,
	)
}
