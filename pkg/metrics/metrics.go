// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// ChatCompletionsTotal tracks chat turns by outcome: success when the
	// provider answered, fallback when the canned reply was used, error
	// when the request failed before the provider call.
	ChatCompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_completions_total",
			Help: "Chat completions by outcome",
		},
		[]string{"outcome"},
	)

	// ProviderRequestDuration tracks outbound model provider call duration.
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_provider_request_duration_seconds",
			Help:    "Model provider request duration in seconds",
			Buckets: []float64{.25, .5, 1, 2, 5, 10, 20, 30, 45, 60},
		},
		[]string{"provider", "status"},
	)

	// ProviderTokensTotal tracks tokens reported by the provider.
	ProviderTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_provider_tokens_total",
			Help: "Total model provider tokens processed",
		},
		[]string{"provider", "direction"},
	)

	// TranscriptAppendsTotal tracks transcript store appends by status.
	TranscriptAppendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transcript_appends_total",
			Help: "Transcript store appends by status",
		},
		[]string{"status"},
	)
)

// RecordRequest records an HTTP request's metrics.
func RecordRequest(method, path, status string, durationSec float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSec)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordProviderCall records an outbound provider call's metrics.
func RecordProviderCall(provider, status string, durationSec float64, tokensIn, tokensOut int) {
	ProviderRequestDuration.WithLabelValues(provider, status).Observe(durationSec)
	if tokensIn > 0 {
		ProviderTokensTotal.WithLabelValues(provider, "in").Add(float64(tokensIn))
	}
	if tokensOut > 0 {
		ProviderTokensTotal.WithLabelValues(provider, "out").Add(float64(tokensOut))
	}
}
