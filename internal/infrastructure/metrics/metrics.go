package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ai_service"

var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route, method and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	predictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Category predictions served, by predicted category.",
	}, []string{"category"})

	pipelineFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pipeline_failures_total",
		Help:      "Inference pipeline failures, by stage.",
	}, []string{"stage"})

	artifactsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "artifacts_loaded",
		Help:      "1 if the vectorizer and classifier loaded at startup, 0 otherwise.",
	})
)

// ObserveRequest records the latency of a served HTTP request
func ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// IncPrediction counts a successful prediction
func IncPrediction(category string) {
	predictionsTotal.WithLabelValues(category).Inc()
}

// IncPipelineFailure counts a failure in the given pipeline stage
func IncPipelineFailure(stage string) {
	pipelineFailuresTotal.WithLabelValues(stage).Inc()
}

// SetArtifactsLoaded reports the artifact load status
func SetArtifactsLoaded(loaded bool) {
	if loaded {
		artifactsLoaded.Set(1)
		return
	}
	artifactsLoaded.Set(0)
}
