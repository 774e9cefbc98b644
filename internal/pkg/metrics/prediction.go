// Package metrics provides Prometheus metrics recording for internal packages.
// This package exists to avoid import cycles between service and middleware packages.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// predictionsTotal counts successful estimates
	predictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heartmonitor_predictions_total",
			Help: "Total number of heart rate predictions served",
		},
		[]string{"bmi_category", "body_size"},
	)

	// validationFailures counts rejected prediction payloads
	validationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heartmonitor_validation_failures_total",
			Help: "Total number of rejected prediction requests",
		},
		[]string{"code", "field"},
	)

	// predictedHeartRate tracks the distribution of returned estimates
	predictedHeartRate = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "heartmonitor_predicted_heart_rate_bpm",
			Help:    "Distribution of predicted resting heart rates",
			Buckets: prometheus.LinearBuckets(50, 5, 15),
		},
	)

	// predictionDuration tracks time spent validating and estimating
	predictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "heartmonitor_prediction_duration_seconds",
			Help:    "Prediction latency in seconds, excluding transport",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
	)
)

// RecordPrediction records a successful prediction
func RecordPrediction(bmiCategory, bodySize string, heartRate int, duration time.Duration) {
	predictionsTotal.WithLabelValues(bmiCategory, bodySize).Inc()
	predictedHeartRate.Observe(float64(heartRate))
	predictionDuration.Observe(duration.Seconds())
}

// RecordValidationFailure records a rejected prediction request
func RecordValidationFailure(code, field string) {
	validationFailures.WithLabelValues(code, field).Inc()
}

// PredictionsTotal exposes the prediction counter for tests
func PredictionsTotal() *prometheus.CounterVec {
	return predictionsTotal
}

// ValidationFailures exposes the validation failure counter for tests
func ValidationFailures() *prometheus.CounterVec {
	return validationFailures
}
