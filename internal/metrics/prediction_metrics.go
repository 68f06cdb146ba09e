package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prediction counter vectors
var (
	ModelPredictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "model_predictions_total",
		Help:      "Total number of outcome model predictions by model and status",
	}, []string{"model", "status"})

	EnsembleCombinationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ensemble_combinations_total",
		Help:      "Total number of ensemble combinations by weighting mode",
	}, []string{"mode"})

	MarketDataFetchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "market_data_fetches_total",
		Help:      "Total number of market data fetches by source and status",
	}, []string{"source", "status"})

	SlateRefreshesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slate_refreshes_total",
		Help:      "Total number of slate refresh runs by status",
	}, []string{"status"})
)

// Prediction histogram vectors
var (
	ModelPredictionDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "model_prediction_duration_seconds",
		Help:      "Duration of outcome model predictions in seconds",
		Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"model"})

	ModelConfidence = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "model_confidence",
		Help:      "Confidence reported by each outcome model",
		Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
	}, []string{"model"})
)

// RecordModelPrediction records one model evaluation.
func RecordModelPrediction(model, status string, durationSeconds float64) {
	ModelPredictionsTotal.WithLabelValues(model, status).Inc()
	ModelPredictionDuration.WithLabelValues(model).Observe(durationSeconds)
}

// RecordModelConfidence records the confidence of a model prediction.
func RecordModelConfidence(model string, confidence float64) {
	ModelConfidence.WithLabelValues(model).Observe(confidence)
}

// RecordEnsembleCombination records an ensemble combination.
func RecordEnsembleCombination(mode string) {
	EnsembleCombinationsTotal.WithLabelValues(mode).Inc()
}

// RecordMarketDataFetch records a market data fetch.
func RecordMarketDataFetch(source, status string) {
	MarketDataFetchesTotal.WithLabelValues(source, status).Inc()
}

// RecordSlateRefresh records a slate refresh run.
func RecordSlateRefresh(status string, durationSeconds float64) {
	SlateRefreshesTotal.WithLabelValues(status).Inc()
	SlateRefreshDuration.Observe(durationSeconds)
}
