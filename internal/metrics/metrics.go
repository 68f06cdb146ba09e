// Package metrics provides the centralized Prometheus metrics registry for the prediction engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "matchcast"

// Status label values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	DerivedMarketsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "derived_markets_total",
		Help:      "Total number of derived market sets generated",
	})
	MarketDataFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "market_data_fallbacks_total",
		Help:      "Total number of market data requests served by the fallback source",
	})
	CircuitBreakerTripsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "circuit_breaker_trips_total",
		Help:      "Total number of circuit breaker trips",
	})
)

// Gauge metrics
var (
	SlateSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "slate_size",
		Help:      "Number of fixtures in the last forecast slate",
	})
	ForecastCacheHitRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "forecast_cache_hit_ratio",
		Help:      "Hit ratio of the forecast cache",
	})
)

// Histogram metrics
var (
	SlateRefreshDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "slate_refresh_duration_seconds",
		Help:      "Duration of slate refresh runs in seconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(DerivedMarketsTotal)
		registry.MustRegister(MarketDataFallbacksTotal)
		registry.MustRegister(CircuitBreakerTripsTotal)

		registry.MustRegister(SlateSize)
		registry.MustRegister(ForecastCacheHitRatio)

		registry.MustRegister(SlateRefreshDuration)

		// Prediction metrics
		registry.MustRegister(ModelPredictionsTotal)
		registry.MustRegister(ModelPredictionDuration)
		registry.MustRegister(ModelConfidence)
		registry.MustRegister(EnsembleCombinationsTotal)
		registry.MustRegister(MarketDataFetchesTotal)
		registry.MustRegister(SlateRefreshesTotal)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	return InitRegistry()
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordDerivedMarkets records a derived market generation.
func RecordDerivedMarkets() {
	DerivedMarketsTotal.Inc()
}

// RecordMarketDataFallback records a request served by the fallback source.
func RecordMarketDataFallback() {
	MarketDataFallbacksTotal.Inc()
}

// RecordCircuitBreakerTrip records a circuit breaker trip event.
func RecordCircuitBreakerTrip() {
	CircuitBreakerTripsTotal.Inc()
}

// UpdateSlateSize updates the slate size gauge.
func UpdateSlateSize(n int) {
	SlateSize.Set(float64(n))
}

// UpdateCacheHitRatio updates the forecast cache hit ratio gauge.
func UpdateCacheHitRatio(ratio float64) {
	ForecastCacheHitRatio.Set(ratio)
}
