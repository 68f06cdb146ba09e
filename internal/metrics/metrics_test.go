package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// value reads a counter or gauge sample from the registry
func value(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := GetRegistry().Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != namespace+"_"+name {
			continue
		}
	metrics:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metrics
				}
			}
			if m.GetCounter() != nil {
				return m.GetCounter().GetValue()
			}
			return m.GetGauge().GetValue()
		}
	}
	return 0
}

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
	assert.Same(t, registry, InitRegistry())
}

func TestRecordModelPrediction(t *testing.T) {
	InitRegistry()

	labels := map[string]string{"model": "Statistical Rate", "status": StatusSuccess}
	before := value(t, "model_predictions_total", labels)
	RecordModelPrediction("Statistical Rate", StatusSuccess, 0.0002)
	after := value(t, "model_predictions_total", labels)

	assert.Equal(t, before+1, after)
}

func TestRecordEnsembleCombination(t *testing.T) {
	InitRegistry()

	tests := []struct {
		name string
		mode string
	}{
		{name: "static weights", mode: "static"},
		{name: "confidence weights", mode: "confidence"},
		{name: "equal weights", mode: "equal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := map[string]string{"mode": tt.mode}
			before := value(t, "ensemble_combinations_total", labels)
			RecordEnsembleCombination(tt.mode)
			assert.Equal(t, before+1, value(t, "ensemble_combinations_total", labels))
		})
	}
}

func TestRecordMarketData(t *testing.T) {
	InitRegistry()

	before := value(t, "market_data_fallbacks_total", nil)
	assert.NotPanics(t, func() {
		RecordMarketDataFetch("http", StatusError)
		RecordMarketDataFallback()
		RecordCircuitBreakerTrip()
	})
	assert.Equal(t, before+1, value(t, "market_data_fallbacks_total", nil))
}

func TestGauges(t *testing.T) {
	InitRegistry()

	UpdateSlateSize(12)
	assert.Equal(t, 12.0, value(t, "slate_size", nil))

	UpdateCacheHitRatio(0.75)
	assert.Equal(t, 0.75, value(t, "forecast_cache_hit_ratio", nil))
}

func TestRecordSlateRefreshAndConfidence(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordSlateRefresh(StatusSuccess, 0.4)
		RecordModelConfidence("Rating Differential", 0.82)
		RecordDerivedMarkets()
	})
}

func TestHandler(t *testing.T) {
	InitRegistry()
	RecordDerivedMarkets()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "matchcast_derived_markets_total"))
}
