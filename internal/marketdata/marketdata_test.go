package marketdata

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchcast/internal/config"
	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/outcome"
)

func testMatch() models.Match {
	return models.NewMatch("Arsenal", "Chelsea", "Premier League", time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC))
}

func testClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:             time.Second,
		MaxRetries:          0,
		RetryWaitMin:        time.Millisecond,
		RetryWaitMax:        time.Millisecond,
		CircuitBreakerMax:   2,
		CircuitBreakerReset: time.Minute,
	}
}

type stubSource struct {
	name  string
	data  *models.MarketData
	err   error
	calls int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context, match models.Match) (*models.MarketData, error) {
	s.calls++
	return s.data, s.err
}

func TestHTTPSourceFetch(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/odds", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"home_odds":"2.10","draw_odds":"3.40","away_odds":"3.60","volume":"125000","movement":"falling","sharp_money":"40000","public_money":"85000"}`))
	}))
	defer server.Close()

	src := NewHTTPSource(NewRateLimitedHTTPClient(testClientConfig(), nil), server.URL+"/v1/")
	data, err := src.Fetch(context.Background(), testMatch())
	require.NoError(t, err)

	assert.Equal(t, "away=Chelsea&home=Arsenal", gotQuery)
	assert.Equal(t, 2.10, data.HomeOdds)
	assert.Equal(t, 3.40, data.DrawOdds)
	assert.Equal(t, 3.60, data.AwayOdds)
	assert.Equal(t, 125000.0, data.Volume)
	assert.Equal(t, models.MovementFalling, data.Movement)
	assert.Equal(t, SourceHTTP, data.Source)
	assert.Equal(t, SourceHTTP, src.Name())
}

func TestHTTPSourceErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode string
	}{
		{name: "not found", status: http.StatusNotFound, wantCode: ErrCodeNotFound},
		{name: "bad request", status: http.StatusBadRequest, body: "nope", wantCode: ErrCodeServerError},
		{name: "malformed json", status: http.StatusOK, body: `{"home_odds":`, wantCode: ErrCodeInvalidData},
		{name: "odds at evens floor", status: http.StatusOK, body: `{"home_odds":"1.00","draw_odds":"3.4","away_odds":"3.6"}`, wantCode: ErrCodeInvalidData},
		{name: "unknown movement", status: http.StatusOK, body: `{"home_odds":"2.1","draw_odds":"3.4","away_odds":"3.6","movement":"sideways"}`, wantCode: ErrCodeInvalidData},
		{name: "negative volume", status: http.StatusOK, body: `{"home_odds":"2.1","draw_odds":"3.4","away_odds":"3.6","volume":"-5"}`, wantCode: ErrCodeInvalidData},
		{name: "server error", status: http.StatusInternalServerError, wantCode: ErrCodeNetworkError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			src := NewHTTPSource(NewRateLimitedHTTPClient(testClientConfig(), nil), server.URL)
			_, err := src.Fetch(context.Background(), testMatch())
			require.Error(t, err)

			var srcErr *SourceError
			require.True(t, errors.As(err, &srcErr))
			assert.Equal(t, tt.wantCode, srcErr.Code)
		})
	}
}

func TestHTTPSourceNotFoundIsMarketDataMiss(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	src := NewHTTPSource(NewRateLimitedHTTPClient(testClientConfig(), nil), server.URL)
	_, err := src.Fetch(context.Background(), testMatch())
	assert.ErrorIs(t, err, models.ErrMarketDataMiss)
}

func TestHTTPSourceInvalidOddsKeepsInputError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"home_odds":"2.1","draw_odds":"0.5","away_odds":"3.6"}`))
	}))
	defer server.Close()

	src := NewHTTPSource(NewRateLimitedHTTPClient(testClientConfig(), nil), server.URL)
	_, err := src.Fetch(context.Background(), testMatch())

	var inputErr *models.InvalidInputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "draw_odds", inputErr.Field)
}

func TestCircuitBreakerOpensAndResets(t *testing.T) {
	var hits atomic.Int32
	var healthy atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"home_odds":"2.1","draw_odds":"3.4","away_odds":"3.6"}`))
	}))
	defer server.Close()

	client := NewRateLimitedHTTPClient(testClientConfig(), nil)
	clock := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return clock }
	src := NewHTTPSource(client, server.URL)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := src.Fetch(ctx, testMatch())
		require.Error(t, err)
	}
	assert.True(t, client.IsOpen())
	assert.Equal(t, int32(2), hits.Load())

	_, err := src.Fetch(ctx, testMatch())
	assert.ErrorIs(t, err, ErrCircuitOpen)
	var srcErr *SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, ErrCodeCircuitOpen, srcErr.Code)
	assert.Equal(t, int32(2), hits.Load(), "open breaker does not reach the server")

	healthy.Store(true)
	clock = clock.Add(2 * time.Minute)
	assert.False(t, client.IsOpen())

	data, err := src.Fetch(ctx, testMatch())
	require.NoError(t, err)
	assert.Equal(t, 2.1, data.HomeOdds)
	assert.False(t, client.IsOpen())
	assert.Equal(t, int32(3), hits.Load())
}

func TestCircuitBreakerAdmitsOneTrialRequest(t *testing.T) {
	client := NewRateLimitedHTTPClient(testClientConfig(), nil)
	clock := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return clock }
	refused := errors.New("connection refused")

	client.recordFailure(refused)
	client.recordFailure(refused)
	assert.ErrorIs(t, client.allow(), ErrCircuitOpen)

	clock = clock.Add(2 * time.Minute)
	require.NoError(t, client.allow())
	assert.ErrorIs(t, client.allow(), ErrCircuitOpen, "second caller waits for the trial")
	assert.True(t, client.IsOpen())

	client.recordFailure(refused)
	assert.ErrorIs(t, client.allow(), ErrCircuitOpen, "failed trial reopens the breaker")

	clock = clock.Add(2 * time.Minute)
	require.NoError(t, client.allow())
	client.recordSuccess()
	assert.False(t, client.IsOpen())
	require.NoError(t, client.allow())
	require.NoError(t, client.allow())
}

func TestHTTPClientConfigFrom(t *testing.T) {
	cfg := HTTPClientConfigFrom(config.MarketDataConfig{TimeoutSeconds: 3, RateLimit: 1.5})
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 1.5, cfg.RateLimit)
	assert.Equal(t, DefaultHTTPClientConfig().MaxRetries, cfg.MaxRetries)
	assert.Equal(t, DefaultHTTPClientConfig().CircuitBreakerMax, cfg.CircuitBreakerMax)
}

func TestSimulatedSource(t *testing.T) {
	match := testMatch()
	src := NewSimulatedSource(42)

	data, err := src.Fetch(context.Background(), match)
	require.NoError(t, err)
	require.NoError(t, outcome.ValidateOdds(*data))

	for _, odds := range []float64{data.HomeOdds, data.DrawOdds, data.AwayOdds} {
		assert.InDelta(t, odds, math.Round(odds*100)/100, 1e-9, "odds are quoted to 2 dp")
	}
	assert.Equal(t, math.Round(data.Volume), data.Volume)
	assert.GreaterOrEqual(t, data.HomeOdds, 1.8)
	assert.LessOrEqual(t, data.HomeOdds, 3.8)
	assert.Equal(t, outcome.SourceSimulated, data.Source)

	again, err := NewSimulatedSource(42).Fetch(context.Background(), match)
	require.NoError(t, err)
	assert.Equal(t, data, again)

	other, err := src.Fetch(context.Background(), testMatch())
	require.NoError(t, err)
	assert.NotEqual(t, data, other, "fixtures get independent streams")

	home := models.Match{HomeTeam: "Arsenal", AwayTeam: "Chelsea"}
	reverse := models.Match{HomeTeam: "Chelsea", AwayTeam: "Arsenal"}
	first, err := src.Fetch(context.Background(), home)
	require.NoError(t, err)
	second, err := src.Fetch(context.Background(), reverse)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "fixtures without an ID are told apart by their teams")
}

func TestSimulatedSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSimulatedSource(1).Fetch(ctx, testMatch())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFallbackSource(t *testing.T) {
	live := &models.MarketData{HomeOdds: 2, DrawOdds: 3.3, AwayOdds: 4, Source: SourceHTTP}
	backup := &models.MarketData{HomeOdds: 2.5, DrawOdds: 3.2, AwayOdds: 3, Source: outcome.SourceSimulated}

	t.Run("primary answers", func(t *testing.T) {
		primary := &stubSource{name: "live", data: live}
		fallback := &stubSource{name: "sim", data: backup}
		src := NewFallbackSource(primary, fallback, nil)

		data, err := src.Fetch(context.Background(), testMatch())
		require.NoError(t, err)
		assert.Same(t, live, data)
		assert.Zero(t, fallback.calls)
		assert.Equal(t, "live+sim", src.Name())
	})

	t.Run("primary fails", func(t *testing.T) {
		primary := &stubSource{name: "live", err: errors.New("connection refused")}
		fallback := &stubSource{name: "sim", data: backup}

		data, err := NewFallbackSource(primary, fallback, nil).Fetch(context.Background(), testMatch())
		require.NoError(t, err)
		assert.Same(t, backup, data)
		assert.Equal(t, 1, fallback.calls)
	})

	t.Run("both fail", func(t *testing.T) {
		primary := &stubSource{name: "live", err: errors.New("connection refused")}
		fallback := &stubSource{name: "sim", err: models.ErrMarketDataMiss}

		_, err := NewFallbackSource(primary, fallback, nil).Fetch(context.Background(), testMatch())
		assert.ErrorIs(t, err, models.ErrMarketDataMiss)
	})

	t.Run("cancellation is not absorbed", func(t *testing.T) {
		primary := &stubSource{name: "live", err: context.Canceled}
		fallback := &stubSource{name: "sim", data: backup}

		_, err := NewFallbackSource(primary, fallback, nil).Fetch(context.Background(), testMatch())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, fallback.calls)
	})
}

func TestNewSource(t *testing.T) {
	src := NewSource(config.MarketDataConfig{}, 1, nil)
	assert.IsType(t, &SimulatedSource{}, src)

	src = NewSource(config.MarketDataConfig{Enabled: true}, 1, nil)
	assert.IsType(t, &SimulatedSource{}, src, "no endpoint means simulation")

	src = NewSource(config.MarketDataConfig{Enabled: true, BaseURL: "http://localhost:1"}, 1, nil)
	assert.IsType(t, &FallbackSource{}, src)
	assert.Equal(t, "http+simulated", src.Name())
}

func TestNewSourceFallsBackWhenEndpointDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewRateLimitedHTTPClient(testClientConfig(), nil)
	src := NewFallbackSource(NewHTTPSource(client, server.URL), NewSimulatedSource(3), nil)

	data, err := src.Fetch(context.Background(), testMatch())
	require.NoError(t, err)
	assert.Equal(t, outcome.SourceSimulated, data.Source)
}
