package marketdata

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/matchcast/internal/config"
	"github.com/yourusername/matchcast/internal/logger"
	"github.com/yourusername/matchcast/internal/metrics"
)

// HTTPClientConfig holds configuration for HTTP clients
type HTTPClientConfig struct {
	Timeout             time.Duration
	MaxRetries          int
	RetryWaitMin        time.Duration
	RetryWaitMax        time.Duration
	RateLimit           float64 // requests per second
	CircuitBreakerMax   int     // consecutive failures before the breaker opens
	CircuitBreakerReset time.Duration
}

// DefaultHTTPClientConfig returns recommended defaults
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:             10 * time.Second,
		MaxRetries:          3,
		RetryWaitMin:        100 * time.Millisecond,
		RetryWaitMax:        5 * time.Second,
		RateLimit:           5.0,
		CircuitBreakerMax:   5,
		CircuitBreakerReset: 30 * time.Second,
	}
}

// HTTPClientConfigFrom overlays the non-zero market data settings on the defaults
func HTTPClientConfigFrom(cfg config.MarketDataConfig) HTTPClientConfig {
	out := DefaultHTTPClientConfig()
	if cfg.TimeoutSeconds > 0 {
		out.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if cfg.MaxRetries > 0 {
		out.MaxRetries = cfg.MaxRetries
	}
	if cfg.RateLimit > 0 {
		out.RateLimit = cfg.RateLimit
	}
	if cfg.CircuitBreakerMax > 0 {
		out.CircuitBreakerMax = cfg.CircuitBreakerMax
	}
	return out
}

// RateLimitedHTTPClient wraps retryablehttp.Client with rate limiting and a
// circuit breaker. After CircuitBreakerReset an open breaker lets a single
// trial request through.
type RateLimitedHTTPClient struct {
	client            *retryablehttp.Client
	limiter           *rate.Limiter
	circuitBreakerMax int
	resetAfter        time.Duration
	log               *logger.MarketDataLogger

	mu                sync.Mutex
	consecutiveErrors int
	openedAt          time.Time
	probing           bool // a half-open trial request is in flight
	lastError         error
	now               func() time.Time
}

// NewRateLimitedHTTPClient creates a new rate-limited HTTP client
func NewRateLimitedHTTPClient(cfg HTTPClientConfig, log *logrus.Logger) *RateLimitedHTTPClient {
	if log == nil {
		log = logger.Discard()
	}
	mdLog := logger.NewMarketDataLogger(log)

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.CheckRetry = customRetryPolicy()
	retryClient.Logger = leveledLogger{entry: mdLog.Entry}

	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}

	return &RateLimitedHTTPClient{
		client:            retryClient,
		limiter:           rate.NewLimiter(limit, 1),
		circuitBreakerMax: cfg.CircuitBreakerMax,
		resetAfter:        cfg.CircuitBreakerReset,
		log:               mdLog,
		now:               time.Now,
	}
}

// Do executes an HTTP request with rate limiting and circuit breaker
func (c *RateLimitedHTTPClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := c.allow(); err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		c.releaseProbe()
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	rreq, err := retryablehttp.FromRequest(req)
	if err != nil {
		c.releaseProbe()
		return nil, fmt.Errorf("failed to wrap request: %w", err)
	}

	resp, err := c.client.Do(rreq.WithContext(ctx))
	if err != nil {
		c.recordFailure(err)
		return nil, err
	}

	if resp.StatusCode < http.StatusInternalServerError {
		c.recordSuccess()
	} else {
		c.recordFailure(fmt.Errorf("server returned %d", resp.StatusCode))
	}
	return resp, nil
}

// Get executes a GET request
func (c *RateLimitedHTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.Do(ctx, req)
}

// IsOpen reports whether the circuit breaker is currently rejecting requests
func (c *RateLimitedHTTPClient) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isOpenLocked() || c.probing
}

// Close closes any resources held by the client
func (c *RateLimitedHTTPClient) Close() error {
	c.client.HTTPClient.CloseIdleConnections()
	return nil
}

func (c *RateLimitedHTTPClient) isOpenLocked() bool {
	if c.openedAt.IsZero() {
		return false
	}
	return c.resetAfter <= 0 || c.now().Sub(c.openedAt) < c.resetAfter
}

func (c *RateLimitedHTTPClient) allow() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isOpenLocked() || c.probing {
		return fmt.Errorf("%w: %v", ErrCircuitOpen, c.lastError)
	}
	if !c.openedAt.IsZero() {
		c.probing = true
	}
	return nil
}

func (c *RateLimitedHTTPClient) releaseProbe() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.probing = false
}

func (c *RateLimitedHTTPClient) recordFailure(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.consecutiveErrors++
	c.lastError = err
	c.probing = false
	if c.circuitBreakerMax > 0 && c.consecutiveErrors >= c.circuitBreakerMax {
		wasOpen := !c.openedAt.IsZero()
		c.openedAt = c.now()
		if !wasOpen {
			metrics.RecordCircuitBreakerTrip()
			c.log.LogCircuitBreakerEvent("opened", c.consecutiveErrors, err)
		}
	}
}

func (c *RateLimitedHTTPClient) recordSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.openedAt.IsZero() {
		c.log.LogCircuitBreakerEvent("closed", c.consecutiveErrors, nil)
	}
	c.consecutiveErrors = 0
	c.openedAt = time.Time{}
	c.probing = false
	c.lastError = nil
}

// customRetryPolicy defines which HTTP responses should trigger a retry
func customRetryPolicy() retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if err != nil {
			return true, err
		}

		switch resp.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true, nil
		}
		return false, nil
	}
}

// leveledLogger routes retryablehttp logging through logrus
type leveledLogger struct {
	entry *logrus.Entry
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Error(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Debug(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Debug(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Warn(msg)
}

func (l leveledLogger) with(keysAndValues []interface{}) *logrus.Entry {
	fields := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return l.entry.WithFields(fields)
}
