package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/outcome"
)

// SourceHTTP names the live odds source
const SourceHTTP = "http"

// oddsQuote is the wire format of the odds endpoint. Prices are decimal
// strings so no precision is lost in transit.
type oddsQuote struct {
	HomeOdds    decimal.Decimal `json:"home_odds"`
	DrawOdds    decimal.Decimal `json:"draw_odds"`
	AwayOdds    decimal.Decimal `json:"away_odds"`
	Volume      decimal.Decimal `json:"volume"`
	Movement    string          `json:"movement"`
	SharpMoney  decimal.Decimal `json:"sharp_money"`
	PublicMoney decimal.Decimal `json:"public_money"`
}

// HTTPSource reads odds from a JSON endpoint at {baseURL}/odds
type HTTPSource struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
}

// NewHTTPSource creates an odds source over the given client
func NewHTTPSource(httpClient *RateLimitedHTTPClient, baseURL string) *HTTPSource {
	return &HTTPSource{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Name returns the source name
func (s *HTTPSource) Name() string {
	return SourceHTTP
}

// Fetch retrieves the current prices for a fixture
func (s *HTTPSource) Fetch(ctx context.Context, match models.Match) (*models.MarketData, error) {
	q := url.Values{}
	q.Set("home", match.HomeTeam)
	q.Set("away", match.AwayTeam)
	endpoint := s.baseURL + "/odds?" + q.Encode()

	resp, err := s.httpClient.Get(ctx, endpoint)
	if err != nil {
		if isCircuitOpen(err) {
			return nil, NewSourceError(SourceHTTP, ErrCodeCircuitOpen, "odds endpoint unavailable", err)
		}
		return nil, NewSourceError(SourceHTTP, ErrCodeNetworkError, "failed to fetch odds", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewSourceError(SourceHTTP, ErrCodeNotFound, fmt.Sprintf("no market for %s", match), models.ErrMarketDataMiss)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, NewSourceError(SourceHTTP, ErrCodeRateLimitExceeded, "rate limit exceeded", nil)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, NewSourceError(SourceHTTP, ErrCodeServerError, fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)), nil)
	}

	var quote oddsQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, NewSourceError(SourceHTTP, ErrCodeInvalidData, "failed to parse response", err)
	}

	data, err := quote.toMarketData()
	if err != nil {
		return nil, NewSourceError(SourceHTTP, ErrCodeInvalidData, "invalid quote", err)
	}
	return data, nil
}

func (q oddsQuote) toMarketData() (*models.MarketData, error) {
	movement := models.Movement(q.Movement)
	switch movement {
	case models.MovementRising, models.MovementFalling, models.MovementStable:
	case "":
		movement = models.MovementStable
	default:
		return nil, fmt.Errorf("unknown movement %q", q.Movement)
	}

	for _, v := range []decimal.Decimal{q.Volume, q.SharpMoney, q.PublicMoney} {
		if v.IsNegative() {
			return nil, fmt.Errorf("negative money figure %s", v)
		}
	}

	data := &models.MarketData{
		HomeOdds:    q.HomeOdds.InexactFloat64(),
		DrawOdds:    q.DrawOdds.InexactFloat64(),
		AwayOdds:    q.AwayOdds.InexactFloat64(),
		Volume:      q.Volume.InexactFloat64(),
		Movement:    movement,
		SharpMoney:  q.SharpMoney.InexactFloat64(),
		PublicMoney: q.PublicMoney.InexactFloat64(),
		Source:      SourceHTTP,
	}
	if err := outcome.ValidateOdds(*data); err != nil {
		return nil, err
	}
	return data, nil
}
