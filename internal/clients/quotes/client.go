// Package quotes provides a client for the price-history provider API
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/weihan/gridmate/internal/common"
	"github.com/weihan/gridmate/internal/models"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client implements the QuotesClient interface against the provider's
// REST API. The provider serves kline history at coarse fixed ranges only;
// callers quantize their lookback window to one of those ranges.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new quotes client
func NewClient(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError represents a provider API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("quotes API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("token", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("url", c.baseURL+path).Msg("Quotes API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// klineResponse is the provider wire format for kline history.
type klineResponse struct {
	Symbol  string       `json:"symbol"`
	Current float64      `json:"current"`
	Bars    []models.Bar `json:"bars"`
}

// GetKline retrieves close history for a symbol over a provider range
// ("5d", "1mo", "3mo", "6mo", "1y"), oldest first.
func (c *Client) GetKline(ctx context.Context, symbol string, rng string) (*models.PriceSeries, error) {
	params := url.Values{}
	params.Set("range", rng)

	var kr klineResponse
	if err := c.get(ctx, fmt.Sprintf("/v1/kline/%s", symbol), params, &kr); err != nil {
		return nil, err
	}

	series := &models.PriceSeries{
		Symbol:       symbol,
		Bars:         kr.Bars,
		CurrentPrice: kr.Current,
	}
	// Some endpoints omit the real-time field outside trading hours; the
	// latest close is the next best thing.
	if series.CurrentPrice == 0 && len(series.Bars) > 0 {
		series.CurrentPrice = series.Bars[len(series.Bars)-1].Close
	}

	c.logger.Debug().
		Str("symbol", symbol).
		Str("range", rng).
		Int("bars", len(series.Bars)).
		Msg("Fetched kline")
	return series, nil
}

// quoteResponse is the provider wire format for a real-time quote.
type quoteResponse struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// GetRealTimePrice retrieves the latest traded price for a symbol.
func (c *Client) GetRealTimePrice(ctx context.Context, symbol string) (float64, error) {
	var qr quoteResponse
	if err := c.get(ctx, fmt.Sprintf("/v1/quote/%s", symbol), nil, &qr); err != nil {
		return 0, err
	}
	if qr.Price <= 0 {
		return 0, fmt.Errorf("provider returned no price for %s", symbol)
	}
	return qr.Price, nil
}
