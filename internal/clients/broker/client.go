// Package broker provides a client for the grid-trading backend API
package broker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/weihan/gridmate/internal/common"
	"github.com/weihan/gridmate/internal/models"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client implements the BrokerClient interface. It is plumbing only:
// every trading decision is made upstream, the client just carries the
// structured request to the backend.
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

// NewClient creates a new broker client
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

// APIError represents a backend API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("broker API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// do performs a rate-limited request with optional JSON body.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug().Str("method", method).Str("path", path).Msg("Broker API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		var errResp struct {
			Error string `json:"error"`
		}
		msg := string(respBody)
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			msg = errResp.Error
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    msg,
			Endpoint:   path,
		}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// CreateGrid submits a grid strategy order.
func (c *Client) CreateGrid(ctx context.Context, req models.GridRequest) (*models.GridStrategy, error) {
	var strategy models.GridStrategy
	if err := c.do(ctx, http.MethodPost, "/v1/grids", req, &strategy); err != nil {
		return nil, err
	}
	c.logger.Info().
		Str("symbol", req.Symbol).
		Str("strategy_id", strategy.ID).
		Msg("Grid strategy created")
	return &strategy, nil
}

// ListGrids retrieves all grid strategies on the account.
func (c *Client) ListGrids(ctx context.Context) ([]*models.GridStrategy, error) {
	var strategies []*models.GridStrategy
	if err := c.do(ctx, http.MethodGet, "/v1/grids", nil, &strategies); err != nil {
		return nil, err
	}
	return strategies, nil
}

// StopGrid stops a running grid strategy.
func (c *Client) StopGrid(ctx context.Context, strategyID string) (*models.GridStrategy, error) {
	var strategy models.GridStrategy
	path := fmt.Sprintf("/v1/grids/%s/stop", strategyID)
	if err := c.do(ctx, http.MethodPost, path, nil, &strategy); err != nil {
		return nil, err
	}
	return &strategy, nil
}

// GetAccountOverview retrieves the trading account summary.
func (c *Client) GetAccountOverview(ctx context.Context) (*models.AccountOverview, error) {
	var overview models.AccountOverview
	if err := c.do(ctx, http.MethodGet, "/v1/account", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}
