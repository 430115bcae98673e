// Package interfaces defines service contracts for Gridmate
package interfaces

import (
	"context"

	"github.com/weihan/gridmate/internal/models"
)

// QuotesClient provides access to the price-history provider.
type QuotesClient interface {
	// GetKline retrieves the close history for a symbol over a provider
	// range ("5d", "1mo", "3mo", "6mo", "1y"), oldest first.
	GetKline(ctx context.Context, symbol string, rng string) (*models.PriceSeries, error)

	// GetRealTimePrice retrieves the latest traded price for a symbol.
	GetRealTimePrice(ctx context.Context, symbol string) (float64, error)
}

// BrokerClient provides access to the grid-trading backend.
type BrokerClient interface {
	// CreateGrid submits a grid strategy order.
	CreateGrid(ctx context.Context, req models.GridRequest) (*models.GridStrategy, error)

	// ListGrids retrieves all grid strategies on the account.
	ListGrids(ctx context.Context) ([]*models.GridStrategy, error)

	// StopGrid stops a running grid strategy.
	StopGrid(ctx context.Context, strategyID string) (*models.GridStrategy, error)

	// GetAccountOverview retrieves the trading account summary.
	GetAccountOverview(ctx context.Context) (*models.AccountOverview, error)
}
