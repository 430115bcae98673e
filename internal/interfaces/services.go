package interfaces

import (
	"context"

	"github.com/weihan/gridmate/internal/models"
)

// BoundsOptions configures a bound calculation. Zero values mean
// "use the configured default".
type BoundsOptions struct {
	LookbackDays int
	Multiplier   float64
	GridCount    int
}

// CreateOptions configures grid strategy creation. When both UpperPrice and
// LowerPrice are supplied the volatility calculation is skipped and the
// explicit bounds are used as-is.
type CreateOptions struct {
	Symbol           string
	InvestmentAmount float64
	LookbackDays     int
	Multiplier       float64
	GridCount        int
	UpperPrice       float64
	LowerPrice       float64
}

// GridService computes volatility-adaptive grid bounds and manages
// grid strategies on the broker.
type GridService interface {
	// ComputeBounds derives grid bounds for a symbol from its price history.
	// Falls back to the configured default volatility when history is too
	// short; returns models.ErrDataUnavailable when no price at all exists.
	ComputeBounds(ctx context.Context, symbol string, opts BoundsOptions) (*models.GridBounds, *models.VolatilityProfile, error)

	// CreateStrategy computes bounds (unless explicitly overridden) and
	// submits the grid to the broker.
	CreateStrategy(ctx context.Context, opts CreateOptions) (*models.GridStrategy, *models.GridBounds, error)

	// RenderBoundsChart renders a PNG chart of the close series with the
	// computed bounds overlaid. Series may be nil in fallback mode.
	RenderBoundsChart(series *models.PriceSeries, bounds *models.GridBounds) ([]byte, error)

	// FetchSeries retrieves the price series used for bound calculation.
	FetchSeries(ctx context.Context, symbol string, lookbackDays int) (*models.PriceSeries, error)
}

// SectorService analyzes raw industrial-statistics text into ETF
// recommendations.
type SectorService interface {
	// AnalyzeReport parses, classifies, and synthesizes recommendations from
	// free-form sector growth text. It is total: unparseable input yields a
	// poor-quality recommendation, not an error.
	AnalyzeReport(ctx context.Context, text string) (*models.Recommendation, error)
}

// MarketService aggregates per-symbol market snapshots.
type MarketService interface {
	// Overview returns one snapshot per requested symbol. A failed symbol
	// degrades to a placeholder row; the overview itself never fails.
	Overview(ctx context.Context, symbols []string) ([]models.MarketSnapshot, error)
}
