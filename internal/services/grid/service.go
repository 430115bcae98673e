package grid

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/weihan/gridmate/internal/common"
	"github.com/weihan/gridmate/internal/interfaces"
	"github.com/weihan/gridmate/internal/models"
)

// Service implements interfaces.GridService.
type Service struct {
	quotes interfaces.QuotesClient
	broker interfaces.BrokerClient
	cfg    common.GridConfig
	logger *common.Logger
}

// NewService creates a new grid service
func NewService(quotes interfaces.QuotesClient, broker interfaces.BrokerClient, cfg common.GridConfig, logger *common.Logger) *Service {
	return &Service{
		quotes: quotes,
		broker: broker,
		cfg:    cfg,
		logger: logger,
	}
}

// FetchSeries retrieves the close history used for bound calculation.
// The lookback window is quantized to the provider's supported ranges.
func (s *Service) FetchSeries(ctx context.Context, symbol string, lookbackDays int) (*models.PriceSeries, error) {
	if lookbackDays <= 0 {
		lookbackDays = s.cfg.LookbackDays
	}
	series, err := s.quotes.GetKline(ctx, symbol, rangeForLookback(lookbackDays))
	if err != nil {
		return nil, err
	}
	series.LookbackDays = lookbackDays
	return series, nil
}

// ComputeBounds derives grid bounds for a symbol.
//
// Primary path: at least minSeriesLen closes are available and volatility is
// measured from log returns. Fallback path: the history is too short (or the
// fetch failed entirely) and the configured default volatility is assumed;
// the result is flagged so presentation can disclose reduced confidence.
// When no current price can be obtained at all the operation fails with
// models.ErrDataUnavailable.
func (s *Service) ComputeBounds(ctx context.Context, symbol string, opts interfaces.BoundsOptions) (*models.GridBounds, *models.VolatilityProfile, error) {
	multiplier := opts.Multiplier
	if multiplier <= 0 {
		multiplier = s.cfg.Multiplier
	}
	gridCount := opts.GridCount
	if gridCount <= 0 {
		gridCount = s.cfg.GridCount
	}

	series, err := s.FetchSeries(ctx, symbol, opts.LookbackDays)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Kline fetch failed, trying real-time price")
		series = &models.PriceSeries{Symbol: symbol}
	}

	currentPrice := series.CurrentPrice
	if currentPrice <= 0 {
		if price, qerr := s.quotes.GetRealTimePrice(ctx, symbol); qerr == nil {
			currentPrice = price
		}
	}
	if currentPrice <= 0 {
		currentPrice = s.cfg.FallbackPrice
	}
	if currentPrice <= 0 {
		return nil, nil, fmt.Errorf("%w: %s", models.ErrDataUnavailable, symbol)
	}

	var profile *models.VolatilityProfile
	if len(series.Bars) >= minSeriesLen {
		profile, err = MeasureProfile(series.Closes())
		if err != nil {
			// Degenerate series (e.g. zero prices) takes the fallback path.
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Volatility measurement failed, using fallback")
			profile = FallbackProfile(s.cfg.DefaultVolatility)
		}
	} else {
		profile = FallbackProfile(s.cfg.DefaultVolatility)
	}

	bounds := computeBounds(symbol, currentPrice, profile, multiplier, gridCount)

	s.logger.Info().
		Str("symbol", symbol).
		Float64("current", currentPrice).
		Float64("upper", bounds.Upper).
		Float64("lower", bounds.Lower).
		Float64("volatility", profile.Annualized).
		Str("regime", string(profile.Regime)).
		Bool("fallback", profile.Fallback).
		Msg("Grid bounds computed")

	return bounds, profile, nil
}

// CreateStrategy computes bounds and submits a grid strategy to the broker.
// Explicit upper/lower overrides bypass the volatility calculation entirely.
func (s *Service) CreateStrategy(ctx context.Context, opts interfaces.CreateOptions) (*models.GridStrategy, *models.GridBounds, error) {
	if opts.Symbol == "" {
		return nil, nil, fmt.Errorf("symbol is required")
	}
	if opts.InvestmentAmount <= 0 {
		return nil, nil, fmt.Errorf("investment amount must be positive")
	}

	gridCount := opts.GridCount
	if gridCount <= 0 {
		gridCount = s.cfg.GridCount
	}

	var bounds *models.GridBounds
	if opts.UpperPrice > 0 && opts.LowerPrice > 0 {
		if opts.LowerPrice >= opts.UpperPrice {
			return nil, nil, fmt.Errorf("lower price %v must be below upper price %v", opts.LowerPrice, opts.UpperPrice)
		}
		bounds = &models.GridBounds{
			Symbol:    opts.Symbol,
			Upper:     opts.UpperPrice,
			Lower:     opts.LowerPrice,
			Spacing:   (opts.UpperPrice - opts.LowerPrice) / float64(gridCount),
			GridCount: gridCount,
		}
	} else {
		var err error
		bounds, _, err = s.ComputeBounds(ctx, opts.Symbol, interfaces.BoundsOptions{
			LookbackDays: opts.LookbackDays,
			Multiplier:   opts.Multiplier,
			GridCount:    gridCount,
		})
		if err != nil {
			return nil, nil, err
		}
	}

	req := models.GridRequest{
		Symbol:           opts.Symbol,
		Upper:            bounds.Upper,
		Lower:            bounds.Lower,
		Spacing:          bounds.Spacing,
		GridCount:        bounds.GridCount,
		InvestmentAmount: opts.InvestmentAmount,
		ClientOrderID:    uuid.NewString(),
	}

	strategy, err := s.broker.CreateGrid(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("grid creation failed: %w", err)
	}
	return strategy, bounds, nil
}
