// Package market aggregates per-symbol market snapshots
package market

import (
	"context"

	"github.com/weihan/gridmate/internal/common"
	"github.com/weihan/gridmate/internal/interfaces"
	"github.com/weihan/gridmate/internal/models"
	"github.com/weihan/gridmate/internal/services/grid"
)

// overviewRange is the history window backing overview volatility figures.
const overviewRange = "1mo"

// Service implements interfaces.MarketService.
type Service struct {
	quotes interfaces.QuotesClient
	logger *common.Logger
}

// NewService creates a new market service
func NewService(quotes interfaces.QuotesClient, logger *common.Logger) *Service {
	return &Service{quotes: quotes, logger: logger}
}

// Overview returns one snapshot per symbol. A symbol whose fetch fails
// degrades to a placeholder row with Err set; the other symbols are
// unaffected and the overview itself never fails.
func (s *Service) Overview(ctx context.Context, symbols []string) ([]models.MarketSnapshot, error) {
	snapshots := make([]models.MarketSnapshot, 0, len(symbols))
	for _, symbol := range symbols {
		snapshots = append(snapshots, s.snapshot(ctx, symbol))
	}
	return snapshots, nil
}

func (s *Service) snapshot(ctx context.Context, symbol string) models.MarketSnapshot {
	series, err := s.quotes.GetKline(ctx, symbol, overviewRange)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Snapshot fetch failed")
		return models.MarketSnapshot{Symbol: symbol, Err: "数据暂不可用"}
	}

	snap := models.MarketSnapshot{
		Symbol: symbol,
		Price:  series.CurrentPrice,
	}

	if n := len(series.Bars); n >= 2 {
		prev := series.Bars[n-2].Close
		if prev > 0 {
			snap.ChangePct = (snap.Price - prev) / prev * 100
		}
	}

	if profile, perr := grid.MeasureProfile(series.Closes()); perr == nil {
		snap.Profile = profile
	}

	return snap
}
