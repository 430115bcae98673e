package grid

import (
	"github.com/weihan/gridmate/internal/models"
)

// minSeriesLen is the shortest close history that supports a measured
// volatility estimate; anything shorter takes the fallback path.
const minSeriesLen = 5

// lowerFloorRatio keeps the lower bound from collapsing toward zero on
// extreme volatility estimates.
const lowerFloorRatio = 0.1

// rangeForLookback quantizes a lookback window in days to the coarse ranges
// the quote provider actually serves.
func rangeForLookback(days int) string {
	switch {
	case days <= 5:
		return "5d"
	case days <= 30:
		return "1mo"
	case days <= 90:
		return "3mo"
	case days <= 180:
		return "6mo"
	default:
		return "1y"
	}
}

// computeBounds derives the grid envelope from a current price and a
// volatility profile. The same formula serves both the measured and the
// fallback path; only the profile differs.
func computeBounds(symbol string, currentPrice float64, profile *models.VolatilityProfile, multiplier float64, gridCount int) *models.GridBounds {
	deviation := currentPrice * profile.Annualized * multiplier

	upper := currentPrice + deviation
	lower := currentPrice - deviation
	if floor := currentPrice * lowerFloorRatio; lower < floor {
		lower = floor
	}

	return &models.GridBounds{
		Symbol:       symbol,
		CurrentPrice: currentPrice,
		Upper:        upper,
		Lower:        lower,
		Spacing:      (upper - lower) / float64(gridCount),
		GridCount:    gridCount,
		Multiplier:   multiplier,
		Fallback:     profile.Fallback,
	}
}
