// Package grid computes volatility-adaptive grid trading bounds
package grid

import (
	"fmt"
	"math"

	"github.com/weihan/gridmate/internal/models"
)

// TradingDaysPerYear is the annualization factor for daily log returns.
const TradingDaysPerYear = 252

// Regime thresholds on annualized volatility.
const (
	regimeMediumThreshold = 0.15
	regimeHighThreshold   = 0.30
)

// AnnualizedVolatility computes the annualized standard deviation of log
// returns over a chronologically ordered close series. The population
// variance (divide by n) is used rather than the sample variance; the
// difference is immaterial at the window sizes involved and the population
// form keeps the formula symmetric with the mean.
func AnnualizedVolatility(closes []float64) (float64, error) {
	if len(closes) < 2 {
		return 0, fmt.Errorf("need at least 2 prices for volatility, got %d", len(closes))
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return 0, fmt.Errorf("non-positive price in series at index %d", i)
		}
		returns = append(returns, math.Log(closes[i]/closes[i-1]))
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance float64
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns))

	return math.Sqrt(variance * TradingDaysPerYear), nil
}

// ClassifyRegime buckets annualized volatility into low/medium/high.
func ClassifyRegime(annualized float64) models.VolatilityRegime {
	switch {
	case annualized > regimeHighThreshold:
		return models.RegimeHigh
	case annualized > regimeMediumThreshold:
		return models.RegimeMedium
	default:
		return models.RegimeLow
	}
}

// MeasureProfile computes a volatility profile from a close series.
func MeasureProfile(closes []float64) (*models.VolatilityProfile, error) {
	vol, err := AnnualizedVolatility(closes)
	if err != nil {
		return nil, err
	}
	return &models.VolatilityProfile{
		Annualized: vol,
		Regime:     ClassifyRegime(vol),
		SampleSize: len(closes) - 1,
	}, nil
}

// FallbackProfile returns the assumed profile used when history is too short
// to measure. The default volatility comes from configuration.
func FallbackProfile(defaultVolatility float64) *models.VolatilityProfile {
	return &models.VolatilityProfile{
		Annualized: defaultVolatility,
		Regime:     ClassifyRegime(defaultVolatility),
		Fallback:   true,
	}
}
