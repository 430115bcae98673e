// Package models defines domain types for Gridmate
package models

import (
	"errors"
	"time"
)

// ErrDataUnavailable signals that no price data could be obtained for a
// symbol, neither from the provider nor from a configured fallback. Bound
// calculation cannot proceed without at least one price point.
var ErrDataUnavailable = errors.New("no price data available")

// Bar is a single provider observation: closing price on a trading date.
type Bar struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Close float64 `json:"close"`
}

// PriceSeries holds an ordered close history for a symbol, oldest first.
type PriceSeries struct {
	Symbol       string  `json:"symbol"`
	Bars         []Bar   `json:"bars"`
	CurrentPrice float64 `json:"current_price"` // 0 when the provider had none
	LookbackDays int     `json:"lookback_days"`
}

// Closes returns the close prices in chronological order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// VolatilityRegime buckets annualized volatility into coarse bands.
type VolatilityRegime string

const (
	RegimeLow    VolatilityRegime = "low"
	RegimeMedium VolatilityRegime = "medium"
	RegimeHigh   VolatilityRegime = "high"
)

// VolatilityProfile describes measured (or assumed) volatility for a symbol.
type VolatilityProfile struct {
	Annualized float64          `json:"annualized"`
	Regime     VolatilityRegime `json:"regime"`
	SampleSize int              `json:"sample_size"` // number of return observations
	Fallback   bool             `json:"fallback"`    // true when assumed, not measured
}

// GridBounds is the computed price envelope for a grid strategy.
// Invariants: Lower <= CurrentPrice <= Upper and Lower >= 0.1 * CurrentPrice.
type GridBounds struct {
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"current_price"`
	Upper        float64 `json:"upper"`
	Lower        float64 `json:"lower"`
	Spacing      float64 `json:"spacing"`
	GridCount    int     `json:"grid_count"`
	Multiplier   float64 `json:"multiplier"`
	Fallback     bool    `json:"fallback"` // bounds derived from assumed volatility
}

// GridRequest is the flat record submitted to the broker grid-creation call.
type GridRequest struct {
	Symbol           string  `json:"symbol"`
	Upper            float64 `json:"upper"`
	Lower            float64 `json:"lower"`
	Spacing          float64 `json:"spacing"`
	GridCount        int     `json:"grid_count"`
	InvestmentAmount float64 `json:"investment_amount"`
	ClientOrderID    string  `json:"client_order_id"`
}

// GridStrategy is a grid order as known to the broker.
type GridStrategy struct {
	ID               string    `json:"id"`
	Symbol           string    `json:"symbol"`
	Status           string    `json:"status"` // running, stopped, completed
	Upper            float64   `json:"upper"`
	Lower            float64   `json:"lower"`
	GridCount        int       `json:"grid_count"`
	InvestmentAmount float64   `json:"investment_amount"`
	FilledOrders     int       `json:"filled_orders"`
	RealizedProfit   float64   `json:"realized_profit"`
	CreatedAt        time.Time `json:"created_at"`
}

// AccountOverview summarizes the broker trading account.
type AccountOverview struct {
	TotalAssets   float64 `json:"total_assets"`
	AvailableCash float64 `json:"available_cash"`
	MarketValue   float64 `json:"market_value"`
	Currency      string  `json:"currency"`
	PositionCount int     `json:"position_count"`
}

// MarketSnapshot is one row of a multi-symbol overview. A symbol whose data
// could not be fetched degrades to a row with Err set; it never aborts the
// whole overview.
type MarketSnapshot struct {
	Symbol    string             `json:"symbol"`
	Price     float64            `json:"price"`
	ChangePct float64            `json:"change_pct"` // vs previous close
	Profile   *VolatilityProfile `json:"profile,omitempty"`
	Err       string             `json:"error,omitempty"`
}
