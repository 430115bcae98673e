package models

import "strings"

// PerformanceClass partitions sectors by paired growth figures.
// The classes are mutually exclusive and exhaustive.
type PerformanceClass string

const (
	ClassStrong PerformanceClass = "strong"
	ClassWeak   PerformanceClass = "weak"
	ClassMixed  PerformanceClass = "mixed"
)

// Sector is one parsed industrial-statistics record. RevenueGrowth and
// ProfitGrowth are signed year-over-year percentages. Class is assigned once
// by the classifier and not changed afterwards.
type Sector struct {
	Name          string           `json:"name"`
	RevenueGrowth float64          `json:"revenue_growth"`
	ProfitGrowth  float64          `json:"profit_growth"`
	Class         PerformanceClass `json:"class,omitempty"`
}

// ETFCandidate is one fund in a sector keyword bucket, ranked by traded
// volume. Avoid marks candidates that must never be suggested for buying.
type ETFCandidate struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	TradedVolume string `json:"traded_volume"` // display string, e.g. "38.6亿"
	Avoid        bool   `json:"avoid,omitempty"`
}

// RegistryEntry maps one sector keyword to its ranked candidates
// (highest traded volume first).
type RegistryEntry struct {
	Keyword    string
	Candidates []ETFCandidate
}

// SectorRegistry is immutable, process-wide configuration mapping sector
// keywords to candidate ETFs. Entry order is the declared matching order and
// is significant: keyword lookup scans entries front to back and stops at the
// first keyword that is a substring of the sector name.
type SectorRegistry struct {
	entries []RegistryEntry
}

// NewSectorRegistry builds a registry from entries in declared order.
// The slice is copied; the registry never mutates after construction.
func NewSectorRegistry(entries []RegistryEntry) *SectorRegistry {
	copied := make([]RegistryEntry, len(entries))
	copy(copied, entries)
	return &SectorRegistry{entries: copied}
}

// Entries returns the registry entries in declared order.
func (r *SectorRegistry) Entries() []RegistryEntry {
	return r.entries
}

// Match returns the first entry whose keyword is a substring of the sector
// name. First-match-wins over declared order, not best-match.
func (r *SectorRegistry) Match(sectorName string) (RegistryEntry, bool) {
	for _, e := range r.entries {
		if strings.Contains(sectorName, e.Keyword) {
			return e, true
		}
	}
	return RegistryEntry{}, false
}

// DataQuality grades how completely a raw report was parsed.
type DataQuality string

const (
	QualityHigh     DataQuality = "high"
	QualityModerate DataQuality = "moderate"
	QualityLimited  DataQuality = "limited"
	QualityPoor     DataQuality = "poor"
)

// ETFSuggestion is one annotated buy or avoid entry in a recommendation.
type ETFSuggestion struct {
	SectorName    string  `json:"sector_name"`
	Code          string  `json:"code,omitempty"`
	Name          string  `json:"name,omitempty"`
	TradedVolume  string  `json:"traded_volume,omitempty"`
	RevenueGrowth float64 `json:"revenue_growth"`
	ProfitGrowth  float64 `json:"profit_growth"`
	Note          string  `json:"note,omitempty"`        // generic note when no ETF matched
	Alternative   string  `json:"alternative,omitempty"` // second-ranked candidate, "code name"
}

// Recommendation is the synthesized output of a sector report analysis.
type Recommendation struct {
	BuyList     []ETFSuggestion `json:"buy_list"`
	AvoidList   []ETFSuggestion `json:"avoid_list"`
	Narrative   string          `json:"narrative"`
	RiskNotes   string          `json:"risk_notes"`
	DataQuality DataQuality     `json:"data_quality"`
	SectorCount int             `json:"sector_count"`
	LineCount   int             `json:"line_count"`
	StrongCount int             `json:"strong_count"`
	WeakCount   int             `json:"weak_count"`
	MixedCount  int             `json:"mixed_count"`
}
