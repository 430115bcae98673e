package sector

import (
	"github.com/weihan/gridmate/internal/common"
	"github.com/weihan/gridmate/internal/models"
)

// Classify assigns a performance class to each sector and returns a new
// slice in the same order. Classification depends only on the growth
// figures, so running it again over its own output changes nothing.
//
// strong: both figures strictly above the strong threshold (exactly at the
// threshold does not qualify). weak: revenue below the weak revenue
// threshold or profit below the weak profit threshold. mixed: everything
// else. The classes are mutually exclusive and exhaustive.
func Classify(sectors []models.Sector, cfg common.SectorConfig) []models.Sector {
	out := make([]models.Sector, len(sectors))
	for i, s := range sectors {
		s.Class = classOf(s.RevenueGrowth, s.ProfitGrowth, cfg)
		out[i] = s
	}
	return out
}

func classOf(revenue, profit float64, cfg common.SectorConfig) models.PerformanceClass {
	if revenue > cfg.StrongGrowthPct && profit > cfg.StrongGrowthPct {
		return models.ClassStrong
	}
	if revenue < cfg.WeakRevenuePct || profit < cfg.WeakProfitPct {
		return models.ClassWeak
	}
	return models.ClassMixed
}

// partition splits classified sectors into strong/weak/mixed lists,
// preserving parsed order within each list.
func partition(sectors []models.Sector) (strong, weak, mixed []models.Sector) {
	for _, s := range sectors {
		switch s.Class {
		case models.ClassStrong:
			strong = append(strong, s)
		case models.ClassWeak:
			weak = append(weak, s)
		default:
			mixed = append(mixed, s)
		}
	}
	return strong, weak, mixed
}
