package sector

import (
	"github.com/weihan/gridmate/internal/common"
	"github.com/weihan/gridmate/internal/models"
)

// AssessQuality grades parse completeness from the non-empty line count and
// the parsed sector count. The tiers are product constants, not statistics.
func AssessQuality(lineCount, sectorCount int, cfg common.SectorConfig) models.DataQuality {
	switch {
	case sectorCount > cfg.HighSectorCount && lineCount > cfg.HighLineCount:
		return models.QualityHigh
	case sectorCount > cfg.ModerateSectorCount:
		return models.QualityModerate
	case sectorCount > 0:
		return models.QualityLimited
	default:
		return models.QualityPoor
	}
}
