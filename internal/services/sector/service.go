package sector

import (
	"context"

	"github.com/weihan/gridmate/internal/common"
	"github.com/weihan/gridmate/internal/models"
)

// Service implements interfaces.SectorService: parse, classify, synthesize.
// All state is immutable configuration, so a single Service is safe for
// concurrent use.
type Service struct {
	parser      *Parser
	synthesizer *Synthesizer
	cfg         common.SectorConfig
	logger      *common.Logger
}

// NewService creates a sector service over the given registry. Pass
// DefaultRegistry() for the curated production table.
func NewService(registry *models.SectorRegistry, cfg common.SectorConfig, logger *common.Logger) *Service {
	return &Service{
		parser:      NewParser(),
		synthesizer: NewSynthesizer(registry, cfg),
		cfg:         cfg,
		logger:      logger,
	}
}

// AnalyzeReport runs the full pipeline over raw report text. It never fails:
// text that yields no sectors produces a poor-quality recommendation with
// empty lists.
func (s *Service) AnalyzeReport(ctx context.Context, text string) (*models.Recommendation, error) {
	parsed := s.parser.Parse(text)
	classified := Classify(parsed.Sectors, s.cfg)
	rec := s.synthesizer.Synthesize(classified, parsed.LineCount)

	s.logger.Info().
		Int("lines", parsed.LineCount).
		Int("sectors", len(classified)).
		Int("strong", rec.StrongCount).
		Int("weak", rec.WeakCount).
		Int("buys", len(rec.BuyList)).
		Int("avoids", len(rec.AvoidList)).
		Str("quality", string(rec.DataQuality)).
		Msg("Sector report analyzed")

	return rec, nil
}
