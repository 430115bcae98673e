package sector

import (
	"fmt"
	"strings"

	"github.com/weihan/gridmate/internal/common"
	"github.com/weihan/gridmate/internal/models"
)

// riskNotes is fixed guidance attached to every recommendation,
// independent of the input.
const riskNotes = "行业ETF存在跟踪误差与折溢价风险；工业企业数据为同比口径，发布滞后于市场价格；" +
	"网格策略在单边行情中可能跑输买入持有。以上内容基于公开统计数据生成，不构成投资建议。"

// Synthesizer combines classified sectors with the ETF registry into a
// recommendation. It holds no mutable state.
type Synthesizer struct {
	registry *models.SectorRegistry
	cfg      common.SectorConfig
}

// NewSynthesizer creates a synthesizer over an immutable registry.
func NewSynthesizer(registry *models.SectorRegistry, cfg common.SectorConfig) *Synthesizer {
	return &Synthesizer{registry: registry, cfg: cfg}
}

// Synthesize produces buy/avoid lists and a strategy narrative from
// classified sectors. lineCount feeds the data-quality verdict.
func (sy *Synthesizer) Synthesize(sectors []models.Sector, lineCount int) *models.Recommendation {
	strong, weak, mixed := partition(sectors)

	rec := &models.Recommendation{
		RiskNotes:   riskNotes,
		DataQuality: AssessQuality(lineCount, len(sectors), sy.cfg),
		SectorCount: len(sectors),
		LineCount:   lineCount,
		StrongCount: len(strong),
		WeakCount:   len(weak),
		MixedCount:  len(mixed),
	}

	bought := make(map[string]bool)
	rec.BuyList = sy.synthesizeBuys(strong, bought)
	rec.AvoidList = sy.synthesizeAvoids(weak, bought)
	rec.Narrative = sy.narrative(strong, weak)

	return rec
}

// synthesizeBuys walks strong sectors in parsed order, capped, and resolves
// each to its registry bucket. First matching keyword wins; the top-ranked
// candidate is suggested unless it carries the avoid marker, and the
// second-ranked candidate is offered as an alternative when present.
func (sy *Synthesizer) synthesizeBuys(strong []models.Sector, bought map[string]bool) []models.ETFSuggestion {
	var buys []models.ETFSuggestion
	for _, sec := range strong {
		if len(buys) >= sy.cfg.BuyCap {
			break
		}
		entry, ok := sy.registry.Match(sec.Name)
		if !ok {
			continue
		}
		top := entry.Candidates[0]
		if top.Avoid {
			continue
		}
		suggestion := models.ETFSuggestion{
			SectorName:    sec.Name,
			Code:          top.Code,
			Name:          top.Name,
			TradedVolume:  top.TradedVolume,
			RevenueGrowth: sec.RevenueGrowth,
			ProfitGrowth:  sec.ProfitGrowth,
			Note: fmt.Sprintf("营收%s，利润%s",
				common.FormatSignedPct(sec.RevenueGrowth), common.FormatSignedPct(sec.ProfitGrowth)),
		}
		if len(entry.Candidates) > 1 {
			alt := entry.Candidates[1]
			suggestion.Alternative = fmt.Sprintf("%s %s", alt.Code, alt.Name)
		}
		buys = append(buys, suggestion)
		bought[sec.Name] = true
	}
	return buys
}

// synthesizeAvoids walks weak sectors in parsed order, capped. A registry
// match yields an explicit avoid entry for that fund; an unmatched sector
// that was not already bought yields a generic avoidance note carrying its
// figures.
func (sy *Synthesizer) synthesizeAvoids(weak []models.Sector, bought map[string]bool) []models.ETFSuggestion {
	var avoids []models.ETFSuggestion
	for _, sec := range weak {
		if len(avoids) >= sy.cfg.AvoidCap {
			break
		}
		figures := fmt.Sprintf("营收%s，利润%s",
			common.FormatSignedPct(sec.RevenueGrowth), common.FormatSignedPct(sec.ProfitGrowth))

		if entry, ok := sy.registry.Match(sec.Name); ok {
			top := entry.Candidates[0]
			avoids = append(avoids, models.ETFSuggestion{
				SectorName:    sec.Name,
				Code:          top.Code,
				Name:          top.Name,
				TradedVolume:  top.TradedVolume,
				RevenueGrowth: sec.RevenueGrowth,
				ProfitGrowth:  sec.ProfitGrowth,
				Note:          "行业景气下行，" + figures,
			})
			continue
		}
		if bought[sec.Name] {
			continue
		}
		avoids = append(avoids, models.ETFSuggestion{
			SectorName:    sec.Name,
			RevenueGrowth: sec.RevenueGrowth,
			ProfitGrowth:  sec.ProfitGrowth,
			Note:          "行业景气下行（" + figures + "），暂无对应行业ETF，建议回避相关主题基金。",
		})
	}
	return avoids
}

// Theme keyword groups for narrative refinement.
var (
	materialsKeywords = []string{"有色", "金属", "稀土", "Nonferrous", "Materials"}
	techKeywords      = []string{"半导体", "电子", "芯片", "计算机", "通信", "Semiconductor", "Electronics", "Tech"}
	transportKeywords = []string{"铁路", "船舶", "军工", "航空", "运输", "Defense", "Transport"}
)

func anySectorMatches(sectors []models.Sector, keywords []string) bool {
	for _, sec := range sectors {
		for _, kw := range keywords {
			if strings.Contains(sec.Name, kw) {
				return true
			}
		}
	}
	return false
}

// narrative builds the strategy text from the strong/weak balance, refined
// by which themed groups are present among the strong sectors. The most
// specific matching template wins.
func (sy *Synthesizer) narrative(strong, weak []models.Sector) string {
	switch {
	case len(strong) > len(weak):
		return sy.growthNarrative(strong)
	case len(weak) > len(strong):
		return "弱势行业数量超过强势行业，建议防御型配置：降低传统周期与制造行业仓位，" +
			"增配医药、消费等防御类ETF，现金或货币类仓位提升至30%左右，待行业数据企稳后再行加仓。"
	default:
		return "强弱行业数量相当，建议均衡配置：对强势主题ETF等权持有，设定季度再平衡，" +
			"避免单一行业敞口过大。"
	}
}

func (sy *Synthesizer) growthNarrative(strong []models.Sector) string {
	hasMaterials := anySectorMatches(strong, materialsKeywords)
	hasTech := anySectorMatches(strong, techKeywords)
	hasTransport := anySectorMatches(strong, transportKeywords)

	const prefix = "强势行业明显占优，建议成长进攻型配置："

	switch {
	case hasMaterials && hasTech:
		return prefix + "上游资源与科技制造共振，建议周期资源类ETF约40%、科技类ETF约30%、" +
			"宽基底仓20%、现金10%。"
	case hasMaterials:
		return prefix + "上游原材料与稀土景气领先，建议资源类ETF约50%、宽基底仓30%、现金20%，" +
			"注意商品价格回落风险。"
	case hasTech:
		return prefix + "科技与半导体链条景气向上，建议科技类ETF约50%、宽基底仓30%、现金20%，" +
			"关注估值波动。"
	case hasTransport:
		return prefix + "交运与军工板块景气改善，建议相关主题ETF约40%、宽基底仓40%、现金20%。"
	default:
		return prefix + "超配增速领先的行业主题ETF，单行业仓位不超过20%，保留约两成现金应对波动。"
	}
}
