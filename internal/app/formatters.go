package app

import (
	"fmt"
	"strings"

	"github.com/weihan/gridmate/internal/common"
	"github.com/weihan/gridmate/internal/models"
)

// regimeLabel renders a volatility regime for display.
func regimeLabel(r models.VolatilityRegime) string {
	switch r {
	case models.RegimeLow:
		return "低波动 (low)"
	case models.RegimeMedium:
		return "中波动 (medium)"
	case models.RegimeHigh:
		return "高波动 (high)"
	default:
		return string(r)
	}
}

// formatGridBounds renders a bound preview as markdown.
func formatGridBounds(bounds *models.GridBounds, profile *models.VolatilityProfile, chartURL string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## 网格区间预览 — %s\n\n", bounds.Symbol))

	sb.WriteString(fmt.Sprintf("- **当前价格**: %s\n", common.FormatPrice(bounds.CurrentPrice)))
	sb.WriteString(fmt.Sprintf("- **上边界**: %s\n", common.FormatPrice(bounds.Upper)))
	sb.WriteString(fmt.Sprintf("- **下边界**: %s\n", common.FormatPrice(bounds.Lower)))
	sb.WriteString(fmt.Sprintf("- **网格数**: %d (间距 %s)\n", bounds.GridCount, common.FormatPrice(bounds.Spacing)))
	sb.WriteString(fmt.Sprintf("- **年化波动率**: %.1f%% — %s\n", profile.Annualized*100, regimeLabel(profile.Regime)))

	if profile.Fallback {
		sb.WriteString("\n⚠️ 历史数据不足，以上区间基于默认波动率估算，仅供参考。\n")
	} else {
		sb.WriteString(fmt.Sprintf("- **样本数**: %d 个日收益率\n", profile.SampleSize))
	}

	if chartURL != "" {
		sb.WriteString(fmt.Sprintf("\n![grid bounds](%s)\n", chartURL))
	}

	return sb.String()
}

// formatGridCreated renders a strategy creation confirmation as markdown.
func formatGridCreated(strategy *models.GridStrategy, bounds *models.GridBounds) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## 网格策略已创建 — %s\n\n", strategy.Symbol))
	sb.WriteString(fmt.Sprintf("- **策略ID**: %s\n", strategy.ID))
	sb.WriteString(fmt.Sprintf("- **状态**: %s\n", strategy.Status))
	sb.WriteString(fmt.Sprintf("- **区间**: %s ~ %s\n", common.FormatPrice(strategy.Lower), common.FormatPrice(strategy.Upper)))
	sb.WriteString(fmt.Sprintf("- **网格数**: %d\n", strategy.GridCount))
	sb.WriteString(fmt.Sprintf("- **投入金额**: %s\n", common.FormatMoney(strategy.InvestmentAmount)))

	if bounds != nil && bounds.Fallback {
		sb.WriteString("\n⚠️ 区间基于默认波动率估算（历史数据不足），请确认后再追加资金。\n")
	}

	return sb.String()
}

// formatGridList renders all grid strategies as a markdown table.
func formatGridList(strategies []*models.GridStrategy) string {
	if len(strategies) == 0 {
		return "当前没有网格策略。"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## 网格策略列表 (%d)\n\n", len(strategies)))
	sb.WriteString("| 策略ID | 标的 | 状态 | 区间 | 成交次数 | 已实现收益 |\n")
	sb.WriteString("|--------|------|------|------|----------|------------|\n")

	for _, st := range strategies {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s ~ %s | %d | %s |\n",
			st.ID, st.Symbol, st.Status,
			common.FormatPrice(st.Lower), common.FormatPrice(st.Upper),
			st.FilledOrders, common.FormatMoney(st.RealizedProfit)))
	}

	return sb.String()
}

// formatStopResult renders a stop confirmation as markdown.
func formatStopResult(strategy *models.GridStrategy) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## 网格策略已停止 — %s\n\n", strategy.Symbol))
	sb.WriteString(fmt.Sprintf("- **策略ID**: %s\n", strategy.ID))
	sb.WriteString(fmt.Sprintf("- **状态**: %s\n", strategy.Status))
	sb.WriteString(fmt.Sprintf("- **已实现收益**: %s\n", common.FormatMoney(strategy.RealizedProfit)))
	sb.WriteString("\n挂单已撤销，持仓保留。\n")

	return sb.String()
}

// formatRecommendation renders a sector analysis result as markdown.
func formatRecommendation(rec *models.Recommendation) string {
	var sb strings.Builder

	sb.WriteString("## 行业数据分析\n\n")
	sb.WriteString(fmt.Sprintf("解析 %d 行文本，识别 %d 个行业（强势 %d / 弱势 %d / 混合 %d），数据质量：%s。\n\n",
		rec.LineCount, rec.SectorCount, rec.StrongCount, rec.WeakCount, rec.MixedCount,
		qualityLabel(rec.DataQuality)))

	if rec.DataQuality == models.QualityPoor {
		sb.WriteString("⚠️ 未能从文本中识别任何行业数据，请检查粘贴内容是否包含营收/利润增速。\n")
		return sb.String()
	}
	if rec.DataQuality == models.QualityLimited {
		sb.WriteString("⚠️ 识别的行业数量较少，以下建议基于不完整数据，请谨慎参考。\n\n")
	}

	if len(rec.BuyList) > 0 {
		sb.WriteString("### 建议关注\n\n")
		sb.WriteString("| 行业 | ETF | 成交额 | 增速 | 备选 |\n")
		sb.WriteString("|------|-----|--------|------|------|\n")
		for _, s := range rec.BuyList {
			etf := s.Note
			if s.Code != "" {
				etf = fmt.Sprintf("%s %s", s.Code, s.Name)
			}
			alt := s.Alternative
			if alt == "" {
				alt = "-"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | 营收%s 利润%s | %s |\n",
				s.SectorName, etf, s.TradedVolume,
				common.FormatSignedPct(s.RevenueGrowth), common.FormatSignedPct(s.ProfitGrowth), alt))
		}
		sb.WriteString("\n")
	}

	if len(rec.AvoidList) > 0 {
		sb.WriteString("### 建议回避\n\n")
		for _, s := range rec.AvoidList {
			if s.Code != "" {
				sb.WriteString(fmt.Sprintf("- **%s** (%s %s)：%s\n", s.SectorName, s.Code, s.Name, s.Note))
			} else {
				sb.WriteString(fmt.Sprintf("- **%s**：%s\n", s.SectorName, s.Note))
			}
		}
		sb.WriteString("\n")
	}

	if rec.Narrative != "" {
		sb.WriteString("### 配置思路\n\n")
		sb.WriteString(rec.Narrative)
		sb.WriteString("\n\n")
	}

	if rec.RiskNotes != "" {
		sb.WriteString("### 风险提示\n\n")
		sb.WriteString(rec.RiskNotes)
		sb.WriteString("\n")
	}

	return sb.String()
}

func qualityLabel(q models.DataQuality) string {
	switch q {
	case models.QualityHigh:
		return "高"
	case models.QualityModerate:
		return "中"
	case models.QualityLimited:
		return "有限"
	case models.QualityPoor:
		return "差"
	default:
		return string(q)
	}
}

// formatMarketOverview renders per-symbol snapshots as a markdown table.
func formatMarketOverview(snapshots []models.MarketSnapshot) string {
	var sb strings.Builder

	sb.WriteString("## 市场概览\n\n")
	sb.WriteString("| 标的 | 价格 | 日涨跌 | 波动状态 |\n")
	sb.WriteString("|------|------|--------|----------|\n")

	for _, snap := range snapshots {
		if snap.Err != "" {
			sb.WriteString(fmt.Sprintf("| %s | - | - | %s |\n", snap.Symbol, snap.Err))
			continue
		}
		regime := "-"
		if snap.Profile != nil {
			regime = fmt.Sprintf("%s (%.1f%%)", regimeLabel(snap.Profile.Regime), snap.Profile.Annualized*100)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			snap.Symbol, common.FormatPrice(snap.Price), common.FormatSignedPct(snap.ChangePct), regime))
	}

	return sb.String()
}

// formatAccountOverview renders the broker account summary as markdown.
func formatAccountOverview(overview *models.AccountOverview) string {
	var sb strings.Builder

	sb.WriteString("## 账户概览\n\n")
	sb.WriteString(fmt.Sprintf("- **总资产**: %s\n", common.FormatMoney(overview.TotalAssets)))
	sb.WriteString(fmt.Sprintf("- **可用资金**: %s\n", common.FormatMoney(overview.AvailableCash)))
	sb.WriteString(fmt.Sprintf("- **持仓市值**: %s\n", common.FormatMoney(overview.MarketValue)))
	sb.WriteString(fmt.Sprintf("- **持仓数量**: %d\n", overview.PositionCount))
	if overview.Currency != "" {
		sb.WriteString(fmt.Sprintf("- **币种**: %s\n", overview.Currency))
	}

	return sb.String()
}
