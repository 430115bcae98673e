package sector

import "github.com/weihan/gridmate/internal/models"

// DefaultRegistry returns the curated sector→ETF mapping. Entry order is the
// matching order: more specific keywords come before broader ones so that a
// sector name containing both resolves to the specific fund. Candidates
// within an entry are ranked by traded volume, highest first.
//
// The table is compiled-in configuration; deployments that need a different
// universe construct the service with their own registry.
func DefaultRegistry() *models.SectorRegistry {
	return models.NewSectorRegistry([]models.RegistryEntry{
		{Keyword: "稀土", Candidates: []models.ETFCandidate{
			{Code: "516780", Name: "稀土ETF", TradedVolume: "12.1亿"},
			{Code: "159713", Name: "稀土ETF易方达", TradedVolume: "8.9亿"},
		}},
		{Keyword: "有色金属", Candidates: []models.ETFCandidate{
			{Code: "512400", Name: "有色金属ETF", TradedVolume: "38.6亿"},
			{Code: "159876", Name: "有色龙头ETF", TradedVolume: "5.2亿"},
		}},
		{Keyword: "半导体", Candidates: []models.ETFCandidate{
			{Code: "512480", Name: "半导体ETF", TradedVolume: "45.3亿"},
			{Code: "159995", Name: "芯片ETF", TradedVolume: "41.8亿"},
		}},
		{Keyword: "电子", Candidates: []models.ETFCandidate{
			{Code: "515260", Name: "电子ETF", TradedVolume: "6.8亿"},
			{Code: "159997", Name: "电子50ETF", TradedVolume: "4.1亿"},
		}},
		{Keyword: "计算机", Candidates: []models.ETFCandidate{
			{Code: "512720", Name: "计算机ETF", TradedVolume: "9.4亿"},
			{Code: "159998", Name: "计算机50ETF", TradedVolume: "7.7亿"},
		}},
		{Keyword: "通信", Candidates: []models.ETFCandidate{
			{Code: "515880", Name: "通信ETF", TradedVolume: "11.3亿"},
		}},
		{Keyword: "医药", Candidates: []models.ETFCandidate{
			{Code: "512010", Name: "医药ETF", TradedVolume: "18.4亿"},
			{Code: "159992", Name: "创新药ETF", TradedVolume: "16.0亿"},
		}},
		{Keyword: "医疗", Candidates: []models.ETFCandidate{
			{Code: "512170", Name: "医疗ETF", TradedVolume: "22.9亿"},
		}},
		{Keyword: "军工", Candidates: []models.ETFCandidate{
			{Code: "512660", Name: "军工ETF", TradedVolume: "25.7亿"},
			{Code: "512810", Name: "军工龙头ETF", TradedVolume: "10.5亿"},
		}},
		{Keyword: "船舶", Candidates: []models.ETFCandidate{
			{Code: "512660", Name: "军工ETF", TradedVolume: "25.7亿"},
		}},
		{Keyword: "铁路", Candidates: []models.ETFCandidate{
			{Code: "159666", Name: "交通运输ETF", TradedVolume: "1.9亿"},
		}},
		{Keyword: "运输", Candidates: []models.ETFCandidate{
			{Code: "159666", Name: "交通运输ETF", TradedVolume: "1.9亿"},
		}},
		{Keyword: "汽车", Candidates: []models.ETFCandidate{
			{Code: "516110", Name: "汽车ETF", TradedVolume: "8.2亿"},
			{Code: "159755", Name: "新能源车电池ETF", TradedVolume: "14.6亿"},
		}},
		{Keyword: "电力", Candidates: []models.ETFCandidate{
			{Code: "159611", Name: "电力ETF", TradedVolume: "13.8亿"},
		}},
		{Keyword: "化学", Candidates: []models.ETFCandidate{
			{Code: "159870", Name: "化工ETF", TradedVolume: "5.9亿"},
		}},
		{Keyword: "化工", Candidates: []models.ETFCandidate{
			{Code: "159870", Name: "化工ETF", TradedVolume: "5.9亿"},
		}},
		{Keyword: "钢铁", Candidates: []models.ETFCandidate{
			{Code: "515210", Name: "钢铁ETF", TradedVolume: "4.4亿"},
		}},
		{Keyword: "煤炭", Candidates: []models.ETFCandidate{
			{Code: "515220", Name: "煤炭ETF", TradedVolume: "19.2亿"},
		}},
		{Keyword: "食品", Candidates: []models.ETFCandidate{
			{Code: "515710", Name: "食品饮料ETF", TradedVolume: "3.6亿"},
		}},
		{Keyword: "酒", Candidates: []models.ETFCandidate{
			{Code: "512690", Name: "酒ETF", TradedVolume: "28.1亿"},
		}},
		{Keyword: "纺织", Candidates: []models.ETFCandidate{
			// Thin single-fund bucket with chronic discount; kept for avoid
			// synthesis only.
			{Code: "159781", Name: "纺织服装ETF", TradedVolume: "0.3亿", Avoid: true},
		}},
		{Keyword: "房地产", Candidates: []models.ETFCandidate{
			{Code: "512200", Name: "房地产ETF", TradedVolume: "7.1亿", Avoid: true},
		}},
		// English keywords for the dash-labeled report form.
		{Keyword: "Nonferrous", Candidates: []models.ETFCandidate{
			{Code: "512400", Name: "有色金属ETF", TradedVolume: "38.6亿"},
		}},
		{Keyword: "Semiconductor", Candidates: []models.ETFCandidate{
			{Code: "512480", Name: "半导体ETF", TradedVolume: "45.3亿"},
			{Code: "159995", Name: "芯片ETF", TradedVolume: "41.8亿"},
		}},
		{Keyword: "Electronics", Candidates: []models.ETFCandidate{
			{Code: "515260", Name: "电子ETF", TradedVolume: "6.8亿"},
		}},
		{Keyword: "Pharmaceutical", Candidates: []models.ETFCandidate{
			{Code: "512010", Name: "医药ETF", TradedVolume: "18.4亿"},
			{Code: "159992", Name: "创新药ETF", TradedVolume: "16.0亿"},
		}},
		{Keyword: "Defense", Candidates: []models.ETFCandidate{
			{Code: "512660", Name: "军工ETF", TradedVolume: "25.7亿"},
		}},
	})
}
