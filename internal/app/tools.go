package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the Gridmate server version and status. Use this to verify connectivity."),
	)
}

// createPreviewGridBoundsTool returns the preview_grid_bounds tool definition
func createPreviewGridBoundsTool() mcp.Tool {
	return mcp.NewTool("preview_grid_bounds",
		mcp.WithDescription("Compute volatility-adaptive grid trading bounds for a symbol without placing any order. Returns upper/lower bounds, grid spacing, the volatility regime, and a chart."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("ETF or stock symbol (e.g., '512400', '159995')"),
		),
		mcp.WithNumber("lookback_days",
			mcp.Description("History window in days for the volatility estimate (default: 60)"),
		),
		mcp.WithNumber("volatility_multiplier",
			mcp.Description("Width of the envelope in volatilities (default: 2.0)"),
		),
		mcp.WithNumber("grid_count",
			mcp.Description("Number of grid levels (default: 10)"),
		),
	)
}

// createCreateGridStrategyTool returns the create_grid_strategy tool definition
func createCreateGridStrategyTool() mcp.Tool {
	return mcp.NewTool("create_grid_strategy",
		mcp.WithDescription("Create a grid trading strategy on the broker. Bounds are derived from historical volatility unless both upper_price and lower_price are supplied."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("ETF or stock symbol to trade"),
		),
		mcp.WithNumber("investment_amount",
			mcp.Required(),
			mcp.Description("Total capital to allocate to the grid, in CNY"),
		),
		mcp.WithNumber("grid_count",
			mcp.Description("Number of grid levels (default: 10)"),
		),
		mcp.WithNumber("lookback_days",
			mcp.Description("History window in days for the volatility estimate (default: 60)"),
		),
		mcp.WithNumber("volatility_multiplier",
			mcp.Description("Width of the envelope in volatilities (default: 2.0)"),
		),
		mcp.WithNumber("upper_price",
			mcp.Description("Explicit upper bound; requires lower_price"),
		),
		mcp.WithNumber("lower_price",
			mcp.Description("Explicit lower bound; requires upper_price"),
		),
	)
}

// createListGridStrategiesTool returns the list_grid_strategies tool definition
func createListGridStrategiesTool() mcp.Tool {
	return mcp.NewTool("list_grid_strategies",
		mcp.WithDescription("List all grid strategies on the trading account with their status and realized profit."),
	)
}

// createStopGridStrategyTool returns the stop_grid_strategy tool definition
func createStopGridStrategyTool() mcp.Tool {
	return mcp.NewTool("stop_grid_strategy",
		mcp.WithDescription("Stop a running grid strategy. Open grid orders are cancelled; the position is kept."),
		mcp.WithString("strategy_id",
			mcp.Required(),
			mcp.Description("Identifier of the strategy to stop"),
		),
	)
}

// createAnalyzeSectorReportTool returns the analyze_sector_report tool definition
func createAnalyzeSectorReportTool() mcp.Tool {
	return mcp.NewTool("analyze_sector_report",
		mcp.WithDescription("Analyze raw industrial sector statistics text (e.g. pasted from a monthly industrial profits release, Chinese or English) into buy/avoid ETF recommendations with an allocation strategy."),
		mcp.WithString("report_text",
			mcp.Required(),
			mcp.Description("Raw multi-line text with per-sector revenue and profit growth figures"),
		),
	)
}

// createMarketOverviewTool returns the market_overview tool definition
func createMarketOverviewTool() mcp.Tool {
	return mcp.NewTool("market_overview",
		mcp.WithDescription("Get a per-symbol snapshot (price, day change, volatility regime) for a list of symbols. Symbols that fail to load are reported individually and never block the rest."),
		mcp.WithArray("symbols",
			mcp.WithStringItems(),
			mcp.Required(),
			mcp.Description("Symbols to include (e.g., ['512400', '512480'])"),
		),
	)
}

// createGetAccountOverviewTool returns the get_account_overview tool definition
func createGetAccountOverviewTool() mcp.Tool {
	return mcp.NewTool("get_account_overview",
		mcp.WithDescription("Get the trading account summary: total assets, available cash, market value, position count."),
	)
}
