package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/weihan/gridmate/internal/common"
	"github.com/weihan/gridmate/internal/interfaces"
	"github.com/weihan/gridmate/internal/models"
)

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Gridmate MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handlePreviewGridBounds implements the preview_grid_bounds tool
func handlePreviewGridBounds(gridService interfaces.GridService, images *ImageCache, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil || symbol == "" {
			return errorResult("Error: symbol parameter is required"), nil
		}

		opts := interfaces.BoundsOptions{
			LookbackDays: request.GetInt("lookback_days", 0),
			Multiplier:   request.GetFloat("volatility_multiplier", 0),
			GridCount:    request.GetInt("grid_count", 0),
		}

		bounds, profile, err := gridService.ComputeBounds(ctx, symbol, opts)
		if err != nil {
			if errors.Is(err, models.ErrDataUnavailable) {
				return errorResult(fmt.Sprintf("No price data available for %s, cannot compute bounds", symbol)), nil
			}
			logger.Error().Err(err).Str("symbol", symbol).Msg("Bound computation failed")
			return errorResult(fmt.Sprintf("Bound computation error: %v", err)), nil
		}

		chartURL := renderChart(ctx, gridService, images, bounds, logger)
		return textResult(formatGridBounds(bounds, profile, chartURL)), nil
	}
}

// renderChart fetches the series and renders the bounds chart into the image
// cache. Chart failures are cosmetic, so they only log.
func renderChart(ctx context.Context, gridService interfaces.GridService, images *ImageCache, bounds *models.GridBounds, logger *common.Logger) string {
	if images == nil || bounds.Fallback {
		return ""
	}
	series, err := gridService.FetchSeries(ctx, bounds.Symbol, 0)
	if err != nil {
		return ""
	}
	png, err := gridService.RenderBoundsChart(series, bounds)
	if err != nil {
		logger.Debug().Err(err).Str("symbol", bounds.Symbol).Msg("Chart render skipped")
		return ""
	}
	url, err := images.Put(BoundsImageName(bounds.Symbol), png)
	if err != nil {
		logger.Warn().Err(err).Msg("Chart cache write failed")
		return ""
	}
	return url
}

// handleCreateGridStrategy implements the create_grid_strategy tool
func handleCreateGridStrategy(gridService interfaces.GridService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil || symbol == "" {
			return errorResult("Error: symbol parameter is required"), nil
		}
		amount := request.GetFloat("investment_amount", 0)
		if amount <= 0 {
			return errorResult("Error: investment_amount must be a positive number"), nil
		}

		upper := request.GetFloat("upper_price", 0)
		lower := request.GetFloat("lower_price", 0)
		if (upper > 0) != (lower > 0) {
			return errorResult("Error: upper_price and lower_price must be supplied together"), nil
		}

		strategy, bounds, err := gridService.CreateStrategy(ctx, interfaces.CreateOptions{
			Symbol:           symbol,
			InvestmentAmount: amount,
			GridCount:        request.GetInt("grid_count", 0),
			LookbackDays:     request.GetInt("lookback_days", 0),
			Multiplier:       request.GetFloat("volatility_multiplier", 0),
			UpperPrice:       upper,
			LowerPrice:       lower,
		})
		if err != nil {
			if errors.Is(err, models.ErrDataUnavailable) {
				return errorResult(fmt.Sprintf("No price data available for %s, cannot compute bounds", symbol)), nil
			}
			logger.Error().Err(err).Str("symbol", symbol).Msg("Grid creation failed")
			return errorResult(fmt.Sprintf("Grid creation error: %v", err)), nil
		}

		return textResult(formatGridCreated(strategy, bounds)), nil
	}
}

// handleListGridStrategies implements the list_grid_strategies tool
func handleListGridStrategies(brokerClient interfaces.BrokerClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		strategies, err := brokerClient.ListGrids(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("List grids failed")
			return errorResult(fmt.Sprintf("Error listing strategies: %v", err)), nil
		}
		return textResult(formatGridList(strategies)), nil
	}
}

// handleStopGridStrategy implements the stop_grid_strategy tool
func handleStopGridStrategy(brokerClient interfaces.BrokerClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		strategyID, err := request.RequireString("strategy_id")
		if err != nil || strategyID == "" {
			return errorResult("Error: strategy_id parameter is required"), nil
		}

		strategy, err := brokerClient.StopGrid(ctx, strategyID)
		if err != nil {
			logger.Error().Err(err).Str("strategy_id", strategyID).Msg("Stop grid failed")
			return errorResult(fmt.Sprintf("Error stopping strategy: %v", err)), nil
		}
		return textResult(formatStopResult(strategy)), nil
	}
}

// handleAnalyzeSectorReport implements the analyze_sector_report tool
func handleAnalyzeSectorReport(sectorService interfaces.SectorService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("report_text")
		if err != nil || text == "" {
			return errorResult("Error: report_text parameter is required"), nil
		}

		rec, err := sectorService.AnalyzeReport(ctx, text)
		if err != nil {
			logger.Error().Err(err).Msg("Sector analysis failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}
		return textResult(formatRecommendation(rec)), nil
	}
}

// handleMarketOverview implements the market_overview tool
func handleMarketOverview(marketService interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbols := request.GetStringSlice("symbols", nil)
		if len(symbols) == 0 {
			return errorResult("Error: symbols parameter is required"), nil
		}

		snapshots, err := marketService.Overview(ctx, symbols)
		if err != nil {
			logger.Error().Err(err).Msg("Market overview failed")
			return errorResult(fmt.Sprintf("Overview error: %v", err)), nil
		}
		return textResult(formatMarketOverview(snapshots)), nil
	}
}

// handleGetAccountOverview implements the get_account_overview tool
func handleGetAccountOverview(brokerClient interfaces.BrokerClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		overview, err := brokerClient.GetAccountOverview(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Account overview failed")
			return errorResult(fmt.Sprintf("Error getting account overview: %v", err)), nil
		}
		return textResult(formatAccountOverview(overview)), nil
	}
}

// Helper functions

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
