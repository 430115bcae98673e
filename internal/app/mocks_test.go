package app

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/weihan/gridmate/internal/interfaces"
	"github.com/weihan/gridmate/internal/models"
)

// fakeGridService implements interfaces.GridService with function fields.
type fakeGridService struct {
	computeBounds  func(ctx context.Context, symbol string, opts interfaces.BoundsOptions) (*models.GridBounds, *models.VolatilityProfile, error)
	createStrategy func(ctx context.Context, opts interfaces.CreateOptions) (*models.GridStrategy, *models.GridBounds, error)
	fetchSeries    func(ctx context.Context, symbol string, lookbackDays int) (*models.PriceSeries, error)
}

func (f *fakeGridService) ComputeBounds(ctx context.Context, symbol string, opts interfaces.BoundsOptions) (*models.GridBounds, *models.VolatilityProfile, error) {
	if f.computeBounds == nil {
		return nil, nil, errors.New("computeBounds not stubbed")
	}
	return f.computeBounds(ctx, symbol, opts)
}

func (f *fakeGridService) CreateStrategy(ctx context.Context, opts interfaces.CreateOptions) (*models.GridStrategy, *models.GridBounds, error) {
	if f.createStrategy == nil {
		return nil, nil, errors.New("createStrategy not stubbed")
	}
	return f.createStrategy(ctx, opts)
}

func (f *fakeGridService) RenderBoundsChart(series *models.PriceSeries, bounds *models.GridBounds) ([]byte, error) {
	return nil, errors.New("chart not stubbed")
}

func (f *fakeGridService) FetchSeries(ctx context.Context, symbol string, lookbackDays int) (*models.PriceSeries, error) {
	if f.fetchSeries == nil {
		return nil, errors.New("fetchSeries not stubbed")
	}
	return f.fetchSeries(ctx, symbol, lookbackDays)
}

// fakeSectorService implements interfaces.SectorService.
type fakeSectorService struct {
	analyzeReport func(ctx context.Context, text string) (*models.Recommendation, error)
}

func (f *fakeSectorService) AnalyzeReport(ctx context.Context, text string) (*models.Recommendation, error) {
	if f.analyzeReport == nil {
		return nil, errors.New("analyzeReport not stubbed")
	}
	return f.analyzeReport(ctx, text)
}

// fakeMarketService implements interfaces.MarketService.
type fakeMarketService struct {
	overview func(ctx context.Context, symbols []string) ([]models.MarketSnapshot, error)
}

func (f *fakeMarketService) Overview(ctx context.Context, symbols []string) ([]models.MarketSnapshot, error) {
	if f.overview == nil {
		return nil, errors.New("overview not stubbed")
	}
	return f.overview(ctx, symbols)
}

// fakeBroker implements interfaces.BrokerClient.
type fakeBroker struct {
	createGrid         func(ctx context.Context, req models.GridRequest) (*models.GridStrategy, error)
	listGrids          func(ctx context.Context) ([]*models.GridStrategy, error)
	stopGrid           func(ctx context.Context, strategyID string) (*models.GridStrategy, error)
	getAccountOverview func(ctx context.Context) (*models.AccountOverview, error)
}

func (f *fakeBroker) CreateGrid(ctx context.Context, req models.GridRequest) (*models.GridStrategy, error) {
	if f.createGrid == nil {
		return nil, errors.New("createGrid not stubbed")
	}
	return f.createGrid(ctx, req)
}

func (f *fakeBroker) ListGrids(ctx context.Context) ([]*models.GridStrategy, error) {
	if f.listGrids == nil {
		return nil, errors.New("listGrids not stubbed")
	}
	return f.listGrids(ctx)
}

func (f *fakeBroker) StopGrid(ctx context.Context, strategyID string) (*models.GridStrategy, error) {
	if f.stopGrid == nil {
		return nil, errors.New("stopGrid not stubbed")
	}
	return f.stopGrid(ctx, strategyID)
}

func (f *fakeBroker) GetAccountOverview(ctx context.Context) (*models.AccountOverview, error) {
	if f.getAccountOverview == nil {
		return nil, errors.New("getAccountOverview not stubbed")
	}
	return f.getAccountOverview(ctx)
}

func resultText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if tc, ok := result.Content[0].(mcp.TextContent); ok {
		return tc.Text
	}
	return ""
}
