// Package app wires configuration, clients, services, and the MCP server.
// It is the shared core used by both cmd/gridmate-server and cmd/gridmate-mcp.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/weihan/gridmate/internal/clients/broker"
	"github.com/weihan/gridmate/internal/clients/quotes"
	"github.com/weihan/gridmate/internal/common"
	"github.com/weihan/gridmate/internal/interfaces"
	"github.com/weihan/gridmate/internal/services/grid"
	"github.com/weihan/gridmate/internal/services/market"
	"github.com/weihan/gridmate/internal/services/sector"
)

// App holds all initialized services, clients, and the MCP server.
type App struct {
	Config        *common.Config
	Logger        *common.Logger
	QuotesClient  interfaces.QuotesClient
	BrokerClient  interfaces.BrokerClient
	GridService   interfaces.GridService
	SectorService interfaces.SectorService
	MarketService interfaces.MarketService
	MCPServer     *server.MCPServer
	Images        *ImageCache
	StartupTime   time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, clients, services, and the MCP server.
// configPath may be empty, in which case GRIDMATE_CONFIG and then the binary
// directory are consulted.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	binDir := getBinaryDir()
	if configPath == "" {
		configPath = os.Getenv("GRIDMATE_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "gridmate.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/gridmate.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative image dir to binary directory
	if config.Server.ImageDir != "" && !filepath.IsAbs(config.Server.ImageDir) {
		config.Server.ImageDir = filepath.Join(binDir, config.Server.ImageDir)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	quotesClient := quotes.NewClient(
		config.Clients.Quotes.BaseURL,
		config.Clients.Quotes.APIKey,
		quotes.WithLogger(logger),
		quotes.WithRateLimit(config.Clients.Quotes.RateLimit),
		quotes.WithTimeout(config.Clients.Quotes.GetTimeout()),
	)

	brokerClient := broker.NewClient(
		config.Clients.Broker.BaseURL,
		config.Clients.Broker.APIKey,
		broker.WithLogger(logger),
		broker.WithRateLimit(config.Clients.Broker.RateLimit),
		broker.WithTimeout(config.Clients.Broker.GetTimeout()),
	)

	gridService := grid.NewService(quotesClient, brokerClient, config.Grid, logger)
	sectorService := sector.NewService(sector.DefaultRegistry(), config.Sector, logger)
	marketService := market.NewService(quotesClient, logger)

	mcpServer := server.NewMCPServer(
		"gridmate",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:        config,
		Logger:        logger,
		QuotesClient:  quotesClient,
		BrokerClient:  brokerClient,
		GridService:   gridService,
		SectorService: sectorService,
		MarketService: marketService,
		MCPServer:     mcpServer,
		Images:        NewImageCache(config.Server.ImageDir, config.Server.Port, logger),
		StartupTime:   startupStart,
	}

	a.registerTools()

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")
	return a, nil
}

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer
	logger := a.Logger

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createPreviewGridBoundsTool(), handlePreviewGridBounds(a.GridService, a.Images, logger))
	s.AddTool(createCreateGridStrategyTool(), handleCreateGridStrategy(a.GridService, logger))
	s.AddTool(createListGridStrategiesTool(), handleListGridStrategies(a.BrokerClient, logger))
	s.AddTool(createStopGridStrategyTool(), handleStopGridStrategy(a.BrokerClient, logger))
	s.AddTool(createAnalyzeSectorReportTool(), handleAnalyzeSectorReport(a.SectorService, logger))
	s.AddTool(createMarketOverviewTool(), handleMarketOverview(a.MarketService, logger))
	s.AddTool(createGetAccountOverviewTool(), handleGetAccountOverview(a.BrokerClient, logger))
}
