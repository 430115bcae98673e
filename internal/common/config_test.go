package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != 4242 {
		t.Errorf("Port = %d, want 4242", cfg.Server.Port)
	}
	if cfg.Grid.Multiplier != 2.0 || cfg.Grid.GridCount != 10 || cfg.Grid.LookbackDays != 60 {
		t.Errorf("grid defaults = %+v", cfg.Grid)
	}
	if cfg.Grid.DefaultVolatility != 0.20 {
		t.Errorf("DefaultVolatility = %v, want 0.20", cfg.Grid.DefaultVolatility)
	}
	if cfg.Sector.StrongGrowthPct != 5 || cfg.Sector.WeakProfitPct != -5 {
		t.Errorf("sector thresholds = %+v", cfg.Sector)
	}
	if cfg.Sector.BuyCap != 6 || cfg.Sector.AvoidCap != 5 {
		t.Errorf("caps = %d/%d, want 6/5", cfg.Sector.BuyCap, cfg.Sector.AvoidCap)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.Server.Port != 4242 {
		t.Errorf("Port = %d, want default 4242", cfg.Server.Port)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridmate.toml")
	data := `
environment = "production"

[server]
port = 9090

[grid]
multiplier = 1.5
lookback_days = 30

[clients.quotes]
base_url = "https://quotes.example.com"
timeout = "10s"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "production" {
		t.Errorf("Environment = %s", cfg.Environment)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Grid.Multiplier != 1.5 || cfg.Grid.LookbackDays != 30 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	// values absent from the file keep their defaults
	if cfg.Grid.GridCount != 10 {
		t.Errorf("GridCount = %d, want default 10", cfg.Grid.GridCount)
	}
	if cfg.Clients.Quotes.GetTimeout().Seconds() != 10 {
		t.Errorf("quotes timeout = %v", cfg.Clients.Quotes.GetTimeout())
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GRIDMATE_QUOTES_API_KEY", "env-key")
	t.Setenv("GRIDMATE_SERVER_PORT", "8181")
	t.Setenv("GRIDMATE_LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Clients.Quotes.APIKey != "env-key" {
		t.Errorf("APIKey = %s", cfg.Clients.Quotes.APIKey)
	}
	if cfg.Server.Port != 8181 {
		t.Errorf("Port = %d, want 8181", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %s", cfg.Logging.Level)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[server\nport="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad multiplier", func(c *Config) { c.Grid.Multiplier = -1 }},
		{"bad grid count", func(c *Config) { c.Grid.GridCount = 1 }},
		{"bad default volatility", func(c *Config) { c.Grid.DefaultVolatility = 0 }},
		{"bad caps", func(c *Config) { c.Sector.BuyCap = 0 }},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		c.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestGetTimeout_BadValueFallsBack(t *testing.T) {
	qc := QuotesConfig{Timeout: "not-a-duration"}
	if qc.GetTimeout().Seconds() != 30 {
		t.Errorf("timeout = %v, want 30s fallback", qc.GetTimeout())
	}
}
