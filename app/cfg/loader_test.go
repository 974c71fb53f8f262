package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		StaleDays:    30,
		PerFeedLimit: 30,
		TotalLimit:   200,
		FetchTimeout: 30,
		WorkerCount:  5,
		FeedsFile:    "feeds.json",
		OutputDir:    "data",
		Port:         "8080",
		Schedule:     "@hourly",
		UserAgent:    "Test Agent",
		Debug:        true,
		Version:      "test-version",
	}

	if cfg.StaleDays != 30 {
		t.Errorf("Expected stale days 30, got %d", cfg.StaleDays)
	}
	if cfg.PerFeedLimit != 30 {
		t.Errorf("Expected per feed limit 30, got %d", cfg.PerFeedLimit)
	}
	if cfg.TotalLimit != 200 {
		t.Errorf("Expected total limit 200, got %d", cfg.TotalLimit)
	}
	if cfg.OutputDir != "data" {
		t.Errorf("Expected output dir 'data', got '%s'", cfg.OutputDir)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}

func TestGetPanicsWhenNotLoaded(t *testing.T) {
	saved := globalCfg
	globalCfg = nil
	defer func() {
		globalCfg = saved
		if r := recover(); r == nil {
			t.Error("Get should panic when configuration is not loaded")
		}
	}()

	Get()
}
