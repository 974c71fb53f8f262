package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Aggregation configuration
	StaleDays    int `long:"stale-days" env:"STALE_DAYS" default:"30" description:"Skip a source when it has no entry newer than this many days"`
	PerFeedLimit int `long:"per-feed-limit" env:"PER_FEED_LIMIT" default:"30" description:"Maximum number of entries taken from a single source"`
	TotalLimit   int `long:"total-limit" env:"TOTAL_LIMIT" default:"200" description:"Maximum number of items in the aggregated output"`
	FetchTimeout int `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"Per-source fetch timeout in seconds"`
	WorkerCount  int `long:"worker-count" env:"WORKER_COUNT" default:"5" description:"Number of concurrent feed fetches"`

	// Input / output locations
	FeedsFile string `long:"feeds-file" env:"FEEDS_FILE" description:"Explicit feed list path (overrides the default lookup chain)"`
	OutputDir string `long:"output-dir" env:"OUTPUT_DIR" default:"data" description:"Directory for the generated news and meta documents"`

	// Server configuration
	Serve    bool   `long:"serve" env:"SERVE" description:"Keep running: serve the latest result over HTTP and aggregate on a schedule"`
	Port     string `long:"port" env:"PORT" default:"8080" description:"HTTP server port (serve mode)"`
	Schedule string `long:"schedule" env:"SCHEDULE" default:"@hourly" description:"Cron spec for scheduled aggregation runs (serve mode)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"FEED_USER_AGENT" default:"Mozilla/5.0 (compatible; RSSDigestBot/1.0; +https://example.org)" description:"User agent string for feed requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		StaleDays:    raw.StaleDays,
		PerFeedLimit: raw.PerFeedLimit,
		TotalLimit:   raw.TotalLimit,
		FetchTimeout: raw.FetchTimeout,
		WorkerCount:  raw.WorkerCount,
		FeedsFile:    raw.FeedsFile,
		OutputDir:    raw.OutputDir,
		Serve:        raw.Serve,
		Port:         raw.Port,
		Schedule:     raw.Schedule,
		UserAgent:    raw.UserAgent,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
