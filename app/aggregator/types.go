package aggregator

import (
	"context"

	"github.com/bessnews/rss-digest/app/feed"
)

// Reader fetches and parses one feed document. Implemented by feed.Reader;
// stubbed in tests.
type Reader interface {
	Fetch(ctx context.Context, url string) (*feed.Source, error)
}

// Stats accumulates per-run counters. Counters only ever increase during a
// run. ItemsBeforeDedup is measured after per-entry link deduplication but
// before global truncation; the historical name is kept on purpose.
type Stats struct {
	TotalSources     int `json:"total_sources"`
	UsedSources      int `json:"used_sources"`
	SkippedStale     int `json:"skipped_stale"`
	Errors           int `json:"errors"`
	ItemsBeforeDedup int `json:"items_before_dedup"`
}

// RunConfig echoes the limits the run was executed with.
type RunConfig struct {
	StaleDays    int `json:"stale_days"`
	PerFeedLimit int `json:"per_feed_limit"`
	TotalLimit   int `json:"total_limit"`
}

// Meta is the run summary document.
type Meta struct {
	Updated string    `json:"updated"`
	Count   int       `json:"count"`
	Stats   Stats     `json:"stats"`
	Config  RunConfig `json:"config"`
}

// Result holds both output documents of one aggregation run.
type Result struct {
	Items []feed.Item
	Meta  Meta
}
