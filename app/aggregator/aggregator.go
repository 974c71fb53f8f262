package aggregator

import (
	"cmp"
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bessnews/rss-digest/app/cfg"
	"github.com/bessnews/rss-digest/app/feed"
)

const metaTimeLayout = "2006-01-02 15:04"

// Aggregator drives one run of the pipeline: fetch every locator, skip
// stale sources, normalize and deduplicate entries, then sort and truncate
// the combined result. Failures of individual sources never abort the run.
type Aggregator struct {
	reader     Reader
	normalizer *feed.Normalizer
	evaluator  *feed.Evaluator

	staleDays    int
	perFeedLimit int
	totalLimit   int
	workerCount  int
}

func NewAggregator(reader Reader) *Aggregator {
	c := cfg.Get()

	return &Aggregator{
		reader:       reader,
		normalizer:   feed.NewNormalizer(),
		evaluator:    feed.NewEvaluator(),
		staleDays:    c.StaleDays,
		perFeedLimit: c.PerFeedLimit,
		totalLimit:   c.TotalLimit,
		workerCount:  c.WorkerCount,
	}
}

type sourceResult struct {
	source *feed.Source
	err    error
}

// Run aggregates all locators into a single result. Sources are fetched
// concurrently, but evaluation, normalization and deduplication happen
// strictly in input order so attribution and counters stay deterministic.
func (a *Aggregator) Run(ctx context.Context, locators []string) *Result {
	now := time.Now().UTC()
	staleCutoff := now.AddDate(0, 0, -a.staleDays)

	stats := Stats{TotalSources: len(locators)}

	fetched := a.fetchAll(ctx, locators)

	dedup := feed.NewDeduplicator()
	items := make([]feed.Item, 0)

	for i, locator := range locators {
		result := fetched[i]
		if result.err != nil {
			stats.Errors++
			slog.Error("Source fetch failed", "locator", locator, "error", result.err)
			continue
		}

		entries := result.source.Entries
		if a.evaluator.Run(entries, staleCutoff) {
			stats.SkippedStale++
			slog.Debug("Source skipped as stale", "locator", locator, "entries", len(entries))
			continue
		}

		if len(entries) > a.perFeedLimit {
			entries = entries[:a.perFeedLimit]
		}

		sourceTitle := cmp.Or(result.source.Metadata.Title, feed.FallbackSourceTitle)

		for _, entry := range entries {
			link := strings.TrimSpace(entry.Link)
			if link != "" && dedup.Seen(link) {
				continue
			}

			item, ok := a.normalizer.Run(entry, sourceTitle)
			if !ok {
				continue
			}

			items = append(items, item)
			dedup.Add(item.Link)
		}

		stats.UsedSources++
		slog.Debug("Source aggregated", "locator", locator, "title", sourceTitle, "entries", len(entries))
	}

	stats.ItemsBeforeDedup = len(items)

	// Lexicographic comparison on YYYY-MM-DD matches chronological order;
	// empty dates sort last. Stability preserves source order on ties.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})

	if a.totalLimit > 0 && len(items) > a.totalLimit {
		items = items[:a.totalLimit]
	}

	meta := Meta{
		Updated: now.Format(metaTimeLayout) + " UTC",
		Count:   len(items),
		Stats:   stats,
		Config: RunConfig{
			StaleDays:    a.staleDays,
			PerFeedLimit: a.perFeedLimit,
			TotalLimit:   a.totalLimit,
		},
	}

	return &Result{Items: items, Meta: meta}
}

// fetchAll retrieves every locator with bounded concurrency and returns the
// outcomes indexed by input position.
func (a *Aggregator) fetchAll(ctx context.Context, locators []string) []sourceResult {
	results := make([]sourceResult, len(locators))
	if len(locators) == 0 {
		return results
	}

	concurrency := a.workerCount
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(locators) {
		concurrency = len(locators)
	}

	semCh := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, locator := range locators {
		wg.Add(1)
		semCh <- struct{}{}

		go func(idx int, url string) {
			defer wg.Done()

			source, err := a.reader.Fetch(ctx, url)
			results[idx] = sourceResult{source: source, err: err}

			<-semCh
		}(i, locator)
	}

	wg.Wait()

	return results
}
