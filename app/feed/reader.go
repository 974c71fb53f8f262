package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/bessnews/rss-digest/app/cfg"
)

// FallbackSourceTitle is used when a feed document carries no title.
const FallbackSourceTitle = "RSS Source"

// Reader fetches a feed document over HTTP and converts it into the
// structured Source/Entry representation used by the pipeline.
type Reader struct {
	httpClient   *http.Client
	gofeedParser *gofeed.Parser
	userAgent    string
	timeout      time.Duration
}

func NewReader(httpClient *http.Client) *Reader {
	c := cfg.Get()

	return &Reader{
		httpClient:   httpClient,
		gofeedParser: gofeed.NewParser(),
		userAgent:    c.UserAgent,
		timeout:      time.Duration(c.FetchTimeout) * time.Second,
	}
}

func (r *Reader) Fetch(ctx context.Context, url string) (*Source, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	parsed, err := r.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	source := &Source{
		Metadata: Metadata{
			Title:       parsed.Title,
			Link:        parsed.Link,
			Description: parsed.Description,
			Language:    parsed.Language,
		},
		Entries: make([]Entry, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		source.Entries = append(source.Entries, convertItem(item))
	}

	return source, nil
}

// convertItem maps a gofeed item onto the explicit optional fields of Entry.
func convertItem(item *gofeed.Item) Entry {
	entry := Entry{
		Title:       item.Title,
		Link:        item.Link,
		Summary:     item.Description,
		PublishedAt: item.PublishedParsed,
		UpdatedAt:   item.UpdatedParsed,
		Published:   item.Published,
		Updated:     item.Updated,
	}

	for _, e := range item.Extensions["media"]["thumbnail"] {
		entry.Thumbnails = append(entry.Thumbnails, MediaRef{
			URL: e.Attrs["url"],
		})
	}

	for _, e := range item.Extensions["media"]["content"] {
		entry.Media = append(entry.Media, MediaRef{
			URL:      e.Attrs["url"],
			Medium:   e.Attrs["medium"],
			MimeType: e.Attrs["type"],
		})
	}

	for _, enclosure := range item.Enclosures {
		if enclosure == nil {
			continue
		}
		entry.Enclosures = append(entry.Enclosures, MediaRef{
			URL:      enclosure.URL,
			MimeType: enclosure.Type,
		})
	}

	// Dublin Core terms carry the "created" date channel
	for _, e := range item.Extensions["dcterms"]["created"] {
		if e.Value != "" {
			entry.Created = e.Value
			break
		}
	}

	if item.ITunesExt != nil {
		entry.PodcastImage = item.ITunesExt.Image
	}

	if item.Image != nil {
		entry.Image = item.Image.URL
	}

	return entry
}
