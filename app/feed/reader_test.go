package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>Sample Feed</title>
    <link>https://example.com</link>
    <item>
      <title>First Article</title>
      <link>https://example.com/first</link>
      <description>&lt;p&gt;Hello&lt;/p&gt; world</description>
      <pubDate>Fri, 15 Mar 2024 10:00:00 GMT</pubDate>
      <media:thumbnail url="https://example.com/thumb.jpg" />
      <media:content url="https://example.com/media.jpg" medium="image" />
    </item>
    <item>
      <title>Second Article</title>
      <link>https://example.com/second</link>
      <enclosure url="https://example.com/photo.png" length="1024" type="image/png" />
      <itunes:image href="https://example.com/podcast.jpg" />
    </item>
  </channel>
</rss>`

func newTestReader(timeout time.Duration) *Reader {
	return &Reader{
		httpClient:   &http.Client{},
		gofeedParser: gofeed.NewParser(),
		userAgent:    "test-agent",
		timeout:      timeout,
	}
}

func TestReader_Fetch_ConvertsEntries(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	reader := newTestReader(10 * time.Second)

	source, err := reader.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if gotUserAgent != "test-agent" {
		t.Errorf("Expected configured user agent, got '%s'", gotUserAgent)
	}
	if source.Metadata.Title != "Sample Feed" {
		t.Errorf("Expected feed title 'Sample Feed', got '%s'", source.Metadata.Title)
	}
	if len(source.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(source.Entries))
	}

	first := source.Entries[0]
	if first.Title != "First Article" {
		t.Errorf("Unexpected title: '%s'", first.Title)
	}
	if first.PublishedAt == nil {
		t.Fatal("Expected structured published date")
	}
	if first.PublishedAt.UTC().Format("2006-01-02") != "2024-03-15" {
		t.Errorf("Unexpected published date: %v", first.PublishedAt)
	}
	if len(first.Thumbnails) != 1 || first.Thumbnails[0].URL != "https://example.com/thumb.jpg" {
		t.Errorf("Expected media thumbnail, got %+v", first.Thumbnails)
	}
	if len(first.Media) != 1 || first.Media[0].Medium != "image" {
		t.Errorf("Expected media content with image medium, got %+v", first.Media)
	}

	second := source.Entries[1]
	if len(second.Enclosures) != 1 || second.Enclosures[0].MimeType != "image/png" {
		t.Errorf("Expected image enclosure, got %+v", second.Enclosures)
	}
	if second.PodcastImage != "https://example.com/podcast.jpg" {
		t.Errorf("Expected podcast image, got '%s'", second.PodcastImage)
	}
}

func TestReader_Fetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	reader := newTestReader(10 * time.Second)

	if _, err := reader.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for non-200 response")
	}
}

func TestReader_Fetch_InvalidDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer server.Close()

	reader := newTestReader(10 * time.Second)

	if _, err := reader.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for unparseable document")
	}
}

func TestReader_Fetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	reader := newTestReader(20 * time.Millisecond)

	if _, err := reader.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected timeout to surface as an error")
	}
}
