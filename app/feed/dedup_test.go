package feed

import (
	"testing"
)

func TestDeduplicator_CaseInsensitive(t *testing.T) {
	dedup := NewDeduplicator()

	dedup.Add("https://Example.com/Article")

	if !dedup.Seen("https://example.com/article") {
		t.Error("Expected dedup key to be case-insensitive")
	}
	if !dedup.Seen("HTTPS://EXAMPLE.COM/ARTICLE") {
		t.Error("Expected dedup key to be case-insensitive")
	}
	if dedup.Seen("https://example.com/other") {
		t.Error("Expected unseen link to be reported as unseen")
	}
}

func TestDeduplicator_Count(t *testing.T) {
	dedup := NewDeduplicator()

	dedup.Add("https://example.com/a")
	dedup.Add("https://example.com/A")
	dedup.Add("https://example.com/b")

	if dedup.Count() != 2 {
		t.Errorf("Expected 2 distinct keys, got %d", dedup.Count())
	}
}
