package feed

import (
	"time"
)

// Feed processing types

type Metadata struct {
	Title       string
	Link        string
	Description string
	Language    string
}

// Source is one fetched and parsed feed document.
type Source struct {
	Metadata Metadata
	Entries  []Entry
}

// Entry is a single feed entry with every field optional. Structured dates
// take precedence over their raw text counterparts during date resolution.
type Entry struct {
	Title   string
	Link    string
	Summary string

	PublishedAt *time.Time
	UpdatedAt   *time.Time
	CreatedAt   *time.Time

	// Raw text date fields, used when no structured date parsed
	Published string
	Updated   string
	Created   string

	// Image reference channels, checked in precedence order
	Thumbnails   []MediaRef
	Media        []MediaRef
	Enclosures   []MediaRef
	PodcastImage string
	Image        string
}

// MediaRef is one media reference attached to an entry.
type MediaRef struct {
	URL      string
	Medium   string
	MimeType string
}

// Item is a normalized, output-ready entry.
type Item struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
	Source  string `json:"source"`
	Image   string `json:"image,omitempty"`
}
