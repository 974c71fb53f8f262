package feed

import (
	"strings"
	"time"
)

const (
	summaryMaxLen = 140
	dateLayout    = "2006-01-02"
)

// lineBreakTags are removed from summaries by literal substring replacement.
// Tags carrying attributes are intentionally left alone.
var lineBreakTags = []string{"<p>", "</p>", "<br>", "<br/>", "<br />"}

// Normalizer converts raw entries into output-ready items.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Run normalizes a single entry. The second return value is false when the
// entry lacks a usable link or title and must be dropped.
func (n *Normalizer) Run(entry Entry, sourceTitle string) (Item, bool) {
	link := strings.TrimSpace(entry.Link)
	title := strings.TrimSpace(entry.Title)
	if link == "" || title == "" {
		return Item{}, false
	}

	date := ""
	if d, ok := pickDate(entry); ok {
		date = d.Format(dateLayout)
	}

	return Item{
		Title:   title,
		Link:    link,
		Date:    date,
		Summary: cleanSummary(entry.Summary),
		Source:  sourceTitle,
		Image:   extractImage(entry),
	}, true
}

// pickDate resolves the entry date in UTC. Structured fields win over raw
// text fields; both are tried in published, updated, created order.
func pickDate(entry Entry) (time.Time, bool) {
	for _, d := range []*time.Time{entry.PublishedAt, entry.UpdatedAt, entry.CreatedAt} {
		if d != nil {
			return d.UTC(), true
		}
	}

	for _, raw := range []string{entry.Published, entry.Updated, entry.Created} {
		if len(raw) < 10 {
			continue
		}
		if d, err := time.ParseInLocation(dateLayout, raw[:10], time.UTC); err == nil {
			return d, true
		}
	}

	return time.Time{}, false
}

func cleanSummary(text string) string {
	if text == "" {
		return ""
	}

	t := strings.ReplaceAll(text, "\n", " ")
	t = strings.ReplaceAll(t, "\r", " ")

	for _, tag := range lineBreakTags {
		t = strings.ReplaceAll(t, tag, " ")
	}

	t = strings.Join(strings.Fields(t), " ")
	if t == "" {
		return ""
	}

	runes := []rune(t)
	if len(runes) > summaryMaxLen {
		runes = runes[:summaryMaxLen]
	}

	return string(runes) + "…"
}

// extractImage returns the first usable image URL, checking the reference
// channels in fixed precedence order. Empty string means no image.
func extractImage(entry Entry) string {
	if len(entry.Thumbnails) > 0 && entry.Thumbnails[0].URL != "" {
		return entry.Thumbnails[0].URL
	}

	for _, m := range entry.Media {
		if m.URL == "" {
			continue
		}
		if m.Medium == "image" || strings.HasPrefix(m.MimeType, "image/") {
			return m.URL
		}
	}

	for _, l := range entry.Enclosures {
		if l.URL != "" && strings.HasPrefix(l.MimeType, "image/") {
			return l.URL
		}
	}

	if entry.PodcastImage != "" {
		return entry.PodcastImage
	}

	if entry.Image != "" {
		return entry.Image
	}

	return ""
}
