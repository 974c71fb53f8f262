package feed

import (
	"strings"
)

// Deduplicator tracks links already emitted during a run. Keys are
// lowercased links; the set lives for exactly one aggregation run.
type Deduplicator struct {
	seen map[string]struct{}
}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{
		seen: make(map[string]struct{}),
	}
}

func (d *Deduplicator) Seen(link string) bool {
	_, ok := d.seen[strings.ToLower(link)]
	return ok
}

func (d *Deduplicator) Add(link string) {
	d.seen[strings.ToLower(link)] = struct{}{}
}

func (d *Deduplicator) Count() int {
	return len(d.seen)
}
