package feed

import (
	"time"
)

// Evaluator decides whether a source is fresh enough to contribute items.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Run reports whether the source is stale relative to the cutoff. A source
// with no entries, or no entry with a resolvable date, counts as stale.
func (e *Evaluator) Run(entries []Entry, staleCutoff time.Time) bool {
	if len(entries) == 0 {
		return true
	}

	var latest time.Time
	found := false

	for _, entry := range entries {
		d, ok := pickDate(entry)
		if !ok {
			continue
		}
		if !found || d.After(latest) {
			latest = d
			found = true
		}
	}

	return !found || latest.Before(staleCutoff)
}
