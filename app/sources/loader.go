package sources

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultPaths is the lookup chain for the feed list; first found wins.
var defaultPaths = []string{"data/feeds.json", "feeds.json", "feeds.yml"}

// Loader resolves the ordered list of feed locators from disk. The list is
// either an array of URL strings or an array of objects with a "url" field.
type Loader struct {
	paths []string
}

func NewLoader(explicitPath string) *Loader {
	if explicitPath != "" {
		return &Loader{paths: []string{explicitPath}}
	}
	return &Loader{paths: defaultPaths}
}

// Run returns the locator list. A missing or unreadable list is a warning,
// not a failure: the run proceeds with zero sources.
func (l *Loader) Run() []string {
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				slog.Warn("Failed to read feed list", "path", path, "error", err)
			}
			continue
		}

		locators, err := parseList(data, path)
		if err != nil {
			slog.Warn("Failed to parse feed list", "path", path, "error", err)
			return []string{}
		}

		slog.Debug("Feed list loaded", "path", path, "count", len(locators))
		return locators
	}

	slog.Warn("No feed list found", "paths", l.paths)
	return []string{}
}

func parseList(data []byte, path string) ([]string, error) {
	var raw []interface{}

	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	locators := make([]string, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				locators = append(locators, trimmed)
			}
		case map[string]interface{}:
			if url, ok := v["url"].(string); ok {
				if trimmed := strings.TrimSpace(url); trimmed != "" {
					locators = append(locators, trimmed)
				}
			}
		}
	}

	return locators, nil
}
