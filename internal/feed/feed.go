// Package feed produces and reads the podcast episode snapshot shown by the
// podcast section.
package feed

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/starford/sitekit/internal/storage"
)

// DefaultSnapshot is the snapshot path relative to the content root.
const DefaultSnapshot = "podcast-episodes.json"

// Episode is one entry of the snapshot.
type Episode struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Description string    `json:"description,omitempty"`
	Published   time.Time `json:"published"`
}

// Source reads episodes from the snapshot file. Any failure falls back to
// the placeholder list; the page never shows a feed error.
type Source struct {
	store  storage.Provider
	path   string
	logger *slog.Logger
}

// NewSource creates a Source reading path through store. A nil store
// always serves placeholders.
func NewSource(store storage.Provider, path string, logger *slog.Logger) *Source {
	if path == "" {
		path = DefaultSnapshot
	}
	return &Source{store: store, path: path, logger: logger}
}

// Episodes returns at most limit episodes, newest first. limit <= 0 means
// all of them.
func (s *Source) Episodes(limit int) []Episode {
	eps, err := s.load()
	if err != nil {
		s.logger.Debug("podcast snapshot unavailable, using placeholders",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		eps = Placeholder()
	}
	return truncate(eps, limit)
}

func (s *Source) load() ([]Episode, error) {
	if s.store == nil {
		return nil, fmt.Errorf("feed: no snapshot store")
	}
	raw, err := s.store.Read(s.path)
	if err != nil {
		return nil, err
	}
	var eps []Episode
	if err := json.Unmarshal(raw, &eps); err != nil {
		return nil, fmt.Errorf("feed: decode snapshot: %w", err)
	}
	if len(eps) == 0 {
		return nil, fmt.Errorf("feed: empty snapshot")
	}
	sortNewest(eps)
	return eps, nil
}

// WriteSnapshot stores eps as the snapshot at path.
func WriteSnapshot(store storage.Provider, path string, eps []Episode) error {
	if path == "" {
		path = DefaultSnapshot
	}
	sortNewest(eps)
	raw, err := json.MarshalIndent(eps, "", "  ")
	if err != nil {
		return fmt.Errorf("feed: encode snapshot: %w", err)
	}
	return store.Write(path, append(raw, '\n'))
}

// Placeholder is the list shown when no snapshot can be read.
func Placeholder() []Episode {
	return []Episode{
		{
			ID:          "placeholder-3",
			Title:       "Automating the boring half of operations",
			URL:         "https://www.youtube.com/@starford",
			Description: "Where small teams lose hours every week, and which of them an agent can take back.",
		},
		{
			ID:          "placeholder-2",
			Title:       "From prototype to production in two weeks",
			URL:         "https://www.youtube.com/@starford",
			Description: "What a speedrun engagement looks like from kickoff to handover.",
		},
		{
			ID:          "placeholder-1",
			Title:       "Marginal gains, compounded",
			URL:         "https://www.youtube.com/@starford",
			Description: "Measuring one percent improvements and why they add up.",
		},
	}
}

func sortNewest(eps []Episode) {
	sort.SliceStable(eps, func(i, j int) bool {
		return eps[i].Published.After(eps[j].Published)
	})
}

func truncate(eps []Episode, limit int) []Episode {
	if limit > 0 && len(eps) > limit {
		return eps[:limit]
	}
	return eps
}
