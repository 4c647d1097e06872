package site

import (
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/starford/sitekit/internal/apperr"
	"github.com/starford/sitekit/internal/storage"
)

// Catalog holds the site documents by slug. Documents are never mutated;
// a reload swaps the whole set.
type Catalog struct {
	defaultSlug string
	docs        atomic.Pointer[map[string]*Document]
}

// NewCatalog creates a catalog over docs. defaultSlug selects the variant
// served at the site root.
func NewCatalog(defaultSlug string, docs map[string]*Document) *Catalog {
	c := &Catalog{defaultSlug: defaultSlug}
	c.Replace(docs)
	return c
}

// Replace swaps in a new document set.
func (c *Catalog) Replace(docs map[string]*Document) {
	cp := make(map[string]*Document, len(docs))
	for k, v := range docs {
		cp[k] = v
	}
	c.docs.Store(&cp)
}

// Get returns the document for slug.
func (c *Catalog) Get(slug string) (*Document, error) {
	doc, ok := (*c.docs.Load())[slug]
	if !ok {
		return nil, fmt.Errorf("site %q: %w", slug, apperr.ErrNotFound)
	}
	return doc, nil
}

// Default returns the default document and its slug.
func (c *Catalog) Default() (*Document, string, error) {
	doc, err := c.Get(c.defaultSlug)
	return doc, c.defaultSlug, err
}

// Slugs returns every slug in lexical order.
func (c *Catalog) Slugs() []string {
	docs := *c.docs.Load()
	out := make([]string, 0, len(docs))
	for k := range docs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Loader merges the built-in documents with YAML overrides from the top
// level of a content directory. A file named <slug>.yaml replaces the
// built-in of that slug; when both <slug>.yaml and <slug>.yml exist the
// first in lexical order wins.
type Loader struct {
	store   storage.Provider
	builtin map[string]*Document
	logger  *slog.Logger
}

// NewLoader creates a loader. store may be nil, in which case only the
// built-in documents are served.
func NewLoader(store storage.Provider, builtin map[string]*Document, logger *slog.Logger) *Loader {
	return &Loader{store: store, builtin: builtin, logger: logger}
}

// Load returns the merged document set. Invalid files are logged and
// skipped so a bad edit never takes the site down.
func (l *Loader) Load() (map[string]*Document, error) {
	out := make(map[string]*Document, len(l.builtin))
	for k, v := range l.builtin {
		out[k] = v
	}
	if l.store == nil {
		return out, nil
	}

	metas, err := l.store.List("", ".yaml", ".yml")
	if err != nil {
		return nil, fmt.Errorf("site: list content: %w", err)
	}
	seen := make(map[string]string, len(metas))
	for _, m := range metas {
		if strings.Contains(m.Path, "/") {
			l.logger.Warn("site: nested document ignored", slog.String("path", m.Path))
			continue
		}
		slug := SlugFor(m.Path)
		if prev, ok := seen[slug]; ok {
			l.logger.Warn("site: duplicate slug ignored",
				slog.String("slug", slug), slog.String("path", m.Path), slog.String("kept", prev))
			continue
		}
		seen[slug] = m.Path

		data, err := l.store.Read(m.Path)
		if err != nil {
			l.logger.Warn("site: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		doc, err := Decode(data)
		if err != nil {
			l.logger.Warn("site: invalid document", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		out[slug] = doc
		l.logger.Debug("site: loaded document", slog.String("slug", slug), slog.String("checksum", m.Checksum))
	}
	return out, nil
}

// SlugFor derives a document slug from its relative file path.
func SlugFor(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
}
