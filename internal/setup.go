package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/sitekit/internal/components"
	"github.com/starford/sitekit/internal/content"
	"github.com/starford/sitekit/internal/feed"
	"github.com/starford/sitekit/internal/section"
	"github.com/starford/sitekit/internal/sequencer"
	"github.com/starford/sitekit/internal/site"
	"github.com/starford/sitekit/internal/storage"
)

func newApplication(opts []Option) (*application, error) {
	app := &application{logOutput: os.Stdout}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	return app, nil
}

func (a *application) logger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(a.logOutput, &slog.HandlerOptions{
		Level: a.config.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// siteStack is the content side shared by every command.
type siteStack struct {
	store    *storage.FS
	loader   *site.Loader
	catalog  *site.Catalog
	scripts  *sequencer.Library
	episodes *feed.Source
	registry *section.Registry
}

func buildSiteStack(cfg *Config, logger *slog.Logger) (*siteStack, error) {
	if err := os.MkdirAll(cfg.Site.ContentDir, 0o755); err != nil {
		return nil, fmt.Errorf("create content dir: %w", err)
	}
	store, err := storage.NewFS(cfg.Site.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	loader := site.NewLoader(store, content.Builtin(), logger)
	docs, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load sites: %w", err)
	}
	if _, ok := docs[cfg.Site.Default]; !ok {
		return nil, fmt.Errorf("default site %q not found", cfg.Site.Default)
	}

	scripts := sequencer.Builtin()
	episodes := feed.NewSource(store, cfg.Feed.Snapshot, logger)
	return &siteStack{
		store:    store,
		loader:   loader,
		catalog:  site.NewCatalog(cfg.Site.Default, docs),
		scripts:  scripts,
		episodes: episodes,
		registry: components.Registry(components.Deps{Episodes: episodes, Scripts: scripts}),
	}, nil
}

func (s *siteStack) watch(ctx context.Context, logger *slog.Logger, published func(changed, issues []string)) error {
	return site.Watch(ctx, s.store.Root(), s.loader, s.catalog, logger, func(changed []string) {
		published(changed, s.lint(logger))
	})
}

// lint logs every enabled entry without a registered component and
// returns the findings as "slug: issue".
func (s *siteStack) lint(logger *slog.Logger) []string {
	var out []string
	for _, slug := range s.catalog.Slugs() {
		doc, err := s.catalog.Get(slug)
		if err != nil {
			continue
		}
		for _, issue := range section.Lint(doc, s.registry) {
			logger.Warn("site lint", slog.String("slug", slug), slog.String("issue", issue))
			out = append(out, slug+": "+issue)
		}
	}
	return out
}
