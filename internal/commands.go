package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/starford/sitekit/internal/feed"
	"github.com/starford/sitekit/internal/mcpserver"
	"github.com/starford/sitekit/internal/newsletter"
	"github.com/starford/sitekit/internal/section"
	"github.com/starford/sitekit/internal/site"
	"github.com/starford/sitekit/internal/storage"
)

// Check lints every site document and writes a report to out. It fails when
// any enabled entry has no component or a demo references a missing script.
func Check(ctx context.Context, out io.Writer, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	logger := app.logger()
	stack, err := buildSiteStack(app.config, logger)
	if err != nil {
		return err
	}

	problems := 0
	for _, slug := range stack.catalog.Slugs() {
		doc, err := stack.catalog.Get(slug)
		if err != nil {
			continue
		}
		issues := section.Lint(doc, stack.registry)
		for i, e := range doc.Sections {
			p, ok := e.Props.(site.DemoProps)
			if !ok || !e.Enabled {
				continue
			}
			if _, found := stack.scripts.Lookup(p.Script); !found {
				issues = append(issues, fmt.Sprintf("sections[%d]: unknown demo script %q", i, p.Script))
			}
		}
		if len(issues) == 0 {
			fmt.Fprintf(out, "ok    %s (%d of %d sections enabled)\n", slug, len(doc.Enabled()), len(doc.Sections))
			continue
		}
		for _, issue := range issues {
			fmt.Fprintf(out, "FAIL  %s: %s\n", slug, issue)
		}
		problems += len(issues)
	}
	if problems > 0 {
		return fmt.Errorf("check: %d problem(s) found", problems)
	}
	return nil
}

// Feed scrapes the configured source feed and writes the podcast snapshot.
// A non-empty sourceURL overrides the configured one.
func Feed(ctx context.Context, sourceURL string, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config
	logger := app.logger()

	if sourceURL == "" {
		sourceURL = cfg.Feed.SourceURL
	}
	if sourceURL == "" {
		return fmt.Errorf("feed: no source url configured")
	}

	if err := os.MkdirAll(cfg.Site.ContentDir, 0o755); err != nil {
		return fmt.Errorf("create content dir: %w", err)
	}
	store, err := storage.NewFS(cfg.Site.ContentDir)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	eps, err := feed.Scrape(ctx, &http.Client{Timeout: cfg.Feed.Timeout}, sourceURL)
	if err != nil {
		return err
	}
	if cfg.Feed.Limit > 0 && len(eps) > cfg.Feed.Limit {
		eps = eps[:cfg.Feed.Limit]
	}
	if err := feed.WriteSnapshot(store, cfg.Feed.Snapshot, eps); err != nil {
		return err
	}

	logger.Info("Podcast snapshot written",
		slog.String("path", cfg.Feed.Snapshot),
		slog.Int("episodes", len(eps)))
	return nil
}

// Subscribe submits email through the newsletter form of the site at
// baseURL and prints the form's message to out.
func Subscribe(ctx context.Context, out io.Writer, baseURL, email string) error {
	form := newsletter.NewForm(newsletter.NewClient(baseURL, nil))
	form.SetEmail(email)
	err := form.Submit(ctx)
	fmt.Fprintln(out, form.Message())
	return err
}

// ServeMCP runs the MCP server on stdio until the client disconnects.
func ServeMCP(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	logger := app.logger()
	stack, err := buildSiteStack(app.config, logger)
	if err != nil {
		return err
	}

	srv := mcpserver.New(mcpserver.Deps{
		Catalog:  stack.catalog,
		Registry: stack.registry,
		Scripts:  stack.scripts,
		Store:    stack.store,
	})
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err := stack.watch(ctx, logger, func(_, _ []string) {}); err != nil {
			logger.Warn("watcher failed", slog.String("error", err.Error()))
		}
	}()

	logger.Info("MCP server starting on stdio")
	return srv.ServeStdio()
}
