// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/sitekit/internal/api"
	"github.com/starford/sitekit/internal/contact"
	"github.com/starford/sitekit/internal/newsletter"
	"github.com/starford/sitekit/internal/section"
	"github.com/starford/sitekit/internal/sse"
	"github.com/starford/sitekit/internal/store"
	"github.com/starford/sitekit/internal/web"
)

// Run starts the web server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config
	logger := app.logger()

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("mode", cfg.App.Mode),
		slog.String("content_dir", cfg.Site.ContentDir),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("newsletter_provider", cfg.Newsletter.Provider),
		slog.String("log_level", cfg.App.LogLevel.String()))

	stack, err := buildSiteStack(cfg, logger)
	if err != nil {
		return err
	}
	stack.lint(logger)
	if !cfg.Auth.AuthEnabled() && !cfg.App.Development() {
		logger.Warn("Admin API disabled: set auth.mode=token to enable it outside development")
	}

	mode, err := section.ParseMode(cfg.App.Mode)
	if err != nil {
		return err
	}
	renderer := section.NewRenderer(stack.registry, mode, logger)

	db, err := store.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer db.Close()

	var provider newsletter.Provider
	var subscribers api.SubscriberLister
	switch cfg.Newsletter.Provider {
	case ProviderBeehiiv:
		provider = newsletter.NewBeehiiv(newsletter.BeehiivOptions{
			BaseURL:       cfg.Newsletter.BaseURL,
			APIKey:        cfg.Newsletter.APIKey,
			PublicationID: cfg.Newsletter.PublicationID,
			UTMSource:     cfg.Newsletter.UTMSource,
			Timeout:       cfg.Newsletter.Timeout,
		})
	default:
		provider = newsletter.NewLocal(db, cfg.Newsletter.UTMSource)
		subscribers = db
	}

	// SSE broker for live reload.
	broker := sse.NewBroker(time.Second)
	defer broker.Close()

	liveReload := ""
	if cfg.App.Development() {
		liveReload = "/api/events"
	}

	apiRouter := api.NewRouter(api.NewHandler(api.Deps{
		Catalog:     stack.catalog,
		Renderer:    renderer,
		Newsletter:  newsletter.NewService(provider),
		Contact:     contact.NewService(db),
		Subscribers: subscribers,
	}), api.AdminAccess{
		AuthEnabled: cfg.Auth.AuthEnabled(),
		Token:       cfg.Auth.Token,
		AllowOpen:   cfg.App.Development(),
	}, broker)

	webRouter := web.NewRouter(web.NewHandler(web.Options{
		Catalog:    stack.catalog,
		Renderer:   renderer,
		Scripts:    stack.scripts,
		Logger:     logger,
		LiveReload: liveReload,
	}))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints.
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, _, err := stack.catalog.Default(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/api", apiRouter)
	r.Mount("/", webRouter)

	// Streams end when shutdown begins instead of holding it open.
	streamCtx, stopStreams := context.WithCancel(ctx)
	defer stopStreams()
	httpServer := &http.Server{
		Addr:        cfg.App.HTTP.Address(),
		Handler:     r,
		BaseContext: func(net.Listener) context.Context { return streamCtx },
	}
	httpServer.RegisterOnShutdown(stopStreams)
	httpServer.RegisterOnShutdown(broker.Close)

	g, gCtx := errgroup.WithContext(ctx)

	// Reload documents on change.
	if cfg.Site.Watch || cfg.App.Development() {
		g.Go(func() error {
			err := stack.watch(gCtx, logger, reloadPublisher(broker, cfg.App.Development()))
			if err != nil {
				logger.Error("watcher failed", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return errShutdown
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// reloadPublisher announces catalog reloads on the broker. In development
// it also forwards lint findings to the page as site.lint events.
func reloadPublisher(broker *sse.Broker, development bool) func(changed, issues []string) {
	return func(changed, issues []string) {
		broker.PublishReload(changed)
		if development && len(issues) > 0 {
			broker.Publish(sse.Event{Type: "site.lint", Data: map[string]any{"issues": issues}})
		}
	}
}

// errShutdown cancels the group so the watcher stops with the server.
var errShutdown = errors.New("shutdown")
