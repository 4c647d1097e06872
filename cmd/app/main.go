package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/sitekit/internal"
	pkgconfig "github.com/starford/sitekit/pkg/config"
)

func loadOptions(cmd *cli.Command) ([]internal.Option, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if mode := cmd.String("mode"); mode != "" {
		cfg.App.Mode = mode
		if err := cfg.App.Validate(); err != nil {
			return nil, fmt.Errorf("invalid mode: %w", err)
		}
	}
	return []internal.Option{internal.WithConfig(cfg)}, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func check(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	opts = append(opts, internal.WithLogOutput(os.Stderr))
	return internal.Check(ctx, os.Stdout, opts...)
}

func scrapeFeed(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	return internal.Feed(ctx, cmd.String("source"), opts...)
}

func subscribe(ctx context.Context, cmd *cli.Command) error {
	email := cmd.Args().First()
	if email == "" {
		return fmt.Errorf("usage: sitekit subscribe [--url URL] EMAIL")
	}
	return internal.Subscribe(ctx, os.Stdout, cmd.String("url"), email)
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	opts = append(opts, internal.WithLogOutput(os.Stderr))
	return internal.ServeMCP(ctx, opts...)
}

func main() {
	cmd := &cli.Command{
		Name:   "sitekit",
		Usage:  "Consultancy marketing sites rendered from section documents",
		Action: serve,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "mode",
				Usage:   "Override app.mode (development or production)",
				Sources: cli.EnvVars("APP_MODE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the sites over HTTP (default)",
				Action: serve,
			},
			{
				Name:   "check",
				Usage:  "Lint site documents against the section registry",
				Action: check,
			},
			{
				Name:   "feed",
				Usage:  "Scrape the podcast feed into the episode snapshot",
				Action: scrapeFeed,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "source",
						Usage: "Atom feed URL, overrides feed.source_url",
					},
				},
			},
			{
				Name:      "subscribe",
				Usage:     "Subscribe an address through a running site",
				ArgsUsage: "EMAIL",
				Action:    subscribe,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Usage: "Base URL of the running site",
						Value: "http://localhost:8080",
					},
				},
			},
			{
				Name:   "mcp",
				Usage:  "Serve the content tools over MCP on stdio",
				Action: serveMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
