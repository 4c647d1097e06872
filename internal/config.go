package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/starford/sitekit/internal/content"
	"github.com/starford/sitekit/internal/feed"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Run modes.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Newsletter providers.
const (
	ProviderLocal   = "local"
	ProviderBeehiiv = "beehiiv"
)

// Config represents the application configuration.
type Config struct {
	App        ApplicationConfig `yaml:"app"`
	Site       SiteConfig        `yaml:"site"`
	Newsletter NewsletterConfig  `yaml:"newsletter"`
	SQLite     SQLiteConfig      `yaml:"sqlite"`
	Feed       FeedConfig        `yaml:"feed"`
	Auth       AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Site.Validate(); err != nil {
		return fmt.Errorf("site: %w", err)
	}
	if err := c.Newsletter.Validate(); err != nil {
		return fmt.Errorf("newsletter: %w", err)
	}
	if err := c.SQLite.Validate(); err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	if err := c.Feed.Validate(); err != nil {
		return fmt.Errorf("feed: %w", err)
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	// Mode is "development" (diagnostics, live reload) or "production".
	Mode string     `yaml:"mode"`
	HTTP HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = ModeProduction
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.In(ModeDevelopment, ModeProduction)),
	); err != nil {
		return err
	}
	return c.HTTP.Validate()
}

// Development reports whether the app runs in development mode.
func (c *ApplicationConfig) Development() bool {
	return c.Mode == ModeDevelopment
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// SiteConfig holds the content directory and site selection.
type SiteConfig struct {
	// ContentDir holds YAML document overrides and the podcast snapshot.
	ContentDir string `yaml:"content_dir"`
	// Default is the slug served at /.
	Default string `yaml:"default"`
	// Watch reloads documents on change. Always on in development.
	Watch bool `yaml:"watch"`
}

// Validate validates the site configuration.
func (c *SiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.Default, validation.Required),
	)
}

// NewsletterConfig selects and configures the subscription provider.
type NewsletterConfig struct {
	Provider      string        `yaml:"provider"`
	APIKey        string        `yaml:"api_key"`
	PublicationID string        `yaml:"publication_id"`
	BaseURL       string        `yaml:"base_url"`
	UTMSource     string        `yaml:"utm_source"`
	Timeout       time.Duration `yaml:"timeout"`
}

// Validate validates the newsletter configuration.
func (c *NewsletterConfig) Validate() error {
	beehiiv := c.Provider == ProviderBeehiiv
	return validation.ValidateStruct(c,
		validation.Field(&c.Provider, validation.Required, validation.In(ProviderLocal, ProviderBeehiiv)),
		validation.Field(&c.APIKey, validation.When(beehiiv, validation.Required)),
		validation.Field(&c.PublicationID, validation.When(beehiiv, validation.Required)),
		validation.Field(&c.BaseURL, is.URL),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// FeedConfig configures the podcast snapshot.
type FeedConfig struct {
	// Snapshot is relative to the content directory.
	Snapshot string `yaml:"snapshot"`
	// SourceURL is the Atom feed scraped by the feed command.
	SourceURL string `yaml:"source_url"`
	// Limit caps the number of episodes written to the snapshot.
	Limit   int           `yaml:"limit"`
	Timeout time.Duration `yaml:"timeout"`
}

// Validate validates the feed configuration.
func (c *FeedConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Snapshot, validation.Required),
		validation.Field(&c.SourceURL, is.URL),
		validation.Field(&c.Limit, validation.Min(0)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// AuthConfig holds authentication configuration for the admin API.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local dev.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			Mode:     ModeProduction,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Site: SiteConfig{
			ContentDir: "./content",
			Default:    content.LevelUp,
		},
		Newsletter: NewsletterConfig{
			Provider:  ProviderLocal,
			UTMSource: "website",
			Timeout:   10 * time.Second,
		},
		SQLite: SQLiteConfig{
			Path: "./sitekit.db",
		},
		Feed: FeedConfig{
			Snapshot: feed.DefaultSnapshot,
			Limit:    12,
			Timeout:  30 * time.Second,
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
