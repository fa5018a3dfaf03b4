package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
	apperrors "github.com/orgball2608/linkedin-posts-exporter/pkg/errors"
)

const (
	SourceAPI     = "api"
	SourceBrowser = "browser"
)

type Config struct {
	App struct {
		Env        string `env:"APP_ENV" env-default:"development"`
		SentryDSN  string `env:"SENTRY_DSN"`
		Source     string `env:"EXPORT_SOURCE" env-default:"api"`
		OutputPath string `env:"EXPORT_OUTPUT_PATH" env-default:"data/posts.json"`
		Cron       string `env:"EXPORT_CRON"`
	}
	LinkedIn struct {
		OrgURN       string `env:"LINKEDIN_ORG_URN"`
		AccessToken  string `env:"LINKEDIN_ACCESS_TOKEN"`
		ClientID     string `env:"LINKEDIN_CLIENT_ID"`
		ClientSecret string `env:"LINKEDIN_CLIENT_SECRET"`
		TokenURL     string `env:"LINKEDIN_TOKEN_URL" env-default:"https://www.linkedin.com/oauth/v2/accessToken"`
		APIBaseURL   string `env:"LINKEDIN_API_BASE_URL" env-default:"https://api.linkedin.com"`
		Version      string `env:"LINKEDIN_VERSION" env-default:"202405"`
		PageSize     int    `env:"LINKEDIN_PAGE_SIZE" env-default:"50"`
	}
	Browser struct {
		ProfileURL    string `env:"BROWSER_PROFILE_URL"`
		MaxPosts      int    `env:"BROWSER_MAX_POSTS" env-default:"20"`
		ScrollSeconds int    `env:"BROWSER_SCROLL_SECONDS" env-default:"15"`
		CookiesFile   string `env:"BROWSER_COOKIES_FILE"`
		Headless      bool   `env:"BROWSER_HEADLESS" env-default:"true"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Telegram struct {
		Token  string `env:"TELEGRAM_TOKEN"`
		ChatID int64  `env:"TELEGRAM_CHAT_ID"`
	}
}

var (
	once    sync.Once
	cfg     *Config
	readErr error
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if _, statErr := os.Stat(".env"); statErr == nil {
			readErr = cleanenv.ReadConfig(".env", cfg)
		} else {
			readErr = cleanenv.ReadEnv(cfg)
		}
		if readErr != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			readErr = fmt.Errorf("failed to read configuration: %w\n%s", readErr, help)
		}
	})
	return cfg, readErr
}

// Validate checks that the selected source has everything it needs. It runs
// before any network activity so a misconfigured job fails fast.
func (c *Config) Validate() error {
	switch c.App.Source {
	case SourceAPI:
		if c.LinkedIn.OrgURN == "" {
			return apperrors.Wrap(apperrors.ErrMissingConfig, "LINKEDIN_ORG_URN is required for the api source")
		}
		if c.LinkedIn.AccessToken == "" && (c.LinkedIn.ClientID == "" || c.LinkedIn.ClientSecret == "") {
			return apperrors.Wrap(apperrors.ErrMissingConfig,
				"either LINKEDIN_ACCESS_TOKEN or LINKEDIN_CLIENT_ID and LINKEDIN_CLIENT_SECRET are required")
		}
	case SourceBrowser:
		if c.Browser.ProfileURL == "" {
			return apperrors.Wrap(apperrors.ErrMissingConfig, "BROWSER_PROFILE_URL is required for the browser source")
		}
	default:
		return apperrors.Wrap(apperrors.ErrMissingConfig, fmt.Sprintf("unknown EXPORT_SOURCE %q", c.App.Source))
	}
	return nil
}

// ArchiveEnabled reports whether runs should also be recorded in Postgres.
func (c *Config) ArchiveEnabled() bool {
	return c.Postgres.Host != ""
}

// GetDSN returns the Postgres connection string for the archive database.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.Name, c.Postgres.SslMode)
}
