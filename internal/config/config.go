package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/vidcash/internal/router"
	"github.com/jask/vidcash/internal/theme"
)

// Config holds application configuration.
type Config struct {
	UI        UIConfig        `mapstructure:"ui"`
	Wizard    WizardConfig    `mapstructure:"wizard"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Referral  ReferralConfig  `mapstructure:"referral"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Prefs     PrefsConfig     `mapstructure:"prefs"`
	Log       LogConfig       `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme     string `mapstructure:"theme"`
	StartPage string `mapstructure:"start_page"`
	Currency  string `mapstructure:"currency"`
	Locale    string `mapstructure:"locale"`
}

// WizardConfig tunes the onboarding flow.
type WizardConfig struct {
	SubmitDelay time.Duration `mapstructure:"submit_delay"`
}

// DashboardConfig tunes the withdrawal form.
type DashboardConfig struct {
	WithdrawDelay time.Duration `mapstructure:"withdraw_delay"`
	MinWithdrawal int64         `mapstructure:"min_withdrawal"`
}

// ReferralConfig holds the public site used in referral links.
type ReferralConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// CatalogConfig points at an optional package catalog override.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// PrefsConfig is where UI preferences (the theme) are remembered.
type PrefsConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds file logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// Flag names bound by Load when present in the flag set.
const (
	FlagPage  = "page"
	FlagTheme = "theme"
)

func home() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

// Load reads configuration from file, env and flags, in increasing order of
// precedence. Env var overrides use prefix VIDCASH_. path overrides
// $VIDCASH_CONFIG; a missing file is not an error.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	h := home()

	// default values
	v.SetDefault("ui.theme", string(theme.Light))
	v.SetDefault("ui.start_page", string(router.Landing))
	v.SetDefault("ui.currency", "PKR")
	v.SetDefault("ui.locale", "en")
	v.SetDefault("wizard.submit_delay", "2s")
	v.SetDefault("dashboard.withdraw_delay", "2s")
	v.SetDefault("dashboard.min_withdrawal", 100)
	v.SetDefault("referral.base_url", "https://vidcash.com")
	v.SetDefault("catalog.path", "")
	v.SetDefault("prefs.path", filepath.Join(h, ".config", "vidcash", "prefs.json"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(h, ".local", "state", "vidcash", "vidcash.log"))

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("VIDCASH_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(h, ".config", "vidcash"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VIDCASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		if f := flags.Lookup(FlagPage); f != nil {
			if err := v.BindPFlag("ui.start_page", f); err != nil {
				return Config{}, fmt.Errorf("bind --%s: %w", FlagPage, err)
			}
		}
		if f := flags.Lookup(FlagTheme); f != nil {
			if err := v.BindPFlag("ui.theme", f); err != nil {
				return Config{}, fmt.Errorf("bind --%s: %w", FlagTheme, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the UI cannot run with.
func (c Config) Validate() error {
	if _, err := theme.Parse(c.UI.Theme); err != nil {
		return fmt.Errorf("ui.theme: %w", err)
	}
	if _, err := router.ParsePage(c.UI.StartPage); err != nil {
		return fmt.Errorf("ui.start_page: %w", err)
	}
	if c.Wizard.SubmitDelay < 0 {
		return fmt.Errorf("wizard.submit_delay must not be negative")
	}
	if c.Dashboard.WithdrawDelay < 0 {
		return fmt.Errorf("dashboard.withdraw_delay must not be negative")
	}
	if c.Dashboard.MinWithdrawal <= 0 {
		return fmt.Errorf("dashboard.min_withdrawal must be positive")
	}
	return nil
}

// StartPage returns the validated start page.
func (c Config) StartPage() router.Page {
	p, err := router.ParsePage(c.UI.StartPage)
	if err != nil {
		return router.Landing
	}
	return p
}

// Theme returns the validated default theme.
func (c Config) Theme() theme.Theme {
	t, err := theme.Parse(c.UI.Theme)
	if err != nil {
		return theme.Light
	}
	return t
}
