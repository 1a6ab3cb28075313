package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cms-social/internal/features"
	"github.com/goliatone/go-cms-social/internal/options"
	"github.com/goliatone/go-cms-social/internal/validators"
)

var (
	ErrSiteScreenNameInvalid = errors.New("social config: site screen name is invalid")
	ErrSiteUserIDInvalid     = errors.New("social config: site user id must be numeric")
	ErrFeatureUnknown        = errors.New("social config: unknown feature")
	ErrWidgetThemeInvalid    = errors.New("social config: widget theme must be light or dark")
	ErrWidgetColorInvalid    = errors.New("social config: widget color must be a hex color")
	ErrCacheTTLInvalid       = errors.New("social config: cache ttl must be zero or positive")
	// ErrShortcodesFeatureRequired indicates WordPress syntax was requested while shortcodes are off.
	ErrShortcodesFeatureRequired = errors.New("social config: shortcodes must be enabled to configure WordPress syntax")
	ErrLoggingProviderRequired   = errors.New("social config: logging provider is required")
	ErrLoggingProviderUnknown    = errors.New("social config: logging provider is invalid")
	ErrLoggingLevelInvalid       = errors.New("social config: logging level is invalid")
	ErrLoggingFormatInvalid      = errors.New("social config: logging format is invalid")
)

// Config aggregates site identity, feature toggles, and adapter settings for
// the social module.
type Config struct {
	Site       SiteConfig       `yaml:"site"`
	Features   FeaturesConfig   `yaml:"features"`
	Shortcodes ShortcodeConfig  `yaml:"shortcodes"`
	Widgets    WidgetsConfig    `yaml:"widgets"`
	Cache      CacheConfig      `yaml:"cache"`
	Logging    LoggingConfig    `yaml:"logging"`
	Validation ValidationConfig `yaml:"validation"`
}

// SiteConfig identifies the site account used as twitter:site, the default
// follow target, and the share "via".
type SiteConfig struct {
	ScreenName string `yaml:"screen_name"`
	UserID     string `yaml:"user_id"`
	Lang       string `yaml:"lang"`
}

// FeaturesConfig lists the features to turn on. An empty Enabled list turns
// on every built-in feature; Disabled is applied afterwards.
type FeaturesConfig struct {
	Enabled  []string `yaml:"enabled"`
	Disabled []string `yaml:"disabled"`
}

// ShortcodeConfig controls the shortcode engine.
type ShortcodeConfig struct {
	Enabled         bool     `yaml:"enabled"`
	BuiltIns        []string `yaml:"built_ins"`
	EnableWordPress bool     `yaml:"enable_wordpress"`
}

// WidgetsConfig carries the site wide widget appearance published as meta tags.
type WidgetsConfig struct {
	Theme       string `yaml:"theme"`
	LinkColor   string `yaml:"link_color"`
	BorderColor string `yaml:"border_color"`
	CSP         bool   `yaml:"csp"`
	DoNotTrack  bool   `yaml:"dnt"`
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"`
	DefaultTTL      time.Duration `yaml:"default_ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Enabled   bool     `yaml:"enabled"`
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// ValidationConfig relaxes input checks for content from trusted authors.
type ValidationConfig struct {
	// TrustedInput skips URL scheme and handle checks on share intents.
	TrustedInput bool `yaml:"trusted_input"`
}

// DefaultConfig returns defaults suitable for rendering without a config file.
func DefaultConfig() Config {
	return Config{
		Shortcodes: ShortcodeConfig{
			Enabled: true,
		},
		Cache: CacheConfig{
			Enabled:         true,
			DefaultTTL:      time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Load reads a YAML file over DefaultConfig. Keys missing from the file keep
// their defaults. The result is not validated.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("social config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("social config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if err := validation.Validate(cfg.Site.ScreenName, validation.By(screenName)); err != nil {
		return fmt.Errorf("%w: %q", ErrSiteScreenNameInvalid, cfg.Site.ScreenName)
	}
	if err := validation.Validate(cfg.Site.UserID, validation.By(numericID)); err != nil {
		return fmt.Errorf("%w: %q", ErrSiteUserIDInvalid, cfg.Site.UserID)
	}

	known := make([]any, 0)
	for _, def := range features.DefaultDefinitions() {
		known = append(known, def.Name)
	}
	for _, name := range append(append([]string{}, cfg.Features.Enabled...), cfg.Features.Disabled...) {
		if err := validation.Validate(normalize(name), validation.In(known...)); err != nil {
			return fmt.Errorf("%w: %s", ErrFeatureUnknown, name)
		}
	}

	if cfg.Shortcodes.EnableWordPress && !cfg.Shortcodes.Enabled {
		return ErrShortcodesFeatureRequired
	}

	if theme := strings.TrimSpace(cfg.Widgets.Theme); theme != "" {
		if _, ok := options.Theme(theme); !ok {
			return fmt.Errorf("%w: %s", ErrWidgetThemeInvalid, theme)
		}
	}
	for _, color := range []string{cfg.Widgets.LinkColor, cfg.Widgets.BorderColor} {
		if color = strings.TrimSpace(color); color == "" {
			continue
		}
		if _, ok := options.HexColor(color); !ok {
			return fmt.Errorf("%w: %s", ErrWidgetColorInvalid, color)
		}
	}

	if err := validation.Validate(int64(cfg.Cache.DefaultTTL), validation.Min(int64(0))); err != nil {
		return fmt.Errorf("%w: default_ttl", ErrCacheTTLInvalid)
	}
	if err := validation.Validate(int64(cfg.Cache.CleanupInterval), validation.Min(int64(0))); err != nil {
		return fmt.Errorf("%w: cleanup_interval", ErrCacheTTLInvalid)
	}

	if cfg.Logging.Enabled {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if err := validation.Validate(provider, validation.In("console", "gologger")); err != nil {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := normalize(cfg.Logging.Level); level != "" {
			if err := validation.Validate(level, validation.In("trace", "debug", "info", "warn", "warning", "error", "fatal")); err != nil {
				return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
			}
		}
		if provider == "gologger" {
			if format := normalize(cfg.Logging.Format); format != "" {
				if err := validation.Validate(format, validation.In("json", "console", "pretty")); err != nil {
					return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
				}
			}
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func screenName(value any) error {
	raw, _ := value.(string)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if validators.Handle.Sanitize(raw) == "" {
		return ErrSiteScreenNameInvalid
	}
	return nil
}

func numericID(value any) error {
	raw, _ := value.(string)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if validators.NumericID.Sanitize(raw) == "" {
		return ErrSiteUserIDInvalid
	}
	return nil
}
