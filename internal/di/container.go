package di

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/cache"
	"github.com/goliatone/go-cms-social/internal/features"
	"github.com/goliatone/go-cms-social/internal/logging"
	"github.com/goliatone/go-cms-social/internal/logging/console"
	"github.com/goliatone/go-cms-social/internal/logging/gologger"
	"github.com/goliatone/go-cms-social/internal/meta"
	"github.com/goliatone/go-cms-social/internal/runtimeconfig"
	"github.com/goliatone/go-cms-social/internal/shortcode"
	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

// Container wires the feature registry, shortcode engine, and meta builder
// from a validated configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logger         interfaces.Logger
	cache          interfaces.CacheProvider
	metrics        interfaces.ShortcodeMetrics
	stats          *shortcode.MemoryMetrics
	sanitizer      interfaces.ShortcodeSanitizer

	site     *accounts.Account
	features *features.Registry

	shortcodeRegistry *shortcode.Registry
	shortcodeRenderer *shortcode.Renderer
	shortcodeSvc      interfaces.ShortcodeService

	metaBuilder *meta.Builder
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithCache overrides the in-memory render cache.
func WithCache(provider interfaces.CacheProvider) Option {
	return func(c *Container) {
		c.cache = provider
	}
}

// WithShortcodeMetrics replaces the in-memory counters with metrics.
func WithShortcodeMetrics(metrics interfaces.ShortcodeMetrics) Option {
	return func(c *Container) {
		if metrics != nil {
			c.metrics = metrics
			c.stats = nil
		}
	}
}

// WithSanitizer overrides the default HTML sanitizer.
func WithSanitizer(sanitizer interfaces.ShortcodeSanitizer) Option {
	return func(c *Container) {
		if sanitizer != nil {
			c.sanitizer = sanitizer
		}
	}
}

// WithShortcodeService replaces the shortcode service entirely.
func WithShortcodeService(svc interfaces.ShortcodeService) Option {
	return func(c *Container) {
		c.shortcodeSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stats := shortcode.NewMemoryMetrics()
	c := &Container{
		Config:    cfg,
		metrics:   stats,
		stats:     stats,
		sanitizer: shortcode.NewSanitizer(),
		site:      accounts.New(cfg.Site.ScreenName, cfg.Site.UserID),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCache()
	if err := c.configureFeatures(); err != nil {
		return nil, err
	}
	if err := c.configureShortcodes(); err != nil {
		return nil, err
	}

	c.metaBuilder = meta.NewBuilder(
		meta.WithSite(c.site),
		meta.WithLogger(logging.MetaLogger(c.loggerProvider)),
	)

	c.logger.Debug("container.configured",
		"features", c.features.Enabled(),
		"shortcodes", c.Shortcodes(),
		"cache", c.cache != nil,
	)
	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider == nil && c.Config.Logging.Enabled {
		logCfg := c.Config.Logging
		switch strings.ToLower(strings.TrimSpace(logCfg.Provider)) {
		case "gologger":
			provider, err := gologger.NewProvider(gologger.Config{
				Level:     logCfg.Level,
				Format:    logCfg.Format,
				AddSource: logCfg.AddSource,
				Focus:     logCfg.Focus,
			})
			if err != nil {
				return err
			}
			c.loggerProvider = provider
		default:
			opts := console.Options{}
			if level, ok := console.ParseLevel(logCfg.Level); ok {
				opts.MinLevel = &level
			}
			c.loggerProvider = console.NewProvider(opts)
		}
	}
	c.logger = logging.ModuleLogger(c.loggerProvider, "social.container")
	return nil
}

func (c *Container) configureCache() {
	if c.cache != nil || !c.Config.Cache.Enabled {
		return
	}
	c.cache = cache.NewMemory(c.Config.Cache.DefaultTTL, c.Config.Cache.CleanupInterval)
}

func (c *Container) configureFeatures() error {
	registry := features.NewRegistry()
	for _, def := range features.DefaultDefinitions() {
		if err := registry.Register(def); err != nil {
			return err
		}
	}

	enabled := c.Config.Features.Enabled
	if len(enabled) == 0 {
		enabled = registry.Names()
	}
	for _, name := range enabled {
		if err := registry.Enable(name); err != nil {
			return fmt.Errorf("%w: %s", runtimeconfig.ErrFeatureUnknown, name)
		}
	}
	for _, name := range c.Config.Features.Disabled {
		if err := registry.Disable(name); err != nil {
			return fmt.Errorf("%w: %s", runtimeconfig.ErrFeatureUnknown, name)
		}
	}
	c.features = registry
	return nil
}

func (c *Container) configureShortcodes() error {
	validator := shortcode.NewValidator()
	c.shortcodeRegistry = shortcode.NewRegistry(validator)

	if !c.Config.Shortcodes.Enabled {
		if c.shortcodeSvc == nil {
			c.shortcodeSvc = shortcode.NewNoOpService()
		}
		return nil
	}

	allowed := c.features.Shortcodes()
	selected := c.Config.Shortcodes.BuiltIns
	if len(selected) > 0 {
		for _, name := range selected {
			if _, known := c.features.FeatureForShortcode(name); !known {
				return fmt.Errorf("%w: %q", shortcode.ErrBuiltInNotFound, strings.TrimSpace(name))
			}
		}
	}

	for _, def := range shortcode.BuiltInDefinitions(c.builtInOptions()) {
		if !slices.Contains(allowed, def.Name) {
			continue
		}
		if len(selected) > 0 && !containsFold(selected, def.Name) {
			continue
		}
		if defaults := c.features.Defaults(def.Feature); len(defaults) > 0 {
			merged := maps.Clone(defaults)
			maps.Copy(merged, def.Schema.Defaults)
			def.Schema.Defaults = merged
		}
		if err := c.shortcodeRegistry.Register(def); err != nil {
			return err
		}
	}

	c.shortcodeRenderer = shortcode.NewRenderer(c.shortcodeRegistry, validator,
		shortcode.WithRendererSanitizer(c.sanitizer),
		shortcode.WithRendererCache(c.cache),
		shortcode.WithRendererMetrics(c.metrics),
	)

	if c.shortcodeSvc == nil {
		c.shortcodeSvc = shortcode.NewService(c.shortcodeRegistry, c.shortcodeRenderer,
			shortcode.WithWordPressSyntax(c.Config.Shortcodes.EnableWordPress),
			shortcode.WithDefaultSanitizer(c.sanitizer),
			shortcode.WithDefaultCache(c.cache),
			shortcode.WithMetrics(c.metrics),
			shortcode.WithLogger(logging.ShortcodeLogger(c.loggerProvider)),
		)
	}
	return nil
}

func (c *Container) builtInOptions() shortcode.BuiltInOptions {
	return shortcode.BuiltInOptions{
		Site:         c.site,
		TrustedInput: c.Config.Validation.TrustedInput,
		Lang:         c.Config.Site.Lang,
		Theme:        c.Config.Widgets.Theme,
		LinkColor:    c.Config.Widgets.LinkColor,
		BorderColor:  c.Config.Widgets.BorderColor,
	}
}

func containsFold(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(strings.TrimSpace(value), target) {
			return true
		}
	}
	return false
}

// LoggerProvider returns the configured provider, or nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Cache returns the render cache, or nil when caching is disabled.
func (c *Container) Cache() interfaces.CacheProvider {
	return c.cache
}

// Site returns the configured site account, which may be nil.
func (c *Container) Site() *accounts.Account {
	return c.site
}

func (c *Container) Features() *features.Registry {
	return c.features
}

// Shortcodes lists the registered shortcode names, sorted.
func (c *Container) Shortcodes() []string {
	defs := c.shortcodeRegistry.List()
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	slices.Sort(names)
	return names
}

// ShortcodeStats returns the in-memory render counters, or nil when metrics
// were overridden.
func (c *Container) ShortcodeStats() map[string]shortcode.RenderStats {
	if c.stats == nil {
		return nil
	}
	return c.stats.Snapshot()
}

func (c *Container) ShortcodeRegistry() *shortcode.Registry {
	return c.shortcodeRegistry
}

// ShortcodeRenderer is nil when shortcodes are disabled.
func (c *Container) ShortcodeRenderer() *shortcode.Renderer {
	return c.shortcodeRenderer
}

func (c *Container) ShortcodeService() interfaces.ShortcodeService {
	return c.shortcodeSvc
}

func (c *Container) MetaBuilder() *meta.Builder {
	return c.metaBuilder
}

// Widgets returns the widget settings published as meta tags.
func (c *Container) Widgets() meta.Widgets {
	w := c.Config.Widgets
	return meta.Widgets{
		Theme:       w.Theme,
		LinkColor:   w.LinkColor,
		BorderColor: w.BorderColor,
		CSP:         w.CSP,
		DoNotTrack:  w.DoNotTrack,
	}
}
