// Package social renders Twitter cards, buttons, embeds, timelines, and
// tracking pixels for content pages, and expands the matching shortcodes
// inside authored content.
package social

import (
	"context"
	"html/template"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/cards"
	"github.com/goliatone/go-cms-social/internal/di"
	"github.com/goliatone/go-cms-social/internal/features"
	"github.com/goliatone/go-cms-social/internal/meta"
	"github.com/goliatone/go-cms-social/internal/shortcode"
	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

// Card exports the card contract.
type Card = cards.Card

// Account exports the account value type.
type Account = accounts.Account

// MetaTag exports a single twitter:* meta tag.
type MetaTag = meta.Tag

// ShortcodeStats exports the per-shortcode render counters.
type ShortcodeStats = shortcode.RenderStats

// Option overrides a collaborator built from the configuration.
type Option = di.Option

// WithLoggerProvider routes module logs to provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return di.WithLoggerProvider(provider)
}

// WithCache replaces the in-memory render cache.
func WithCache(provider interfaces.CacheProvider) Option {
	return di.WithCache(provider)
}

// WithShortcodeMetrics receives render telemetry.
func WithShortcodeMetrics(metrics interfaces.ShortcodeMetrics) Option {
	return di.WithShortcodeMetrics(metrics)
}

// Module represents the top level social runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module from cfg. Configuration errors carry the
// validation category.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, wrapConfigError(err)
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

func (m *Module) ready() error {
	if m == nil || m.container == nil {
		return goerrors.New("social module not configured", goerrors.CategoryInternal).
			WithTextCode(moduleNotConfiguredCode)
	}
	return nil
}

// Process expands every shortcode in content. A shortcode that fails to
// render is replaced by nothing; only malformed syntax returns an error.
func (m *Module) Process(ctx context.Context, content string) (string, error) {
	return m.ProcessWithOptions(ctx, content, interfaces.ShortcodeProcessOptions{})
}

// ProcessWithOptions is Process with per call locale, cache, and sanitizer overrides.
func (m *Module) ProcessWithOptions(ctx context.Context, content string, opts interfaces.ShortcodeProcessOptions) (string, error) {
	if err := m.ready(); err != nil {
		return "", err
	}
	out, err := m.container.ShortcodeService().Process(ctx, content, opts)
	if err != nil {
		return "", wrapProcessError(err)
	}
	return out, nil
}

// Render renders one shortcode by name.
func (m *Module) Render(ctx context.Context, shortcode string, params map[string]any, inner string) (template.HTML, error) {
	if err := m.ready(); err != nil {
		return "", err
	}
	html, err := m.container.ShortcodeService().Render(interfaces.ShortcodeContext{Context: ctx}, shortcode, params, inner)
	if err != nil {
		return "", wrapRenderError(err, shortcode)
	}
	return html, nil
}

// CardTags returns the twitter:* tags for card, adding the configured site
// account when the card has none. Nothing is returned while the cards
// feature is disabled.
func (m *Module) CardTags(card Card) []MetaTag {
	if m.ready() != nil || !m.container.Features().IsEnabled(features.Cards) {
		return nil
	}
	return m.container.MetaBuilder().CardTags(card)
}

// CardMeta renders CardTags as <meta> elements, one per line.
func (m *Module) CardMeta(card Card) template.HTML {
	return meta.Render(m.CardTags(card))
}

// CardMetaFromValues builds a card from raw values (see cards.FromValues)
// and renders its tags. Unknown card types render nothing.
func (m *Module) CardMetaFromValues(values map[string]any) template.HTML {
	card := cards.FromValues(values)
	if card == nil {
		return ""
	}
	return m.CardMeta(card)
}

// WidgetsMeta renders the site wide widget settings as meta tags.
func (m *Module) WidgetsMeta() template.HTML {
	if m.ready() != nil {
		return ""
	}
	return meta.Render(meta.WidgetTags(m.container.Widgets()))
}

// Site returns the configured site account, or nil.
func (m *Module) Site() *Account {
	if m.ready() != nil {
		return nil
	}
	return m.container.Site()
}

// Features lists the enabled feature names, sorted.
func (m *Module) Features() []string {
	if m.ready() != nil {
		return nil
	}
	return m.container.Features().Enabled()
}

// Shortcodes lists the registered shortcode names, sorted.
func (m *Module) Shortcodes() []string {
	if m.ready() != nil {
		return nil
	}
	return m.container.Shortcodes()
}

// Stats returns render counters keyed by shortcode name. It is nil when
// WithShortcodeMetrics replaced the built-in counters.
func (m *Module) Stats() map[string]ShortcodeStats {
	if m.ready() != nil {
		return nil
	}
	return m.container.ShortcodeStats()
}
