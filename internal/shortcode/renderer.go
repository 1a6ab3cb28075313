package shortcode

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html/template"
	"maps"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-cms-social/internal/validators"
	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

// templateFuncs are available to every template backed definition.
var templateFuncs = template.FuncMap{
	"hashtag":    validators.Hashtag.Sanitize,
	"handle":     validators.Handle.Sanitize,
	"numeric_id": validators.NumericID.Sanitize,
	"urlpath":    url.PathEscape,
}

// Renderer executes shortcode definitions and returns sanitized HTML.
type Renderer struct {
	registry  interfaces.ShortcodeRegistry
	validator *Validator
	sanitizer interfaces.ShortcodeSanitizer
	cache     interfaces.CacheProvider
	metrics   interfaces.ShortcodeMetrics
	templates sync.Map
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRendererSanitizer overrides the default sanitizer.
func WithRendererSanitizer(s interfaces.ShortcodeSanitizer) RendererOption {
	return func(r *Renderer) {
		r.sanitizer = s
	}
}

// WithRendererCache supplies the cache used for definitions with a CacheTTL.
func WithRendererCache(cache interfaces.CacheProvider) RendererOption {
	return func(r *Renderer) {
		r.cache = cache
	}
}

// WithRendererMetrics records cache hits.
func WithRendererMetrics(metrics interfaces.ShortcodeMetrics) RendererOption {
	return func(r *Renderer) {
		if metrics != nil {
			r.metrics = metrics
		}
	}
}

func NewRenderer(registry interfaces.ShortcodeRegistry, validator *Validator, opts ...RendererOption) *Renderer {
	if validator == nil {
		validator = NewValidator()
	}
	r := &Renderer{
		registry:  registry,
		validator: validator,
		sanitizer: NewSanitizer(),
		metrics:   NoOpMetrics(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render resolves the definition, coerces params, and runs the handler or
// template. Output is sanitized and cached when the definition has a CacheTTL.
func (r *Renderer) Render(ctx interfaces.ShortcodeContext, shortcode string, params map[string]any, inner string) (template.HTML, error) {
	if r.registry == nil {
		return "", ErrNotInitialized
	}
	def, ok := r.registry.Get(shortcode)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownShortcode, shortcode)
	}
	if !def.AllowInner {
		inner = ""
	}

	coerced, err := r.validator.CoerceParams(def, params)
	if err != nil {
		return "", err
	}

	cache := r.cache
	if ctx.Cache != nil {
		cache = ctx.Cache
	}
	stdctx := ctx.Context
	if stdctx == nil {
		stdctx = context.Background()
	}

	var cacheKey string
	if cache != nil && def.CacheTTL > 0 {
		cacheKey = CacheKey(ctx.Locale, def.Name, coerced, inner)
		if cached, err := cache.Get(stdctx, cacheKey); err == nil {
			if html, ok := cached.(string); ok {
				r.metrics.IncrementCacheHit(def.Name)
				return template.HTML(html), nil
			}
		}
	}

	var output string
	switch {
	case def.Handler != nil:
		result, err := def.Handler(ctx, coerced, inner)
		if err != nil {
			return "", err
		}
		output = string(result)
	case def.Template != "":
		output, err = r.execute(def, coerced, inner)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: %s has no handler or template", ErrInvalidDefinition, def.Name)
	}

	sanitizer := r.sanitizer
	if ctx.Sanitizer != nil {
		sanitizer = ctx.Sanitizer
	}
	if sanitizer != nil {
		if output, err = sanitizer.Sanitize(output); err != nil {
			return "", err
		}
	}

	if cacheKey != "" {
		_ = cache.Set(stdctx, cacheKey, output, def.CacheTTL)
	}
	return template.HTML(output), nil
}

// RenderAsync runs Render on its own goroutine.
func (r *Renderer) RenderAsync(ctx interfaces.ShortcodeContext, shortcode string, params map[string]any, inner string) (<-chan template.HTML, <-chan error) {
	outputCh := make(chan template.HTML, 1)
	errCh := make(chan error, 1)

	go func() {
		defer close(outputCh)
		defer close(errCh)

		result, err := r.Render(ctx, shortcode, params, inner)
		if err != nil {
			errCh <- err
			return
		}
		outputCh <- result
	}()

	return outputCh, errCh
}

func (r *Renderer) execute(def interfaces.ShortcodeDefinition, params map[string]any, inner string) (string, error) {
	tmpl, err := r.template(def)
	if err != nil {
		return "", err
	}
	data := maps.Clone(params)
	if data == nil {
		data = map[string]any{}
	}
	data["Inner"] = inner

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) template(def interfaces.ShortcodeDefinition) (*template.Template, error) {
	key := normalizeName(def.Name) + "\x00" + def.Template
	if cached, ok := r.templates.Load(key); ok {
		return cached.(*template.Template), nil
	}
	tmpl, err := template.New(def.Name).Funcs(templateFuncs).Parse(def.Template)
	if err != nil {
		return nil, err
	}
	r.templates.Store(key, tmpl)
	return tmpl, nil
}

// CacheKey derives a stable key from the locale, shortcode, coerced params,
// and inner content. Keys and values are quoted so separators inside a value
// cannot alias another param set.
func CacheKey(locale, shortcode string, params map[string]any, inner string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q|%q", locale, normalizeName(shortcode))
	for _, key := range slices.Sorted(maps.Keys(params)) {
		fmt.Fprintf(&b, "|%q=%#v", key, params[key])
	}
	fmt.Fprintf(&b, "|inner=%q", inner)

	sum := sha256.Sum256([]byte(b.String()))
	return "social:shortcode:" + hex.EncodeToString(sum[:])
}

var _ interfaces.ShortcodeRenderer = (*Renderer)(nil)
