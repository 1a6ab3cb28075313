package shortcode

import (
	"context"
	"html/template"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-cms-social/internal/logging"
	parserpkg "github.com/goliatone/go-cms-social/internal/shortcode/parser"
	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

const (
	syntaxHugo      = "hugo"
	syntaxWordPress = "wordpress"
)

// Service orchestrates shortcode parsing and rendering for arbitrary content.
type Service struct {
	registry         interfaces.ShortcodeRegistry
	renderer         interfaces.ShortcodeRenderer
	parser           interfaces.ShortcodeParser
	preprocessor     *parserpkg.WordPressPreprocessor
	defaultSanitizer interfaces.ShortcodeSanitizer
	defaultCache     interfaces.CacheProvider
	logger           interfaces.Logger
	metrics          interfaces.ShortcodeMetrics
	wordpressEnabled bool
	newRenderID      func() string
}

// ServiceOption customises service behaviour.
type ServiceOption func(*Service)

// WithWordPressSyntax toggles support for the WordPress-style [] shortcode syntax.
func WithWordPressSyntax(enabled bool) ServiceOption {
	return func(s *Service) {
		s.wordpressEnabled = enabled
	}
}

// WithDefaultSanitizer overrides the fallback sanitizer used when none is supplied at call time.
func WithDefaultSanitizer(sanitizer interfaces.ShortcodeSanitizer) ServiceOption {
	return func(s *Service) {
		if sanitizer != nil {
			s.defaultSanitizer = sanitizer
		}
	}
}

// WithDefaultCache overrides the fallback cache provider used when none is supplied at call time.
func WithDefaultCache(cache interfaces.CacheProvider) ServiceOption {
	return func(s *Service) {
		if cache != nil {
			s.defaultCache = cache
		}
	}
}

// WithLogger attaches a logger used for structured diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics wires the metrics recorder used for telemetry.
func WithMetrics(metrics interfaces.ShortcodeMetrics) ServiceOption {
	return func(s *Service) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// WithWordPressPreprocessor allows callers to supply a custom WordPress preprocessor.
func WithWordPressPreprocessor(pre *parserpkg.WordPressPreprocessor) ServiceOption {
	return func(s *Service) {
		if pre != nil {
			s.preprocessor = pre
		}
	}
}

// WithParser overrides the Hugo-style parser used to extract shortcodes.
func WithParser(parser interfaces.ShortcodeParser) ServiceOption {
	return func(s *Service) {
		if parser != nil {
			s.parser = parser
		}
	}
}

// WithRenderIDGenerator replaces the uuid generator that tags each Process call.
func WithRenderIDGenerator(fn func() string) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.newRenderID = fn
		}
	}
}

// NewService constructs a shortcode service using the supplied registry and renderer.
// With a registry, the WordPress preprocessor only rewrites registered names.
func NewService(registry interfaces.ShortcodeRegistry, renderer interfaces.ShortcodeRenderer, opts ...ServiceOption) *Service {
	var preOpts []parserpkg.WordPressOption
	if registry != nil {
		preOpts = append(preOpts, parserpkg.WithKnownShortcodes(func(name string) bool {
			_, ok := registry.Get(name)
			return ok
		}))
	}

	service := &Service{
		registry:         registry,
		renderer:         renderer,
		parser:           parserpkg.NewHugoParser(),
		preprocessor:     parserpkg.NewWordPressPreprocessor(preOpts...),
		defaultSanitizer: NewSanitizer(),
		logger:           logging.NoOp(),
		metrics:          NoOpMetrics(),
		newRenderID:      uuid.NewString,
	}

	for _, opt := range opts {
		opt(service)
	}
	return service
}

// taggedExtractor is implemented by parsers that scope placeholders to a call.
type taggedExtractor interface {
	ExtractTagged(content, token string) (string, []interfaces.ParsedShortcode, error)
}

// Process renders any shortcodes found within the content string, returning
// the resulting HTML. A shortcode that fails to render is replaced with
// nothing and logged; only malformed shortcode syntax fails the call.
func (s *Service) Process(ctx context.Context, content string, opts interfaces.ShortcodeProcessOptions) (string, error) {
	if strings.TrimSpace(content) == "" {
		return content, nil
	}
	if s.renderer == nil || s.parser == nil {
		return "", ErrNotInitialized
	}

	syntax := syntaxHugo
	material := content
	if (s.wordpressEnabled || opts.EnableWordPress) && s.preprocessor != nil {
		syntax = syntaxWordPress
		material = s.preprocessor.Process(material)
	}

	logger := logging.WithFields(s.baseLogger(ctx), map[string]any{
		"operation": "shortcode.process",
	})
	renderID := s.newRenderID()
	logger = logging.WithShortcodeContext(logger, "", syntax, renderID)

	token := ""
	var (
		transformed string
		parsed      []interfaces.ParsedShortcode
		err         error
	)
	if tagged, ok := s.parser.(taggedExtractor); ok {
		token = renderID
		transformed, parsed, err = tagged.ExtractTagged(material, token)
	} else {
		transformed, parsed, err = s.parser.Extract(material)
	}
	if err != nil {
		logging.WithError(logger, err).Error("shortcode.service.parse_failed")
		return "", err
	}
	if len(parsed) == 0 {
		return transformed, nil
	}

	scCtx := s.shortcodeContext(interfaces.ShortcodeContext{
		Context:   ctx,
		Locale:    opts.Locale,
		Cache:     opts.Cache,
		Sanitizer: opts.Sanitizer,
	})

	pairs := make([]string, 0, 2*len(parsed))
	failed := 0
	for idx, sc := range parsed {
		rendered, elapsed, err := s.render(scCtx, sc.Name, sc.Params, sc.Inner)
		entry := logging.WithFields(logging.WithShortcodeContext(logger, sc.Name, "", ""), map[string]any{
			"index":       idx,
			"duration_ms": elapsed.Milliseconds(),
		})
		if err != nil {
			failed++
			logging.WithError(entry, err).Warn("shortcode.service.render_failed")
			rendered = ""
		} else {
			entry.Debug("shortcode.service.render_succeeded")
		}
		pairs = append(pairs, parserpkg.TaggedPlaceholder(token, idx), string(rendered))
	}

	logging.WithFields(logger, map[string]any{
		"shortcodes": len(parsed),
		"failed":     failed,
	}).Debug("shortcode.service.process_completed")
	return strings.NewReplacer(pairs...).Replace(transformed), nil
}

// Render executes a single shortcode definition and returns the HTML output.
// Unlike Process, render errors are returned to the caller.
func (s *Service) Render(ctx interfaces.ShortcodeContext, shortcode string, params map[string]any, inner string) (template.HTML, error) {
	if s.renderer == nil {
		return "", ErrNotInitialized
	}
	ctx = s.shortcodeContext(ctx)

	logger := logging.WithFields(s.baseLogger(ctx.Context), map[string]any{
		"operation": "shortcode.render",
	})
	logger = logging.WithShortcodeContext(logger, shortcode, "", s.newRenderID())

	result, elapsed, err := s.render(ctx, shortcode, params, inner)
	logger = logging.WithFields(logger, map[string]any{
		"duration_ms": elapsed.Milliseconds(),
	})
	if err != nil {
		logging.WithError(logger, err).Error("shortcode.service.render_failed")
		return "", err
	}
	logger.Debug("shortcode.service.render_succeeded")
	return result, nil
}

// render times one renderer call and records its metrics.
func (s *Service) render(ctx interfaces.ShortcodeContext, shortcode string, params map[string]any, inner string) (template.HTML, time.Duration, error) {
	start := time.Now()
	result, err := s.renderer.Render(ctx, shortcode, params, inner)
	elapsed := time.Since(start)
	s.metrics.ObserveRenderDuration(shortcode, elapsed)
	if err != nil {
		s.metrics.IncrementRenderError(shortcode)
	}
	return result, elapsed, err
}

// shortcodeContext fills the collaborators the caller left unset.
func (s *Service) shortcodeContext(ctx interfaces.ShortcodeContext) interfaces.ShortcodeContext {
	if ctx.Context == nil {
		ctx.Context = context.Background()
	}
	if ctx.Sanitizer == nil {
		ctx.Sanitizer = s.defaultSanitizer
	}
	if ctx.Cache == nil {
		ctx.Cache = s.defaultCache
	}
	return ctx
}

// Registry exposes the underlying shortcode registry.
func (s *Service) Registry() interfaces.ShortcodeRegistry {
	return s.registry
}

var _ interfaces.ShortcodeService = (*Service)(nil)

type noOpService struct{}

// NewNoOpService returns a shortcode service that leaves content untouched.
func NewNoOpService() interfaces.ShortcodeService {
	return noOpService{}
}

func (noOpService) Process(_ context.Context, content string, _ interfaces.ShortcodeProcessOptions) (string, error) {
	return content, nil
}

func (noOpService) Render(_ interfaces.ShortcodeContext, _ string, _ map[string]any, _ string) (template.HTML, error) {
	return template.HTML(""), nil
}

func (s *Service) baseLogger(ctx context.Context) interfaces.Logger {
	logger := s.logger
	if logger == nil {
		logger = logging.NoOp()
	}
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	return logger
}
