package interfaces

import (
	"context"
	"html/template"
	"time"
)

// ShortcodeRegistry stores shortcode definitions by name. Implementations must
// be safe for concurrent use.
type ShortcodeRegistry interface {
	// Register fails when the name is taken or the definition is invalid.
	Register(definition ShortcodeDefinition) error
	Get(name string) (ShortcodeDefinition, bool)
	List() []ShortcodeDefinition
	// Remove is a no-op for unknown names.
	Remove(name string)
}

// ShortcodeRenderer executes a definition and returns sanitized HTML.
type ShortcodeRenderer interface {
	Render(ctx ShortcodeContext, shortcode string, params map[string]any, inner string) (template.HTML, error)
	RenderAsync(ctx ShortcodeContext, shortcode string, params map[string]any, inner string) (<-chan template.HTML, <-chan error)
}

// ShortcodeParser extracts invocations from content. Extract replaces each
// invocation with a numbered placeholder.
type ShortcodeParser interface {
	Parse(content string) ([]ParsedShortcode, error)
	Extract(content string) (placeholders string, shortcodes []ParsedShortcode, err error)
}

// ShortcodeSanitizer cleans rendered output.
type ShortcodeSanitizer interface {
	Sanitize(html string) (string, error)
	ValidateURL(raw string) error
	ValidateAttributes(attrs map[string]any) error
}

// ShortcodeService processes whole documents and single shortcodes.
type ShortcodeService interface {
	Process(ctx context.Context, content string, opts ShortcodeProcessOptions) (string, error)
	Render(ctx ShortcodeContext, shortcode string, params map[string]any, inner string) (template.HTML, error)
}

// ShortcodeProcessOptions are per call overrides for Process.
type ShortcodeProcessOptions struct {
	Locale          string
	EnableWordPress bool
	Cache           CacheProvider
	Sanitizer       ShortcodeSanitizer
}

// ShortcodeMetrics receives render telemetry.
type ShortcodeMetrics interface {
	ObserveRenderDuration(shortcode string, duration time.Duration)
	IncrementRenderError(shortcode string)
	IncrementCacheHit(shortcode string)
}

// ShortcodeDefinition describes one shortcode: its parameter schema and either
// a handler or an html/template body.
type ShortcodeDefinition struct {
	Name        string
	Version     string
	Description string
	Category    string
	Feature     string
	AllowInner  bool
	Async       bool
	CacheTTL    time.Duration
	Schema      ShortcodeSchema
	Template    string
	Handler     ShortcodeHandler
}

type ShortcodeSchema struct {
	Params   []ShortcodeParam
	Defaults map[string]any
}

type ShortcodeParam struct {
	Name     string
	Type     ShortcodeParamType
	Required bool
	Default  any
	Validate ShortcodeValidator
}

// ShortcodeParamType selects the coercion applied to a parameter.
type ShortcodeParamType string

const (
	ShortcodeParamString ShortcodeParamType = "string"
	ShortcodeParamInt    ShortcodeParamType = "int"
	ShortcodeParamBool   ShortcodeParamType = "bool"
	ShortcodeParamArray  ShortcodeParamType = "array"
	ShortcodeParamURL    ShortcodeParamType = "url"
)

// ShortcodeValidator rejects a coerced value by returning an error.
type ShortcodeValidator func(value any) error

// ShortcodeHandler renders a shortcode from coerced parameters.
type ShortcodeHandler func(ctx ShortcodeContext, params map[string]any, inner string) (template.HTML, error)

// ShortcodeContext carries per render collaborators.
type ShortcodeContext struct {
	Context   context.Context
	Locale    string
	Cache     CacheProvider
	Sanitizer ShortcodeSanitizer
}

// ParsedShortcode is one invocation found by a parser.
type ParsedShortcode struct {
	Name   string
	Params map[string]any
	Inner  string
}
