package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

const (
	rootModule      = "social"
	shortcodeModule = "social.shortcode"
	metaModule      = "social.meta"
)

const (
	fieldShortcode = "shortcode"
	fieldSyntax    = "syntax"
	fieldRenderID  = "render_id"
)

// ModuleLogger returns a logger scoped to module. Without a provider, or when
// the provider has nothing for module, entries are dropped.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ShortcodeLogger returns the logger used by the shortcode engine.
func ShortcodeLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, shortcodeModule)
}

// MetaLogger returns the logger used by the meta tag builder.
func MetaLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, metaModule)
}

// WithShortcodeContext attaches the shortcode name, parser syntax, and render
// id. Empty values are skipped.
func WithShortcodeContext(logger interfaces.Logger, name, syntax, renderID string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		fields[fieldShortcode] = trimmed
	}
	if trimmed := strings.TrimSpace(syntax); trimmed != "" {
		fields[fieldSyntax] = trimmed
	}
	if trimmed := strings.TrimSpace(renderID); trimmed != "" {
		fields[fieldRenderID] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
