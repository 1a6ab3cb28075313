// Package intents builds Twitter web intent URLs (compose tweet, follow) from
// validated fields.
package intents

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-cms-social/internal/properties"
)

// BaseURL is the web intent endpoint prefix.
const BaseURL = "https://twitter.com/intent/"

// Escape percent-encodes s per RFC 3986: only unreserved characters are left
// as-is and spaces become %20.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Unescape reverses Escape. A literal + is kept as-is.
func Unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// EncodeQuery serializes flat string properties in insertion order.
func EncodeQuery(params properties.Properties) string {
	var b strings.Builder
	params.Each(func(key string, value any) bool {
		s, ok := value.(string)
		if !ok {
			return true
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Escape(key))
		b.WriteByte('=')
		b.WriteString(Escape(s))
		return true
	})
	return b.String()
}

func buildURL(intent string, params properties.Properties) string {
	base := BaseURL + intent
	if params.IsEmpty() {
		return base
	}
	return base + "?" + EncodeQuery(params)
}

// Option configures intent validation.
type Option func(*config)

type config struct {
	validate bool
}

// WithoutValidation trusts caller input: URL scheme checks and handle
// validation are skipped. Only use with values that did not come from end users.
func WithoutValidation() Option {
	return func(c *config) {
		c.validate = false
	}
}

// WithValidation toggles validation explicitly.
func WithValidation(enabled bool) Option {
	return func(c *config) {
		c.validate = enabled
	}
}

func resolve(opts []Option) config {
	cfg := config{validate: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
