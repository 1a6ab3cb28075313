package shortcode

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

var targetPattern = regexp.MustCompile(`^_(blank|self|parent|top)$`)

// Sanitizer filters rendered shortcode markup through a bluemonday policy that
// admits the elements emitted for buttons, embeds, timelines, and pixels.
type Sanitizer struct {
	policy         *bluemonday.Policy
	allowedSchemes map[string]struct{}
}

// NewSanitizer returns the default policy: a, blockquote, div, p, span, and
// img with http(s) or relative URLs, class, lang, and data-* attributes.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		policy: twitterPolicy(),
		allowedSchemes: map[string]struct{}{
			"http":  {},
			"https": {},
			"":      {},
		},
	}
}

func twitterPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("http", "https")

	p.AllowElements("a", "blockquote", "div", "p", "span", "img", "br")
	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowAttrs("rel").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a")
	p.AllowAttrs("target").Matching(targetPattern).OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowAttrs("width", "height").Matching(bluemonday.Integer).OnElements("img")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
	p.AllowAttrs("lang", "dir").Globally()
	p.AllowDataAttributes()
	return p
}

// Sanitize strips anything outside the policy. It never fails.
func (s *Sanitizer) Sanitize(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return html, nil
	}
	return s.policy.Sanitize(html), nil
}

// ValidateURL rejects schemes other than http, https, or none.
func (s *Sanitizer) ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if _, ok := s.allowedSchemes[strings.ToLower(parsed.Scheme)]; !ok {
		return fmt.Errorf("shortcode: url scheme %q not permitted", parsed.Scheme)
	}
	return nil
}

// ValidateAttributes rejects inline event handlers such as onload.
func (s *Sanitizer) ValidateAttributes(attrs map[string]any) error {
	for key := range attrs {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(key)), "on") {
			return fmt.Errorf("shortcode: attribute %q not permitted", key)
		}
	}
	return nil
}

var _ interfaces.ShortcodeSanitizer = (*Sanitizer)(nil)
