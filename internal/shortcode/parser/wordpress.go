package parser

import (
	"regexp"
	"strings"
)

// [name attrs], [name attrs /], and [/name]. Doubled brackets ([[name]])
// escape a tag.
var wpTagPattern = regexp.MustCompile(`\[(\[?)(/?)([A-Za-z0-9_-]+)([^\]]*)\](\]?)`)

// WordPressPreprocessor rewrites WordPress-style shortcodes into Hugo syntax
// so a single parser handles both.
type WordPressPreprocessor struct {
	known func(name string) bool
}

type WordPressOption func(*WordPressPreprocessor)

// WithKnownShortcodes limits rewriting to names accepted by known. Other
// bracketed text, such as [citation needed], is left as-is.
func WithKnownShortcodes(known func(name string) bool) WordPressOption {
	return func(p *WordPressPreprocessor) {
		p.known = known
	}
}

func NewWordPressPreprocessor(opts ...WordPressOption) *WordPressPreprocessor {
	p := &WordPressPreprocessor{}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Process rewrites bracket shortcodes. A trailing "/" is kept so the tag
// stays self-closing; an escaped [[tag]] is emitted as the literal [tag].
func (p *WordPressPreprocessor) Process(content string) string {
	if !strings.Contains(content, "[") {
		return content
	}

	var b strings.Builder
	last := 0
	for _, m := range wpTagPattern.FindAllStringSubmatchIndex(content, -1) {
		b.WriteString(content[last:m[0]])
		last = m[1]
		tag := content[m[0]:m[1]]
		name := content[m[6]:m[7]]

		escaped := m[3] > m[2] && m[11] > m[10]
		if escaped {
			b.WriteString(tag[1 : len(tag)-1])
			continue
		}
		if p.known != nil && !p.known(name) {
			b.WriteString(tag)
			continue
		}

		// an unpaired outer bracket stays outside the rewritten tag
		b.WriteString(content[m[2]:m[3]])
		switch attrs := strings.TrimSpace(content[m[8]:m[9]]); {
		case m[5] > m[4]:
			b.WriteString("{{< /" + name + " >}}")
		case strings.HasSuffix(attrs, "/"):
			b.WriteString("{{< " + joinAttrs(name, strings.TrimSuffix(attrs, "/")) + " />}}")
		default:
			b.WriteString("{{< " + joinAttrs(name, attrs) + " >}}")
		}
		b.WriteString(content[m[10]:m[11]])
	}
	b.WriteString(content[last:])
	return b.String()
}

func joinAttrs(name, attrs string) string {
	if attrs = strings.TrimSpace(attrs); attrs == "" {
		return name
	}
	return name + " " + attrs
}
