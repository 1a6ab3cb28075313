package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-cms-social/internal/util"
	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

var (
	ErrUnexpectedClosing = errors.New("shortcode parser: closing tag without opener")
	ErrMismatchedClosing = errors.New("shortcode parser: mismatched closing tag")
	ErrUnterminated      = errors.New("shortcode parser: unterminated shortcode")
)

// Placeholder marks where the shortcode at index was cut out of the content.
func Placeholder(index int) string {
	return TaggedPlaceholder("", index)
}

// TaggedPlaceholder is Placeholder scoped by token, so markers already present
// in authored content cannot match.
func TaggedPlaceholder(token string, index int) string {
	if token == "" {
		return "<!-- shortcode:" + strconv.Itoa(index) + " -->"
	}
	return "<!-- shortcode:" + token + ":" + strconv.Itoa(index) + " -->"
}

var (
	// {{< name params >}} and {{< /name >}}; group 1 is the closing slash.
	tagPattern = regexp.MustCompile(`{{<\s*(/)?\s*([^\s/>]+)([^>]*)>}}`)
	// name=value pairs with double, single, or unquoted values, then bare
	// positional arguments.
	paramPattern = regexp.MustCompile(`([A-Za-z_][\w-]*)\s*=\s*(?:"([^"]*)"|'([^']*)'|(\S+))|"([^"]*)"|'([^']*)'|(\S+)`)
)

// HugoParser parses Hugo-style shortcodes ({{< name param >}}). An opener
// without a later closer of the same name, or one ending in "/", is
// standalone.
type HugoParser struct{}

func NewHugoParser() *HugoParser {
	return &HugoParser{}
}

// Parse returns the shortcodes found in content.
func (p *HugoParser) Parse(content string) ([]interfaces.ParsedShortcode, error) {
	_, shortcodes, err := p.Extract(content)
	return shortcodes, err
}

type openTag struct {
	name   string
	params map[string]any
	mark   int
}

// Extract replaces each shortcode with Placeholder(i) and returns the
// rewritten content with the shortcodes in placeholder order.
func (p *HugoParser) Extract(content string) (string, []interfaces.ParsedShortcode, error) {
	return p.ExtractTagged(content, "")
}

// ExtractTagged is Extract using TaggedPlaceholder(token, i).
func (p *HugoParser) ExtractTagged(content, token string) (string, []interfaces.ParsedShortcode, error) {
	tags := tagPattern.FindAllStringSubmatchIndex(content, -1)
	if len(tags) == 0 {
		return content, nil, nil
	}

	closers := make(map[string]int)
	for _, tag := range tags {
		if tag[2] >= 0 {
			closers[content[tag[4]:tag[5]]]++
		}
	}

	var (
		out        = make([]byte, 0, len(content))
		shortcodes []interfaces.ParsedShortcode
		stack      []openTag
		last       int
	)
	emit := func(sc interfaces.ParsedShortcode) {
		out = append(out, TaggedPlaceholder(token, len(shortcodes))...)
		shortcodes = append(shortcodes, sc)
	}

	for _, tag := range tags {
		out = append(out, content[last:tag[0]]...)
		last = tag[1]
		name := content[tag[4]:tag[5]]

		if tag[2] >= 0 {
			closers[name]--
			if len(stack) == 0 {
				return "", nil, fmt.Errorf("%w: %s at position %d", ErrUnexpectedClosing, name, tag[0])
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if open.name != name {
				return "", nil, fmt.Errorf("%w: %s, expected %s", ErrMismatchedClosing, name, open.name)
			}
			inner := string(out[open.mark:])
			out = out[:open.mark]
			emit(interfaces.ParsedShortcode{Name: name, Params: open.params, Inner: inner})
			continue
		}

		raw := strings.TrimSpace(content[tag[6]:tag[7]])
		params := parseParams(raw)
		if strings.HasSuffix(raw, "/") || closers[name] == 0 {
			emit(interfaces.ParsedShortcode{Name: name, Params: params})
			continue
		}
		stack = append(stack, openTag{name: name, params: params, mark: len(out)})
	}
	out = append(out, content[last:]...)

	if len(stack) > 0 {
		return "", nil, fmt.Errorf("%w: %s", ErrUnterminated, stack[len(stack)-1].name)
	}
	return string(out), shortcodes, nil
}

func parseParams(raw string) map[string]any {
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "/"))
	params := make(map[string]any)
	positional := 0
	for _, m := range paramPattern.FindAllStringSubmatch(raw, -1) {
		if m[1] != "" {
			params[m[1]] = util.FirstNonEmpty(m[2], m[3], m[4])
			continue
		}
		positional++
		params["param"+strconv.Itoa(positional)] = util.FirstNonEmpty(m[5], m[6], m[7])
	}
	return params
}
