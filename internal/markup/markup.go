// Package markup assembles the HTML fragments emitted for cards, buttons, and
// widgets. Elements are built as html.Node trees and rendered, so attribute
// order is fixed and every value is escaped on output.
package markup

import (
	"html/template"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Targets accepted for the anchor target attribute.
var Targets = []string{"_blank", "_self", "_parent", "_top"}

// Attributes carries the optional anchor attributes. Class and Rel accept a
// []string or a space separated string.
type Attributes struct {
	Class  any
	Rel    any
	Target string
	Title  string
	Lang   string
}

// DataAttributes holds data-* attribute values keyed by name without the
// data- prefix. Rendering sorts names.
type DataAttributes map[string]string

var dataNameInvalid = regexp.MustCompile(`[^a-z0-9_-]+`)

// DataName lowercases name and strips characters not allowed in data-*
// attribute names.
func DataName(name string) string {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "data-")
	return dataNameInvalid.ReplaceAllString(name, "")
}

// Set stores value under the sanitized name. Empty names or values are ignored.
func (d DataAttributes) Set(name, value string) {
	name = DataName(name)
	if name == "" || value == "" {
		return
	}
	d[name] = value
}

// Names returns the attribute names in render order.
func (d DataAttributes) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d DataAttributes) attrs() []html.Attribute {
	out := make([]html.Attribute, 0, len(d))
	for _, name := range d.Names() {
		clean := DataName(name)
		if clean == "" {
			continue
		}
		out = append(out, html.Attribute{Key: "data-" + clean, Val: d[name]})
	}
	return out
}

// Tokens normalizes a class or rel value into distinct tokens.
func Tokens(value any) []string {
	var raw []string
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		raw = strings.Fields(v)
	case []string:
		for _, item := range v {
			raw = append(raw, strings.Fields(item)...)
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, strings.Fields(s)...)
			}
		}
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, token := range raw {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

// SafeHref reports whether href is an http(s), protocol relative, or relative URL.
func SafeHref(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" {
		return false
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return parsed.Host != ""
	case "":
		return true
	default:
		return false
	}
}

// AnchorElement builds an <a> element. Attributes are emitted in the order
// href, class, rel, target, title, lang, then data-* sorted by name. An unsafe
// href yields no markup.
func AnchorElement(href, text string, attrs Attributes, data DataAttributes) template.HTML {
	href = strings.TrimSpace(href)
	if !SafeHref(href) {
		return ""
	}
	node := element(atom.A, html.Attribute{Key: "href", Val: href})
	if classes := Tokens(attrs.Class); len(classes) > 0 {
		node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
	if rel := Tokens(attrs.Rel); len(rel) > 0 {
		node.Attr = append(node.Attr, html.Attribute{Key: "rel", Val: strings.Join(rel, " ")})
	}
	if target := validTarget(attrs.Target); target != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: "target", Val: target})
	}
	if title := strings.TrimSpace(attrs.Title); title != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: "title", Val: title})
	}
	if lang := strings.TrimSpace(attrs.Lang); lang != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: "lang", Val: lang})
	}
	node.Attr = append(node.Attr, data.attrs()...)
	if text != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return render(node)
}

// MetaElement builds <meta name="…" content="…">. Empty names produce no markup.
func MetaElement(name, content string) template.HTML {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return render(element(atom.Meta,
		html.Attribute{Key: "name", Val: name},
		html.Attribute{Key: "content", Val: content},
	))
}

// ImageElement builds an <img>. Dimensions are emitted only when positive.
func ImageElement(src, alt string, width, height int) template.HTML {
	if !SafeHref(src) {
		return ""
	}
	node := element(atom.Img, html.Attribute{Key: "src", Val: strings.TrimSpace(src)})
	node.Attr = append(node.Attr, html.Attribute{Key: "alt", Val: alt})
	if width > 0 && height > 0 {
		node.Attr = append(node.Attr,
			html.Attribute{Key: "width", Val: strconv.Itoa(width)},
			html.Attribute{Key: "height", Val: strconv.Itoa(height)},
		)
	}
	return render(node)
}

// Blockquote wraps inner markup in a <blockquote> with class and data attributes.
func Blockquote(class string, data DataAttributes, inner template.HTML) template.HTML {
	return container(atom.Blockquote, class, data, inner)
}

// Join concatenates fragments, one per line, skipping empty ones.
func Join(fragments ...template.HTML) template.HTML {
	var b strings.Builder
	for _, fragment := range fragments {
		if fragment == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(fragment))
	}
	return template.HTML(b.String())
}

func container(a atom.Atom, class string, data DataAttributes, inner template.HTML) template.HTML {
	node := element(a)
	if classes := Tokens(class); len(classes) > 0 {
		node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
	node.Attr = append(node.Attr, data.attrs()...)
	open := string(render(node))
	closing := "</" + a.String() + ">"
	// inner is already rendered markup; splice it between the tags.
	return template.HTML(strings.TrimSuffix(open, closing) + string(inner) + closing)
}

func validTarget(target string) string {
	target = strings.ToLower(strings.TrimSpace(target))
	for _, allowed := range Targets {
		if target == allowed {
			return allowed
		}
	}
	return ""
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func render(node *html.Node) template.HTML {
	var b strings.Builder
	if err := html.Render(&b, node); err != nil {
		return ""
	}
	return template.HTML(b.String())
}
