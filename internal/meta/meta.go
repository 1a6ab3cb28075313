// Package meta turns cards and widget settings into twitter:* meta tags.
package meta

import (
	"html/template"

	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/cards"
	"github.com/goliatone/go-cms-social/internal/logging"
	"github.com/goliatone/go-cms-social/internal/markup"
	"github.com/goliatone/go-cms-social/internal/options"
	"github.com/goliatone/go-cms-social/internal/properties"
	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

// Prefix is prepended to every emitted tag name.
const Prefix = "twitter:"

// Tag is a single name/content pair.
type Tag struct {
	Name    string
	Content string
}

// Builder emits card and widget tags for one site.
type Builder struct {
	site   *accounts.Account
	logger interfaces.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithSite sets the account used for twitter:site when a card has none.
func WithSite(site *accounts.Account) Option {
	return func(b *Builder) {
		if site.IsValid() {
			b.site = site
		}
	}
}

// WithLogger attaches the builder logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{logger: logging.NoOp()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Site returns the default site account, if any.
func (b *Builder) Site() *accounts.Account { return b.site }

// CardTags flattens card properties into tags, preserving property order.
// Nested values expand to twitter:key for their src entry and
// twitter:key:sub for every other entry. A card without a site gets the
// builder default right after its title, or after its type when untitled.
func (b *Builder) CardTags(card cards.Card) []Tag {
	if card == nil {
		return nil
	}
	props := b.withSite(card.Properties())

	tags := make([]Tag, 0, props.Len())
	props.Each(func(key string, value any) bool {
		tags = append(tags, expand(key, value)...)
		return true
	})

	logging.WithFields(b.logger, map[string]any{
		"card": string(card.Type()),
		"tags": len(tags),
	}).Debug("meta.card.tags_built")
	return tags
}

// CardMarkup renders CardTags.
func (b *Builder) CardMarkup(card cards.Card) template.HTML {
	return Render(b.CardTags(card))
}

func (b *Builder) withSite(props properties.Properties) properties.Properties {
	if b.site == nil || props.Has("site") {
		return props
	}
	anchor := "card"
	if props.Has("title") {
		anchor = "title"
	}

	var out properties.Properties
	props.Each(func(key string, value any) bool {
		out.SetValue(key, value)
		if key == anchor {
			out.SetValue("site", b.site.CardValue())
		}
		return true
	})
	return out
}

func expand(key string, value any) []Tag {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []Tag{{Name: Prefix + key, Content: v}}
	case properties.Properties:
		var tags []Tag
		v.Each(func(sub string, nested any) bool {
			s, ok := nested.(string)
			if !ok || s == "" {
				return true
			}
			name := Prefix + key + ":" + sub
			if sub == "src" {
				name = Prefix + key
			}
			tags = append(tags, Tag{Name: name, Content: s})
			return true
		})
		return tags
	default:
		return nil
	}
}

// Render joins one <meta> element per tag.
func Render(tags []Tag) template.HTML {
	fragments := make([]template.HTML, 0, len(tags))
	for _, tag := range tags {
		fragments = append(fragments, markup.MetaElement(tag.Name, tag.Content))
	}
	return markup.Join(fragments...)
}

// Widgets holds the site wide widget settings published as meta tags.
type Widgets struct {
	Theme       string
	LinkColor   string
	BorderColor string
	// CSP marks the page as served with a content security policy.
	CSP bool
	// DoNotTrack opts widgets out of tailoring.
	DoNotTrack bool
}

// WidgetTags returns the widget tags whose values validate. Colors are
// emitted with a leading #.
func WidgetTags(w Widgets) []Tag {
	var tags []Tag
	if theme, ok := options.Theme(w.Theme); ok {
		tags = append(tags, Tag{Name: Prefix + "widgets:theme", Content: theme})
	}
	if color, ok := options.HexColor(w.LinkColor); ok {
		tags = append(tags, Tag{Name: Prefix + "widgets:link-color", Content: "#" + color})
	}
	if color, ok := options.HexColor(w.BorderColor); ok {
		tags = append(tags, Tag{Name: Prefix + "widgets:border-color", Content: "#" + color})
	}
	if w.CSP {
		tags = append(tags, Tag{Name: Prefix + "widgets:csp", Content: "on"})
	}
	if w.DoNotTrack {
		tags = append(tags, Tag{Name: Prefix + "dnt", Content: "on"})
	}
	return tags
}

// WidgetsFromValues reads theme, link_color, border_color, csp, and dnt.
func WidgetsFromValues(values map[string]any) Widgets {
	var w Widgets
	w.Theme, _ = options.String(values["theme"])
	w.LinkColor, _ = options.String(values["link_color"])
	w.BorderColor, _ = options.String(values["border_color"])
	w.CSP, _ = options.Bool(values["csp"])
	w.DoNotTrack, _ = options.Bool(values["dnt"])
	return w
}
