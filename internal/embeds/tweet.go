// Package embeds renders embedded tweets as blockquotes enhanced by widgets.js.
package embeds

import (
	"html/template"
	"regexp"
	"strconv"

	"github.com/goliatone/go-cms-social/internal/markup"
	"github.com/goliatone/go-cms-social/internal/options"
	"github.com/goliatone/go-cms-social/internal/validators"
)

const (
	MinWidth = 250
	MaxWidth = 550
)

// Alignments accepted by SetAlign.
var Alignments = []string{"left", "center", "right"}

var statusURLPattern = regexp.MustCompile(`^https?://(?:www\.|mobile\.)?(?:twitter\.com|x\.com)/(\w+)/status(?:es)?/(\d+)`)

// IDFromURL extracts the tweet id from a status permalink.
func IDFromURL(raw string) string {
	matches := statusURLPattern.FindStringSubmatch(raw)
	if len(matches) < 3 {
		return ""
	}
	return matches[2]
}

// Tweet is an embedded tweet. The id is required; without it nothing renders.
type Tweet struct {
	id         string
	hideCards  bool
	hideThread bool
	align      string
	width      int
	theme      string
	linkColor  string
	lang       string
}

// NewTweet returns an embed for the tweet id, which may also be a status URL.
func NewTweet(id string) *Tweet {
	t := &Tweet{}
	t.SetID(id)
	return t
}

func (t *Tweet) SetID(id string) *Tweet {
	if clean := validators.NumericID.Sanitize(id); clean != "" {
		t.id = clean
	} else if fromURL := IDFromURL(id); fromURL != "" {
		t.id = fromURL
	}
	return t
}

func (t *Tweet) ID() string { return t.id }

// HideCards suppresses link previews and attached media.
func (t *Tweet) HideCards(hide bool) *Tweet {
	t.hideCards = hide
	return t
}

// HideThread suppresses the parent tweet of a reply.
func (t *Tweet) HideThread(hide bool) *Tweet {
	t.hideThread = hide
	return t
}

func (t *Tweet) SetAlign(align string) *Tweet {
	if v, ok := options.Enum(align, Alignments...); ok {
		t.align = v
	}
	return t
}

// SetWidth accepts widths between MinWidth and MaxWidth.
func (t *Tweet) SetWidth(width int) *Tweet {
	if v, ok := options.IntInRange(width, MinWidth, MaxWidth); ok {
		t.width = v
	}
	return t
}

func (t *Tweet) SetTheme(theme string) *Tweet {
	if v, ok := options.Theme(theme); ok {
		t.theme = v
	}
	return t
}

func (t *Tweet) SetLinkColor(color string) *Tweet {
	if v, ok := options.HexColor(color); ok {
		t.linkColor = v
	}
	return t
}

func (t *Tweet) SetLang(lang string) *Tweet {
	if v := validators.ShortTag.Sanitize(lang); v != "" {
		t.lang = v
	}
	return t
}

// DataAttributes returns the widget options, or nothing when the id is missing.
func (t *Tweet) DataAttributes() markup.DataAttributes {
	d := markup.DataAttributes{}
	if t.id == "" {
		return d
	}
	d.Set("id", t.id)
	if t.hideCards {
		d.Set("cards", "hidden")
	}
	if t.hideThread {
		d.Set("conversation", "none")
	}
	d.Set("align", t.align)
	if t.width > 0 {
		d.Set("width", strconv.Itoa(t.width))
	}
	d.Set("theme", t.theme)
	if t.linkColor != "" {
		d.Set("link-color", "#"+t.linkColor)
	}
	d.Set("lang", t.lang)
	return d
}

// Permalink is the canonical status URL used as the fallback link.
func (t *Tweet) Permalink() string {
	if t.id == "" {
		return ""
	}
	return "https://twitter.com/i/web/status/" + t.id
}

// Markup renders the blockquote, or nothing when the id is missing.
func (t *Tweet) Markup() template.HTML {
	if t.id == "" {
		return ""
	}
	link := markup.AnchorElement(t.Permalink(), "View on Twitter", markup.Attributes{}, nil)
	return markup.Blockquote("twitter-tweet", t.DataAttributes(), link)
}

// FromValues reads id or url, hide_media (or cards=hidden), hide_thread (or
// conversation=none), align, width, theme, link_color, and lang.
func FromValues(values map[string]any) *Tweet {
	t := &Tweet{}
	if id, ok := options.String(values["id"]); ok {
		t.SetID(id)
	}
	if t.id == "" {
		if raw, ok := options.String(values["url"]); ok {
			t.id = IDFromURL(raw)
		}
	}
	if v, ok := options.Bool(values["hide_media"]); ok {
		t.HideCards(v)
	} else if v, ok := options.Enum(values["cards"], "hidden"); ok && v == "hidden" {
		t.HideCards(true)
	}
	if v, ok := options.Bool(values["hide_thread"]); ok {
		t.HideThread(v)
	} else if v, ok := options.Enum(values["conversation"], "none"); ok && v == "none" {
		t.HideThread(true)
	}
	if v, ok := options.String(values["align"]); ok {
		t.SetAlign(v)
	}
	if v, ok := options.Int(values["width"]); ok {
		t.SetWidth(v)
	}
	if v, ok := options.String(values["theme"]); ok {
		t.SetTheme(v)
	}
	if v, ok := options.String(values["link_color"]); ok {
		t.SetLinkColor(v)
	}
	if v, ok := options.String(values["lang"]); ok {
		t.SetLang(v)
	}
	return t
}
