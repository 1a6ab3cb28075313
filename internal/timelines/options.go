// Package timelines renders embedded timeline widgets for profiles, lists,
// searches, and collections.
package timelines

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-cms-social/internal/markup"
	"github.com/goliatone/go-cms-social/internal/options"
	"github.com/goliatone/go-cms-social/internal/validators"
)

const (
	MinLimit  = 1
	MaxLimit  = 20
	MinWidth  = 180
	MaxWidth  = 1200
	MinHeight = 200
)

// Chrome tokens in the order they are emitted.
const (
	ChromeNoHeader    = "noheader"
	ChromeNoFooter    = "nofooter"
	ChromeNoBorders   = "noborders"
	ChromeNoScrollbar = "noscrollbar"
	ChromeTransparent = "transparent"
)

var chromeOrder = []string{ChromeNoHeader, ChromeNoFooter, ChromeNoBorders, ChromeNoScrollbar, ChromeTransparent}

// Options are the display settings shared by every timeline.
type Options struct {
	limit       int
	width       int
	height      int
	chrome      map[string]bool
	theme       string
	linkColor   string
	borderColor string
	lang        string
}

// SetLimit caps the number of tweets shown, 1 to 20.
func (o *Options) SetLimit(limit int) {
	if v, ok := options.IntInRange(limit, MinLimit, MaxLimit); ok {
		o.limit = v
	}
}

func (o *Options) SetWidth(width int) {
	if v, ok := options.IntInRange(width, MinWidth, MaxWidth); ok {
		o.width = v
	}
}

func (o *Options) SetHeight(height int) {
	if v, ok := options.IntInRange(height, MinHeight, 0); ok {
		o.height = v
	}
}

// AddChrome enables a chrome token; unknown tokens are ignored.
func (o *Options) AddChrome(token string) {
	v, ok := options.Enum(token, chromeOrder...)
	if !ok {
		return
	}
	if o.chrome == nil {
		o.chrome = make(map[string]bool, len(chromeOrder))
	}
	o.chrome[v] = true
}

// Chrome returns the enabled tokens in emit order.
func (o *Options) Chrome() []string {
	var out []string
	for _, token := range chromeOrder {
		if o.chrome[token] {
			out = append(out, token)
		}
	}
	return out
}

func (o *Options) SetTheme(theme string) {
	if v, ok := options.Theme(theme); ok {
		o.theme = v
	}
}

func (o *Options) SetLinkColor(color string) {
	if v, ok := options.HexColor(color); ok {
		o.linkColor = v
	}
}

func (o *Options) SetBorderColor(color string) {
	if v, ok := options.HexColor(color); ok {
		o.borderColor = v
	}
}

func (o *Options) SetLang(lang string) {
	if v := validators.ShortTag.Sanitize(lang); v != "" {
		o.lang = v
	}
}

func (o *Options) Limit() int  { return o.limit }
func (o *Options) Width() int  { return o.width }
func (o *Options) Height() int { return o.height }

func (o *Options) appendTo(d markup.DataAttributes) {
	if o.limit > 0 {
		d.Set("tweet-limit", strconv.Itoa(o.limit))
	}
	if o.width > 0 {
		d.Set("width", strconv.Itoa(o.width))
	}
	if o.height > 0 {
		d.Set("height", strconv.Itoa(o.height))
	}
	if chrome := o.Chrome(); len(chrome) > 0 {
		d.Set("chrome", strings.Join(chrome, " "))
	}
	d.Set("theme", o.theme)
	if o.linkColor != "" {
		d.Set("link-color", "#"+o.linkColor)
	}
	if o.borderColor != "" {
		d.Set("border-color", "#"+o.borderColor)
	}
	d.Set("lang", o.lang)
}

// OptionsFromValues reads limit, width, height, chrome (list or space/comma
// separated), the individual chrome flags, theme, link_color, border_color,
// and lang.
func OptionsFromValues(values map[string]any) Options {
	var o Options
	if v, ok := options.Int(values["limit"]); ok {
		o.SetLimit(v)
	}
	if v, ok := options.Int(values["width"]); ok {
		o.SetWidth(v)
	}
	if v, ok := options.Int(values["height"]); ok {
		o.SetHeight(v)
	}
	for _, item := range options.StringList(values["chrome"]) {
		for _, token := range strings.Fields(item) {
			o.AddChrome(token)
		}
	}
	for _, token := range chromeOrder {
		if v, ok := options.Bool(values[token]); ok && v {
			o.AddChrome(token)
		}
	}
	if v, ok := options.String(values["theme"]); ok {
		o.SetTheme(v)
	}
	if v, ok := options.String(values["link_color"]); ok {
		o.SetLinkColor(v)
	}
	if v, ok := options.String(values["border_color"]); ok {
		o.SetBorderColor(v)
	}
	if v, ok := options.String(values["lang"]); ok {
		o.SetLang(v)
	}
	return o
}
