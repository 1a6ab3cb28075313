package timelines

import (
	"html/template"
	"net/url"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/intents"
	"github.com/goliatone/go-cms-social/internal/markup"
	"github.com/goliatone/go-cms-social/internal/options"
	"github.com/goliatone/go-cms-social/internal/util"
	"github.com/goliatone/go-cms-social/internal/validators"
)

const baseURL = "https://twitter.com/"

// Timeline is the behavior shared by every embedded timeline.
type Timeline interface {
	Href() string
	DataAttributes() markup.DataAttributes
	Markup() template.HTML
}

func render(t Timeline, class, text string) template.HTML {
	href := t.Href()
	if href == "" {
		return ""
	}
	return markup.AnchorElement(href, text, markup.Attributes{Class: class}, t.DataAttributes())
}

func attributes(href string, o *Options, extra func(markup.DataAttributes)) markup.DataAttributes {
	d := markup.DataAttributes{}
	if href == "" {
		return d
	}
	if extra != nil {
		extra(d)
	}
	o.appendTo(d)
	return d
}

// Profile shows the tweets of one account.
type Profile struct {
	Options
	account *accounts.Account
}

// NewProfile returns a profile timeline. Only screen-name accounts render.
func NewProfile(account *accounts.Account) *Profile {
	return &Profile{account: account}
}

func (p *Profile) Account() *accounts.Account { return p.account }

func (p *Profile) Href() string {
	return p.account.ProfileURL()
}

func (p *Profile) DataAttributes() markup.DataAttributes {
	return attributes(p.Href(), &p.Options, nil)
}

func (p *Profile) Markup() template.HTML {
	return render(p, "twitter-timeline", "Tweets by "+p.account.Mention())
}

// ProfileFromValues reads screen_name plus the display options.
func ProfileFromValues(values map[string]any) *Profile {
	screenName, _ := options.String(values["screen_name"])
	p := NewProfile(accounts.FromScreenName(screenName))
	p.Options = OptionsFromValues(values)
	return p
}

// List shows the tweets of a list, identified either by owner and slug or by
// numeric id.
type List struct {
	Options
	owner *accounts.Account
	slug  string
	id    string
}

// NewList returns a list timeline identified by owner and slug.
func NewList(owner *accounts.Account, listSlug string) *List {
	l := &List{}
	if owner != nil && owner.ScreenName() != "" {
		l.owner = owner
	}
	if normalized, err := slug.Normalize(listSlug); err == nil && normalized != "" {
		l.slug = normalized
	}
	return l
}

// NewListByID returns a list timeline identified by the numeric list id.
func NewListByID(id string) *List {
	return &List{id: validators.NumericID.Sanitize(id)}
}

func (l *List) Slug() string { return l.slug }
func (l *List) ID() string   { return l.id }

func (l *List) Href() string {
	if l.id != "" {
		return baseURL + "i/lists/" + l.id
	}
	if l.owner == nil || l.slug == "" {
		return ""
	}
	return l.owner.ProfileURL() + "/lists/" + l.slug
}

func (l *List) DataAttributes() markup.DataAttributes {
	return attributes(l.Href(), &l.Options, nil)
}

func (l *List) Markup() template.HTML {
	text := "A Twitter List"
	if l.owner != nil && l.id == "" {
		text += " by " + l.owner.Mention()
	}
	return render(l, "twitter-timeline", text)
}

// ListFromValues reads id, or screen_name and slug, plus the display options.
func ListFromValues(values map[string]any) *List {
	var l *List
	if id, ok := options.String(values["id"]); ok && validators.NumericID.IsValid(id) {
		l = NewListByID(id)
	} else {
		owner, _ := options.String(values["screen_name"])
		listSlug, _ := options.String(values["slug"])
		l = NewList(accounts.FromScreenName(owner), listSlug)
	}
	l.Options = OptionsFromValues(values)
	return l
}

// Search shows results of a search widget configured on twitter.com.
type Search struct {
	Options
	widgetID string
	query    string
}

// NewSearch returns a search timeline for the widget id and optional query.
func NewSearch(widgetID, query string) *Search {
	s := &Search{widgetID: validators.NumericID.Sanitize(widgetID)}
	s.query, _ = options.String(query)
	return s
}

func (s *Search) WidgetID() string { return s.widgetID }
func (s *Search) Query() string    { return s.query }

func (s *Search) Href() string {
	if s.widgetID == "" {
		return ""
	}
	if s.query == "" {
		return baseURL + "search"
	}
	return baseURL + "search?q=" + intents.Escape(s.query)
}

func (s *Search) DataAttributes() markup.DataAttributes {
	return attributes(s.Href(), &s.Options, func(d markup.DataAttributes) {
		d.Set("widget-id", s.widgetID)
	})
}

func (s *Search) Markup() template.HTML {
	text := "Tweets"
	if s.query != "" {
		text += " about " + s.query
	}
	return render(s, "twitter-timeline", text)
}

// SearchFromValues reads widget_id and query plus the display options.
func SearchFromValues(values map[string]any) *Search {
	widgetID, _ := options.String(values["widget_id"])
	query, _ := options.String(util.FirstValue(values, "query", "q"))
	s := NewSearch(widgetID, query)
	s.Options = OptionsFromValues(values)
	return s
}

// Collection shows a curated collection, as a list or as a grid.
type Collection struct {
	Options
	id   string
	grid bool
}

func NewCollection(id string) *Collection {
	return &Collection{id: validators.NumericID.Sanitize(id)}
}

func (c *Collection) ID() string { return c.id }

// SetGrid switches to the grid display.
func (c *Collection) SetGrid(grid bool) *Collection {
	c.grid = grid
	return c
}

func (c *Collection) Href() string {
	if c.id == "" {
		return ""
	}
	return baseURL + "i/timelines/" + url.PathEscape(c.id)
}

func (c *Collection) DataAttributes() markup.DataAttributes {
	return attributes(c.Href(), &c.Options, nil)
}

func (c *Collection) Markup() template.HTML {
	class := "twitter-timeline"
	if c.grid {
		class = "twitter-grid"
	}
	return render(c, class, "A Twitter Collection")
}

// CollectionFromValues reads id, display (grid) or grid, plus the display options.
func CollectionFromValues(values map[string]any) *Collection {
	id, _ := options.String(values["id"])
	c := NewCollection(id)
	if v, ok := options.Bool(values["grid"]); ok {
		c.SetGrid(v)
	} else if v, ok := options.Enum(values["display"], "grid", "list"); ok {
		c.SetGrid(v == "grid")
	}
	c.Options = OptionsFromValues(values)
	return c
}

var (
	_ Timeline = (*Profile)(nil)
	_ Timeline = (*List)(nil)
	_ Timeline = (*Search)(nil)
	_ Timeline = (*Collection)(nil)
)
