// Package tracking renders website conversion tracking pixels.
package tracking

import (
	"html/template"

	"github.com/goliatone/go-cms-social/internal/intents"
	"github.com/goliatone/go-cms-social/internal/markup"
	"github.com/goliatone/go-cms-social/internal/validators"
)

var endpoints = []string{
	"https://analytics.twitter.com/i/adsct",
	"https://t.co/i/adsct",
}

// Pixel accumulates conversion tracking ids for one page render.
type Pixel struct {
	ids  []string
	seen map[string]struct{}
}

func NewPixel(ids ...string) *Pixel {
	p := &Pixel{}
	for _, id := range ids {
		p.AddID(id)
	}
	return p
}

// AddID appends a short tag id. Invalid and duplicate ids are ignored.
func (p *Pixel) AddID(raw string) *Pixel {
	id := validators.ShortTag.Sanitize(raw)
	if id == "" {
		return p
	}
	if p.seen == nil {
		p.seen = make(map[string]struct{})
	}
	if _, dup := p.seen[id]; dup {
		return p
	}
	p.seen[id] = struct{}{}
	p.ids = append(p.ids, id)
	return p
}

func (p *Pixel) IDs() []string {
	return append([]string(nil), p.ids...)
}

// URLs returns both beacon URLs for each id.
func (p *Pixel) URLs() []string {
	out := make([]string, 0, len(p.ids)*len(endpoints))
	for _, id := range p.ids {
		query := "?txn_id=" + intents.Escape(id) + "&p_id=Twitter"
		for _, endpoint := range endpoints {
			out = append(out, endpoint+query)
		}
	}
	return out
}

// Markup renders one hidden 1x1 image per beacon URL.
func (p *Pixel) Markup() template.HTML {
	fragments := make([]template.HTML, 0, len(p.ids)*len(endpoints))
	for _, u := range p.URLs() {
		fragments = append(fragments, markup.ImageElement(u, "", 1, 1))
	}
	return markup.Join(fragments...)
}
