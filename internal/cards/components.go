package cards

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/properties"
)

// SanitizeTitle trims surrounding whitespace.
func SanitizeTitle(title string) string {
	return strings.TrimSpace(title)
}

// SanitizeDescription trims surrounding whitespace and collapses internal runs
// of whitespace so multi-line excerpts fit in a single attribute.
func SanitizeDescription(description string) string {
	return strings.Join(strings.Fields(description), " ")
}

// base holds the fields shared by every card.
type base struct {
	cardType Type
	config   Config
	title    string
	site     *accounts.Account
}

func newBase(t Type) base {
	cfg, _ := ConfigFor(t)
	return base{cardType: t, config: cfg}
}

func (b *base) Type() Type                  { return b.cardType }
func (b *base) Title() string               { return b.title }
func (b *base) Site() *accounts.Account     { return b.site }
func (b *base) Config() Config              { return b.config }
func (b *base) setTitle(title string)       { setIfNotEmpty(&b.title, SanitizeTitle(title)) }
func (b *base) setSite(a *accounts.Account) { setAccount(&b.site, a) }

func (b *base) properties() properties.Properties {
	var props properties.Properties
	if _, ok := ConfigFor(b.cardType); !ok {
		return props
	}
	props.Set("card", string(b.cardType))
	if b.title != "" {
		props.Set("title", b.title)
	}
	if b.site != nil {
		props.SetValue("site", b.site.CardValue())
	}
	return props
}

// descriptionPart is embedded by cards that carry a description.
type descriptionPart struct {
	description string
}

func (d *descriptionPart) Description() string { return d.description }

func (d *descriptionPart) setDescription(description string) {
	setIfNotEmpty(&d.description, SanitizeDescription(description))
}

func (d *descriptionPart) appendTo(props *properties.Properties) {
	if d.description != "" {
		props.Set("description", d.description)
	}
}

// creatorPart is embedded by cards that credit a content creator.
type creatorPart struct {
	creator *accounts.Account
}

func (c *creatorPart) Creator() *accounts.Account { return c.creator }

func (c *creatorPart) setCreator(a *accounts.Account) { setAccount(&c.creator, a) }

func (c *creatorPart) appendTo(props *properties.Properties) {
	if c.creator != nil {
		props.SetValue("creator", c.creator.CardValue())
	}
}

// singleImagePart is embedded by cards that display one image.
type singleImagePart struct {
	image *Image
}

func (s *singleImagePart) Image() *Image { return s.image }

func (s *singleImagePart) setImage(image *Image, cfg Config) {
	if image == nil || !image.meetsMinimum(cfg) {
		return
	}
	s.image = image
}

func (s *singleImagePart) appendTo(props *properties.Properties) {
	if s.image != nil {
		props.SetValue("image", s.image.CardProperties())
	}
}

// multipleImagesPart is embedded by cards that display several images.
type multipleImagesPart struct {
	images []*Image
}

func (m *multipleImagesPart) Images() []*Image {
	out := make([]*Image, len(m.images))
	copy(out, m.images)
	return out
}

func (m *multipleImagesPart) addImage(image *Image, cfg Config) bool {
	if image == nil || !image.meetsMinimum(cfg) {
		return false
	}
	if cfg.MaxImages > 0 && len(m.images) >= cfg.MaxImages {
		return false
	}
	m.images = append(m.images, image)
	return true
}

func (m *multipleImagesPart) appendTo(props *properties.Properties) {
	for i, image := range m.images {
		props.SetValue("image"+strconv.Itoa(i), image.CardProperties())
	}
}

// Detail is a label/value pair displayed by product cards.
type Detail struct {
	Label string
	Value string
}

// detailsPart is embedded by cards that list label/value pairs.
type detailsPart struct {
	details []Detail
}

func (d *detailsPart) Details() []Detail {
	out := make([]Detail, len(d.details))
	copy(out, d.details)
	return out
}

func (d *detailsPart) addDetail(label, value string, max int) bool {
	label = strings.TrimSpace(label)
	value = strings.TrimSpace(value)
	if label == "" || value == "" {
		return false
	}
	if max > 0 && len(d.details) >= max {
		return false
	}
	for _, existing := range d.details {
		if existing.Label == label {
			return false
		}
	}
	d.details = append(d.details, Detail{Label: label, Value: value})
	return true
}

func (d *detailsPart) appendTo(props *properties.Properties) {
	for i, detail := range d.details {
		n := strconv.Itoa(i + 1)
		props.Set("label"+n, detail.Label)
		props.Set("data"+n, detail.Value)
	}
}

func setIfNotEmpty(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func setAccount(target **accounts.Account, account *accounts.Account) {
	if account.IsValid() {
		*target = account
	}
}
