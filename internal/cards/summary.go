package cards

import (
	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/properties"
)

// Summary is the default card: title, description, and a thumbnail image.
type Summary struct {
	base
	descriptionPart
	singleImagePart
	creatorPart
}

// NewSummary returns an empty summary card.
func NewSummary() *Summary {
	return &Summary{base: newBase(TypeSummary)}
}

func (c *Summary) SetTitle(title string) *Summary {
	c.setTitle(title)
	return c
}

func (c *Summary) SetSite(site *accounts.Account) *Summary {
	c.setSite(site)
	return c
}

func (c *Summary) SetDescription(description string) *Summary {
	c.setDescription(description)
	return c
}

// SetImage stores image unless its dimensions fall below the summary minimum.
func (c *Summary) SetImage(image *Image) *Summary {
	c.setImage(image, c.config)
	return c
}

func (c *Summary) SetCreator(creator *accounts.Account) *Summary {
	c.setCreator(creator)
	return c
}

// Properties serializes the card as card, title, site, description, image, creator.
func (c *Summary) Properties() properties.Properties {
	return summaryProperties(&c.base, &c.descriptionPart, &c.singleImagePart, &c.creatorPart)
}

// SummaryLargeImage renders the summary layout with a prominent image.
type SummaryLargeImage struct {
	base
	descriptionPart
	singleImagePart
	creatorPart
}

// NewSummaryLargeImage returns an empty summary_large_image card.
func NewSummaryLargeImage() *SummaryLargeImage {
	return &SummaryLargeImage{base: newBase(TypeSummaryLargeImage)}
}

func (c *SummaryLargeImage) SetTitle(title string) *SummaryLargeImage {
	c.setTitle(title)
	return c
}

func (c *SummaryLargeImage) SetSite(site *accounts.Account) *SummaryLargeImage {
	c.setSite(site)
	return c
}

func (c *SummaryLargeImage) SetDescription(description string) *SummaryLargeImage {
	c.setDescription(description)
	return c
}

func (c *SummaryLargeImage) SetImage(image *Image) *SummaryLargeImage {
	c.setImage(image, c.config)
	return c
}

func (c *SummaryLargeImage) SetCreator(creator *accounts.Account) *SummaryLargeImage {
	c.setCreator(creator)
	return c
}

func (c *SummaryLargeImage) Properties() properties.Properties {
	return summaryProperties(&c.base, &c.descriptionPart, &c.singleImagePart, &c.creatorPart)
}

func summaryProperties(b *base, d *descriptionPart, img *singleImagePart, cr *creatorPart) properties.Properties {
	props := b.properties()
	if props.IsEmpty() {
		return props
	}
	d.appendTo(&props)
	img.appendTo(&props)
	cr.appendTo(&props)
	return props
}

var (
	_ Card = (*Summary)(nil)
	_ Card = (*SummaryLargeImage)(nil)
)
