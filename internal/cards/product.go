package cards

import (
	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/properties"
)

// Product describes a product page with up to two label/value details such as
// price or availability.
type Product struct {
	base
	descriptionPart
	singleImagePart
	detailsPart
	creatorPart
}

// NewProduct returns an empty product card.
func NewProduct() *Product {
	return &Product{base: newBase(TypeProduct)}
}

func (c *Product) SetTitle(title string) *Product {
	c.setTitle(title)
	return c
}

func (c *Product) SetSite(site *accounts.Account) *Product {
	c.setSite(site)
	return c
}

func (c *Product) SetDescription(description string) *Product {
	c.setDescription(description)
	return c
}

func (c *Product) SetImage(image *Image) *Product {
	c.setImage(image, c.config)
	return c
}

func (c *Product) SetCreator(creator *accounts.Account) *Product {
	c.setCreator(creator)
	return c
}

// AddDetail appends a label/value pair. Once the card holds the maximum number
// of details, or when label is already present, the call is a no-op.
func (c *Product) AddDetail(label, value string) *Product {
	c.addDetail(label, value, c.config.MaxDetails)
	return c
}

// Properties serializes description, image, label1/data1..labelN/dataN, then creator.
func (c *Product) Properties() properties.Properties {
	props := c.base.properties()
	if props.IsEmpty() {
		return props
	}
	c.descriptionPart.appendTo(&props)
	c.singleImagePart.appendTo(&props)
	c.detailsPart.appendTo(&props)
	c.creatorPart.appendTo(&props)
	return props
}

var _ Card = (*Product)(nil)
