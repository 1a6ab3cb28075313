package cards

import (
	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/properties"
)

// Gallery showcases up to four images.
type Gallery struct {
	base
	descriptionPart
	multipleImagesPart
	creatorPart
}

// NewGallery returns an empty gallery card.
func NewGallery() *Gallery {
	return &Gallery{base: newBase(TypeGallery)}
}

func (c *Gallery) SetTitle(title string) *Gallery {
	c.setTitle(title)
	return c
}

func (c *Gallery) SetSite(site *accounts.Account) *Gallery {
	c.setSite(site)
	return c
}

func (c *Gallery) SetDescription(description string) *Gallery {
	c.setDescription(description)
	return c
}

// AddImage appends image until the gallery holds four images.
func (c *Gallery) AddImage(image *Image) *Gallery {
	c.addImage(image, c.config)
	return c
}

func (c *Gallery) SetCreator(creator *accounts.Account) *Gallery {
	c.setCreator(creator)
	return c
}

// Properties serializes description, image0..imageN, then creator.
func (c *Gallery) Properties() properties.Properties {
	props := c.base.properties()
	if props.IsEmpty() {
		return props
	}
	c.descriptionPart.appendTo(&props)
	c.multipleImagesPart.appendTo(&props)
	c.creatorPart.appendTo(&props)
	return props
}

var _ Card = (*Gallery)(nil)
