package cards

import (
	"strconv"

	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/options"
)

// New returns an empty card of type t, or nil for unknown types.
func New(t Type) Card {
	switch t {
	case TypeSummary:
		return NewSummary()
	case TypeSummaryLargeImage:
		return NewSummaryLargeImage()
	case TypeProduct:
		return NewProduct()
	case TypeGallery:
		return NewGallery()
	default:
		return nil
	}
}

// FromValues builds a card from raw option values. The "card" key selects the
// type and defaults to summary. Values that fail validation are skipped.
func FromValues(values map[string]any) Card {
	cardType := TypeSummary
	if raw, ok := options.String(values["card"]); ok {
		parsed, valid := ParseType(raw)
		if !valid {
			return nil
		}
		cardType = parsed
	}

	title, _ := options.String(values["title"])
	description, _ := options.String(values["description"])
	site := accounts.FromValue(values["site"])
	creator := accounts.FromValue(values["creator"])

	switch cardType {
	case TypeSummary:
		return NewSummary().
			SetTitle(title).
			SetSite(site).
			SetDescription(description).
			SetImage(ImageFromValue(values["image"])).
			SetCreator(creator)
	case TypeSummaryLargeImage:
		return NewSummaryLargeImage().
			SetTitle(title).
			SetSite(site).
			SetDescription(description).
			SetImage(ImageFromValue(values["image"])).
			SetCreator(creator)
	case TypeProduct:
		card := NewProduct().
			SetTitle(title).
			SetSite(site).
			SetDescription(description).
			SetImage(ImageFromValue(values["image"])).
			SetCreator(creator)
		for i := 1; i <= card.config.MaxDetails; i++ {
			n := strconv.Itoa(i)
			label, _ := options.String(values["label"+n])
			data, _ := options.String(values["data"+n])
			card.AddDetail(label, data)
		}
		return card
	case TypeGallery:
		card := NewGallery().
			SetTitle(title).
			SetSite(site).
			SetDescription(description).
			SetCreator(creator)
		for _, image := range galleryImages(values) {
			card.AddImage(image)
		}
		return card
	}
	return nil
}

func galleryImages(values map[string]any) []*Image {
	var images []*Image
	switch v := values["images"].(type) {
	case []any:
		for _, item := range v {
			if image := ImageFromValue(item); image != nil {
				images = append(images, image)
			}
		}
	case []*Image:
		images = append(images, v...)
	default:
		for _, src := range options.StringList(v) {
			if image := NewImage(src); image != nil {
				images = append(images, image)
			}
		}
	}
	if len(images) > 0 {
		return images
	}
	for i := 0; ; i++ {
		raw, ok := values["image"+strconv.Itoa(i)]
		if !ok {
			break
		}
		if image := ImageFromValue(raw); image != nil {
			images = append(images, image)
		}
	}
	return images
}
