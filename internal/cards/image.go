package cards

import (
	"strings"

	"github.com/goliatone/go-cms-social/internal/options"
	"github.com/goliatone/go-cms-social/internal/properties"
)

// Image is a card image reference.
type Image struct {
	src    string
	width  int
	height int
	alt    string
}

// NewImage returns nil when src is empty.
func NewImage(src string) *Image {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil
	}
	return &Image{src: src}
}

// ImageFromValue accepts a URL string or a map with src, width, height, and alt keys.
func ImageFromValue(value any) *Image {
	switch v := value.(type) {
	case *Image:
		return v
	case string:
		return NewImage(v)
	case map[string]any:
		src, _ := options.String(v["src"])
		if src == "" {
			src, _ = options.String(v["url"])
		}
		image := NewImage(src)
		if image == nil {
			return nil
		}
		width, _ := options.NonNegativeInt(v["width"])
		height, _ := options.NonNegativeInt(v["height"])
		image.SetDimensions(width, height)
		if alt, ok := options.String(v["alt"]); ok {
			image.SetAlt(alt)
		}
		return image
	case map[string]string:
		converted := make(map[string]any, len(v))
		for key, val := range v {
			converted[key] = val
		}
		return ImageFromValue(converted)
	}
	return nil
}

// SetDimensions records width and height only when both are positive.
func (i *Image) SetDimensions(width, height int) *Image {
	if width > 0 && height > 0 {
		i.width = width
		i.height = height
	}
	return i
}

// SetAlt stores trimmed alternative text. Empty text is a no-op.
func (i *Image) SetAlt(alt string) *Image {
	if trimmed := strings.TrimSpace(alt); trimmed != "" {
		i.alt = trimmed
	}
	return i
}

func (i *Image) Src() string   { return i.src }
func (i *Image) Width() int    { return i.width }
func (i *Image) Height() int   { return i.height }
func (i *Image) Alt() string   { return i.alt }
func (i *Image) HasSize() bool { return i.width > 0 && i.height > 0 }

// CardProperties returns the bare src when no alt text is set, or a nested
// {src, alt} set otherwise.
func (i *Image) CardProperties() any {
	if i.alt == "" {
		return i.src
	}
	return properties.Of("src", i.src, "alt", i.alt)
}

// meetsMinimum applies cfg to the image. Images without dimensions pass.
func (i *Image) meetsMinimum(cfg Config) bool {
	if !cfg.EnforcesImageMinimum() || !i.HasSize() {
		return true
	}
	return i.width >= cfg.MinImageWidth && i.height >= cfg.MinImageHeight
}
