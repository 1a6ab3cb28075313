// Package cards models Twitter card payloads. Cards are built once from raw
// input, mutated through validating setters, and serialized on demand into an
// ordered property set that drives twitter:* meta tag output.
package cards

import (
	"strings"

	"github.com/goliatone/go-cms-social/internal/properties"
)

// Type names a card layout.
type Type string

const (
	TypeSummary           Type = "summary"
	TypeSummaryLargeImage Type = "summary_large_image"
	TypeProduct           Type = "product"
	TypeGallery           Type = "gallery"
)

// Config holds the per-type limits enforced by card setters. Zero minimums mean
// the type does not enforce image dimensions.
type Config struct {
	MinImageWidth  int
	MinImageHeight int
	MaxImages      int
	MaxDetails     int
}

var typeConfigs = map[Type]Config{
	TypeSummary:           {MinImageWidth: 144, MinImageHeight: 144, MaxImages: 1},
	TypeSummaryLargeImage: {MinImageWidth: 300, MinImageHeight: 157, MaxImages: 1},
	TypeProduct:           {MinImageWidth: 160, MinImageHeight: 160, MaxImages: 1, MaxDetails: 2},
	TypeGallery:           {MaxImages: 4},
}

// ConfigFor returns the limits for t.
func ConfigFor(t Type) (Config, bool) {
	cfg, ok := typeConfigs[t]
	return cfg, ok
}

// ParseType matches raw case-insensitively against the known card types.
func ParseType(raw string) (Type, bool) {
	candidate := Type(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := typeConfigs[candidate]; !ok {
		return "", false
	}
	return candidate, true
}

// EnforcesImageMinimum reports whether both minimums are configured.
func (c Config) EnforcesImageMinimum() bool {
	return c.MinImageWidth > 0 && c.MinImageHeight > 0
}

// Card is implemented by every card subtype.
type Card interface {
	Type() Type
	Properties() properties.Properties
}
