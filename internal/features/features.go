// Package features tracks which groups of social markup a site has turned on.
package features

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Feature names.
const (
	Cards            = "cards"
	FollowButton     = "follow-button"
	TweetButton      = "tweet-button"
	EmbeddedTweet    = "embedded-tweet"
	EmbeddedTimeline = "embedded-timeline"
	Tracking         = "tracking"
)

var (
	ErrFeatureNameRequired = errors.New("features: name is required")
	ErrDuplicateFeature    = errors.New("features: duplicate feature")
	ErrUnknownFeature      = errors.New("features: unknown feature")
)

// Definition describes a feature, the shortcodes it provides, and the option
// defaults applied when it renders.
type Definition struct {
	Name        string
	Description string
	Shortcodes  []string
	Defaults    map[string]any
}

// DefaultDefinitions returns the built-in features.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Name:        Cards,
			Description: "Twitter card meta tags for page previews",
		},
		{
			Name:        FollowButton,
			Description: "Follow buttons for site and author accounts",
			Shortcodes:  []string{"twitter_follow"},
			Defaults:    map[string]any{"show_count": true},
		},
		{
			Name:        TweetButton,
			Description: "Tweet buttons and hashtag links",
			Shortcodes:  []string{"twitter_share", "twitter_hashtag"},
		},
		{
			Name:        EmbeddedTweet,
			Description: "Embedded tweets",
			Shortcodes:  []string{"tweet"},
		},
		{
			Name:        EmbeddedTimeline,
			Description: "Embedded profile, list, search, and collection timelines",
			Shortcodes:  []string{"twitter_profile", "twitter_list", "twitter_search", "twitter_collection"},
		},
		{
			Name:        Tracking,
			Description: "Website conversion tracking pixels",
			Shortcodes:  []string{"twitter_tracking"},
		},
	}
}

// Registry holds feature definitions and their enabled state. It is safe for
// concurrent use.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]Definition
	enabled     map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]Definition),
		enabled:     make(map[string]bool),
	}
}

// NewDefaultRegistry returns a registry holding DefaultDefinitions with every
// feature enabled.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, def := range DefaultDefinitions() {
		_ = r.Register(def)
		_ = r.Enable(def.Name)
	}
	return r
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds def disabled.
func (r *Registry) Register(def Definition) error {
	name := normalize(def.Name)
	if name == "" {
		return ErrFeatureNameRequired
	}
	def.Name = name
	def.Shortcodes = slices.Clone(def.Shortcodes)
	def.Defaults = maps.Clone(def.Defaults)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.definitions[name]; exists {
		return ErrDuplicateFeature
	}
	r.definitions[name] = def
	return nil
}

func (r *Registry) Enable(name string) error {
	return r.setEnabled(name, true)
}

func (r *Registry) Disable(name string) error {
	return r.setEnabled(name, false)
}

func (r *Registry) setEnabled(name string, enabled bool) error {
	name = normalize(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.definitions[name]; !ok {
		return ErrUnknownFeature
	}
	r.enabled[name] = enabled
	return nil
}

// IsEnabled reports false for unknown features.
func (r *Registry) IsEnabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled[normalize(name)]
}

// Enabled returns the enabled feature names, sorted.
func (r *Registry) Enabled() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.enabled))
	for name, on := range r.enabled {
		if on {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Names returns every registered feature name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := slices.Collect(maps.Keys(r.definitions))
	slices.Sort(names)
	return names
}

// Get returns a copy of the definition.
func (r *Registry) Get(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[normalize(name)]
	if !ok {
		return Definition{}, false
	}
	def.Shortcodes = slices.Clone(def.Shortcodes)
	def.Defaults = maps.Clone(def.Defaults)
	return def, true
}

// Defaults returns a copy of the feature's option defaults.
func (r *Registry) Defaults(name string) map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.definitions[normalize(name)].Defaults)
}

// Shortcodes returns the shortcode names provided by enabled features, sorted.
func (r *Registry) Shortcodes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for name, def := range r.definitions {
		if r.enabled[name] {
			names = append(names, def.Shortcodes...)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// FeatureForShortcode returns the feature providing shortcode.
func (r *Registry) FeatureForShortcode(shortcode string) (string, bool) {
	shortcode = normalize(shortcode)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name, def := range r.definitions {
		if slices.Contains(def.Shortcodes, shortcode) {
			return name, true
		}
	}
	return "", false
}
