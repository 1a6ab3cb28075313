// Package properties provides the insertion-ordered key/value set produced by
// cards, intents, and widgets when they serialize themselves.
package properties

// Properties is an insertion-ordered mapping whose values are either string or
// nested Properties. The zero value is ready to use.
type Properties struct {
	keys   []string
	values map[string]any
}

// New returns an empty property set.
func New() Properties {
	return Properties{}
}

// Set stores a string value. Overwriting a key keeps its original position.
func (p *Properties) Set(key, value string) {
	p.set(key, value)
}

// SetNested stores a nested property set. Empty nested sets are ignored.
func (p *Properties) SetNested(key string, value Properties) {
	if value.IsEmpty() {
		return
	}
	p.set(key, value)
}

// SetValue stores either a string or a Properties value; other types are ignored.
func (p *Properties) SetValue(key string, value any) {
	switch v := value.(type) {
	case string:
		p.Set(key, v)
	case Properties:
		p.SetNested(key, v)
	}
}

func (p *Properties) set(key string, value any) {
	if key == "" {
		return
	}
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the stored value.
func (p Properties) Get(key string) (any, bool) {
	value, ok := p.values[key]
	return value, ok
}

// String returns the value stored under key when it is a flat string.
func (p Properties) String(key string) string {
	if value, ok := p.values[key].(string); ok {
		return value
	}
	return ""
}

// Has reports whether key is present.
func (p Properties) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (p Properties) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of stored keys.
func (p Properties) Len() int {
	return len(p.keys)
}

// IsEmpty reports whether no key is stored.
func (p Properties) IsEmpty() bool {
	return len(p.keys) == 0
}

// Each visits entries in insertion order until fn returns false.
func (p Properties) Each(fn func(key string, value any) bool) {
	for _, key := range p.keys {
		if !fn(key, p.values[key]) {
			return
		}
	}
}

// Map converts the set into a plain map, converting nested sets recursively.
func (p Properties) Map() map[string]any {
	out := make(map[string]any, len(p.keys))
	for _, key := range p.keys {
		switch v := p.values[key].(type) {
		case Properties:
			out[key] = v.Map()
		default:
			out[key] = v
		}
	}
	return out
}

// Equal reports whether both sets hold the same entries in the same order.
func (p Properties) Equal(other Properties) bool {
	if len(p.keys) != len(other.keys) {
		return false
	}
	for i, key := range p.keys {
		if other.keys[i] != key {
			return false
		}
		switch v := p.values[key].(type) {
		case Properties:
			nested, ok := other.values[key].(Properties)
			if !ok || !v.Equal(nested) {
				return false
			}
		case string:
			s, ok := other.values[key].(string)
			if !ok || s != v {
				return false
			}
		}
	}
	return true
}

// Of builds a flat property set from alternating key/value pairs.
func Of(pairs ...string) Properties {
	var p Properties
	for i := 0; i+1 < len(pairs); i += 2 {
		p.Set(pairs[i], pairs[i+1])
	}
	return p
}
