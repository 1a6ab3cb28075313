package shortcode

import (
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

// Registry is the in-memory interfaces.ShortcodeRegistry. Names are case
// insensitive.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]interfaces.ShortcodeDefinition
	validator   DefinitionValidator
}

// DefinitionValidator checks definitions before they are stored.
type DefinitionValidator interface {
	ValidateDefinition(def interfaces.ShortcodeDefinition) error
}

// NewRegistry returns an empty registry. A nil validator accepts every named
// definition.
func NewRegistry(validator DefinitionValidator) *Registry {
	return &Registry{
		definitions: make(map[string]interfaces.ShortcodeDefinition),
		validator:   validator,
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *Registry) Register(def interfaces.ShortcodeDefinition) error {
	name := normalizeName(def.Name)
	if name == "" {
		return ErrInvalidDefinition
	}
	if r.validator != nil {
		if err := r.validator.ValidateDefinition(def); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.definitions[name]; exists {
		return ErrDuplicateDefinition
	}
	r.definitions[name] = def
	return nil
}

func (r *Registry) Get(name string) (interfaces.ShortcodeDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[normalizeName(name)]
	return def, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// List returns the definitions sorted by name.
func (r *Registry) List() []interfaces.ShortcodeDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]interfaces.ShortcodeDefinition, 0, len(r.definitions))
	for _, def := range r.definitions {
		out = append(out, def)
	}
	slices.SortFunc(out, func(a, b interfaces.ShortcodeDefinition) int {
		return strings.Compare(normalizeName(a.Name), normalizeName(b.Name))
	})
	return out
}

func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.definitions, normalizeName(name))
}

var _ interfaces.ShortcodeRegistry = (*Registry)(nil)
