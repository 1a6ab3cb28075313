package shortcode

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

// RegisterBuiltIns registers the built-in shortcode definitions on the provided registry.
// When names is empty, every built-in shortcode is registered.
func RegisterBuiltIns(registry interfaces.ShortcodeRegistry, names []string, opts ...BuiltInOptions) error {
	if registry == nil {
		return ErrRegistryRequired
	}

	definitions := BuiltInDefinitions(opts...)
	if len(names) == 0 {
		for _, def := range definitions {
			if err := registry.Register(def); err != nil {
				return err
			}
		}
		return nil
	}

	available := make(map[string]interfaces.ShortcodeDefinition, len(definitions))
	for _, def := range definitions {
		available[normalizeName(def.Name)] = def
	}
	for _, name := range names {
		key := normalizeName(name)
		if key == "" {
			continue
		}
		def, ok := available[key]
		if !ok {
			return fmt.Errorf("%w: %q", ErrBuiltInNotFound, strings.TrimSpace(name))
		}
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}
