package shortcode

import "errors"

var (
	// ErrDuplicateDefinition indicates an attempt to register a shortcode name twice.
	ErrDuplicateDefinition = errors.New("shortcode: duplicate definition")
	// ErrInvalidDefinition occurs when a definition fails schema validation.
	ErrInvalidDefinition = errors.New("shortcode: invalid definition")
	// ErrUnknownShortcode is returned when rendering a name that is not registered.
	ErrUnknownShortcode = errors.New("shortcode: unknown shortcode")
	// ErrMissingParameter indicates a required parameter was absent or rejected.
	ErrMissingParameter = errors.New("shortcode: missing required parameter")
	ErrNotInitialized   = errors.New("shortcode: service not initialized")
	ErrRegistryRequired = errors.New("shortcode: registry is required")
	ErrBuiltInNotFound  = errors.New("shortcode: built-in not found")
)
