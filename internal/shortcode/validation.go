package shortcode

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-cms-social/internal/options"
	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

const positionalPrefix = "param"

// Validator checks definitions and coerces invocation parameters.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateDefinition requires a name and a schema with unique, typed parameters.
func (v *Validator) ValidateDefinition(def interfaces.ShortcodeDefinition) error {
	err := validation.ValidateStruct(&def,
		validation.Field(&def.Name, validation.Required),
		validation.Field(&def.Schema, validation.By(validateSchema)),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDefinition, def.Name, err)
	}
	return nil
}

func validateSchema(value any) error {
	schema, _ := value.(interfaces.ShortcodeSchema)
	seen := make(map[string]struct{}, len(schema.Params))
	for _, param := range schema.Params {
		name := normalizeName(param.Name)
		if name == "" {
			return validation.NewError("schema_param_name", "parameter name required")
		}
		if _, dup := seen[name]; dup {
			return validation.NewError("schema_param_duplicate", fmt.Sprintf("duplicate parameter %q", name))
		}
		seen[name] = struct{}{}

		switch param.Type {
		case interfaces.ShortcodeParamString,
			interfaces.ShortcodeParamInt,
			interfaces.ShortcodeParamBool,
			interfaces.ShortcodeParamArray,
			interfaces.ShortcodeParamURL:
		default:
			return validation.NewError("schema_param_type", fmt.Sprintf("parameter %q unknown type %q", name, param.Type))
		}
	}
	return nil
}

// CoerceParams maps supplied values onto the definition schema. Parameter
// names are case insensitive. Unknown parameters and values that fail
// coercion or custom validation are dropped so the shortcode renders with its
// defaults. Only a required parameter left without a value is an error.
func (v *Validator) CoerceParams(def interfaces.ShortcodeDefinition, supplied map[string]any) (map[string]any, error) {
	if err := v.ValidateDefinition(def); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(def.Schema.Params))
	allowed := make(map[string]interfaces.ShortcodeParam, len(def.Schema.Params))
	for _, param := range def.Schema.Params {
		name := normalizeName(param.Name)
		allowed[name] = param
		if param.Default != nil {
			out[name] = param.Default
		}
		if value, ok := def.Schema.Defaults[param.Name]; ok && value != nil {
			out[name] = value
		}
	}

	apply := func(param interfaces.ShortcodeParam, value any) {
		coerced, ok := coerceValue(param.Type, value)
		if !ok {
			return
		}
		if param.Validate != nil && param.Validate(coerced) != nil {
			return
		}
		out[normalizeName(param.Name)] = coerced
	}

	// Positional arguments fill schema params in declaration order; named
	// arguments applied afterwards take precedence.
	for key, value := range supplied {
		name := normalizeName(key)
		if _, named := allowed[name]; named {
			continue
		}
		if index, ok := positionalIndex(name); ok && index < len(def.Schema.Params) {
			apply(def.Schema.Params[index], value)
		}
	}
	for key, value := range supplied {
		if param, ok := allowed[normalizeName(key)]; ok {
			apply(param, value)
		}
	}

	for _, param := range def.Schema.Params {
		if !param.Required {
			continue
		}
		if _, ok := out[normalizeName(param.Name)]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingParameter, param.Name)
		}
	}
	return out, nil
}

// positionalIndex maps the parser's param1, param2, ... keys to a zero based index.
func positionalIndex(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, positionalPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

func coerceValue(paramType interfaces.ShortcodeParamType, value any) (any, bool) {
	switch paramType {
	case interfaces.ShortcodeParamString:
		return options.String(value)
	case interfaces.ShortcodeParamInt:
		return options.Int(value)
	case interfaces.ShortcodeParamBool:
		return options.Bool(value)
	case interfaces.ShortcodeParamArray:
		list := options.StringList(value)
		return list, len(list) > 0
	case interfaces.ShortcodeParamURL:
		raw, ok := options.String(value)
		if !ok || !webURL(raw) {
			return nil, false
		}
		return raw, true
	default:
		return nil, false
	}
}

func webURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)
	return scheme == "http" || scheme == "https"
}
