package dbconfig

import (
	"regexp"

	"github.com/MKhiriev/go-db-config/internal/logger"
)

// envReferenceKey is the single key of a {"ENV": "VAR"} reference object.
const envReferenceKey = "ENV"

// placeholderPattern matches ${VAR} tokens.
var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Interpolate returns a copy of value with environment references replaced
// by values from environ. It walks strings, []any and map[string]any
// recursively; keys are never rewritten and other scalars pass through.
//
// Two reference forms are recognized:
//   - ${VAR} anywhere inside a string;
//   - an object whose only key is "ENV", e.g. {"ENV": "DATABASE_URL"}, which
//     is replaced as a whole by the raw value of the variable.
//
// A variable missing from environ expands to "". Branches that are never
// selected must still load, so this is not an error.
func Interpolate(value any, environ map[string]string) any {
	return interpolator{environ: environ, log: logger.Nop()}.walk(value)
}

type interpolator struct {
	environ map[string]string
	log     *logger.Logger
}

func (in interpolator) walk(value any) any {
	switch v := value.(type) {
	case string:
		return in.expand(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = in.walk(elem)
		}
		return out
	case map[string]any:
		if name, ok := envReference(v); ok {
			return in.lookup(name)
		}
		return in.walkMap(v)
	case Settings:
		if name, ok := envReference(v); ok {
			return in.lookup(name)
		}
		return Settings(in.walkMap(v))
	case Document:
		return Document(in.walkMap(v))
	default:
		return value
	}
}

func (in interpolator) walkMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, elem := range m {
		out[key] = in.walk(elem)
	}

	return out
}

func (in interpolator) expand(s string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(token string) string {
		return in.lookup(placeholderPattern.FindStringSubmatch(token)[1])
	})
}

func (in interpolator) lookup(name string) string {
	value, ok := in.environ[name]
	if !ok || value == "" {
		in.log.Debug().Str("variable", name).Msg("environment variable is empty")
	}

	return value
}

// envReference reports whether m is a {"ENV": "VAR"} reference object and
// returns the variable name.
func envReference(m map[string]any) (string, bool) {
	if len(m) != 1 {
		return "", false
	}

	name, ok := m[envReferenceKey].(string)
	return name, ok
}

// cloneValue deep-copies the maps and slices of a decoded JSON value.
func cloneValue(value any) any {
	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = cloneValue(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, elem := range v {
			out[key] = cloneValue(elem)
		}
		return out
	case Settings:
		return Settings(cloneValue(map[string]any(v)).(map[string]any))
	default:
		return value
	}
}
