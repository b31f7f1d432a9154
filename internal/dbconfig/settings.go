package dbconfig

import (
	"fmt"
	"strconv"
)

// Well-known [Settings] keys produced by [ParseURL].
const (
	KeyDriver   = "driver"
	KeyUser     = "user"
	KeyPassword = "password"
	KeyHost     = "host"
	KeyPort     = "port"
	KeyDatabase = "database"
	KeyFilename = "filename"
)

const redactedPassword = "******"

// Settings is the normalized configuration of one environment: a flat map of
// resolved values such as driver, host, port, database or filename. Unknown
// keys are passed through untouched.
type Settings map[string]any

// String returns the value stored under key formatted as a string, or "" when
// the key is absent or null.
func (s Settings) String(key string) string {
	v, ok := s[key]
	if !ok || v == nil {
		return ""
	}

	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}

// Int returns the value stored under key as an int. JSON numbers and numeric
// strings are accepted. ok is false when the key is absent or not numeric.
func (s Settings) Int(key string) (n int, ok bool) {
	switch value := s[key].(type) {
	case int:
		return value, true
	case float64:
		return int(value), value == float64(int(value))
	case string:
		n, err := strconv.Atoi(value)
		return n, err == nil
	default:
		return 0, false
	}
}

// Has reports whether key is present, even with an empty or null value.
func (s Settings) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	if s == nil {
		return nil
	}

	return Settings(cloneValue(map[string]any(s)).(map[string]any))
}

// Redacted returns a deep copy of s with a non-empty password masked.
func (s Settings) Redacted() Settings {
	c := s.Clone()
	if c.String(KeyPassword) != "" {
		c[KeyPassword] = redactedPassword
	}

	return c
}
