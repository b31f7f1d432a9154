package dbconfig

import "slices"

// DefaultEnvKey is the reserved document key naming the fallback environment.
const DefaultEnvKey = "defaultEnv"

// Document is a decoded configuration document: environment names mapped to
// their branches, plus the optional [DefaultEnvKey].
type Document map[string]any

// DefaultEnv returns the document's defaultEnv value, or "" when it is
// missing or not a string.
func (d Document) DefaultEnv() string {
	name, _ := d[DefaultEnvKey].(string)
	return name
}

// HasEnv reports whether name is an environment of d.
func (d Document) HasEnv(name string) bool {
	if name == DefaultEnvKey {
		return false
	}

	_, ok := d[name]
	return ok
}

// Envs returns the environment names of d in sorted order.
func (d Document) Envs() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		if name != DefaultEnvKey {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	return names
}
