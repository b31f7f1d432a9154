package dbconfig

import "fmt"

// CurrentView is the environment selected at load time and its settings.
type CurrentView struct {
	Env      string   `json:"env"`
	Settings Settings `json:"settings"`
}

// ResolvedConfig is an interpolated document with its current environment
// already normalized. It is not modified after [Load] returns and is safe for
// concurrent use.
type ResolvedConfig struct {
	// DefaultEnv is the interpolated defaultEnv value of the document, if any.
	DefaultEnv string

	document Document
	branches map[string]Branch
	current  CurrentView
}

// GetCurrent returns the current environment and a fresh copy of its
// settings. Repeated calls return equal views.
func (c *ResolvedConfig) GetCurrent() CurrentView {
	return CurrentView{
		Env:      c.current.Env,
		Settings: c.current.Settings.Clone(),
	}
}

// Env returns the branch of the named environment. Branches other than the
// current one are interpolated but only normalized by [Branch.Settings].
func (c *ResolvedConfig) Env(name string) (Branch, bool) {
	b, ok := c.branches[name]
	return b, ok
}

// Envs returns all environment names in sorted order.
func (c *ResolvedConfig) Envs() []string {
	return c.document.Envs()
}

// Document returns a copy of the interpolated document.
func (c *ResolvedConfig) Document() Document {
	return Document(cloneValue(map[string]any(c.document)).(map[string]any))
}

// Load resolves an already decoded document. envName selects the current
// environment explicitly; pass "" to fall back to the selector variable and
// then to the document's defaultEnv.
//
// Either a complete [ResolvedConfig] is returned or an error wrapping one of
// [ErrMalformedURL], [ErrUnknownEnvironment], [ErrNoEnvironmentSelected] or
// [ErrInvalidBranch].
func Load(doc Document, envName string, opts ...Option) (*ResolvedConfig, error) {
	o := newOptions(opts)
	in := interpolator{environ: o.environ, log: o.log}

	interpolated := in.walkMap(doc)
	resolved := Document(interpolated)

	name, err := resolveEnvName(resolved, envName, o.selector, o.environ)
	if err != nil {
		return nil, err
	}

	branches := make(map[string]Branch, len(doc))
	for _, env := range resolved.Envs() {
		branches[env] = newBranch(doc[env], resolved[env])
	}

	settings, err := branches[name].Settings()
	if err != nil {
		return nil, fmt.Errorf("error normalizing environment %q: %w", name, err)
	}

	o.log.Debug().
		Str("env", name).
		Str("driver", settings.String(KeyDriver)).
		Bool("url", branches[name].IsURL()).
		Msg("database configuration resolved")

	return &ResolvedConfig{
		DefaultEnv: resolved.DefaultEnv(),
		document:   resolved,
		branches:   branches,
		current:    CurrentView{Env: name, Settings: settings},
	}, nil
}

// LoadURL builds a [ResolvedConfig] holding a single environment envName
// whose branch is rawURL. The result has the same shape as one produced by
// [Load].
func LoadURL(rawURL, envName string, opts ...Option) (*ResolvedConfig, error) {
	if envName == "" {
		return nil, fmt.Errorf("%w: an environment name is required to load a url", ErrNoEnvironmentSelected)
	}

	return Load(Document{envName: rawURL}, envName, opts...)
}
