package dbconfig

import (
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-db-config/internal/logger"
)

// DefaultEnvSelector is the variable consulted for the current environment
// name when no explicit name is given. It matches the name used by existing
// database.json files and deployment scripts.
const DefaultEnvSelector = "NODE_ENV"

// Option configures [Load], [LoadBytes], [LoadFile] and [LoadURL].
type Option func(*options)

type options struct {
	environ  map[string]string
	selector string
	log      *logger.Logger
}

// WithEnviron sets the environment map used for interpolation and for the
// selector lookup. Without it a snapshot of the process environment is taken
// once per call.
func WithEnviron(environ map[string]string) Option {
	return func(o *options) {
		o.environ = environ
	}
}

// WithEnvSelector overrides [DefaultEnvSelector].
func WithEnvSelector(name string) Option {
	return func(o *options) {
		o.selector = name
	}
}

// WithLogger sets the logger used for debug output. Defaults to [logger.Nop].
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func newOptions(opts []Option) options {
	o := options{
		selector: DefaultEnvSelector,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.environ == nil {
		o.environ = env.ToMap(os.Environ())
	}
	if o.log == nil {
		o.log = logger.Nop()
	}

	return o
}
