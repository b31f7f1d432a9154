package dbconfig

import "fmt"

// ResolveEnvName picks the current environment of doc. The first non-empty
// candidate wins:
//  1. explicit;
//  2. environ[DefaultEnvSelector];
//  3. the document's "defaultEnv" value.
//
// The chosen name must have a branch in doc.
func ResolveEnvName(doc Document, explicit string, environ map[string]string) (string, error) {
	return resolveEnvName(doc, explicit, DefaultEnvSelector, environ)
}

func resolveEnvName(doc Document, explicit, selector string, environ map[string]string) (string, error) {
	name := explicit
	if name == "" && selector != "" {
		name = environ[selector]
	}
	if name == "" {
		name = doc.DefaultEnv()
	}

	if name == "" {
		return "", fmt.Errorf("%w: pass an environment name, set %s or add %q to the document",
			ErrNoEnvironmentSelected, selector, DefaultEnvKey)
	}

	if !doc.HasEnv(name) {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
	}

	return name, nil
}
