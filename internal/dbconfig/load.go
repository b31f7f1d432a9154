package dbconfig

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadBytes decodes a JSON document and resolves it with [Load]. A document
// that is not a JSON object fails with [ErrSyntax]; the decoder error is
// kept in the chain.
func LoadBytes(data []byte, envName string, opts ...Option) (*ResolvedConfig, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	if doc == nil {
		return nil, fmt.Errorf("%w: document must be a JSON object", ErrSyntax)
	}

	return Load(doc, envName, opts...)
}

// LoadFile reads the JSON document at path and resolves it with [LoadBytes].
func LoadFile(path, envName string, opts ...Option) (*ResolvedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg, err := LoadBytes(data, envName, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}

	return cfg, nil
}
