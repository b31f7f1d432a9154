package dbconfig

import "errors"

// Errors returned by the resolver. They are wrapped with additional context,
// so callers should match them with [errors.Is].
var (
	// ErrSyntax indicates that the configuration document is not a valid JSON
	// object. The underlying *json.SyntaxError stays reachable through
	// [errors.As].
	ErrSyntax = errors.New("config syntax error")

	// ErrMalformedURL is returned when a connection string cannot be split
	// into at least a scheme and a host.
	ErrMalformedURL = errors.New("malformed connection url")

	// ErrUnknownEnvironment is returned when the selected environment name
	// has no branch in the document. The error message names the key.
	ErrUnknownEnvironment = errors.New("unknown environment")

	// ErrNoEnvironmentSelected is returned when neither an explicit name, the
	// selector variable nor the document's defaultEnv yields a name.
	ErrNoEnvironmentSelected = errors.New("no environment selected")

	// ErrInvalidBranch is returned when an environment branch is neither a
	// connection string nor a settings object.
	ErrInvalidBranch = errors.New("invalid environment branch")
)
