package dbconfig

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"dario.cat/mergo"
)

// ParseURL parses a connection string of the form
//
//	scheme://[user[:password]@]host[:port]/database[?query]
//
// into [Settings]. The scheme becomes "driver", the path without its leading
// slash becomes "database" and the port, when present, is stored as an int.
// "user" and "password" are only set when a credentials segment exists; an
// empty password ("user:@host") yields "" rather than an absent key.
//
// Query parameters are added as extra string entries. They never override a
// value derived from the scheme, authority or path.
//
// Credentials must be percent-encoded: a password containing a raw '%', '#',
// '@' or space is rejected as malformed. Errors never include the password.
func ParseURL(rawURL string) (Settings, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		// the parser's own message quotes the raw input
		return nil, fmt.Errorf("%w: %q cannot be parsed", ErrMalformedURL, redactURL(rawURL))
	}

	if u.Scheme == "" || u.Host == "" || u.Hostname() == "" {
		return nil, fmt.Errorf("%w: %q has no scheme or host", ErrMalformedURL, redactURL(rawURL))
	}

	settings := Settings{
		KeyDriver:   u.Scheme,
		KeyHost:     u.Hostname(),
		KeyDatabase: strings.TrimPrefix(u.Path, "/"),
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid port %q", ErrMalformedURL, p)
		}
		settings[KeyPort] = port
	}

	if u.User != nil {
		settings[KeyUser] = u.User.Username()
		if password, ok := u.User.Password(); ok {
			settings[KeyPassword] = password
		}
	}

	query := Settings{}
	for key, values := range u.Query() {
		if len(values) > 0 {
			query[key] = values[len(values)-1]
		}
	}

	// derived values are non-nil even when empty, so they are never replaced
	if err := mergo.Merge(&settings, query, mergo.WithoutDereference); err != nil {
		return nil, fmt.Errorf("%w: merging query parameters: %w", ErrMalformedURL, err)
	}

	return settings, nil
}

// redactURL hides the password of a connection string for error messages.
func redactURL(rawURL string) string {
	scheme, rest, ok := strings.Cut(rawURL, "://")
	if !ok {
		return rawURL
	}

	at := strings.LastIndex(rest, "@")
	if at < 0 {
		return rawURL
	}
	creds, host := rest[:at], rest[at+1:]

	user, _, hasPassword := strings.Cut(creds, ":")
	if !hasPassword {
		return rawURL
	}

	return scheme + "://" + user + ":" + redactedPassword + "@" + host
}
