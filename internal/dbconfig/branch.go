package dbconfig

import "fmt"

type branchKind int

const (
	settingsBranch branchKind = iota
	urlBranch
	invalidBranch
)

// Branch is the interpolated value of one environment. Its kind is fixed by
// the shape the environment was declared with, not by what interpolation
// produced: a declared string or {"ENV": "VAR"} reference is a connection
// URL, a declared object (or null) is a settings map.
type Branch struct {
	kind     branchKind
	url      string
	settings Settings
	declared any
}

// newBranch builds a Branch from the declared value and its interpolated
// counterpart.
func newBranch(declared, interpolated any) Branch {
	if m, ok := asMap(declared); ok {
		if _, ok := envReference(m); ok {
			s, _ := interpolated.(string)
			return Branch{kind: urlBranch, url: s, declared: declared}
		}
		im, _ := asMap(interpolated)
		return Branch{kind: settingsBranch, settings: Settings(im), declared: declared}
	}

	switch declared.(type) {
	case string:
		s, _ := interpolated.(string)
		return Branch{kind: urlBranch, url: s, declared: declared}
	case nil:
		return Branch{kind: settingsBranch, settings: Settings{}}
	default:
		return Branch{kind: invalidBranch, declared: declared}
	}
}

// IsURL reports whether the branch was declared as a connection string.
func (b Branch) IsURL() bool {
	return b.kind == urlBranch
}

// URL returns the interpolated connection string of a URL branch, or "".
func (b Branch) URL() string {
	return b.url
}

// Settings normalizes the branch. URL branches are parsed with [ParseURL];
// settings branches are returned as a copy.
func (b Branch) Settings() (Settings, error) {
	switch b.kind {
	case urlBranch:
		return ParseURL(b.url)
	case settingsBranch:
		if b.settings == nil {
			return Settings{}, nil
		}
		return b.settings.Clone(), nil
	default:
		return nil, fmt.Errorf("%w: got %T, want string or object", ErrInvalidBranch, b.declared)
	}
}

func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case Settings:
		return v, true
	default:
		return nil, false
	}
}
