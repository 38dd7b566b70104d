// Package unoidl models the UNO type-system schema the generator consumes:
// module paths, entity descriptors of the four emitted kinds, and type references.
package unoidl

import (
	"strings"

	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/typegen/util"
)

// ModulePath is an ordered, immutable sequence of module segments, outer to inner.
// The zero value is the root (global) module.
type ModulePath struct {
	segments []string
}

// ParseModulePath splits a dotted name such as "com.sun.star.uno" into a ModulePath.
// The empty string is the root module; empty or non-identifier segments are rejected.
func ParseModulePath(dotted string) (ModulePath, error) {
	if dotted == "" {
		return ModulePath{}, nil
	}
	parts := strings.Split(dotted, ".")
	for _, p := range parts {
		if p == "" {
			return ModulePath{}, errors.NewInvalidSchemaError("module path %q has an empty segment", dotted)
		}
		if !IsIdentifier(p) {
			return ModulePath{}, errors.NewInvalidSchemaError("module path %q: segment %q is not an identifier", dotted, p)
		}
	}
	return ModulePath{segments: parts}, nil
}

// MustParseModulePath is ParseModulePath for literals known to be valid.
func MustParseModulePath(dotted string) ModulePath {
	m, err := ParseModulePath(dotted)
	if err != nil {
		panic(err)
	}
	return m
}

// Segments returns a copy of the path segments.
func (m ModulePath) Segments() []string {
	out := make([]string, len(m.segments))
	copy(out, m.segments)
	return out
}

// Len returns the number of segments.
func (m ModulePath) Len() int { return len(m.segments) }

// IsRoot reports whether m is the global module.
func (m ModulePath) IsRoot() bool { return len(m.segments) == 0 }

// SubModule returns a new path with seg appended. m is left untouched.
func (m ModulePath) SubModule(seg string) ModulePath {
	segs := make([]string, len(m.segments), len(m.segments)+1)
	copy(segs, m.segments)
	return ModulePath{segments: append(segs, seg)}
}

// Parent returns the enclosing module; the root is its own parent.
func (m ModulePath) Parent() ModulePath {
	if len(m.segments) == 0 {
		return m
	}
	return ModulePath{segments: m.Segments()[:len(m.segments)-1]}
}

// LastName returns the innermost segment, or "" for the root.
func (m ModulePath) LastName() string {
	if len(m.segments) == 0 {
		return ""
	}
	return m.segments[len(m.segments)-1]
}

// Name is the dotted form, e.g. "com.sun.star.uno".
func (m ModulePath) Name() string { return strings.Join(m.segments, ".") }

// NameCapitalized is the dotted form with every segment capitalized, e.g. "Com.Sun.Star.Uno".
func (m ModulePath) NameCapitalized() string { return strings.Join(m.capitalized(), ".") }

// Path is the slash-joined form, e.g. "com/sun/star/uno".
func (m ModulePath) Path() string { return strings.Join(m.segments, "/") }

// PathCapitalized is the slash-joined capitalized form, e.g. "Com/Sun/Star/Uno".
func (m ModulePath) PathCapitalized() string { return strings.Join(m.capitalized(), "/") }

// Namespace is the C++ qualified form, e.g. "com::sun::star::uno".
func (m ModulePath) Namespace() string { return strings.Join(m.segments, "::") }

// HeaderGuard is the upper-cased underscore-joined form, e.g. "COM_SUN_STAR_UNO".
func (m ModulePath) HeaderGuard() string {
	return strings.ToUpper(strings.Join(m.segments, "_"))
}

// Flattened is the underscore-joined form used inside C symbol names, e.g. "com_sun_star_uno".
func (m ModulePath) Flattened() string { return strings.Join(m.segments, "_") }

// String implements fmt.Stringer.
func (m ModulePath) String() string { return m.Name() }

// Equal reports whether both paths have the same segments.
func (m ModulePath) Equal(other ModulePath) bool {
	if len(m.segments) != len(other.segments) {
		return false
	}
	for i := range m.segments {
		if m.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

func (m ModulePath) capitalized() []string {
	out := make([]string, len(m.segments))
	for i, s := range m.segments {
		out[i] = util.Capitalize(s)
	}
	return out
}
