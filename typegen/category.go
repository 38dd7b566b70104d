// Package typegen derives, from UNO entity descriptors, everything the three
// generated artifacts (C++ declaration, C++ implementation, Haskell binding)
// must agree on: type categories and spellings, identifiers, and per-method
// marshaling plans. Rendering lives in the cxx and haskell subpackages.
package typegen

import (
	"strings"

	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/unoidl"
)

// Category is the calling-convention class of a type.
type Category int

const (
	CategoryVoid Category = iota
	CategoryPrimitive
	CategoryString
	CategoryAggregate
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case CategoryVoid:
		return "void"
	case CategoryPrimitive:
		return "primitive"
	case CategoryString:
		return "string"
	case CategoryAggregate:
		return "aggregate"
	default:
		return "unknown"
	}
}

// Surface is a target text surface a type is spelled for.
type Surface int

const (
	// SurfaceDeclaration is the C++ signature of a call-shim
	SurfaceDeclaration Surface = iota
	// SurfaceMarshal is the C++ result slot handed to the binary UNO call
	SurfaceMarshal
	// SurfaceForeign is the Haskell FFI import signature
	SurfaceForeign
	// SurfaceWrapper is the Haskell high-level wrapper signature
	SurfaceWrapper
)

// String returns the surface name
func (s Surface) String() string {
	switch s {
	case SurfaceDeclaration:
		return "declaration"
	case SurfaceMarshal:
		return "marshal"
	case SurfaceForeign:
		return "foreign"
	case SurfaceWrapper:
		return "wrapper"
	default:
		return "unknown"
	}
}

// Primitive holds the native and foreign spelling of one UNO primitive.
// Primitives are passed by value, so CXX serves both C++ surfaces and Haskell
// both Haskell surfaces.
type Primitive struct {
	CXX     string
	Haskell string
}

// PrimitiveTypes maps UNO primitive type names to their spellings
var PrimitiveTypes = map[string]Primitive{
	"boolean":        {"sal_Bool", "Word8"},
	"byte":           {"sal_Int8", "Int8"},
	"short":          {"sal_Int16", "Int16"},
	"unsigned short": {"sal_uInt16", "Word16"},
	"long":           {"sal_Int32", "Int32"},
	"unsigned long":  {"sal_uInt32", "Word32"},
	"hyper":          {"sal_Int64", "Int64"},
	"unsigned hyper": {"sal_uInt64", "Word64"},
	"float":          {"float", "Float"},
	"double":         {"double", "Double"},
	"char":           {"sal_Unicode", "Word16"},
}

// stringSpellings is the per-surface spelling of the UNO string type.
// Ownership of string memory crosses the boundary, so every native and FFI
// surface uses a pointer.
var stringSpellings = map[Surface]string{
	SurfaceDeclaration: "rtl::OUString *",
	SurfaceMarshal:     "rtl_uString *",
	SurfaceForeign:     "Ptr OUString",
	SurfaceWrapper:     "Text",
}

var voidSpellings = map[Surface]string{
	SurfaceDeclaration: "void",
	SurfaceMarshal:     "",
	SurfaceForeign:     "()",
	SurfaceWrapper:     "()",
}

// Classify returns the category of t. It is total over valid UNO type names;
// anything that is not a valid type name fails with ErrUnknownType.
func Classify(t unoidl.TypeRef) (Category, error) {
	switch {
	case t.Name == "void":
		return CategoryVoid, nil
	case t.Name == "string":
		return CategoryString, nil
	}
	if _, ok := PrimitiveTypes[t.Name]; ok {
		return CategoryPrimitive, nil
	}
	if isAggregateName(t.Name) {
		return CategoryAggregate, nil
	}
	return 0, errors.Wrapf(errors.ErrUnknownType, "%q", t.Name)
}

// Spelling returns the concrete spelling of t on surface s. Aggregates yield
// an error wrapping ErrUnsupportedType, which callers turn into a placeholder.
func Spelling(t unoidl.TypeRef, s Surface) (string, error) {
	cat, err := Classify(t)
	if err != nil {
		return "", err
	}
	switch cat {
	case CategoryVoid:
		return voidSpellings[s], nil
	case CategoryString:
		return stringSpellings[s], nil
	case CategoryPrimitive:
		p := PrimitiveTypes[t.Name]
		if s == SurfaceForeign || s == SurfaceWrapper {
			return p.Haskell, nil
		}
		return p.CXX, nil
	case CategoryAggregate:
		return "", errors.NewUnsupportedTypeError(t.Name)
	}
	return "", errors.AssertionFailedf("unhandled category %s", cat)
}

// isAggregateName accepts the UNO names that are types but neither void,
// primitive nor string: any, type, sequences, and (possibly instantiated)
// named types.
func isAggregateName(name string) bool {
	switch name {
	case "any", "type":
		return true
	case "", "void":
		return false
	}
	if strings.HasPrefix(name, "[]") {
		elem := unoidl.T(name).Element()
		_, err := Classify(elem)
		return err == nil && elem.Name != "void"
	}
	if open := strings.IndexByte(name, '<'); open >= 0 {
		if !strings.HasSuffix(name, ">") || !unoidl.IsQualifiedIdentifier(name[:open]) {
			return false
		}
		args := splitTemplateArgs(name[open+1 : len(name)-1])
		if len(args) == 0 {
			return false
		}
		for _, arg := range args {
			cat, err := Classify(unoidl.T(arg))
			if err != nil || cat == CategoryVoid {
				return false
			}
		}
		return true
	}
	return unoidl.IsQualifiedIdentifier(name)
}

// splitTemplateArgs splits "long,a.b.Pair<long,string>" at top-level commas
func splitTemplateArgs(s string) []string {
	var args []string
	depth, start := 0, 0
	for i, ch := range s {
		switch ch {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(s[start:]); tail != "" || len(args) > 0 {
		args = append(args, tail)
	}
	return args
}
