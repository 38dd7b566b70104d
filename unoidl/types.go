package unoidl

import "strings"

// TypeRef names a UNO type as it appears in a schema: a simple type such as
// "long" or "string", a sequence "[]T", a named type "com.sun.star.uno.XInterface",
// or an instantiated polymorphic struct "a.b.Pair<long,string>".
type TypeRef struct {
	Name string
}

// T is shorthand for constructing a TypeRef.
func T(name string) TypeRef { return TypeRef{Name: name} }

// Void is the return type of methods without a result.
var Void = TypeRef{Name: "void"}

// String implements fmt.Stringer.
func (t TypeRef) String() string { return t.Name }

// IsSequence reports whether t is a "[]T" sequence type.
func (t TypeRef) IsSequence() bool { return strings.HasPrefix(t.Name, "[]") }

// Element returns the element type of a sequence, or t itself otherwise.
func (t TypeRef) Element() TypeRef {
	if !t.IsSequence() {
		return t
	}
	return TypeRef{Name: strings.TrimPrefix(t.Name, "[]")}
}
