// Package haskell renders the Haskell fragments of the generated bindings:
// module headers, foreign imports of the C++ call-shims, and the high-level
// wrappers that marshal strings and check the exception slot.
package haskell

import (
	"fmt"
	"strings"

	"github.com/teranos/hsuno/typegen/util"
)

// InterfaceImports are the imports of every interface binding
var InterfaceImports = []string{
	"SAL.Types",
	"UNO.Binary",
	"UNO.Service",
	"UNO.OUString",
	"",
	"Control.Monad (when)",
	"Data.Text (Text)",
	"Foreign",
}

// ExceptionImports are the imports of every exception binding
var ExceptionImports = []string{
	"Foreign",
}

// SingletonImports are the imports of every singleton binding, before the base interface module
var SingletonImports = []string{
	"UNO.Binary",
	"UNO.Service",
	"",
	"Foreign",
}

// ModuleHeader renders the module line and imports. An empty import
// renders as a blank line separating groups.
func ModuleHeader(module string, imports []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("module %s where\n\n", module))
	for _, imp := range imports {
		if imp == "" {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(fmt.Sprintf("import %s\n", imp))
	}
	sb.WriteString("\n")
	return sb.String()
}

// locals are the names the generated wrapper bodies bind or call themselves
var locals = map[string]bool{
	"a": true, "iface": true, "exceptionPtr": true, "aException": true,
	"result": true, "methodResult": true, "ptr": true,
	"with": true, "withOUString": true, "getInterface": true, "nullPtr": true,
	"peek": true, "when": true, "error": true, "return": true,
	"ouStringToText": true, "deleteOUString": true,
}

var keywords = map[string]bool{
	"case": true, "class": true, "data": true, "default": true, "deriving": true,
	"do": true, "else": true, "foreign": true, "if": true, "import": true, "in": true,
	"infix": true, "infixl": true, "infixr": true, "instance": true, "let": true,
	"module": true, "newtype": true, "of": true, "then": true, "type": true, "where": true,
}

// Ident returns name as a Haskell value identifier that does not shadow
// wrapper locals: lower-cased first letter, primed on collision.
func Ident(name string) string {
	id := util.Uncapitalize(name)
	if locals[id] || keywords[id] {
		return id + "'"
	}
	return id
}

// marshaledIdent names the marshaled form of a string argument, e.g. "label" -> "hsLabel"
func marshaledIdent(name string) string {
	return "hs" + util.Capitalize(strings.TrimSuffix(Ident(name), "'"))
}

// ioType renders IO applied to t, parenthesizing compound types
func ioType(t string) string {
	if strings.Contains(t, " ") {
		return "IO (" + t + ")"
	}
	return "IO " + t
}

// arrows joins a type signature
func arrows(parts ...string) string {
	return strings.Join(parts, " -> ")
}
