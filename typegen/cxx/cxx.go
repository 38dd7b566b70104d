// Package cxx renders the C++ fragments of the generated bindings: header
// guards, includes, and the extern "C" call-shims that marshal arguments into
// a binary UNO call. Every function is pure and returns text.
package cxx

import (
	"fmt"
	"strings"
)

// HeaderOpen starts a guarded header
func HeaderOpen(guard string) string {
	return fmt.Sprintf("#ifndef %s\n#define %s\n\n", guard, guard)
}

// HeaderClose ends a guarded header
func HeaderClose(guard string) string {
	return fmt.Sprintf("#endif // %s\n", guard)
}

// Include renders a quoted include of a header generated or shipped next to the bindings
func Include(path string) string {
	return fmt.Sprintf("#include \"%s\"\n", path)
}

// SystemInclude renders an angle-bracket include of an SDK header
func SystemInclude(path string) string {
	return fmt.Sprintf("#include <%s>\n", path)
}

// BindingSupportHeader declares makeBinaryUnoCall and the g_cpp2uno mapping
const BindingSupportHeader = "UNO/Binary.hxx"

// InterfaceHeaderIncludes are the SDK headers every interface declaration needs
var InterfaceHeaderIncludes = []string{
	"rtl/ustring.hxx",
	"uno/any2.hxx",
	"uno/mapping.hxx",
}

// InterfaceSourceIncludes are the SDK headers every interface call-shim needs
var InterfaceSourceIncludes = []string{
	"com/sun/star/uno/Reference.hxx",
	"cppu/unotype.hxx",
}

// reserved are names a parameter cannot take in a shim body
var reserved = map[string]bool{
	// shim locals
	"rIface": true, "exception": true, "ref": true, "iface": true, "result": true, "args": true,
	// keywords
	"alignas": true, "alignof": true, "asm": true, "auto": true, "bool": true, "break": true,
	"case": true, "catch": true, "char": true, "char8_t": true, "char16_t": true, "char32_t": true,
	"class": true, "concept": true, "const": true, "consteval": true, "constexpr": true,
	"constinit": true, "const_cast": true, "continue": true, "co_await": true, "co_return": true,
	"co_yield": true, "decltype": true, "default": true, "delete": true, "do": true, "double": true,
	"dynamic_cast": true, "else": true, "enum": true, "explicit": true, "export": true,
	"extern": true, "false": true, "float": true, "for": true, "friend": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "mutable": true, "namespace": true,
	"new": true, "noexcept": true, "nullptr": true, "operator": true, "private": true,
	"protected": true, "public": true, "register": true, "reinterpret_cast": true,
	"requires": true, "return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "static_assert": true, "static_cast": true, "struct": true, "switch": true,
	"template": true, "this": true, "thread_local": true, "throw": true, "true": true, "try": true,
	"typedef": true, "typeid": true, "typename": true, "union": true, "unsigned": true,
	"using": true, "virtual": true, "void": true, "volatile": true, "wchar_t": true, "while": true,
	// alternative operator tokens
	"and": true, "and_eq": true, "bitand": true, "bitor": true, "compl": true, "not": true,
	"not_eq": true, "or": true, "or_eq": true, "xor": true, "xor_eq": true,
	// identifiers with special meaning in declarations
	"final": true, "override": true,
	// names the generated files use unqualified
	"makeBinaryUnoCall": true, "g_cpp2uno": true, "cppu": true, "rtl": true, "uno_Any": true,
	"uno_Interface": true, "rtl_uString": true, "sal_Bool": true, "sal_Int8": true,
	"sal_Int16": true, "sal_Int32": true, "sal_Int64": true, "sal_uInt16": true,
	"sal_uInt32": true, "sal_uInt64": true, "sal_Unicode": true,
}

// Ident returns name as a C++ identifier usable for a shim parameter
func Ident(name string) string {
	if reserved[name] {
		return name + "_"
	}
	return name
}

// externC renders `extern "C"` followed by the signature line of a shim
func externC(ret, symbol string, params []string) string {
	return fmt.Sprintf("extern \"C\"\n%s %s(%s)", ret, symbol, strings.Join(params, ", "))
}
