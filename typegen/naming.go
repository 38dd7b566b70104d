package typegen

import (
	"path"

	"github.com/teranos/hsuno/typegen/util"
	"github.com/teranos/hsuno/unoidl"
)

// Options are the naming knobs shared by every entity of a generation run
type Options struct {
	// SymbolPrefix starts every exported C symbol, e.g. "hsuno_"
	SymbolPrefix string
	// HeaderGuardPrefix and HeaderGuardSuffix wrap the upper-cased path in guards
	HeaderGuardPrefix string
	HeaderGuardSuffix string

	// HeaderExtension, SourceExtension and BindingExtension name the three artifacts
	HeaderExtension  string
	SourceExtension  string
	BindingExtension string

	// NativeContext is the C++ expression for the component context singletons are fetched from
	NativeContext string
}

// DefaultOptions returns the naming used when nothing is configured
func DefaultOptions() Options {
	return Options{
		SymbolPrefix:      "hsuno_",
		HeaderGuardPrefix: "HSUNO_",
		HeaderGuardSuffix: "_H",
		HeaderExtension:   ".hpp",
		SourceExtension:   ".cpp",
		BindingExtension:  ".hs",
		NativeContext:     "g_context",
	}
}

// UNOHeaderExtension is the extension of the headers cppumaker generates for UNO types
const UNOHeaderExtension = ".hpp"

// FileSet names the three artifacts of one entity, relative to GeneratedDir
type FileSet struct {
	Declaration    string
	Implementation string
	Binding        string
}

// Names are the identifiers derived for one entity. Every artifact reads from
// the same Names value, which keeps symbol spellings identical across them.
type Names struct {
	// Name is the entity's own name, e.g. "Widget"
	Name string
	// FullName is the dotted name, e.g. "a.b.Widget"
	FullName string
	// Namespace is the C++ qualified type, e.g. "a::b::Widget"
	Namespace string
	// HeaderGuard is e.g. "HSUNO_A_B_WIDGET_H"
	HeaderGuard string
	// Include is the native UNO header of the entity, e.g. "a/b/Widget.hpp"
	Include string
	// OwnHeader is the generated declaration's base name, e.g. "Widget.hpp"
	OwnHeader string
	// GeneratedDir is where the artifacts live under the output root, e.g. "A/B"
	GeneratedDir string
	// CallSymbolPrefix is prepended to "_"+function for exported symbols, e.g. "hsuno_a_b_Widget"
	CallSymbolPrefix string
	// ForeignModule is the Haskell module name, e.g. "A.B.Widget"
	ForeignModule string
	// ForeignType is the Haskell type or class name, e.g. "Widget"
	ForeignType string

	Files FileSet
}

// DeriveNames computes the identifiers of the entity called name in module.
// It is pure: equal inputs always give equal Names.
func DeriveNames(opts Options, module unoidl.ModulePath, name string) Names {
	full := module.SubModule(name)

	prefix := opts.SymbolPrefix + name
	if !module.IsRoot() {
		prefix = opts.SymbolPrefix + module.Flattened() + "_" + name
	}

	n := Names{
		Name:             name,
		FullName:         full.Name(),
		Namespace:        full.Namespace(),
		HeaderGuard:      opts.HeaderGuardPrefix + full.HeaderGuard() + opts.HeaderGuardSuffix,
		Include:          full.Path() + UNOHeaderExtension,
		OwnHeader:        name + opts.HeaderExtension,
		GeneratedDir:     module.PathCapitalized(),
		CallSymbolPrefix: prefix,
		ForeignModule:    full.NameCapitalized(),
		ForeignType:      util.Capitalize(name),
		Files: FileSet{
			Declaration:    name + opts.HeaderExtension,
			Implementation: name + opts.SourceExtension,
			Binding:        name + opts.BindingExtension,
		},
	}
	return n
}

// NamesFor is DeriveNames for an entity descriptor
func NamesFor(opts Options, e *unoidl.Entity) Names {
	return DeriveNames(opts, e.Module, e.Name)
}

// CallSymbol is the exported C symbol for function fn of the entity,
// e.g. "hsuno_a_b_Widget_getCount"
func (n Names) CallSymbol(fn string) string {
	return n.CallSymbolPrefix + "_" + fn
}

// QualifiedMethod is the "Type::method" string the binary UNO call dispatches on
func (n Names) QualifiedMethod(method string) string {
	return n.FullName + "::" + method
}

// ForeignImportName is the Haskell name bound to the imported shim of fn
func (n Names) ForeignImportName(fn string) string {
	return "c" + fn
}

// ConstructorFunction is the function part of a singleton constructor symbol
const ConstructorFunction = "new"

// ConstructorSymbol is the exported C symbol of a singleton constructor
func (n Names) ConstructorSymbol() string {
	return n.CallSymbol(ConstructorFunction)
}

// ConstructorImportName is the Haskell name bound to the singleton constructor, e.g. "cTheWidget_new"
func (n Names) ConstructorImportName() string {
	return "c" + util.Capitalize(n.Name) + "_" + ConstructorFunction
}

// ConstructorWrapperName is the Haskell wrapper of the singleton constructor, e.g. "theWidgetNew"
func (n Names) ConstructorWrapperName() string {
	return util.Uncapitalize(n.Name) + util.Capitalize(ConstructorFunction)
}

// GetterFunction is the function part of an exception member getter symbol, e.g. "getCode"
func GetterFunction(member string) string {
	return "get" + util.Capitalize(member)
}

// ReferenceType is the C++ handle type holding an interface reference
func ReferenceType(namespace string) string {
	return "com::sun::star::uno::Reference< " + namespace + " >"
}

// FilePath joins the generated directory and a file name with forward slashes
func (n Names) FilePath(file string) string {
	return path.Join(n.GeneratedDir, file)
}

