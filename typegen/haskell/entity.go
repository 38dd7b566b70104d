package haskell

import (
	"fmt"
	"strings"

	"github.com/teranos/hsuno/typegen"
)

// objType is the phantom type an exception's opaque pointer points to
func objType(names typegen.Names) string {
	return names.ForeignType + "Obj"
}

// ExceptionType renders the opaque representation of an exception
func ExceptionType(names typegen.Names) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("data %s\n\n", objType(names)))
	sb.WriteString(fmt.Sprintf("newtype %s = %s (Ptr %s)\n\n", names.ForeignType, names.ForeignType, objType(names)))
	return sb.String()
}

// GetterImport renders the FFI import of an exception member getter
func GetterImport(g *typegen.GetterPlan) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("foreign import ccall \"%s\" %s\n", g.Symbol, g.ForeignName))
	sb.WriteString(fmt.Sprintf("    :: %s\n\n", arrows("Ptr "+objType(g.Names), ioType(g.Value.Foreign))))
	return sb.String()
}

// GetterWrapper renders the accessor unwrapping the exception's pointer
func GetterWrapper(g *typegen.GetterPlan) string {
	name := Ident(g.Function)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s :: %s\n", name, arrows(g.Names.ForeignType, ioType(g.Value.Wrapper))))
	sb.WriteString(fmt.Sprintf("%s (%s ptr) = %s ptr\n\n", name, g.Names.ForeignType, g.ForeignName))
	return sb.String()
}

// SingletonType renders the handle type of a singleton and its instances:
// Service to expose the interface pointer, and the base interface class whose
// default methods then apply.
func SingletonType(names typegen.Names, baseClass string) string {
	t := names.ForeignType
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("data %s = %s (Ptr UnoInterface)\n\n", t, t))
	sb.WriteString(fmt.Sprintf("instance Service %s where\n", t))
	sb.WriteString(fmt.Sprintf("    getInterface (%s ptr) = ptr\n\n", t))
	sb.WriteString(fmt.Sprintf("instance %s %s where\n\n", baseClass, t))
	return sb.String()
}

// ConstructorWrapper renders the action obtaining the singleton
func ConstructorWrapper(names typegen.Names) string {
	fn := names.ConstructorWrapperName()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s :: IO %s\n", fn, names.ForeignType))
	sb.WriteString(fmt.Sprintf("%s = %s <$> %s\n\n", fn, names.ForeignType, names.ConstructorImportName()))
	return sb.String()
}

// ConstructorImport renders the FFI import of a singleton constructor
func ConstructorImport(names typegen.Names) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("foreign import ccall \"%s\" %s\n", names.ConstructorSymbol(), names.ConstructorImportName()))
	sb.WriteString("    :: IO (Ptr UnoInterface)\n\n")
	return sb.String()
}
