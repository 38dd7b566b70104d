package cxx

import (
	"fmt"
	"strings"

	"github.com/teranos/hsuno/typegen"
)

func getterSignature(g *typegen.GetterPlan) string {
	return externC(g.Value.Declaration, g.Symbol, []string{g.Names.Namespace + " * e"})
}

// GetterDeclaration renders the header declaration of an exception member getter
func GetterDeclaration(g *typegen.GetterPlan) string {
	return getterSignature(g) + ";\n\n"
}

// GetterShim renders the definition of an exception member getter
func GetterShim(g *typegen.GetterPlan) string {
	var sb strings.Builder
	sb.WriteString(getterSignature(g))
	sb.WriteString("\n{\n")
	sb.WriteString(fmt.Sprintf("    return e->%s;\n", g.Member))
	sb.WriteString("}\n\n")
	return sb.String()
}

func constructorSignature(names typegen.Names) string {
	return externC("void *", names.ConstructorSymbol(), nil)
}

// ConstructorDeclaration renders the header declaration of a singleton constructor
func ConstructorDeclaration(names typegen.Names) string {
	return constructorSignature(names) + ";\n\n"
}

// ConstructorShim renders a singleton constructor: it fetches the singleton
// from the component context and hands out a heap-allocated reference typed
// as the base interface.
func ConstructorShim(names typegen.Names, baseNamespace, nativeContext string) string {
	var sb strings.Builder
	sb.WriteString(constructorSignature(names))
	sb.WriteString("\n{\n")
	sb.WriteString(fmt.Sprintf("    return new %s(%s::get(%s));\n",
		typegen.ReferenceType(baseNamespace), names.Namespace, nativeContext))
	sb.WriteString("}\n\n")
	return sb.String()
}
