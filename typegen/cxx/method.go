package cxx

import (
	"fmt"
	"strings"

	"github.com/teranos/hsuno/typegen"
)

// Placeholder marks a method whose types cannot be marshaled yet.
// It stands in for both the declaration and the call-shim.
func Placeholder(plan *typegen.MethodPlan) string {
	var sb strings.Builder
	seen := make(map[string]bool)
	for _, t := range plan.Unsupported {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		sb.WriteString(fmt.Sprintf("// hsuno: unsupported: %s uses aggregate type %s\n", plan.Qualified, t.Name))
	}
	sb.WriteString("\n")
	return sb.String()
}

// methodSignature renders the signature line shared by declaration and shim
func methodSignature(plan *typegen.MethodPlan) string {
	params := []string{"void * rIface", "uno_Any ** exception"}
	for i, name := range paramNames(plan) {
		params = append(params, plan.Params[i].Declaration+" "+name)
	}
	return externC(plan.Return.Declaration, plan.Symbol, params)
}

// MethodDeclaration renders the header declaration of a method's call-shim
func MethodDeclaration(plan *typegen.MethodPlan) string {
	if !plan.Supported() {
		return Placeholder(plan)
	}
	return methodSignature(plan) + ";\n\n"
}

// MethodShim renders the definition of a method's call-shim: it recovers the
// interface from the opaque handle, maps it to the binary UNO environment,
// marshals the arguments and performs the call.
func MethodShim(plan *typegen.MethodPlan) string {
	if !plan.Supported() {
		return Placeholder(plan)
	}

	ns := plan.Names.Namespace
	ref := typegen.ReferenceType(ns)

	var sb strings.Builder
	sb.WriteString(methodSignature(plan))
	sb.WriteString("\n{\n")

	sb.WriteString(fmt.Sprintf("    %s * ref = static_cast< %s * >(rIface);\n", ref, ref))
	sb.WriteString("    uno_Interface * iface = static_cast< uno_Interface * >(\n")
	sb.WriteString(fmt.Sprintf("        g_cpp2uno.mapInterface(ref->get(), cppu::UnoType< %s >::get()));\n\n", ns))

	resultArg := "0"
	if plan.HasResult() {
		sb.WriteString(fmt.Sprintf("    %s result = 0;\n", plan.Return.Marshal))
		resultArg = "&result"
	}

	if len(plan.Params) == 0 {
		sb.WriteString("    void ** args = 0;\n")
	} else {
		sb.WriteString(fmt.Sprintf("    void * args[%d];\n", len(plan.Params)))
		for i, name := range paramNames(plan) {
			sb.WriteString(fmt.Sprintf("    args[%d] = %s;\n", i, argument(plan.Params[i], name)))
		}
	}

	sb.WriteString(fmt.Sprintf("\n    makeBinaryUnoCall(iface, \"%s\", %s, args, exception);\n", plan.Qualified, resultArg))
	sb.WriteString("    iface->release(iface);\n")

	switch plan.Return.Category {
	case typegen.CategoryString:
		sb.WriteString("\n    return new rtl::OUString(result, SAL_NO_ACQUIRE);\n")
	case typegen.CategoryPrimitive:
		sb.WriteString("\n    return result;\n")
	}

	sb.WriteString("}\n\n")
	return sb.String()
}

// argument renders the address the binary call reads parameter p, bound as name, from
func argument(p typegen.Value, name string) string {
	if p.Category == typegen.CategoryString {
		return fmt.Sprintf("const_cast< rtl_uString ** >(&%s->pData)", name)
	}
	return "&" + name
}

// paramNames returns the shim parameter names of plan, suffixed with
// underscores until each is distinct from the others and from reserved names
func paramNames(plan *typegen.MethodPlan) []string {
	taken := make(map[string]bool, len(plan.Params))
	names := make([]string, len(plan.Params))
	for i, p := range plan.Params {
		id := Ident(p.Name)
		for taken[id] || reserved[id] {
			id += "_"
		}
		taken[id] = true
		names[i] = id
	}
	return names
}
