package haskell

import (
	"fmt"
	"strings"

	"github.com/teranos/hsuno/typegen"
)

// opaque is the spelling of an aggregate position in a wrapper signature
const opaque = "Ptr ()"

// Placeholder marks a method whose types cannot be marshaled yet.
// It stands in for the foreign import.
func Placeholder(plan *typegen.MethodPlan) string {
	var sb strings.Builder
	seen := make(map[string]bool)
	for _, t := range plan.Unsupported {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		sb.WriteString(fmt.Sprintf("-- hsuno: unsupported: %s uses aggregate type %s\n", plan.Qualified, t.Name))
	}
	sb.WriteString("\n")
	return sb.String()
}

// ForeignImport renders the FFI import of a method's call-shim
func ForeignImport(plan *typegen.MethodPlan) string {
	if !plan.Supported() {
		return Placeholder(plan)
	}

	parts := []string{"Ptr UnoInterface", "Ptr (Ptr Any)"}
	for _, p := range plan.Params {
		parts = append(parts, p.Foreign)
	}
	parts = append(parts, ioType(plan.Return.Foreign))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("foreign import ccall \"%s\" %s\n", plan.Symbol, plan.ForeignName))
	sb.WriteString(fmt.Sprintf("    :: %s\n\n", arrows(parts...)))
	return sb.String()
}

// ClassHeader renders the head of the type class an interface maps to
func ClassHeader(names typegen.Names) string {
	return fmt.Sprintf("class Service a => %s a where\n", names.ForeignType)
}

func wrapperSpelling(v typegen.Value) string {
	if !v.Supported() {
		return opaque
	}
	return v.Wrapper
}

// ClassMethod renders a class method signature and its default body, indented
// for the class declaration. The body gets the interface from the instance,
// converts string arguments, calls the shim with a fresh exception slot, and
// converts a string result back to Text.
func ClassMethod(plan *typegen.MethodPlan) string {
	name := Ident(plan.Method)

	sig := []string{"a"}
	for _, p := range plan.Params {
		sig = append(sig, wrapperSpelling(p))
	}
	sig = append(sig, ioType(wrapperSpelling(plan.Return)))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("    %s :: %s\n", name, arrows(sig...)))

	if !plan.Supported() {
		holes := strings.Repeat(" _", len(plan.Params)+1)
		sb.WriteString(fmt.Sprintf("    %s%s = error \"%s: aggregate types are not supported\"\n\n", name, holes, plan.Qualified))
		return sb.String()
	}

	b := bindParams(plan)
	args := append([]string{"a"}, b.args...)
	sb.WriteString(fmt.Sprintf("    %s = do\n", strings.Join(append([]string{name}, args...), " ")))

	indent := "        "
	sb.WriteString(indent + "let iface = getInterface a\n")

	for i := range plan.Params {
		if b.marshaled[i] == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("%swithOUString %s $ \\%s -> do\n", indent, b.args[i], b.marshaled[i]))
		indent += "    "
	}
	sb.WriteString(indent + "with nullPtr $ \\exceptionPtr -> do\n")
	indent += "    "

	call := []string{plan.ForeignName, "iface", "exceptionPtr"}
	for i := range plan.Params {
		if b.marshaled[i] != "" {
			call = append(call, b.marshaled[i])
		} else {
			call = append(call, b.args[i])
		}
	}
	if plan.HasResult() {
		sb.WriteString(fmt.Sprintf("%sresult <- %s\n", indent, strings.Join(call, " ")))
	} else {
		sb.WriteString(fmt.Sprintf("%s%s\n", indent, strings.Join(call, " ")))
	}

	sb.WriteString(indent + "aException <- peek exceptionPtr\n")
	sb.WriteString(indent + "when (aException /= nullPtr) (error \"exceptions not yet implemented\")\n")

	switch plan.Return.Category {
	case typegen.CategoryString:
		sb.WriteString(indent + "methodResult <- ouStringToText result\n")
		sb.WriteString(indent + "deleteOUString result\n")
		sb.WriteString(indent + "return methodResult\n")
	case typegen.CategoryPrimitive:
		sb.WriteString(indent + "return result\n")
	default:
		sb.WriteString(indent + "return ()\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// bindings are the identifiers a wrapper body binds for a method's parameters.
// marshaled is empty for parameters that are passed through unchanged.
type bindings struct {
	args      []string
	marshaled []string
}

// bindParams names every parameter and every marshaled string uniquely within
// one wrapper, priming a name until it is free. Parameter names are claimed
// before marshaled names, so the latter give way on a clash.
func bindParams(plan *typegen.MethodPlan) bindings {
	taken := map[string]bool{Ident(plan.Method): true, plan.ForeignName: true}
	claim := func(id string) string {
		for taken[id] || locals[id] {
			id += "'"
		}
		taken[id] = true
		return id
	}

	b := bindings{
		args:      make([]string, len(plan.Params)),
		marshaled: make([]string, len(plan.Params)),
	}
	for i, p := range plan.Params {
		b.args[i] = claim(Ident(p.Name))
	}
	for i, p := range plan.Params {
		if p.Category == typegen.CategoryString {
			b.marshaled[i] = claim(marshaledIdent(p.Name))
		}
	}
	return b
}
