package emit

import (
	"github.com/teranos/hsuno/logger"
	"github.com/teranos/hsuno/typegen"
	"github.com/teranos/hsuno/typegen/cxx"
	"github.com/teranos/hsuno/typegen/haskell"
	"github.com/teranos/hsuno/unoidl"
)

// emitInterface binds every direct method of an interface: one call-shim per
// method on the C++ side, and on the Haskell side one foreign import per
// method plus a type class whose default methods wrap them.
func emitInterface(ctx *Context, e *unoidl.Entity) (*texts, error) {
	names := typegen.NamesFor(ctx.Options, e)

	plans := make([]*typegen.MethodPlan, 0, len(e.Interface.Methods))
	for _, m := range e.Interface.Methods {
		p, err := typegen.PlanMethod(names, m)
		if err != nil {
			return nil, err
		}
		if !p.Supported() {
			logger.Debugw("Method uses aggregate types, emitting placeholder",
				logger.FieldEntity, names.FullName,
				logger.FieldMethod, m.Name,
				logger.FieldType, p.Unsupported[0].Name)
		}
		plans = append(plans, p)
	}

	t := &texts{}

	t.declaration.WriteString(cxx.HeaderOpen(names.HeaderGuard))
	for _, inc := range cxx.InterfaceHeaderIncludes {
		t.declaration.WriteString(cxx.SystemInclude(inc))
	}
	t.declaration.WriteString("\n")
	for _, p := range plans {
		t.declaration.WriteString(cxx.MethodDeclaration(p))
	}
	t.declaration.WriteString(cxx.HeaderClose(names.HeaderGuard))

	t.implementation.WriteString(cxx.Include(names.OwnHeader))
	t.implementation.WriteString(cxx.Include(cxx.BindingSupportHeader))
	t.implementation.WriteString(cxx.SystemInclude(names.Include))
	for _, inc := range cxx.InterfaceSourceIncludes {
		t.implementation.WriteString(cxx.SystemInclude(inc))
	}
	t.implementation.WriteString("\n")
	for _, p := range plans {
		t.implementation.WriteString(cxx.MethodShim(p))
	}

	t.binding.WriteString(haskell.ModuleHeader(names.ForeignModule, haskell.InterfaceImports))
	for _, p := range plans {
		t.binding.WriteString(haskell.ForeignImport(p))
	}
	t.binding.WriteString(haskell.ClassHeader(names))
	for _, p := range plans {
		t.binding.WriteString(haskell.ClassMethod(p))
	}

	return t, nil
}
