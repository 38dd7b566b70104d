package emit

import (
	"github.com/teranos/hsuno/logger"
	"github.com/teranos/hsuno/typegen"
	"github.com/teranos/hsuno/typegen/cxx"
	"github.com/teranos/hsuno/typegen/haskell"
	"github.com/teranos/hsuno/unoidl"
)

// emitException binds read accessors for the primitive members of an
// exception. String and aggregate members get no accessor in any artifact.
func emitException(ctx *Context, e *unoidl.Entity) (*texts, error) {
	names := typegen.NamesFor(ctx.Options, e)

	var getters []*typegen.GetterPlan
	for _, m := range e.Exception.Members {
		cat, err := typegen.Classify(m.Type)
		if err != nil {
			return nil, err
		}
		if cat != typegen.CategoryPrimitive {
			logger.Debugw("Skipping exception member",
				logger.FieldEntity, names.FullName,
				logger.FieldMember, m.Name,
				logger.FieldType, m.Type.Name,
				"category", cat.String())
			continue
		}
		g, err := typegen.PlanGetter(names, m)
		if err != nil {
			return nil, err
		}
		getters = append(getters, g)
	}

	t := &texts{}

	t.declaration.WriteString(cxx.HeaderOpen(names.HeaderGuard))
	t.declaration.WriteString(cxx.SystemInclude(names.Include))
	t.declaration.WriteString("\n")
	for _, g := range getters {
		t.declaration.WriteString(cxx.GetterDeclaration(g))
	}
	t.declaration.WriteString(cxx.HeaderClose(names.HeaderGuard))

	t.implementation.WriteString(cxx.Include(names.OwnHeader))
	t.implementation.WriteString("\n")
	for _, g := range getters {
		t.implementation.WriteString(cxx.GetterShim(g))
	}

	t.binding.WriteString(haskell.ModuleHeader(names.ForeignModule, haskell.ExceptionImports))
	t.binding.WriteString(haskell.ExceptionType(names))
	for _, g := range getters {
		t.binding.WriteString(haskell.GetterImport(g))
	}
	for _, g := range getters {
		t.binding.WriteString(haskell.GetterWrapper(g))
	}

	return t, nil
}
