package emit

import (
	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/typegen"
	"github.com/teranos/hsuno/typegen/cxx"
	"github.com/teranos/hsuno/typegen/haskell"
	"github.com/teranos/hsuno/unoidl"
)

// emitInterfaceSingleton binds a zero-argument constructor that fetches the
// singleton from the native component context, typed as its base interface.
// On the Haskell side the singleton becomes an instance of the base class.
func emitInterfaceSingleton(ctx *Context, e *unoidl.Entity) (*texts, error) {
	names := typegen.NamesFor(ctx.Options, e)

	basePath, err := e.Singleton.BasePath()
	if err != nil {
		return nil, err
	}
	if base, ok := ctx.Index.Lookup(basePath.Name()); ok && base.Kind != unoidl.KindInterface {
		return nil, errors.NewInvalidSchemaError("base %s of singleton %s is a %s, not an interface",
			base.FullName(), names.FullName, base.Kind)
	}
	base := typegen.DeriveNames(ctx.Options, basePath.Parent(), basePath.LastName())

	t := &texts{}

	t.declaration.WriteString(cxx.HeaderOpen(names.HeaderGuard))
	t.declaration.WriteString(cxx.ConstructorDeclaration(names))
	t.declaration.WriteString(cxx.HeaderClose(names.HeaderGuard))

	t.implementation.WriteString(cxx.Include(names.OwnHeader))
	t.implementation.WriteString(cxx.Include(cxx.BindingSupportHeader))
	t.implementation.WriteString(cxx.SystemInclude(names.Include))
	t.implementation.WriteString(cxx.SystemInclude("com/sun/star/uno/Reference.hxx"))
	t.implementation.WriteString("\n")
	t.implementation.WriteString(cxx.ConstructorShim(names, base.Namespace, ctx.Options.NativeContext))

	imports := append(append([]string{}, haskell.SingletonImports...), base.ForeignModule)
	t.binding.WriteString(haskell.ModuleHeader(names.ForeignModule, imports))
	t.binding.WriteString(haskell.SingletonType(names, base.ForeignType))
	t.binding.WriteString(haskell.ConstructorWrapper(names))
	t.binding.WriteString(haskell.ConstructorImport(names))

	return t, nil
}
