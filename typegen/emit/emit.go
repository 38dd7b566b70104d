// Package emit turns one entity descriptor into its three artifact texts.
//
// Each emitter composes the declaration, implementation and binding fully in
// memory and writes them only once the whole entity succeeded, so a failing
// entity leaves its sinks untouched and never affects other entities.
package emit

import (
	"io"
	"strings"

	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/logger"
	"github.com/teranos/hsuno/typegen"
	"github.com/teranos/hsuno/unoidl"
)

// Context is the read-only environment shared by all emitters of a run.
// It is safe to share across goroutines.
type Context struct {
	Options typegen.Options

	// Index resolves names referenced by an entity, such as a singleton's base.
	// A nil Index resolves nothing.
	Index *unoidl.Index
}

// NewContext creates an emission context
func NewContext(opts typegen.Options, idx *unoidl.Index) *Context {
	return &Context{Options: opts, Index: idx}
}

// texts accumulates the three artifacts of one entity
type texts struct {
	declaration    strings.Builder
	implementation strings.Builder
	binding        strings.Builder
}

// writeTo flushes the texts, each ending in exactly one newline. Every sink
// is checked before the first write, so a missing sink writes nothing. A
// sink that fails mid-write cannot be rolled back; EmitResult targets
// in-memory buffers, which never fail.
func (t *texts) writeTo(out typegen.Artifacts) error {
	for _, a := range typegen.AllArtifacts {
		if out.Writer(a) == nil {
			return errors.AssertionFailedf("no sink for %s artifact", a)
		}
	}
	for _, a := range []struct {
		artifact typegen.Artifact
		text     string
	}{
		{typegen.ArtifactDeclaration, t.declaration.String()},
		{typegen.ArtifactImplementation, t.implementation.String()},
		{typegen.ArtifactBinding, t.binding.String()},
	} {
		if _, err := io.WriteString(out.Writer(a.artifact), strings.TrimRight(a.text, "\n")+"\n"); err != nil {
			return errors.Wrapf(err, "failed to write %s artifact", a.artifact)
		}
	}
	return nil
}

// Emit generates the artifacts of entity into out.
//
// Service-based singletons fail with an error wrapping ErrNotImplemented and
// write nothing. Any other failure is wrapped with the entity's full name.
func Emit(ctx *Context, entity *unoidl.Entity, out typegen.Artifacts) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	var (
		t   *texts
		err error
	)
	switch entity.Kind {
	case unoidl.KindInterface:
		t, err = emitInterface(ctx, entity)
	case unoidl.KindException:
		t, err = emitException(ctx, entity)
	case unoidl.KindInterfaceSingleton:
		t, err = emitInterfaceSingleton(ctx, entity)
	case unoidl.KindServiceSingleton:
		return errors.WithHint(
			errors.Wrapf(errors.ErrNotImplemented, "service-based singleton %s", entity.FullName()),
			"only interface-based singletons can be bound")
	default:
		return errors.AssertionFailedf("entity %s has unhandled kind %s", entity.FullName(), entity.Kind)
	}
	if err != nil {
		return errors.Wrapf(err, "entity %s", entity.FullName())
	}

	if err := t.writeTo(out); err != nil {
		return errors.Wrapf(err, "entity %s", entity.FullName())
	}

	logger.Debugw("Emitted entity",
		logger.FieldEntity, entity.FullName(),
		logger.FieldKind, entity.Kind.String())
	return nil
}

// EmitResult is Emit into a fresh in-memory Result
func EmitResult(ctx *Context, entity *unoidl.Entity) (*typegen.Result, error) {
	r := &typegen.Result{
		Entity: entity.FullName(),
		Names:  typegen.NamesFor(ctx.Options, entity),
	}
	if err := Emit(ctx, entity, r.Artifacts()); err != nil {
		return nil, err
	}
	return r, nil
}
