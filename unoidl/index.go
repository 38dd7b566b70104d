package unoidl

import (
	"sort"

	"github.com/teranos/hsuno/errors"
)

// Index is a read-only lookup of entities by dotted full name.
// It is safe for concurrent use once built.
type Index struct {
	byName map[string]*Entity
	order  []string
}

// NewIndex builds an index, rejecting duplicate full names and distinct
// names that flatten to the same C symbol stem or header guard
// (e.g. a.b_c.X and a.b.c.X).
func NewIndex(entities ...*Entity) (*Index, error) {
	idx := &Index{byName: make(map[string]*Entity, len(entities))}
	stems := make(map[string]string, len(entities))
	guards := make(map[string]string, len(entities))
	for _, e := range entities {
		name := e.FullName()
		if _, dup := idx.byName[name]; dup {
			return nil, errors.NewInvalidSchemaError("duplicate entity %s", name)
		}
		path := e.Path()
		if other, clash := stems[path.Flattened()]; clash {
			return nil, errors.WithHint(
				errors.NewInvalidSchemaError("entities %s and %s share the symbol stem %s", other, name, path.Flattened()),
				"rename one of them; module paths are joined with '_' in C symbols")
		}
		if other, clash := guards[path.HeaderGuard()]; clash {
			return nil, errors.NewInvalidSchemaError("entities %s and %s share the header guard %s", other, name, path.HeaderGuard())
		}
		stems[path.Flattened()] = name
		guards[path.HeaderGuard()] = name
		idx.byName[name] = e
		idx.order = append(idx.order, name)
	}
	return idx, nil
}

// Lookup returns the entity with the given dotted full name.
// A nil Index finds nothing.
func (idx *Index) Lookup(fullName string) (*Entity, bool) {
	if idx == nil {
		return nil, false
	}
	e, ok := idx.byName[fullName]
	return e, ok
}

// Len returns the number of indexed entities.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.order)
}

// Entities returns the indexed entities in insertion order.
func (idx *Index) Entities() []*Entity {
	if idx == nil {
		return nil
	}
	out := make([]*Entity, 0, len(idx.order))
	for _, name := range idx.order {
		out = append(out, idx.byName[name])
	}
	return out
}

// Names returns all full names, sorted.
func (idx *Index) Names() []string {
	if idx == nil {
		return nil
	}
	names := make([]string, len(idx.order))
	copy(names, idx.order)
	sort.Strings(names)
	return names
}
