package typegen

import (
	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/unoidl"
)

// Value is one typed position of a call: a parameter, a return value, or an
// exception member. Spellings are empty when Category is CategoryAggregate.
type Value struct {
	Name     string
	Type     unoidl.TypeRef
	Category Category

	Declaration string
	Marshal     string
	Foreign     string
	Wrapper     string
}

// Supported reports whether the value can be marshaled
func (v Value) Supported() bool {
	return v.Category != CategoryAggregate
}

// planValue classifies t and fills in its spellings
func planValue(name string, t unoidl.TypeRef) (Value, error) {
	cat, err := Classify(t)
	if err != nil {
		return Value{}, err
	}
	v := Value{Name: name, Type: t, Category: cat}
	for _, s := range []struct {
		surface Surface
		dst     *string
	}{
		{SurfaceDeclaration, &v.Declaration},
		{SurfaceMarshal, &v.Marshal},
		{SurfaceForeign, &v.Foreign},
		{SurfaceWrapper, &v.Wrapper},
	} {
		spelled, err := Spelling(t, s.surface)
		if errors.IsUnsupported(err) {
			// aggregates carry no spellings; renderers emit a placeholder
			return v, nil
		}
		if err != nil {
			return Value{}, err
		}
		*s.dst = spelled
	}
	return v, nil
}

// MethodPlan is everything the three artifacts need to agree on for one
// interface method. The C++ and Haskell renderers only read from it.
type MethodPlan struct {
	Names Names

	// Method is the UNO method name
	Method string
	// Symbol is the exported C symbol of the shim
	Symbol string
	// ForeignName is the Haskell name bound to the imported shim
	ForeignName string
	// Qualified is the "Type::method" string handed to the binary call
	Qualified string

	Return Value
	Params []Value

	// Unsupported lists the aggregate types that prevent marshaling, in
	// return-then-parameter order
	Unsupported []unoidl.TypeRef
}

// Supported reports whether the method can be marshaled
func (p *MethodPlan) Supported() bool {
	return len(p.Unsupported) == 0
}

// HasResult reports whether the method returns a value
func (p *MethodPlan) HasResult() bool {
	return p.Return.Category != CategoryVoid
}

// PlanMethod resolves the categories and spellings of m's return and
// parameter types and derives its identifiers from names. Unknown types fail
// the plan; aggregate types are recorded in Unsupported.
func PlanMethod(names Names, m unoidl.Method) (*MethodPlan, error) {
	plan := &MethodPlan{
		Names:       names,
		Method:      m.Name,
		Symbol:      names.CallSymbol(m.Name),
		ForeignName: names.ForeignImportName(m.Name),
		Qualified:   names.QualifiedMethod(m.Name),
	}

	ret, err := planValue("", m.ReturnType)
	if err != nil {
		return nil, errors.Wrapf(err, "return type of %s", plan.Qualified)
	}
	plan.Return = ret
	if !ret.Supported() {
		plan.Unsupported = append(plan.Unsupported, ret.Type)
	}

	seen := make(map[string]bool, len(m.Parameters))
	for _, param := range m.Parameters {
		if seen[param.Name] {
			return nil, errors.NewInvalidSchemaError("%s has duplicate parameter %q", plan.Qualified, param.Name)
		}
		seen[param.Name] = true

		v, err := planValue(param.Name, param.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %s of %s", param.Name, plan.Qualified)
		}
		if v.Category == CategoryVoid {
			return nil, errors.NewInvalidSchemaError("parameter %s of %s cannot be void", param.Name, plan.Qualified)
		}
		plan.Params = append(plan.Params, v)
		if !v.Supported() {
			plan.Unsupported = append(plan.Unsupported, v.Type)
		}
	}
	return plan, nil
}

// GetterPlan is the plan of one exception member accessor
type GetterPlan struct {
	Names Names

	// Member is the exception member name
	Member string
	// Function is the getter name, e.g. "getCode"
	Function    string
	Symbol      string
	ForeignName string

	Value Value
}

// PlanGetter plans the accessor of a primitive exception member. Members of
// any other category have no accessor and fail with ErrUnsupportedType.
func PlanGetter(names Names, member unoidl.Member) (*GetterPlan, error) {
	v, err := planValue(member.Name, member.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "member %s of %s", member.Name, names.FullName)
	}
	if v.Category != CategoryPrimitive {
		return nil, errors.Wrapf(errors.NewUnsupportedTypeError(member.Type.Name),
			"member %s of %s is %s", member.Name, names.FullName, v.Category)
	}
	fn := GetterFunction(member.Name)
	return &GetterPlan{
		Names:       names,
		Member:      member.Name,
		Function:    fn,
		Symbol:      names.CallSymbol(fn),
		ForeignName: names.ForeignImportName(fn),
		Value:       v,
	}, nil
}
