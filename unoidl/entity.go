package unoidl

import (
	"github.com/teranos/hsuno/errors"
)

// Kind identifies which of the four emitted entity kinds a descriptor carries.
// The set is closed; emitters switch over it exhaustively.
type Kind int

const (
	KindInterface Kind = iota + 1
	KindException
	KindInterfaceSingleton
	KindServiceSingleton
)

var kindNames = map[Kind]string{
	KindInterface:          "interface",
	KindException:          "exception",
	KindInterfaceSingleton: "interface-singleton",
	KindServiceSingleton:   "service-singleton",
}

// String returns the schema spelling of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a schema spelling back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, errors.NewInvalidSchemaError("unknown entity kind %q (supported: interface, exception, interface-singleton, service-singleton)", s)
}

// Entity is one named element of the type system to be emitted.
// Exactly one payload, the one matching Kind, is set.
type Entity struct {
	Name   string
	Module ModulePath
	Kind   Kind

	Interface *InterfaceEntity
	Exception *ExceptionEntity
	Singleton *SingletonEntity
}

// FullName is the dotted module path plus the entity name, e.g. "a.b.Widget".
func (e *Entity) FullName() string {
	return e.Path().Name()
}

// Path is the module path of the entity including its own name.
func (e *Entity) Path() ModulePath {
	return e.Module.SubModule(e.Name)
}

// Validate checks the descriptor is internally consistent: every name is an
// identifier and method, parameter and member names are unique where they
// share a scope.
func (e *Entity) Validate() error {
	if e.Name == "" {
		return errors.NewInvalidSchemaError("entity in module %q has no name", e.Module.Name())
	}
	if !IsIdentifier(e.Name) {
		return errors.NewInvalidSchemaError("entity name %q in module %q is not an identifier", e.Name, e.Module.Name())
	}
	for _, seg := range e.Module.segments {
		if !IsIdentifier(seg) {
			return errors.NewInvalidSchemaError("module of %s: segment %q is not an identifier", e.Name, seg)
		}
	}

	switch e.Kind {
	case KindInterface:
		if e.Interface == nil {
			return errors.NewInvalidSchemaError("interface %s has no interface payload", e.FullName())
		}
		return e.validateMethods()
	case KindException:
		if e.Exception == nil {
			return errors.NewInvalidSchemaError("exception %s has no exception payload", e.FullName())
		}
		return e.validateMembers()
	case KindInterfaceSingleton, KindServiceSingleton:
		if e.Singleton == nil || e.Singleton.Base == "" {
			return errors.NewInvalidSchemaError("singleton %s has no base type", e.FullName())
		}
		if !IsQualifiedIdentifier(e.Singleton.Base) {
			return errors.NewInvalidSchemaError("singleton %s: base %q is not a dotted type name", e.FullName(), e.Singleton.Base)
		}
		if base, err := e.Singleton.BasePath(); err == nil && base.Equal(e.Path()) {
			return errors.NewInvalidSchemaError("singleton %s names itself as its base", e.FullName())
		}
	default:
		return errors.NewInvalidSchemaError("entity %s has unknown kind %d", e.FullName(), int(e.Kind))
	}
	return nil
}

func (e *Entity) validateMethods() error {
	methods := make(map[string]bool, len(e.Interface.Methods))
	for _, m := range e.Interface.Methods {
		if m.Name == "" {
			return errors.NewInvalidSchemaError("interface %s has a method without a name", e.FullName())
		}
		if !IsIdentifier(m.Name) {
			return errors.NewInvalidSchemaError("interface %s: method name %q is not an identifier", e.FullName(), m.Name)
		}
		// one call symbol per method name; UNO has no overloading
		if methods[m.Name] {
			return errors.NewInvalidSchemaError("interface %s declares method %s more than once", e.FullName(), m.Name)
		}
		methods[m.Name] = true

		params := make(map[string]bool, len(m.Parameters))
		for _, p := range m.Parameters {
			if p.Name == "" {
				return errors.NewInvalidSchemaError("method %s::%s has a parameter without a name", e.FullName(), m.Name)
			}
			if !IsIdentifier(p.Name) {
				return errors.NewInvalidSchemaError("method %s::%s: parameter name %q is not an identifier", e.FullName(), m.Name, p.Name)
			}
			if params[p.Name] {
				return errors.NewInvalidSchemaError("method %s::%s has duplicate parameter %q", e.FullName(), m.Name, p.Name)
			}
			params[p.Name] = true
		}
	}
	return nil
}

func (e *Entity) validateMembers() error {
	members := make(map[string]bool, len(e.Exception.Members))
	for _, m := range e.Exception.Members {
		if m.Name == "" {
			return errors.NewInvalidSchemaError("exception %s has a member without a name", e.FullName())
		}
		if !IsIdentifier(m.Name) {
			return errors.NewInvalidSchemaError("exception %s: member name %q is not an identifier", e.FullName(), m.Name)
		}
		if members[m.Name] {
			return errors.NewInvalidSchemaError("exception %s declares member %s more than once", e.FullName(), m.Name)
		}
		members[m.Name] = true
	}
	return nil
}

// InterfaceEntity is the payload of an interface: its direct methods.
type InterfaceEntity struct {
	Methods []Method
}

// Method is one direct method of an interface.
type Method struct {
	Name       string
	ReturnType TypeRef
	Parameters []Parameter
}

// Parameter is one method parameter, in declaration order.
type Parameter struct {
	Name string
	Type TypeRef
}

// ExceptionEntity is the payload of an exception: its direct members.
type ExceptionEntity struct {
	Members []Member
}

// Member is one exception field.
type Member struct {
	Name string
	Type TypeRef
}

// SingletonEntity is the payload of both singleton kinds: the dotted name of
// the base interface (interface-based) or service (service-based).
type SingletonEntity struct {
	Base string
}

// BasePath parses the base name into a ModulePath whose last segment is the base type.
func (s *SingletonEntity) BasePath() (ModulePath, error) {
	return ParseModulePath(s.Base)
}
