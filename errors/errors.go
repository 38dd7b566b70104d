// Package errors provides error handling for hsuno.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints for the person running the generator
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := emit(entity); err != nil {
//	    return errors.Wrapf(err, "entity %s", entity.FullName())
//	}
//
//	// Classification gaps are sentinels, branch with Is
//	if errors.Is(err, errors.ErrUnsupportedType) {
//	    // emit a placeholder
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Combining errors from independent units of work
var (
	CombineErrors = crdb.CombineErrors
	Join          = crdb.Join
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the generator. Wrap them with context, check them with Is.
var (
	// ErrUnknownType indicates a type name that cannot be classified at all.
	// It is fatal to the entity being emitted.
	ErrUnknownType = New("unknown type")

	// ErrUnsupportedType marks an aggregate type reaching a code path that only
	// marshals primitives and strings. Emitters turn it into a placeholder.
	ErrUnsupportedType = New("unsupported type")

	// ErrNotImplemented marks an entity kind the generator cannot emit yet.
	ErrNotImplemented = New("not implemented")

	// ErrInvalidSchema indicates a schema file or entity descriptor that is malformed
	ErrInvalidSchema = New("invalid schema")

	// ErrOutOfDate indicates generated files that no longer match the schema
	ErrOutOfDate = New("generated files are out of date")
)

// IsUnsupported checks if an error is or wraps ErrUnsupportedType
func IsUnsupported(err error) bool {
	return err != nil && Is(err, ErrUnsupportedType)
}

// IsNotImplemented checks if an error is or wraps ErrNotImplemented
func IsNotImplemented(err error) bool {
	return err != nil && Is(err, ErrNotImplemented)
}

// IsInvalidSchema checks if an error is or wraps ErrInvalidSchema
func IsInvalidSchema(err error) bool {
	return err != nil && Is(err, ErrInvalidSchema)
}

// NewInvalidSchemaError creates an invalid-schema error with a formatted message
func NewInvalidSchemaError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidSchema, Newf(format, args...).Error())
}

// NewUnsupportedTypeError creates an unsupported-type error naming the offending type
func NewUnsupportedTypeError(typeName string) error {
	return Wrapf(ErrUnsupportedType, "%s", typeName)
}
