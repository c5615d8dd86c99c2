package jddf

import (
	"fmt"

	"github.com/itayankri/jddf/jsonpointer"
	"github.com/pkg/errors"
)

// InvalidSchema is returned by FromJSON and Verify when a schema is
// syntactically or semantically malformed. The wrapped cause (if any) is
// reachable through Unwrap (errors.Unwrap, errors.Is, errors.As).
type InvalidSchema struct {
	reason string
	cause  error
}

func (e InvalidSchema) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid schema: %s: %s", e.reason, e.cause)
	}
	return fmt.Sprintf("invalid schema: %s", e.reason)
}

func (e InvalidSchema) Unwrap() error {
	return e.cause
}

func invalidSchema(reason string) error {
	return InvalidSchema{reason: reason}
}

func wrapInvalidSchema(cause error, reason string) error {
	return InvalidSchema{reason: reason, cause: errors.WithStack(cause)}
}

// ErrInvalidForm is returned when a schema's keywords do not match exactly
// one of the eight forms.
var ErrInvalidForm = invalidSchema("invalid form")

// ErrEmptyEnum is returned when an "enum" array has no members.
var ErrEmptyEnum = invalidSchema("enum must not be empty")

// ErrRepeatedEnumValue is returned when an "enum" array contains the same
// string twice.
func ErrRepeatedEnumValue(value string) error {
	return invalidSchema(fmt.Sprintf("repeated enum value %q", value))
}

// ErrNoSuchDefinition is returned when a "ref" names a definition that does
// not exist on the root schema.
func ErrNoSuchDefinition(name string) error {
	return invalidSchema(fmt.Sprintf("no such definition %q", name))
}

// ErrRepeatedProperty is returned when a property name appears in both
// "properties" and "optionalProperties".
func ErrRepeatedProperty(name string) error {
	return invalidSchema(fmt.Sprintf("repeated property %q", name))
}

// ErrNonPropertiesMapping is returned when a discriminator mapping value is
// not itself in Properties form.
var ErrNonPropertiesMapping = invalidSchema("discriminator mapping values must be in properties form")

// ErrRepeatedTagInProperties is returned when a discriminator's tag key also
// appears in a mapping value's required or optional properties.
func ErrRepeatedTagInProperties(tag string) error {
	return invalidSchema(fmt.Sprintf("discriminator tag %q repeated in mapping properties", tag))
}

// ErrInvalidType is returned when a "type" value is not one of the eleven
// valid type names.
func ErrInvalidType(t string) error {
	return invalidSchema(fmt.Sprintf("invalid type %q", t))
}

// ErrNonRootDefinitions is returned by Verify when a non-root schema carries
// its own "definitions".
var ErrNonRootDefinitions = invalidSchema("definitions are only allowed on the root schema")

// MaxDepthExceeded is returned by Validate when a ref chain would exceed the
// configured MaxDepth. No partial errors are returned alongside it.
type MaxDepthExceeded struct{}

func (MaxDepthExceeded) Error() string {
	return "max depth exceeded"
}

// ValidationError locates one rejection: the path to the offending value in
// the instance, and the path to the rejecting keyword in the schema. It is
// data returned from Validate, never raised as a Go error.
type ValidationError struct {
	InstancePath []string
	SchemaPath   []string
}

// Error renders the validation error as a pair of JSON Pointer strings. It
// exists purely as a convenience for logging; ValidationError itself is not
// an error in the Go sense and is never returned as one.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed at %s: rejected by %s",
		pointerOrRoot(e.InstancePath), pointerOrRoot(e.SchemaPath))
}

func pointerOrRoot(tokens []string) string {
	if len(tokens) == 0 {
		return "/"
	}
	return jsonpointer.Join(tokens)
}
