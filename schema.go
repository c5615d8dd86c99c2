package jddf

// Discriminator is the payload of a Discriminator-form schema: a tag
// property name and a mapping from tag value to a Properties-form schema.
type Discriminator struct {
	Tag     string
	Mapping map[string]Schema
}

// Schema is an immutable, syntactically valid JDDF schema. It carries
// exactly one form's payload; which fields are meaningful is determined by
// Form(). Only the root schema of a tree may have a non-nil Definitions.
//
// Schema is comparable with reflect.DeepEqual (and hence testify's
// assert.Equal) so tests can assert on decoded structure directly, the way
// the JDDF reference test suite does.
type Schema struct {
	Definitions map[string]Schema

	form Form

	ref                string
	typ                Type
	enum               []string
	elements           *Schema
	requiredProperties map[string]Schema
	optionalProperties map[string]Schema
	additionalProps    bool
	values             *Schema
	discriminator      Discriminator
}

// Form reports which of the eight JDDF forms this schema takes.
func (s Schema) Form() Form {
	return s.form
}

// Ref returns the definition name for a Ref-form schema.
func (s Schema) Ref() string {
	return s.ref
}

// Type returns the primitive type for a Type-form schema.
func (s Schema) Type() Type {
	return s.typ
}

// Enum returns the allowed string values for an Enum-form schema.
func (s Schema) Enum() []string {
	return s.enum
}

// Elements returns the element sub-schema for an Elements-form schema.
func (s Schema) Elements() *Schema {
	return s.elements
}

// RequiredProperties returns the "properties" map for a Properties-form
// schema. It may be nil if only "optionalProperties" was given.
func (s Schema) RequiredProperties() map[string]Schema {
	return s.requiredProperties
}

// OptionalProperties returns the "optionalProperties" map for a
// Properties-form schema. It may be nil if only "properties" was given.
func (s Schema) OptionalProperties() map[string]Schema {
	return s.optionalProperties
}

// AdditionalProperties reports whether a Properties-form schema allows keys
// beyond those named in RequiredProperties/OptionalProperties.
func (s Schema) AdditionalProperties() bool {
	return s.additionalProps
}

// Values returns the value sub-schema for a Values-form schema.
func (s Schema) Values() *Schema {
	return s.values
}

// DiscriminatorPayload returns the tag/mapping payload for a
// Discriminator-form schema.
func (s Schema) DiscriminatorPayload() Discriminator {
	return s.discriminator
}
