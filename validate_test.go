package jddf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, doc string) Schema {
	t.Helper()
	schema, err := FromJSON(decode(t, doc))
	require.NoError(t, err)
	require.NoError(t, schema.Verify())
	return schema
}

// scenario 1: primitive type miss.
func TestValidatePrimitiveTypeMiss(t *testing.T) {
	schema := mustLoad(t, `{"type":"boolean"}`)

	errs, err := Validate(Limits{}, schema, decode(t, `null`))
	require.NoError(t, err)

	assert.Equal(t, []ValidationError{
		{InstancePath: []string{}, SchemaPath: []string{"type"}},
	}, errs)
}

// scenario 2: properties with three problems.
func TestValidatePropertiesThreeProblems(t *testing.T) {
	schema := mustLoad(t, `{
		"properties": {
			"name": {"type":"string"},
			"age": {"type":"uint32"},
			"phones": {"elements":{"type":"string"}}
		}
	}`)

	instance := decode(t, `{"age":"42","phones":["+44 1234567", 442345678]}`)

	errs, err := Validate(Limits{}, schema, instance)
	require.NoError(t, err)

	assert.ElementsMatch(t, []ValidationError{
		{InstancePath: []string{}, SchemaPath: []string{"properties", "name"}},
		{InstancePath: []string{"age"}, SchemaPath: []string{"properties", "age", "type"}},
		{InstancePath: []string{"phones", "1"}, SchemaPath: []string{"properties", "phones", "elements", "type"}},
	}, errs)
}

// scenario 3: max depth cycle.
func TestValidateMaxDepthCycle(t *testing.T) {
	schema := mustLoad(t, `{"definitions":{"loop":{"ref":"loop"}},"ref":"loop"}`)

	_, err := Validate(Limits{MaxDepth: 32}, schema, decode(t, `null`))
	assert.Equal(t, MaxDepthExceeded{}, err)
}

// scenario 4: max errors clamp.
func TestValidateMaxErrorsClamp(t *testing.T) {
	schema := mustLoad(t, `{"elements":{"type":"string"}}`)
	instance := decode(t, `[null,null,null,null,null]`)

	errs, err := Validate(Limits{MaxErrors: 3}, schema, instance)
	require.NoError(t, err)
	assert.Len(t, errs, 3)
}

// scenario 5: discriminator success, tag not flagged as additional property.
func TestValidateDiscriminatorSuccess(t *testing.T) {
	schema := mustLoad(t, `{
		"discriminator": {
			"tag": "t",
			"mapping": {"a": {"properties":{"x":{"type":"string"}}}}
		}
	}`)

	errs, err := Validate(Limits{}, schema, decode(t, `{"t":"a","x":"hi"}`))
	require.NoError(t, err)
	assert.Empty(t, errs)
}

// scenario 6: integer bounds.
func TestValidateIntegerBounds(t *testing.T) {
	schema := mustLoad(t, `{"type":"uint8"}`)

	cases := []struct {
		instance string
		wantErrs int
	}{
		{`256`, 1},
		{`255`, 0},
		{`1.5`, 1},
		{`1.0`, 0},
	}

	for _, tt := range cases {
		t.Run(tt.instance, func(t *testing.T) {
			errs, err := Validate(Limits{}, schema, decode(t, tt.instance))
			require.NoError(t, err)
			assert.Len(t, errs, tt.wantErrs)
		})
	}
}

func TestValidateEmptySchemaNeverErrors(t *testing.T) {
	schema := mustLoad(t, `{}`)

	for _, doc := range []string{`null`, `true`, `42`, `"x"`, `[1,2]`, `{"a":1}`} {
		errs, err := Validate(Limits{}, schema, decode(t, doc))
		require.NoError(t, err)
		assert.Empty(t, errs)
	}
}

func TestValidateRefEquivalence(t *testing.T) {
	withRef := mustLoad(t, `{"definitions":{"d":{"type":"string"}},"ref":"d"}`)
	inlined := mustLoad(t, `{"type":"string"}`)

	instance := decode(t, `42`)

	refErrs, err := Validate(Limits{}, withRef, instance)
	require.NoError(t, err)
	inlineErrs, err := Validate(Limits{}, inlined, instance)
	require.NoError(t, err)

	require.Len(t, refErrs, 1)
	require.Len(t, inlineErrs, 1)
	assert.Equal(t, refErrs[0].InstancePath, inlineErrs[0].InstancePath)
	// The ref frame prefixes schema_path with definitions/d.
	assert.Equal(t, []string{"definitions", "d", "type"}, refErrs[0].SchemaPath)
	assert.Equal(t, []string{"type"}, inlineErrs[0].SchemaPath)
}

func TestValidateEnum(t *testing.T) {
	schema := mustLoad(t, `{"enum":["a","b","c"]}`)

	errs, err := Validate(Limits{}, schema, decode(t, `"a"`))
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = Validate(Limits{}, schema, decode(t, `"z"`))
	require.NoError(t, err)
	assert.Equal(t, []ValidationError{{InstancePath: []string{}, SchemaPath: []string{"enum"}}}, errs)

	errs, err = Validate(Limits{}, schema, decode(t, `1`))
	require.NoError(t, err)
	assert.Equal(t, []ValidationError{{InstancePath: []string{}, SchemaPath: []string{"enum"}}}, errs)
}

func TestValidateValues(t *testing.T) {
	schema := mustLoad(t, `{"values":{"type":"string"}}`)

	errs, err := Validate(Limits{}, schema, decode(t, `{"a":"x","b":1}`))
	require.NoError(t, err)
	assert.Equal(t, []ValidationError{
		{InstancePath: []string{"b"}, SchemaPath: []string{"values", "type"}},
	}, errs)

	errs, err = Validate(Limits{}, schema, decode(t, `42`))
	require.NoError(t, err)
	assert.Equal(t, []ValidationError{
		{InstancePath: []string{}, SchemaPath: []string{"values"}},
	}, errs)
}

func TestValidateAdditionalPropertiesRejected(t *testing.T) {
	schema := mustLoad(t, `{"properties":{"a":{}}}`)

	errs, err := Validate(Limits{}, schema, decode(t, `{"a":1,"b":2}`))
	require.NoError(t, err)
	assert.Equal(t, []ValidationError{
		{InstancePath: []string{"b"}, SchemaPath: []string{}},
	}, errs)
}

func TestValidateAdditionalPropertiesAllowed(t *testing.T) {
	schema := mustLoad(t, `{"properties":{"a":{}},"additionalProperties":true}`)

	errs, err := Validate(Limits{}, schema, decode(t, `{"a":1,"b":2}`))
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestValidateDiscriminatorTagMissing(t *testing.T) {
	schema := mustLoad(t, `{"discriminator":{"tag":"t","mapping":{"a":{"properties":{}}}}}`)

	errs, err := Validate(Limits{}, schema, decode(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, []ValidationError{
		{InstancePath: []string{}, SchemaPath: []string{"discriminator", "tag"}},
	}, errs)
}

func TestValidateDiscriminatorTagNotString(t *testing.T) {
	schema := mustLoad(t, `{"discriminator":{"tag":"t","mapping":{"a":{"properties":{}}}}}`)

	errs, err := Validate(Limits{}, schema, decode(t, `{"t":1}`))
	require.NoError(t, err)
	assert.Equal(t, []ValidationError{
		{InstancePath: []string{"t"}, SchemaPath: []string{"discriminator", "tag"}},
	}, errs)
}

func TestValidateDiscriminatorUnknownTagValue(t *testing.T) {
	schema := mustLoad(t, `{"discriminator":{"tag":"t","mapping":{"a":{"properties":{}}}}}`)

	errs, err := Validate(Limits{}, schema, decode(t, `{"t":"z"}`))
	require.NoError(t, err)
	assert.Equal(t, []ValidationError{
		{InstancePath: []string{"t"}, SchemaPath: []string{"discriminator", "mapping"}},
	}, errs)
}

func TestValidateDiscriminatorNotObject(t *testing.T) {
	schema := mustLoad(t, `{"discriminator":{"tag":"t","mapping":{}}}`)

	errs, err := Validate(Limits{}, schema, decode(t, `42`))
	require.NoError(t, err)
	assert.Equal(t, []ValidationError{
		{InstancePath: []string{}, SchemaPath: []string{"discriminator"}},
	}, errs)
}

func TestValidateTimestamp(t *testing.T) {
	schema := mustLoad(t, `{"type":"timestamp"}`)

	errs, err := Validate(Limits{}, schema, decode(t, `"2024-01-02T03:04:05Z"`))
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = Validate(Limits{}, schema, decode(t, `"not-a-timestamp"`))
	require.NoError(t, err)
	assert.Equal(t, []ValidationError{{InstancePath: []string{}, SchemaPath: []string{"type"}}}, errs)
}

func TestValidateDeterminism(t *testing.T) {
	schema := mustLoad(t, `{"properties":{"a":{"type":"string"},"b":{"type":"uint32"}}}`)
	instance := decode(t, `{"a":1,"b":"x"}`)

	first, err := Validate(Limits{}, schema, instance)
	require.NoError(t, err)
	second, err := Validate(Limits{}, schema, instance)
	require.NoError(t, err)

	assert.ElementsMatch(t, first, second)
	assert.Len(t, first, 2)
}
