package jddf

import (
	"math"
	"strconv"
)

// machine carries the mutable state of a single Validate call: the root
// schema, the two limits, the two path stacks, and the accumulated errors.
//
// instanceTokens mirrors JSON Pointer navigation of the instance.
// schemaFrames is a stack of frames; a new frame is pushed on each Ref
// traversal and popped on return, and only the top frame's tokens are
// attached to emitted errors (spec.md §4.4).
type machine struct {
	root      Schema
	maxDepth  int
	maxErrors int

	instanceTokens []string
	schemaFrames   [][]string

	errors      []ValidationError
	maxDepthHit bool
}

func (m *machine) pushInstanceToken(token string) {
	m.instanceTokens = append(m.instanceTokens, token)
}

func (m *machine) popInstanceToken() {
	m.instanceTokens = m.instanceTokens[:len(m.instanceTokens)-1]
}

func (m *machine) pushSchemaToken(token string) {
	top := len(m.schemaFrames) - 1
	m.schemaFrames[top] = append(m.schemaFrames[top], token)
}

func (m *machine) popSchemaToken() {
	top := len(m.schemaFrames) - 1
	frame := m.schemaFrames[top]
	m.schemaFrames[top] = frame[:len(frame)-1]
}

func (m *machine) pushFrame(initial []string) {
	frame := make([]string, len(initial))
	copy(frame, initial)
	m.schemaFrames = append(m.schemaFrames, frame)
}

func (m *machine) popFrame() {
	m.schemaFrames = m.schemaFrames[:len(m.schemaFrames)-1]
}

// emit appends a new error captured by value at the current path stacks and
// reports whether the caller must stop (max_errors reached).
func (m *machine) emit() bool {
	instPath := append([]string{}, m.instanceTokens...)
	top := m.schemaFrames[len(m.schemaFrames)-1]
	schemaPath := append([]string{}, top...)

	m.errors = append(m.errors, ValidationError{InstancePath: instPath, SchemaPath: schemaPath})

	return m.maxErrors != 0 && len(m.errors) == m.maxErrors
}

// validate walks schema against instance, emitting errors as it goes, and
// reports whether the caller must stop (either limit was hit). Every push
// onto a path stack in this function and its helpers is matched by a pop on
// every control-flow path, including the early-exit "stop" paths: callers
// never return between a push and its pop, they set "stop" and let the
// enclosing block finish popping before propagating it upward.
func (m *machine) validate(schema Schema, instance any, parentTag *string) bool {
	switch schema.form {
	case FormEmpty:
		return false

	case FormRef:
		if m.maxDepth != 0 && len(m.schemaFrames) == m.maxDepth {
			m.maxDepthHit = true
			return true
		}
		m.pushFrame([]string{"definitions", schema.ref})
		stop := m.validate(m.root.Definitions[schema.ref], instance, nil)
		m.popFrame()
		return stop

	case FormType:
		m.pushSchemaToken("type")
		stop := false
		if !typeMatches(schema.typ, instance) {
			stop = m.emit()
		}
		m.popSchemaToken()
		return stop

	case FormEnum:
		m.pushSchemaToken("enum")
		stop := false
		str, ok := instance.(string)
		if !ok || !containsString(schema.enum, str) {
			stop = m.emit()
		}
		m.popSchemaToken()
		return stop

	case FormElements:
		m.pushSchemaToken("elements")
		stop := false
		if arr, ok := instance.([]any); ok {
			for i, elem := range arr {
				m.pushInstanceToken(strconv.Itoa(i))
				stop = m.validate(*schema.elements, elem, nil)
				m.popInstanceToken()
				if stop {
					break
				}
			}
		} else {
			stop = m.emit()
		}
		m.popSchemaToken()
		return stop

	case FormValues:
		m.pushSchemaToken("values")
		stop := false
		if obj, ok := instance.(map[string]any); ok {
			for key, val := range obj {
				m.pushInstanceToken(key)
				stop = m.validate(*schema.values, val, nil)
				m.popInstanceToken()
				if stop {
					break
				}
			}
		} else {
			stop = m.emit()
		}
		m.popSchemaToken()
		return stop

	case FormProperties:
		return m.validateProperties(schema, instance, parentTag)

	case FormDiscriminator:
		return m.validateDiscriminator(schema, instance)

	default:
		return false
	}
}

func (m *machine) validateProperties(schema Schema, instance any, parentTag *string) bool {
	obj, isObject := instance.(map[string]any)
	if !isObject {
		token := "optionalProperties"
		if schema.requiredProperties != nil {
			token = "properties"
		}
		m.pushSchemaToken(token)
		stop := m.emit()
		m.popSchemaToken()
		return stop
	}

	stop := false

	if schema.requiredProperties != nil {
		m.pushSchemaToken("properties")
		for key, sub := range schema.requiredProperties {
			m.pushSchemaToken(key)
			if val, ok := obj[key]; ok {
				m.pushInstanceToken(key)
				stop = m.validate(sub, val, nil)
				m.popInstanceToken()
			} else {
				stop = m.emit()
			}
			m.popSchemaToken()
			if stop {
				break
			}
		}
		m.popSchemaToken()
	}

	if !stop && schema.optionalProperties != nil {
		m.pushSchemaToken("optionalProperties")
		for key, sub := range schema.optionalProperties {
			m.pushSchemaToken(key)
			if val, ok := obj[key]; ok {
				m.pushInstanceToken(key)
				stop = m.validate(sub, val, nil)
				m.popInstanceToken()
			}
			m.popSchemaToken()
			if stop {
				break
			}
		}
		m.popSchemaToken()
	}

	if !stop && !schema.additionalProps {
		for key := range obj {
			if _, ok := schema.requiredProperties[key]; ok {
				continue
			}
			if _, ok := schema.optionalProperties[key]; ok {
				continue
			}
			if parentTag != nil && key == *parentTag {
				continue
			}
			m.pushInstanceToken(key)
			stop = m.emit()
			m.popInstanceToken()
			if stop {
				break
			}
		}
	}

	return stop
}

func (m *machine) validateDiscriminator(schema Schema, instance any) bool {
	m.pushSchemaToken("discriminator")
	stop := false

	obj, isObject := instance.(map[string]any)
	tag := schema.discriminator.Tag

	if !isObject {
		stop = m.emit()
	} else if rawTag, hasTag := obj[tag]; !hasTag {
		m.pushSchemaToken("tag")
		stop = m.emit()
		m.popSchemaToken()
	} else if tagValue, isString := rawTag.(string); !isString {
		m.pushSchemaToken("tag")
		m.pushInstanceToken(tag)
		stop = m.emit()
		m.popInstanceToken()
		m.popSchemaToken()
	} else if mapped, inMapping := schema.discriminator.Mapping[tagValue]; !inMapping {
		m.pushSchemaToken("mapping")
		m.pushInstanceToken(tag)
		stop = m.emit()
		m.popInstanceToken()
		m.popSchemaToken()
	} else {
		m.pushSchemaToken("mapping")
		m.pushSchemaToken(tagValue)
		stop = m.validate(mapped, instance, &tag)
		m.popSchemaToken()
		m.popSchemaToken()
	}

	m.popSchemaToken()
	return stop
}

func typeMatches(t Type, instance any) bool {
	switch t {
	case TypeBoolean:
		_, ok := instance.(bool)
		return ok

	case TypeFloat32, TypeFloat64:
		_, ok := instance.(float64)
		return ok

	case TypeInt8, TypeUint8, TypeInt16, TypeUint16, TypeInt32, TypeUint32:
		num, ok := instance.(float64)
		if !ok || math.Trunc(num) != num {
			return false
		}
		min, max, _ := integerRange(t)
		return num >= min && num <= max

	case TypeString:
		_, ok := instance.(string)
		return ok

	case TypeTimestamp:
		s, ok := instance.(string)
		return ok && isValidTimestamp(s)

	default:
		return false
	}
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// Validate walks schema against instance under limits, returning the
// complete set of validation errors in the order they were produced, or
// MaxDepthExceeded if a ref chain would have exceeded limits.MaxDepth. When
// limits.MaxErrors is non-zero, validation stops as soon as that many
// errors have been produced and returns exactly those errors.
//
// schema must already have passed Verify; Validate does not re-check
// cross-schema invariants.
func Validate(limits Limits, schema Schema, instance any) ([]ValidationError, error) {
	m := &machine{
		root:      schema,
		maxDepth:  limits.MaxDepth,
		maxErrors: limits.MaxErrors,
	}
	m.schemaFrames = [][]string{{}}

	m.validate(schema, instance, nil)

	if m.maxDepthHit {
		return nil, MaxDepthExceeded{}
	}

	return m.errors, nil
}
