package jddf

// Closed keyword set recognized by the loader. Anything else in a schema
// object is ignored for form detection, per spec.
const (
	kwDefinitions        = "definitions"
	kwRef                = "ref"
	kwType               = "type"
	kwEnum               = "enum"
	kwElements           = "elements"
	kwProperties         = "properties"
	kwOptionalProperties = "optionalProperties"
	kwAdditionalProps    = "additionalProperties"
	kwValues             = "values"
	kwDiscriminator      = "discriminator"
)

// FromJSON converts a generic JSON value (as produced by
// github.com/goccy/go-json, i.e. nil/bool/float64/string/[]any/map[string]any)
// into a Schema. It is total on valid inputs and rejects malformed input
// with an InvalidSchema error.
//
// FromJSON does not check cross-schema invariants such as ref resolution or
// properties/discriminator disjointness — call Verify on the result before
// trusting it.
func FromJSON(v any) (Schema, error) {
	return loadSchema(v)
}

func loadSchema(v any) (Schema, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Schema{}, invalidSchema("schema must be object")
	}

	var s Schema

	if rawDefs, present := obj[kwDefinitions]; present {
		defsObj, ok := rawDefs.(map[string]any)
		if !ok {
			return Schema{}, invalidSchema("definitions must be object")
		}

		defs := make(map[string]Schema, len(defsObj))
		for name, rawDef := range defsObj {
			def, err := loadSchema(rawDef)
			if err != nil {
				return Schema{}, err
			}
			defs[name] = def
		}
		s.Definitions = defs
	}

	form, err := detectForm(obj)
	if err != nil {
		return Schema{}, err
	}

	switch form {
	case FormEmpty:
		s.form = FormEmpty
	case FormRef:
		name, ok := obj[kwRef].(string)
		if !ok {
			return Schema{}, invalidSchema("ref must be a string")
		}
		s.form = FormRef
		s.ref = name
	case FormType:
		raw, ok := obj[kwType].(string)
		if !ok {
			return Schema{}, invalidSchema("type must be a string")
		}
		t := Type(raw)
		if !validTypes[t] {
			return Schema{}, ErrInvalidType(raw)
		}
		s.form = FormType
		s.typ = t
	case FormEnum:
		rawEnum, ok := obj[kwEnum].([]any)
		if !ok {
			return Schema{}, invalidSchema("enum must be an array")
		}
		if len(rawEnum) == 0 {
			return Schema{}, ErrEmptyEnum
		}
		seen := make(map[string]bool, len(rawEnum))
		values := make([]string, 0, len(rawEnum))
		for _, rawValue := range rawEnum {
			value, ok := rawValue.(string)
			if !ok {
				return Schema{}, invalidSchema("enum values must be strings")
			}
			if seen[value] {
				return Schema{}, ErrRepeatedEnumValue(value)
			}
			seen[value] = true
			values = append(values, value)
		}
		s.form = FormEnum
		s.enum = values
	case FormElements:
		sub, err := loadSchema(obj[kwElements])
		if err != nil {
			return Schema{}, err
		}
		s.form = FormElements
		s.elements = &sub
	case FormProperties:
		required, optional, additional, err := loadProperties(obj)
		if err != nil {
			return Schema{}, err
		}
		s.form = FormProperties
		s.requiredProperties = required
		s.optionalProperties = optional
		s.additionalProps = additional
	case FormValues:
		sub, err := loadSchema(obj[kwValues])
		if err != nil {
			return Schema{}, err
		}
		s.form = FormValues
		s.values = &sub
	case FormDiscriminator:
		disc, err := loadDiscriminator(obj[kwDiscriminator])
		if err != nil {
			return Schema{}, err
		}
		s.form = FormDiscriminator
		s.discriminator = disc
	}

	return s, nil
}

// detectForm groups the nine keyword keys into the closed set of candidate
// forms and requires that exactly one be present.
func detectForm(obj map[string]any) (Form, error) {
	_, hasRef := obj[kwRef]
	_, hasType := obj[kwType]
	_, hasEnum := obj[kwEnum]
	_, hasElements := obj[kwElements]
	_, hasProperties := obj[kwProperties]
	_, hasOptionalProperties := obj[kwOptionalProperties]
	_, hasAdditionalProps := obj[kwAdditionalProps]
	_, hasValues := obj[kwValues]
	_, hasDiscriminator := obj[kwDiscriminator]

	hasPropertiesGroup := hasProperties || hasOptionalProperties || hasAdditionalProps

	candidates := 0
	var form Form

	if hasRef {
		candidates++
		form = FormRef
	}
	if hasType {
		candidates++
		form = FormType
	}
	if hasEnum {
		candidates++
		form = FormEnum
	}
	if hasElements {
		candidates++
		form = FormElements
	}
	if hasPropertiesGroup {
		candidates++
		form = FormProperties
	}
	if hasValues {
		candidates++
		form = FormValues
	}
	if hasDiscriminator {
		candidates++
		form = FormDiscriminator
	}

	if candidates == 0 {
		return FormEmpty, nil
	}
	if candidates > 1 {
		return FormEmpty, ErrInvalidForm
	}
	// additionalProperties takes part in the exclusivity check above, but
	// on its own it does not make a Properties-form schema.
	if form == FormProperties && !hasProperties && !hasOptionalProperties {
		return FormEmpty, ErrInvalidForm
	}
	return form, nil
}

func loadProperties(obj map[string]any) (required, optional map[string]Schema, additional bool, err error) {
	if rawRequired, present := obj[kwProperties]; present {
		requiredObj, ok := rawRequired.(map[string]any)
		if !ok {
			return nil, nil, false, invalidSchema("properties must be object")
		}
		required = make(map[string]Schema, len(requiredObj))
		for key, rawSub := range requiredObj {
			sub, err := loadSchema(rawSub)
			if err != nil {
				return nil, nil, false, err
			}
			required[key] = sub
		}
	}

	if rawOptional, present := obj[kwOptionalProperties]; present {
		optionalObj, ok := rawOptional.(map[string]any)
		if !ok {
			return nil, nil, false, invalidSchema("optionalProperties must be object")
		}
		optional = make(map[string]Schema, len(optionalObj))
		for key, rawSub := range optionalObj {
			sub, err := loadSchema(rawSub)
			if err != nil {
				return nil, nil, false, err
			}
			optional[key] = sub
		}
	}

	additional = false
	if rawAdditional, present := obj[kwAdditionalProps]; present {
		b, ok := rawAdditional.(bool)
		if !ok {
			return nil, nil, false, invalidSchema("additionalProperties must be a boolean")
		}
		additional = b
	}

	return required, optional, additional, nil
}

func loadDiscriminator(raw any) (Discriminator, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Discriminator{}, invalidSchema("discriminator must be object")
	}

	tag, ok := obj["tag"].(string)
	if !ok {
		return Discriminator{}, invalidSchema("discriminator.tag must be a string")
	}

	rawMapping, ok := obj["mapping"].(map[string]any)
	if !ok {
		return Discriminator{}, invalidSchema("discriminator.mapping must be object")
	}

	mapping := make(map[string]Schema, len(rawMapping))
	for name, rawSub := range rawMapping {
		sub, err := loadSchema(rawSub)
		if err != nil {
			return Discriminator{}, err
		}
		mapping[name] = sub
	}

	return Discriminator{Tag: tag, Mapping: mapping}, nil
}
