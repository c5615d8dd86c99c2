package jddf

import "github.com/goccy/go-json"

// UnmarshalJSON decodes a JSON schema document into s via FromJSON. It lets
// Schema participate directly in larger documents decoded with
// encoding/json-compatible decoders instead of requiring callers to decode
// to `any` first.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return wrapInvalidSchema(err, "malformed json")
	}

	loaded, err := FromJSON(v)
	if err != nil {
		return err
	}

	*s = loaded
	return nil
}

// MarshalJSON re-projects s onto the nine closed schema keywords. Together
// with UnmarshalJSON/FromJSON this makes the round-trip property from
// spec.md §8 ("schema_from_json(s) then re-project to JSON yields a schema
// equivalent under §3.1") mechanically checkable.
func (s Schema) MarshalJSON() ([]byte, error) {
	obj := map[string]any{}

	if s.Definitions != nil {
		defs := make(map[string]any, len(s.Definitions))
		for name, def := range s.Definitions {
			defs[name] = def
		}
		obj[kwDefinitions] = defs
	}

	switch s.form {
	case FormEmpty:
		// no keywords

	case FormRef:
		obj[kwRef] = s.ref

	case FormType:
		obj[kwType] = string(s.typ)

	case FormEnum:
		obj[kwEnum] = s.enum

	case FormElements:
		obj[kwElements] = *s.elements

	case FormProperties:
		if s.requiredProperties != nil {
			obj[kwProperties] = toAnyMap(s.requiredProperties)
		}
		if s.optionalProperties != nil {
			obj[kwOptionalProperties] = toAnyMap(s.optionalProperties)
		}
		if s.additionalProps {
			obj[kwAdditionalProps] = true
		}

	case FormValues:
		obj[kwValues] = *s.values

	case FormDiscriminator:
		mapping := toAnyMap(s.discriminator.Mapping)
		obj[kwDiscriminator] = map[string]any{
			"tag":     s.discriminator.Tag,
			"mapping": mapping,
		}
	}

	return json.Marshal(obj)
}

func toAnyMap(m map[string]Schema) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
