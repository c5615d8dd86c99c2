package jddf

// Verify checks the semantic invariants that the loader does not: that
// definitions only appear on the root, every ref resolves, required and
// optional property sets are disjoint, and discriminator mappings are
// well-formed. Callers must call Verify before trusting a loaded Schema;
// FromJSON alone is not sufficient.
func (s Schema) Verify() error {
	return verify(s, s, true)
}

func verify(s Schema, root Schema, isRoot bool) error {
	if s.Definitions != nil {
		if !isRoot {
			return ErrNonRootDefinitions
		}
		for _, def := range s.Definitions {
			if err := verify(def, root, false); err != nil {
				return err
			}
		}
	}

	switch s.form {
	case FormEmpty, FormType, FormEnum:
		return nil

	case FormRef:
		if root.Definitions == nil {
			return ErrNoSuchDefinition(s.ref)
		}
		if _, ok := root.Definitions[s.ref]; !ok {
			return ErrNoSuchDefinition(s.ref)
		}
		return nil

	case FormElements:
		return verify(*s.elements, root, false)

	case FormValues:
		return verify(*s.values, root, false)

	case FormProperties:
		for key := range s.requiredProperties {
			if _, ok := s.optionalProperties[key]; ok {
				return ErrRepeatedProperty(key)
			}
		}
		for _, sub := range s.requiredProperties {
			if err := verify(sub, root, false); err != nil {
				return err
			}
		}
		for _, sub := range s.optionalProperties {
			if err := verify(sub, root, false); err != nil {
				return err
			}
		}
		return nil

	case FormDiscriminator:
		for _, mapped := range s.discriminator.Mapping {
			if mapped.form != FormProperties {
				return ErrNonPropertiesMapping
			}
			if _, ok := mapped.requiredProperties[s.discriminator.Tag]; ok {
				return ErrRepeatedTagInProperties(s.discriminator.Tag)
			}
			if _, ok := mapped.optionalProperties[s.discriminator.Tag]; ok {
				return ErrRepeatedTagInProperties(s.discriminator.Tag)
			}
			if err := verify(mapped, root, false); err != nil {
				return err
			}
		}
		return nil

	default:
		return nil
	}
}
