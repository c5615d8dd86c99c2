package jddf

// Form names one of the eight mutually exclusive shapes a schema can take.
// The zero value is FormEmpty, matching a schema with no keywords set.
type Form int

const (
	FormEmpty Form = iota
	FormRef
	FormType
	FormEnum
	FormElements
	FormProperties
	FormValues
	FormDiscriminator
)

func (f Form) String() string {
	switch f {
	case FormEmpty:
		return "empty"
	case FormRef:
		return "ref"
	case FormType:
		return "type"
	case FormEnum:
		return "enum"
	case FormElements:
		return "elements"
	case FormProperties:
		return "properties"
	case FormValues:
		return "values"
	case FormDiscriminator:
		return "discriminator"
	default:
		return "unknown"
	}
}

// Type names one of the eleven JDDF primitive types.
type Type string

const (
	TypeBoolean   Type = "boolean"
	TypeFloat32   Type = "float32"
	TypeFloat64   Type = "float64"
	TypeInt8      Type = "int8"
	TypeUint8     Type = "uint8"
	TypeInt16     Type = "int16"
	TypeUint16    Type = "uint16"
	TypeInt32     Type = "int32"
	TypeUint32    Type = "uint32"
	TypeString    Type = "string"
	TypeTimestamp Type = "timestamp"
)

var validTypes = map[Type]bool{
	TypeBoolean:   true,
	TypeFloat32:   true,
	TypeFloat64:   true,
	TypeInt8:      true,
	TypeUint8:     true,
	TypeInt16:     true,
	TypeUint16:    true,
	TypeInt32:     true,
	TypeUint32:    true,
	TypeString:    true,
	TypeTimestamp: true,
}

// integerRange returns the inclusive bounds for an integer Type. ok is
// false for non-integer types (boolean, float32, float64, string, timestamp).
func integerRange(t Type) (min, max float64, ok bool) {
	switch t {
	case TypeInt8:
		return -128, 127, true
	case TypeUint8:
		return 0, 255, true
	case TypeInt16:
		return -32768, 32767, true
	case TypeUint16:
		return 0, 65535, true
	case TypeInt32:
		return -2147483648, 2147483647, true
	case TypeUint32:
		return 0, 4294967295, true
	default:
		return 0, 0, false
	}
}
