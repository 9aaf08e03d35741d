package engine

import (
	"fmt"
	"strconv"
)

// Format identifies which member of a Value is populated.  It mirrors the subset of the engine's
// property formats that the player marshals.
type Format int

const (
	// FormatNone marks the zero Value, which carries nothing and is never accepted by the engine.
	FormatNone Format = iota
	// FormatFlag is a boolean property (yes/no on the engine side)
	FormatFlag
	// FormatDouble is a floating point property
	FormatDouble
	// FormatString is a plain string property
	FormatString
)

func (f Format) String() string {
	switch f {
	case FormatFlag:
		return "flag"
	case FormatDouble:
		return "double"
	case FormatString:
		return "string"
	default:
		return "none"
	}
}

// Value is a tagged union over the property formats.  Build one with Flag, Double or String.
type Value struct {
	format Format
	flag   bool
	double float64
	str    string
}

// Flag wraps a boolean value
func Flag(b bool) Value {
	return Value{format: FormatFlag, flag: b}
}

// Double wraps a floating point value
func Double(f float64) Value {
	return Value{format: FormatDouble, double: f}
}

// String wraps a string value
func String(s string) Value {
	return Value{format: FormatString, str: s}
}

// Format returns the tag of the value
func (v Value) Format() Format {
	return v.format
}

// Flag returns the boolean member.  ok is false when the value is not a flag.
func (v Value) Flag() (b bool, ok bool) {
	return v.flag, v.format == FormatFlag
}

// Double returns the floating point member.  ok is false when the value is not a double.
func (v Value) Double() (f float64, ok bool) {
	return v.double, v.format == FormatDouble
}

// Str returns the string member.  ok is false when the value is not a string.
func (v Value) Str() (s string, ok bool) {
	return v.str, v.format == FormatString
}

// Raw returns the member as the plain Go type matching its tag: bool, float64 or string.
func (v Value) Raw() any {
	switch v.format {
	case FormatFlag:
		return v.flag
	case FormatDouble:
		return v.double
	case FormatString:
		return v.str
	default:
		return nil
	}
}

// String renders the value the way the engine's option parser expects it.
func (v Value) String() string {
	switch v.format {
	case FormatFlag:
		if v.flag {
			return "yes"
		}
		return "no"
	case FormatDouble:
		return strconv.FormatFloat(v.double, 'f', -1, 64)
	case FormatString:
		return v.str
	default:
		return "<none>"
	}
}

// FromRaw converts a value read back from the engine into a Value of the wanted format.  A raw value
// whose Go type does not match the format is reported as ErrUnexpectedValue.
func FromRaw(format Format, raw any) (Value, error) {
	switch format {
	case FormatFlag:
		if b, ok := raw.(bool); ok {
			return Flag(b), nil
		}
	case FormatDouble:
		if f, ok := raw.(float64); ok {
			return Double(f), nil
		}
	case FormatString:
		if s, ok := raw.(string); ok {
			return String(s), nil
		}
	}
	return Value{}, fmt.Errorf("%w: got %T for %s", ErrUnexpectedValue, raw, format)
}
