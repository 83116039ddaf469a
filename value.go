package fakejson

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind classifies generated values.
type ValueKind uint8

// Value kinds. The zero Value is an empty String.
const (
	StringValue ValueKind = iota
	BoolValue
	IntValue
	FloatValue
)

func (k ValueKind) String() string {
	switch k {
	case StringValue:
		return "String"
	case BoolValue:
		return "Bool"
	case IntValue:
		return "Int"
	case FloatValue:
		return "Float"
	default:
		return "Unknown"
	}
}

// Value is a generated value. It is comparable: two values are equal only if
// they have the same kind and the same payload, so it can key uniqueness sets
// directly. Floats compare by bit pattern.
type Value struct {
	kind ValueKind
	bits uint64
	str  string
}

// Bool returns a Bool value.
func Bool(b bool) Value {
	if b {
		return Value{kind: BoolValue, bits: 1}
	}
	return Value{kind: BoolValue}
}

// Int returns an Int value. Integers are unsigned, as ranges produce them.
func Int(i uint64) Value {
	return Value{kind: IntValue, bits: i}
}

// Float returns a Float value. Non-finite floats are allowed here but fail
// in Node.
func Float(f float64) Value {
	return Value{kind: FloatValue, bits: math.Float64bits(f)}
}

// String returns a String value.
func String(s string) Value {
	return Value{kind: StringValue, str: s}
}

// Kind reports which payload v carries.
func (v Value) Kind() ValueKind { return v.kind }

// AsBool, AsInt, AsFloat and AsString return the payload when the kind matches.
func (v Value) AsBool() (bool, bool) { return v.bits == 1, v.kind == BoolValue }

func (v Value) AsInt() (uint64, bool) { return v.bits, v.kind == IntValue }

func (v Value) AsFloat() (float64, bool) { return math.Float64frombits(v.bits), v.kind == FloatValue }

func (v Value) AsString() (string, bool) { return v.str, v.kind == StringValue }

// String renders the value for display: True/False, decimal numbers, raw strings.
func (v Value) String() string {
	switch v.kind {
	case BoolValue:
		if v.bits == 1 {
			return "True"
		}
		return "False"
	case IntValue:
		return strconv.FormatUint(v.bits, 10)
	case FloatValue:
		return strconv.FormatFloat(math.Float64frombits(v.bits), 'f', -1, 64)
	default:
		return v.str
	}
}

// Node converts the value into an output tree scalar. Non-finite floats have
// no JSON representation and fail with ErrNonFiniteFloat.
func (v Value) Node() (*Node, error) {
	switch v.kind {
	case BoolValue:
		return NewBool(v.bits == 1), nil
	case IntValue:
		return NewNumber(strconv.FormatUint(v.bits, 10)), nil
	case FloatValue:
		f := math.Float64frombits(v.bits)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %v", ErrNonFiniteFloat, f)
		}
		return NewNumber(formatFloatLiteral(f)), nil
	default:
		return NewString(v.str), nil
	}
}

// formatFloatLiteral keeps a fraction or exponent so the literal reads back as a float.
func formatFloatLiteral(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
