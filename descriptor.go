package fakejson

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DescriptorKind is the modifier recognized on a type descriptor.
type DescriptorKind uint8

const (
	BareDescriptor      DescriptorKind = iota // a type name: FirstName, Team, Bool
	ReferenceDescriptor                       // Inner[ref]: first value reused for ref
	UniqueDescriptor                          // Inner*: no repeated values
	RangeDescriptor                           // lo..hi: number in [lo, hi)
	EnumDescriptor                            // a|b|c: one of the choices
)

func (k DescriptorKind) String() string {
	switch k {
	case ReferenceDescriptor:
		return "reference"
	case UniqueDescriptor:
		return "unique"
	case RangeDescriptor:
		return "range"
	case EnumDescriptor:
		return "enum"
	default:
		return "bare"
	}
}

// Descriptor is a classified type descriptor. Only the fields relevant to
// Kind are set:
//
//	Reference: Inner, Ref   ("FirstName[author]")
//	Unique:    Inner        ("Email*")
//	Range:     Lo, Hi       ("1..10", "0.5..")
//	Enum:      Choices      ("a|b|c")
//	Bare:      Name         ("FirstName")
type Descriptor struct {
	Kind    DescriptorKind
	Raw     string
	Inner   string
	Ref     string
	Lo, Hi  string
	Choices []string
	Name    string
}

// SplitNullable strips a trailing '?' and reports whether it was present.
func SplitNullable(descriptor string) (string, bool) {
	if inner, ok := strings.CutSuffix(descriptor, "?"); ok {
		return inner, true
	}
	return descriptor, false
}

// Classify recognizes the outermost modifier of a descriptor. Precedence is
// reference, unique, range, enum, then bare name.
func Classify(descriptor string) Descriptor {
	d := Descriptor{Raw: descriptor}

	if body, ok := strings.CutSuffix(descriptor, "]"); ok {
		if pos := strings.LastIndexByte(body, '['); pos >= 0 {
			d.Kind = ReferenceDescriptor
			d.Inner = body[:pos]
			d.Ref = body[pos+1:]
			return d
		}
	}

	if inner, ok := strings.CutSuffix(descriptor, "*"); ok {
		d.Kind = UniqueDescriptor
		d.Inner = inner
		return d
	}

	if lo, hi, ok := strings.Cut(descriptor, ".."); ok {
		d.Kind = RangeDescriptor
		d.Lo = lo
		d.Hi = hi
		return d
	}

	if strings.Contains(descriptor, "|") {
		d.Kind = EnumDescriptor
		d.Choices = splitChoices(descriptor)
		return d
	}

	d.Name = descriptor
	return d
}

// splitChoices splits on '|' and drops empty segments.
func splitChoices(s string) []string {
	parts := strings.Split(s, "|")
	choices := parts[:0]
	for _, p := range parts {
		if p != "" {
			choices = append(choices, p)
		}
	}
	return choices
}

// SplitUserDefined parses a "Name:Value1|Value2" declaration.
func SplitUserDefined(input string) (string, []string, error) {
	name, values, ok := strings.Cut(input, ":")
	if !ok {
		return "", nil, fmt.Errorf("%w: %q, expected 'Name:Value1|Value2'", ErrMissingSeparator, input)
	}
	if strings.Contains(values, ":") {
		return "", nil, fmt.Errorf("%w: %q, pass one declaration per type", ErrTooManySeparators, input)
	}
	return name, splitChoices(values), nil
}

// Range is a parsed numeric range [lo, hi).
type Range struct {
	Integer bool

	IntLo, IntHi     uint64
	FloatLo, FloatHi float64
}

// ParseRange parses the bounds of "lo..hi". Both bounds must be unsigned
// integers for an integer range, otherwise both must be finite floats. An
// empty upper bound means the largest value of the range type.
func ParseRange(lo, hi string) (Range, error) {
	raw := lo + ".." + hi

	if intLo, err := strconv.ParseUint(lo, 10, 64); err == nil {
		intHi := uint64(math.MaxUint64)
		parsed := hi == ""
		if !parsed {
			intHi, err = strconv.ParseUint(hi, 10, 64)
			parsed = err == nil
		}
		if parsed {
			if intLo >= intHi {
				return Range{}, fmt.Errorf("%w: %q", ErrEmptyRange, raw)
			}
			return Range{Integer: true, IntLo: intLo, IntHi: intHi}, nil
		}
	}

	floatLo, ok := parseFiniteFloat(lo)
	if !ok {
		return Range{}, &BoundError{Descriptor: raw, Token: lo}
	}
	floatHi := math.MaxFloat64
	if hi != "" {
		if floatHi, ok = parseFiniteFloat(hi); !ok {
			return Range{}, &BoundError{Descriptor: raw, Token: hi}
		}
	}
	if floatLo >= floatHi {
		return Range{}, fmt.Errorf("%w: %q", ErrEmptyRange, raw)
	}
	return Range{FloatLo: floatLo, FloatHi: floatHi}, nil
}

func parseFiniteFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
