package fakejson

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Names of the built-in scalar kinds. They cannot be redefined by users.
const (
	BoolType  = "Bool"
	IntType   = "Int"
	FloatType = "Float"
)

var builtinTypes = []string{BoolType, IntType, FloatType}

// Session owns the state of one generation pass: the random source, the
// user-defined types, the uniqueness registry and the reference table.
// A Session is not safe for concurrent use.
type Session struct {
	opts   Options
	rng    Random
	prims  Primitives
	logger Logger

	userDefined map[string][]string
	userOrder   []string

	// unique maps a unique descriptor (without '*') to the values it produced.
	unique map[string]map[Value]struct{}
	// refs holds the first value generated for each reference name.
	refs map[string]Value
}

// NewSession builds a session from user-defined type declarations of the
// form "Name:Value1|Value2". Options default to DefaultOptions.
func NewSession(declarations []string, opts ...Options) (*Session, error) {
	opt := DefaultOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}
	opt, err := opt.withDefaults()
	if err != nil {
		return nil, err
	}

	s := &Session{
		opts:        opt,
		rng:         opt.Random,
		prims:       opt.Primitives,
		logger:      opt.Logger,
		userDefined: make(map[string][]string, len(declarations)),
		unique:      make(map[string]map[Value]struct{}),
		refs:        make(map[string]Value),
	}

	for _, decl := range declarations {
		name, values, err := SplitUserDefined(decl)
		if err != nil {
			return nil, err
		}
		switch {
		case name == "":
			return nil, fmt.Errorf("%w: %q", ErrEmptyTypeName, decl)
		case slices.Contains(builtinTypes, name):
			return nil, fmt.Errorf("%w: %q (%s)", ErrReservedType, name, decl)
		case len(values) == 0:
			return nil, fmt.Errorf("%w: %q, use 'Name:Value1|Value2'", ErrEmptyValues, decl)
		}
		if _, exists := s.userDefined[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateType, decl)
		}
		s.userDefined[name] = values
		s.userOrder = append(s.userOrder, name)
	}

	return s, nil
}

// Generate produces a value for a descriptor. The boolean result is false
// when a nullable descriptor ("Name?") chose to produce no value; that is not
// an error.
func (s *Session) Generate(descriptor string) (Value, bool, error) {
	return s.generateNullable(descriptor, 0)
}

func (s *Session) generateNullable(descriptor string, depth int) (Value, bool, error) {
	inner, nullable := SplitNullable(descriptor)
	if nullable && s.omit() {
		s.logger.Debugf("omitted nullable value for %q", descriptor)
		return Value{}, false, nil
	}
	v, err := s.generate(inner, depth)
	if err != nil {
		return Value{}, false, err
	}
	return v, true, nil
}

// omit draws the Bernoulli trial deciding whether a nullable entry is dropped.
func (s *Session) omit() bool {
	return s.rng.Bool(s.opts.NullProbability)
}

// generate is the non-nullable path: a trailing '?' here is part of the name.
func (s *Session) generate(descriptor string, depth int) (Value, error) {
	if depth > s.opts.MaxDepth {
		return Value{}, fmt.Errorf("%w (%d) at %q", ErrMaxDepth, s.opts.MaxDepth, descriptor)
	}

	d := Classify(descriptor)
	switch d.Kind {
	case ReferenceDescriptor:
		return s.generateReference(d, depth)
	case UniqueDescriptor:
		return s.generateUnique(d, depth)
	case RangeDescriptor:
		return s.generateRange(d)
	case EnumDescriptor:
		return s.generateEnum(d)
	default:
		return s.generateBare(d.Name)
	}
}

func (s *Session) generateReference(d Descriptor, depth int) (Value, error) {
	if v, ok := s.refs[d.Ref]; ok {
		s.logger.Debugf("reference %q hit", d.Ref)
		return v, nil
	}
	v, err := s.generate(d.Inner, depth+1)
	if err != nil {
		return Value{}, err
	}
	s.refs[d.Ref] = v
	s.logger.Debugf("reference %q stored %s value", d.Ref, v.Kind())
	return v, nil
}

func (s *Session) generateUnique(d Descriptor, depth int) (Value, error) {
	seen, ok := s.unique[d.Inner]
	if !ok {
		seen = make(map[Value]struct{})
		s.unique[d.Inner] = seen
	}

	for attempt := 1; attempt <= s.opts.UniqueAttempts; attempt++ {
		v, err := s.generate(d.Inner, depth+1)
		if err != nil {
			return Value{}, err
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if attempt > 1 {
			s.logger.Debugf("unique %q took %d attempts", d.Inner, attempt)
		}
		return v, nil
	}

	return Value{}, &UniqueError{Descriptor: d.Inner, Produced: len(seen), Attempts: s.opts.UniqueAttempts}
}

func (s *Session) generateRange(d Descriptor) (Value, error) {
	r, err := ParseRange(d.Lo, d.Hi)
	if err != nil {
		return Value{}, err
	}
	if r.Integer {
		return Int(r.IntLo + s.rng.Uint64N(r.IntHi-r.IntLo)), nil
	}
	return Float(s.uniformFloat(r.FloatLo, r.FloatHi)), nil
}

// uniformFloat draws from [lo, hi) without overflowing when hi-lo exceeds MaxFloat64.
func (s *Session) uniformFloat(lo, hi float64) float64 {
	t := s.rng.Float64()
	v := lo*(1-t) + hi*t
	if v >= hi {
		// rounding can land on hi for very close bounds
		v = math.Nextafter(hi, lo)
	}
	if v < lo {
		v = lo
	}
	return v
}

func (s *Session) generateEnum(d Descriptor) (Value, error) {
	choice, ok := choose(s.rng, d.Choices)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q, write at least one value around '|'", ErrEmptyEnum, d.Raw)
	}
	return String(choice), nil
}

// resolution is the source a bare name resolves to.
type resolution uint8

const (
	unresolved resolution = iota
	userDefinedSource
	builtinSource
	primitiveSource
)

func (s *Session) resolve(name string) resolution {
	if _, ok := s.userDefined[name]; ok {
		return userDefinedSource
	}
	if slices.Contains(builtinTypes, name) {
		return builtinSource
	}
	if s.prims != nil && slices.Contains(s.prims.Catalog(), name) {
		return primitiveSource
	}
	return unresolved
}

func (s *Session) generateBare(name string) (Value, error) {
	if values, ok := s.userDefined[name]; ok {
		choice, ok := choose(s.rng, values)
		if !ok {
			return Value{}, fmt.Errorf("%w: %q", ErrEmptyValues, name)
		}
		return String(choice), nil
	}

	switch name {
	case BoolType:
		return Bool(s.rng.Bool(0.5)), nil
	case IntType:
		return Int(s.rng.Uint64()), nil
	case FloatType:
		return Float(s.rng.Float64() * math.MaxFloat64), nil
	}

	if s.prims == nil {
		return Value{}, fmt.Errorf("%w: %q", ErrUnrecognizedType, name)
	}
	out, err := s.prims.Generate(name)
	if err != nil {
		if errors.Is(err, ErrUnrecognizedType) {
			return Value{}, err
		}
		return Value{}, fmt.Errorf("generating %q: %w", name, err)
	}
	return String(out), nil
}

// List returns every bare type name: user-defined types in declaration
// order, the built-in scalars, then the primitive catalog.
func (s *Session) List() []string {
	var catalog []string
	if s.prims != nil {
		catalog = s.prims.Catalog()
	}
	list := make([]string, 0, len(s.userOrder)+len(builtinTypes)+len(catalog))
	list = append(list, s.userOrder...)
	list = append(list, builtinTypes...)
	list = append(list, catalog...)
	return list
}

// Values returns the newline-joined values of an enumerable type.
func (s *Session) Values(name string) (string, error) {
	switch s.resolve(name) {
	case userDefinedSource:
		return strings.Join(s.userDefined[name], "\n"), nil
	case builtinSource:
		if name == BoolType {
			return Bool(true).String() + "\n" + Bool(false).String(), nil
		}
		return "", fmt.Errorf("%w: %q", ErrNotEnumerable, name)
	case primitiveSource:
		values, ok := s.prims.Values(name)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrNotEnumerable, name)
		}
		return strings.Join(values, "\n"), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedType, name)
	}
}

// Logger returns the session's logger.
func (s *Session) Logger() Logger {
	return s.logger
}
