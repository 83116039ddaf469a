package fakejson

import "fmt"

// Primitives is the catalog of named primitive generators (names, emails,
// addresses, ...) a session falls back to for bare names that are neither
// user-defined nor one of Bool, Int and Float.
type Primitives interface {
	// Generate produces a value for name. Unknown names must return an
	// error wrapping ErrUnrecognizedType.
	Generate(name string) (string, error)
	// Catalog lists the names Generate accepts.
	Catalog() []string
	// Values lists every possible value of an enumerable type. ok is false
	// for unknown or non-enumerable names.
	Values(name string) (values []string, ok bool)
}

// Options configures a generation session.
type Options struct {
	// Random is the session's random source (default: NewEntropyRandom()).
	Random Random
	// Primitives resolves catalog names (default: none, only user-defined
	// types and Bool/Int/Float resolve).
	Primitives Primitives

	// NullProbability is the chance a '?' descriptor or key is omitted. It is
	// used as given, so 0 never omits; start from DefaultOptions for 0.3.
	// Values outside [0, 1] are rejected.
	NullProbability float64
	UniqueAttempts  int // Draws allowed per unique value (default: 10000)

	// Array length window used when an array directive has no bounds: [ArrayMin, ArrayMax)
	ArrayMin int // default: 1
	ArrayMax int // default: 10
	// MaxArrayLength caps the item count of any array directive (default: 1<<20)
	MaxArrayLength int

	MaxDepth int // Max nesting of schema nodes and descriptors (default: 64)

	Logger Logger // default: discards everything
}

// DefaultOptions returns the default configuration for a session.
func DefaultOptions() Options {
	return Options{
		NullProbability: 0.3,
		UniqueAttempts:  10_000,
		ArrayMin:        1,
		ArrayMax:        10,
		MaxArrayLength:  1 << 20,
		MaxDepth:        64,
	}
}

// withDefaults fills unset fields from DefaultOptions. NullProbability is
// never filled, only checked.
func (o Options) withDefaults() (Options, error) {
	def := DefaultOptions()
	if !(o.NullProbability >= 0 && o.NullProbability <= 1) {
		return o, fmt.Errorf("%w: NullProbability must be within [0, 1], got %v", ErrInvalidOption, o.NullProbability)
	}
	if o.Random == nil {
		o.Random = NewEntropyRandom()
	}
	if o.UniqueAttempts <= 0 {
		o.UniqueAttempts = def.UniqueAttempts
	}
	if o.ArrayMin < 0 || o.ArrayMax <= o.ArrayMin {
		o.ArrayMin, o.ArrayMax = def.ArrayMin, def.ArrayMax
	}
	if o.MaxArrayLength <= 0 {
		o.MaxArrayLength = def.MaxArrayLength
	}
	if o.ArrayMax > o.MaxArrayLength+1 {
		o.ArrayMax = o.MaxArrayLength + 1
		o.ArrayMin = min(o.ArrayMin, o.MaxArrayLength)
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = def.MaxDepth
	}
	if o.Logger == nil {
		o.Logger = NopLogger()
	}
	return o, nil
}
