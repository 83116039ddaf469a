package fakejson

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// User-defined type declarations
	ErrMissingSeparator  = errors.New("user-defined type is missing the ':' separator")
	ErrTooManySeparators = errors.New("user-defined type has more than one ':' separator")
	ErrEmptyTypeName     = errors.New("user-defined type has an empty name")
	ErrEmptyValues       = errors.New("user-defined type has no values")
	ErrDuplicateType     = errors.New("user-defined type declared twice")
	ErrReservedType      = errors.New("user-defined type uses a reserved name")

	// Resolution
	ErrUnrecognizedType = errors.New("unrecognized data type")
	ErrNotEnumerable    = errors.New("data type is not enumerable")

	// Schema shape
	ErrInvalidSchemaType    = errors.New("invalid schema type")
	ErrMissingArrayDataType = errors.New("array is missing its data type")
	ErrExpectedInteger      = errors.New("expected an integer")
	ErrArrayArity           = errors.New("array takes a data type and at most two bounds")
	ErrArrayLength          = errors.New("array length out of range")
	ErrMaxDepth             = errors.New("exceeded maximum generation depth")
	ErrDuplicateKey         = errors.New("duplicate key")

	// Configuration
	ErrInvalidOption = errors.New("invalid option")
	ErrNegativeCount = errors.New("document count must not be negative")

	// Numeric
	ErrInvalidBound   = errors.New("invalid range bound")
	ErrEmptyRange     = errors.New("empty range")
	ErrNonFiniteFloat = errors.New("non-finite float cannot be represented")

	// Enumerations
	ErrEmptyEnum = errors.New("enumeration has no values")

	// Uniqueness
	ErrUniqueExhausted = errors.New("could not produce a unique value")
)

// UniqueError reports that the retry budget of a unique descriptor ran out.
type UniqueError struct {
	Descriptor string // inner descriptor, without the '*'
	Produced   int    // distinct values produced so far in the session
	Attempts   int
}

func (e *UniqueError) Error() string {
	return fmt.Sprintf("could not produce a unique value for %q after %d attempts (%d values already produced)",
		e.Descriptor, e.Attempts, e.Produced)
}

func (e *UniqueError) Unwrap() error {
	return ErrUniqueExhausted
}

// BoundError carries the range bound token that failed to parse.
type BoundError struct {
	Descriptor string
	Token      string
}

func (e *BoundError) Error() string {
	return fmt.Sprintf("invalid range bound %q in %q: expected an unsigned integer or a finite float", e.Token, e.Descriptor)
}

func (e *BoundError) Unwrap() error {
	return ErrInvalidBound
}
