package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/speakeasy-api/fakejson"
	"github.com/speakeasy-api/fakejson/codec"
	"github.com/speakeasy-api/fakejson/pkg/oasschema"
)

const arraySyntax = `An array takes a data type, then optionally one or two integers: one
integer is the exact length, two are the bounds of the length.

  ["FreeEmail"]               a random number of emails
  ["FirstName", 2]            exactly 2 first names
  ["LicencePlate", 1, 10]     between 1 and 9 licence plates`

const defineSyntax = `Data types are defined with -u 'DataTypeName:Value1|Value2|Value3'`

// formatError turns an error into the message printed on stderr.
func formatError(err error, debug, color bool) string {
	msg, hint := classifyAndHint(err)

	var b strings.Builder
	if color {
		fmt.Fprintf(&b, "\x1b[31mError:\x1b[0m \x1b[33m%s\x1b[0m\n", msg)
	} else {
		fmt.Fprintf(&b, "Error: %s\n", msg)
	}
	if hint != "" {
		fmt.Fprintf(&b, "How to fix: %s\n", indentTail(hint))
	}

	if debug {
		fmt.Fprintf(&b, "Error type: %s\n", errorChain(err))
	} else {
		b.WriteString("Use the --debug flag for more information\n")
	}
	return b.String()
}

func classifyAndHint(err error) (msg, hint string) {
	msg = err.Error()

	var fe *fileError
	if errors.As(err, &fe) {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return fmt.Sprintf("%s couldn't be found", fe.path),
				"Ensure the file exists and is accessible, or point to it with --file."
		case errors.Is(err, codec.ErrEmptyDocument):
			return fmt.Sprintf("%s is empty", fe.path), "Write a schema object such as {\"name\": \"FirstName\"}."
		case errors.Is(err, fakejson.ErrNonFiniteFloat):
			// reported like any other generation error
		default:
			return fmt.Sprintf("%s is not a valid document: %v", fe.path, fe.err),
				"The schema must be valid JSON or YAML."
		}
	}

	var uniq *fakejson.UniqueError
	switch {
	case errors.Is(err, fakejson.ErrUnrecognizedType):
		hint = "Use `fakejson list` to see the valid data types, or -u 'Name:Value1|Value2' to define your own."
	case errors.Is(err, fakejson.ErrMissingArrayDataType),
		errors.Is(err, fakejson.ErrExpectedInteger),
		errors.Is(err, fakejson.ErrArrayArity),
		errors.Is(err, fakejson.ErrArrayLength):
		msg = "invalid array syntax: " + msg
		hint = arraySyntax
	case errors.Is(err, fakejson.ErrMissingSeparator),
		errors.Is(err, fakejson.ErrEmptyValues),
		errors.Is(err, fakejson.ErrEmptyTypeName):
		hint = defineSyntax
	case errors.Is(err, fakejson.ErrTooManySeparators):
		hint = "Pass -u once per data type: -u 'Type1:Value1|Value2' -u 'Type2:Value3|Value4'"
	case errors.Is(err, fakejson.ErrDuplicateType):
		hint = "Give every -u data type a different name."
	case errors.Is(err, fakejson.ErrReservedType):
		hint = "Bool, Int and Float are built in, pick another name."
	case errors.Is(err, fakejson.ErrInvalidSchemaType):
		hint = "Values must be strings naming a data type, or arrays and objects of them."
	case errors.As(err, &uniq):
		hint = fmt.Sprintf("%q only produced %d distinct values. Widen the range, drop the '*' or use --reset.",
			uniq.Descriptor, uniq.Produced)
	case errors.Is(err, fakejson.ErrInvalidBound), errors.Is(err, fakejson.ErrEmptyRange):
		hint = "Ranges are written lo..hi with lo < hi, for example 1..10 or 0.5..2.5. 'lo..' goes up to the type maximum."
	case errors.Is(err, fakejson.ErrEmptyEnum):
		hint = "Write at least one value around '|', for example yes|no."
	case errors.Is(err, fakejson.ErrNotEnumerable):
		hint = "Only user-defined types, Bool and catalog types with a fixed list of values can be enumerated."
	case errors.Is(err, fakejson.ErrDuplicateKey):
		hint = "A key and the same key with a trailing '?' cannot share an object. Keep one of them."
	case errors.Is(err, fakejson.ErrInvalidOption):
		hint = "--null-probability takes a number from 0 (never omit) to 1 (always omit)."
	case errors.Is(err, fakejson.ErrMaxDepth):
		hint = "Reduce the nesting of the schema or raise --max-depth."
	case errors.Is(err, oasschema.ErrRecursiveRef):
		hint = "Make the recursive property optional, or override it with an x-fakejson extension."
	case errors.Is(err, oasschema.ErrUnknownComponent):
		hint = "Run without --component to convert every component."
	}
	return msg, hint
}

// errorChain lists the dynamic types of err and everything it wraps.
func errorChain(err error) string {
	var types []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		types = append(types, fmt.Sprintf("%T", e))
	}
	return strings.Join(types, " -> ")
}

func indentTail(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}
