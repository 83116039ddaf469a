// Package oasschema derives descriptor schemas from the component schemas of
// an OpenAPI 3.x document, so a spec can be fed straight to the generator.
//
// Properties keep their declared order. Non-required properties become
// optional keys ("name?"), nullable leaves become nullable descriptors, and a
// string extension x-fakejson on any schema overrides the derived descriptor.
package oasschema

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/speakeasy-api/fakejson"
	"github.com/speakeasy-api/openapi/jsonschema/oas3"
	"github.com/speakeasy-api/openapi/openapi"
)

// DescriptorExtension overrides the descriptor derived for a schema.
const DescriptorExtension = "x-fakejson"

const componentPrefix = "#/components/schemas/"

var (
	ErrNoComponents      = errors.New("document has no component schemas")
	ErrUnknownComponent  = errors.New("unknown component schema")
	ErrUnsupportedRef    = errors.New("only local component references are supported")
	ErrRecursiveRef      = errors.New("recursive reference")
	ErrUnsupportedSchema = errors.New("schema cannot be generated")
)

// Options configures how documents are loaded and converted.
type Options struct {
	Logger fakejson.Logger // default: discards everything
	// MaxRefDepth bounds how many references may be followed along one path (default: 16)
	MaxRefDepth int
	// NameHints picks a descriptor from the property name for untyped-format strings
	NameHints bool
}

// DefaultOptions returns the default conversion options.
func DefaultOptions() Options {
	return Options{
		Logger:      fakejson.NopLogger(),
		MaxRefDepth: 16,
		NameHints:   true,
	}
}

// Document is a parsed OpenAPI document.
type Document struct {
	doc  *openapi.OpenAPI
	opts Options
}

// Load parses an OpenAPI document. Validation findings are logged as
// warnings and do not fail the load.
func Load(ctx context.Context, r io.Reader, opts ...Options) (*Document, error) {
	opt := DefaultOptions()
	if len(opts) > 0 {
		opt = opts[0]
		if opt.Logger == nil {
			opt.Logger = fakejson.NopLogger()
		}
		if opt.MaxRefDepth <= 0 {
			opt.MaxRefDepth = DefaultOptions().MaxRefDepth
		}
	}

	doc, validationErrs, err := openapi.Unmarshal(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}
	for _, verr := range validationErrs {
		opt.Logger.Warnf("OpenAPI validation: %v", verr)
	}
	return &Document{doc: doc, opts: opt}, nil
}

// LoadFile parses the OpenAPI document at path.
func LoadFile(ctx context.Context, path string, opts ...Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(ctx, f, opts...)
}

// Components lists the component schema names in document order.
func (d *Document) Components() []string {
	if d.doc.Components == nil || d.doc.Components.Schemas == nil {
		return nil
	}
	names := make([]string, 0, d.doc.Components.Schemas.Len())
	for name := range d.doc.Components.Schemas.All() {
		names = append(names, name)
	}
	return names
}

// Schema converts one component schema into a descriptor tree.
func (d *Document) Schema(name string) (*fakejson.Node, error) {
	js, err := d.component(name)
	if err != nil {
		return nil, err
	}
	c := &converter{opts: d.opts, doc: d, stack: []string{name}}
	out, err := c.convert(js, site{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// Schemas converts every component into one mapping keyed by component
// name. Components that cannot be converted are skipped with a warning.
func (d *Document) Schemas() (*fakejson.Node, error) {
	names := d.Components()
	if len(names) == 0 {
		return nil, ErrNoComponents
	}
	out := fakejson.NewMapping()
	for _, name := range names {
		n, err := d.Schema(name)
		if err != nil {
			d.opts.Logger.Warnf("skipping component: %v", err)
			continue
		}
		out.Set(name, n)
	}
	return out, nil
}

func (d *Document) component(name string) (*oas3.JSONSchema[oas3.Referenceable], error) {
	if d.doc.Components == nil || d.doc.Components.Schemas == nil {
		return nil, ErrNoComponents
	}
	js, ok := d.doc.Components.Schemas.Get(name)
	if !ok || js == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return js, nil
}

// resolveRef maps a local "#/components/schemas/Name" reference to its component name.
func resolveRef(ref string) (string, error) {
	name, ok := strings.CutPrefix(ref, componentPrefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedRef, ref)
	}
	return name, nil
}
