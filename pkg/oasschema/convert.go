package oasschema

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/speakeasy-api/fakejson"
	"github.com/speakeasy-api/fakejson/codec"
	"github.com/speakeasy-api/openapi/jsonschema/oas3"
	"gopkg.in/yaml.v3"
)

// site describes where a schema sits in the tree being built.
type site struct {
	name     string // property name, used for hints
	item     bool   // array items take the non-nullable path
	nullable bool   // set by an enclosing union with a null branch
}

type converter struct {
	opts  Options
	doc   *Document
	stack []string // component names being expanded
}

func (c *converter) convert(js *oas3.JSONSchema[oas3.Referenceable], at site) (*fakejson.Node, error) {
	if js == nil {
		return fakejson.NewString(c.stringDescriptor(nil, at)), nil
	}
	if n, ok, err := c.override(js); ok || err != nil {
		return n, err
	}

	s := js.GetLeft()
	if s == nil {
		// boolean schema: anything goes
		return fakejson.NewString("Word"), nil
	}
	if s.Ref != nil {
		return c.followRef(fmt.Sprint(*s.Ref), at)
	}

	at.nullable = at.nullable || isNullable(s)

	switch {
	case len(s.AllOf) > 0:
		return c.convertAllOf(s, at)
	case len(s.AnyOf) > 0:
		return c.convertUnion(s.AnyOf, at)
	case len(s.OneOf) > 0:
		return c.convertUnion(s.OneOf, at)
	}

	switch typ := primaryType(s); typ {
	case oas3.SchemaTypeObject:
		return c.convertObject(s)
	case oas3.SchemaTypeArray:
		return c.convertArray(s, at)
	default:
		desc, err := c.leaf(s, typ, at)
		if err != nil {
			return nil, err
		}
		if at.nullable && !at.item {
			desc += "?"
		}
		return fakejson.NewString(desc), nil
	}
}

// override returns the tree given by the x-fakejson extension, if any.
func (c *converter) override(js *oas3.JSONSchema[oas3.Referenceable]) (*fakejson.Node, bool, error) {
	ext := js.GetExtensions()
	if ext == nil {
		return nil, false, nil
	}
	value, ok := ext.Get(DescriptorExtension)
	if !ok || value == nil {
		return nil, false, nil
	}
	if value.Kind == yaml.ScalarNode {
		return fakejson.NewString(strings.TrimSpace(value.Value)), true, nil
	}
	n, err := codec.FromYAML(value)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", DescriptorExtension, err)
	}
	return n, true, nil
}

func (c *converter) followRef(ref string, at site) (*fakejson.Node, error) {
	name, err := resolveRef(ref)
	if err != nil {
		return nil, err
	}
	if slices.Contains(c.stack, name) {
		return nil, fmt.Errorf("%w: %s", ErrRecursiveRef, strings.Join(append(c.stack, name), " -> "))
	}
	if len(c.stack) > c.opts.MaxRefDepth {
		return nil, fmt.Errorf("%w: more than %d nested references", ErrRecursiveRef, c.opts.MaxRefDepth)
	}
	target, err := c.doc.component(name)
	if err != nil {
		return nil, err
	}

	c.stack = append(c.stack, name)
	defer func() { c.stack = c.stack[:len(c.stack)-1] }()
	return c.convert(target, at)
}

func (c *converter) convertObject(s *oas3.Schema) (*fakejson.Node, error) {
	out := fakejson.NewMapping()
	if s.Properties == nil {
		return out, nil
	}
	for name, prop := range s.Properties.All() {
		required := slices.Contains(s.Required, name)
		child, err := c.convert(prop, site{name: name})
		if err != nil {
			if !required && errors.Is(err, ErrRecursiveRef) {
				c.opts.Logger.Debugf("dropping optional property %q: %v", name, err)
				continue
			}
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		key := name
		if !required {
			key += "?"
		}
		out.Set(key, child)
	}
	return out, nil
}

func (c *converter) convertArray(s *oas3.Schema, at site) (*fakejson.Node, error) {
	item, err := c.convert(s.Items, site{name: at.name, item: true})
	if err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}

	minItems, maxItems := s.MinItems, s.MaxItems
	number := func(v int64) *fakejson.Node {
		return fakejson.NewNumber(strconv.FormatInt(v, 10))
	}

	switch {
	case minItems != nil && maxItems != nil:
		if *maxItems < *minItems {
			return nil, fmt.Errorf("%w: maxItems %d < minItems %d", ErrUnsupportedSchema, *maxItems, *minItems)
		}
		if *minItems == *maxItems {
			return fakejson.NewSequence(item, number(*minItems)), nil
		}
		return fakejson.NewSequence(item, number(*minItems), number(*maxItems+1)), nil
	case minItems != nil:
		return fakejson.NewSequence(item, number(*minItems), number(*minItems+10)), nil
	case maxItems != nil:
		if *maxItems == 0 {
			return fakejson.NewSequence(item, number(0)), nil
		}
		return fakejson.NewSequence(item, number(0), number(*maxItems+1)), nil
	default:
		return fakejson.NewSequence(item), nil
	}
}

// convertAllOf merges the object branches key by key; later branches win.
func (c *converter) convertAllOf(s *oas3.Schema, at site) (*fakejson.Node, error) {
	var parts []*fakejson.Node
	for i, branch := range s.AllOf {
		n, err := c.convert(branch, site{name: at.name, item: at.item})
		if err != nil {
			return nil, fmt.Errorf("allOf[%d]: %w", i, err)
		}
		parts = append(parts, n)
	}
	if s.Properties != nil {
		own, err := c.convertObject(s)
		if err != nil {
			return nil, err
		}
		parts = append(parts, own)
	}

	merged := fakejson.NewMapping()
	for _, p := range parts {
		if p.Kind != fakejson.MappingNode {
			// a non-object branch decides the shape on its own
			return p, nil
		}
		for _, key := range p.Keys() {
			value, _ := p.Get(key)
			merged.Set(key, value)
		}
	}
	return merged, nil
}

// convertUnion uses the first branch that is not a bare null; a null branch
// makes the result nullable.
func (c *converter) convertUnion(branches []*oas3.JSONSchema[oas3.Referenceable], at site) (*fakejson.Node, error) {
	var chosen *oas3.JSONSchema[oas3.Referenceable]
	for _, b := range branches {
		if s := b.GetLeft(); s != nil && s.Ref == nil && onlyNull(s) {
			at.nullable = true
			continue
		}
		if chosen == nil {
			chosen = b
		}
	}
	if chosen == nil {
		return nil, fmt.Errorf("%w: union of null only", ErrUnsupportedSchema)
	}
	return c.convert(chosen, at)
}

func (c *converter) leaf(s *oas3.Schema, typ oas3.SchemaType, at site) (string, error) {
	if len(s.Enum) > 0 {
		if desc, ok := c.enumDescriptor(s.Enum); ok {
			return desc, nil
		}
	}
	if s.Const != nil {
		if desc, ok := c.enumDescriptor([]*yaml.Node{s.Const}); ok {
			return desc, nil
		}
	}

	switch typ {
	case oas3.SchemaTypeInteger:
		return c.integerDescriptor(s), nil
	case oas3.SchemaTypeNumber:
		return numberDescriptor(s), nil
	case oas3.SchemaTypeBoolean:
		return fakejson.BoolType, nil
	case oas3.SchemaTypeNull:
		return "", fmt.Errorf("%w: type null", ErrUnsupportedSchema)
	default:
		return c.stringDescriptor(s, at), nil
	}
}

// enumDescriptor joins the enum values that survive as plain enum choices.
func (c *converter) enumDescriptor(values []*yaml.Node) (string, bool) {
	choices := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil || v.Kind != yaml.ScalarNode || v.Tag == "!!null" {
			continue
		}
		if !plainChoice(v.Value) {
			c.opts.Logger.Warnf("enum value %q cannot be expressed as a choice, skipping it", v.Value)
			continue
		}
		choices = append(choices, v.Value)
	}
	switch len(choices) {
	case 0:
		return "", false
	case 1:
		// the trailing '|' keeps a lone value from reading as a type name
		return choices[0] + "|", true
	default:
		return strings.Join(choices, "|"), true
	}
}

func plainChoice(v string) bool {
	if v == "" || strings.Contains(v, "|") || strings.Contains(v, "..") {
		return false
	}
	return !strings.HasSuffix(v, "*") && !strings.HasSuffix(v, "]") && !strings.HasSuffix(v, "?")
}

func (c *converter) integerDescriptor(s *oas3.Schema) string {
	if s.Minimum == nil && s.Maximum == nil {
		return fakejson.IntType
	}

	var lo uint64
	if s.Minimum != nil && *s.Minimum > 0 {
		lo = clampUint(math.Ceil(*s.Minimum))
	}
	if s.Maximum == nil {
		return strconv.FormatUint(lo, 10) + ".."
	}
	if *s.Maximum < 0 || clampUint(math.Floor(*s.Maximum)) < lo {
		c.opts.Logger.Warnf("integer bounds [%v, %v] hold no unsigned value, using Int", ptrValue(s.Minimum), *s.Maximum)
		return fakejson.IntType
	}
	hi := clampUint(math.Floor(*s.Maximum))
	if hi == math.MaxUint64 {
		return strconv.FormatUint(lo, 10) + ".."
	}
	return strconv.FormatUint(lo, 10) + ".." + strconv.FormatUint(hi+1, 10)
}

func numberDescriptor(s *oas3.Schema) string {
	switch {
	case s.Minimum != nil && s.Maximum != nil:
		if *s.Minimum >= *s.Maximum {
			return fakejson.FloatType
		}
		return floatLiteral(*s.Minimum) + ".." + floatLiteral(*s.Maximum)
	case s.Minimum != nil:
		return floatLiteral(*s.Minimum) + ".."
	case s.Maximum != nil:
		lo := 0.0
		if *s.Maximum <= 0 {
			lo = *s.Maximum - 1000
		}
		return floatLiteral(lo) + ".." + floatLiteral(*s.Maximum)
	default:
		return fakejson.FloatType
	}
}

func (c *converter) stringDescriptor(s *oas3.Schema, at site) string {
	if s != nil && s.Format != nil {
		if desc, ok := formatDescriptors[*s.Format]; ok {
			return desc
		}
	}
	if c.opts.NameHints && at.name != "" {
		if desc, ok := nameHints[normalizeName(at.name)]; ok {
			return desc
		}
	}
	return "Word"
}

func primaryType(s *oas3.Schema) oas3.SchemaType {
	for _, t := range s.GetType() {
		if t != oas3.SchemaTypeNull {
			return t
		}
	}
	switch {
	case s.Properties != nil:
		return oas3.SchemaTypeObject
	case s.Items != nil:
		return oas3.SchemaTypeArray
	case len(s.GetType()) > 0:
		return oas3.SchemaTypeNull
	}
	return ""
}

func isNullable(s *oas3.Schema) bool {
	if s.Nullable != nil && *s.Nullable {
		return true
	}
	return slices.Contains(s.GetType(), oas3.SchemaTypeNull)
}

func onlyNull(s *oas3.Schema) bool {
	types := s.GetType()
	return len(types) == 1 && types[0] == oas3.SchemaTypeNull
}

func clampUint(f float64) uint64 {
	switch {
	case f <= 0:
		return 0
	case f >= math.MaxUint64:
		return math.MaxUint64
	}
	return uint64(f)
}

// floatLiteral always carries a '.' or an exponent so the bound parses as a float.
func floatLiteral(f float64) string {
	lit := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(lit, ".e") {
		lit += ".0"
	}
	return lit
}

func ptrValue(f *float64) any {
	if f == nil {
		return "-"
	}
	return *f
}
