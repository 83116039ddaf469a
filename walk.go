package fakejson

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Walk generates an output tree from a schema tree. String leaves are type
// descriptors, sequences are array directives and mappings are rebuilt key by
// key. A nil node with a nil error means the root was a nullable descriptor
// that chose to produce no value.
//
// Array directives take an item schema and up to two integer bounds:
//
//	["FreeEmail"]              random length in the default window
//	["FirstName", 2]           exactly 2 items
//	["LicencePlate", 1, 10]    between 1 and 9 items
func Walk(schema *Node, s *Session) (*Node, error) {
	if schema == nil {
		return nil, fmt.Errorf("%w: schema cannot be nil", ErrInvalidSchemaType)
	}
	return s.walk(schema, 0, true)
}

// Document walks schema and maps an omitted root to a null node, so there is
// always something to serialize.
func (s *Session) Document(schema *Node) (*Node, error) {
	out, err := Walk(schema, s)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return NewNull(), nil
	}
	return out, nil
}

func (s *Session) walk(n *Node, depth int, nullable bool) (*Node, error) {
	if depth > s.opts.MaxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrMaxDepth, s.opts.MaxDepth)
	}

	switch n.Kind {
	case StringNode:
		return s.walkLeaf(n.Value, depth, nullable)
	case SequenceNode:
		return s.walkArray(n, depth)
	case MappingNode:
		return s.walkMapping(n, depth)
	default:
		return nil, fmt.Errorf("%w: schema contains %s; values must be data type strings, or arrays and objects of them",
			ErrInvalidSchemaType, n.describe())
	}
}

func (s *Session) walkLeaf(descriptor string, depth int, nullable bool) (*Node, error) {
	var (
		v   Value
		err error
	)
	if nullable {
		var ok bool
		v, ok, err = s.generateNullable(descriptor, depth)
		if err == nil && !ok {
			return nil, nil
		}
	} else {
		v, err = s.generate(descriptor, depth)
	}
	if err != nil {
		return nil, err
	}
	return v.Node()
}

func (s *Session) walkMapping(n *Node, depth int) (*Node, error) {
	out := NewMapping()
	if n.Fields == nil {
		return out, nil
	}
	if err := checkOptionalKeys(n); err != nil {
		return nil, err
	}
	for key, child := range n.Fields.All() {
		// An optional key is decided before its subtree is evaluated
		name, optional := SplitNullable(key)
		if optional && s.omit() {
			s.logger.Debugf("omitted optional key %q", name)
			continue
		}
		value, err := s.walk(child, depth+1, true)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if value != nil {
			out.Set(name, value)
		}
	}
	return out, nil
}

// checkOptionalKeys rejects "a" and "a?" in the same mapping, since both
// would be emitted as "a".
func checkOptionalKeys(n *Node) error {
	seen := make(map[string]string, n.Len())
	for _, key := range n.Keys() {
		name, _ := SplitNullable(key)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q and %q both produce %q", ErrDuplicateKey, prev, key, name)
		}
		seen[name] = key
	}
	return nil
}

func (s *Session) walkArray(n *Node, depth int) (*Node, error) {
	if len(n.Items) == 0 {
		return nil, ErrMissingArrayDataType
	}
	item := n.Items[0]

	count, err := s.arrayLength(n.Items[1:])
	if err != nil {
		return nil, err
	}

	items := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		value, err := s.walk(item, depth+1, false)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		items = append(items, value)
	}
	return NewSequence(items...), nil
}

// arrayLength decides the item count from the optional bounds of an array directive.
func (s *Session) arrayLength(bounds []*Node) (int, error) {
	switch len(bounds) {
	case 0:
		return s.opts.ArrayMin + s.rng.IntN(s.opts.ArrayMax-s.opts.ArrayMin), nil
	case 1:
		n, err := arrayBound(bounds[0])
		if err != nil {
			return 0, err
		}
		if n > s.opts.MaxArrayLength {
			return 0, fmt.Errorf("%w: %d items, at most %d allowed", ErrArrayLength, n, s.opts.MaxArrayLength)
		}
		return n, nil
	case 2:
		lo, err := arrayBound(bounds[0])
		if err != nil {
			return 0, err
		}
		hi, err := arrayBound(bounds[1])
		if err != nil {
			return 0, err
		}
		if lo >= hi {
			return 0, fmt.Errorf("%w: array length bounds [%d, %d)", ErrEmptyRange, lo, hi)
		}
		if hi-1 > s.opts.MaxArrayLength {
			return 0, fmt.Errorf("%w: up to %d items, at most %d allowed", ErrArrayLength, hi-1, s.opts.MaxArrayLength)
		}
		return lo + s.rng.IntN(hi-lo), nil
	default:
		return 0, fmt.Errorf("%w: got %d bounds", ErrArrayArity, len(bounds))
	}
}

func arrayBound(n *Node) (int, error) {
	if n.Kind != NumberNode {
		return 0, fmt.Errorf("%w, found %s", ErrExpectedInteger, n.describe())
	}
	u, err := strconv.ParseUint(n.Value, 10, 64)
	if err != nil {
		if strings.ContainsAny(n.Value, ".eE-") {
			return 0, fmt.Errorf("%w, found %s", ErrExpectedInteger, n.Value)
		}
		return 0, fmt.Errorf("%w: %s", ErrArrayLength, n.Value)
	}
	if u > math.MaxInt {
		return 0, fmt.Errorf("%w: %d", ErrArrayLength, u)
	}
	return int(u), nil
}
