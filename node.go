package fakejson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// NodeKind classifies schema and output tree nodes.
type NodeKind uint8

// Node kinds. Null, Bool, Number and String are scalars.
const (
	NullNode NodeKind = iota
	BoolNode
	NumberNode
	StringNode
	SequenceNode
	MappingNode
)

func (k NodeKind) String() string {
	switch k {
	case NullNode:
		return "null"
	case BoolNode:
		return "boolean"
	case NumberNode:
		return "number"
	case StringNode:
		return "string"
	case SequenceNode:
		return "array"
	case MappingNode:
		return "object"
	default:
		return "unknown"
	}
}

// Node is a generic JSON-like tree used both for schemas and for generated output.
// Scalars keep their literal text in Value: the string itself, the number as
// written, or "true"/"false". Mapping keys keep their insertion order.
type Node struct {
	Kind   NodeKind
	Value  string
	Items  []*Node
	Fields *sequencedmap.Map[string, *Node]
}

// NewNull returns a null scalar.
func NewNull() *Node {
	return &Node{Kind: NullNode}
}

// NewBool returns a "true" or "false" scalar.
func NewBool(b bool) *Node {
	return &Node{Kind: BoolNode, Value: strconv.FormatBool(b)}
}

// NewNumber wraps a JSON number literal such as "3" or "2.5e3".
func NewNumber(literal string) *Node {
	return &Node{Kind: NumberNode, Value: literal}
}

// NewString returns a string scalar holding s verbatim.
func NewString(s string) *Node {
	return &Node{Kind: StringNode, Value: s}
}

// NewSequence returns a sequence of items. With no items it encodes as [].
func NewSequence(items ...*Node) *Node {
	if items == nil {
		items = []*Node{}
	}
	return &Node{Kind: SequenceNode, Items: items}
}

// NewMapping returns an empty mapping ready for Set.
func NewMapping() *Node {
	return &Node{Kind: MappingNode, Fields: sequencedmap.New[string, *Node]()}
}

// Set adds or replaces a mapping entry and returns n for chaining.
func (n *Node) Set(key string, value *Node) *Node {
	if n.Fields == nil {
		n.Fields = sequencedmap.New[string, *Node]()
	}
	n.Fields.Set(key, value)
	return n
}

// Get looks up a mapping entry.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Fields == nil {
		return nil, false
	}
	return n.Fields.Get(key)
}

// Len returns the number of items or fields; scalars have length 0.
func (n *Node) Len() int {
	switch {
	case n == nil:
		return 0
	case n.Kind == SequenceNode:
		return len(n.Items)
	case n.Kind == MappingNode && n.Fields != nil:
		return n.Fields.Len()
	default:
		return 0
	}
}

// Keys returns the mapping keys in order.
func (n *Node) Keys() []string {
	if n == nil || n.Fields == nil {
		return nil
	}
	keys := make([]string, 0, n.Fields.Len())
	for k := range n.Fields.All() {
		keys = append(keys, k)
	}
	return keys
}

// describe renders a short form of the node for error messages.
func (n *Node) describe() string {
	switch n.Kind {
	case NullNode:
		return "null"
	case BoolNode, NumberNode:
		return fmt.Sprintf("%s(%s)", n.Kind, n.Value)
	case StringNode:
		return strconv.Quote(n.Value)
	default:
		return n.Kind.String()
	}
}

// MarshalJSON encodes the tree compactly, keeping mapping order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) writeJSON(buf *bytes.Buffer) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Kind {
	case NullNode:
		buf.WriteString("null")
	case BoolNode, NumberNode:
		buf.WriteString(n.Value)
	case StringNode:
		writeJSONString(buf, n.Value)
	case SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case MappingNode:
		buf.WriteByte('{')
		if n.Fields != nil {
			i := 0
			for k, v := range n.Fields.All() {
				if i > 0 {
					buf.WriteByte(',')
				}
				writeJSONString(buf, k)
				buf.WriteByte(':')
				if err := v.writeJSON(buf); err != nil {
					return err
				}
				i++
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: unknown node kind %d", ErrInvalidSchemaType, n.Kind)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
}
