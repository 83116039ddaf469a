// Package codec reads schema documents into fakejson trees and writes
// generated trees back out as JSON or YAML.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/speakeasy-api/fakejson"
	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when the input holds no document at all.
var ErrEmptyDocument = errors.New("schema document is empty")

// Decode parses a JSON or YAML schema document. Mapping key order is kept.
func Decode(r io.Reader) (*fakejson.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	return convert(doc.Content[0])
}

// DecodeBytes parses a schema document held in memory.
func DecodeBytes(data []byte) (*fakejson.Node, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile parses the schema document at path.
func DecodeFile(path string) (*fakejson.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// FromYAML converts an already parsed YAML node, such as an OpenAPI
// extension value, into a schema tree.
func FromYAML(n *yaml.Node) (*fakejson.Node, error) {
	if n == nil {
		return nil, ErrEmptyDocument
	}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		n = n.Content[0]
	}
	return convert(n)
}

func convert(n *yaml.Node) (*fakejson.Node, error) {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("line %d: dangling alias %q", n.Line, n.Value)
		}
		return convert(n.Alias)

	case yaml.MappingNode:
		out := fakejson.NewMapping()
		// Content alternates key and value nodes
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			child, err := convert(value)
			if err != nil {
				return nil, err
			}
			out.Set(key.Value, child)
		}
		return out, nil

	case yaml.SequenceNode:
		items := make([]*fakejson.Node, 0, len(n.Content))
		for _, item := range n.Content {
			child, err := convert(item)
			if err != nil {
				return nil, err
			}
			items = append(items, child)
		}
		return fakejson.NewSequence(items...), nil

	case yaml.ScalarNode:
		return convertScalar(n)

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}

func convertScalar(n *yaml.Node) (*fakejson.Node, error) {
	switch n.ShortTag() {
	case "!!null":
		return fakejson.NewNull(), nil

	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return fakejson.NewBool(b), nil

	case "!!int":
		// Normalize 0x/0o forms to decimal; keep literals too large for 64 bits as written
		var i int64
		if err := n.Decode(&i); err == nil {
			return fakejson.NewNumber(strconv.FormatInt(i, 10)), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return fakejson.NewNumber(strconv.FormatUint(u, 10)), nil
		}
		return fakejson.NewNumber(n.Value), nil

	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("line %d: %w: %s", n.Line, fakejson.ErrNonFiniteFloat, n.Value)
		}
		lit := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(lit, ".e") {
			lit += ".0"
		}
		return fakejson.NewNumber(lit), nil

	default:
		// !!str, !!timestamp, !!binary and custom tags keep their text
		return fakejson.NewString(n.Value), nil
	}
}
