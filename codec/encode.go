package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/speakeasy-api/fakejson"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected json or yaml", s)
	}
}

// EncodeOptions configures Encode.
type EncodeOptions struct {
	Format  Format
	Compact bool // JSON on a single line; ignored for YAML
	Indent  int  // spaces per level (default: 2)
}

// Encode writes n followed by a newline.
func Encode(w io.Writer, n *fakejson.Node, opts EncodeOptions) error {
	b, err := Marshal(n, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Marshal renders n in the requested format, newline terminated.
func Marshal(n *fakejson.Node, opts EncodeOptions) ([]byte, error) {
	if opts.Indent <= 0 {
		opts.Indent = 2
	}
	switch opts.Format {
	case YAML:
		return marshalYAML(n, opts.Indent)
	case JSON, "":
		return marshalJSON(n, opts)
	default:
		return nil, fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func marshalJSON(n *fakejson.Node, opts EncodeOptions) ([]byte, error) {
	raw, err := n.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if opts.Compact {
		return append(raw, '\n'), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", strings.Repeat(" ", opts.Indent)); err != nil {
		return nil, fmt.Errorf("failed to indent output: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func marshalYAML(n *fakejson.Node, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(toYAML(n)); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toYAML(n *fakejson.Node) *yaml.Node {
	if n == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	switch n.Kind {
	case fakejson.BoolNode:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: n.Value}
	case fakejson.NumberNode:
		tag := "!!int"
		if strings.ContainsAny(n.Value, ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: n.Value}
	case fakejson.StringNode:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.Value}
	case fakejson.SequenceNode:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if len(n.Items) == 0 {
			out.Style = yaml.FlowStyle
		}
		for _, item := range n.Items {
			out.Content = append(out.Content, toYAML(item))
		}
		return out
	case fakejson.MappingNode:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if n.Len() == 0 {
			out.Style = yaml.FlowStyle
		}
		for _, key := range n.Keys() {
			value, _ := n.Get(key)
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				toYAML(value))
		}
		return out
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
