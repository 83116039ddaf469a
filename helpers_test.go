package fakejson

import (
	"fmt"
	"slices"
	"testing"
)

// stubPrimitives is a small deterministic catalog used instead of gofakeit.
type stubPrimitives struct {
	rng Random
}

var (
	stubLetters   = []string{"a", "b", "c", "d", "e"}
	stubNames     = []string{"Alice", "Bob", "Chloé", "Dmitri"}
	stubPositions = []string{"Trésorier", "VPO", "SecGe", "DirCo", "Info"}
)

func (p *stubPrimitives) Generate(name string) (string, error) {
	switch name {
	case "Letter":
		return stubLetters[p.rng.IntN(len(stubLetters))], nil
	case "FirstName":
		return stubNames[p.rng.IntN(len(stubNames))], nil
	case "Position":
		return stubPositions[p.rng.IntN(len(stubPositions))], nil
	case "Constant":
		return "same", nil
	case "Broken":
		return "", fmt.Errorf("generator exploded")
	}
	return "", fmt.Errorf("%w: %q", ErrUnrecognizedType, name)
}

func (p *stubPrimitives) Catalog() []string {
	return []string{"Letter", "FirstName", "Position", "Constant", "Broken"}
}

func (p *stubPrimitives) Values(name string) ([]string, bool) {
	switch name {
	case "Letter":
		return slices.Clone(stubLetters), true
	case "Position":
		return slices.Clone(stubPositions), true
	}
	return nil, false
}

// newTestSession builds a seeded session with the stub catalog.
func newTestSession(t *testing.T, seed uint64, declarations ...string) *Session {
	t.Helper()
	return newTestSessionWith(t, seed, func(*Options) {}, declarations...)
}

func newTestSessionWith(t *testing.T, seed uint64, tweak func(*Options), declarations ...string) *Session {
	t.Helper()
	rng := NewRandom(seed)
	opts := DefaultOptions()
	opts.Random = rng
	opts.Primitives = &stubPrimitives{rng: rng}
	tweak(&opts)
	s, err := NewSession(declarations, opts)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

// mustGenerate generates a non-omitted value.
func mustGenerate(t *testing.T, s *Session, descriptor string) Value {
	t.Helper()
	v, ok, err := s.Generate(descriptor)
	if err != nil {
		t.Fatalf("Generate(%q) failed: %v", descriptor, err)
	}
	if !ok {
		t.Fatalf("Generate(%q) unexpectedly omitted the value", descriptor)
	}
	return v
}

// obj builds a mapping node from alternating key/value arguments.
func obj(kv ...any) *Node {
	n := NewMapping()
	for i := 0; i+1 < len(kv); i += 2 {
		n.Set(kv[i].(string), toNode(kv[i+1]))
	}
	return n
}

// arr builds a sequence node.
func arr(items ...any) *Node {
	nodes := make([]*Node, 0, len(items))
	for _, it := range items {
		nodes = append(nodes, toNode(it))
	}
	return NewSequence(nodes...)
}

func toNode(v any) *Node {
	switch t := v.(type) {
	case *Node:
		return t
	case string:
		return NewString(t)
	case int:
		return NewNumber(fmt.Sprint(t))
	case float64:
		return NewNumber(fmt.Sprint(t))
	case bool:
		return NewBool(t)
	case nil:
		return NewNull()
	}
	panic(fmt.Sprintf("unsupported test value %T", v))
}

func mustJSON(t *testing.T, n *Node) string {
	t.Helper()
	b, err := n.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	return string(b)
}
