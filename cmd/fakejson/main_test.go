package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestGenerate(t *testing.T) {
	schema := writeFile(t, "schema.json", `{"name": "FirstName", "tag": "X|Y", "id": "1..4", "team": "Team"}`)

	stdout, stderr, code := run(t, "--file", schema, "--seed", "7", "--compact", "-c", "3", "-u", "Team:red|blue")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), stdout)
	}
	for _, line := range lines {
		var doc map[string]any
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			t.Fatalf("line %q is not JSON: %v", line, err)
		}
		if tag := doc["tag"]; tag != "X" && tag != "Y" {
			t.Errorf("tag = %v", tag)
		}
		if id, ok := doc["id"].(float64); !ok || id < 1 || id >= 4 {
			t.Errorf("id = %v", doc["id"])
		}
		if team := doc["team"]; team != "red" && team != "blue" {
			t.Errorf("team = %v", team)
		}
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	schema := writeFile(t, "schema.json", `{"id": "Uuid*", "email": "FreeEmail", "n": "Int", "tags": ["Word"]}`)

	first, _, code := run(t, "-f", schema, "--seed", "99", "-c", "4")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	second, _, _ := run(t, "-f", schema, "--seed", "99", "-c", "4")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different output (-first +second):\n%s", diff)
	}

	parallel, _, code := run(t, "-f", schema, "--seed", "99", "-c", "4", "--parallel", "3")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	reset, _, _ := run(t, "-f", schema, "--seed", "99", "-c", "4", "--reset")
	if diff := cmp.Diff(reset, parallel); diff != "" {
		t.Errorf("--parallel should match --reset (-reset +parallel):\n%s", diff)
	}
}

func TestGenerate_BeforeAfterAndPretty(t *testing.T) {
	schema := writeFile(t, "schema.yaml", "a: X|\n")

	stdout, stderr, code := run(t, "-f", schema, "-b", "<<", "-a", ">>", "-c", "2")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	want := "<<{\n  \"a\": \"X\"\n}>>\n<<{\n  \"a\": \"X\"\n}>>\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_YAMLOutput(t *testing.T) {
	schema := writeFile(t, "schema.json", `{"a": "X|", "b": ["Y|", 2]}`)

	stdout, stderr, code := run(t, "-f", schema, "--format", "yaml")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if !strings.HasPrefix(stdout, "a: X\nb:\n") || strings.Count(stdout, "- Y") != 2 {
		t.Errorf("unexpected YAML:\n%s", stdout)
	}
}

func TestGenerate_UniqueSpansDocumentsUnlessReset(t *testing.T) {
	schema := writeFile(t, "schema.json", `{"id": "0..2*"}`)

	if _, stderr, code := run(t, "-f", schema, "-c", "3", "--seed", "1"); code == 0 {
		t.Fatal("expected the third unique id to fail")
	} else if !strings.Contains(stderr, "could not produce a unique value") {
		t.Errorf("stderr = %s", stderr)
	}

	if _, stderr, code := run(t, "-f", schema, "-c", "3", "--seed", "1", "--reset"); code != 0 {
		t.Fatalf("--reset should give each document fresh unique values, stderr:\n%s", stderr)
	}
}

func TestGenerate_Errors(t *testing.T) {
	dir := t.TempDir()
	badJSON := writeFile(t, "bad.json", `{"a": `)
	literal := writeFile(t, "literal.json", `{"a": 3}`)
	array := writeFile(t, "array.json", `{"a": ["FirstName", 1.5]}`)
	unknown := writeFile(t, "unknown.json", `{"a": "Nope"}`)
	collide := writeFile(t, "collide.json", `{"a": "1..3", "a?": "1..3"}`)
	huge := writeFile(t, "huge.json", `{"a": ["1..3", 9223372036854775807]}`)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "missing file", args: []string{"-f", filepath.Join(dir, "none.json")}, want: []string{"none.json couldn't be found", "--file"}},
		{name: "bad json", args: []string{"-f", badJSON}, want: []string{"is not a valid document", "valid JSON or YAML"}},
		{name: "literal", args: []string{"-f", literal}, want: []string{"invalid schema type", "Values must be strings"}},
		{name: "array", args: []string{"-f", array}, want: []string{"invalid array syntax", `["LicencePlate", 1, 10]`}},
		{name: "unknown type", args: []string{"-f", unknown}, want: []string{`"Nope"`, "fakejson list"}},
		{name: "define syntax", args: []string{"-f", unknown, "-u", "Team"}, want: []string{"-u 'DataTypeName:Value1|Value2|Value3'"}},
		{name: "define twice", args: []string{"-f", unknown, "-u", "T:a", "-u", "T:b"}, want: []string{"declared twice"}},
		{name: "bad format", args: []string{"-f", unknown, "--format", "xml"}, want: []string{"unknown output format"}},
		{name: "bad log level", args: []string{"-f", unknown, "--log-level", "loud"}, want: []string{"unknown log level"}},
		{name: "null probability", args: []string{"-f", unknown, "--null-probability", "2"}, want: []string{"between 0 and 1", "0 (never omit)"}},
		{name: "colliding keys", args: []string{"-f", collide}, want: []string{"duplicate key", "Keep one of them"}},
		{name: "oversized array", args: []string{"-f", huge}, want: []string{"invalid array syntax", "at most 1048576 allowed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := run(t, tt.args...)
			if code != 1 {
				t.Fatalf("exit code = %d, want 1", code)
			}
			if stdout != "" {
				t.Errorf("stdout should be empty, got %q", stdout)
			}
			for _, want := range tt.want {
				if !strings.Contains(stderr, want) {
					t.Errorf("stderr missing %q:\n%s", want, stderr)
				}
			}
			if !strings.Contains(stderr, "--debug") {
				t.Errorf("stderr should point at --debug:\n%s", stderr)
			}
		})
	}
}

func TestDebugShowsErrorTypes(t *testing.T) {
	schema := writeFile(t, "schema.json", `{"a": "1..x"}`)
	_, stderr, code := run(t, "-f", schema, "--debug")
	if code != 1 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stderr, "Error type: ") || !strings.Contains(stderr, "*fakejson.BoundError") {
		t.Errorf("stderr = %s", stderr)
	}
	if strings.Contains(stderr, "\x1b[") {
		t.Errorf("no color expected when stderr is not a terminal: %q", stderr)
	}
}

func TestGenerateSubcommand(t *testing.T) {
	schema := writeFile(t, "schema.json", `"Z|"`)
	stdout, stderr, code := run(t, "generate", "-f", schema, "-c", "2")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if stdout != "\"Z\"\n\"Z\"\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestData(t *testing.T) {
	stdout, stderr, code := run(t, "data", "1..5*", "-n", "4", "--seed", "3")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	lines := strings.Fields(stdout)
	if len(lines) != 4 {
		t.Fatalf("got %d values:\n%s", len(lines), stdout)
	}
	slices.Sort(lines)
	if diff := cmp.Diff([]string{"1", "2", "3", "4"}, lines); diff != "" {
		t.Errorf("unique values mismatch (-want +got):\n%s", diff)
	}

	stdout, _, _ = run(t, "data", "Bool", "-n", "20", "--seed", "3")
	for _, v := range strings.Fields(stdout) {
		if v != "True" && v != "False" {
			t.Errorf("Bool printed %q", v)
		}
	}

	stdout, _, _ = run(t, "data", "Team?", "-u", "Team:a", "--null-probability", "1")
	if stdout != "null\n" {
		t.Errorf("omitted value printed %q", stdout)
	}
}

func TestList(t *testing.T) {
	stdout, stderr, code := run(t, "list", "-u", "Zed:z")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	names := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if diff := cmp.Diff([]string{"Zed", "Bool", "Int", "Float", "FirstName"}, names[:5]); diff != "" {
		t.Errorf("list head mismatch (-want +got):\n%s", diff)
	}
	for _, want := range []string{"Position", "LicencePlate", "FreeEmail"} {
		if !slices.Contains(names, want) {
			t.Errorf("list is missing %s", want)
		}
	}
}

func TestPrintColumns(t *testing.T) {
	var buf bytes.Buffer
	printColumns(&buf, []string{"Int", "Trésorier", "Bool", "Float", "Uuid"}, 24)
	pad := func(s string) string { return s + strings.Repeat(" ", 11-len([]rune(s))) }
	want := pad("Int") + "Trésorier\n" + pad("Bool") + "Float\nUuid\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
}

func TestValues(t *testing.T) {
	stdout, _, code := run(t, "values", "Position")
	if code != 0 || stdout != "Trésorier\nVPO\nSecGe\nDirCo\nInfo\n" {
		t.Errorf("values Position = %q (exit %d)", stdout, code)
	}

	stdout, _, _ = run(t, "values", "Team", "-u", "Team:red|blue")
	if stdout != "red\nblue\n" {
		t.Errorf("values Team = %q", stdout)
	}

	_, stderr, code := run(t, "values", "FirstName")
	if code != 1 || !strings.Contains(stderr, "not enumerable") {
		t.Errorf("values FirstName: exit %d, stderr %s", code, stderr)
	}
}

const petstore = `openapi: 3.1.0
info:
  title: Pets
  version: 1.0.0
paths: {}
components:
  schemas:
    Pet:
      type: object
      required: [id, name]
      properties:
        id:
          type: string
          format: uuid
        name:
          type: string
        kind:
          type: string
          enum: [cat, dog]
`

func TestOpenAPI(t *testing.T) {
	spec := writeFile(t, "pets.yaml", petstore)

	stdout, stderr, code := run(t, "openapi", spec, "--component", "Pet", "--compact")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if want := `{"id":"Uuid","name":"Name","kind?":"cat|dog"}` + "\n"; stdout != want {
		t.Errorf("schema = %q, want %q", stdout, want)
	}

	stdout, stderr, code = run(t, "openapi", spec, "--component", "Pet", "--generate", "-c", "2", "--compact", "--seed", "4")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d documents:\n%s", len(lines), stdout)
	}
	var pet map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &pet); err != nil {
		t.Fatal(err)
	}
	if _, ok := pet["id"].(string); !ok {
		t.Errorf("generated pet = %v", pet)
	}

	_, stderr, code = run(t, "openapi", spec, "--component", "Owner")
	if code != 1 || !strings.Contains(stderr, "unknown component schema") {
		t.Errorf("unknown component: exit %d, stderr %s", code, stderr)
	}
}
