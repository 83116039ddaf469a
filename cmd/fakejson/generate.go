package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/speakeasy-api/fakejson"
	"github.com/speakeasy-api/fakejson/codec"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	file     string
	count    int
	before   string
	after    string
	reset    bool
	parallel int
}

func (o *generateOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.file, "file", "f", "schema.json", "path to the JSON or YAML schema")
	f.IntVarP(&o.count, "count", "c", 1, "number of documents to generate")
	f.StringVarP(&o.before, "before", "b", "", "string printed before every document")
	f.StringVarP(&o.after, "after", "a", "", "string printed after every document")
	f.BoolVar(&o.reset, "reset", false, "give every document its own unique values and references")
	f.IntVar(&o.parallel, "parallel", 0, "generate documents with this many workers (implies --reset)")
}

func runGenerate(cmd *cobra.Command, g *globalOptions, o *generateOptions) error {
	if o.count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", o.count)
	}

	schema, err := codec.DecodeFile(o.file)
	if err != nil {
		return &fileError{path: o.file, err: err}
	}

	docs, err := generateDocuments(cmd, g, o, schema)
	if err != nil {
		return err
	}
	return writeDocuments(cmd.OutOrStdout(), docs, g.encodeOptions(), o.before, o.after)
}

func generateDocuments(cmd *cobra.Command, g *globalOptions, o *generateOptions, schema *fakejson.Node) ([]*fakejson.Node, error) {
	ctx := cmd.Context()

	switch {
	case o.parallel > 0:
		return fakejson.GenerateParallel(ctx, schema, o.count, o.parallel, g.newSession)
	case o.reset:
		docs := make([]*fakejson.Node, 0, o.count)
		for i := 0; i < o.count; i++ {
			s, err := g.newSession(i)
			if err != nil {
				return nil, err
			}
			doc, err := s.Document(schema)
			if err != nil {
				return nil, fmt.Errorf("document %d: %w", i, err)
			}
			docs = append(docs, doc)
		}
		return docs, nil
	default:
		s, err := g.newSession(0)
		if err != nil {
			return nil, err
		}
		return s.Repeat(ctx, schema, o.count)
	}
}

// writeDocuments prints each document wrapped in before and after, one per line.
func writeDocuments(w io.Writer, docs []*fakejson.Node, opts codec.EncodeOptions, before, after string) error {
	for _, doc := range docs {
		b, err := codec.Marshal(doc, opts)
		if err != nil {
			return err
		}
		b = bytes.TrimSuffix(b, []byte("\n"))
		if _, err := fmt.Fprintf(w, "%s%s%s\n", before, b, after); err != nil {
			return err
		}
	}
	return nil
}

// fileError reports a schema file that could not be read or parsed.
type fileError struct {
	path string
	err  error
}

func (e *fileError) Error() string { return e.err.Error() }
func (e *fileError) Unwrap() error { return e.err }
