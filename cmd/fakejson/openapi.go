package main

import (
	"fmt"

	"github.com/speakeasy-api/fakejson"
	"github.com/speakeasy-api/fakejson/pkg/oasschema"
	"github.com/spf13/cobra"
)

func newOpenAPICmd(g *globalOptions) *cobra.Command {
	var (
		component string
		generate  bool
		count     int
		noHints   bool
	)
	cmd := &cobra.Command{
		Use:   "openapi SPEC",
		Short: "Derive a schema from OpenAPI component schemas",
		Long: `Converts the component schemas of an OpenAPI 3.x document into a
descriptor schema. With --generate, documents are generated from it instead.`,
		Example: `  fakejson openapi api.yaml --component User > user.json
  fakejson openapi api.yaml --component User --generate --count 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := oasschema.DefaultOptions()
			opts.Logger = g.logger
			opts.NameHints = !noHints
			doc, err := oasschema.LoadFile(cmd.Context(), args[0], opts)
			if err != nil {
				return &fileError{path: args[0], err: err}
			}

			var schema *fakejson.Node
			if component != "" {
				schema, err = doc.Schema(component)
			} else {
				schema, err = doc.Schemas()
			}
			if err != nil {
				return err
			}

			if !generate {
				return writeDocuments(cmd.OutOrStdout(), []*fakejson.Node{schema}, g.encodeOptions(), "", "")
			}
			if count < 0 {
				return fmt.Errorf("--count must not be negative, got %d", count)
			}
			s, err := g.newSession(0)
			if err != nil {
				return err
			}
			docs, err := s.Repeat(cmd.Context(), schema, count)
			if err != nil {
				return err
			}
			return writeDocuments(cmd.OutOrStdout(), docs, g.encodeOptions(), "", "")
		},
	}
	f := cmd.Flags()
	f.StringVar(&component, "component", "", "component schema to convert (default: all, keyed by name)")
	f.BoolVar(&generate, "generate", false, "generate documents instead of printing the schema")
	f.IntVarP(&count, "count", "c", 1, "number of documents with --generate")
	f.BoolVar(&noHints, "no-name-hints", false, "do not pick data types from property names")
	return cmd
}
