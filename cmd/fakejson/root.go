package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/speakeasy-api/fakejson"
	"github.com/speakeasy-api/fakejson/codec"
	"github.com/speakeasy-api/fakejson/pkg/faker"
	"github.com/spf13/cobra"
)

// globalOptions holds the flags shared by every command.
type globalOptions struct {
	defines         []string
	seed            uint64
	debug           bool
	logLevel        string
	nullProbability float64
	maxDepth        int
	format          string
	compact         bool

	// baseSeed is --seed when given, a random seed otherwise
	baseSeed uint64
	logger   fakejson.Logger
	stderr   io.Writer
}

func newRootCmd(g *globalOptions) *cobra.Command {
	gen := &generateOptions{}

	root := &cobra.Command{
		Use:   "fakejson",
		Short: "Generate fake data from a schema of data type descriptors",
		Long: `fakejson reads a JSON or YAML schema whose string leaves name data types
(FirstName, FreeEmail, 1..10, admin|user, Uuid*, Name[author], Email?) and
prints documents of the same shape filled with fake values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, g, gen)
		},
	}

	pf := root.PersistentFlags()
	pf.StringArrayVarP(&g.defines, "define", "u", nil, "user-defined data type 'Name:Value1|Value2' (repeatable)")
	pf.Uint64Var(&g.seed, "seed", 0, "seed for reproducible output")
	pf.BoolVar(&g.debug, "debug", false, "show error details")
	pf.StringVar(&g.logLevel, "log-level", "warn", "log level: error, warn, info or debug")
	pf.Float64Var(&g.nullProbability, "null-probability", fakejson.DefaultOptions().NullProbability, "chance that a '?' value or key is left out")
	pf.IntVar(&g.maxDepth, "max-depth", fakejson.DefaultOptions().MaxDepth, "maximum schema and descriptor nesting")
	pf.StringVar(&g.format, "format", string(codec.JSON), "output format: json or yaml")
	pf.BoolVar(&g.compact, "compact", false, "print JSON on a single line")

	gen.bind(root)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate documents from a schema file (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, g, gen)
		},
	}
	gen.bind(generateCmd)

	root.AddCommand(generateCmd, newDataCmd(g), newListCmd(g), newValuesCmd(g), newOpenAPICmd(g))
	return root
}

func (g *globalOptions) prepare(cmd *cobra.Command) error {
	if f := cmd.Flag("seed"); f != nil && f.Changed {
		g.baseSeed = g.seed
	} else {
		g.baseSeed = rand.Uint64()
	}
	level, err := fakejson.ParseLogLevel(g.logLevel)
	if err != nil {
		return err
	}
	g.logger = fakejson.NewLogger(level, g.stderr)
	if !(g.nullProbability >= 0 && g.nullProbability <= 1) {
		return fmt.Errorf("%w: --null-probability must be between 0 and 1, got %v", fakejson.ErrInvalidOption, g.nullProbability)
	}
	if _, err := codec.ParseFormat(g.format); err != nil {
		return err
	}
	return nil
}

// newSession builds the session for document index. Each index gets its own
// random streams derived from the base seed.
func (g *globalOptions) newSession(index int) (*fakejson.Session, error) {
	seed := mixSeed(g.baseSeed + uint64(index))
	fakerSeed := int64(mixSeed(seed) >> 1)
	if fakerSeed == 0 {
		// gofakeit treats 0 as "pick a random seed"
		fakerSeed = 1
	}

	opts := fakejson.DefaultOptions()
	opts.Random = fakejson.NewRandom(seed)
	opts.Primitives = faker.New(fakerSeed)
	opts.NullProbability = g.nullProbability
	opts.MaxDepth = g.maxDepth
	opts.Logger = g.logger.With(map[string]any{"doc": index})
	return fakejson.NewSession(g.defines, opts)
}

func (g *globalOptions) encodeOptions() codec.EncodeOptions {
	format, _ := codec.ParseFormat(g.format)
	return codec.EncodeOptions{Format: format, Compact: g.compact}
}

// mixSeed is the splitmix64 finalizer.
func mixSeed(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// execute runs the CLI and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	g := &globalOptions{stderr: stderr}
	root := newRootCmd(g)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = io.WriteString(stderr, formatError(err, g.debug, isTerminal(stderr)))
		return 1
	}
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
