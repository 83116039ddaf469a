// Package faker is the primitive catalog behind bare data type names such as
// FirstName, FreeEmail or LicencePlate. It is backed by gofakeit and seeded,
// so a fixed seed replays the same values.
package faker

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/itchyny/timefmt-go"
	"github.com/speakeasy-api/fakejson"
)

// Options configures a Faker.
type Options struct {
	// strftime layouts for Date, Time and DateTime
	DateLayout     string // default: %Y-%m-%d
	TimeLayout     string // default: %H:%M:%S
	DateTimeLayout string // default: %Y-%m-%dT%H:%M:%SZ

	// Dates are drawn from [Since, Until)
	Since time.Time // default: 2000-01-01 UTC
	Until time.Time // default: 2030-01-01 UTC

	// Lookups exposes every parameterless gofakeit lookup (lower-case names
	// such as "hackerphrase") next to the curated names.
	Lookups bool
}

// DefaultOptions returns the default Faker configuration.
func DefaultOptions() Options {
	return Options{
		DateLayout:     "%Y-%m-%d",
		TimeLayout:     "%H:%M:%S",
		DateTimeLayout: "%Y-%m-%dT%H:%M:%SZ",
		Since:          time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Until:          time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Lookups:        true,
	}
}

// Faker implements fakejson.Primitives. It is not safe for concurrent use;
// build one per session.
type Faker struct {
	fake    *gofakeit.Faker
	opts    Options
	catalog []string
	lookups map[string]*gofakeit.Info
}

var _ fakejson.Primitives = (*Faker)(nil)

// New builds a Faker seeded with seed. A zero seed draws a random one.
func New(seed int64, opts ...Options) *Faker {
	opt := DefaultOptions()
	if len(opts) > 0 {
		opt = opts[0]
		def := DefaultOptions()
		if opt.DateLayout == "" {
			opt.DateLayout = def.DateLayout
		}
		if opt.TimeLayout == "" {
			opt.TimeLayout = def.TimeLayout
		}
		if opt.DateTimeLayout == "" {
			opt.DateTimeLayout = def.DateTimeLayout
		}
		if opt.Since.IsZero() {
			opt.Since = def.Since
		}
		if opt.Until.IsZero() || !opt.Until.After(opt.Since) {
			opt.Until = opt.Since.Add(def.Until.Sub(def.Since))
		}
	}

	f := &Faker{
		fake: gofakeit.New(seed),
		opts: opt,
	}
	f.catalog = make([]string, 0, len(primitives))
	for _, p := range primitives {
		f.catalog = append(f.catalog, p.name)
	}
	if opt.Lookups {
		f.lookups = usableLookups()
		extra := make([]string, 0, len(f.lookups))
		for name := range f.lookups {
			extra = append(extra, name)
		}
		slices.Sort(extra)
		f.catalog = append(f.catalog, extra...)
	}
	return f
}

// Generate produces one value for a catalog name.
func (f *Faker) Generate(name string) (string, error) {
	if p, ok := primitiveByName[name]; ok {
		if p.values != nil {
			return p.values[f.fake.Rand.Intn(len(p.values))], nil
		}
		return p.gen(f)
	}
	if info, ok := f.lookups[name]; ok {
		out, err := info.Generate(f.fake.Rand, gofakeit.NewMapParams(), info)
		if err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		return lookupString(out), nil
	}
	return "", fmt.Errorf("%w: %q", fakejson.ErrUnrecognizedType, name)
}

// Catalog lists the curated names, then the gofakeit lookups in name order.
func (f *Faker) Catalog() []string {
	return slices.Clone(f.catalog)
}

// Values lists the possible values of an enumerable name such as Position.
func (f *Faker) Values(name string) ([]string, bool) {
	p, ok := primitiveByName[name]
	if !ok || p.values == nil {
		return nil, false
	}
	return slices.Clone(p.values), true
}

func (f *Faker) date(layout string) (string, error) {
	t := f.fake.DateRange(f.opts.Since, f.opts.Until).UTC()
	return timefmt.Format(t, layout), nil
}

func (f *Faker) uuid() (string, error) {
	id, err := uuid.NewRandomFromReader(f.fake.Rand)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (f *Faker) pick(list []string) string {
	return list[f.fake.Rand.Intn(len(list))]
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// unseededLookups read the clock or gofakeit's global source instead of the
// Faker's own, so a seed cannot replay them.
var unseededLookups = map[string]bool{
	"daterange":  true, // end date defaults to today
	"futuretime": true,
	"pasttime":   true,
	"isin":       true, // country code from the global source

	// bounded by the current year
	"creditcardexp": true,
	"year":          true,
}

// usableLookups returns the seeded gofakeit lookups that produce a scalar
// and have a default for every parameter.
func usableLookups() map[string]*gofakeit.Info {
	out := make(map[string]*gofakeit.Info)
	for key, info := range gofakeit.FuncLookups {
		if _, shadowed := primitiveByFold[strings.ToLower(key)]; shadowed || unseededLookups[key] {
			continue
		}
		if info.Generate == nil || !scalarOutput(info.Output) {
			continue
		}
		usable := true
		for _, p := range info.Params {
			if p.Default == "" {
				usable = false
				break
			}
		}
		if usable {
			out[key] = &info
		}
	}
	return out
}

func scalarOutput(output string) bool {
	switch output {
	case "string", "bool", "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "float32", "float64":
		return true
	}
	return false
}

func lookupString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
