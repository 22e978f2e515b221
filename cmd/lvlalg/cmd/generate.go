// SPDX-License-Identifier: MIT
// Package: lvlalg/cmd/lvlalg/cmd
//
// generate.go — print exercises as text, JSON lines, YAML or styled boxes.
//
// Reproducibility: with a seed S the i-th exercise (0-based) is drawn from
// its own stream seeded S+i, so `--seed S+i --count 1` reproduces it alone.
// Unseeded runs derive one stream per exercise from a clock-seeded parent.
// Streams are fixed before any work starts; exercises are then generated
// concurrently and written in index order.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlalg/config"
	"github.com/katalvlaran/lvlalg/exercise"
	"github.com/katalvlaran/lvlalg/randx"
)

// Output formats accepted by --format.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatPretty = "pretty"
)

// MaxCount bounds --count.
const MaxCount = 1000

type generateOpts struct {
	terms    int
	max      int
	integers bool
	mode     string
	seed     int64
	count    int
	format   string
}

func newGenerateCmd(g *globals) *cobra.Command {
	o := &generateOpts{}
	c := &cobra.Command{
		Use:   "generate",
		Short: "Print randomly generated exercises",
		Long: `Print exercises with their simplified solutions.

Flags left unset take their value from the [generator] section of the
configuration; the term count is then drawn from [min_terms, max_terms].`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			recs, err := o.run(c, cfg, g)
			if err != nil {
				return err
			}
			return write(c.OutOrStdout(), o.format, recs)
		},
	}
	f := c.Flags()
	f.IntVar(&o.terms, "terms", 0, "number of terms (≥ 2)")
	f.IntVar(&o.max, "max", 0, "max power (numeric) or max degree (algebraic)")
	f.BoolVar(&o.integers, "integers", false, "mix integer terms in")
	f.StringVar(&o.mode, "mode", "", "numeric | algebraic")
	f.Int64Var(&o.seed, "seed", 0, "seed for a reproducible run")
	f.IntVarP(&o.count, "count", "n", 1, "number of exercises")
	f.StringVarP(&o.format, "format", "f", FormatText, "text | json | yaml | pretty")
	return c
}

// run merges flags over cfg and generates o.count records.
func (o *generateOpts) run(c *cobra.Command, cfg *config.Config, g *globals) ([]exercise.Record, error) {
	switch o.format {
	case FormatText, FormatJSON, FormatYAML, FormatPretty:
	default:
		return nil, fmt.Errorf("unknown format %q", o.format)
	}
	if o.count < 1 || o.count > MaxCount {
		return nil, fmt.Errorf("--count must be in [1, %d], got %d", MaxCount, o.count)
	}

	gen := cfg.Generator
	flags := c.Flags()
	if flags.Changed("max") {
		gen.MaxDegreeOrPower = o.max
	}
	if flags.Changed("integers") {
		gen.IncludeIntegers = o.integers
	}
	mode := gen.ParsedMode()
	if flags.Changed("mode") {
		m, err := exercise.ParseMode(o.mode)
		if err != nil {
			return nil, err
		}
		mode = m
	}
	terms := gen.MaxTerms
	if flags.Changed("terms") {
		terms = o.terms
	}
	if err := gen.CheckLimits(terms, gen.MaxDegreeOrPower); err != nil {
		return nil, err
	}
	seeded := gen.Seed != 0
	if flags.Changed("seed") {
		gen.Seed, seeded = o.seed, true
	}

	logger := g.logger(c.ErrOrStderr())
	shared := randx.FromClock()
	jobs := make([]job, o.count)
	for i := range jobs {
		j := job{seed: gen.Seed + int64(i), seeded: seeded}
		if seeded {
			j.rng = randx.FromSeed(j.seed)
		} else {
			j.rng = randx.Derive(shared, uint64(i))
		}
		j.params = exercise.Params{
			Terms:            o.terms,
			MaxDegreeOrPower: gen.MaxDegreeOrPower,
			IncludeIntegers:  gen.IncludeIntegers,
			Mode:             mode,
		}
		if !flags.Changed("terms") {
			j.params.Terms = drawTerms(j.rng, gen.MinTerms, gen.MaxTerms)
		}
		jobs[i] = j
	}

	recs := make([]exercise.Record, o.count)
	eg, ctx := errgroup.WithContext(c.Context())
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, j := range jobs {
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("exercise %d: %v", i+1, r)
				}
			}()
			if err := ctx.Err(); err != nil {
				return err
			}
			recs[i] = j.record(logger)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return recs, nil
}

// job is one exercise with its own random stream, so jobs run in any order.
type job struct {
	rng    *rand.Rand
	params exercise.Params
	seed   int64
	seeded bool
}

func (j job) record(logger *slog.Logger) exercise.Record {
	res := exercise.Generate(j.params, exercise.WithRand(j.rng), exercise.WithLogger(logger))
	rec := exercise.NewRecord(res)
	if j.seeded {
		rec = rec.WithSeed(j.seed)
	}
	return rec
}

func drawTerms(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func write(w io.Writer, format string, recs []exercise.Record) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		for _, r := range recs {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	case FormatPretty:
		for i, r := range recs {
			if _, err := fmt.Fprintln(w, renderPretty(i+1, r)); err != nil {
				return err
			}
		}
		return nil
	default:
		return writeText(w, recs)
	}
}

func writeText(w io.Writer, recs []exercise.Record) error {
	var b strings.Builder
	for i, r := range recs {
		if i > 0 {
			b.WriteByte('\n')
		}
		if len(recs) > 1 {
			fmt.Fprintf(&b, "# %d\n", i+1)
		}
		fmt.Fprintf(&b, "problem:  %s\nsolution: %s\n", r.Problem, r.Solution)
		for _, n := range r.Notices {
			fmt.Fprintf(&b, "notice:   %s (step %d) %s\n", n.Kind, n.Step, n.Detail)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
