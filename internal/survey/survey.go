// Package survey runs many seeded boards headlessly and reports how each one
// ends: still running at the step limit, or settled into a still life or
// short cycle.
package survey

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"life/pkg/core"
	"life/pkg/sims/life"
)

// Options controls a survey.
type Options struct {
	Sim       string
	SimConfig map[string]string
	Seeds     []int64
	Steps     int
	// Window is how many recent boards are compared when looking for cycles.
	Window int
	// Jobs bounds how many boards run at once.
	Jobs int
	// Progress, when set, is called from worker goroutines as each run ends.
	Progress func(Result)
}

// Result summarises one seeded run.
type Result struct {
	Seed        int64
	Generations int
	Population  int
	Period      int
}

// Settled reports whether the run ended in a still life or cycle.
func (r Result) Settled() bool { return r.Period > 0 }

// Seeds returns n consecutive seeds starting at base.
func Seeds(base int64, n int) []int64 {
	seeds := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		seeds = append(seeds, base+int64(i))
	}
	return seeds
}

// Run evaluates every seed and returns the results ordered by seed.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	factory, ok := core.Sims()[opts.Sim]
	if !ok {
		return nil, errors.Errorf("[Run] unknown sim %q", opts.Sim)
	}
	if opts.Steps < 0 {
		return nil, errors.Errorf("[Run] steps must not be negative, got %d", opts.Steps)
	}

	eg, ctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		eg.SetLimit(opts.Jobs)
	}

	results := make([]Result, len(opts.Seeds))
	for i, seed := range opts.Seeds {
		eg.Go(func() error {
			res, err := runOne(ctx, factory(opts.SimConfig), seed, opts.Steps, opts.Window)
			if err != nil {
				return errors.Wrapf(err, "[Run] seed %d", seed)
			}
			results[i] = res
			if opts.Progress != nil {
				opts.Progress(res)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Seed < results[j].Seed })
	return results, nil
}

func runOne(ctx context.Context, sim core.Sim, seed int64, steps, window int) (Result, error) {
	sim.Reset(seed)
	history := life.NewHistory(window)
	history.Observe(sim.Cells())

	res := Result{Seed: seed}
	for res.Generations < steps {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		sim.Step()
		res.Generations++
		if period := history.Observe(sim.Cells()); period > 0 {
			res.Period = period
			break
		}
	}
	res.Population = core.Population(sim.Cells())
	return res, nil
}
