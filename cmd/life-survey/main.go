package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"life/internal/app"
	"life/internal/survey"
	"life/pkg/core"
	_ "life/pkg/sims/life"
)

func main() {
	var (
		runs   int
		steps  int
		window int
		jobs   int
	)
	cfg, err := app.Parse(os.Args[0], os.Args[1:], func(fs *flag.FlagSet) {
		fs.IntVar(&runs, "runs", 16, "number of consecutive seeds to evaluate, starting at -seed")
		fs.IntVar(&steps, "steps", 2000, "generation limit per run")
		fs.IntVar(&window, "window", 16, "recent boards compared when detecting cycles")
		fs.IntVar(&jobs, "jobs", runtime.NumCPU(), "boards evaluated in parallel")
	})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Surveying %d seeds of %s on %dx%d %s (%d jobs, %d steps)\n",
		runs, cfg.Sim, cfg.Width, cfg.Height, cfg.Rule, jobs, steps)

	start := time.Now()
	results, err := survey.Run(ctx, survey.Options{
		Sim:       cfg.Sim,
		SimConfig: cfg.SimConfig(),
		Seeds:     survey.Seeds(cfg.Seed, runs),
		Steps:     steps,
		Window:    window,
		Jobs:      jobs,
		Progress: func(r survey.Result) {
			log.Printf("seed %d finished after %d generations", r.Seed, r.Generations)
		},
	})
	if err != nil {
		log.Fatalf("survey failed: %v (available sims: %v)", err, core.SimNames())
	}

	settled := 0
	fmt.Printf("\n%12s %8s %10s %s\n", "seed", "gens", "population", "outcome")
	for _, r := range results {
		outcome := "running"
		if r.Settled() {
			settled++
			outcome = fmt.Sprintf("settled (period %d)", r.Period)
		}
		fmt.Printf("%12d %8d %10d %s\n", r.Seed, r.Generations, r.Population, outcome)
	}
	fmt.Printf("\n%d/%d settled within %d generations (elapsed %s)\n",
		settled, len(results), steps, time.Since(start).Round(time.Millisecond))
}
