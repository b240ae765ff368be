// Command tourlen loads a point file and prints TSP tour lengths: the exact
// Held–Karp optimum, the nearest-neighbour approximation, or both.
//
// Usage:
//
//	tourlen [flags] [input]
//
// Flags override values from the optional -config YAML file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/tourlen/config"
	"github.com/katalvlaran/tourlen/heldkarp"
	"github.com/katalvlaran/tourlen/nearest"
	"github.com/katalvlaran/tourlen/pointfile"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if code := exitCode(err); code != 0 {
		fmt.Fprintln(os.Stderr, "tourlen:", err)
		os.Exit(code)
	}
}

// exitCode maps the result of run to a process status; -help is a success.
func exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}

	return 1
}

// run is main without the process exit, so it can be tested.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	start := time.Now()
	inst, err := load(cfg)
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.Input, err)
	}
	n := inst.Points.Len()
	log.Info("loaded points", "input", cfg.Input, "points", n, "buckets", inst.Buckets.Buckets(),
		"took", time.Since(start).Round(time.Millisecond))
	if inst.Declared >= 0 && inst.Declared != n {
		log.Warn("declared point count differs from points read", "declared", inst.Declared, "read", n)
	}

	if cfg.Algorithm == config.AlgoExact || cfg.Algorithm == config.AlgoBoth {
		if err = runExact(cfg, inst, log, stdout); err != nil {
			return err
		}
	}
	if cfg.Algorithm == config.AlgoHeuristic || cfg.Algorithm == config.AlgoBoth {
		if !inst.Sorted {
			log.Warn("input is not sorted by x then y; bucket scan order follows input order")
		}
		if err = runHeuristic(cfg, inst, log, stdout); err != nil {
			return err
		}
	}

	return nil
}

// parseArgs layers flags over the config file over the defaults.
func parseArgs(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("tourlen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfgPath  = fs.String("config", "", "YAML configuration file")
		input    = fs.String("input", "", "point file (or first positional argument)")
		format   = fs.String("format", config.FormatText, "input format: text | geojson")
		algo     = fs.String("algo", config.AlgoBoth, "solver: exact | heuristic | both")
		strategy = fs.String("strategy", nearest.ScanBuckets.String(), "heuristic candidate search: buckets | rtree")
		maxExact = fs.Int("max-exact", heldkarp.DefaultMaxPoints, "largest instance handed to the exact solver")
		timeout  = fs.Duration("timeout", 0, "exact solver time budget (0 = none)")
		logLevel = fs.String("log-level", "info", "log level: debug | info | warn | error")
		tourOut  = fs.String("tour-out", "", "write the heuristic tour as a GeoJSON LineString")
		sortPts  = fs.Bool("sort", false, "sort points by x, then y, before assigning ids")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return config.Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "format":
			cfg.Format = *format
		case "algo":
			cfg.Algorithm = *algo
		case "strategy":
			cfg.Heuristic.Strategy = *strategy
		case "max-exact":
			cfg.Exact.MaxPoints = *maxExact
		case "timeout":
			cfg.Exact.Timeout = *timeout
		case "log-level":
			cfg.Log.Level = *logLevel
		case "tour-out":
			cfg.Heuristic.TourOut = *tourOut
		case "sort":
			cfg.Sort = *sortPts
		}
	})
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if cfg.Input == "" {
		return config.Config{}, fmt.Errorf("%w: no input file", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func load(cfg config.Config) (*pointfile.Instance, error) {
	var opts []pointfile.Option
	if cfg.Sort {
		opts = append(opts, pointfile.WithSort())
	}
	if cfg.Format == config.FormatGeoJSON {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return pointfile.ReadGeoJSON(f, opts...)
	}

	return pointfile.ReadFile(cfg.Input, opts...)
}

func runExact(cfg config.Config, inst *pointfile.Instance, log *slog.Logger, stdout io.Writer) error {
	n := inst.Points.Len()
	if (n < 2 || n > cfg.Exact.MaxPoints) && cfg.Algorithm == config.AlgoBoth {
		log.Warn("skipping exact solver", "points", n, "min", 2, "max", cfg.Exact.MaxPoints)
		return nil
	}

	ctx := context.Background()
	if cfg.Exact.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Exact.Timeout)
		defer cancel()
	}

	start := time.Now()
	cache, err := heldkarp.NewDistanceCache(inst.Points, inst.Coords)
	if err != nil {
		return fmt.Errorf("exact: %w", err)
	}
	length, err := heldkarp.Solve(inst.Points, cache,
		heldkarp.WithContext(ctx),
		heldkarp.WithMaxPoints(cfg.Exact.MaxPoints),
		heldkarp.WithObserver(func(p heldkarp.Progress) {
			log.Debug("exact problem size", "size", p.Size, "subsets", p.Subsets, "elapsed", time.Since(start))
		}),
	)
	if err != nil {
		return fmt.Errorf("exact: %w", err)
	}
	log.Info("exact solver done", "points", n, "took", time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(stdout, "exact: %.6f\n", length)

	return nil
}

func runHeuristic(cfg config.Config, inst *pointfile.Instance, log *slog.Logger, stdout io.Writer) error {
	strategy, err := nearest.ParseStrategy(cfg.Heuristic.Strategy)
	if err != nil {
		return err
	}

	n := inst.Points.Len()
	every := max(n/10, 1)
	start := time.Now()
	res, err := nearest.Solve(inst.Points, inst.Coords, inst.Buckets,
		nearest.WithStrategy(strategy),
		nearest.WithObserver(func(s nearest.Step) {
			if s.N%every == 0 {
				log.Debug("heuristic progress", "step", s.N, "of", n-1, "total", s.Total)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("heuristic: %w", err)
	}
	log.Info("heuristic solver done", "points", n, "strategy", strategy,
		"took", time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(stdout, "heuristic: %.6f\n", res.Length)

	if cfg.Heuristic.TourOut != "" {
		if err = writeTour(cfg.Heuristic.TourOut, inst, res.Tour); err != nil {
			return fmt.Errorf("heuristic: write tour: %w", err)
		}
		log.Info("wrote tour", "path", cfg.Heuristic.TourOut)
	}

	return nil
}

func writeTour(path string, inst *pointfile.Instance, tour []int) error {
	f, err := pointfile.TourFeature(inst.Coords, tour)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
