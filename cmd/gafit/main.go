package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/polyfit/approximation-core/internal/evolve"
	"github.com/polyfit/approximation-core/internal/points"
	"github.com/polyfit/approximation-core/pkg/config"
	"github.com/polyfit/approximation-core/pkg/logger"
	"github.com/polyfit/approximation-core/pkg/utils"
)

func main() {
	var configPath string
	var inputPath string
	var seed int64
	var members int
	var evalWorkers int
	var logLevel string

	var genOutput string
	var genCoeffs string
	var genNoise float64
	var genXMin, genXMax float64

	flag.StringVar(&configPath, "config", "", "run configuration YAML (defaults used when empty)")
	flag.StringVar(&inputPath, "input", "", "point file (whitespace-separated x y pairs)")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	flag.IntVar(&members, "members", 1, "number of independent engine restarts run concurrently")
	flag.IntVar(&evalWorkers, "eval-workers", 0, "fitness evaluation goroutines (0 = sequential)")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	flag.StringVar(&genOutput, "gen-output", "", "generate a synthetic point file and exit")
	flag.StringVar(&genCoeffs, "gen-coeffs", "1,2,3,4", "generating coefficients, lowest order first")
	flag.Float64Var(&genNoise, "gen-noise", 0.1, "noise stddev for generated points")
	flag.Float64Var(&genXMin, "gen-x-min", -2, "lower x bound for generated points")
	flag.Float64Var(&genXMax, "gen-x-max", 2, "upper x bound for generated points")
	flag.Parse()

	logger.SetDefault(logger.NewText(logLevel, os.Stdout))

	cfg := config.DefaultRun()
	if configPath != "" {
		loaded, err := config.LoadRun(configPath)
		if err != nil {
			logger.Error("failed to load configuration", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if genOutput != "" {
		if err := generatePointFile(genOutput, genCoeffs, cfg.PointCount, genXMin, genXMax, genNoise, seed); err != nil {
			logger.Error("failed to generate point file", "error", err)
			os.Exit(1)
		}
		logger.Info("point file generated", "path", genOutput, "points", cfg.PointCount)
		return
	}

	if inputPath == "" {
		logger.Error("an input point file is required (-input), or use -gen-output")
		os.Exit(1)
	}

	pts, err := points.ReadFile(inputPath, cfg.PointCount)
	if err != nil {
		logger.Error("failed to load points", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if members > 1 {
		runEnsemble(ctx, cfg, pts, members, seed)
		return
	}

	engine, err := evolve.NewEngine(cfg, pts, seed)
	if err != nil {
		logger.Error("failed to build engine", "error", err)
		os.Exit(1)
	}
	if evalWorkers > 0 {
		engine.WithEvaluator(evolve.ParallelEvaluator{Workers: evalWorkers})
	}

	logger.Info("run starting",
		"population", cfg.PopulationSize,
		"genes", cfg.GeneCount,
		"points", cfg.PointCount,
		"max_generations", cfg.MaxGenerations)

	res, err := engine.Run(ctx)
	if err != nil {
		logger.Error("run aborted", "error", err)
		os.Exit(1)
	}
	printResult(res)
}

func runEnsemble(ctx context.Context, cfg *config.Run, pts *points.PointSet, members int, seed int64) {
	logger.Info("ensemble starting", "members", members)

	results, best, err := evolve.RunEnsemble(ctx, cfg, pts, members, seed)
	if err != nil {
		logger.Error("ensemble aborted", "error", err)
		os.Exit(1)
	}
	for _, r := range results {
		logger.Info("ensemble member finished",
			"member", r.Member,
			"state", string(r.Result.State),
			"best_fitness", r.Result.BestFitness,
			"generations", r.Result.Generations)
	}
	logger.Info("ensemble best", "member", best)
	printResult(results[best].Result)
}

func printResult(res *evolve.RunResult) {
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Finished (%s)! Found solution:\n", res.State)
	for i, c := range res.Best {
		fmt.Printf("\tc%d = %g\n", i, c)
	}
	fmt.Printf("Best fitness: %g\n", res.BestFitness)
	fmt.Printf("Generations: %d\n", res.Generations)
	fmt.Printf("Elapsed: %s\n", utils.FormatDuration(res.Elapsed))
}

func generatePointFile(path, coeffList string, count int, xMin, xMax, noise float64, seed int64) error {
	parts := strings.Split(coeffList, ",")
	coeffs := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("malformed coefficient %q: %w", p, err)
		}
		coeffs = append(coeffs, v)
	}

	pts, err := points.Generate(coeffs, count, xMin, xMax, noise, utils.NewRandSource(seed))
	if err != nil {
		return err
	}
	return points.WriteFile(path, pts)
}
