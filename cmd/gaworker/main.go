package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	polyfitv1 "github.com/polyfit/approximation-core/gen/go/polyfit/v1"
	"github.com/polyfit/approximation-core/internal/points"
	"github.com/polyfit/approximation-core/internal/worker"
	"github.com/polyfit/approximation-core/pkg/config"
	"github.com/polyfit/approximation-core/pkg/logger"
)

// The coordinator is conventionally rank 0: it serves the collector, runs
// its own engine, and blocks on the gather until every worker has reported.
func main() {
	var rank int
	var workers int
	var coordinatorAddr string
	var configPath string
	var inputPath string
	var seed int64
	var gatherTimeout time.Duration
	var logLevel string

	flag.IntVar(&rank, "rank", 0, "this worker's rank (0 = coordinator)")
	flag.IntVar(&workers, "workers", 1, "total number of workers, coordinator included")
	flag.StringVar(&coordinatorAddr, "coordinator-addr", "localhost:50071", "coordinator listen/dial address")
	flag.StringVar(&configPath, "config", "", "run configuration YAML (defaults used when empty)")
	flag.StringVar(&inputPath, "input", "", "point file shared by all workers")
	flag.Int64Var(&seed, "seed", 1, "base random seed; each worker uses seed+rank")
	flag.DurationVar(&gatherTimeout, "gather-timeout", 0, "abort the gather after this duration (0 = block forever)")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger.SetDefault(logger.NewText(logLevel, os.Stdout))

	if rank < 0 || rank >= workers {
		logger.Error("rank out of range", "rank", rank, "workers", workers)
		os.Exit(1)
	}
	if inputPath == "" {
		logger.Error("an input point file is required (-input)")
		os.Exit(1)
	}

	cfg := config.DefaultRun()
	if configPath != "" {
		loaded, err := config.LoadRun(configPath)
		if err != nil {
			logger.Error("failed to load configuration", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	pts, err := points.ReadFile(inputPath, cfg.PointCount)
	if err != nil {
		logger.Error("failed to load points", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := worker.NewRunner(int32(rank), cfg, pts, seed)

	if rank == 0 {
		if err := runCoordinator(ctx, runner, coordinatorAddr, workers, gatherTimeout); err != nil {
			logger.Error("coordinator failed", "error", err)
			os.Exit(1)
		}
		return
	}

	res, err := runner.Run(ctx)
	if err != nil {
		logger.Error("worker run failed", "error", err)
		os.Exit(1)
	}
	if err := worker.Report(ctx, coordinatorAddr, res); err != nil {
		logger.Error("worker report failed", "error", err)
		os.Exit(1)
	}
}

func runCoordinator(ctx context.Context, runner *worker.Runner, addr string, workers int, gatherTimeout time.Duration) error {
	collector := worker.NewCollector(workers)

	grpcServer := grpc.NewServer()
	polyfitv1.RegisterResultCollectorServer(grpcServer, collector)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	go func() {
		logger.Info("collector listening", "addr", addr, "expected_workers", workers)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("collector server error", "error", err)
		}
	}()
	defer grpcServer.GracefulStop()

	res, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	if err := collector.Add(res); err != nil {
		return err
	}

	gatherCtx := ctx
	if gatherTimeout > 0 {
		var cancel context.CancelFunc
		gatherCtx, cancel = context.WithTimeout(ctx, gatherTimeout)
		defer cancel()
	}

	results, err := collector.Wait(gatherCtx)
	if err != nil {
		return err
	}

	for _, r := range results {
		logger.Info("worker result",
			"rank", r.WorkerRank,
			"run_id", r.RunId,
			"state", r.State,
			"best_fitness", r.BestFitness,
			"generations", r.Generations,
			"elapsed_seconds", r.ElapsedSeconds)
	}

	global, err := worker.SelectGlobal(results)
	if err != nil {
		return err
	}

	logger.Info("global best selected", "rank", global.WorkerRank, "best_fitness", global.BestFitness)
	printGlobal(global)
	return nil
}

func printGlobal(res *polyfitv1.WorkerResult) {
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Finished (%s)! Global best from worker %d:\n", res.State, res.WorkerRank)
	for i, c := range res.Coefficients {
		fmt.Printf("\tc%d = %g\n", i, c)
	}
	fmt.Printf("Best fitness: %g\n", res.BestFitness)
	fmt.Printf("Generations: %d\n", res.Generations)
	fmt.Printf("Elapsed: %gs\n", res.ElapsedSeconds)
}
