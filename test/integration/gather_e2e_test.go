//go:build integration
// +build integration

package integration_test

import (
	"context"
	"net"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	polyfitv1 "github.com/polyfit/approximation-core/gen/go/polyfit/v1"
	"github.com/polyfit/approximation-core/internal/points"
	"github.com/polyfit/approximation-core/internal/worker"
	"github.com/polyfit/approximation-core/pkg/config"
	"github.com/polyfit/approximation-core/pkg/utils"
)

// startCoordinator serves a ResultCollector on a loopback port and returns
// its address together with the collector.
func startCoordinator(t *testing.T, expected int) (string, *worker.Collector) {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listening: %v", err)
	}

	collector := worker.NewCollector(expected)
	server := grpc.NewServer()
	polyfitv1.RegisterResultCollectorServer(server, collector)

	go func() {
		if err := server.Serve(listener); err != nil {
			t.Logf("coordinator server stopped: %v", err)
		}
	}()
	t.Cleanup(server.Stop)

	return listener.Addr().String(), collector
}

func TestIntegration_GatherSelectsGlobalMinimum(t *testing.T) {
	addr, collector := startCoordinator(t, 3)

	// The coordinator records its own result directly; the other two ranks
	// report over the wire.
	own := &polyfitv1.WorkerResult{
		WorkerRank:   0,
		RunId:        "rank0",
		Coefficients: []float64{1, 2, 3, 4},
		BestFitness:  0.5,
		State:        "exhausted",
	}
	if err := collector.Add(own); err != nil {
		t.Fatalf("recording coordinator result: %v", err)
	}

	var g errgroup.Group
	for _, res := range []*polyfitv1.WorkerResult{
		{WorkerRank: 1, RunId: "rank1", Coefficients: []float64{1, 2, 3, 4.1}, BestFitness: 0.1, State: "exhausted"},
		{WorkerRank: 2, RunId: "rank2", Coefficients: []float64{0, 2, 3, 4}, BestFitness: 0.9, State: "exhausted"},
	} {
		res := res
		g.Go(func() error {
			return worker.Report(context.Background(), addr, res)
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("reporting results: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	results, err := collector.Wait(ctx)
	if err != nil {
		t.Fatalf("waiting for gather: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("gathered %d results, want 3", len(results))
	}

	global, err := worker.SelectGlobal(results)
	if err != nil {
		t.Fatalf("selecting global result: %v", err)
	}
	if global.WorkerRank != 1 || global.BestFitness != 0.1 {
		t.Errorf("global result from rank %d with fitness %v, want rank 1 with 0.1",
			global.WorkerRank, global.BestFitness)
	}
}

func TestIntegration_DistributedRunEndToEnd(t *testing.T) {
	const workers = 3

	cfg := &config.Run{
		PopulationSize: 40,
		GeneCount:      4,
		PointCount:     30,
		Mutation: config.MutationParams{
			IndividualMean:   10,
			IndividualStdDev: 3,
			GeneStdDev:       1,
		},
		MaxGenerations:     30,
		MaxConstIter:       1000,
		TargetError:        0,
		ConvergenceEpsilon: 1e-9,
		InitRange:          config.Range{Min: -5, Max: 5},
	}
	pts, err := points.Generate([]float64{1, 2, 3, 4}, 30, -2, 2, 0, utils.NewRandSource(42))
	if err != nil {
		t.Fatalf("generating points: %v", err)
	}

	addr, collector := startCoordinator(t, workers)

	// Rank 0 runs in-process like the coordinator does; the remaining
	// ranks run and report over the wire.
	coordinatorResult, err := worker.NewRunner(0, cfg, pts, 100).Run(context.Background())
	if err != nil {
		t.Fatalf("coordinator run: %v", err)
	}
	if err := collector.Add(coordinatorResult); err != nil {
		t.Fatalf("recording coordinator result: %v", err)
	}

	var g errgroup.Group
	for rank := int32(1); rank < workers; rank++ {
		rank := rank
		g.Go(func() error {
			res, err := worker.NewRunner(rank, cfg, pts, 100).Run(context.Background())
			if err != nil {
				return err
			}
			return worker.Report(context.Background(), addr, res)
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("worker runs: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results, err := collector.Wait(ctx)
	if err != nil {
		t.Fatalf("waiting for gather: %v", err)
	}

	global, err := worker.SelectGlobal(results)
	if err != nil {
		t.Fatalf("selecting global result: %v", err)
	}
	for _, res := range results {
		if res.BestFitness < global.BestFitness {
			t.Errorf("rank %d fitness %v beats the global result's %v",
				res.WorkerRank, res.BestFitness, global.BestFitness)
		}
	}
	if len(global.Coefficients) != cfg.GeneCount {
		t.Errorf("global result carries %d coefficients, want %d", len(global.Coefficients), cfg.GeneCount)
	}
}

func TestIntegration_DuplicateRankRejectedOverWire(t *testing.T) {
	addr, collector := startCoordinator(t, 2)
	_ = collector

	res := &polyfitv1.WorkerResult{
		WorkerRank:   1,
		RunId:        "rank1",
		Coefficients: []float64{1, 2, 3, 4},
		BestFitness:  0.1,
		State:        "exhausted",
	}
	if err := worker.Report(context.Background(), addr, res); err != nil {
		t.Fatalf("first report: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := worker.Report(ctx, addr, res); err == nil {
		t.Error("expected the duplicate report to fail")
	}
}
