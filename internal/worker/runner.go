// Package worker runs one independent engine instance per worker process and
// exchanges terminal results with the coordinator over gRPC. Workers never
// communicate during evolution; the final gather is the only synchronization
// point of a distributed run.
package worker

import (
	"context"
	"fmt"

	polyfitv1 "github.com/polyfit/approximation-core/gen/go/polyfit/v1"
	"github.com/polyfit/approximation-core/internal/evolve"
	"github.com/polyfit/approximation-core/internal/points"
	"github.com/polyfit/approximation-core/pkg/config"
	"github.com/polyfit/approximation-core/pkg/logger"
	"github.com/polyfit/approximation-core/pkg/utils"
)

// Runner executes one complete evolutionary run for a worker rank.
type Runner struct {
	rank  int32
	cfg   *config.Run
	pts   *points.PointSet
	seed  int64
	runID string
}

// NewRunner prepares a runner for the given rank. The worker's random stream
// is derived from baseSeed and the rank so that workers with the same
// configuration do not converge in lock-step.
func NewRunner(rank int32, cfg *config.Run, pts *points.PointSet, baseSeed int64) *Runner {
	return &Runner{
		rank:  rank,
		cfg:   cfg,
		pts:   pts,
		seed:  baseSeed + int64(rank),
		runID: utils.GenerateRunID(),
	}
}

// RunID returns the identifier attached to this worker's report.
func (r *Runner) RunID() string {
	return r.runID
}

// Run executes the engine to termination and packages the outcome as the
// wire message the coordinator gathers.
func (r *Runner) Run(ctx context.Context) (*polyfitv1.WorkerResult, error) {
	engine, err := evolve.NewEngine(r.cfg, r.pts, r.seed)
	if err != nil {
		return nil, fmt.Errorf("worker %d: %w", r.rank, err)
	}

	logger.Info("worker run starting",
		"rank", r.rank, "run_id", r.runID, "seed", r.seed)

	res, err := engine.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("worker %d: %w", r.rank, err)
	}

	logger.Info("worker run finished",
		"rank", r.rank,
		"run_id", r.runID,
		"state", string(res.State),
		"best_fitness", res.BestFitness,
		"generations", res.Generations,
		"elapsed", utils.FormatDuration(res.Elapsed))

	return &polyfitv1.WorkerResult{
		WorkerRank:     r.rank,
		RunId:          r.runID,
		Coefficients:   res.Best,
		BestFitness:    res.BestFitness,
		Generations:    int32(res.Generations),
		ElapsedSeconds: res.Elapsed.Seconds(),
		State:          string(res.State),
	}, nil
}
