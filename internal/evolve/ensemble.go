package evolve

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/polyfit/approximation-core/internal/points"
	"github.com/polyfit/approximation-core/pkg/config"
)

// EnsembleResult is the outcome of one ensemble member.
type EnsembleResult struct {
	Member int
	Result *RunResult
}

// RunEnsemble executes members independent engines concurrently, each seeded
// with baseSeed offset by its member index, and returns every member's
// result together with the index of the minimum-fitness one (ties broken by
// lowest index). Members share the immutable point set and configuration but
// nothing else; this is an ensemble of restarts, not a cooperating search.
func RunEnsemble(ctx context.Context, cfg *config.Run, pts *points.PointSet, members int, baseSeed int64) ([]EnsembleResult, int, error) {
	if members <= 0 {
		return nil, 0, fmt.Errorf("ensemble needs at least one member, got %d", members)
	}

	results := make([]EnsembleResult, members)

	g, ctx := errgroup.WithContext(ctx)
	for m := 0; m < members; m++ {
		m := m
		g.Go(func() error {
			engine, err := NewEngine(cfg, pts, baseSeed+int64(m))
			if err != nil {
				return fmt.Errorf("ensemble member %d: %w", m, err)
			}
			res, err := engine.Run(ctx)
			if err != nil {
				return fmt.Errorf("ensemble member %d: %w", m, err)
			}
			results[m] = EnsembleResult{Member: m, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	best := 0
	for m := 1; m < members; m++ {
		if results[m].Result.BestFitness < results[best].Result.BestFitness {
			best = m
		}
	}
	return results, best, nil
}
