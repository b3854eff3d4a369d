package evolve

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/polyfit/approximation-core/internal/points"
	"github.com/polyfit/approximation-core/pkg/config"
	"github.com/polyfit/approximation-core/pkg/logger"
	"github.com/polyfit/approximation-core/pkg/utils"
)

// State is the lifecycle phase of an engine run.
type State string

const (
	StateInitializing State = "initializing"
	StateEvolving     State = "evolving"
	// StateConverged means the best fitness reached the target error.
	StateConverged State = "converged"
	// StateExhausted means the generation budget or the stagnation limit was
	// hit before the target error. It is a stopping reason, not a failure.
	StateExhausted State = "exhausted"
)

// GenerationStats records the convergence bookkeeping of one generation.
type GenerationStats struct {
	Generation     int
	BestFitness    float64
	NoChangeStreak int
}

// RunResult is the terminal output of one engine run. It is immutable once
// produced.
type RunResult struct {
	Best        Individual
	BestFitness float64
	Generations int
	Elapsed     time.Duration
	State       State
}

// Engine drives generations of crossover, mutation, fitness evaluation and
// selection until a termination condition fires. It owns its two population
// buffers and its random stream; nothing inside the loop is shared with
// other engines.
type Engine struct {
	cfg *config.Run
	pts *points.PointSet

	rng       *utils.RandSource
	evaluator Evaluator
	crossover *Crossover
	mutation  *Mutation
	selection Selection

	current *Population
	scratch *Population
	fitness []float64

	state          State
	generation     int
	noChangeStreak int
	bestFitness    float64
	previousBest   float64
	history        []GenerationStats
}

// NewEngine validates the configuration against the point set and prepares
// an engine. A malformed configuration is rejected here, before any
// population buffer is allocated.
func NewEngine(cfg *config.Run, pts *points.PointSet, seed int64) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("run configuration is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run configuration: %w", err)
	}
	if pts == nil || pts.Len() == 0 {
		return nil, fmt.Errorf("point set is required")
	}
	if pts.Len() != cfg.PointCount {
		return nil, fmt.Errorf("point set holds %d samples, configuration expects %d", pts.Len(), cfg.PointCount)
	}

	rng := utils.NewRandSource(seed)
	return &Engine{
		cfg:       cfg,
		pts:       pts,
		rng:       rng,
		evaluator: SequentialEvaluator{},
		crossover: NewCrossover(rng),
		mutation:  NewMutation(rng, cfg.Mutation),
		state:     StateInitializing,
	}, nil
}

// WithEvaluator substitutes the fitness evaluation backend.
func (e *Engine) WithEvaluator(evaluator Evaluator) *Engine {
	e.evaluator = evaluator
	return e
}

// Run executes the evolutionary loop until convergence or exhaustion and
// returns the result built from the final best individual. The context is
// checked between generations; cancellation aborts the run with the
// context's error.
func (e *Engine) Run(ctx context.Context) (*RunResult, error) {
	start := time.Now()

	e.current = NewPopulation(e.cfg.PopulationSize, e.cfg.GeneCount)
	e.scratch = NewPopulation(e.cfg.PopulationSize, e.cfg.GeneCount)
	e.fitness = make([]float64, e.cfg.PopulationSize)
	e.current.InitRandom(e.rng, e.cfg.InitRange.Min, e.cfg.InitRange.Max)

	e.generation = 0
	e.noChangeStreak = 0
	e.bestFitness = math.Inf(1)
	e.previousBest = math.Inf(1)
	e.history = e.history[:0]
	e.state = StateEvolving

	for e.generation < e.cfg.MaxGenerations &&
		e.bestFitness > e.cfg.TargetError &&
		e.noChangeStreak < e.cfg.MaxConstIter {

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		e.generation++
		e.runGeneration()

		logger.Debug("generation evolved",
			"generation", e.generation,
			"best_fitness", e.bestFitness,
			"no_change_streak", e.noChangeStreak)
	}

	if e.bestFitness <= e.cfg.TargetError {
		e.state = StateConverged
	} else {
		e.state = StateExhausted
	}

	return &RunResult{
		Best:        e.current.Individual(0).Clone(),
		BestFitness: e.bestFitness,
		Generations: e.generation,
		Elapsed:     time.Since(start),
		State:       e.state,
	}, nil
}

// runGeneration performs one full pass: crossover into the scratch buffer,
// mutation in place, fitness evaluation of the mutated population, then
// selection reordering into the scratch buffer. Each pass flips the buffer
// roles twice, so current always holds the ranked population afterwards.
func (e *Engine) runGeneration() {
	e.crossover.Apply(e.current, e.scratch)
	e.current, e.scratch = e.scratch, e.current

	e.mutation.Apply(e.current)

	e.evaluator.Evaluate(e.current, e.pts, e.fitness)

	e.selection.Apply(e.current, e.fitness, e.scratch)
	e.current, e.scratch = e.scratch, e.current

	e.bestFitness = e.fitness[0]
	if math.Abs(e.bestFitness-e.previousBest) < e.cfg.ConvergenceEpsilon {
		e.noChangeStreak++
	} else {
		e.noChangeStreak = 0
	}
	e.previousBest = e.bestFitness

	e.history = append(e.history, GenerationStats{
		Generation:     e.generation,
		BestFitness:    e.bestFitness,
		NoChangeStreak: e.noChangeStreak,
	})
}

// State returns the engine's current lifecycle phase.
func (e *Engine) State() State {
	return e.state
}

// History returns the per-generation statistics of the last run.
func (e *Engine) History() []GenerationStats {
	return e.history
}
