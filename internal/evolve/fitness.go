package evolve

import (
	"sync"

	"github.com/polyfit/approximation-core/internal/points"
	"github.com/polyfit/approximation-core/pkg/utils"
)

// Evaluator scores every individual of a population against a point set.
// The score of an individual is the sum of squared residuals between its
// polynomial and the samples; lower is better and zero is a perfect fit.
//
// Implementations must be pure with respect to their inputs so that backends
// are interchangeable, and must block until the whole table is written.
type Evaluator interface {
	Evaluate(pop *Population, pts *points.PointSet, fitness []float64)
}

// individualFitness computes the sum of squared residuals for one individual.
func individualFitness(genes Individual, pts *points.PointSet) float64 {
	sumError := 0.0
	for i := 0; i < pts.Len(); i++ {
		residual := utils.EvalPolynomial(genes, pts.X(i)) - pts.Y(i)
		sumError += residual * residual
	}
	return sumError
}

// SequentialEvaluator scores individuals one after another on the calling
// goroutine.
type SequentialEvaluator struct{}

// Evaluate writes one score per individual into fitness.
func (SequentialEvaluator) Evaluate(pop *Population, pts *points.PointSet, fitness []float64) {
	for i := 0; i < pop.Size(); i++ {
		fitness[i] = individualFitness(pop.Individual(i), pts)
	}
}

// ParallelEvaluator scores independent individuals concurrently while
// presenting the same blocking interface as the sequential backend. Since
// every individual is scored by exactly one goroutine against a read-only
// point set, the two backends produce identical tables.
type ParallelEvaluator struct {
	// Workers bounds the number of concurrent scoring goroutines.
	// Zero or negative means one goroutine per individual chunk of 64.
	Workers int
}

// Evaluate writes one score per individual into fitness.
func (e ParallelEvaluator) Evaluate(pop *Population, pts *points.PointSet, fitness []float64) {
	workers := e.Workers
	if workers <= 0 {
		workers = (pop.Size() + 63) / 64
	}
	if workers > pop.Size() {
		workers = pop.Size()
	}

	// Limit parallelism
	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup

	chunk := (pop.Size() + workers - 1) / workers
	for start := 0; start < pop.Size(); start += chunk {
		end := utils.Min(start+chunk, pop.Size())
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			for i := lo; i < hi; i++ {
				fitness[i] = individualFitness(pop.Individual(i), pts)
			}
		}(start, end)
	}

	wg.Wait()
}
