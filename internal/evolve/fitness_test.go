package evolve

import (
	"math"
	"testing"

	"github.com/polyfit/approximation-core/internal/points"
	"github.com/polyfit/approximation-core/pkg/utils"
)

func cubicPoints(t *testing.T, coeffs []float64, count int) *points.PointSet {
	t.Helper()

	pts, err := points.Generate(coeffs, count, -2, 2, 0, utils.NewRandSource(42))
	if err != nil {
		t.Fatalf("generating points: %v", err)
	}
	return pts
}

func TestSequentialEvaluatorExactFitIsZero(t *testing.T) {
	coeffs := []float64{1, 2, 3, 4}
	pts := cubicPoints(t, coeffs, 50)

	pop := NewPopulation(4, 4)
	pop.CopyIndividual(0, coeffs)
	pop.CopyIndividual(1, []float64{1, 2, 3, 4.5})
	pop.CopyIndividual(2, []float64{0, 0, 0, 0})
	pop.CopyIndividual(3, []float64{1.1, 2, 3, 4})

	fitness := make([]float64, 4)
	SequentialEvaluator{}.Evaluate(pop, pts, fitness)

	if fitness[0] != 0 {
		t.Errorf("exact coefficients scored %v, want 0", fitness[0])
	}
	for i := 1; i < 4; i++ {
		if fitness[i] <= 0 {
			t.Errorf("individual %d scored %v, want > 0", i, fitness[i])
		}
	}
}

func TestSequentialEvaluatorKnownResiduals(t *testing.T) {
	// Two points on y = x, scored against y = x + 1: residual 1 at each
	// point, sum of squares 2.
	pts, err := points.New([]float64{0, 1}, []float64{0, 1})
	if err != nil {
		t.Fatalf("building points: %v", err)
	}

	pop := NewPopulation(4, 3)
	pop.CopyIndividual(0, []float64{1, 1, 0})

	fitness := make([]float64, 4)
	SequentialEvaluator{}.Evaluate(pop, pts, fitness)

	if math.Abs(fitness[0]-2.0) > 1e-12 {
		t.Errorf("fitness = %v, want 2", fitness[0])
	}
}

func TestParallelEvaluatorMatchesSequential(t *testing.T) {
	pts := cubicPoints(t, []float64{0.5, -1, 2, 0.25}, 80)

	pop := NewPopulation(64, 4)
	pop.InitRandom(utils.NewRandSource(7), -5, 5)

	sequential := make([]float64, pop.Size())
	SequentialEvaluator{}.Evaluate(pop, pts, sequential)

	for _, workers := range []int{0, 1, 3, 64, 200} {
		parallel := make([]float64, pop.Size())
		ParallelEvaluator{Workers: workers}.Evaluate(pop, pts, parallel)

		for i := range sequential {
			if parallel[i] != sequential[i] {
				t.Fatalf("workers=%d: fitness[%d] = %v, sequential gave %v",
					workers, i, parallel[i], sequential[i])
			}
		}
	}
}
