package points

import (
	"fmt"

	"github.com/polyfit/approximation-core/pkg/utils"
)

// Generate produces count samples of the polynomial described by coeffs
// (lowest order first), with x drawn uniformly from [xMin, xMax) and
// normally distributed noise of the given standard deviation added to y.
// A zero noiseStdDev yields exact samples.
func Generate(coeffs []float64, count int, xMin, xMax, noiseStdDev float64, rng *utils.RandSource) (*PointSet, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("at least one coefficient is required")
	}
	if count <= 0 {
		return nil, fmt.Errorf("point count must be positive, got %d", count)
	}
	if xMin >= xMax {
		return nil, fmt.Errorf("x range min must be below max, got [%f, %f]", xMin, xMax)
	}
	if noiseStdDev < 0 {
		return nil, fmt.Errorf("noise stddev cannot be negative, got %f", noiseStdDev)
	}
	if rng == nil {
		rng = utils.NewRandSource(0)
	}

	xs := make([]float64, count)
	ys := make([]float64, count)
	for i := 0; i < count; i++ {
		x := rng.UniformFloat64(xMin, xMax)
		y := utils.EvalPolynomial(coeffs, x)
		if noiseStdDev > 0 {
			y += rng.NormFloat64(0, noiseStdDev)
		}
		xs[i] = x
		ys[i] = y
	}
	return New(xs, ys)
}
