// Package points holds the immutable sample set a run approximates.
// The set is loaded or generated once at startup and is shared read-only by
// every fitness evaluation for the lifetime of the process.
package points

import (
	"fmt"
)

// PointSet is an ordered, immutable sequence of (x, y) samples.
type PointSet struct {
	xs []float64
	ys []float64
}

// New builds a PointSet from two equal-length coordinate slices.
// The slices are copied so callers cannot mutate the set afterwards.
func New(xs, ys []float64) (*PointSet, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("point set cannot be empty")
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("x and y counts differ: %d vs %d", len(xs), len(ys))
	}
	ps := &PointSet{
		xs: make([]float64, len(xs)),
		ys: make([]float64, len(ys)),
	}
	copy(ps.xs, xs)
	copy(ps.ys, ys)
	return ps, nil
}

// Len returns the number of samples.
func (p *PointSet) Len() int {
	return len(p.xs)
}

// X returns the x coordinate of sample i.
func (p *PointSet) X(i int) float64 {
	return p.xs[i]
}

// Y returns the y coordinate of sample i.
func (p *PointSet) Y(i int) float64 {
	return p.ys[i]
}
