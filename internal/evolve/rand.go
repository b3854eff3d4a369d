package evolve

// randSource is the random-stream capability the operators are written
// against. *utils.RandSource satisfies it; alternate engines can be
// substituted in tests without touching operator logic.
type randSource interface {
	Float64() float64
	Intn(n int) int
	UniformFloat64(min, max float64) float64
	NormFloat64(mean, stddev float64) float64
}
