package config

// Run holds every parameter of one evolutionary fitting run. The same Run is
// shared unchanged by all workers of a distributed run.
type Run struct {
	PopulationSize     int            `yaml:"population_size"`
	GeneCount          int            `yaml:"gene_count"`
	PointCount         int            `yaml:"point_count"`
	Mutation           MutationParams `yaml:"mutation"`
	MaxGenerations     int            `yaml:"max_generations"`
	MaxConstIter       int            `yaml:"max_const_iter"`
	TargetError        float64        `yaml:"target_error"`
	ConvergenceEpsilon float64        `yaml:"convergence_epsilon"`
	InitRange          Range          `yaml:"init_range"`
}

// MutationParams configures the two normal distributions used by mutation:
// one per-individual intensity threshold and one per-gene sample drawn
// against it.
type MutationParams struct {
	IndividualMean   float64 `yaml:"individual_mean"`
	IndividualStdDev float64 `yaml:"individual_stddev"`
	GeneMean         float64 `yaml:"gene_mean"`
	GeneStdDev       float64 `yaml:"gene_stddev"`
}

// Range is a closed interval of initial gene values.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Default values applied by ApplyDefaults for fields left at zero.
const (
	DefaultConvergenceEpsilon = 0.01
	DefaultInitMin            = -5.0
	DefaultInitMax            = 5.0
)

// DefaultRun returns a Run with the conventional parameters of the fitter:
// a cubic polynomial, a mid-sized population and the stock mutation noise.
func DefaultRun() *Run {
	return &Run{
		PopulationSize: 1000,
		GeneCount:      4,
		PointCount:     500,
		Mutation: MutationParams{
			IndividualMean:   10,
			IndividualStdDev: 3,
			GeneMean:         0,
			GeneStdDev:       1,
		},
		MaxGenerations:     1500,
		MaxConstIter:       300,
		TargetError:        0.005,
		ConvergenceEpsilon: DefaultConvergenceEpsilon,
		InitRange:          Range{Min: DefaultInitMin, Max: DefaultInitMax},
	}
}

// ApplyDefaults fills optional fields that were left at their zero value.
func (r *Run) ApplyDefaults() {
	if r.ConvergenceEpsilon <= 0 {
		r.ConvergenceEpsilon = DefaultConvergenceEpsilon
	}
	if r.InitRange.Min == 0 && r.InitRange.Max == 0 {
		r.InitRange = Range{Min: DefaultInitMin, Max: DefaultInitMax}
	}
}
