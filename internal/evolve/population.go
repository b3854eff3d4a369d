// Package evolve implements the generational optimization engine: population
// representation, fitness evaluation, crossover, mutation, fitness-based
// selection and the convergence/termination policy.
package evolve

// Individual is one candidate solution: the coefficient vector of a
// polynomial, lowest order first. Its length is fixed for the whole run.
type Individual []float64

// Clone returns an independent copy of the individual.
func (ind Individual) Clone() Individual {
	out := make(Individual, len(ind))
	copy(out, ind)
	return out
}

// Population is a fixed-size, ordered collection of individuals. The engine
// keeps two populations and alternates their current/scratch roles each
// generation, so no allocation happens inside the loop.
type Population struct {
	members   []Individual
	geneCount int
}

// NewPopulation allocates a population of size zeroed individuals with
// geneCount genes each.
func NewPopulation(size, geneCount int) *Population {
	members := make([]Individual, size)
	genes := make([]float64, size*geneCount)
	for i := range members {
		members[i] = genes[i*geneCount : (i+1)*geneCount : (i+1)*geneCount]
	}
	return &Population{
		members:   members,
		geneCount: geneCount,
	}
}

// Size returns the number of individuals.
func (p *Population) Size() int {
	return len(p.members)
}

// GeneCount returns the number of genes per individual.
func (p *Population) GeneCount() int {
	return p.geneCount
}

// Individual returns the individual at index i. The returned slice aliases
// population storage; callers that need an independent copy must Clone it.
func (p *Population) Individual(i int) Individual {
	return p.members[i]
}

// CopyIndividual copies the genes of src into position i.
func (p *Population) CopyIndividual(i int, src Individual) {
	copy(p.members[i], src)
}

// InitRandom fills every gene of every individual with a uniform random
// value in [min, max).
func (p *Population) InitRandom(rng randSource, min, max float64) {
	for _, member := range p.members {
		for k := range member {
			member[k] = rng.UniformFloat64(min, max)
		}
	}
}
