package evolve

import "github.com/polyfit/approximation-core/pkg/config"

// geneNudge is the half-width of the uniform perturbation applied to a
// mutated gene.
const geneNudge = 0.01

// Mutation perturbs genes of a population in place. Individual 0 is never
// touched: it is the incumbent best of the previous generation, and leaving
// it intact keeps the best fitness monotonically non-increasing.
type Mutation struct {
	rng    randSource
	params config.MutationParams
}

// NewMutation creates a mutation operator with the given noise parameters.
func NewMutation(rng randSource, params config.MutationParams) *Mutation {
	return &Mutation{rng: rng, params: params}
}

// Apply mutates every individual except the first. Each individual draws a
// normally distributed intensity threshold; each of its genes draws an
// independent normal sample and is nudged by a uniform value in
// [-geneNudge, geneNudge] when the sample falls below the threshold.
func (m *Mutation) Apply(pop *Population) {
	for i := 1; i < pop.Size(); i++ {
		threshold := m.rng.NormFloat64(m.params.IndividualMean, m.params.IndividualStdDev)

		genes := pop.Individual(i)
		for j := range genes {
			if m.rng.NormFloat64(m.params.GeneMean, m.params.GeneStdDev) < threshold {
				genes[j] += geneNudge * (2.0*m.rng.Float64() - 1.0)
			}
		}
	}
}
