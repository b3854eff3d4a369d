package evolve

// Crossover breeds the next generation from a fitness-ranked population.
// It is a fixed, non-adaptive operator: parents are drawn uniformly from the
// elite half with no fitness-proportionate weighting.
type Crossover struct {
	rng randSource
}

// NewCrossover creates a crossover operator drawing from the given stream.
func NewCrossover(rng randSource) *Crossover {
	return &Crossover{rng: rng}
}

// Apply fills next from current, which must already be ranked best-first:
// the fittest half is carried over unchanged into the same positions, and
// the remaining half is filled pairwise with children spliced from two
// randomly chosen elite parents.
func (c *Crossover) Apply(current, next *Population) {
	size := current.Size()
	geneCount := current.GeneCount()
	half := size / 2

	// Elitist carry-over of the fittest half.
	for i := 0; i < half; i++ {
		next.CopyIndividual(i, current.Individual(i))
	}

	for i := half; i < size; i += 2 {
		// Parents are drawn with replacement; an individual may mate with
		// itself or be reused across pairs.
		parent1 := current.Individual(c.rng.Intn(half))
		parent2 := current.Individual(c.rng.Intn(half))

		// The crosspoint never lands on the first or last gene position, so
		// each child carries material from both parents.
		crosspoint := c.rng.Intn(geneCount-2) + 1

		childA := next.Individual(i)
		childB := next.Individual(i + 1)
		for j := 0; j < geneCount; j++ {
			if j < crosspoint {
				childA[j] = parent1[j]
				childB[j] = parent2[j]
			} else {
				childA[j] = parent2[j]
				childB[j] = parent1[j]
			}
		}
	}
}
