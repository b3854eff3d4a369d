package evolve

import "sort"

// Selection reorders a population by fitness so the best individual sits at
// position 0. No individual is created or destroyed.
type Selection struct{}

// Apply sorts an index permutation by fitness ascending (stable, so equal
// fitness values keep their original order) and materializes the reordered
// individuals into out. The fitness table is permuted in place to stay
// parallel with out, so fitness[0] is the generation's minimum afterwards.
func (Selection) Apply(pop *Population, fitness []float64, out *Population) {
	size := pop.Size()

	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return fitness[perm[a]] < fitness[perm[b]]
	})

	sorted := make([]float64, size)
	for i, idx := range perm {
		out.CopyIndividual(i, pop.Individual(idx))
		sorted[i] = fitness[idx]
	}
	copy(fitness, sorted)
}
