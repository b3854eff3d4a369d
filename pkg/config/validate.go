package config

import "fmt"

// Validate rejects a Run that cannot drive the evolutionary loop. It is
// called before any population is allocated so a malformed configuration
// never produces a partial run.
func (r *Run) Validate() error {
	if r.PopulationSize <= 0 {
		return fmt.Errorf("population_size must be positive, got %d", r.PopulationSize)
	}
	// Crossover copies the fittest half and fills the other half with child
	// pairs, so both halves must be non-empty and even-sized.
	if r.PopulationSize < 4 || r.PopulationSize%2 != 0 {
		return fmt.Errorf("population_size must be an even number >= 4, got %d", r.PopulationSize)
	}
	// The crosspoint is drawn strictly between the first and last gene.
	if r.GeneCount < 3 {
		return fmt.Errorf("gene_count must be at least 3, got %d", r.GeneCount)
	}
	if r.PointCount <= 0 {
		return fmt.Errorf("point_count must be positive, got %d", r.PointCount)
	}
	if r.Mutation.IndividualStdDev < 0 {
		return fmt.Errorf("mutation individual_stddev cannot be negative, got %f", r.Mutation.IndividualStdDev)
	}
	if r.Mutation.GeneStdDev < 0 {
		return fmt.Errorf("mutation gene_stddev cannot be negative, got %f", r.Mutation.GeneStdDev)
	}
	if r.MaxGenerations <= 0 {
		return fmt.Errorf("max_generations must be positive, got %d", r.MaxGenerations)
	}
	if r.MaxConstIter <= 0 {
		return fmt.Errorf("max_const_iter must be positive, got %d", r.MaxConstIter)
	}
	if r.TargetError < 0 {
		return fmt.Errorf("target_error cannot be negative, got %f", r.TargetError)
	}
	if r.ConvergenceEpsilon <= 0 {
		return fmt.Errorf("convergence_epsilon must be positive, got %f", r.ConvergenceEpsilon)
	}
	if r.InitRange.Min >= r.InitRange.Max {
		return fmt.Errorf("init_range min must be below max, got [%f, %f]", r.InitRange.Min, r.InitRange.Max)
	}
	return nil
}
