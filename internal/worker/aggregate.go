package worker

import (
	"fmt"

	polyfitv1 "github.com/polyfit/approximation-core/gen/go/polyfit/v1"
)

// SelectGlobal picks the minimum-fitness result from a complete gather,
// breaking ties by lowest worker rank. The returned message identifies the
// winning worker through its rank field.
func SelectGlobal(results []*polyfitv1.WorkerResult) (*polyfitv1.WorkerResult, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("no worker results to aggregate")
	}

	best := results[0]
	for _, res := range results[1:] {
		if res.BestFitness < best.BestFitness {
			best = res
			continue
		}
		if res.BestFitness == best.BestFitness && res.WorkerRank < best.WorkerRank {
			best = res
		}
	}
	return best, nil
}
