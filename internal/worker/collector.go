package worker

import (
	"context"
	"errors"
	"sort"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	polyfitv1 "github.com/polyfit/approximation-core/gen/go/polyfit/v1"
	"github.com/polyfit/approximation-core/pkg/logger"
)

var (
	// ErrDuplicateRank means two reports arrived for the same worker rank.
	ErrDuplicateRank = errors.New("result for this rank already collected")
	// ErrGatherIncomplete means the gather ended before every expected
	// worker reported. The run is abandoned rather than producing a partial
	// global result.
	ErrGatherIncomplete = errors.New("gather ended before all workers reported")
)

// Collector implements the ResultCollector gRPC service on the coordinator.
// It blocks the gather until exactly the expected number of results has been
// collected; there is no partial-result recovery.
type Collector struct {
	polyfitv1.UnimplementedResultCollectorServer

	expected int

	mu      sync.Mutex
	results map[int32]*polyfitv1.WorkerResult
	done    chan struct{}
}

// NewCollector creates a collector waiting for results from expected workers
// (the coordinator's own result included).
func NewCollector(expected int) *Collector {
	return &Collector{
		expected: expected,
		results:  make(map[int32]*polyfitv1.WorkerResult),
		done:     make(chan struct{}),
	}
}

// ReportResult accepts one worker's terminal result over gRPC.
func (c *Collector) ReportResult(ctx context.Context, req *polyfitv1.ReportResultRequest) (*polyfitv1.ReportResultResponse, error) {
	if req == nil || req.Result == nil {
		return nil, status.Error(codes.InvalidArgument, "result is required")
	}
	if len(req.Result.Coefficients) == 0 {
		return nil, status.Error(codes.InvalidArgument, "result coefficients are required")
	}

	if err := c.Add(req.Result); err != nil {
		if errors.Is(err, ErrDuplicateRank) {
			return nil, status.Error(codes.AlreadyExists, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	logger.Info("worker result collected",
		"rank", req.Result.WorkerRank,
		"run_id", req.Result.RunId,
		"best_fitness", req.Result.BestFitness)
	return &polyfitv1.ReportResultResponse{Accepted: true}, nil
}

// Add records a result directly, bypassing the wire. The coordinator uses it
// for its own run's result.
func (c *Collector) Add(result *polyfitv1.WorkerResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.results[result.WorkerRank]; exists {
		return ErrDuplicateRank
	}
	c.results[result.WorkerRank] = result

	if len(c.results) == c.expected {
		close(c.done)
	}
	return nil
}

// Collected returns the number of results gathered so far.
func (c *Collector) Collected() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

// Wait blocks until every expected worker has reported, then returns the
// results ordered by rank. Context cancellation aborts the gather with
// ErrGatherIncomplete; by default callers pass a context without deadline,
// so a silent worker blocks the gather indefinitely.
func (c *Collector) Wait(ctx context.Context) ([]*polyfitv1.WorkerResult, error) {
	select {
	case <-c.done:
	case <-ctx.Done():
		c.mu.Lock()
		collected := len(c.results)
		c.mu.Unlock()
		logger.Error("gather aborted",
			"collected", collected, "expected", c.expected, "cause", ctx.Err())
		return nil, ErrGatherIncomplete
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*polyfitv1.WorkerResult, 0, len(c.results))
	for _, res := range c.results {
		out = append(out, res)
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].WorkerRank < out[b].WorkerRank
	})
	return out, nil
}
