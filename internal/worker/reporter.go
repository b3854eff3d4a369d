package worker

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	polyfitv1 "github.com/polyfit/approximation-core/gen/go/polyfit/v1"
	"github.com/polyfit/approximation-core/pkg/logger"
	"github.com/polyfit/approximation-core/pkg/utils"
)

const reportAttempts = 8

// Report delivers one worker's result to the coordinator at addr. The RPC is
// retried with exponential backoff because workers routinely finish before
// the coordinator's listener is up; after the attempts are spent the
// delivery failure is fatal to the worker.
func Report(ctx context.Context, addr string, result *polyfitv1.WorkerResult) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to set up connection to coordinator %s: %w", addr, err)
	}
	defer conn.Close()

	client := polyfitv1.NewResultCollectorClient(conn)
	backoff := utils.NewExponentialBackoff(100*time.Millisecond, 5*time.Second, 2.0, true)

	var lastErr error
	for attempt := 0; attempt < reportAttempts; attempt++ {
		if attempt > 0 {
			delay := backoff.NextDelay(attempt - 1)
			logger.Warn("report retry",
				"rank", result.WorkerRank, "attempt", attempt, "delay", delay, "error", lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		_, lastErr = client.ReportResult(ctx, &polyfitv1.ReportResultRequest{Result: result})
		if lastErr == nil {
			logger.Info("result reported", "rank", result.WorkerRank, "coordinator", addr)
			return nil
		}
		switch status.Code(lastErr) {
		case codes.InvalidArgument, codes.AlreadyExists:
			// Retrying cannot change the coordinator's answer.
			return fmt.Errorf("coordinator %s rejected result: %w", addr, lastErr)
		}
	}

	return fmt.Errorf("failed to report result to coordinator %s: %w", addr, lastErr)
}
