package service

import (
	"context"
	"fmt"

	"github.com/YZcontent/yz-ad-club-backend/models"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// dispatcher schedules item executions of one batch. Results land in the
// slot of their input position, so the output order equals the input order.
type dispatcher struct {
	executor    *itemExecutor
	concurrency int
	rateLimit   float64
	rateBurst   int
}

func (d *dispatcher) Dispatch(ctx context.Context, req models.SyncRequest, creds models.Credentials) []models.ItemResult {
	results := make([]models.ItemResult, len(req.Content))
	limiter := d.newLimiter()

	run := func(i int) {
		item := req.Content[i]
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				results[i] = models.NewErrorResult(item.ID, fmt.Errorf("%w: %w", ErrRateLimited, err))
				return
			}
		}
		results[i] = d.executor.Execute(ctx, item, req.BusinessName, creds)
	}

	if d.concurrency <= 1 {
		for i := range req.Content {
			run(i)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(d.concurrency)
	for i := range req.Content {
		g.Go(func() error {
			run(i)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// newLimiter returns a batch-scoped token bucket, or nil when rate limiting
// is off.
func (d *dispatcher) newLimiter() *rate.Limiter {
	if d.rateLimit <= 0 {
		return nil
	}

	burst := d.rateBurst
	if burst <= 0 {
		burst = max(int(d.rateLimit), 1)
	}

	return rate.NewLimiter(rate.Limit(d.rateLimit), burst)
}
