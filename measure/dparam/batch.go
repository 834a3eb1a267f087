package dparam

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Job is one independent measurement for RunBatch.
type Job struct {
	ID     string
	X, Y   []float64
	Config Config
}

// Outcome pairs a Job's ID with its result or error.
type Outcome struct {
	ID     string
	Result *Result
	Err    error
}

// RunBatch measures every job on at most workers goroutines (GOMAXPROCS
// when workers <= 0). Outcomes are returned in job order.
//
// Cancellation is checked only before a job is dispatched: a run that has
// started always finishes. Jobs that were never dispatched carry ctx.Err().
// The returned error is ctx.Err() if any job was skipped, otherwise nil;
// per-job failures are reported in the outcomes only.
func RunBatch(ctx context.Context, jobs []Job, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Outcome, len(jobs))

	var g errgroup.Group
	g.SetLimit(workers)

	var skipped error
	for i, job := range jobs {
		out[i].ID = job.ID

		if err := ctx.Err(); err != nil {
			out[i].Err = err
			skipped = err
			continue
		}

		g.Go(func() error {
			out[i].Result, out[i].Err = Run(job.X, job.Y, job.Config)
			return nil
		})
	}

	_ = g.Wait()

	return out, skipped
}
