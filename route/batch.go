package route

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/geraud-g/reindeer/grid"
)

// Job is one independent maze to solve.
type Job struct {
	Name    string
	Grid    *grid.Grid
	Start   State
	Goal    grid.Position
	Options []Option
}

// Outcome pairs a Job name with its Solve result.
type Outcome struct {
	Name   string
	Result Result
	Err    error
}

// SolveAll solves jobs in parallel, at most limit at a time (limit ≤ 0
// means no limit). A single solve is never split across goroutines; only
// independent jobs run concurrently.
//
// Per-job failures (ErrUnreachable, ErrInvalidStart, ...) are stored in the
// matching Outcome and do not stop the other jobs. The returned error is
// non-nil only when ctx ends first; outcomes of jobs that never started
// carry ctx's error.
//
// Outcomes are returned in job order.
func SolveAll(ctx context.Context, jobs []Job, limit int) ([]Outcome, error) {
	out := make([]Outcome, len(jobs))
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for i := range jobs {
		job := jobs[i]
		out[i].Name = job.Name
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				out[i].Err = err
				return err
			}
			res, err := Solve(job.Grid, job.Start, job.Goal, job.Options...)
			out[i].Result = res
			out[i].Err = err
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return out, err
	}
	return out, nil
}
