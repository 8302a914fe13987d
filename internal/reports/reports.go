package reports

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/faizmokh/hari/internal/intervals"
	"github.com/faizmokh/hari/internal/sheet"
)

// Result is the outcome for one entity.
type Result struct {
	EntryID string
	Window  intervals.Window
	Report  intervals.Report
	Err     error
}

// Failed counts results carrying an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// ComputeAll computes every entity's report concurrently. A nil window makes
// each entity use its own first..last recorded day. Per-entity failures are
// kept in the matching Result; only cancellation aborts the batch. Results
// keep the order of entities.
func ComputeAll(ctx context.Context, entities []sheet.Entity, window *intervals.Window) ([]Result, error) {
	if window != nil {
		if err := window.Validate(); err != nil {
			return nil, err
		}
	}

	results := make([]Result, len(entities))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, entity := range entities {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Compute(entity, window)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Compute builds a single entity's result.
func Compute(entity sheet.Entity, window *intervals.Window) Result {
	res := Result{EntryID: entity.ID}
	if entity.Err != nil {
		res.Err = entity.Err
		return res
	}

	if window == nil {
		res.Report, res.Window, res.Err = intervals.ComputeAuto(entity.Events)
		return res
	}

	res.Window = *window
	res.Report, res.Err = intervals.Compute(entity.Events, *window)
	return res
}
