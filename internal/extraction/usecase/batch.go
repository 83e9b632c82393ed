package usecase

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"nlp-task-calendar/internal/extraction"
	"nlp-task-calendar/internal/model"
	"nlp-task-calendar/pkg/metrics"
)

// ExtractBatch extracts every task concurrently, keeping input order.
// A failed item is logged and left out of the results.
func (uc *implUseCase) ExtractBatch(ctx context.Context, input extraction.BatchInput) (extraction.BatchOutput, error) {
	runID := uuid.NewString()
	uc.l.Infof(ctx, "ExtractBatch: run=%s tasks=%d workers=%d", runID, len(input.Tasks), uc.cfg.Workers)

	type slot struct {
		bundle model.EntityBundle
		ok     bool
	}
	slots := make([]slot, len(input.Tasks))
	var skipped, failed atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.Workers)
	for i, t := range input.Tasks {
		if t.Text == "" {
			skipped.Add(1)
			uc.countItem(metrics.OutcomeSkipped)
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := uc.ext.Extract(gctx, t.Text)
			if err != nil {
				failed.Add(1)
				uc.countItem(metrics.OutcomeFailure)
				uc.l.Warnf(ctx, "ExtractBatch: run=%s item=%d failed: %v", runID, i, err)
				return nil
			}
			slots[i] = slot{bundle: b, ok: true}
			uc.countItem(metrics.OutcomeSuccess)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return extraction.BatchOutput{}, err
	}

	results := make([]extraction.BatchResult, 0, len(slots))
	for i, s := range slots {
		if s.ok {
			results = append(results, extraction.BatchResult{
				OriginalText:      input.Tasks[i].Text,
				ExtractedEntities: s.bundle,
			})
		}
	}

	out := extraction.BatchOutput{
		Results: results,
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}

	if input.OutputPath != "" {
		if err := writeResults(input.OutputPath, results); err != nil {
			uc.l.Errorf(ctx, "ExtractBatch: run=%s write %s: %v", runID, input.OutputPath, err)
			return out, err
		}
		uc.l.Infof(ctx, "ExtractBatch: run=%s results saved to %s", runID, input.OutputPath)
	}

	uc.l.Infof(ctx, "ExtractBatch: run=%s done processed=%d skipped=%d failed=%d",
		runID, len(results), out.Skipped, out.Failed)
	return out, nil
}
