package filter

import (
	"context"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*Evaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *Evaluator) {
		if workers > 0 {
			e.workerCount = workers
		}
	}
}

// WithBatchSize sets the batch size for chunked processing
func WithBatchSize(size int) EvaluatorOption {
	return func(e *Evaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// WithLogger reports records that fail to evaluate
func WithLogger(logger zerolog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// Evaluator applies a compiled filter to many items
type Evaluator struct {
	workerCount int
	batchSize   int
	logger      zerolog.Logger
}

// NewEvaluator creates a new evaluator
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
		logger:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Select returns the items matching f, in their original order. Items that
// fail to evaluate are logged and skipped.
func Select[T any](ctx context.Context, e *Evaluator, f CompiledFilter, items []T) ([]T, error) {
	if len(items) == 0 {
		return []T{}, nil
	}

	matched := make([]bool, len(items))

	// For small lists, don't bother with concurrency
	if len(items) < e.batchSize {
		if err := evaluateRange(e, f, items, matched, 0, len(items)); err != nil {
			return nil, err
		}
		return collect(items, matched), nil
	}

	chunkSize := max(len(items)/e.workerCount, e.batchSize)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workerCount)

	for start := 0; start < len(items); start += chunkSize {
		start, end := start, min(start+chunkSize, len(items))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return evaluateRange(e, f, items, matched, start, end)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return collect(items, matched), nil
}

// evaluateRange marks matches in items[start:end]; chunks never overlap
func evaluateRange[T any](e *Evaluator, f CompiledFilter, items []T, matched []bool, start, end int) error {
	for i := start; i < end; i++ {
		rec, err := ToRecord(items[i])
		if err != nil {
			return err
		}

		ok, err := f.Evaluate(rec)
		if err != nil {
			e.logger.Warn().Err(err).Str("id", rec.ID()).Msg("Skipping record that failed filter evaluation")
			continue
		}
		matched[i] = ok
	}
	return nil
}

func collect[T any](items []T, matched []bool) []T {
	out := make([]T, 0, len(items)/4)
	for i, item := range items {
		if matched[i] {
			out = append(out, item)
		}
	}
	return out
}
