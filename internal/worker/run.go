package worker

import "context"

// Run processes items on a fresh pool and returns the results in item order.
// Each item's Index is overwritten with its position in items.
//
// The first result carrying an error, or cancellation of ctx, stops the pool:
// items already running finish, queued items are skipped, and the error is
// returned without partial results.
func Run(ctx context.Context, items []WorkItem, process ProcessFunc, opts ...PoolOption) ([]ProcessResult, error) {
	pool := NewPool(process, append(opts, WithContext(ctx))...)
	pool.Start()

	go func() {
		defer pool.Close()
		for i, item := range items {
			item.Index = i
			if !pool.Submit(item) {
				return
			}
		}
	}()

	results := make([]ProcessResult, len(items))
	var firstErr error
	for r := range pool.Results() {
		if r.Err != nil && firstErr == nil {
			firstErr = r.Err
			pool.Stop()
		}
		results[r.Index] = r
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
