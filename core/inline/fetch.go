package inline

import (
	"context"

	"github.com/dmitrymomot/nohost/pkg/async"
)

type fetchFunc func(ctx context.Context, p string) ([]byte, error)

// readExisting checks existence before reading, which separates missing
// resources from unreadable ones.
func (r *Rewriter) readExisting(ctx context.Context, p string) ([]byte, error) {
	if !r.src.Exists(ctx, p) {
		return nil, ErrMissingResource
	}
	return r.read(ctx, p)
}

func (r *Rewriter) read(ctx context.Context, p string) ([]byte, error) {
	data, err := r.src.ReadFile(ctx, p)
	if err != nil {
		return nil, &ReadError{Path: p, Err: err}
	}
	return data, nil
}

// loader returns a function yielding the bytes for paths[i]. In sequential
// mode the fetch runs when the result is requested. Otherwise every fetch is
// started up front, bounded by the configured concurrency, and the returned
// function awaits the i-th future. The cancel func must be called once the
// caller is done.
func (r *Rewriter) loader(ctx context.Context, paths []string, fetch fetchFunc) (func(i int) ([]byte, error), context.CancelFunc) {
	if r.concurrency <= 1 || len(paths) < 2 {
		return func(i int) ([]byte, error) { return fetch(ctx, paths[i]) }, func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	sem := make(chan struct{}, r.concurrency)

	futures := make([]*async.Future[[]byte], len(paths))
	for i, p := range paths {
		futures[i] = async.Async(ctx, p, func(ctx context.Context, p string) ([]byte, error) {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			defer func() { <-sem }()
			return fetch(ctx, p)
		})
	}

	return func(i int) ([]byte, error) { return futures[i].Await() }, cancel
}
