// Package async provides a small Future type for running blocking work in the
// background while preserving the order in which results are consumed.
//
// # Usage
//
//	future := async.Async(ctx, "/site/logo.png", func(ctx context.Context, p string) ([]byte, error) {
//		return store.ReadFile(ctx, p)
//	})
//
//	// Do other work...
//
//	data, err := future.Await()
//
// Results are awaited explicitly, so callers decide the order in which they
// are applied regardless of which future finished first. Await may be
// called any number of times and always returns the same result.
//
// If the context is already cancelled when Async is called, the function is
// not run and the future resolves to the context's error.
package async
