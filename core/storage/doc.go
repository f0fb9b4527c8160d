// Package storage defines the read-only virtual filesystem that nohost serves
// files from, together with an fs.FS backed implementation.
//
// All paths are POSIX-style and rooted at "/". Backends receive cleaned paths
// and must treat them as keys, never as host filesystem paths.
//
// # Interfaces
//
// Source is the minimal capability the inlining engine needs:
//
//	type Source interface {
//		Exists(ctx context.Context, path string) bool
//		ReadFile(ctx context.Context, path string) ([]byte, error)
//	}
//
// Storage adds the metadata operations used by the presentation handlers:
//
//	type Storage interface {
//		Source
//		Stat(ctx context.Context, path string) (Entry, error)
//		List(ctx context.Context, dir string) ([]Entry, error)
//	}
//
// # Local Storage
//
//	store, err := storage.NewLocal("./public")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	data, err := store.ReadFile(ctx, "/docs/index.html")
//
// Any fs.FS works through NewFS, which makes embed.FS and fstest.MapFS usable
// as storage:
//
//	store := storage.NewFS(fstest.MapFS{
//		"index.html": {Data: []byte("<h1>hi</h1>")},
//	})
//
// Other backends live under integration/storage (S3, Redis).
//
// # Errors
//
// Backends translate their native errors into the sentinels declared in this
// package so callers can use errors.Is regardless of the backend:
//
//	if errors.Is(err, storage.ErrFileNotFound) {
//		// render 404
//	}
package storage
