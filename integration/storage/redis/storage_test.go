package redis_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nohost/core/storage"
	"github.com/dmitrymomot/nohost/integration/storage/redis"
)

// fakeClient answers from a map and pages SCAN results two keys at a time.
type fakeClient struct {
	data map[string]string
	err  error

	mu       sync.Mutex
	patterns []string
}

func (f *fakeClient) Get(_ context.Context, key string) *goredis.StringCmd {
	if f.err != nil {
		return goredis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeClient) Exists(_ context.Context, keys ...string) *goredis.IntCmd {
	if f.err != nil {
		return goredis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			n++
		}
	}
	return goredis.NewIntResult(n, nil)
}

func (f *fakeClient) StrLen(_ context.Context, key string) *goredis.IntCmd {
	return goredis.NewIntResult(int64(len(f.data[key])), nil)
}

func (f *fakeClient) Scan(_ context.Context, cursor uint64, match string, _ int64) *goredis.ScanCmd {
	f.mu.Lock()
	f.patterns = append(f.patterns, match)
	f.mu.Unlock()
	if f.err != nil {
		return goredis.NewScanCmdResult(nil, 0, f.err)
	}

	prefix := strings.ReplaceAll(strings.TrimSuffix(match, "*"), `\`, "")
	var keys []string
	for k := range f.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	start := int(cursor)
	if start >= len(keys) {
		return goredis.NewScanCmdResult(nil, 0, nil)
	}
	end := min(start+2, len(keys))
	next := uint64(end)
	if end == len(keys) {
		next = 0
	}
	return goredis.NewScanCmdResult(keys[start:end], next, nil)
}

func newStorage(t *testing.T, client *fakeClient) *redis.Storage {
	t.Helper()
	store, err := redis.New(client, redis.WithPrefix("site:"), redis.WithScanCount(10))
	require.NoError(t, err)
	return store
}

func testData() map[string]string {
	return map[string]string{
		"site:index.html":      "<h1>home</h1>",
		"site:css/site.css":    "body{}",
		"site:img/a.png":       "png",
		"site:img/icons/x.png": "x",
		"site:img/icons/y.png": "y",
		"site:img/z.txt":       "zz",
		"other:index.html":     "not ours",
	}
}

func TestNewRequiresClient(t *testing.T) {
	t.Parallel()
	_, err := redis.New(nil)
	assert.ErrorIs(t, err, storage.ErrInvalidConfig)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	store := newStorage(t, &fakeClient{data: testData()})
	ctx := context.Background()

	data, err := store.ReadFile(ctx, "/css/site.css")
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))

	_, err = store.ReadFile(ctx, "/missing.css")
	assert.ErrorIs(t, err, storage.ErrFileNotFound)

	_, err = store.ReadFile(ctx, "/")
	assert.ErrorIs(t, err, storage.ErrIsDirectory)
}

func TestStat(t *testing.T) {
	t.Parallel()

	store := newStorage(t, &fakeClient{data: testData()})
	ctx := context.Background()

	tests := []struct {
		path    string
		want    storage.Entry
		wantErr error
	}{
		{path: "/", want: storage.Entry{Name: "/", Path: "/", IsDir: true}},
		{path: "/img/z.txt", want: storage.Entry{Name: "z.txt", Path: "/img/z.txt", Size: 2}},
		{path: "img/icons", want: storage.Entry{Name: "icons", Path: "/img/icons", IsDir: true}},
		{path: "/nope", wantErr: storage.ErrFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, err := store.Stat(ctx, tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, store.Exists(ctx, tt.path))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, store.Exists(ctx, tt.path))
		})
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	store := newStorage(t, &fakeClient{data: testData()})
	ctx := context.Background()

	entries, err := store.List(ctx, "/img")
	require.NoError(t, err)
	assert.Equal(t, []storage.Entry{
		{Name: "a.png", Path: "/img/a.png"},
		{Name: "icons", Path: "/img/icons", IsDir: true},
		{Name: "z.txt", Path: "/img/z.txt"},
	}, entries)

	root, err := store.List(ctx, "/")
	require.NoError(t, err)
	names := make([]string, 0, len(root))
	for _, e := range root {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"css", "img", "index.html"}, names)

	_, err = store.List(ctx, "/nope")
	assert.ErrorIs(t, err, storage.ErrDirectoryNotFound)
}

func TestScanEscapesPattern(t *testing.T) {
	t.Parallel()

	client := &fakeClient{data: map[string]string{"site:a[1]/b.txt": "b"}}
	store := newStorage(t, client)

	entries, err := store.List(context.Background(), "/a[1]")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, `site:a\[1\]/*`, client.patterns[0])
}

func TestBackendErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	store := newStorage(t, &fakeClient{err: boom})
	ctx := context.Background()

	_, err := store.ReadFile(ctx, "/index.html")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, storage.ErrFileNotFound)

	_, err = store.Stat(ctx, "/index.html")
	assert.ErrorIs(t, err, boom)

	_, err = store.List(ctx, "/")
	assert.ErrorIs(t, err, boom)

	store = newStorage(t, &fakeClient{err: context.Canceled})
	_, err = store.ReadFile(ctx, "/index.html")
	assert.ErrorIs(t, err, storage.ErrOperationCanceled)
}
