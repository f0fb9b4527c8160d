package inline_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrymomot/nohost/core/storage"
)

var errUnreadable = errors.New("unreadable")

// fakeSource is an in-memory storage.Source with per-path read delays and
// failures. It records read order and peak read concurrency.
type fakeSource struct {
	files   map[string][]byte
	failing map[string]error
	delays  map[string]time.Duration

	mu     sync.Mutex
	active int
	peak   int
	reads  []string
	checks []string
}

var _ storage.Source = (*fakeSource)(nil)

func newFakeSource(files map[string]string) *fakeSource {
	s := &fakeSource{
		files:   make(map[string][]byte, len(files)),
		failing: map[string]error{},
		delays:  map[string]time.Duration{},
	}
	for p, content := range files {
		s.files[p] = []byte(content)
	}
	return s
}

func (s *fakeSource) Exists(_ context.Context, p string) bool {
	s.mu.Lock()
	s.checks = append(s.checks, p)
	s.mu.Unlock()

	if _, ok := s.files[p]; ok {
		return true
	}
	_, ok := s.failing[p]
	return ok
}

func (s *fakeSource) ReadFile(ctx context.Context, p string) ([]byte, error) {
	s.mu.Lock()
	s.active++
	s.peak = max(s.peak, s.active)
	s.reads = append(s.reads, p)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.active--
		s.mu.Unlock()
	}()

	if d := s.delays[p]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err, ok := s.failing[p]; ok {
		return nil, err
	}
	data, ok := s.files[p]
	if !ok {
		return nil, storage.ErrFileNotFound
	}
	return data, nil
}

func (s *fakeSource) peakReads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peak
}

func (s *fakeSource) readLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.reads...)
}

func (s *fakeSource) existsLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.checks...)
}
