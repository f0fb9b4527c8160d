package mongo

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// flakyPinger fails the first failures pings.
type flakyPinger struct {
	failures int32
	calls    atomic.Int32
}

func (p *flakyPinger) Ping(context.Context, *readpref.ReadPref) error {
	if p.calls.Add(1) <= p.failures {
		return errors.New("connection refused")
	}
	return nil
}

func TestConnectValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{"empty url", "", ErrEmptyConnectionURL},
		{"bad scheme", "http://localhost:27017", ErrFailedToConnectToMongo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := Connect(context.Background(), Config{ConnectionURL: tt.url})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, client)
		})
	}
}

func TestPing(t *testing.T) {
	t.Parallel()

	t.Run("retries until ready", func(t *testing.T) {
		t.Parallel()
		p := &flakyPinger{failures: 2}
		require.NoError(t, ping(context.Background(), p, 3, time.Millisecond, time.Second))
		assert.Equal(t, int32(3), p.calls.Load())
	})

	t.Run("gives up after attempts", func(t *testing.T) {
		t.Parallel()
		p := &flakyPinger{failures: 10}
		err := ping(context.Background(), p, 2, time.Millisecond, time.Second)
		assert.ErrorIs(t, err, ErrFailedToConnectToMongo)
		assert.Equal(t, int32(2), p.calls.Load())
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := &flakyPinger{failures: 10}
		err := ping(ctx, p, 5, time.Hour, 0)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(1), p.calls.Load())
	})
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Healthcheck(&flakyPinger{})(context.Background()))

	err := Healthcheck(&flakyPinger{failures: 1})(context.Background())
	assert.ErrorIs(t, err, ErrHealthcheckFailed)
}
