package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nohost/core/logger"
)

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDuration(t *testing.T) {
	t.Parallel()
	attr := logger.Duration(5 * time.Second)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, 5*time.Second, attr.Value.Duration())
}

func TestRequestID(t *testing.T) {
	t.Parallel()
	attr := logger.RequestID("req-123")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-123", attr.Value.String())

	empty := logger.RequestID("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestStringAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value string
	}{
		{"method", logger.Method("GET"), "method", "GET"},
		{"path", logger.Path("/docs/a.html"), "path", "/docs/a.html"},
		{"remote addr", logger.RemoteAddr("10.0.0.1:5000"), "remote_addr", "10.0.0.1:5000"},
		{"component", logger.Component("inline"), "component", "inline"},
		{"storage", logger.Storage("s3"), "storage", "s3"},
		{"stage", logger.Stage("links"), "stage", "links"},
		{"ref", logger.Ref("img/a.png"), "ref", "img/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.String())
		})
	}
}

func TestRefTruncatesDataURI(t *testing.T) {
	t.Parallel()
	attr := logger.Ref("data:image/png;base64,iVBORw0KGgo=")
	assert.Equal(t, "data:image/png;base64,...", attr.Value.String())
}

func TestStatusCode(t *testing.T) {
	t.Parallel()
	attr := logger.StatusCode(200)
	require.Equal(t, "status_code", attr.Key)
	assert.Equal(t, int64(200), attr.Value.Int64())
}
