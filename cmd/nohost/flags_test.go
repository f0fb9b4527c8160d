package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nohost/app/nohost"
	"github.com/dmitrymomot/nohost/core/server"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	base := nohost.Config{
		Server:   server.Config{Addr: ":8080"},
		Root:     ".",
		Storage:  nohost.StorageLocal,
		LogLevel: "info",
	}

	tests := []struct {
		name    string
		args    []string
		want    nohost.Config
		envFile string
		wantErr bool
	}{
		{name: "no flags keeps env config", want: base},
		{
			name: "long flags",
			args: []string{"--addr", "127.0.0.1:9000", "--root", "/srv/www", "--storage", "s3", "--log-level", "debug", "--log-format", "json"},
			want: nohost.Config{Server: server.Config{Addr: "127.0.0.1:9000"}, Root: "/srv/www", Storage: "s3", LogLevel: "debug", LogFormat: "json"},
		},
		{
			name: "short flags",
			args: []string{"-a", ":1", "-r", "site", "-s", "redis"},
			want: nohost.Config{Server: server.Config{Addr: ":1"}, Root: "site", Storage: "redis", LogLevel: "info"},
		},
		{
			name: "explicit empty value overrides",
			args: []string{"--root="},
			want: nohost.Config{Server: server.Config{Addr: ":8080"}, Root: "", Storage: nohost.StorageLocal, LogLevel: "info"},
		},
		{name: "env file", args: []string{"--env-file", "prod.env"}, want: base, envFile: "prod.env"},
		{name: "unknown flag", args: []string{"--port", "80"}, wantErr: true},
		{name: "positional argument", args: []string{"public"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := parseFlags(tt.args, io.Discard)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			cfg := base
			f.apply(&cfg)
			assert.Equal(t, tt.want, cfg)
			assert.Equal(t, tt.envFile, f.envFile)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	dev := newLogger(nohost.Config{AppName: "nohost", Env: "development"}, io.Discard)
	assert.True(t, dev.Enabled(t.Context(), slog.LevelDebug))

	prod := newLogger(nohost.Config{AppName: "nohost", Env: "production"}, io.Discard)
	assert.False(t, prod.Enabled(t.Context(), slog.LevelDebug))

	quiet := newLogger(nohost.Config{AppName: "nohost", Env: "development", LogLevel: "error"}, io.Discard)
	assert.False(t, quiet.Enabled(t.Context(), slog.LevelInfo))
}

func TestNewLoggerFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  nohost.Config
		json bool
	}{
		{name: "development preset is text", cfg: nohost.Config{Env: "development"}},
		{name: "production preset is json", cfg: nohost.Config{Env: "production"}, json: true},
		{name: "json override", cfg: nohost.Config{Env: "development", LogFormat: "json"}, json: true},
		{name: "text override", cfg: nohost.Config{Env: "production", LogFormat: "TEXT"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.cfg.AppName = "nohost"
			tt.cfg.Storage = nohost.StorageS3

			var buf bytes.Buffer
			newLogger(tt.cfg, &buf).Info("hello")

			line := buf.String()
			if tt.json {
				assert.True(t, strings.HasPrefix(line, "{"), line)
				assert.Contains(t, line, `"storage":"s3"`)
			} else {
				assert.Contains(t, line, "msg=hello")
				assert.Contains(t, line, "storage=s3")
			}
		})
	}
}
