package server_test

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nohost/core/config"
	"github.com/dmitrymomot/nohost/core/server"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     server.Config
		opts    []server.Option
		wantErr error
		anyErr  bool
	}{
		{name: "defaults", cfg: server.DefaultConfig()},
		{
			name: "custom values",
			cfg: server.Config{
				Addr:            ":9000",
				ReadTimeout:     10 * time.Second,
				WriteTimeout:    20 * time.Second,
				IdleTimeout:     30 * time.Second,
				ShutdownTimeout: 5 * time.Second,
				MaxHeaderBytes:  2 << 20,
			},
		},
		{
			name: "options override config",
			cfg:  server.Config{Addr: ":8080", ShutdownTimeout: 30 * time.Second},
			opts: []server.Option{server.WithShutdownTimeout(time.Second)},
		},
		{name: "zero values", cfg: server.Config{Addr: ":8080"}},
		{name: "missing address", cfg: server.Config{ReadTimeout: time.Second}, wantErr: server.ErrMissingAddress},
		{name: "cert without key", cfg: server.Config{Addr: ":8080", TLSCertFile: "cert.pem"}, wantErr: server.ErrIncompleteTLS},
		{name: "key without cert", cfg: server.Config{Addr: ":8080", TLSKeyFile: "key.pem"}, wantErr: server.ErrIncompleteTLS},
		{
			name:    "unreadable tls files",
			cfg:     server.Config{Addr: ":8080", TLSCertFile: "/nonexistent/cert.pem", TLSKeyFile: "/nonexistent/key.pem"},
			wantErr: server.ErrFailedLoadCert,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, err := server.NewFromConfig(tt.cfg, tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, srv)
			assert.Equal(t, tt.cfg.Addr, srv.Addr())
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := server.DefaultConfig()

	assert.Equal(t, server.DefaultAddr, cfg.Addr)
	assert.Equal(t, server.DefaultReadHeaderTimeout, cfg.ReadHeaderTimeout)
	assert.Equal(t, server.DefaultReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, server.DefaultWriteTimeout, cfg.WriteTimeout)
	assert.Equal(t, server.DefaultIdleTimeout, cfg.IdleTimeout)
	assert.Equal(t, server.DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.Equal(t, server.DefaultMaxHeaderBytes, cfg.MaxHeaderBytes)
	assert.Empty(t, cfg.TLSCertFile)
	assert.Empty(t, cfg.TLSKeyFile)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("NOHOST_ADDR", "127.0.0.1:9999")
	t.Setenv("NOHOST_SERVER_WRITE_TIMEOUT", "2m")

	var cfg server.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "127.0.0.1:9999", cfg.Addr)
	assert.Equal(t, 2*time.Minute, cfg.WriteTimeout)
	assert.Equal(t, server.DefaultReadTimeout, cfg.ReadTimeout)
}

func TestEnvDefaultsMatchDefaultConfig(t *testing.T) {
	// Bypasses the config.Load cache filled by TestConfigFromEnvironment
	var cfg server.Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, server.DefaultConfig(), cfg)
	assert.Equal(t, 60*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 64<<10, cfg.MaxHeaderBytes)
}
