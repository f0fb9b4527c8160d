package server

import (
	"crypto/tls"
	"fmt"
	"time"
)

// Config is the listener part of the nohost configuration.
type Config struct {
	Addr string `env:"NOHOST_ADDR" envDefault:":8080"`

	ReadHeaderTimeout time.Duration `env:"NOHOST_SERVER_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"NOHOST_SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout      time.Duration `env:"NOHOST_SERVER_WRITE_TIMEOUT" envDefault:"60s"` // covers inlining of the slowest page
	IdleTimeout       time.Duration `env:"NOHOST_SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"NOHOST_SERVER_SHUTDOWN_TIMEOUT" envDefault:"15s"`
	MaxHeaderBytes    int           `env:"NOHOST_SERVER_MAX_HEADER_BYTES" envDefault:"65536"`

	// Both files or neither.
	TLSCertFile string `env:"NOHOST_SERVER_TLS_CERT_FILE"`
	TLSKeyFile  string `env:"NOHOST_SERVER_TLS_KEY_FILE"`
}

// DefaultConfig returns the values documented in constants.go.
func DefaultConfig() Config {
	return Config{
		Addr:              DefaultAddr,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
		ReadTimeout:       DefaultReadTimeout,
		WriteTimeout:      DefaultWriteTimeout,
		IdleTimeout:       DefaultIdleTimeout,
		ShutdownTimeout:   DefaultShutdownTimeout,
		MaxHeaderBytes:    DefaultMaxHeaderBytes,
	}
}

// NewFromConfig creates a Server from cfg. Zero durations and sizes keep
// the package defaults; opts are applied last and win over cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddress
	}
	if (cfg.TLSCertFile == "") != (cfg.TLSKeyFile == "") {
		return nil, fmt.Errorf("%w: cert %q, key %q", ErrIncompleteTLS, cfg.TLSCertFile, cfg.TLSKeyFile)
	}

	var configOpts []Option
	setDuration := func(d time.Duration, opt func(time.Duration) Option) {
		if d > 0 {
			configOpts = append(configOpts, opt(d))
		}
	}
	setDuration(cfg.ReadHeaderTimeout, WithReadHeaderTimeout)
	setDuration(cfg.ReadTimeout, WithReadTimeout)
	setDuration(cfg.WriteTimeout, WithWriteTimeout)
	setDuration(cfg.IdleTimeout, WithIdleTimeout)
	setDuration(cfg.ShutdownTimeout, WithShutdownTimeout)
	if cfg.MaxHeaderBytes > 0 {
		configOpts = append(configOpts, WithMaxHeaderBytes(cfg.MaxHeaderBytes))
	}

	if cfg.TLSCertFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %s, %s: %w", ErrFailedLoadCert, cfg.TLSCertFile, cfg.TLSKeyFile, err)
		}
		configOpts = append(configOpts, WithTLS(&tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}))
	}

	return New(cfg.Addr, append(configOpts, opts...)...), nil
}
