package server

import "errors"

var (
	// ErrMissingAddress is returned when server address is not provided.
	ErrMissingAddress = errors.New("server address is required")

	// ErrServerAlreadyRunning is returned by Start on a running server.
	ErrServerAlreadyRunning = errors.New("server is already running")

	// ErrFailedLoadCert is returned when TLS files cannot be loaded.
	ErrFailedLoadCert = errors.New("failed to load certificate")

	// ErrIncompleteTLS is returned when only one of the TLS files is set.
	ErrIncompleteTLS = errors.New("tls needs both certificate and key files")
)
