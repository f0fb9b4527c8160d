// Package server runs an http.Handler with graceful shutdown.
//
// Server binds its own listener, so an address like "127.0.0.1:0" works and
// Addr reports the port actually chosen. Run returns a func() error suitable
// for errgroup; it stops the server with the configured shutdown timeout once
// the context is cancelled.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Config reads NOHOST_ADDR and the NOHOST_SERVER_* variables. Defaults suit
// a GET-only file server: short read and header timeouts, a 64 KiB header
// limit and a 60s write timeout, since a page is written only after all of
// its resources have been inlined. When both NOHOST_SERVER_TLS_CERT_FILE and
// NOHOST_SERVER_TLS_KEY_FILE are set the server serves HTTPS with a TLS 1.2
// minimum; setting just one is ErrIncompleteTLS.
package server
