// Package logger builds slog loggers and provides attribute helpers with
// consistent key names.
//
//	log := logger.New(
//		logger.WithProduction("nohost"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	)
//
//	log.Info("serving",
//		logger.Component("server"),
//		logger.Path("/docs/index.html"),
//	)
//
// Context extractors add request-scoped attributes to every *Context call:
//
//	log := logger.New(logger.WithContextValue("request_id", requestIDKey{}))
//	log.InfoContext(ctx, "handled")
//
// Helpers taking optional values (Error, RequestID) return an empty
// Attr for nil or empty input, so they can be passed unconditionally.
package logger
