package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/nohost/app/nohost"
	"github.com/dmitrymomot/nohost/core/config"
	"github.com/dmitrymomot/nohost/core/logger"
	"github.com/dmitrymomot/nohost/core/server"
	"github.com/dmitrymomot/nohost/middleware"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "nohost: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	f, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	if f.envFile != "" {
		if err := config.LoadEnvFiles(f.envFile); err != nil {
			return err
		}
	}

	var cfg nohost.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	f.apply(&cfg)

	log := newLogger(cfg, os.Stdout)
	logger.SetAsDefault(log)

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		log.Debug(fmt.Sprintf(format, args...), logger.Component("maxprocs"))
	})); err != nil {
		log.Warn("set GOMAXPROCS", logger.Component("maxprocs"), logger.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := nohost.OpenStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("closing storage", logger.Error(err))
		}
	}()

	app, err := nohost.NewFromConfig(store, cfg,
		nohost.WithLogger(log),
		nohost.WithMiddleware(
			middleware.RequestID[*nohost.Context](),
			middleware.LoggingWithConfig[*nohost.Context](middleware.LoggingConfig{
				Logger:        log,
				OmitRequestID: true,
			}),
		),
	)
	if err != nil {
		return err
	}

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		return err
	}

	log.Info("serving",
		slog.String("root", cfg.Root),
		slog.String("addr", cfg.Server.Addr),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(ctx, app))
	return g.Wait()
}

func newLogger(cfg nohost.Config, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithContextValue("request_id", middleware.RequestIDContextKey()),
	}
	switch cfg.Env {
	case "production":
		opts = append(opts, logger.WithProduction(cfg.AppName))
	case "staging":
		opts = append(opts, logger.WithStaging(cfg.AppName))
	default:
		opts = append(opts, logger.WithDevelopment(cfg.AppName))
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		opts = append(opts, logger.WithJSONFormatter())
	case "text":
		opts = append(opts, logger.WithTextFormatter())
	}
	if cfg.Storage != "" {
		opts = append(opts, logger.WithAttr(logger.Storage(cfg.Storage)))
	}
	return logger.New(opts...)
}
