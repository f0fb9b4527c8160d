package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/dmitrymomot/nohost/app/nohost"
)

// flags holds command line values. Only flags set explicitly override the
// environment configuration.
type flags struct {
	addr      string
	root      string
	storage   string
	envFile   string
	logLevel  string
	logFormat string
	changed   map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	fs := flag.NewFlagSet("nohost", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &flags{changed: make(map[string]bool)}

	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (env NOHOST_ADDR)")
	fs.StringVarP(&f.root, "root", "r", "", "directory served by local storage (env NOHOST_ROOT)")
	fs.StringVarP(&f.storage, "storage", "s", "", "storage backend: local, s3, redis or mongo (env NOHOST_STORAGE)")
	fs.StringVar(&f.envFile, "env-file", "", "dotenv file loaded before reading the environment")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (env NOHOST_LOG_LEVEL)")
	fs.StringVar(&f.logFormat, "log-format", "", "json or text (env NOHOST_LOG_FORMAT)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: nohost [flags]\n\nServes a directory tree with every page's resources inlined.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })
	return f, nil
}

// apply overrides cfg with explicitly set flags.
func (f *flags) apply(cfg *nohost.Config) {
	if f.changed["addr"] {
		cfg.Server.Addr = f.addr
	}
	if f.changed["root"] {
		cfg.Root = f.root
	}
	if f.changed["storage"] {
		cfg.Storage = f.storage
	}
	if f.changed["log-level"] {
		cfg.LogLevel = f.logLevel
	}
	if f.changed["log-format"] {
		cfg.LogFormat = f.logFormat
	}
}
