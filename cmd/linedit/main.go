// Package main is the entry point for the linedit editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dshills/linedit/internal/app"
	"github.com/dshills/linedit/internal/config"
	"github.com/dshills/linedit/internal/terminal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the command line.
type options struct {
	configPath  string
	overrides   config.Overrides
	watch       bool
	dumpConfig  bool
	showVersion bool
	showHelp    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin, stdout *os.File, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return app.ExitOK
		}
		return app.ExitUsage
	}
	if opts.showHelp {
		return app.ExitOK
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "linedit %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return app.ExitOK
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return app.ExitFatal
	}
	cfg.Apply(opts.overrides)
	if opts.dumpConfig {
		data, err := cfg.JSON()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return app.ExitFatal
		}
		stdout.Write(data)
		return app.ExitOK
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: invalid configuration:\n%v\n", err)
		return app.ExitFatal
	}

	logger, logFile, err := app.OpenLogFile(cfg.Log.File, app.ParseLogLevel(cfg.Log.Level))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return app.ExitFatal
	}
	// Everything opened from here on is released on return or on a signal.
	closers := []io.Closer{logFile}
	release := sync.OnceFunc(func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i].Close()
		}
	})
	defer release()

	backend, _ := terminal.ParseBackend(cfg.Terminal.Backend)
	term, err := terminal.Open(backend, stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to open terminal: %v\n", err)
		return app.ExitFatal
	}

	application, err := app.New(app.Options{Config: cfg, Terminal: term, Logger: logger})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return app.ExitFatal
	}

	if opts.watch && opts.configPath != "" {
		w, err := watchConfig(opts, application, logger)
		if err != nil {
			logger.WithComponent("main").Warn("config reload disabled: %v", err)
		} else {
			closers = append(closers, w)
		}
	}

	// Ctrl-C arrives as a key in raw mode; these come from outside.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	go handleSignal(signals, application, logger, release, os.Exit)

	err = application.Run()
	code := app.ExitCode(err)
	if code != app.ExitOK {
		application.Shutdown()
		logger.WithComponent("main").Error("%v", err)
		fmt.Fprintf(stderr, "\r\nError: %v\n", err)
	}
	return code
}

// handleSignal waits for a termination signal, restores the terminal,
// releases open resources and exits.
func handleSignal(signals <-chan os.Signal, application interface{ Shutdown() }, logger *app.Logger, release func(), exit func(int)) {
	sig, ok := <-signals
	if !ok {
		return
	}
	logger.WithComponent("main").Warn("received %v", sig)
	application.Shutdown()
	release()
	exit(app.ExitFatal)
}

// watchConfig reloads the configuration file into the running session
// whenever it changes.
func watchConfig(opts options, application *app.Application, logger *app.Logger) (*config.Watcher, error) {
	log := logger.WithComponent("config")
	load := func() (*config.Config, error) {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg.Apply(opts.overrides)
		return cfg, nil
	}

	return config.Watch(opts.configPath, func(cfg *config.Config, err error) {
		if err != nil {
			log.Warn("reload %s: %v", opts.configPath, err)
			return
		}
		ignored, err := application.Reconfigure(cfg)
		if err != nil {
			log.Warn("reload %s: %v", opts.configPath, err)
			return
		}
		if len(ignored) > 0 {
			log.Info("changes to %v apply after restart", ignored)
		}
	}, config.WithLoader(load))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("linedit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", os.Getenv(config.EnvPrefix+"CONFIG"), "Path to configuration file (.toml, .yaml, .json)")
	fs.StringVar(&opts.configPath, "c", os.Getenv(config.EnvPrefix+"CONFIG"), "Path to configuration file (shorthand)")
	fs.StringVar(&opts.overrides.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.overrides.LogFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&opts.overrides.Backend, "backend", "", "Terminal backend (auto, tty, stdio)")
	fs.BoolVar(&opts.watch, "watch", true, "Apply changes to the configuration file while editing")
	fs.BoolVar(&opts.dumpConfig, "dump-config", false, "Print the effective configuration as JSON and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&opts.showHelp, "help", false, "Show help message")
	fs.BoolVar(&opts.showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "linedit - a gap buffer line editor\n\n")
		fmt.Fprintf(stderr, "Usage: linedit [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  Ctrl-C                      Exit\n")
		fmt.Fprintf(stderr, "  Ctrl-L                      Print the whole document\n")
		fmt.Fprintf(stderr, "  Arrows, Home, End, Delete   Move and edit\n")
		fmt.Fprintf(stderr, "  Ctrl-Left, Ctrl-Right       Move by word\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  linedit                          Edit the usage banner\n")
		fmt.Fprintf(stderr, "  linedit -c ~/.config/linedit.toml\n")
		fmt.Fprintf(stderr, "  linedit -dump-config > linedit.json\n")
		fmt.Fprintf(stderr, "  printf 'hi\\003' | linedit        Scripted session\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.showHelp {
		fs.Usage()
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return opts, errors.New("unexpected arguments")
	}
	return opts, nil
}
