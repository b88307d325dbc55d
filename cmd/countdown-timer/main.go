// Command countdown-timer is a reference self-timer driven by the
// countdown state machine.
//
// It runs an interactive session where a countdown can be started,
// stopped, reset, and observed, with diagnostics going to the console
// and optionally to a binary .clog file.
//
// Usage:
//
//	countdown-timer [flags]
//
// Flags:
//
//	-config string     Configuration file path (YAML)
//	-from duration     Countdown length (default 3s)
//	-interval duration Tick interval (default 100ms)
//	-log-file string   Diagnostic log file (.clog)
//	-log-level string  Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Three second self-timer with defaults
//	countdown-timer
//
//	# Ten seconds, coarse ticks, full diagnostics on console and file
//	countdown-timer -from 10s -interval 250ms -log-level debug -log-file run.clog
//
//	# Settings from a config file
//	countdown-timer -config /etc/selftimer/timer.yaml
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/selftimer/countdown-go/pkg/countdown"
	"github.com/selftimer/countdown-go/pkg/log"
)

func main() {
	var (
		configPath = flag.String("config", "", "Configuration file path (YAML)")
		from       = flag.Duration("from", 0, "Countdown length (overrides config)")
		interval   = flag.Duration("interval", 0, "Tick interval (overrides config)")
		logFile    = flag.String("log-file", "", "Diagnostic log file (overrides config)")
		logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config %s: %v\n", *configPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags win over the config file
	if *from > 0 {
		cfg.CountdownFrom = Duration(*from)
	}
	if *interval > 0 {
		cfg.Interval = Duration(*interval)
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	slogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var logger log.Logger = log.NewSlogAdapter(slogger)
	if cfg.LogFile != "" {
		fileLogger, err := log.NewFileLogger(cfg.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", cfg.LogFile, err)
			os.Exit(1)
		}
		defer fileLogger.Close()
		logger = log.NewMultiLogger(logger, fileLogger)
	}

	cd := countdown.New(countdown.Config{
		CountdownFrom: time.Duration(cfg.CountdownFrom),
		Interval:      time.Duration(cfg.Interval),
		Logger:        logger,
	})

	session, err := newSession(cd, time.Duration(cfg.CountdownFrom))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}

	session.Run()
}

// parseLogLevel maps a config level name to an slog level.
func parseLogLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}
