// Package main is the entry point for the gridselect demo.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabrielmiguelok/gridselect/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, showVersion := parseFlags()
	if showVersion {
		fmt.Printf("gridselect %s (%s)\n", version, commit)
		return 0
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Stop()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "path to a JSON config file")
	flag.StringVar(&opts.DataPath, "data", "", "path to a JSON dataset (array of records)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	return opts, showVersion
}
