// Command gesturereplay replays a JSON gesture script through a tracker and
// prints the engine commands it produces, one per line.
//
//	gesturereplay [-log-level debug] [-log-format json] script.json
//
// Tracker tunables are read from PANZOOM_* environment variables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phanxgames/panzoom"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gesturereplay:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gesturereplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	logLevel := fs.String("log-level", "", "Override log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", "", "Override log output format (text, json)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: gesturereplay [flags] script.json")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one script path, got %d", fs.NArg())
	}

	cfg, err := panzoom.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	opts := cfg.LogOptions()
	opts.Output = stderr
	if *logLevel != "" {
		opts.Level = *logLevel
	}
	if *logFormat != "" {
		opts.Format = *logFormat
	}
	logger, err := panzoom.NewLogger(opts)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := panzoom.LoadScript(data)
	if err != nil {
		return err
	}

	rec := &panzoom.Recorder{}
	tracker := panzoom.NewTracker(rec, panzoom.WithConfig(cfg), panzoom.WithLogger(logger))
	script.Replay(tracker)

	for _, c := range rec.Commands {
		fmt.Fprintln(stdout, c)
	}
	logger.Info("replay finished",
		slog.Int("steps", script.Len()),
		slog.Int("commands", len(rec.Commands)),
		slog.Int("warnings", tracker.Warnings()),
		slog.Int("contacts_left", tracker.ContactCount()))
	return nil
}
