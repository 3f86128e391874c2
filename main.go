package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/echoflaresat/sensorgeom/body"
	"github.com/echoflaresat/sensorgeom/config"
	"github.com/echoflaresat/sensorgeom/geometry"
	"github.com/echoflaresat/sensorgeom/logger"
)

func printHelp(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), `sensorgeom - Viewing and Illumination Geometry

Usage:
  %[1]s -in observations.yaml [options]

`, fs.Name())

		printGroup(fs, "Input/Output", []string{"config", "in", "out"})
		printGroup(fs, "Geometry", []string{"body", "workers"})
		printGroup(fs, "Logging", []string{"log-level", "log-file"})
		printGroup(fs, "Misc", []string{"h"})
	}
}

func printGroup(fs *flag.FlagSet, title string, keys []string) {
	fmt.Fprintf(fs.Output(), "%s:\n", title)
	for _, name := range keys {
		if f := fs.Lookup(name); f != nil {
			fmt.Fprintf(fs.Output(), "  -%-10s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(fs.Output())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[0], os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}

// run is main without the process exit, so it can be driven from tests.
// Errors are logged before being returned.
func run(ctx context.Context, name string, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := config.DefineFlags(fs)
	fs.Usage = printHelp(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *flags.Help {
		fs.Usage()
		return nil
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintln(fs.Output(), err)
		return err
	}

	log := logger.NewConsole(cfg.Logging.Level, cfg.Logging.LogFile)
	defer func() { _ = log.Sync() }()

	if err := evaluate(ctx, cfg, log, stdout); err != nil {
		log.Error("sensorgeom failed", zap.Error(err))
		return err
	}
	return nil
}

func evaluate(ctx context.Context, cfg *config.Config, log *zap.Logger, stdout io.Writer) error {
	target, err := resolveBody(cfg.Body)
	if err != nil {
		return err
	}

	obs, err := geometry.LoadObservations(cfg.Input)
	if err != nil {
		return err
	}
	log.Info("loaded observations", zap.String("path", cfg.Input), zap.Int("count", len(obs)))

	e := &geometry.Evaluator{Body: target, Workers: cfg.Workers, Log: log}
	results, err := e.EvaluateAll(ctx, obs)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return geometry.WriteReport(stdout, results)
	}
	return writeReportFile(cfg.Output, results)
}

// resolveBody prefers explicit radii over the named built-in body.
func resolveBody(bc config.BodyConfig) (body.Body, error) {
	r := bc.Radii
	if r != ([3]float64{}) {
		name := bc.Name
		if name == "" {
			name = "custom"
		}
		return body.New(name, r[0], r[1], r[2])
	}
	return body.Lookup(bc.Name)
}

func writeReportFile(path string, results []geometry.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := geometry.WriteReport(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
