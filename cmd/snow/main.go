package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"mad-snow/internal/app"
	"mad-snow/internal/core"
	"mad-snow/internal/snow"
	"mad-snow/internal/telemetry"
	"mad-snow/internal/term"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(opts); err != nil {
		slog.Error("snow", "err", err)
		os.Exit(1)
	}
}

func run(opts *app.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	logger, closeLog, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	cfg, err := snow.LoadConfig(opts.Config)
	if err != nil {
		return err
	}
	factory, ok := core.Sims()[opts.Sim]
	if !ok {
		return fmt.Errorf("unknown sim %q", opts.Sim)
	}
	sim := factory(cfg.Values())
	sim.Reset(opts.Seed)
	size := sim.Size()
	logger.Info("starting", "sim", sim.Name(), "host", opts.Host, "w", size.W, "h", size.H, "seed", cfg.Seed)

	onFrame, finish, err := newTelemetry(sim, opts, logger)
	if err != nil {
		return err
	}
	defer finish()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch opts.Host {
	case app.HostWindow:
		err = app.RunWindow(sim, opts, onFrame)
	case app.HostTerminal:
		err = term.Run(ctx, sim, term.Options{TPS: opts.TPS, Frames: opts.Frames, Seed: opts.Seed, OnFrame: onFrame})
	case app.HostHeadless:
		err = app.RunHeadless(ctx, sim, opts.Frames, onFrame)
	}
	if err != nil {
		return fmt.Errorf("%s host: %w", opts.Host, err)
	}
	logger.Info("stopped")
	return nil
}

// newLogger builds the text logger. The terminal host owns stderr once the
// screen is up, so without a log file its logs are discarded.
func newLogger(opts *app.Options) (*slog.Logger, func(), error) {
	level, err := opts.Level()
	if err != nil {
		return nil, nil, err
	}
	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case opts.LogFile != "":
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case opts.Host == app.HostTerminal:
		out = io.Discard
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), closeFn, nil
}

// newTelemetry wires the CSV writer and window summaries for snow sims.
// Other sims run without telemetry.
func newTelemetry(sim core.Sim, opts *app.Options, logger *slog.Logger) (func() error, func(), error) {
	s, ok := sim.(*snow.Simulation)
	if !ok {
		return nil, func() {}, nil
	}
	out, err := telemetry.Create(opts.Telemetry)
	if err != nil {
		return nil, nil, err
	}
	rec := telemetry.NewRecorder(s, out, logger, opts.TelemetryEvery)
	finish := func() {
		rec.Flush()
		if err := out.Close(); err != nil {
			logger.Warn("closing telemetry", "err", err)
		}
	}
	return rec.Observe, finish, nil
}
