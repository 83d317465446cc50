package app

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
)

// Host names accepted by the -host flag.
const (
	HostWindow   = "window"
	HostTerminal = "term"
	HostHeadless = "headless"
)

// Options represents the command-line parameters for the application.
type Options struct {
	Sim    string
	Config string
	Host   string
	Scale  int
	TPS    int
	Seed   int64
	Frames int

	Telemetry      string
	TelemetryEvery int

	LogLevel string
	LogFile  string
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{
		Sim:            "snow",
		Host:           HostWindow,
		Scale:          1,
		TPS:            60,
		TelemetryEvery: 600,
		LogLevel:       "info",
	}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.Sim, "sim", o.Sim, "simulation to run")
	fs.StringVar(&o.Config, "config", o.Config, "YAML file overriding the embedded defaults")
	fs.StringVar(&o.Host, "host", o.Host, "display host: window, term or headless")
	fs.IntVar(&o.Scale, "scale", o.Scale, "pixel scale multiplier (window host)")
	fs.IntVar(&o.TPS, "tps", o.TPS, "ticks per second")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for simulation reset (0 keeps the configured seed)")
	fs.IntVar(&o.Frames, "frames", o.Frames, "stop after this many frames (0 runs until quit)")
	fs.StringVar(&o.Telemetry, "telemetry", o.Telemetry, "write per-frame statistics to this CSV file")
	fs.IntVar(&o.TelemetryEvery, "telemetry-every", o.TelemetryEvery, "frames per logged summary window")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&o.LogFile, "log-file", o.LogFile, "append logs to this file instead of stderr")
}

// Validate checks option combinations before the host starts.
func (o *Options) Validate() error {
	switch o.Host {
	case HostWindow, HostTerminal, HostHeadless:
	default:
		return fmt.Errorf("unknown host %q", o.Host)
	}
	if o.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive", o.Scale)
	}
	if o.Frames < 0 {
		return fmt.Errorf("frames %d must not be negative", o.Frames)
	}
	if _, err := o.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (o *Options) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(o.LogLevel))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", o.LogLevel, err)
	}
	return lvl, nil
}
