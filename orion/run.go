package orion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/gpuenv/glimpse"
	"github.com/oliverbestmann/gpuenv/pulse"
)

type RunOptions struct {
	// source of windows and events. This is the only field that is required
	Source glimpse.EventSource

	// gpu driver, defaults to wgpu-native
	Driver pulse.Driver

	// backend candidates in priority order
	Backends []pulse.Backend

	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	Frame    Frame
	Observer Observer
	Logger   *slog.Logger
}

// Run builds an environment and dispatches its events until the window
// is closed, escape is pressed or the context is cancelled.
func Run(ctx context.Context, opts RunOptions) error {
	if opts.Source == nil {
		return errors.New("Source must not be nil")
	}

	if opts.Driver == nil {
		opts.Driver = pulse.WGPU{}
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	builder := pulse.Builder{
		Driver:   opts.Driver,
		Backends: opts.Backends,
		Logger:   opts.Logger,
		Window: glimpse.WindowOptions{
			Width:  opts.WindowWidth,
			Height: opts.WindowHeight,
			Title:  opts.WindowTitle,
		},
	}

	env, err := builder.Build(opts.Source)
	if err != nil {
		return fmt.Errorf("build environment: %w", err)
	}

	defer env.Release()

	driverOpts := []Option{WithLogger(opts.Logger)}

	if opts.Frame != nil {
		driverOpts = append(driverOpts, WithFrame(opts.Frame))
	}

	if opts.Observer != nil {
		driverOpts = append(driverOpts, WithObserver(opts.Observer))
	}

	driver := NewDriver(env, driverOpts...)

	return driver.Run(ctx, opts.Source.Events())
}
