package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/oliverbestmann/gpuenv/config"
	"github.com/oliverbestmann/gpuenv/glimpse/desktop"
	"github.com/oliverbestmann/gpuenv/orion"
	"github.com/oliverbestmann/gpuenv/pulse"
)

func init() {
	// glfw and the event loop must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		slog.Error("Exit with error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, _ := cfg.LogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := pulse.SetLogLevel(cfg.GPU.LogLevel); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	source, err := desktop.NewSource(desktop.Options{
		CPUProfile:  cfg.Profile.CPU,
		ProfilePath: cfg.Profile.Path,
	})
	if err != nil {
		return err
	}

	defer source.Terminate()

	err = orion.Run(ctx, orion.RunOptions{
		Source:       source,
		Backends:     cfg.Backends(),
		WindowWidth:  cfg.Window.Width,
		WindowHeight: cfg.Window.Height,
		WindowTitle:  cfg.Window.Title,
		Logger:       logger,
	})

	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
