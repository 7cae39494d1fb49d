package orion

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/oliverbestmann/gpuenv/glimpse"
)

// Environment is what the driver needs from a pulse.Environment.
type Environment interface {
	Window() glimpse.Window
	Resize(width, height uint32) (bool, error)
}

// Control is the decision of the driver after an event.
type Control uint8

const (
	Continue Control = iota
	Exit
)

func (c Control) String() string {
	if c == Exit {
		return "Exit"
	}

	return "Continue"
}

type Option func(d *Driver)

// WithFrame sets the hook that runs after each cycle of events.
func WithFrame(frame Frame) Option {
	return func(d *Driver) {
		d.frame = frame
	}
}

// WithObserver sets the sink for events the driver does not act upon.
func WithObserver(observer Observer) Option {
	return func(d *Driver) {
		d.observer = observer
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

func withClock(now func() time.Time) Option {
	return func(d *Driver) {
		d.now = now
	}
}

// Driver dispatches the events of a single window. It starts in state
// Continue and switches to Exit, never to return, once the window is asked
// to close or escape is pressed.
type Driver struct {
	env    Environment
	window glimpse.WindowID

	frame    Frame
	observer Observer
	logger   *slog.Logger
	now      func() time.Time

	input   glimpse.InputState
	times   FrameTimes
	control Control
}

func NewDriver(env Environment, opts ...Option) *Driver {
	d := &Driver{
		env:    env,
		window: env.Window().ID(),
		frame:  noFrame{},
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.observer == nil {
		d.observer = NewLogObserver(d.logger)
	}

	return d
}

func (d *Driver) Control() Control {
	return d.control
}

// Run dispatches events until the driver decides to exit, the context
// is cancelled or the sequence ends.
func (d *Driver) Run(ctx context.Context, events iter.Seq[glimpse.Event]) error {
	for ev := range events {
		if d.Dispatch(ev) == Exit {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	return nil
}

// Dispatch handles exactly one event and returns the resulting decision.
func (d *Driver) Dispatch(ev glimpse.Event) Control {
	if d.control == Exit {
		return Exit
	}

	if ev.Kind == glimpse.KindEventsCleared {
		d.endCycle()
		return d.control
	}

	if ev.Window != d.window {
		return d.control
	}

	if ev.Kind == glimpse.KindCloseRequested || isEscapePressed(ev) {
		d.logger.Info("Exit requested", slog.String("event", ev.String()))
		d.control = Exit
		return Exit
	}

	if ev.Kind == glimpse.KindResized {
		d.resize(ev.Width, ev.Height)
	}

	d.input.Apply(ev)
	d.observer.Observe(ev)

	return d.control
}

func (d *Driver) endCycle() {
	d.times.Tick(d.now())

	d.frame.Frame(d.env, FrameInfo{
		Times: d.times,
		Input: &d.input,
	})

	d.input.NextTick()
}

func (d *Driver) resize(width, height uint32) {
	resized, err := d.env.Resize(width, height)
	if err != nil {
		d.logger.Error("Resize surface failed",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
			slog.String("err", err.Error()),
		)

		return
	}

	if resized {
		d.logger.Debug("Resize surface",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
		)
	}
}

func isEscapePressed(ev glimpse.Event) bool {
	return ev.Kind == glimpse.KindKey &&
		ev.Action == glimpse.Press &&
		ev.Key == glimpse.KeyEscape
}
