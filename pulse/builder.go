package pulse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/gpuenv/glimpse"
)

const (
	DefaultWindowWidth  = 1600
	DefaultWindowHeight = 900
	DefaultWindowTitle  = "gpuenv"
)

// DefaultBackends is used if a Builder has no backends configured.
var DefaultBackends = []Backend{BackendVulkan}

// Builder negotiates an Environment: it opens a window, binds a surface to it,
// picks an adapter that can present to the surface, requests a device and
// finally configures the surface.
type Builder struct {
	Driver Driver

	// backend candidates in priority order. The first backend
	// that yields a compatible adapter is used.
	Backends []Backend

	Window glimpse.WindowOptions

	Logger *slog.Logger
}

type candidate struct {
	backend  Backend
	instance Instance
	surface  Surface
	adapter  Adapter
}

func (c *candidate) release() {
	if c.adapter != nil {
		c.adapter.Release()
	}

	if c.surface != nil {
		c.surface.Release()
	}

	if c.instance != nil {
		c.instance.Release()
	}
}

// Build creates a new Environment. There is no partially initialized
// environment: if any step fails, everything acquired so far is
// released again and an error is returned.
func (b *Builder) Build(source glimpse.EventSource) (env *Environment, err error) {
	logger := b.logger()

	opts := b.windowOptions()

	logger.Debug("Create window",
		slog.Int("width", opts.Width),
		slog.Int("height", opts.Height),
		slog.String("title", opts.Title),
	)

	window, err := source.NewWindow(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindowCreationFailed, err)
	}

	env = &Environment{window: window}

	defer func() {
		if err != nil {
			env.Release()
			window.Destroy()
			env = nil
		}
	}()

	c, err := b.selectAdapter(window)
	if err != nil {
		return env, err
	}

	// surface and adapter keep their own reference to the instance
	defer c.instance.Release()

	env.backend = c.backend
	env.surface = c.surface
	env.adapter = c.adapter

	logger.Debug("Request device", slog.String("backend", string(c.backend)))

	env.device, err = c.adapter.RequestDevice()
	if err != nil {
		return env, fmt.Errorf("%w: %w", ErrDeviceRequestFailed, err)
	}

	env.queue = env.device.Queue()

	// the window size can differ from the requested one, e.g. due to dpi
	// scaling, so we need to ask the window again
	width, height := window.Size()

	caps := c.surface.Capabilities(c.adapter)
	logger.Info("Available surface formats", slog.Any("formats", caps.Formats))

	env.config, err = NewSurfaceConfiguration(caps, width, height)
	if err != nil {
		return env, err
	}

	if err = c.surface.Configure(c.adapter, env.device, env.config); err != nil {
		return env, fmt.Errorf("%w: configure surface: %w", ErrSurfaceCreationFailed, err)
	}

	logger.Info("Surface configured",
		slog.String("backend", string(c.backend)),
		slog.Any("format", env.config.Format),
		slog.Any("presentMode", env.config.PresentMode),
		slog.Any("alphaMode", env.config.AlphaMode),
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	return env, nil
}

// selectAdapter tries each backend in order until one yields an adapter that
// is compatible with a surface bound to the window.
func (b *Builder) selectAdapter(window glimpse.Window) (*candidate, error) {
	backends := b.Backends
	if len(backends) == 0 {
		backends = DefaultBackends
	}

	var failures []error

	for _, backend := range backends {
		c, err := b.tryBackend(backend, window)
		if err == nil {
			return c, nil
		}

		b.logger().Warn("Backend not usable",
			slog.String("backend", string(backend)),
			slog.String("err", err.Error()),
		)

		failures = append(failures, fmt.Errorf("backend %s: %w", backend, err))
	}

	return nil, fmt.Errorf("%w: %w", ErrNoCompatibleAdapter, errors.Join(failures...))
}

func (b *Builder) tryBackend(backend Backend, window glimpse.Window) (c *candidate, err error) {
	c = &candidate{backend: backend}

	defer func() {
		if err != nil {
			c.release()
			c = nil
		}
	}()

	logger := b.logger().With(slog.String("backend", string(backend)))

	logger.Debug("Create instance")

	c.instance, err = b.Driver.CreateInstance(backend)
	if err != nil {
		return c, fmt.Errorf("create instance: %w", err)
	}

	logger.Debug("Create surface")

	c.surface, err = c.instance.CreateSurface(window)
	if err != nil {
		return c, fmt.Errorf("%w: %w", ErrSurfaceCreationFailed, err)
	}

	logger.Debug("Request adapter")

	c.adapter, err = c.instance.RequestAdapter(AdapterOptions{
		CompatibleSurface:    c.surface,
		PowerPreference:      wgpu.PowerPreferenceHighPerformance,
		ForceFallbackAdapter: false,
	})

	if err != nil {
		return c, fmt.Errorf("%w: %w", ErrNoCompatibleAdapter, err)
	}

	return c, nil
}

func (b *Builder) windowOptions() glimpse.WindowOptions {
	opts := b.Window

	if opts.Width == 0 {
		opts.Width = DefaultWindowWidth
	}

	if opts.Height == 0 {
		opts.Height = DefaultWindowHeight
	}

	if opts.Title == "" {
		opts.Title = DefaultWindowTitle
	}

	return opts
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}

	return slog.Default()
}
