package pulse

import (
	"fmt"

	"github.com/oliverbestmann/gpuenv/glimpse"
)

// Environment bundles a window with the surface bound to it and the
// device and queue the surface was configured for.
type Environment struct {
	window  glimpse.Window
	backend Backend

	surface Surface
	adapter Adapter
	device  Device
	queue   Queue

	config SurfaceConfiguration
}

func (env *Environment) Window() glimpse.Window {
	return env.window
}

// Backend returns the backend that produced the adapter.
func (env *Environment) Backend() Backend {
	return env.backend
}

func (env *Environment) Surface() Surface {
	return env.surface
}

func (env *Environment) Adapter() Adapter {
	return env.adapter
}

func (env *Environment) Device() Device {
	return env.device
}

func (env *Environment) Queue() Queue {
	return env.queue
}

// Config returns the configuration the surface is currently configured with.
func (env *Environment) Config() SurfaceConfiguration {
	return env.config
}

// Resize reconfigures the surface for a new physical size. A zero width or
// height, e.g. of a minimized window, can not be configured and is skipped.
// Resize reports whether the surface was reconfigured.
func (env *Environment) Resize(width, height uint32) (bool, error) {
	if width == 0 || height == 0 {
		return false, nil
	}

	if env.config.Width == width && env.config.Height == height {
		return false, nil
	}

	config := env.config.WithSize(width, height)
	if err := env.surface.Configure(env.adapter, env.device, config); err != nil {
		return false, fmt.Errorf("configure surface to %dx%d: %w", width, height, err)
	}

	env.config = config

	return true, nil
}

// Release frees the gpu resources in reverse order of their creation.
// The window is owned by the event source and is not destroyed.
func (env *Environment) Release() {
	if env.queue != nil {
		env.queue.Release()
		env.queue = nil
	}

	if env.device != nil {
		env.device.Release()
		env.device = nil
	}

	if env.adapter != nil {
		env.adapter.Release()
		env.adapter = nil
	}

	if env.surface != nil {
		env.surface.Release()
		env.surface = nil
	}
}
