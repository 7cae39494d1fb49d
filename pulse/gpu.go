package pulse

import (
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/gpuenv/glimpse"
)

// Backend is a native graphics api that webgpu can run on.
type Backend string

const (
	BackendVulkan Backend = "vulkan"
	BackendMetal  Backend = "metal"
	BackendDX12   Backend = "dx12"
	BackendGL     Backend = "gl"
)

var knownBackends = []Backend{BackendVulkan, BackendMetal, BackendDX12, BackendGL}

func ParseBackend(name string) (Backend, error) {
	backend := Backend(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range knownBackends {
		if backend == known {
			return backend, nil
		}
	}

	return "", fmt.Errorf("unknown backend %q", name)
}

func ParseBackends(names []string) ([]Backend, error) {
	var backends []Backend
	for _, name := range names {
		backend, err := ParseBackend(name)
		if err != nil {
			return nil, err
		}

		backends = append(backends, backend)
	}

	return backends, nil
}

type AdapterOptions struct {
	CompatibleSurface    Surface
	PowerPreference      wgpu.PowerPreference
	ForceFallbackAdapter bool
}

// Capabilities describes what a surface supports when used with an adapter.
type Capabilities struct {
	Formats      []wgpu.TextureFormat
	PresentModes []wgpu.PresentMode
	AlphaModes   []wgpu.CompositeAlphaMode
}

// Driver creates instances of the gpu api for a specific backend.
type Driver interface {
	CreateInstance(backend Backend) (Instance, error)
}

type Instance interface {
	// CreateSurface binds a new, unconfigured surface to the window.
	CreateSurface(window glimpse.Window) (Surface, error)

	RequestAdapter(opts AdapterOptions) (Adapter, error)

	Release()
}

type Adapter interface {
	// RequestDevice requests a device with default features and limits.
	RequestDevice() (Device, error)

	Release()
}

type Device interface {
	Queue() Queue
	Release()
}

type Queue interface {
	Release()
}

type Surface interface {
	Capabilities(adapter Adapter) Capabilities
	Configure(adapter Adapter, device Device, config SurfaceConfiguration) error
	Release()
}
