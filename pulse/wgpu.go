package pulse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/gpuenv/glimpse"
)

// SetLogLevel sets the log level of wgpu-native by name.
func SetLogLevel(level string) error {
	switch strings.ToUpper(level) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	default:
		return fmt.Errorf("unknown wgpu log level %q", level)
	}

	return nil
}

// WGPU is the Driver backed by wgpu-native.
type WGPU struct{}

var _ Driver = WGPU{}

func (WGPU) CreateInstance(backend Backend) (Instance, error) {
	backends, err := instanceBackend(backend)
	if err != nil {
		return nil, err
	}

	instance := wgpu.CreateInstance(&wgpu.InstanceDescriptor{
		Backends: backends,
	})

	if instance == nil {
		return nil, errors.New("wgpu returned no instance")
	}

	return wgpuInstance{instance}, nil
}

func instanceBackend(backend Backend) (wgpu.InstanceBackend, error) {
	switch backend {
	case BackendVulkan:
		return wgpu.InstanceBackendVulkan, nil
	case BackendMetal:
		return wgpu.InstanceBackendMetal, nil
	case BackendDX12:
		return wgpu.InstanceBackendDX12, nil
	case BackendGL:
		return wgpu.InstanceBackendGL, nil
	default:
		return 0, fmt.Errorf("unsupported backend %q", backend)
	}
}

type wgpuInstance struct {
	*wgpu.Instance
}

func (i wgpuInstance) CreateSurface(window glimpse.Window) (Surface, error) {
	desc := window.SurfaceDescriptor()
	if desc == nil {
		return nil, errors.New("window provides no surface descriptor")
	}

	surface := i.Instance.CreateSurface(desc)
	if surface == nil {
		return nil, errors.New("wgpu returned no surface")
	}

	return wgpuSurface{surface}, nil
}

func (i wgpuInstance) RequestAdapter(opts AdapterOptions) (Adapter, error) {
	var compatible *wgpu.Surface
	if s, ok := opts.CompatibleSurface.(wgpuSurface); ok {
		compatible = s.Surface
	}

	adapter, err := i.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    compatible,
		PowerPreference:      opts.PowerPreference,
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
	})

	if err != nil {
		return nil, err
	}

	if adapter == nil {
		return nil, errors.New("wgpu returned no adapter")
	}

	return wgpuAdapter{adapter}, nil
}

type wgpuAdapter struct {
	*wgpu.Adapter
}

func (a wgpuAdapter) RequestDevice() (Device, error) {
	device, err := a.Adapter.RequestDevice(nil)
	if err != nil {
		return nil, err
	}

	return wgpuDevice{device}, nil
}

type wgpuDevice struct {
	*wgpu.Device
}

func (d wgpuDevice) Queue() Queue {
	return d.Device.GetQueue()
}

type wgpuSurface struct {
	*wgpu.Surface
}

func (s wgpuSurface) Capabilities(adapter Adapter) Capabilities {
	a, ok := adapter.(wgpuAdapter)
	if !ok {
		return Capabilities{}
	}

	caps := s.Surface.GetCapabilities(a.Adapter)

	return Capabilities{
		Formats:      caps.Formats,
		PresentModes: caps.PresentModes,
		AlphaModes:   caps.AlphaModes,
	}
}

func (s wgpuSurface) Configure(adapter Adapter, device Device, config SurfaceConfiguration) error {
	a, ok := adapter.(wgpuAdapter)
	if !ok {
		return fmt.Errorf("adapter of type %T is not a wgpu adapter", adapter)
	}

	d, ok := device.(wgpuDevice)
	if !ok {
		return fmt.Errorf("device of type %T is not a wgpu device", device)
	}

	s.Surface.Configure(a.Adapter, d.Device, &wgpu.SurfaceConfiguration{
		Usage:       config.Usage,
		Format:      config.Format,
		Width:       config.Width,
		Height:      config.Height,
		PresentMode: config.PresentMode,
		AlphaMode:   config.AlphaMode,
	})

	return nil
}
