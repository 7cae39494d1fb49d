package pulse

import (
	"errors"
	"iter"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/gpuenv/glimpse"
)

// callLog records the calls made to the fakes in order.
type callLog struct {
	calls []string
}

func (l *callLog) add(call string) {
	l.calls = append(l.calls, call)
}

type fakeWindow struct {
	id            glimpse.WindowID
	width, height uint32
	destroyed     bool
}

func (w *fakeWindow) ID() glimpse.WindowID { return w.id }
func (w *fakeWindow) Size() (uint32, uint32) { return w.width, w.height }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *fakeWindow) Destroy() { w.destroyed = true }

type fakeSource struct {
	err error

	// the size the window reports after creation
	actualWidth, actualHeight uint32

	requested glimpse.WindowOptions
	window    *fakeWindow
}

func (s *fakeSource) NewWindow(opts glimpse.WindowOptions) (glimpse.Window, error) {
	s.requested = opts

	if s.err != nil {
		return nil, s.err
	}

	width, height := uint32(opts.Width), uint32(opts.Height)
	if s.actualWidth != 0 {
		width, height = s.actualWidth, s.actualHeight
	}

	s.window = &fakeWindow{id: 1, width: width, height: height}
	return s.window, nil
}

func (s *fakeSource) Events() iter.Seq[glimpse.Event] {
	return func(yield func(glimpse.Event) bool) {}
}

func (s *fakeSource) Terminate() {}

// fakeBackend describes how a backend behaves with the fake driver.
type fakeBackend struct {
	instanceErr error
	surfaceErr  error
	noAdapter   bool
	deviceErr   error

	caps         Capabilities
	configureErr error
}

type fakeDriver struct {
	log      *callLog
	backends map[Backend]fakeBackend

	surfaces   []*fakeSurface
	configured []SurfaceConfiguration
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{log: &callLog{}, backends: map[Backend]fakeBackend{}}
}

func (d *fakeDriver) CreateInstance(backend Backend) (Instance, error) {
	d.log.add("instance " + string(backend))

	b, ok := d.backends[backend]
	if !ok {
		return nil, errors.New("backend not available")
	}

	if b.instanceErr != nil {
		return nil, b.instanceErr
	}

	return &fakeInstance{driver: d, backend: backend, behavior: b}, nil
}

type fakeInstance struct {
	driver   *fakeDriver
	backend  Backend
	behavior fakeBackend
}

func (i *fakeInstance) CreateSurface(window glimpse.Window) (Surface, error) {
	i.driver.log.add("surface " + string(i.backend))

	if i.behavior.surfaceErr != nil {
		return nil, i.behavior.surfaceErr
	}

	s := &fakeSurface{instance: i}
	i.driver.surfaces = append(i.driver.surfaces, s)
	return s, nil
}

func (i *fakeInstance) RequestAdapter(opts AdapterOptions) (Adapter, error) {
	i.driver.log.add("adapter " + string(i.backend))

	if opts.CompatibleSurface == nil {
		return nil, errors.New("no compatible surface given")
	}

	if opts.PowerPreference != wgpu.PowerPreferenceHighPerformance || opts.ForceFallbackAdapter {
		return nil, errors.New("unexpected adapter options")
	}

	if i.behavior.noAdapter {
		return nil, errors.New("no adapter found")
	}

	return &fakeAdapter{instance: i}, nil
}

func (i *fakeInstance) Release() {
	i.driver.log.add("release instance " + string(i.backend))
}

type fakeAdapter struct {
	instance *fakeInstance
}

func (a *fakeAdapter) RequestDevice() (Device, error) {
	a.instance.driver.log.add("device " + string(a.instance.backend))

	if a.instance.behavior.deviceErr != nil {
		return nil, a.instance.behavior.deviceErr
	}

	return &fakeDevice{instance: a.instance}, nil
}

func (a *fakeAdapter) Release() {
	a.instance.driver.log.add("release adapter " + string(a.instance.backend))
}

type fakeDevice struct {
	instance *fakeInstance
}

func (d *fakeDevice) Queue() Queue {
	return &fakeQueue{instance: d.instance}
}

func (d *fakeDevice) Release() {
	d.instance.driver.log.add("release device " + string(d.instance.backend))
}

type fakeQueue struct {
	instance *fakeInstance
}

func (q *fakeQueue) Release() {
	q.instance.driver.log.add("release queue " + string(q.instance.backend))
}

type fakeSurface struct {
	instance *fakeInstance
	config   *SurfaceConfiguration
}

func (s *fakeSurface) Capabilities(adapter Adapter) Capabilities {
	s.instance.driver.log.add("capabilities " + string(s.instance.backend))
	return s.instance.behavior.caps
}

func (s *fakeSurface) Configure(adapter Adapter, device Device, config SurfaceConfiguration) error {
	s.instance.driver.log.add("configure " + string(s.instance.backend))

	if s.instance.behavior.configureErr != nil {
		return s.instance.behavior.configureErr
	}

	s.config = &config
	s.instance.driver.configured = append(s.instance.driver.configured, config)
	return nil
}

func (s *fakeSurface) Release() {
	s.instance.driver.log.add("release surface " + string(s.instance.backend))
}

var defaultCaps = Capabilities{
	Formats:      []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb},
	PresentModes: []wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeMailbox},
	AlphaModes:   []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque},
}
