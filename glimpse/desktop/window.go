//go:build !js

package desktop

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/gpuenv/glimpse"
	"github.com/pkg/profile"
)

type Options struct {
	// write a cpu profile for the lifetime of the source
	CPUProfile bool

	// directory the profile is written to, defaults to a temporary directory
	ProfilePath string
}

// Source is a glfw backed glimpse.EventSource.
// It must only be used from the main thread.
type Source struct {
	prof    interface{ Stop() }
	windows []*glfwWindow
	queue   []glimpse.Event
	nextID  glimpse.WindowID
}

var _ glimpse.EventSource = (*Source)(nil)

func NewSource(opts Options) (*Source, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	s := &Source{}

	if opts.CPUProfile {
		profOpts := []func(*profile.Profile){profile.CPUProfile, profile.NoShutdownHook}
		if opts.ProfilePath != "" {
			profOpts = append(profOpts, profile.ProfilePath(opts.ProfilePath))
		}

		s.prof = profile.Start(profOpts...)
	}

	return s, nil
}

func (s *Source) NewWindow(opts glimpse.WindowOptions) (glimpse.Window, error) {
	// wgpu renders to the window, glfw must not create a context
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	s.nextID++

	w := &glfwWindow{id: s.nextID, win: win}
	s.windows = append(s.windows, w)

	s.configureCallbacks(w)

	return w, nil
}

// Events polls glfw for new events. Every poll yields the events
// collected by the callbacks, followed by glimpse.KindEventsCleared.
func (s *Source) Events() iter.Seq[glimpse.Event] {
	return func(yield func(glimpse.Event) bool) {
		for {
			glfw.PollEvents()

			// callbacks only run during PollEvents, so the queue is stable here
			pending := s.queue
			s.queue = nil

			for _, ev := range pending {
				if !yield(ev) {
					return
				}
			}

			if !yield(glimpse.EventsCleared()) {
				return
			}
		}
	}
}

func (s *Source) Terminate() {
	for _, w := range s.windows {
		w.Destroy()
	}

	s.windows = nil

	if s.prof != nil {
		s.prof.Stop()
		s.prof = nil
	}

	glfw.Terminate()
}

func (s *Source) push(ev glimpse.Event) {
	s.queue = append(s.queue, ev)
}

func (s *Source) configureCallbacks(w *glfwWindow) {
	id := w.id

	w.win.SetCloseCallback(func(_win *glfw.Window) {
		s.push(glimpse.CloseRequested(id))
	})

	w.win.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		s.push(glimpse.Event{
			Kind:   glimpse.KindKey,
			Window: id,
			Key:    keyOf(glfwKey, scancode),
			Action: actionOf(action),
		})
	})

	w.win.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		s.push(glimpse.MouseButtonEvent(id, glimpse.MouseButton(btn), actionOf(action)))
	})

	w.win.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		s.push(glimpse.CursorMoved(id, xpos, ypos))
	})

	w.win.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		s.push(glimpse.Resized(id, uint32(max(width, 0)), uint32(max(height, 0))))
	})

	w.win.SetFocusCallback(func(_win *glfw.Window, focused bool) {
		s.push(glimpse.Focused(id, focused))
	})
}

type glfwWindow struct {
	id  glimpse.WindowID
	win *glfw.Window
}

func (g *glfwWindow) ID() glimpse.WindowID {
	return g.id
}

func (g *glfwWindow) Size() (uint32, uint32) {
	// the framebuffer size is measured in pixels, the window size is not
	width, height := g.win.GetFramebufferSize()
	return uint32(max(width, 0)), uint32(max(height, 0))
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Destroy() {
	if g.win == nil {
		return
	}

	g.win.Destroy()
	g.win = nil
}

func actionOf(action glfw.Action) glimpse.Action {
	switch action {
	case glfw.Press:
		return glimpse.Press
	case glfw.Repeat:
		return glimpse.Repeat
	default:
		return glimpse.Release
	}
}

func keyOf(glfwKey glfw.Key, scancode int) glimpse.Key {
	key, ok := glfwToKey[glfwKey]
	if !ok {
		slog.Debug(
			"Unknown key code",
			slog.String("key", glfw.GetKeyName(glfwKey, scancode)),
			slog.Int("scancode", scancode),
		)
	}

	return key
}
