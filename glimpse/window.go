package glimpse

import (
	"iter"

	"github.com/cogentcore/webgpu/wgpu"
)

type WindowOptions struct {
	// initial size of the window
	Width  int
	Height int

	Title string
}

// Window is a native window that a GPU surface can be bound to.
type Window interface {
	ID() WindowID

	// Size returns the current size of the window in physical pixels.
	// This can differ from the requested size, e.g. due to dpi scaling.
	Size() (width, height uint32)

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	Destroy()
}

// EventSource creates windows and delivers their events.
type EventSource interface {
	NewWindow(opts WindowOptions) (Window, error)

	// Events returns the lazy, unbounded sequence of events of all
	// windows of this source. Each cycle of events is terminated
	// by an event of kind KindEventsCleared.
	Events() iter.Seq[Event]

	Terminate()
}
