package glimpse

import "fmt"

//go:generate go tool stringer -type=EventKind,Action -trimprefix=Kind -output=event_string.go

// WindowID identifies a window of an EventSource. The zero value
// never identifies a window.
type WindowID uint64

type EventKind uint8

const (
	KindUnknown EventKind = iota

	// the window was asked to close, e.g. by the window manager
	KindCloseRequested

	// a keyboard key changed its state
	KindKey

	// a mouse button changed its state
	KindMouseButton

	// the cursor moved inside the window
	KindCursorMoved

	// the framebuffer of the window changed its size
	KindResized

	// the window gained or lost input focus
	KindFocused

	// all events of the current cycle have been delivered.
	// This event does not target a window.
	KindEventsCleared
)

type Action uint8

const (
	Release Action = iota
	Press
	Repeat
)

// Event describes one event delivered by an EventSource. Only the
// fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Window WindowID

	// KindKey and KindMouseButton
	Action Action
	Key    Key
	Button MouseButton

	// KindResized, in physical pixels
	Width, Height uint32

	// KindCursorMoved
	X, Y float64

	// KindFocused
	Focused bool
}

func (ev Event) String() string {
	switch ev.Kind {
	case KindKey:
		return fmt.Sprintf("%s(window=%d, key=%s, action=%s)", ev.Kind, ev.Window, ev.Key, ev.Action)
	case KindMouseButton:
		return fmt.Sprintf("%s(window=%d, button=%d, action=%s)", ev.Kind, ev.Window, ev.Button, ev.Action)
	case KindCursorMoved:
		return fmt.Sprintf("%s(window=%d, x=%.1f, y=%.1f)", ev.Kind, ev.Window, ev.X, ev.Y)
	case KindResized:
		return fmt.Sprintf("%s(window=%d, %dx%d)", ev.Kind, ev.Window, ev.Width, ev.Height)
	case KindFocused:
		return fmt.Sprintf("%s(window=%d, focused=%t)", ev.Kind, ev.Window, ev.Focused)
	case KindEventsCleared:
		return ev.Kind.String()
	default:
		return fmt.Sprintf("%s(window=%d)", ev.Kind, ev.Window)
	}
}

func CloseRequested(window WindowID) Event {
	return Event{Kind: KindCloseRequested, Window: window}
}

func KeyPressed(window WindowID, key Key) Event {
	return Event{Kind: KindKey, Window: window, Key: key, Action: Press}
}

func KeyReleased(window WindowID, key Key) Event {
	return Event{Kind: KindKey, Window: window, Key: key, Action: Release}
}

func MouseButtonEvent(window WindowID, button MouseButton, action Action) Event {
	return Event{Kind: KindMouseButton, Window: window, Button: button, Action: action}
}

func CursorMoved(window WindowID, x, y float64) Event {
	return Event{Kind: KindCursorMoved, Window: window, X: x, Y: y}
}

func Resized(window WindowID, width, height uint32) Event {
	return Event{Kind: KindResized, Window: window, Width: width, Height: height}
}

func Focused(window WindowID, focused bool) Event {
	return Event{Kind: KindFocused, Window: window, Focused: focused}
}

func EventsCleared() Event {
	return Event{Kind: KindEventsCleared}
}
