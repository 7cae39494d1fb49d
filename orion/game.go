package orion

import (
	"github.com/oliverbestmann/gpuenv/glimpse"
)

// FrameInfo is passed to the Frame hook once all events
// of a cycle have been delivered.
type FrameInfo struct {
	Times FrameTimes
	Input *glimpse.InputState
}

// Frame is invoked after each cycle of events. This is where
// updates and render submissions go.
type Frame interface {
	Frame(env Environment, info FrameInfo)
}

type FrameFunc func(env Environment, info FrameInfo)

func (fn FrameFunc) Frame(env Environment, info FrameInfo) {
	fn(env, info)
}

type noFrame struct{}

func (noFrame) Frame(Environment, FrameInfo) {}
