package glimpse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{CloseRequested(3), "CloseRequested(window=3)"},
		{KeyPressed(1, KeyEscape), "Key(window=1, key=Escape, action=Press)"},
		{KeyReleased(1, Key7), "Key(window=1, key=7, action=Release)"},
		{Resized(2, 1600, 900), "Resized(window=2, 1600x900)"},
		{Focused(2, true), "Focused(window=2, focused=true)"},
		{CursorMoved(1, 1.5, 2), "CursorMoved(window=1, x=1.5, y=2.0)"},
		{EventsCleared(), "EventsCleared"},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			assert.Equal(t, test.want, test.event.String())
		})
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Unknown", KeyUnknown.String())
	assert.Equal(t, "A", KeyA.String())
	assert.Equal(t, "F12", KeyF12.String())
	assert.Equal(t, "Key(999)", Key(999).String())
}
