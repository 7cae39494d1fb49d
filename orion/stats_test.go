package orion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimes(t *testing.T) {
	var times FrameTimes

	now := time.Unix(0, 0)

	var reports int
	for range 120 {
		if times.Tick(now) {
			reports++
		}

		now = now.Add(16 * time.Millisecond)
	}

	assert.Equal(t, uint64(120), times.FrameCount)
	assert.Equal(t, 2, reports)
	assert.Equal(t, 16*time.Millisecond, times.Delta)
	assert.Equal(t, 16*time.Millisecond, times.AverageDuration)
	assert.InDelta(t, 62.5, times.FPS(), 0.01)
}

func TestFrameTimesNoFrames(t *testing.T) {
	var times FrameTimes
	assert.Zero(t, times.FPS())
}
