package rdm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestClockNowAdvancesOnTick(t *testing.T) {
	var c CoarseClock
	assert.Equal(t, uint32(0), c.Now())
	c.Tick()
	c.Tick()
	assert.Equal(t, uint32(2), c.Now())
}

func TestHasElapsedZeroDurationNeverElapses(t *testing.T) {
	var c CoarseClock
	start := c.Now()
	for i := 0; i < 1000; i++ {
		c.Tick()
	}
	assert.False(t, c.HasElapsed(start, 0))
}

func TestHasElapsedStrictInequality(t *testing.T) {
	var c CoarseClock
	start := c.Now()
	c.SetCounter(start + 10)
	assert.False(t, c.HasElapsed(start, 10))
	c.SetCounter(start + 11)
	assert.True(t, c.HasElapsed(start, 10))
}

// TestHasElapsedSurvivesWraparound checks that elapsed-time arithmetic
// does not misbehave across a uint32 wrap of the tick counter.
func TestHasElapsedSurvivesWraparound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := rapid.Uint32Range(math.MaxUint32-1000, math.MaxUint32).Draw(t, "start")
		duration := rapid.Uint32Range(1, 500).Draw(t, "duration")

		var c CoarseClock
		c.SetCounter(start)

		c.SetCounter(start + duration)
		assert.False(t, c.HasElapsed(start, duration))

		c.SetCounter(start + duration + 1)
		assert.True(t, c.HasElapsed(start, duration))
	})
}
