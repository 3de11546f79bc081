package brick

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEaseOutCubicEndpoints(t *testing.T) {
	assert.InDelta(t, 0, easeOutCubic(0), 1e-9)
	assert.InDelta(t, 1, easeOutCubic(1), 1e-9)

	// Out-of-range inputs clamp instead of overshooting.
	assert.InDelta(t, 0, easeOutCubic(-2), 1e-9)
	assert.InDelta(t, 1, easeOutCubic(3), 1e-9)
}

func TestEaseOutCubicMonotonic(t *testing.T) {
	prev := easeOutCubic(0)
	for i := 1; i <= 100; i++ {
		cur := easeOutCubic(float64(i) / 100)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestEaseOutCubicDecelerates(t *testing.T) {
	// An ease-out covers more ground in the first half than the second.
	assert.Greater(t, easeOutCubic(0.5), 0.5)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-1))
	assert.Equal(t, 0.25, clamp01(0.25))
	assert.Equal(t, 1.0, clamp01(2))
}

func TestTransitionAnimProgress(t *testing.T) {
	anim := &transitionAnim{start: 1000, duration: 200 * time.Millisecond}

	assert.InDelta(t, 0, anim.progress(1000), 1e-9)
	assert.InDelta(t, 0.5, anim.progress(1100), 1e-9)
	assert.InDelta(t, 1, anim.progress(1200), 1e-9)
	assert.InDelta(t, 1, anim.progress(5000), 1e-9)

	assert.False(t, anim.finished(1100))
	assert.True(t, anim.finished(1200))
}

func TestTransitionAnimZeroDuration(t *testing.T) {
	anim := &transitionAnim{start: 1000}
	assert.InDelta(t, 1, anim.progress(1000), 1e-9)
	assert.True(t, anim.finished(1000))
}
