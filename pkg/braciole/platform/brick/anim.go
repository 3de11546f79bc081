package brick

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// defaultAnimDuration matches the firmware's screen transitions closely
// enough that braciole navigation is indistinguishable from native menus.
const defaultAnimDuration = 220 * time.Millisecond

type animKind int

const (
	animNone     animKind = iota
	animSlide             // Push: new content slides in from the right
	animSlideOut          // Pop: old content slides out to the right
	animFade              // Replace: old frame fades out over the new tree
	animRise              // Modal: overlay rises over a dimming scrim
)

// transitionAnim is one in-flight animated transition. from holds a
// snapshot of the frame before the tree changed; the new state is drawn
// live each frame. done settles the navigation when the animation lands.
type transitionAnim struct {
	kind     animKind
	from     *sdl.Texture
	start    uint64
	duration time.Duration
	done     func(error)
}

// progress maps the clock onto [0, 1] linearly.
func (a *transitionAnim) progress(now uint64) float64 {
	if a.duration <= 0 {
		return 1
	}
	elapsed := time.Duration(now-a.start) * time.Millisecond
	return clamp01(float64(elapsed) / float64(a.duration))
}

func (a *transitionAnim) finished(now uint64) bool {
	return a.progress(now) >= 1
}

func (a *transitionAnim) release() {
	if a.from != nil {
		a.from.Destroy()
		a.from = nil
	}
}

// easeOutCubic maps linear progress onto a decelerating curve, fast off
// the line and settling gently.
func easeOutCubic(t float64) float64 {
	u := 1 - clamp01(t)
	return 1 - u*u*u
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
