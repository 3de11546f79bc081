package brick

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole"
)

// Screen is a leaf node: a titled surface whose body is drawn by an
// application-supplied function. Create screens through
// Presenter.NewScreen so they animate on the right window.
type Screen struct {
	p       *Presenter
	Title   string
	Draw    DrawFunc
	overlay braciole.Content
}

// Present places child over the screen as a modal overlay, replacing any
// previous one, rising over a scrim when animated.
func (s *Screen) Present(child braciole.Content, animated bool, done func(error)) {
	snap := s.p.prepareTransition(animated)
	s.overlay = child
	s.p.commitTransition(animRise, snap, animated, done)
}

// Overlay returns the content presented over this screen, or nil.
func (s *Screen) Overlay() braciole.Content { return s.overlay }

// ClearOverlay dismisses the overlay without animation. Presenter.Back
// dismisses with one.
func (s *Screen) ClearOverlay() { s.overlay = nil }

func (s *Screen) String() string { return s.Title }

// StackView is a rendering braciole.Stack: ordered history where only the
// top entry is drawn. Replace transitions crossfade, pushes slide in from
// the right, pops slide back out.
type StackView struct {
	p       *Presenter
	entries []braciole.Content
	overlay braciole.Content
}

// Top returns the visible entry, or nil when the stack is empty.
func (v *StackView) Top() braciole.Content {
	if len(v.entries) == 0 {
		return nil
	}
	return v.entries[len(v.entries)-1]
}

// ResetTo discards all history and leaves top as the only entry.
func (v *StackView) ResetTo(top braciole.Content, animated bool, done func(error)) {
	snap := v.p.prepareTransition(animated)
	v.entries = v.entries[:0]
	v.entries = append(v.entries, top)
	v.p.commitTransition(animFade, snap, animated, done)
}

// Push appends child above the current top.
func (v *StackView) Push(child braciole.Content, animated bool, done func(error)) {
	snap := v.p.prepareTransition(animated)
	v.entries = append(v.entries, child)
	v.p.commitTransition(animSlide, snap, animated, done)
}

// Pop removes and returns the top entry, or nil when the stack is empty.
// Pop is the platform's back affordance; the router never pops.
func (v *StackView) Pop(animated bool) braciole.Content {
	if len(v.entries) == 0 {
		return nil
	}
	top := v.entries[len(v.entries)-1]
	v.pop(animated)
	return top
}

func (v *StackView) pop(animated bool) {
	snap := v.p.prepareTransition(animated)
	v.entries = v.entries[:len(v.entries)-1]
	v.p.commitTransition(animSlideOut, snap, animated, nil)
}

// Present places child over the whole stack as a modal overlay.
func (v *StackView) Present(child braciole.Content, animated bool, done func(error)) {
	snap := v.p.prepareTransition(animated)
	v.overlay = child
	v.p.commitTransition(animRise, snap, animated, done)
}

// Overlay returns the content presented over this stack, or nil.
func (v *StackView) Overlay() braciole.Content { return v.overlay }

// ClearOverlay dismisses the overlay without animation.
func (v *StackView) ClearOverlay() { v.overlay = nil }

// Len returns the number of entries.
func (v *StackView) Len() int { return len(v.entries) }

// SlotView is a rendering braciole.Switcher: parallel child contexts with
// one active, drawn full-bleed. Switching slots crossfades.
type SlotView struct {
	p       *Presenter
	slots   []braciole.Content
	active  int
	overlay braciole.Content
}

// ActiveSlot returns the active child, or nil when the view is empty.
func (v *SlotView) ActiveSlot() braciole.Content {
	if len(v.slots) == 0 {
		return nil
	}
	return v.slots[v.active]
}

// Active returns the index of the active slot.
func (v *SlotView) Active() int { return v.active }

// Activate selects the slot at index i. Out-of-range indexes and
// reselecting the active slot are no-ops.
func (v *SlotView) Activate(i int, animated bool) {
	if i < 0 || i >= len(v.slots) || i == v.active {
		return
	}
	snap := v.p.prepareTransition(animated)
	v.active = i
	v.p.commitTransition(animFade, snap, animated, nil)
}

// Present places child over the whole switcher as a modal overlay.
func (v *SlotView) Present(child braciole.Content, animated bool, done func(error)) {
	snap := v.p.prepareTransition(animated)
	v.overlay = child
	v.p.commitTransition(animRise, snap, animated, done)
}

// Overlay returns the content presented over this switcher, or nil.
func (v *SlotView) Overlay() braciole.Content { return v.overlay }

// ClearOverlay dismisses the overlay without animation.
func (v *SlotView) ClearOverlay() { v.overlay = nil }
