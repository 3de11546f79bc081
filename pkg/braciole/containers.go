package braciole

// finish invokes a completion callback when one was supplied. Public
// container methods accept nil callbacks; the router always passes one.
func finish(done func(error), err error) {
	if done != nil {
		done(err)
	}
}

// ContentStack is an in-memory Stack. It keeps ordered history, completes
// every mutation synchronously, and draws nothing, which makes it the
// natural root for headless apps and tests. Rendering stacks live in the
// platform packages.
type ContentStack struct {
	entries []Content
	overlay Content
}

// NewContentStack creates a stack holding entries in order, bottom first.
func NewContentStack(entries ...Content) *ContentStack {
	s := &ContentStack{entries: make([]Content, 0, len(entries))}
	s.entries = append(s.entries, entries...)
	return s
}

// Top returns the visible entry, or nil when the stack is empty.
func (s *ContentStack) Top() Content {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// ResetTo discards all history and leaves top as the only entry.
func (s *ContentStack) ResetTo(top Content, animated bool, done func(error)) {
	s.entries = s.entries[:0]
	s.entries = append(s.entries, top)
	finish(done, nil)
}

// Push appends child above the current top.
func (s *ContentStack) Push(child Content, animated bool, done func(error)) {
	s.entries = append(s.entries, child)
	finish(done, nil)
}

// Pop removes and returns the top entry. Returns nil when the stack is
// empty. Pop is a platform affordance (hardware back buttons and the like);
// the router itself never pops.
func (s *ContentStack) Pop() Content {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

// Present places child over the stack as a modal overlay, replacing any
// previous overlay.
func (s *ContentStack) Present(child Content, animated bool, done func(error)) {
	s.overlay = child
	finish(done, nil)
}

// Overlay returns the content presented over this stack, or nil.
func (s *ContentStack) Overlay() Content { return s.overlay }

// ClearOverlay dismisses the modal overlay, if any.
func (s *ContentStack) ClearOverlay() { s.overlay = nil }

// Len returns the number of entries.
func (s *ContentStack) Len() int { return len(s.entries) }

// Entries returns a copy of the stack contents, bottom first.
func (s *ContentStack) Entries() []Content {
	out := make([]Content, len(s.entries))
	copy(out, s.entries)
	return out
}

// SlotGroup is an in-memory Switcher: a fixed set of parallel child
// contexts with one active selection, like the section tabs on a console
// home screen.
type SlotGroup struct {
	slots   []Content
	active  int
	overlay Content
}

// NewSlotGroup creates a switcher over slots with the first slot active.
func NewSlotGroup(slots ...Content) *SlotGroup {
	g := &SlotGroup{slots: make([]Content, 0, len(slots))}
	g.slots = append(g.slots, slots...)
	return g
}

// ActiveSlot returns the active child, or nil when the group is empty.
func (g *SlotGroup) ActiveSlot() Content {
	if len(g.slots) == 0 {
		return nil
	}
	return g.slots[g.active]
}

// Active returns the index of the active slot.
func (g *SlotGroup) Active() int { return g.active }

// Activate selects the slot at index i. Out-of-range indexes leave the
// selection unchanged.
func (g *SlotGroup) Activate(i int) {
	if i < 0 || i >= len(g.slots) {
		return
	}
	g.active = i
}

// Present places child over the group as a modal overlay, replacing any
// previous overlay.
func (g *SlotGroup) Present(child Content, animated bool, done func(error)) {
	g.overlay = child
	finish(done, nil)
}

// Overlay returns the content presented over this group, or nil.
func (g *SlotGroup) Overlay() Content { return g.overlay }

// ClearOverlay dismisses the modal overlay, if any.
func (g *SlotGroup) ClearOverlay() { g.overlay = nil }

// Screen is a minimal leaf content node identified by name. Real apps
// supply their own leaves; Screen exists for wiring up trees quickly.
type Screen struct {
	Name    string
	overlay Content
}

// NewScreen creates a named leaf node.
func NewScreen(name string) *Screen {
	return &Screen{Name: name}
}

// Present places child over the screen as a modal overlay, replacing any
// previous overlay.
func (s *Screen) Present(child Content, animated bool, done func(error)) {
	s.overlay = child
	finish(done, nil)
}

// Overlay returns the content presented over this screen, or nil.
func (s *Screen) Overlay() Content { return s.overlay }

// ClearOverlay dismisses the modal overlay, if any.
func (s *Screen) ClearOverlay() { s.overlay = nil }

func (s *Screen) String() string { return s.Name }
