package braciole

// Content is any node in the presentation tree that can appear on screen.
// The engine treats content as opaque: it never draws, sizes, or owns a
// node, it only asks nodes to present children and inspects the containers
// below.
//
// Present shows child over this node, modally. Implementations must invoke
// done exactly once, with nil after the presentation (and any animation)
// finishes or with the failure otherwise. done may be invoked synchronously.
type Content interface {
	Present(child Content, animated bool, done func(error))
}

// Stack is an ordered container of content where only the top entry is
// visible and the rest form history beneath it. Replace and push
// transitions structurally require one of these on the active chain.
//
// ResetTo discards every entry and leaves top as the only one. Push appends
// child above the current top. Both follow the same completion contract as
// Content.Present. Top returns the visible entry, or nil when the stack is
// empty; an empty stack is itself the visible node.
type Stack interface {
	Content
	Top() Content
	ResetTo(top Content, animated bool, done func(error))
	Push(child Content, animated bool, done func(error))
}

// Switcher holds several parallel child contexts with exactly one active at
// a time, like a tab bar or a console's section switcher. The engine only
// ever reads the active selection; changing it is the application's job,
// through whatever surface the switcher itself provides.
//
// ActiveSlot returns the active child, or nil when the switcher is empty.
type Switcher interface {
	Content
	ActiveSlot() Content
}
