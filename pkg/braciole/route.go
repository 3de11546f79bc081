package braciole

// TransitionKind identifies the structural verb a route uses to bring its
// content on screen.
type TransitionKind int

const (
	TransitionReplace TransitionKind = iota // Reset the active stack so the new content is its only entry
	TransitionPush                          // Append the new content to the active stack
	TransitionModal                         // Present the new content over whatever is currently visible
	TransitionCustom                        // Hand the transition to the router's TransitionDelegate
)

// String returns the lowercase name of the transition kind.
func (k TransitionKind) String() string {
	switch k {
	case TransitionReplace:
		return "replace"
	case TransitionPush:
		return "push"
	case TransitionModal:
		return "modal"
	case TransitionCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Transition describes how a route's content should appear. The zero value
// is a replace transition. ID is only meaningful for custom transitions,
// where it tells the TransitionDelegate which behavior to perform.
type Transition struct {
	Kind TransitionKind
	ID   string
}

// Replace returns a transition that resets the active stack to the new
// content alone.
func Replace() Transition { return Transition{Kind: TransitionReplace} }

// Push returns a transition that appends the new content to the active
// stack, preserving history beneath it.
func Push() Transition { return Transition{Kind: TransitionPush} }

// Modal returns a transition that presents the new content over the
// currently visible content.
func Modal() Transition { return Transition{Kind: TransitionModal} }

// Custom returns a transition performed by the router's TransitionDelegate.
// The id is passed through to the delegate untouched.
func Custom(id string) Transition { return Transition{Kind: TransitionCustom, ID: id} }

// String renders the transition for logs, e.g. "push" or "custom(flip)".
func (t Transition) String() string {
	if t.Kind == TransitionCustom && t.ID != "" {
		return t.Kind.String() + "(" + t.ID + ")"
	}
	return t.Kind.String()
}

// Route is a navigable destination. Implementations are caller-defined and
// opaque to the engine: the router only asks a route how it transitions and
// for its content.
//
// Prepare receives the currently visible content node (nil when the tree is
// empty) and returns the content to present. Returning an error aborts the
// navigation before anything on screen changes; the error reaches the
// completion callback unchanged. Prepare must not mutate the presentation
// tree itself.
type Route interface {
	Transition() Transition
	Prepare(visible Content) (Content, error)
}
