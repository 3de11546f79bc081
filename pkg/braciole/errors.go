package braciole

import (
	"errors"
	"fmt"
)

// Sentinel errors for the closed set of navigation failures. Preparation
// errors are not part of this set: whatever a route's Prepare returns is
// handed to the completion callback unchanged.
var (
	// ErrNoTransitionDelegate indicates a route requested a custom
	// transition but no TransitionDelegate is registered on the router.
	ErrNoTransitionDelegate = errors.New("braciole: no transition delegate registered")

	// ErrNilContent indicates a route's Prepare returned neither content
	// nor an error, leaving the router with nothing to present.
	ErrNilContent = errors.New("braciole: route prepared no content")
)

// MissingStackError reports that a replace or push transition found no
// eligible stack container on the active chain. Both verbs mutate ordered
// history, so they cannot proceed against a tree made of leaves and
// switchers alone.
//
// The failed navigation leaves the presentation tree and the router's
// current route untouched.
type MissingStackError struct {
	Transition Transition // The transition that required a stack
}

func (e *MissingStackError) Error() string {
	return fmt.Sprintf("braciole: no stack container on the active chain for a %s transition", e.Transition.Kind)
}

// IsMissingStack checks if an error reports a missing stack container.
func IsMissingStack(err error) bool {
	var stackErr *MissingStackError
	return errors.As(err, &stackErr)
}

// IsNoDelegate checks if an error reports a custom transition with no
// registered delegate.
func IsNoDelegate(err error) bool {
	return errors.Is(err, ErrNoTransitionDelegate)
}
