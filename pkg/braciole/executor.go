package braciole

import (
	"log/slog"

	"go.uber.org/atomic"
)

// TransitionDelegate performs transitions the engine has no native verb
// for. The router hands it the prepared content, the node the user was
// looking at, and the Transition (whose ID names the behavior). done must
// be invoked exactly once: nil after the transition lands, the failure
// otherwise. The engine does not time out a delegate that never calls done.
type TransitionDelegate interface {
	PerformTransition(to Content, from Content, transition Transition, animated bool, done func(error))
}

// TransitionDelegateFunc adapts a plain function to TransitionDelegate.
type TransitionDelegateFunc func(to, from Content, transition Transition, animated bool, done func(error))

// PerformTransition calls f.
func (f TransitionDelegateFunc) PerformTransition(to, from Content, transition Transition, animated bool, done func(error)) {
	f(to, from, transition, animated, done)
}

// onceOnly wraps a completion callback so only the first invocation counts.
// Containers and delegates are contractually bound to report exactly once,
// but a buggy implementation must not be able to double-settle a
// navigation; late duplicates are dropped and logged.
func onceOnly(log *slog.Logger, done func(error)) func(error) {
	settled := atomic.NewBool(false)
	return func(err error) {
		if !settled.CompareAndSwap(false, true) {
			log.Warn("dropped duplicate transition completion", "error", err)
			return
		}
		done(err)
	}
}

// execute applies the resolved transition. target is only set for replace
// and push; visible is the node that was on screen when the navigation
// began. Every branch reports through done.
func (rt *Router) execute(tr Transition, target Stack, visible, content Content, animated bool, done func(error)) {
	switch tr.Kind {
	case TransitionReplace:
		target.ResetTo(content, animated, done)
	case TransitionPush:
		target.Push(content, animated, done)
	case TransitionModal:
		visible.Present(content, animated, done)
	case TransitionCustom:
		rt.delegate.PerformTransition(content, visible, tr, animated, done)
	}
}
