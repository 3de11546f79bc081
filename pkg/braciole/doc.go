// Package braciole provides declarative navigation for graphical applications
// on embedded Linux devices, particularly handheld gaming consoles running
// custom firmware like NextUI or Cannoli.
//
// Applications declare where they can go as routes. A route names how it
// wants to appear (replace the current stack, push onto it, present modally,
// or a custom transition the application performs itself) and knows how to
// build its own content. The Router validates that the live presentation
// tree can satisfy the requested transition, locates the container to
// mutate, applies the change, and reports the outcome through a completion
// callback while keeping a single authoritative current-route pointer.
//
// # Basic Usage
//
//	// Routes are caller-defined values with a transition and a content step.
//	type settingsRoute struct{}
//
//	func (settingsRoute) Transition() braciole.Transition { return braciole.Push() }
//	func (settingsRoute) Prepare(visible braciole.Content) (braciole.Content, error) {
//	    return braciole.NewScreen("settings"), nil
//	}
//
//	stack := braciole.NewContentStack(braciole.NewScreen("home"))
//	router := braciole.NewRouter(stack)
//
//	router.Navigate(settingsRoute{}, true, func(err error) {
//	    if err != nil {
//	        // The tree was left untouched; CurrentRoute is unchanged.
//	    }
//	})
//
// # Presentation Contexts
//
// The engine never owns the screen hierarchy. It inspects it through three
// narrow interfaces: Content (any presentable node), Stack (ordered history
// where only the top is visible), and Switcher (several child contexts with
// one active selection). The in-memory ContentStack, SlotGroup, and Screen
// satisfy these for headless use and tests; platform/brick provides an
// SDL-backed implementation for real devices.
//
// # Transitions
//
// Replace and push structurally require a stack on the active chain and
// fail with MissingStackError when none is eligible. Modal presents over
// whatever is visible and never fails for want of a container. Custom
// transitions are forwarded to a TransitionDelegate registered on the
// router; without one they fail with ErrNoTransitionDelegate.
//
// # URL Entry Point
//
// Router.NavigateURL resolves a URL through an optional URLResolver.
// Unresolvable URLs are a silent no-op. The Patterns table and the TOML
// manifest loader provide a minimal resolver for apps that want declarative
// route tables; anything fancier belongs to the application.
//
// # Concurrency
//
// The engine is built for a single-threaded, cooperative environment:
// Navigate is called from one control thread and completions are delivered
// back on it. The router takes no locks. Overlapping Navigate calls are
// permitted but not coordinated; callers wanting strict ordering should
// queue navigations themselves.
package braciole
