package braciole

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"go.uber.org/atomic"
)

// Router drives navigation over a presentation tree. It owns no screens:
// the tree is built and rendered by the application (or a platform package)
// and the router mutates it strictly through the Content, Stack, and
// Switcher interfaces.
//
// The router is single-threaded. It takes no locks and expects
// Navigate calls and completion callbacks on the application's control
// thread, mirroring how UI toolkits serialize work onto a main loop.
type Router struct {
	root     Content
	current  Route
	delegate TransitionDelegate
	resolver URLResolver
	log      *slog.Logger

	seq      atomic.Uint64 // Navigation sequence numbers for log correlation
	inFlight atomic.Int64  // Navigations started but not yet settled
}

// RouterOptions configures optional router collaborators. The zero value
// is usable.
type RouterOptions struct {
	Logger      *slog.Logger       // Structured logger; nil selects the framework logger
	Delegate    TransitionDelegate // Performs custom transitions; may be nil
	URLResolver URLResolver        // Resolves URLs for NavigateURL; may be nil
}

// NewRouter creates a router over root with default options. Panics when
// root is nil: a router without a tree is a programming error, not a
// runtime condition.
func NewRouter(root Content) *Router {
	return NewRouterWithOptions(root, RouterOptions{})
}

// NewRouterWithOptions creates a router over root with explicit options.
func NewRouterWithOptions(root Content, opts RouterOptions) *Router {
	if root == nil {
		panic("braciole: router requires a root presentation context")
	}
	log := opts.Logger
	if log == nil {
		log = internal.GetInternalLogger()
	}
	return &Router{
		root:     root,
		delegate: opts.Delegate,
		resolver: opts.URLResolver,
		log:      log,
	}
}

// Root returns the presentation tree the router navigates.
func (rt *Router) Root() Content { return rt.root }

// CurrentRoute returns the route of the last navigation to complete
// successfully, or nil before the first one. Failed navigations never
// change it.
func (rt *Router) CurrentRoute() Route { return rt.current }

// SetTransitionDelegate installs the handler for custom transitions.
// Passing nil removes it, after which custom routes fail with
// ErrNoTransitionDelegate.
func (rt *Router) SetTransitionDelegate(d TransitionDelegate) { rt.delegate = d }

// TransitionDelegate returns the installed custom transition handler, or
// nil.
func (rt *Router) TransitionDelegate() TransitionDelegate { return rt.delegate }

// SetURLResolver installs the resolver consulted by NavigateURL. Passing
// nil removes it, after which every URL is ignored.
func (rt *Router) SetURLResolver(r URLResolver) { rt.resolver = r }

// InFlight reports how many navigations have started but not yet settled
// through their completion. Useful for tests and shutdown checks.
func (rt *Router) InFlight() int64 { return rt.inFlight.Load() }

// Navigate moves the application to route. animated is forwarded untouched
// to whichever collaborator applies the change. completion observes the
// outcome and may be nil.
//
// The navigation settles exactly once. On success the router records route
// as current before invoking completion(nil). On any failure the tree and
// the current route are exactly as they were: preparation errors arrive at
// completion unchanged, structural failures as MissingStackError or
// ErrNoTransitionDelegate.
//
// Overlapping Navigate calls are legal but uncoordinated: each resolves
// against whatever the tree looks like when it runs, and the completion
// that settles last determines the final current route. Callers wanting
// strict ordering should queue navigations themselves.
func (rt *Router) Navigate(route Route, animated bool, completion func(error)) {
	if completion == nil {
		completion = func(error) {}
	}
	tr := route.Transition()
	log := rt.log.With("nav", rt.seq.Inc(), "route", routeLabel(route), "transition", tr.String())

	rt.inFlight.Inc()
	settle := onceOnly(log, func(err error) {
		rt.inFlight.Dec()
		if err != nil {
			log.Warn("navigation failed", "error", err)
			completion(err)
			return
		}
		rt.current = route
		log.Debug("navigation completed")
		completion(nil)
	})

	chain := ActiveChain(rt.root)
	visible := chain[len(chain)-1]

	log.Debug("preparing content", "animated", animated)
	content, err := route.Prepare(visible)
	if err != nil {
		settle(err)
		return
	}
	if content == nil {
		settle(ErrNilContent)
		return
	}

	var target Stack
	switch tr.Kind {
	case TransitionReplace, TransitionPush:
		stack, ok := resolveStack(chain)
		if !ok {
			settle(&MissingStackError{Transition: tr})
			return
		}
		target = stack
	case TransitionModal:
		// The visible node hosts the modal; nothing to resolve.
	case TransitionCustom:
		if rt.delegate == nil {
			settle(ErrNoTransitionDelegate)
			return
		}
	default:
		settle(fmt.Errorf("braciole: unknown transition kind %d", tr.Kind))
		return
	}

	log.Debug("executing transition")
	rt.execute(tr, target, visible, content, animated, settle)
}

// routeLabel names a route for logs without requiring every route to
// implement fmt.Stringer.
func routeLabel(route Route) string {
	if s, ok := route.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", route)
}
