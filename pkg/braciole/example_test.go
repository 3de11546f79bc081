package braciole_test

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/braciole/pkg/braciole"
)

// demoRoute is the smallest useful Route: a named destination with a
// fixed transition.
type demoRoute struct {
	name string
	tr   braciole.Transition
}

func (r demoRoute) Transition() braciole.Transition { return r.tr }

func (r demoRoute) Prepare(braciole.Content) (braciole.Content, error) {
	return braciole.NewScreen(r.name), nil
}

func (r demoRoute) String() string { return r.name }

// Example walks a launcher flow: open the library, drill into a game,
// then raise the power menu over it.
func Example() {
	home := braciole.NewScreen("home")
	stack := braciole.NewContentStack(home)
	router := braciole.NewRouter(stack)

	router.Navigate(demoRoute{name: "library", tr: braciole.Replace()}, false, nil)
	router.Navigate(demoRoute{name: "game-detail", tr: braciole.Push()}, false, nil)
	router.Navigate(demoRoute{name: "power-menu", tr: braciole.Modal()}, false, nil)

	for _, entry := range stack.Entries() {
		fmt.Println("stack:", entry)
	}
	fmt.Println("visible:", braciole.VisibleContent(stack))
	fmt.Println("over it:", braciole.VisibleContent(stack).(*braciole.Screen).Overlay())
	fmt.Println("current:", router.CurrentRoute())

	// Output:
	// stack: library
	// stack: game-detail
	// visible: game-detail
	// over it: power-menu
	// current: power-menu
}

// Example_urls resolves external URLs through a pattern table. URLs that
// match nothing are ignored without error.
func Example_urls() {
	stack := braciole.NewContentStack(braciole.NewScreen("home"))

	patterns := braciole.NewPatterns()
	patterns.Register("brick://library/games/:id", func(params map[string]string) braciole.Route {
		return demoRoute{name: "game-" + params["id"], tr: braciole.Push()}
	})

	router := braciole.NewRouterWithOptions(stack, braciole.RouterOptions{URLResolver: patterns})

	fmt.Println(router.NavigateURL("brick://library/games/1942", false, nil))
	fmt.Println(router.NavigateURL("https://example.com/not-a-game", false, nil))
	fmt.Println("visible:", braciole.VisibleContent(stack))

	// Output:
	// true
	// false
	// visible: game-1942
}

// Example_failures shows the closed failure set: structural errors carry
// identity, preparation errors pass through unchanged.
func Example_failures() {
	// Failed navigations are logged at warning level; keep them out of
	// this example's output.
	braciole.SetFrameworkLogLevel(slog.LevelError)

	tabs := braciole.NewSlotGroup(braciole.NewScreen("games"), braciole.NewScreen("tools"))
	router := braciole.NewRouter(tabs)

	router.Navigate(demoRoute{name: "anywhere", tr: braciole.Push()}, false, func(err error) {
		fmt.Println("push:", braciole.IsMissingStack(err))
	})
	router.Navigate(demoRoute{name: "spin", tr: braciole.Custom("spin")}, false, func(err error) {
		fmt.Println("custom:", braciole.IsNoDelegate(err))
	})
	fmt.Println("current:", router.CurrentRoute())

	// Output:
	// push: true
	// custom: true
	// current: <nil>
}
