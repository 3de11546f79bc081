package braciole_test

import (
	"testing"

	"github.com/BrandonKowalski/braciole/pkg/braciole"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestTOML = `
[[route]]
name = "library"
pattern = "brick://library"
transition = "replace"

[[route]]
name = "game-detail"
pattern = "brick://library/games/:id"
transition = "push"

[[route]]
name = "power-menu"
pattern = "brick://system/power"
transition = "modal"

[[route]]
name = "screensaver"
pattern = "brick://system/screensaver"
transition = "custom"
custom_id = "dissolve"
`

func TestLoadManifest(t *testing.T) {
	m, err := braciole.LoadManifest([]byte(manifestTOML))
	require.NoError(t, err)
	require.Len(t, m.Routes, 4)

	assert.Equal(t, "game-detail", m.Routes[1].Name)
	assert.Equal(t, "brick://library/games/:id", m.Routes[1].Pattern)
	assert.Equal(t, "push", m.Routes[1].Transition)
	assert.Equal(t, "dissolve", m.Routes[3].CustomID)
}

func TestLoadManifestRejectsBadDeclarations(t *testing.T) {
	cases := map[string]string{
		"unknown transition": `
[[route]]
name = "x"
pattern = "brick://x"
transition = "teleport"
`,
		"custom without id": `
[[route]]
name = "x"
pattern = "brick://x"
transition = "custom"
`,
		"missing name": `
[[route]]
pattern = "brick://x"
transition = "push"
`,
		"missing pattern": `
[[route]]
name = "x"
transition = "push"
`,
		"duplicate name": `
[[route]]
name = "x"
pattern = "brick://x"
transition = "push"

[[route]]
name = "x"
pattern = "brick://y"
transition = "push"
`,
		"broken toml": `[[route]`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := braciole.LoadManifest([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestManifestBindEndToEnd(t *testing.T) {
	m, err := braciole.LoadManifest([]byte(manifestTOML))
	require.NoError(t, err)

	home := braciole.NewScreen("home")
	stack := braciole.NewContentStack(home)

	var gotParams map[string]string
	var gotVisible braciole.Content
	builders := map[string]braciole.ContentBuilder{
		"library": func(params map[string]string, visible braciole.Content) (braciole.Content, error) {
			return braciole.NewScreen("library"), nil
		},
		"game-detail": func(params map[string]string, visible braciole.Content) (braciole.Content, error) {
			gotParams = params
			gotVisible = visible
			return braciole.NewScreen("game-" + params["id"]), nil
		},
		"power-menu": func(params map[string]string, visible braciole.Content) (braciole.Content, error) {
			return braciole.NewScreen("power-menu"), nil
		},
		"screensaver": func(params map[string]string, visible braciole.Content) (braciole.Content, error) {
			return braciole.NewScreen("screensaver"), nil
		},
	}

	patterns, err := m.Bind(builders)
	require.NoError(t, err)

	opts := quietOptions()
	opts.URLResolver = patterns
	router := braciole.NewRouterWithOptions(stack, opts)

	started := router.NavigateURL("brick://library/games/1942?region=pal", false, func(err error) {
		require.NoError(t, err)
	})
	require.True(t, started)

	assert.Equal(t, "1942", gotParams["id"])
	assert.Equal(t, "pal", gotParams["region"])
	assert.Same(t, home, gotVisible)
	assert.Equal(t, 2, stack.Len())
	require.NotNil(t, router.CurrentRoute())
	assert.Equal(t, braciole.Push(), router.CurrentRoute().Transition())
	assert.Equal(t, "game-detail", routeName(router.CurrentRoute()))

	// Modal declaration lands on the screen the push left visible.
	started = router.NavigateURL("brick://system/power", false, nil)
	require.True(t, started)
	top, ok := stack.Top().(*braciole.Screen)
	require.True(t, ok)
	require.NotNil(t, top.Overlay())

	// Custom declaration carries its behavior name to the delegate.
	delegate := &recordingDelegate{}
	router.SetTransitionDelegate(delegate)
	started = router.NavigateURL("brick://system/screensaver", false, nil)
	require.True(t, started)
	require.Equal(t, 1, delegate.calls)
	assert.Equal(t, braciole.Custom("dissolve"), delegate.transition)
	delegate.done(nil)
}

func TestManifestBindMissingBuilder(t *testing.T) {
	m, err := braciole.LoadManifest([]byte(manifestTOML))
	require.NoError(t, err)

	_, err = m.Bind(map[string]braciole.ContentBuilder{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "library")
}

func TestManifestRoutesAreDistinctPerResolution(t *testing.T) {
	m, err := braciole.LoadManifest([]byte(manifestTOML))
	require.NoError(t, err)

	patterns, err := m.Bind(map[string]braciole.ContentBuilder{
		"library": func(map[string]string, braciole.Content) (braciole.Content, error) {
			return braciole.NewScreen("library"), nil
		},
		"game-detail": func(map[string]string, braciole.Content) (braciole.Content, error) {
			return braciole.NewScreen("game"), nil
		},
		"power-menu": func(map[string]string, braciole.Content) (braciole.Content, error) {
			return braciole.NewScreen("power"), nil
		},
		"screensaver": func(map[string]string, braciole.Content) (braciole.Content, error) {
			return braciole.NewScreen("saver"), nil
		},
	})
	require.NoError(t, err)

	first, ok := patterns.ResolveURL("brick://library/games/1")
	require.True(t, ok)
	second, ok := patterns.ResolveURL("brick://library/games/2")
	require.True(t, ok)

	assert.NotSame(t, first, second)
}
