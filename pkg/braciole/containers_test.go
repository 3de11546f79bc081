package braciole_test

import (
	"testing"

	"github.com/BrandonKowalski/braciole/pkg/braciole"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentStackOrdering(t *testing.T) {
	a := braciole.NewScreen("a")
	b := braciole.NewScreen("b")
	stack := braciole.NewContentStack(a, b)

	require.Equal(t, 2, stack.Len())
	assert.Same(t, b, stack.Top())

	entries := stack.Entries()
	require.Len(t, entries, 2)
	assert.Same(t, a, entries[0])
	assert.Same(t, b, entries[1])

	// Entries is a copy; mutating it does not touch the stack.
	entries[0] = braciole.NewScreen("imposter")
	assert.Same(t, a, stack.Entries()[0])
}

func TestContentStackPop(t *testing.T) {
	a := braciole.NewScreen("a")
	b := braciole.NewScreen("b")
	stack := braciole.NewContentStack(a, b)

	assert.Same(t, b, stack.Pop())
	assert.Same(t, a, stack.Top())
	assert.Same(t, a, stack.Pop())
	assert.Nil(t, stack.Pop())
	assert.Nil(t, stack.Top())
	assert.Equal(t, 0, stack.Len())
}

func TestContentStackMutationsCompleteSynchronously(t *testing.T) {
	stack := braciole.NewContentStack()

	calls := 0
	stack.Push(braciole.NewScreen("a"), true, func(err error) {
		calls++
		require.NoError(t, err)
	})
	stack.ResetTo(braciole.NewScreen("b"), true, func(err error) {
		calls++
		require.NoError(t, err)
	})
	stack.Present(braciole.NewScreen("sheet"), true, func(err error) {
		calls++
		require.NoError(t, err)
	})

	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, stack.Len())
	require.NotNil(t, stack.Overlay())

	stack.ClearOverlay()
	assert.Nil(t, stack.Overlay())

	// Nil callbacks are allowed.
	require.NotPanics(t, func() {
		stack.Push(braciole.NewScreen("c"), false, nil)
	})
}

func TestSlotGroupActivation(t *testing.T) {
	a := braciole.NewScreen("a")
	b := braciole.NewScreen("b")
	group := braciole.NewSlotGroup(a, b)

	assert.Equal(t, 0, group.Active())
	assert.Same(t, a, group.ActiveSlot())

	group.Activate(1)
	assert.Equal(t, 1, group.Active())
	assert.Same(t, b, group.ActiveSlot())

	// Out-of-range indexes leave the selection alone.
	group.Activate(5)
	assert.Equal(t, 1, group.Active())
	group.Activate(-1)
	assert.Equal(t, 1, group.Active())
}

func TestEmptySlotGroup(t *testing.T) {
	group := braciole.NewSlotGroup()
	assert.Nil(t, group.ActiveSlot())

	group.Present(braciole.NewScreen("sheet"), false, nil)
	assert.NotNil(t, group.Overlay())
	group.ClearOverlay()
	assert.Nil(t, group.Overlay())
}

func TestScreenOverlayAndName(t *testing.T) {
	screen := braciole.NewScreen("settings")
	assert.Equal(t, "settings", screen.String())

	sheet := braciole.NewScreen("sheet")
	calls := 0
	screen.Present(sheet, false, func(err error) {
		calls++
		require.NoError(t, err)
	})
	assert.Equal(t, 1, calls)
	assert.Same(t, sheet, screen.Overlay())

	screen.ClearOverlay()
	assert.Nil(t, screen.Overlay())
}
