package braciole

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveChainFollowsActiveSelections(t *testing.T) {
	gameList := NewScreen("game-list")
	games := NewContentStack(gameList)
	toolList := NewScreen("tool-list")
	tools := NewContentStack(toolList)
	tabs := NewSlotGroup(games, tools)

	chain := ActiveChain(tabs)
	require.Len(t, chain, 3)
	assert.Same(t, tabs, chain[0])
	assert.Same(t, games, chain[1])
	assert.Same(t, gameList, chain[2])
	assert.Same(t, gameList, VisibleContent(tabs))

	tabs.Activate(1)
	chain = ActiveChain(tabs)
	require.Len(t, chain, 3)
	assert.Same(t, tools, chain[1])
	assert.Same(t, toolList, chain[2])
}

func TestActiveChainStopsAtEmptyContainers(t *testing.T) {
	empty := NewContentStack()
	chain := ActiveChain(empty)
	require.Len(t, chain, 1)
	assert.Same(t, empty, chain[0])
	assert.Same(t, empty, VisibleContent(empty))

	group := NewSlotGroup()
	assert.Same(t, group, VisibleContent(group))
}

func TestActiveChainIgnoresOverlays(t *testing.T) {
	home := NewScreen("home")
	stack := NewContentStack(home)
	home.Present(NewScreen("sheet"), false, nil)

	chain := ActiveChain(stack)
	require.Len(t, chain, 2)
	assert.Same(t, home, chain[1])
	assert.Same(t, home, VisibleContent(stack))
}

func TestActiveChainBoundsMalformedTrees(t *testing.T) {
	loop := &SlotGroup{slots: make([]Content, 1)}
	loop.slots[0] = loop

	chain := ActiveChain(loop)
	assert.Len(t, chain, maxChainDepth)
}

func TestVisibleContentNilRoot(t *testing.T) {
	assert.Nil(t, VisibleContent(nil))
}

func TestResolveStackAtRoot(t *testing.T) {
	stack := NewContentStack(NewScreen("home"))
	found, ok := resolveStack(ActiveChain(stack))
	require.True(t, ok)
	assert.Same(t, stack, found)
}

func TestResolveStackDeepestEligibleWins(t *testing.T) {
	inner := NewContentStack(NewScreen("games"))
	tabs := NewSlotGroup(inner)
	root := NewContentStack(tabs)

	found, ok := resolveStack(ActiveChain(root))
	require.True(t, ok)
	assert.Same(t, inner, found)
}

func TestResolveStackIgnoresStackDirectlyInStack(t *testing.T) {
	inner := NewContentStack(NewScreen("x"))
	outer := NewContentStack(inner)

	found, ok := resolveStack(ActiveChain(outer))
	require.True(t, ok)
	assert.Same(t, outer, found)
}

func TestResolveStackNoneEligible(t *testing.T) {
	tabs := NewSlotGroup(NewScreen("a"), NewScreen("b"))
	_, ok := resolveStack(ActiveChain(tabs))
	assert.False(t, ok)

	_, ok = resolveStack(ActiveChain(NewScreen("solo")))
	assert.False(t, ok)
}

func TestResolveStackHonorsActiveSlotOnly(t *testing.T) {
	leaf := NewScreen("bare")
	stacked := NewContentStack(NewScreen("deep"))
	tabs := NewSlotGroup(leaf, stacked)

	_, ok := resolveStack(ActiveChain(tabs))
	assert.False(t, ok)

	tabs.Activate(1)
	found, ok := resolveStack(ActiveChain(tabs))
	require.True(t, ok)
	assert.Same(t, stacked, found)
}
