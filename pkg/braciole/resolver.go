package braciole

// maxChainDepth bounds the active chain walk so a malformed tree with a
// containment cycle cannot hang navigation.
const maxChainDepth = 32

// ActiveChain returns the path from root to the currently visible node:
// switchers contribute their active slot, stacks their top entry, leaves
// end the walk. Modal overlays are not part of the chain; navigation always
// resolves against the underlying tree. Platform packages use the chain
// for back gestures and breadcrumbs.
func ActiveChain(root Content) []Content {
	chain := make([]Content, 0, 4)
	node := root
	for node != nil && len(chain) < maxChainDepth {
		chain = append(chain, node)
		switch c := node.(type) {
		case Switcher:
			node = c.ActiveSlot()
		case Stack:
			node = c.Top()
		default:
			node = nil
		}
	}
	return chain
}

// VisibleContent returns the deepest node on the active chain, the one the
// user is currently looking at. An empty stack or switcher is itself the
// visible node. Returns nil only for a nil root.
func VisibleContent(root Content) Content {
	chain := ActiveChain(root)
	if len(chain) == 0 {
		return nil
	}
	return chain[len(chain)-1]
}

// resolveStack locates the stack that replace and push transitions operate
// on: a stack on the active chain sitting either at the root or directly
// beneath a switcher. Stacks nested elsewhere (inside another stack, or
// behind an inactive slot) hold history that is not currently governing the
// screen, so they are never touched. When several qualify, the deepest one
// wins, since it is the one whose top the user is actually seeing.
func resolveStack(chain []Content) (Stack, bool) {
	var found Stack
	for i, node := range chain {
		s, ok := node.(Stack)
		if !ok {
			continue
		}
		if i == 0 {
			found = s
			continue
		}
		if _, beneathSwitcher := chain[i-1].(Switcher); beneathSwitcher {
			found = s
		}
	}
	return found, found != nil
}
