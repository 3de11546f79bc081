// Package brick renders a braciole presentation tree with SDL2 on TrimUI
// Brick-class handheld devices. It provides stack, slot, and screen nodes
// that satisfy the engine's container interfaces, animates replace, push,
// and modal transitions, shows localized failure banners, and maps the
// hardware back button to a navigation callback.
//
// The package assumes the cooperative single-threaded model the engine is
// built for: construct a Presenter, hand its root to a Router, and call
// Frame from the main loop. Animated transitions settle their completion
// callbacks from Frame.
package brick

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
