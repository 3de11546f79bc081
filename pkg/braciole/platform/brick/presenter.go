package brick

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"go.uber.org/atomic"
)

const defaultFontPath = "/mnt/SDCARD/System/fonts/Next.ttf"

const (
	screenPadding  int32 = 24
	titleBarHeight int32 = 72
	chromeIconSize int32 = 28
	bannerHeight   int32 = 56
	bannerDuration       = 4 * time.Second
)

// DrawFunc paints a screen's body. bounds excludes the title bar.
type DrawFunc func(renderer *sdl.Renderer, bounds sdl.Rect)

// overlayHost is any brick node that can carry a modal overlay.
type overlayHost interface {
	Overlay() braciole.Content
	ClearOverlay()
}

// PresenterOptions configures a Presenter. The zero value is usable on a
// device with the stock firmware font installed.
type PresenterOptions struct {
	Title             string        // Window title, visible in dev mode only
	Width, Height     int32         // Zero selects the display resolution
	Borderless        bool          // Remove window decorations on device builds
	Theme             *Theme        // nil selects DefaultTheme over the firmware font
	Languages         []string      // BCP 47 preference order for failure banners
	AnimationDuration time.Duration // Zero selects the stock duration
	Logger            *slog.Logger  // nil selects the framework logger
}

// Presenter owns the SDL window and draws a braciole presentation tree.
// Its StackView, SlotView, and Screen nodes satisfy the engine's container
// interfaces, so a Router can navigate the tree while the presenter
// animates what the user sees.
//
// All methods except IsAnimating must be called from the main loop thread,
// the same one that calls Frame.
type Presenter struct {
	win       *Window
	theme     Theme
	titleFont *ttf.Font
	bodyFont  *ttf.Font
	icons     map[string]*sdl.Texture
	text      *textCache
	log       *slog.Logger

	root         braciole.Content
	anim         *transitionAnim
	animDuration time.Duration
	animating    atomic.Bool

	langs     []string
	failure   string
	failureAt uint64
}

// NewPresenter initializes SDL and creates the window, fonts, and chrome
// textures. Call Close before program exit.
func NewPresenter(opts PresenterOptions) (*Presenter, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("brick: init sdl: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("brick: init ttf: %w", err)
	}

	theme := DefaultTheme(defaultFontPath)
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	duration := opts.AnimationDuration
	if duration == 0 {
		duration = defaultAnimDuration
	}
	log := opts.Logger
	if log == nil {
		log = internal.GetInternalLogger()
	}

	p := &Presenter{
		theme:        theme,
		icons:        make(map[string]*sdl.Texture),
		text:         newTextCache(defaultTextCacheSize),
		log:          log,
		animDuration: duration,
		langs:        opts.Languages,
	}

	win, err := newWindow(opts.Title, opts.Width, opts.Height, opts.Borderless)
	if err != nil {
		p.Close()
		return nil, err
	}
	p.win = win
	win.Renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	p.titleFont, err = ttf.OpenFont(theme.FontPath, theme.TitleFontSize)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("brick: open font %s: %w", theme.FontPath, err)
	}
	p.bodyFont, err = ttf.OpenFont(theme.FontPath, theme.BodyFontSize)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("brick: open font %s: %w", theme.FontPath, err)
	}

	for _, name := range []string{"back", "close"} {
		texture, err := loadIconTexture(win.Renderer, name, int(chromeIconSize), theme.ChromeColor)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.icons[name] = texture
	}

	return p, nil
}

// Close releases every SDL resource the presenter owns and shuts SDL
// down. A pending animated transition settles successfully first.
func (p *Presenter) Close() {
	p.cancelAnim()
	for _, texture := range p.icons {
		texture.Destroy()
	}
	p.icons = make(map[string]*sdl.Texture)
	if p.text != nil {
		p.text.destroy()
	}
	if p.titleFont != nil {
		p.titleFont.Close()
		p.titleFont = nil
	}
	if p.bodyFont != nil {
		p.bodyFont.Close()
		p.bodyFont = nil
	}
	if p.win != nil {
		p.win.destroy()
		p.win = nil
	}
	ttf.Quit()
	sdl.Quit()
}

// SetRoot installs the presentation tree to draw and navigate.
func (p *Presenter) SetRoot(root braciole.Content) { p.root = root }

// Root returns the presentation tree, suitable for braciole.NewRouter.
func (p *Presenter) Root() braciole.Content { return p.root }

// Window exposes the SDL window wrapper for advanced use.
func (p *Presenter) Window() *Window { return p.win }

// Theme returns the active theme.
func (p *Presenter) Theme() Theme { return p.theme }

// IsAnimating reports whether a transition animation is in flight. Safe
// to call from any goroutine.
func (p *Presenter) IsAnimating() bool { return p.animating.Load() }

// NewScreen creates a leaf node drawn by the given function.
func (p *Presenter) NewScreen(title string, draw DrawFunc) *Screen {
	return &Screen{p: p, Title: title, Draw: draw}
}

// NewStack creates a rendering stack holding entries in order, bottom
// first.
func (p *Presenter) NewStack(entries ...braciole.Content) *StackView {
	v := &StackView{p: p, entries: make([]braciole.Content, 0, len(entries))}
	v.entries = append(v.entries, entries...)
	return v
}

// NewSlots creates a rendering switcher over slots with the first active.
func (p *Presenter) NewSlots(slots ...braciole.Content) *SlotView {
	v := &SlotView{p: p, slots: make([]braciole.Content, 0, len(slots))}
	v.slots = append(v.slots, slots...)
	return v
}

// OnFailure returns a navigation completion callback that surfaces any
// error as a localized banner, then forwards the outcome to next when
// provided.
func (p *Presenter) OnFailure(next func(error)) func(error) {
	return func(err error) {
		if err != nil {
			p.ShowFailure(err)
		}
		if next != nil {
			next(err)
		}
	}
}

// ShowFailure renders err as a banner along the bottom edge for a few
// seconds, localized for the presenter's configured languages.
func (p *Presenter) ShowFailure(err error) {
	msg := braciole.FailureMessage(err, p.langs...)
	if msg == "" {
		return
	}
	p.failure = msg
	p.failureAt = sdl.GetTicks64()
	p.log.Debug("showing failure banner", "message", msg)
}

// Back performs the platform back gesture: dismiss the topmost modal if
// one is up, otherwise pop the active stack. Reports whether anything
// changed. The router is not involved; back is history the tree already
// holds.
func (p *Presenter) Back(animated bool) bool {
	chain := braciole.ActiveChain(p.root)
	for i := len(chain) - 1; i >= 0; i-- {
		host, ok := chain[i].(overlayHost)
		if !ok || host.Overlay() == nil {
			continue
		}
		snap := p.prepareTransition(animated)
		host.ClearOverlay()
		p.commitTransition(animFade, snap, animated, nil)
		return true
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if stack, ok := chain[i].(*StackView); ok && stack.Len() > 1 {
			stack.pop(animated)
			return true
		}
	}
	return false
}

// Frame renders one frame: advances any transition animation, draws the
// tree, overlays, and failure banner, and presents. Animated transitions
// settle their completion callbacks here, so the main loop must keep
// calling Frame while IsAnimating reports true.
func (p *Presenter) Frame() {
	p.clear()
	bounds := p.win.Bounds()

	if p.anim != nil {
		now := sdl.GetTicks64()
		if p.anim.finished(now) {
			p.settleAnim()
			p.drawTree(p.root, bounds)
		} else {
			p.drawAnimated(bounds, now)
		}
	} else {
		p.drawTree(p.root, bounds)
	}

	p.drawBanner(bounds)
	p.win.Present()
}

// prepareTransition settles any in-flight animation and snapshots the
// current frame for the outgoing side of the next one.
func (p *Presenter) prepareTransition(animated bool) *sdl.Texture {
	p.cancelAnim()
	if !animated || p.win == nil {
		return nil
	}
	return p.snapshotFrame()
}

// commitTransition starts the animation, or settles immediately for
// non-animated mutations.
func (p *Presenter) commitTransition(kind animKind, snap *sdl.Texture, animated bool, done func(error)) {
	if done == nil {
		done = func(error) {}
	}
	if !animated || p.win == nil {
		if snap != nil {
			snap.Destroy()
		}
		done(nil)
		return
	}
	p.anim = &transitionAnim{
		kind:     kind,
		from:     snap,
		start:    sdl.GetTicks64(),
		duration: p.animDuration,
		done:     done,
	}
	p.animating.Store(true)
}

// cancelAnim settles an interrupted animation. The mutation it animated
// has already landed, so its navigation still completes successfully.
func (p *Presenter) cancelAnim() {
	if p.anim == nil {
		return
	}
	a := p.anim
	p.anim = nil
	p.animating.Store(false)
	a.release()
	a.done(nil)
}

func (p *Presenter) settleAnim() {
	a := p.anim
	p.anim = nil
	p.animating.Store(false)
	a.release()
	a.done(nil)
}

// snapshotFrame renders the current tree into a target texture. Returns
// nil when the texture cannot be allocated; the transition then runs
// without its outgoing side.
func (p *Presenter) snapshotFrame() *sdl.Texture {
	w, h := p.win.Size()
	texture, err := p.win.Renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_TARGET, w, h)
	if err != nil {
		p.log.Warn("snapshot texture allocation failed", "error", err)
		return nil
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	prev := p.win.Renderer.GetRenderTarget()
	p.win.Renderer.SetRenderTarget(texture)
	p.clear()
	p.drawTree(p.root, p.win.Bounds())
	p.win.Renderer.SetRenderTarget(prev)
	return texture
}

func (p *Presenter) drawAnimated(bounds sdl.Rect, now uint64) {
	r := p.win.Renderer
	a := p.anim
	t := easeOutCubic(a.progress(now))

	switch a.kind {
	case animSlide:
		if a.from != nil {
			r.Copy(a.from, nil, &bounds)
		}
		shifted := bounds
		shifted.X += int32((1 - t) * float64(bounds.W))
		p.drawTree(p.root, shifted)
	case animSlideOut:
		p.drawTree(p.root, bounds)
		if a.from != nil {
			shifted := bounds
			shifted.X += int32(t * float64(bounds.W))
			r.Copy(a.from, nil, &shifted)
		}
	case animFade:
		p.drawTree(p.root, bounds)
		if a.from != nil {
			a.from.SetAlphaMod(uint8((1 - t) * 255))
			r.Copy(a.from, nil, &bounds)
		}
	case animRise:
		if a.from != nil {
			r.Copy(a.from, nil, &bounds)
		} else {
			p.drawTree(p.root, bounds)
		}
		p.fillScrim(bounds, uint8(float64(p.theme.ScrimColor.A)*t))
		if overlay := p.topOverlay(); overlay != nil {
			card := p.overlayRect(bounds)
			card.Y += int32((1 - t) * float64(bounds.Y+bounds.H-card.Y))
			p.drawCard(overlay, card)
		}
	default:
		p.drawTree(p.root, bounds)
	}
}

// drawTree draws node and everything visibly beneath it into bounds,
// following active selections and stack tops, then any modal overlay.
// Nodes the presenter does not know how to draw are skipped; the engine
// can still navigate them.
func (p *Presenter) drawTree(node braciole.Content, bounds sdl.Rect) {
	switch n := node.(type) {
	case *SlotView:
		if active := n.ActiveSlot(); active != nil {
			p.drawTree(active, bounds)
		}
		p.drawOverlay(n.overlay, bounds)
	case *StackView:
		if top := n.Top(); top != nil {
			p.drawTree(top, bounds)
		}
		if n.Len() > 1 {
			// Footer hint: history exists beneath the visible entry.
			p.drawIcon("back", bounds.X+screenPadding, bounds.Y+bounds.H-chromeIconSize-screenPadding)
		}
		p.drawOverlay(n.overlay, bounds)
	case *Screen:
		p.drawScreen(n, bounds)
		p.drawOverlay(n.overlay, bounds)
	}
}

func (p *Presenter) drawScreen(s *Screen, bounds sdl.Rect) {
	p.drawText(p.titleFont, s.Title, p.theme.TextColor, bounds.X+screenPadding, bounds.Y+screenPadding)

	if s.Draw != nil {
		body := bounds
		body.Y += titleBarHeight
		body.H -= titleBarHeight
		s.Draw(p.win.Renderer, body)
	}
}

// drawOverlay paints a modal overlay: scrim, card, content, close chrome.
func (p *Presenter) drawOverlay(overlay braciole.Content, bounds sdl.Rect) {
	if overlay == nil {
		return
	}
	p.fillScrim(bounds, p.theme.ScrimColor.A)
	p.drawCard(overlay, p.overlayRect(bounds))
}

func (p *Presenter) drawCard(overlay braciole.Content, card sdl.Rect) {
	p.fillRect(card, p.theme.BackgroundColor)
	p.outlineRect(card, p.theme.ChromeColor)
	p.drawTree(overlay, card)
	p.drawIcon("close", card.X+card.W-chromeIconSize-screenPadding/2, card.Y+screenPadding/2)
}

// overlayRect is the card a modal occupies within its host bounds.
func (p *Presenter) overlayRect(bounds sdl.Rect) sdl.Rect {
	return sdl.Rect{
		X: bounds.X + bounds.W/12,
		Y: bounds.Y + bounds.H/12,
		W: bounds.W - bounds.W/6,
		H: bounds.H - bounds.H/6,
	}
}

func (p *Presenter) drawBanner(bounds sdl.Rect) {
	if p.failure == "" {
		return
	}
	if time.Duration(sdl.GetTicks64()-p.failureAt)*time.Millisecond > bannerDuration {
		p.failure = ""
		return
	}
	strip := sdl.Rect{
		X: bounds.X,
		Y: bounds.Y + bounds.H - bannerHeight,
		W: bounds.W,
		H: bannerHeight,
	}
	p.fillRect(strip, p.theme.AccentColor)
	textY := strip.Y + (bannerHeight-int32(p.bodyFont.Height()))/2
	p.drawText(p.bodyFont, p.failure, p.theme.TextColor, strip.X+screenPadding, textY)
}

func (p *Presenter) topOverlay() braciole.Content {
	chain := braciole.ActiveChain(p.root)
	for i := len(chain) - 1; i >= 0; i-- {
		if host, ok := chain[i].(overlayHost); ok {
			if overlay := host.Overlay(); overlay != nil {
				return overlay
			}
		}
	}
	return nil
}

func (p *Presenter) clear() {
	bg := p.theme.BackgroundColor
	p.win.Renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	p.win.Renderer.Clear()
}

func (p *Presenter) fillRect(rect sdl.Rect, color sdl.Color) {
	p.win.Renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	p.win.Renderer.FillRect(&rect)
}

func (p *Presenter) outlineRect(rect sdl.Rect, color sdl.Color) {
	p.win.Renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	p.win.Renderer.DrawRect(&rect)
}

func (p *Presenter) fillScrim(bounds sdl.Rect, alpha uint8) {
	scrim := p.theme.ScrimColor
	p.win.Renderer.SetDrawColor(scrim.R, scrim.G, scrim.B, alpha)
	p.win.Renderer.FillRect(&bounds)
}

func (p *Presenter) drawIcon(name string, x, y int32) {
	icon := p.icons[name]
	if icon == nil {
		return
	}
	p.win.Renderer.Copy(icon, nil, &sdl.Rect{X: x, Y: y, W: chromeIconSize, H: chromeIconSize})
}

func (p *Presenter) drawText(font *ttf.Font, text string, color sdl.Color, x, y int32) {
	if text == "" || font == nil {
		return
	}
	key := fmt.Sprintf("%p|%02x%02x%02x%02x|%s", font, color.R, color.G, color.B, color.A, text)
	entry, ok := p.text.get(key)
	if !ok {
		surface, err := font.RenderUTF8Blended(text, color)
		if err != nil {
			return
		}
		w, h := surface.W, surface.H
		texture, err := p.win.Renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			return
		}
		entry = textEntry{texture: texture, w: w, h: h}
		p.text.set(key, entry)
	}
	p.win.Renderer.Copy(entry.texture, nil, &sdl.Rect{X: x, Y: y, W: entry.w, H: entry.h})
}
