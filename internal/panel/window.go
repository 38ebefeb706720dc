package panel

import (
	"image"
	"image/color"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

const windowTitle = "Hover Panel"

// GioWindow is the panel window, rendered with Gio. The window is created
// when shown and destroyed when hidden; Visible reflects that lifecycle.
type GioWindow struct {
	mu      sync.Mutex
	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	// Logical size the window opens with, in dp.
	width  int
	height int

	// Last observed frame geometry.
	lastSize  image.Point
	lastScale float64

	shortcut string
	pinned   bool
	pinBtn   widget.Clickable

	onResize    func(pxWidth, pxHeight int)
	onFocusLost func()
	onPinToggle func(pinned bool)
}

// NewGioWindow creates a hidden panel window with the given logical size.
func NewGioWindow(width, height int) *GioWindow {
	return &GioWindow{
		width:  width,
		height: height,
	}
}

// OnResize sets the callback for native size changes, reported in pixels.
func (w *GioWindow) OnResize(fn func(pxWidth, pxHeight int)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onResize = fn
}

// OnFocusLost sets the callback for loss of input focus.
func (w *GioWindow) OnFocusLost(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onFocusLost = fn
}

// OnPinToggle sets the callback for the pin button on the panel.
func (w *GioWindow) OnPinToggle(fn func(pinned bool)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onPinToggle = fn
}

// SetShortcutLabel updates the shortcut badge shown on the panel.
func (w *GioWindow) SetShortcutLabel(display string) {
	w.mu.Lock()
	w.shortcut = display
	win := w.window
	w.mu.Unlock()
	if win != nil {
		win.Invalidate()
	}
}

// SetPinnedState updates the pin button's displayed state.
func (w *GioWindow) SetPinnedState(pinned bool) {
	w.mu.Lock()
	w.pinned = pinned
	win := w.window
	w.mu.Unlock()
	if win != nil {
		win.Invalidate()
	}
}

// Show displays the panel window (non-blocking). Showing an already visible
// window is a no-op apart from a redraw.
func (w *GioWindow) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		if w.window != nil {
			w.window.Invalidate()
		}
		return
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	go w.runEventLoop(w.stopCh, w.doneCh)
	go w.watchFocus(w.stopCh)
}

// Hide closes the panel window.
func (w *GioWindow) Hide() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}

	// Wait for the event loop to wind down so a fast re-Show does not race
	// window creation.
	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

// Visible returns true if the window is currently shown.
func (w *GioWindow) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Move positions the window at the given screen coordinates, in pixels.
// Right after Show the native window may not exist yet, so the placement is
// retried briefly until the window manager knows about it.
func (w *GioWindow) Move(x, y int) {
	go func() {
		if !waitForWindow() {
			return
		}
		moveWindow(windowTitle, x, y)
	}()
}

// Focus requests input focus for the window.
func (w *GioWindow) Focus() {
	go func() {
		if !waitForWindow() {
			return
		}
		activateWindow(windowTitle)
	}()
}

// waitForWindow polls until the native window is mapped, giving up after two
// seconds. Returns false on platforms without window lookup support.
func waitForWindow() bool {
	for i := 0; i < 20; i++ {
		if findWindowID(windowTitle) != "" {
			return true
		}
		time.Sleep(100 * time.Millisecond)
	}
	return false
}

// Size returns the window's outer size in pixels. Before the first frame it
// derives the size from the configured logical size and the last known scale.
func (w *GioWindow) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lastSize.X > 0 && w.lastSize.Y > 0 {
		return w.lastSize.X, w.lastSize.Y
	}
	scale := w.lastScale
	if scale <= 0 {
		scale = 1
	}
	return int(float64(w.width) * scale), int(float64(w.height) * scale)
}

// Scale returns pixels per logical unit, defaulting to 1 before the first
// frame.
func (w *GioWindow) Scale() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lastScale <= 0 {
		return 1
	}
	return w.lastScale
}

func (w *GioWindow) runEventLoop(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	win := new(app.Window)
	win.Option(
		app.Title(windowTitle),
		app.Size(unit.Dp(w.width), unit.Dp(w.height)),
		app.MinSize(unit.Dp(w.width), unit.Dp(w.height)),
		app.Decorated(false), // Borderless
	)

	w.mu.Lock()
	w.window = win
	w.mu.Unlock()

	// Close the window once Hide fires.
	go func() {
		<-stopCh
		win.Perform(system.ActionClose)
	}()

	var ops op.Ops
	firstFrame := true

	for {
		switch e := win.Event().(type) {
		case app.DestroyEvent:
			w.teardown()
			return

		case app.FrameEvent:
			w.mu.Lock()
			w.lastScale = float64(e.Metric.PxPerDp)
			resized := !firstFrame && e.Size != w.lastSize
			w.lastSize = e.Size
			onResize := w.onResize
			w.mu.Unlock()
			firstFrame = false

			if resized && onResize != nil {
				onResize(e.Size.X, e.Size.Y)
			}

			gtx := app.NewContext(&ops, e)
			w.draw(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// teardown clears window state once the native window is gone. The destroy
// may be externally initiated (window-manager close rather than Hide), so the
// stop channel is closed here too, ending the focus watcher.
func (w *GioWindow) teardown() {
	w.mu.Lock()
	w.running = false
	w.window = nil
	w.lastSize = image.Point{}
	stopCh := w.stopCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}
}

// watchFocus reports losses of input focus for as long as the window is
// visible.
func (w *GioWindow) watchFocus(stopCh chan struct{}) {
	// Let the window appear and take focus first.
	select {
	case <-stopCh:
		return
	case <-time.After(500 * time.Millisecond):
	}

	ticker := time.NewTicker(300 * time.Millisecond)
	defer ticker.Stop()

	runFocusWatch(stopCh, ticker.C,
		func() string { return findWindowID(windowTitle) },
		activeWindowID,
		func() {
			w.mu.Lock()
			onFocusLost := w.onFocusLost
			w.mu.Unlock()
			if onFocusLost != nil {
				onFocusLost()
			}
		})
}

// runFocusWatch fires onLoss once per focus loss until stop closes. After a
// loss it waits for focus to return before arming the next report, so a
// pinned panel that ignores the first loss still auto-hides after it is
// unpinned.
func runFocusWatch(stop <-chan struct{}, tick <-chan time.Time, ownID, activeID func() string, onLoss func()) {
	armed := true
	for {
		select {
		case <-stop:
			return
		case <-tick:
			own := ownID()
			active := activeID()
			if own == "" || active == "" {
				continue
			}
			if own == active {
				armed = true
				continue
			}
			if armed {
				armed = false
				onLoss()
			}
		}
	}
}

var (
	panelBG      = color.NRGBA{R: 30, G: 30, B: 34, A: 245}
	panelText    = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	panelTextDim = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	panelAccent  = color.NRGBA{R: 88, G: 166, B: 255, A: 255}
)

func (w *GioWindow) draw(gtx layout.Context) {
	// ESC hides the panel.
	for {
		event, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := event.(key.Event); ok && e.State == key.Press {
			go w.Hide()
			return
		}
	}

	w.mu.Lock()
	shortcut := w.shortcut
	pinned := w.pinned
	onPinToggle := w.onPinToggle
	w.mu.Unlock()

	if w.pinBtn.Clicked(gtx) {
		pinned = !pinned
		w.mu.Lock()
		w.pinned = pinned
		w.mu.Unlock()
		if onPinToggle != nil {
			go onPinToggle(pinned)
		}
	}

	paint.FillShape(gtx.Ops, panelBG, clip.Rect{Max: gtx.Constraints.Max}.Op())

	layout.UniformInset(unit.Dp(14)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				th.Palette.Fg = panelText
				lbl := material.Label(th, unit.Sp(16), windowTitle)
				lbl.Font.Weight = font.Medium
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				th.Palette.Fg = panelAccent
				return material.Label(th, unit.Sp(22), shortcut).Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				text := "Pin"
				if pinned {
					text = "Unpin"
				}
				return material.Button(th, &w.pinBtn, text).Layout(gtx)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				th.Palette.Fg = panelTextDim
				return material.Label(th, unit.Sp(12), "Esc hides the panel").Layout(gtx)
			}),
		)
	})
}
