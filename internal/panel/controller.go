// Package panel manages the single floating panel window: visibility,
// pinning, screen anchoring, and size persistence.
package panel

import (
	"log"
	"sync"

	"github.com/TanaroSch/hover-panel/internal/config"
)

// Anchor offsets in logical units; scaled by the display scale factor before
// use.
const (
	anchorMargin    = 10
	anchorTopMargin = 30
)

// Window is the managed panel window as the controller sees it. Sizes and
// positions are in physical pixels; Scale converts between pixels and logical
// units.
type Window interface {
	Show()
	Hide()
	Visible() bool
	Move(x, y int)
	Size() (width, height int)
	Scale() float64
	Focus()
}

// Display reports the primary display's size in physical pixels.
type Display interface {
	Size() (width, height int)
}

// Controller owns the pinned flag and the show/hide state transitions for
// the panel, and persists window geometry through the preference store.
type Controller struct {
	mu     sync.Mutex
	pinned bool

	win   Window
	disp  Display
	store *config.Store
}

// NewController creates a controller for the given window and display.
func NewController(win Window, disp Display, store *config.Store) *Controller {
	return &Controller{win: win, disp: disp, store: store}
}

// Toggle hides the panel if it is visible, otherwise shows it. The trigger
// handler calls this on every shortcut press.
func (c *Controller) Toggle() {
	if c.win.Visible() {
		c.win.Hide()
		return
	}
	c.Show()
}

// Show anchors the panel at the top-right corner of the primary display and
// makes it visible with input focus. Calling it while already visible just
// repositions.
func (c *Controller) Show() {
	screenW, _ := c.disp.Size()
	winW, _ := c.win.Size()
	scale := c.win.Scale()

	if screenW > 0 {
		margin := int(anchorMargin * scale)
		top := int(anchorTopMargin * scale)
		c.win.Move(screenW-winW-margin, top)
	} else {
		log.Println("Primary display size unknown; showing panel without repositioning.")
	}

	c.win.Show()
	c.win.Focus()
}

// Hide hides the panel.
func (c *Controller) Hide() {
	c.win.Hide()
}

// SetPinned sets the pinned flag. A pinned panel stays visible when it loses
// input focus.
func (c *Controller) SetPinned(pinned bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pinned = pinned
}

// Pinned returns the pinned flag.
func (c *Controller) Pinned() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pinned
}

// HandleFocusChange reacts to the window gaining or losing input focus.
// Focus loss hides the panel unless it is pinned.
func (c *Controller) HandleFocusChange(focused bool) {
	if focused {
		return
	}
	if c.Pinned() {
		return
	}
	c.win.Hide()
}

// HandleResize persists a new window size reported in physical pixels,
// converted to logical units. Resize events are human-rate, so every event
// results in a full write.
func (c *Controller) HandleResize(pxWidth, pxHeight int) {
	scale := c.win.Scale()
	if scale <= 0 {
		scale = 1
	}
	c.store.SetWindowSize(float64(pxWidth)/scale, float64(pxHeight)/scale)
}

// SaveWindowSize persists a logical window size directly. This is the
// explicit path for the front-end, bypassing native resize events.
func (c *Controller) SaveWindowSize(width, height float64) {
	c.store.SetWindowSize(width, height)
}
