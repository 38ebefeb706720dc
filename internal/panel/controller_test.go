package panel

import (
	"path/filepath"
	"testing"

	"github.com/TanaroSch/hover-panel/internal/config"
)

type fakeWindow struct {
	visible bool
	width   int
	height  int
	scale   float64

	movedTo   []int
	moveCalls int
	focused   bool
}

func (w *fakeWindow) Show()    { w.visible = true }
func (w *fakeWindow) Hide()    { w.visible = false }
func (w *fakeWindow) Focus()   { w.focused = true }
func (w *fakeWindow) Visible() bool { return w.visible }
func (w *fakeWindow) Move(x, y int) {
	w.movedTo = []int{x, y}
	w.moveCalls++
}
func (w *fakeWindow) Size() (int, int) { return w.width, w.height }
func (w *fakeWindow) Scale() float64   { return w.scale }

type fakeDisplay struct {
	width  int
	height int
}

func (d fakeDisplay) Size() (int, int) { return d.width, d.height }

func newTestController(t *testing.T, win *fakeWindow, disp fakeDisplay) *Controller {
	t.Helper()
	store := config.NewStore(filepath.Join(t.TempDir(), "config.json"))
	return NewController(win, disp, store)
}

func TestToggle(t *testing.T) {
	win := &fakeWindow{width: 280, height: 300, scale: 1}
	c := newTestController(t, win, fakeDisplay{width: 1920, height: 1080})

	c.Toggle()
	if !win.visible {
		t.Fatal("first toggle did not show the panel")
	}
	c.Toggle()
	if win.visible {
		t.Fatal("second toggle did not hide the panel")
	}
	c.Toggle()
	if !win.visible {
		t.Fatal("third toggle did not show the panel again")
	}
}

func TestShowAnchorsTopRight(t *testing.T) {
	win := &fakeWindow{width: 280, height: 300, scale: 1}
	c := newTestController(t, win, fakeDisplay{width: 1920, height: 1080})

	c.Show()

	// x = screen - window - margin, y = top margin.
	want := []int{1920 - 280 - 10, 30}
	if win.movedTo == nil || win.movedTo[0] != want[0] || win.movedTo[1] != want[1] {
		t.Errorf("moved to %v, want %v", win.movedTo, want)
	}
	if !win.visible || !win.focused {
		t.Errorf("visible=%v focused=%v, want both true", win.visible, win.focused)
	}
}

func TestShowScalesAnchorOffsets(t *testing.T) {
	// 2x display: window reports pixel size, offsets scale up.
	win := &fakeWindow{width: 560, height: 600, scale: 2}
	c := newTestController(t, win, fakeDisplay{width: 3840, height: 2160})

	c.Show()

	want := []int{3840 - 560 - 20, 60}
	if win.movedTo == nil || win.movedTo[0] != want[0] || win.movedTo[1] != want[1] {
		t.Errorf("moved to %v, want %v", win.movedTo, want)
	}
}

func TestShowWhileVisibleRepositions(t *testing.T) {
	win := &fakeWindow{width: 280, height: 300, scale: 1}
	c := newTestController(t, win, fakeDisplay{width: 1920, height: 1080})

	c.Show()
	c.Show()

	if win.moveCalls != 2 {
		t.Errorf("moveCalls = %d, want 2", win.moveCalls)
	}
	if !win.visible {
		t.Error("panel not visible after repeated Show")
	}
}

func TestShowUnknownDisplaySkipsMove(t *testing.T) {
	win := &fakeWindow{width: 280, height: 300, scale: 1}
	c := newTestController(t, win, fakeDisplay{})

	c.Show()

	if win.moveCalls != 0 {
		t.Errorf("moveCalls = %d, want 0 when display size is unknown", win.moveCalls)
	}
	if !win.visible {
		t.Error("panel must still show when display size is unknown")
	}
}

func TestFocusLossHidesUnpinned(t *testing.T) {
	win := &fakeWindow{width: 280, height: 300, scale: 1}
	c := newTestController(t, win, fakeDisplay{width: 1920, height: 1080})

	c.Show()
	c.HandleFocusChange(false)
	if win.visible {
		t.Error("unpinned panel stayed visible after focus loss")
	}
}

func TestFocusLossKeepsPinned(t *testing.T) {
	win := &fakeWindow{width: 280, height: 300, scale: 1}
	c := newTestController(t, win, fakeDisplay{width: 1920, height: 1080})

	c.Show()
	c.SetPinned(true)
	c.HandleFocusChange(false)
	if !win.visible {
		t.Error("pinned panel hid on focus loss")
	}

	// Unpinning re-enables auto-hide.
	c.SetPinned(false)
	c.HandleFocusChange(false)
	if win.visible {
		t.Error("panel stayed visible after unpinning and focus loss")
	}
}

func TestFocusGainIsIgnored(t *testing.T) {
	win := &fakeWindow{width: 280, height: 300, scale: 1}
	c := newTestController(t, win, fakeDisplay{width: 1920, height: 1080})

	c.Show()
	c.HandleFocusChange(true)
	if !win.visible {
		t.Error("focus gain must not hide the panel")
	}
}

func TestHandleResizePersistsLogicalSize(t *testing.T) {
	win := &fakeWindow{width: 280, height: 300, scale: 2}
	store := config.NewStore(filepath.Join(t.TempDir(), "config.json"))
	c := NewController(win, fakeDisplay{width: 3840, height: 2160}, store)

	c.HandleResize(700, 900)

	prefs := store.Load()
	if prefs.WindowWidth != 350 || prefs.WindowHeight != 450 {
		t.Errorf("persisted size = %vx%v, want 350x450", prefs.WindowWidth, prefs.WindowHeight)
	}
	// Shortcut fields keep their defaults.
	if prefs.ShortcutKey != config.DefaultKey {
		t.Errorf("shortcut key = %q, want default", prefs.ShortcutKey)
	}
}

func TestHandleResizeZeroScale(t *testing.T) {
	win := &fakeWindow{width: 280, height: 300, scale: 0}
	store := config.NewStore(filepath.Join(t.TempDir(), "config.json"))
	c := NewController(win, fakeDisplay{width: 1920, height: 1080}, store)

	c.HandleResize(320, 240)

	prefs := store.Load()
	if prefs.WindowWidth != 320 || prefs.WindowHeight != 240 {
		t.Errorf("persisted size = %vx%v, want 320x240 at fallback scale 1", prefs.WindowWidth, prefs.WindowHeight)
	}
}

func TestSaveWindowSize(t *testing.T) {
	win := &fakeWindow{width: 280, height: 300, scale: 1}
	store := config.NewStore(filepath.Join(t.TempDir(), "config.json"))
	c := NewController(win, fakeDisplay{width: 1920, height: 1080}, store)

	c.SaveWindowSize(333.5, 444.25)

	prefs := store.Load()
	if prefs.WindowWidth != 333.5 || prefs.WindowHeight != 444.25 {
		t.Errorf("persisted size = %vx%v, want 333.5x444.25", prefs.WindowWidth, prefs.WindowHeight)
	}
}
