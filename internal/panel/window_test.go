package panel

import (
	"sync"
	"testing"
	"time"
)

// fakeFocus drives runFocusWatch deterministically: sending on tick blocks
// until the watcher consumed the previous tick, so after a send returns the
// prior tick is fully processed.
type fakeFocus struct {
	mu     sync.Mutex
	own    string
	active string
	losses int
}

func (p *fakeFocus) ownID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.own
}

func (p *fakeFocus) activeID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *fakeFocus) onLoss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.losses++
}

func (p *fakeFocus) setActive(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = id
}

func (p *fakeFocus) lossCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.losses
}

func runWatch(t *testing.T, fake *fakeFocus) (tick chan time.Time, stop chan struct{}) {
	t.Helper()
	tick = make(chan time.Time)
	stop = make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		runFocusWatch(stop, tick, fake.ownID, fake.activeID, fake.onLoss)
	}()
	t.Cleanup(func() {
		close(stop)
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("focus watcher did not stop")
		}
	})
	return tick, stop
}

func TestFocusWatchReportsEveryLoss(t *testing.T) {
	fake := &fakeFocus{own: "0x100", active: "0x100"}
	tick, _ := runWatch(t, fake)

	// Focused: no report.
	tick <- time.Time{}

	// Another window takes focus: one report.
	fake.setActive("0x200")
	tick <- time.Time{}
	tick <- time.Time{} // flush so the first tick is fully processed
	if got := fake.lossCount(); got != 1 {
		t.Fatalf("losses after first loss = %d, want 1", got)
	}

	// Focus returns, then is lost again: a second report. This is the
	// pin-then-unpin path; the watcher must outlive the first loss.
	fake.setActive("0x100")
	tick <- time.Time{}
	tick <- time.Time{} // flush so the regain is observed before the next change
	fake.setActive("0x200")
	tick <- time.Time{}
	tick <- time.Time{}
	if got := fake.lossCount(); got != 2 {
		t.Fatalf("losses after regain and second loss = %d, want 2", got)
	}
}

func TestFocusWatchDoesNotRepeatWhileUnfocused(t *testing.T) {
	fake := &fakeFocus{own: "0x100", active: "0x200"}
	tick, _ := runWatch(t, fake)

	for i := 0; i < 5; i++ {
		tick <- time.Time{}
	}
	tick <- time.Time{}
	if got := fake.lossCount(); got != 1 {
		t.Fatalf("losses over repeated unfocused ticks = %d, want 1", got)
	}
}

func TestFocusWatchSkipsUnknownIDs(t *testing.T) {
	fake := &fakeFocus{own: "", active: "0x200"}
	tick, _ := runWatch(t, fake)

	tick <- time.Time{}
	fake.mu.Lock()
	fake.own = "0x100"
	fake.active = ""
	fake.mu.Unlock()
	tick <- time.Time{}
	tick <- time.Time{}

	if got := fake.lossCount(); got != 0 {
		t.Fatalf("losses with unknown window ids = %d, want 0", got)
	}
}

func TestTeardownStopsWatcher(t *testing.T) {
	// External destroy (window-manager close) must end the focus watcher and
	// leave the window hidden.
	w := NewGioWindow(280, 300)
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	close(w.doneCh)
	stopCh := w.stopCh

	w.teardown()

	select {
	case <-stopCh:
	default:
		t.Fatal("teardown did not close the stop channel")
	}
	if w.Visible() {
		t.Error("window still visible after teardown")
	}

	// A Hide racing the external destroy must not double-close.
	w.Hide()
	// And teardown after Hide must not either.
	w.teardown()
}
