package hotkey

import (
	"fmt"
	"log"
	"sync"

	"github.com/TanaroSch/hover-panel/internal/config"
)

// Manager owns the single active trigger registration. Exactly one shortcut
// may be registered with the platform at any time; Replace swaps it
// atomically from the caller's point of view. The mutex only guards the
// in-memory binding state and is never held across a platform call, since
// those can synchronously invoke callbacks.
type Manager struct {
	mu        sync.Mutex
	active    Registration
	modifiers []string
	key       string

	backend   Backend
	store     *config.Store
	onTrigger func()
}

// NewManager creates a shortcut manager. backend may be nil, in which case
// registration attempts fail and the application simply runs without a
// working hot-key. onTrigger is invoked on every press of whatever shortcut
// is currently registered.
func NewManager(store *config.Store, backend Backend, onTrigger func()) *Manager {
	return &Manager{
		backend:   backend,
		store:     store,
		onTrigger: onTrigger,
	}
}

// Start registers the persisted shortcut. An unrecognized persisted key is
// silent degradation: the panel still opens, just without a hot-key, until
// the user rebinds. A platform refusal is reported so the UI can warn.
func (m *Manager) Start() error {
	prefs := m.store.Load()

	key, ok := ParseKey(prefs.ShortcutKey)
	if !ok {
		log.Printf("Configured shortcut key %q is not recognized; shortcut inactive until rebound.", prefs.ShortcutKey)
		return nil
	}

	if m.backend == nil {
		log.Println("No shortcut backend available; shortcut inactive.")
		return nil
	}

	reg, err := m.backend.Register(ParseModifiers(prefs.ShortcutModifiers), key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	m.mu.Lock()
	m.active = reg
	m.modifiers = append([]string(nil), prefs.ShortcutModifiers...)
	m.key = prefs.ShortcutKey
	m.mu.Unlock()

	go m.listen(reg)

	log.Printf("Registered shortcut %s", FormatDisplay(prefs.ShortcutModifiers, prefs.ShortcutKey))
	return nil
}

// Replace swaps the active shortcut for a new one and persists it.
//
// Order matters here: the key name is validated before any state is touched;
// the old registration is released with failures ignored (a stale
// registration is superseded, not fatal); and if the platform rejects the new
// combination the binding is left EMPTY rather than rolled back, so the
// caller can retry or pick another combination. On success the display
// string of the new shortcut is returned.
func (m *Manager) Replace(modifiers []string, key string) (string, error) {
	code, ok := ParseKey(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}

	m.mu.Lock()
	old := m.active
	m.active = nil
	m.modifiers = nil
	m.key = ""
	m.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			log.Printf("Stale shortcut could not be unregistered (superseding anyway): %v", err)
		}
	}

	if m.backend == nil {
		return "", fmt.Errorf("%w: no backend available", ErrRegistrationFailed)
	}

	reg, err := m.backend.Register(ParseModifiers(modifiers), code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	m.mu.Lock()
	m.active = reg
	m.modifiers = append([]string(nil), modifiers...)
	m.key = key
	m.mu.Unlock()

	go m.listen(reg)

	m.store.SetShortcut(modifiers, key)

	display := FormatDisplay(modifiers, key)
	log.Printf("Shortcut replaced, now %s", display)
	return display, nil
}

// Current returns the currently registered shortcut, or the compiled-in
// default pair when nothing is registered.
func (m *Manager) Current() ([]string, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.key == "" {
		return config.DefaultModifiers(), config.DefaultKey
	}
	return append([]string(nil), m.modifiers...), m.key
}

// Close releases the active registration, if any. Used on quit.
func (m *Manager) Close() {
	m.mu.Lock()
	old := m.active
	m.active = nil
	m.modifiers = nil
	m.key = ""
	m.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			log.Printf("Error unregistering shortcut on shutdown: %v", err)
		}
	}
}

// listen forwards presses of one registration to the trigger callback. It
// ends when the registration's channel is closed, so a superseded shortcut
// stops firing as soon as it is unregistered.
func (m *Manager) listen(reg Registration) {
	for range reg.Keydown() {
		if m.onTrigger != nil {
			m.onTrigger()
		}
	}
}
