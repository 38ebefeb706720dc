package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Defaults used when no valid config file exists. These match the panel's
// compiled-in window size and the Alt+M shortcut.
const (
	DefaultKey    = "M"
	DefaultWidth  = 280.0
	DefaultHeight = 300.0

	// FileName is the fixed name of the preference file inside the
	// per-application config directory.
	FileName = "config.json"

	// AppDirName is the directory under the user config dir that holds the
	// preference file.
	AppDirName = "hover-panel"
)

// DefaultModifiers returns the default shortcut modifier list.
func DefaultModifiers() []string {
	return []string{"Alt"}
}

// Preferences is the persisted preference record. It is always read and
// rewritten wholesale; there are no partial-field updates at the storage
// layer.
type Preferences struct {
	ShortcutModifiers []string `json:"shortcut_modifiers"`
	ShortcutKey       string   `json:"shortcut_key"`
	WindowWidth       float64  `json:"window_width"`
	WindowHeight      float64  `json:"window_height"`
}

// Default returns the hard-coded default preference record.
func Default() Preferences {
	return Preferences{
		ShortcutModifiers: DefaultModifiers(),
		ShortcutKey:       DefaultKey,
		WindowWidth:       DefaultWidth,
		WindowHeight:      DefaultHeight,
	}
}

// Store loads and saves the preference record at a single file path.
// Persistence is best-effort: a missing or corrupt file loads as defaults and
// a failed write is logged and swallowed. The in-memory state of the process
// stays authoritative for the session either way.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store for the given file path. An empty path is allowed
// and turns Load into a defaults-only source and Save into a no-op.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the preference file path inside the platform's
// per-application config directory, or "" if that directory cannot be
// determined.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Could not determine user config dir: %v. Preferences will not persist.", err)
		return ""
	}
	return filepath.Join(base, AppDirName, FileName)
}

// Path returns the file path this store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the preference record. Any failure (unset path, missing file,
// unreadable content, parse error) yields the default record; first run is
// not an error condition.
func (s *Store) Load() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() Preferences {
	if s.path == "" {
		return Default()
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Default()
	}

	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Preference file %s is not valid JSON (%v), falling back to defaults.", s.path, err)
		return Default()
	}
	return prefs
}

// Save writes the full record, creating the parent directory if needed.
// Failures are logged and swallowed.
func (s *Store) Save(prefs Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(prefs)
}

func (s *Store) save(prefs Preferences) {
	if s.path == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		log.Printf("Could not create config directory for %s: %v", s.path, err)
		return
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		log.Printf("Could not serialize preferences: %v", err)
		return
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		log.Printf("Could not write preference file %s: %v", s.path, err)
	}
}

// SetShortcut persists a new shortcut, leaving the window size fields as they
// are on disk.
func (s *Store) SetShortcut(modifiers []string, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs := s.load()
	prefs.ShortcutModifiers = append([]string(nil), modifiers...)
	prefs.ShortcutKey = key
	s.save(prefs)
}

// SetWindowSize persists a new logical window size, leaving the shortcut
// fields as they are on disk.
func (s *Store) SetWindowSize(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs := s.load()
	prefs.WindowWidth = width
	prefs.WindowHeight = height
	s.save(prefs)
}
