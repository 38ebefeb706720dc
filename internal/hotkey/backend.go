package hotkey

import (
	"errors"

	"golang.design/x/hotkey"
)

// ErrBackendNotAvailable is returned when a backend cannot be used on the
// current system.
var ErrBackendNotAvailable = errors.New("backend not available on this system")

// ErrInvalidKey is returned when a shortcut names a key that is not in the
// key table. Nothing is registered or unregistered in that case.
var ErrInvalidKey = errors.New("unsupported key")

// ErrRegistrationFailed is returned when the platform refuses a trigger
// registration, e.g. because another process already claimed the combination.
var ErrRegistrationFailed = errors.New("shortcut registration failed")

// Backend abstracts the platform global-shortcut subsystem. It registers one
// trigger descriptor at a time and hands back a Registration for it; the
// Manager above it enforces the at-most-one-active invariant.
type Backend interface {
	// Register claims the given modifier set and key with the platform.
	Register(mods Modifier, key hotkey.Key) (Registration, error)

	// Name returns a human-readable name for this backend (for logging).
	Name() string

	// IsAvailable returns true if this backend can be used on the current
	// system.
	IsAvailable() bool
}

// Registration is an active trigger registration. Keydown delivers one value
// per press; Close unregisters the trigger and closes the channel.
type Registration interface {
	Keydown() <-chan struct{}
	Close() error
}
