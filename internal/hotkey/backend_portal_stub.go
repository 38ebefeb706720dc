//go:build !linux

package hotkey

import "golang.design/x/hotkey"

// PortalBackend is Linux-only; this stub keeps the package compiling on
// Windows and macOS.
type PortalBackend struct{}

// NewPortalBackend creates a stub that is never selected off Linux.
func NewPortalBackend() *PortalBackend {
	return &PortalBackend{}
}

// Name returns the name of this backend.
func (b *PortalBackend) Name() string {
	return "XDG Desktop Portal (Linux only)"
}

// IsAvailable always returns false on non-Linux platforms.
func (b *PortalBackend) IsAvailable() bool {
	return false
}

// Register always fails on non-Linux platforms.
func (b *PortalBackend) Register(mods Modifier, key hotkey.Key) (Registration, error) {
	return nil, ErrBackendNotAvailable
}
