//go:build linux

package hotkey

import (
	"fmt"
	"log"

	"golang.design/x/hotkey"
)

// PortalBackend targets the org.freedesktop.portal.GlobalShortcuts D-Bus
// interface so the toggle shortcut can work on Wayland compositors. It is
// currently a stub: IsAvailable reports false and the panel runs without a
// shortcut on Wayland.
//
// TODO: implement over github.com/godbus/dbus/v5 — CreateSession,
// BindShortcuts (triggers the compositor's permission dialog), then map the
// Activated signal onto Registration.Keydown.
type PortalBackend struct{}

// NewPortalBackend creates the portal backend.
func NewPortalBackend() *PortalBackend {
	return &PortalBackend{}
}

// Name returns the name of this backend.
func (b *PortalBackend) Name() string {
	return "XDG Desktop Portal (Wayland)"
}

// IsAvailable reports whether the portal route can be used. Always false
// until the session handshake is implemented.
func (b *PortalBackend) IsAvailable() bool {
	if !HasPortalSupport() {
		return false
	}
	log.Println("Portal backend: GlobalShortcuts support not implemented yet")
	return false
}

// Register is not implemented yet.
func (b *PortalBackend) Register(mods Modifier, key hotkey.Key) (Registration, error) {
	return nil, fmt.Errorf("portal backend: %w", ErrBackendNotAvailable)
}
