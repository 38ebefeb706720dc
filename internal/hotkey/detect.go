package hotkey

import (
	"log"
	"os"
	"runtime"
)

// DisplayServer represents the type of display server in use.
type DisplayServer int

const (
	DisplayServerUnknown DisplayServer = iota
	DisplayServerWindows
	DisplayServerX11
	DisplayServerWayland
)

func (ds DisplayServer) String() string {
	switch ds {
	case DisplayServerWindows:
		return "Windows"
	case DisplayServerX11:
		return "X11"
	case DisplayServerWayland:
		return "Wayland"
	default:
		return "Unknown"
	}
}

// DetectDisplayServer determines which display server is currently in use.
// Safe to call on any platform.
func DetectDisplayServer() DisplayServer {
	if runtime.GOOS == "windows" {
		return DisplayServerWindows
	}

	// Check Wayland first; it is the more specific signal.
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		log.Println("Detected display server: Wayland (WAYLAND_DISPLAY set)")
		return DisplayServerWayland
	}

	if os.Getenv("DISPLAY") != "" {
		log.Println("Detected display server: X11 (DISPLAY set)")
		return DisplayServerX11
	}

	// macOS uses its own windowing system; golang.design/x/hotkey supports
	// it through the same code path as X11 here.
	if runtime.GOOS == "darwin" {
		return DisplayServerX11
	}

	log.Println("Warning: Could not detect display server type")
	return DisplayServerUnknown
}

// HasPortalSupport checks whether the XDG Desktop Portal could be reachable,
// which is the prerequisite for global shortcuts on Wayland.
func HasPortalSupport() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		log.Println("D-Bus session bus not available (DBUS_SESSION_BUS_ADDRESS not set)")
		return false
	}
	return true
}

// SelectBackend chooses a shortcut backend for the current environment, or
// nil when global shortcuts cannot work here (the panel still opens; only the
// hot-key is inactive).
func SelectBackend() Backend {
	ds := DetectDisplayServer()

	switch ds {
	case DisplayServerWindows, DisplayServerX11:
		backend := NewNativeBackend(ds)
		if backend.IsAvailable() {
			log.Printf("Selected shortcut backend: %s for %s", backend.Name(), ds)
			return backend
		}
		log.Printf("Warning: native shortcut backend not available for %s", ds)
		return nil

	case DisplayServerWayland:
		portal := NewPortalBackend()
		if portal.IsAvailable() {
			log.Printf("Selected shortcut backend: %s", portal.Name())
			return portal
		}
		log.Println("Wayland session without a usable GlobalShortcuts portal; the toggle shortcut will be inactive.")
		return nil

	default:
		log.Println("Unknown display server; the toggle shortcut will be inactive.")
		return nil
	}
}
