package hotkey

import (
	"fmt"
	"log"

	"golang.design/x/hotkey"
)

// NativeBackend registers shortcuts through golang.design/x/hotkey. It works
// on Windows, macOS, and X11 on Linux. It does NOT work on Wayland.
type NativeBackend struct {
	displayServer DisplayServer
}

// NewNativeBackend creates a backend for the given display server.
func NewNativeBackend(ds DisplayServer) *NativeBackend {
	return &NativeBackend{displayServer: ds}
}

// Name returns the name of this backend.
func (b *NativeBackend) Name() string {
	return "native (golang.design/x/hotkey)"
}

// IsAvailable checks if this backend can be used on the current system.
func (b *NativeBackend) IsAvailable() bool {
	switch b.displayServer {
	case DisplayServerWindows, DisplayServerX11:
		return true
	case DisplayServerWayland:
		log.Println("Native backend: not available on Wayland")
		return false
	default:
		log.Println("Native backend: unknown display server, assuming unavailable")
		return false
	}
}

// Register claims the combination with the OS and starts the event converter
// for it.
func (b *NativeBackend) Register(mods Modifier, key hotkey.Key) (Registration, error) {
	hk := hotkey.New(expandModifiers(mods), key)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("native backend register: %w", err)
	}

	reg := &nativeRegistration{
		hk:        hk,
		keydownCh: make(chan struct{}),
		stopCh:    make(chan struct{}),
	}
	reg.startEventConverter()
	return reg, nil
}

// nativeRegistration wraps a *hotkey.Hotkey behind the Registration
// interface.
type nativeRegistration struct {
	hk        *hotkey.Hotkey
	keydownCh chan struct{}
	stopCh    chan struct{}
}

func (r *nativeRegistration) Keydown() <-chan struct{} {
	return r.keydownCh
}

// startEventConverter converts the library's event channel into the plain
// struct{} channel of the Registration interface.
func (r *nativeRegistration) startEventConverter() {
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("Recovered from panic in shortcut event converter: %v", rec)
			}
		}()

		for {
			select {
			case <-r.stopCh:
				close(r.keydownCh)
				return
			case <-r.hk.Keydown():
				select {
				case r.keydownCh <- struct{}{}:
				case <-r.stopCh:
					close(r.keydownCh)
					return
				}
			}
		}
	}()
}

// Close unregisters the shortcut and stops the converter goroutine.
func (r *nativeRegistration) Close() error {
	close(r.stopCh)
	if err := r.hk.Unregister(); err != nil {
		return fmt.Errorf("native backend unregister: %w", err)
	}
	return nil
}
