package ui

import (
	"fmt"
	"log"

	"github.com/getlantern/systray"
)

// SystrayManager handles the system tray icon and menu. Menu actions are
// forwarded to the application through callbacks; the manager itself holds no
// application state beyond what it needs to render titles.
type SystrayManager struct {
	version      string
	embeddedIcon []byte

	onShow           func()
	onTogglePinned   func() bool // returns the new pinned state
	onChangeShortcut func()
	onCopyShortcut   func()
	onOpenConfig     func()
	onQuit           func()

	miShow   *systray.MenuItem
	miPinned *systray.MenuItem

	// Shortcut display string for the Show Panel label, set before Run and
	// updated after every successful rebind.
	shortcutLabel string
}

// NewSystrayManager creates a new system tray manager.
func NewSystrayManager(
	version string,
	embeddedIcon []byte,
	shortcutLabel string,
	onShow func(),
	onTogglePinned func() bool,
	onChangeShortcut func(),
	onCopyShortcut func(),
	onOpenConfig func(),
	onQuit func(),
) *SystrayManager {
	return &SystrayManager{
		version:          version,
		embeddedIcon:     embeddedIcon,
		shortcutLabel:    shortcutLabel,
		onShow:           onShow,
		onTogglePinned:   onTogglePinned,
		onChangeShortcut: onChangeShortcut,
		onCopyShortcut:   onCopyShortcut,
		onOpenConfig:     onOpenConfig,
		onQuit:           onQuit,
	}
}

// Run initializes and starts the system tray. Blocks until Quit.
func (s *SystrayManager) Run() {
	systray.Run(s.onReady, s.onExit)
}

// UpdateShortcutLabel refreshes the Show Panel entry after a rebind.
func (s *SystrayManager) UpdateShortcutLabel(display string) {
	s.shortcutLabel = display
	if s.miShow != nil {
		s.miShow.SetTitle(fmt.Sprintf("Show Panel (%s)", display))
	}
}

// UpdatePinned refreshes the Pinned entry's checkmark. Called both from the
// tray toggle itself and when the pin button on the panel is used.
func (s *SystrayManager) UpdatePinned(pinned bool) {
	if s.miPinned == nil {
		return
	}
	if pinned {
		s.miPinned.SetTitle("✓ Pinned")
	} else {
		s.miPinned.SetTitle("  Pinned")
	}
}

// onReady is called by systray once the tray is ready.
func (s *SystrayManager) onReady() {
	title := fmt.Sprintf("Hover Panel %s", s.version)
	systray.SetTitle(title)
	systray.SetTooltip(title)
	if len(s.embeddedIcon) > 0 {
		systray.SetIcon(s.embeddedIcon)
	} else {
		log.Println("Warning: No embedded icon data to set for systray.")
	}

	miVersion := systray.AddMenuItem(fmt.Sprintf("Version: %s", s.version), "Hover Panel version")
	miVersion.Disable()
	systray.AddSeparator()

	s.miShow = systray.AddMenuItem(fmt.Sprintf("Show Panel (%s)", s.shortcutLabel), "Show the panel")
	s.miPinned = systray.AddMenuItem("  Pinned", "Keep the panel visible when it loses focus")
	systray.AddSeparator()

	miChangeShortcut := systray.AddMenuItem("Change Shortcut...", "Pick a new toggle shortcut, e.g. ctrl+shift+p")
	miCopyShortcut := systray.AddMenuItem("Copy Shortcut", "Copy the current shortcut to the clipboard")
	miOpenConfig := systray.AddMenuItem("Open Config File", "Open config.json in the default editor")
	systray.AddSeparator()

	miQuit := systray.AddMenuItem("Quit", "Exit the application")

	go func() {
		for range s.miShow.ClickedCh {
			log.Println("Show Panel menu item clicked.")
			if s.onShow != nil {
				s.onShow()
			}
		}
	}()
	go func() {
		for range s.miPinned.ClickedCh {
			log.Println("Pinned menu item clicked.")
			if s.onTogglePinned != nil {
				s.UpdatePinned(s.onTogglePinned())
			}
		}
	}()
	go func() {
		for range miChangeShortcut.ClickedCh {
			log.Println("Change Shortcut menu item clicked.")
			if s.onChangeShortcut != nil {
				s.onChangeShortcut()
			}
		}
	}()
	go func() {
		for range miCopyShortcut.ClickedCh {
			log.Println("Copy Shortcut menu item clicked.")
			if s.onCopyShortcut != nil {
				s.onCopyShortcut()
			}
		}
	}()
	go func() {
		for range miOpenConfig.ClickedCh {
			log.Println("Open Config File menu item clicked.")
			if s.onOpenConfig != nil {
				s.onOpenConfig()
			}
		}
	}()
	go func() {
		<-miQuit.ClickedCh
		log.Println("Quit menu item clicked.")
		if s.onQuit != nil {
			s.onQuit()
		}
		systray.Quit()
	}()

	log.Println("Systray ready and menu configured.")
}

// onExit is called when the systray is exiting.
func (s *SystrayManager) onExit() {
	log.Println("Systray exiting.")
}
