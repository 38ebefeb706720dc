package app

import (
	"errors"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/ncruces/zenity"

	"github.com/TanaroSch/hover-panel/internal/config"
	"github.com/TanaroSch/hover-panel/internal/hotkey"
	"github.com/TanaroSch/hover-panel/internal/panel"
	"github.com/TanaroSch/hover-panel/internal/resources"
	"github.com/TanaroSch/hover-panel/internal/ui"
)

// Application represents the main application
type Application struct {
	store          *config.Store
	version        string
	bindingManager *hotkey.Manager
	controller     *panel.Controller
	window         *panel.GioWindow
	systrayManager *ui.SystrayManager
	iconData       []byte
}

// New creates a new application instance
func New(store *config.Store, version string) *Application {
	app := &Application{
		store:   store,
		version: version,
	}

	var err error
	app.iconData, err = resources.GetIcon()
	if err != nil {
		log.Printf("Warning: Failed to load embedded icon: %v", err)
	}

	prefs := store.Load()

	app.window = panel.NewGioWindow(int(prefs.WindowWidth), int(prefs.WindowHeight))
	app.controller = panel.NewController(app.window, panel.PrimaryDisplay{}, store)

	backend := hotkey.SelectBackend()
	if backend != nil {
		log.Printf("Selected hotkey backend: %s", backend.Name())
	}
	app.bindingManager = hotkey.NewManager(store, backend, app.onHotkeyTriggered)

	initialLabel := hotkey.FormatDisplay(prefs.ShortcutModifiers, prefs.ShortcutKey)
	app.systrayManager = ui.NewSystrayManager(
		version,
		app.iconData,
		initialLabel,
		app.onShowPanel,
		app.onTogglePinned,
		app.onChangeShortcut,
		app.onCopyShortcut,
		app.onOpenConfigFile,
		app.onQuit,
	)

	app.window.SetShortcutLabel(initialLabel)
	app.window.OnResize(app.controller.HandleResize)
	app.window.OnFocusLost(func() { app.controller.HandleFocusChange(false) })
	app.window.OnPinToggle(func(pinned bool) {
		app.controller.SetPinned(pinned)
		app.systrayManager.UpdatePinned(pinned)
	})

	return app
}

// Run starts the application
func (a *Application) Run() {
	if err := a.bindingManager.Start(); err != nil {
		log.Printf("Warning: Failed to register shortcut: %v", err)
		ui.ShowAdminNotification(ui.LevelWarn, "Shortcut Registration Issue",
			"The toggle shortcut could not be registered. Use the tray menu to pick a different one.")
	}
	// Start the systray manager (blocking call)
	a.systrayManager.Run()
}

// onHotkeyTriggered is called when the toggle shortcut is pressed
func (a *Application) onHotkeyTriggered() {
	a.controller.Toggle()
}

// onShowPanel is called when the Show Panel menu item is clicked
func (a *Application) onShowPanel() {
	a.controller.Show()
}

// onTogglePinned flips the pinned state and returns the new value for the
// tray checkmark.
func (a *Application) onTogglePinned() bool {
	pinned := !a.controller.Pinned()
	a.controller.SetPinned(pinned)
	a.window.SetPinnedState(pinned)
	return pinned
}

// SetPinned sets the pinned state directly (frontend surface).
func (a *Application) SetPinned(pinned bool) {
	a.controller.SetPinned(pinned)
	a.window.SetPinnedState(pinned)
	if a.systrayManager != nil {
		a.systrayManager.UpdatePinned(pinned)
	}
}

// GetPinned reports whether the panel is currently pinned.
func (a *Application) GetPinned() bool {
	return a.controller.Pinned()
}

// GetShortcut returns the active shortcut as modifier names and key.
func (a *Application) GetShortcut() ([]string, string) {
	return a.bindingManager.Current()
}

// UpdateShortcut rebinds the toggle shortcut and refreshes the tray and
// panel labels. Returns the display string for the new shortcut.
func (a *Application) UpdateShortcut(modifiers []string, key string) (string, error) {
	display, err := a.bindingManager.Replace(modifiers, key)
	if err != nil {
		return "", err
	}
	if a.systrayManager != nil {
		a.systrayManager.UpdateShortcutLabel(display)
	}
	a.window.SetShortcutLabel(display)
	return display, nil
}

// SaveWindowSize persists a logical window size (frontend surface).
func (a *Application) SaveWindowSize(width, height float64) {
	a.controller.SaveWindowSize(width, height)
}

// onChangeShortcut is called when the Change Shortcut menu item is clicked
func (a *Application) onChangeShortcut() {
	current, key := a.bindingManager.Current()
	currentStr := strings.ToLower(strings.Join(append(append([]string{}, current...), key), "+"))

	entry, err := zenity.Entry(
		"Enter the new toggle shortcut\n(e.g., alt+m, ctrl+shift+p)",
		zenity.Title("Hover Panel - Change Shortcut"),
		zenity.EntryText(currentStr),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			log.Println("Change Shortcut canceled by user.")
		} else {
			log.Printf("Error getting shortcut via zenity: %v", err)
			ui.ShowAdminNotification(ui.LevelWarn, "Input Error", "Failed to get shortcut input.")
		}
		return
	}

	modifiers, newKey, ok := parseShortcutEntry(entry)
	if !ok {
		ui.ShowAdminNotification(ui.LevelWarn, "Invalid Shortcut",
			"Could not parse the entered shortcut. Use the form modifier+key, e.g. alt+m.")
		return
	}

	display, err := a.UpdateShortcut(modifiers, newKey)
	if err != nil {
		switch {
		case errors.Is(err, hotkey.ErrInvalidKey):
			log.Printf("Rejected shortcut key %q: %v", newKey, err)
			ui.ShowAdminNotification(ui.LevelWarn, "Unsupported Key",
				"The key '"+newKey+"' is not supported for global shortcuts.")
		default:
			log.Printf("Failed to rebind shortcut: %v", err)
			ui.ShowAdminNotification(ui.LevelWarn, "Shortcut Registration Issue",
				"The shortcut could not be registered. It may be claimed by another application.")
		}
		return
	}

	log.Printf("Shortcut updated to %s", display)
	ui.ShowAdminNotification(ui.LevelInfo, "Shortcut Updated", "Toggle shortcut is now "+display)
}

// parseShortcutEntry splits text like "ctrl+shift+p" into modifier names and
// a key name. The last segment is the key; everything before it is a
// modifier. Empty segments are skipped.
func parseShortcutEntry(entry string) (modifiers []string, key string, ok bool) {
	var parts []string
	for _, p := range strings.Split(entry, "+") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil, "", false
	}
	key = parts[len(parts)-1]
	if len(parts) > 1 {
		modifiers = parts[:len(parts)-1]
	}
	return modifiers, key, true
}

// onCopyShortcut is called when the Copy Shortcut menu item is clicked
func (a *Application) onCopyShortcut() {
	modifiers, key := a.bindingManager.Current()
	display := hotkey.FormatDisplay(modifiers, key)
	if err := clipboard.WriteAll(display); err != nil {
		log.Printf("Error copying shortcut to clipboard: %v", err)
		ui.ShowAdminNotification(ui.LevelWarn, "Clipboard Error", "Could not copy the shortcut to the clipboard.")
		return
	}
	ui.ShowAdminNotification(ui.LevelInfo, "Shortcut Copied", display+" copied to clipboard.")
}

// onOpenConfigFile is called when the Open Config File menu item is clicked
func (a *Application) onOpenConfigFile() {
	path := a.store.Path()
	if path == "" {
		ui.ShowAdminNotification(ui.LevelWarn, "Config Unavailable", "No config file path is set.")
		return
	}
	if err := ui.OpenFileInDefaultApp(path); err != nil {
		log.Printf("Error opening config file: %v", err)
		ui.ShowAdminNotification(ui.LevelWarn, "Open Failed", "Could not open "+path)
	}
}

// onQuit is called when the quit menu item is clicked
func (a *Application) onQuit() {
	log.Println("Shutting down...")
	a.bindingManager.Close()
	a.controller.Hide()
}
