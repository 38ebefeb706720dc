//go:build linux

package panel

import (
	"os/exec"
	"strconv"
	"strings"
)

// Window placement and focus queries go through xdotool on X11. Gio does not
// expose window positioning itself, and the panel only needs a handful of
// one-shot operations, so shelling out keeps this dependency-free. Every
// helper degrades to a no-op when xdotool is missing.

// findWindowID returns the X11 window id for the window with the given
// title, or "" if it cannot be found.
func findWindowID(title string) string {
	out, err := exec.Command("xdotool", "search", "--name", title).Output()
	if err != nil {
		return ""
	}
	ids := strings.Fields(string(out))
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

// moveWindow moves the window with the given title to (x, y) and asks the
// window manager to keep it above other windows.
func moveWindow(title string, x, y int) {
	id := findWindowID(title)
	if id == "" {
		return
	}

	exec.Command("xdotool", "windowmove", id, strconv.Itoa(x), strconv.Itoa(y)).Run()

	// Always-on-top via wmctrl, with an xprop fallback if it is not
	// installed.
	if err := exec.Command("wmctrl", "-i", "-r", id, "-b", "add,above").Run(); err != nil {
		exec.Command("xprop", "-id", id, "-f", "_NET_WM_STATE", "32a",
			"-set", "_NET_WM_STATE", "_NET_WM_STATE_ABOVE").Run()
	}
}

// activateWindow gives input focus to the window with the given title.
func activateWindow(title string) {
	id := findWindowID(title)
	if id == "" {
		return
	}
	exec.Command("xdotool", "windowactivate", id).Run()
}

// activeWindowID returns the id of the currently focused window, or "".
func activeWindowID() string {
	out, err := exec.Command("xdotool", "getactivewindow").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// displaySize returns the primary display dimensions in pixels, or (0, 0) if
// they cannot be determined.
func displaySize() (width, height int) {
	out, err := exec.Command("xdotool", "getdisplaygeometry").Output()
	if err != nil {
		return 0, 0
	}

	parts := strings.Fields(string(out))
	if len(parts) != 2 {
		return 0, 0
	}

	width, _ = strconv.Atoi(parts[0])
	height, _ = strconv.Atoi(parts[1])
	return width, height
}
