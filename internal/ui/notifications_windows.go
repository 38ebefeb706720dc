//go:build windows

package ui

import (
	"log"
	"os"

	"github.com/go-toast/toast"
)

func (n *NotificationManager) platformNotify(title, message string) error {
	iconPath := ""
	if len(n.embeddedIcon) > 0 {
		if p, err := writeTempIcon(n.embeddedIcon); err == nil {
			iconPath = p
			// Toast rendering grabs the file asynchronously; leave cleanup
			// to the OS temp directory.
		} else {
			log.Printf("Error writing temp icon for notification: %v", err)
		}
	}

	notification := toast.Notification{
		AppID:   n.appName,
		Title:   title,
		Message: message,
		Icon:    iconPath,
	}
	return notification.Push()
}

// writeTempIcon writes the embedded icon bytes to a temp .ico file so the
// toast notification can reference it by path.
func writeTempIcon(data []byte) (string, error) {
	f, err := os.CreateTemp("", "hoverpanel-icon-*.ico")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
