package ui

import "log"

// Level classifies an admin notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// NotificationManager shows desktop notifications across platforms.
// platformNotify is implemented per-OS (toast on Windows, beeep elsewhere).
type NotificationManager struct {
	useNotifications bool
	appName          string
	embeddedIcon     []byte
}

// NewNotificationManager creates a new notification manager.
func NewNotificationManager(useNotifications bool, appName string, embeddedIcon []byte) *NotificationManager {
	return &NotificationManager{
		useNotifications: useNotifications,
		appName:          appName,
		embeddedIcon:     embeddedIcon,
	}
}

// Show displays a desktop notification if notifications are enabled. Warn
// and error levels are flagged in the title; notification failures are only
// logged, never surfaced.
func (n *NotificationManager) Show(level Level, title, message string) {
	if !n.useNotifications {
		return
	}

	switch level {
	case LevelWarn:
		title = "Warning: " + title
	case LevelError:
		title = "Error: " + title
	}

	if err := n.platformNotify(title, message); err != nil {
		log.Printf("Error showing notification: %v", err)
	}
}

var globalNotificationManager *NotificationManager

// InitGlobalNotifications initializes the global notification manager.
func InitGlobalNotifications(useNotifications bool, appName string, embeddedIcon []byte) {
	globalNotificationManager = NewNotificationManager(useNotifications, appName, embeddedIcon)
}

// ShowAdminNotification shows a notification through the global manager,
// for call sites that don't hold a manager reference.
func ShowAdminNotification(level Level, title, message string) {
	if globalNotificationManager != nil {
		globalNotificationManager.Show(level, title, message)
	} else {
		log.Printf("Notification not shown (manager not initialized): %s - %s", title, message)
	}
}
