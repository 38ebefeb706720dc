//go:build windows

package ui

import "log"

// OpenFileInDefaultApp opens the given file with the Windows shell's default
// handler for its type.
func OpenFileInDefaultApp(path string) error {
	log.Printf("Opening file in default application: %s", path)
	return windowsOpenFileInDefaultApp(path)
}
