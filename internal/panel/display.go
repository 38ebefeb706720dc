package panel

// PrimaryDisplay reports the primary display geometry through the platform
// helpers in position_*.go.
type PrimaryDisplay struct{}

// Size returns the primary display size in pixels, or (0, 0) when it cannot
// be determined.
func (PrimaryDisplay) Size() (width, height int) {
	return displaySize()
}
