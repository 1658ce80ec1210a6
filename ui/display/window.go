package display

import (
	"vincit.fi/image-viewer/api/apitype"
)

var DefaultWindowSize = apitype.SizeOf(800, 600)

// InitialWindowSize covers half of the screen in both directions. Without
// a known screen size the default is used.
func InitialWindowSize(screen apitype.Size) apitype.Size {
	if !screen.IsPositive() {
		return DefaultWindowSize
	}
	width, height := screen.Width()/2, screen.Height()/2
	if width < 1 || height < 1 {
		return DefaultWindowSize
	}
	return apitype.SizeOf(width, height)
}
