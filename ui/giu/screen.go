package ui

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/logger"
)

// screenSize reads the video mode of the primary monitor. It must run on
// the main thread before the master window is created; giu initializes
// glfw again afterwards, which is allowed.
func screenSize() apitype.Size {
	if err := glfw.Init(); err != nil {
		logger.Warn.Printf("Could not read the screen size: %s", err)
		return apitype.Size{}
	}
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return apitype.Size{}
	}
	mode := monitor.GetVideoMode()
	if mode == nil {
		return apitype.Size{}
	}
	return apitype.SizeOf(mode.Width, mode.Height)
}
