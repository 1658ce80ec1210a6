package internal

import (
	"github.com/AllenDang/giu"
	"time"
	"vincit.fi/image-viewer/common/event"
	"vincit.fi/image-viewer/common/imagereader"
	"vincit.fi/image-viewer/common/logger"
	"vincit.fi/image-viewer/ui/display"
	"vincit.fi/image-viewer/ui/giu/internal/guiapi"
)

// TextureManager uploads every frame the display panel renders and
// keeps the newest uploaded one for drawing. All methods except the
// texture callback run on the GUI thread.
type TextureManager struct {
	guiQueue  *event.GuiQueue
	current   *guiapi.TexturedImage
	requested int

	display.FrameListener
}

func NewTextureManager(guiQueue *event.GuiQueue) *TextureManager {
	return &TextureManager{
		guiQueue: guiQueue,
	}
}

func (s *TextureManager) FrameRendered(frame *display.Frame) {
	s.requested = frame.Generation
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Uploading frame %d of %s (%s)", frame.Generation, frame.ImageFile, frame.Fit.Size)
	}

	start := time.Now()
	rgba := imagereader.ConvertToRgba(frame.Bitmap)
	giu.NewTextureFromRgba(rgba, func(texture *giu.Texture) {
		s.guiQueue.Post(func() {
			s.textureLoaded(frame, texture, time.Since(start))
		})
	})
}

func (s *TextureManager) textureLoaded(frame *display.Frame, texture *giu.Texture, took time.Duration) {
	loaded := guiapi.NewTexturedImage(frame, texture)
	if !loaded.IsNewerThan(s.current) {
		logger.Trace.Printf("Dropping outdated frame %d", frame.Generation)
		return
	}
	logger.Trace.Printf("Frame %d uploaded in %s", frame.Generation, took)
	s.current = loaded
}

// Current returns the newest uploaded frame, if any.
func (s *TextureManager) Current() (*guiapi.TexturedImage, bool) {
	return s.current, s.current != nil
}

// IsLoading tells whether a newer frame than the drawn one is still uploading.
func (s *TextureManager) IsLoading() bool {
	if s.current == nil {
		return s.requested > 0
	}
	return s.requested > s.current.Generation
}
