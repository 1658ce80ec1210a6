package guiapi

import (
	"github.com/AllenDang/giu"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/ui/display"
)

// TexturedImage is a rendered frame uploaded to the GPU.
type TexturedImage struct {
	Texture    *giu.Texture
	Image      *apitype.ImageFile
	Width      float32
	Height     float32
	OffsetX    float32
	OffsetY    float32
	Generation int
}

func NewTexturedImage(frame *display.Frame, texture *giu.Texture) *TexturedImage {
	return &TexturedImage{
		Texture:    texture,
		Image:      frame.ImageFile,
		Width:      float32(frame.Fit.Size.Width()),
		Height:     float32(frame.Fit.Size.Height()),
		OffsetX:    float32(frame.Fit.Offset.X()),
		OffsetY:    float32(frame.Fit.Offset.Y()),
		Generation: frame.Generation,
	}
}

func (s *TexturedImage) IsNewerThan(other *TexturedImage) bool {
	if s == nil {
		return false
	} else if other == nil {
		return true
	}
	return s.Generation > other.Generation
}
