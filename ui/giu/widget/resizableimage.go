package widget

import (
	"github.com/AllenDang/giu"
	"image"
	"vincit.fi/image-viewer/ui/giu/internal/guiapi"
)

// ResizableImageWidget draws a texture at the size and offset computed
// for the display area it was rendered for.
type ResizableImageWidget struct {
	texturedImage *guiapi.TexturedImage
	giu.ImageWidget
}

func ResizableImage(image *guiapi.TexturedImage) *ResizableImageWidget {
	return &ResizableImageWidget{
		texturedImage: image,
		ImageWidget:   *giu.Image(image.Texture),
	}
}

func (s *ResizableImageWidget) Build() {
	origin := giu.GetCursorPos()
	giu.SetCursorPos(image.Pt(
		origin.X+int(s.texturedImage.OffsetX),
		origin.Y+int(s.texturedImage.OffsetY)))

	s.ImageWidget.Size(s.texturedImage.Width, s.texturedImage.Height)
	s.ImageWidget.Build()
}
