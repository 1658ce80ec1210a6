package imagereader

import (
	"image"
	"image/draw"
	"time"
	"vincit.fi/image-viewer/common/logger"
)

// ConvertToRgba returns the image as premultiplied RGBA which is what
// textures are uploaded from.
func ConvertToRgba(i image.Image) *image.RGBA {
	start := time.Now()
	var rgba *image.RGBA
	switch source := i.(type) {
	case *image.RGBA:
		return source
	case *image.NRGBA:
		rgba = convertNrgbaToRgba(source)
	default:
		rgba = image.NewRGBA(image.Rect(0, 0, i.Bounds().Dx(), i.Bounds().Dy()))
		draw.Draw(rgba, rgba.Rect, i, i.Bounds().Min, draw.Src)
	}

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Converting %T to RGBA: %s", i, time.Since(start))
	}
	return rgba
}

func convertNrgbaToRgba(n *image.NRGBA) *image.RGBA {
	width := n.Rect.Dx()
	height := n.Rect.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nrgbaPixOffset := n.PixOffset(n.Rect.Min.X+x, n.Rect.Min.Y+y)
			nrgbaStride := n.Pix[nrgbaPixOffset : nrgbaPixOffset+4 : nrgbaPixOffset+4]

			rgbaPixOffset := rgba.PixOffset(x, y)
			rgbaStride := rgba.Pix[rgbaPixOffset : rgbaPixOffset+4 : rgbaPixOffset+4]

			alpha := uint32(nrgbaStride[3])
			if alpha == 0xff {
				rgbaStride[0] = nrgbaStride[0]
				rgbaStride[1] = nrgbaStride[1]
				rgbaStride[2] = nrgbaStride[2]
			} else {
				rgbaStride[0] = uint8(uint32(nrgbaStride[0]) * alpha / 0xff)
				rgbaStride[1] = uint8(uint32(nrgbaStride[1]) * alpha / 0xff)
				rgbaStride[2] = uint8(uint32(nrgbaStride[2]) * alpha / 0xff)
			}
			rgbaStride[3] = nrgbaStride[3]
		}
	}
	return rgba
}
