package imageloader

import (
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"image"
	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/util"
)

type ImagingScaler struct {
	filter imaging.ResampleFilter
	name   string

	api.Scaler
}

func (s *ImagingScaler) Scale(source image.Image, size apitype.Size) image.Image {
	return imaging.Resize(source, size.Width(), size.Height(), s.filter)
}

func (s *ImagingScaler) Name() string {
	return s.name
}

type ResizeScaler struct {
	interpolation resize.InterpolationFunction
	name          string

	api.Scaler
}

func (s *ResizeScaler) Scale(source image.Image, size apitype.Size) image.Image {
	return resize.Resize(uint(size.Width()), uint(size.Height()), source, s.interpolation)
}

func (s *ResizeScaler) Name() string {
	return s.name
}

// NewScaler picks the scaling implementation and filter. Unknown values
// fall back to imaging with the normal quality filter.
func NewScaler(implementation string, quality string) api.Scaler {
	highQuality := quality == util.QualityHigh
	if implementation == util.ScalerResize {
		if highQuality {
			return &ResizeScaler{interpolation: resize.Lanczos3, name: "resize/lanczos3"}
		}
		return &ResizeScaler{interpolation: resize.Bilinear, name: "resize/bilinear"}
	}

	if highQuality {
		return &ImagingScaler{filter: imaging.Lanczos, name: "imaging/lanczos"}
	}
	return &ImagingScaler{filter: imaging.Linear, name: "imaging/linear"}
}
