package apitype

import (
	"errors"
	"math"
)

var (
	ErrInvalidImageDimensions = errors.New("invalid image dimensions")
	ErrInvalidDisplayArea     = errors.New("display area has no drawable size")
)

type FitMode int

const (
	FitStretch FitMode = iota
	FitKeepAspectRatio
)

func FitModeOf(keepAspectRatio bool) FitMode {
	if keepAspectRatio {
		return FitKeepAspectRatio
	}
	return FitStretch
}

func (s FitMode) KeepsAspectRatio() bool {
	return s == FitKeepAspectRatio
}

func (s FitMode) String() string {
	switch s {
	case FitStretch:
		return "Stretch"
	case FitKeepAspectRatio:
		return "KeepAspectRatio"
	}
	return "Unknown"
}

// Fit is the size an image is drawn in and where inside the display
// area the drawing starts.
type Fit struct {
	Size   Size
	Offset Point
}

// ComputeFit resolves how an image of the given natural size is drawn
// into the display area. The image size is validated before the area
// so that a broken image is reported even while the window is minimized.
func ComputeFit(imageSize Size, area Size, mode FitMode) (Fit, error) {
	if !imageSize.IsPositive() {
		return Fit{}, ErrInvalidImageDimensions
	}
	if !area.IsPositive() {
		return Fit{}, ErrInvalidDisplayArea
	}

	if !mode.KeepsAspectRatio() {
		return Fit{Size: area, Offset: PointOf(0, 0)}, nil
	}

	imageRatio := imageSize.Ratio()
	areaRatio := area.Ratio()

	// Equal ratios render at the area size
	width, height := area.Width(), area.Height()
	if areaRatio > imageRatio {
		width = scaleDimension(imageSize.Width(), area.Height(), imageSize.Height())
	} else if imageRatio > areaRatio {
		height = scaleDimension(imageSize.Height(), area.Width(), imageSize.Width())
	}

	return Fit{
		Size:   SizeOf(width, height),
		Offset: PointOf((area.Width()-width)/2, (area.Height()-height)/2),
	}, nil
}

// scaleDimension returns floor(value * numerator / denominator), never less than 1.
func scaleDimension(value int, numerator int, denominator int) int {
	scaled := int(math.Floor(float64(value) * float64(numerator) / float64(denominator)))
	if scaled < 1 {
		return 1
	}
	return scaled
}
