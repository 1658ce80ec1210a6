package api

import (
	"image"
	"vincit.fi/image-viewer/api/apitype"
)

// ImageStore keeps decoded images in memory and produces bitmaps
// scaled to an exact size for drawing.
type ImageStore interface {
	Put(*apitype.ImageFile, image.Image)
	GetFull(apitype.ImageId) (image.Image, error)
	GetScaled(apitype.ImageId, apitype.Size) (image.Image, error)
	GetByteSize() uint64
	GetSizeInMB() float64
	Purge(keep apitype.ImageId)
}

// Scaler resizes a bitmap to exactly the given size.
type Scaler interface {
	Scale(image.Image, apitype.Size) image.Image
	Name() string
}
