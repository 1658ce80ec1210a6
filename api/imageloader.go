package api

import (
	"image"
	"vincit.fi/image-viewer/api/apitype"
)

type ImageLoader interface {
	LoadImage(*apitype.ImageFile) (image.Image, error)
}
