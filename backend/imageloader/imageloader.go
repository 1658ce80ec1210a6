package imageloader

import (
	"github.com/pkg/errors"
	"image"
	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/imagereader"
	"vincit.fi/image-viewer/common/logger"
)

func NewImageLoader() api.ImageLoader {
	logger.Debug.Printf("Initializing image loader...")
	loader := &FileImageLoader{}
	logger.Debug.Printf("Image loader initialized")
	return loader
}

type FileImageLoader struct {
	api.ImageLoader
}

func (s *FileImageLoader) LoadImage(imageFile *apitype.ImageFile) (image.Image, error) {
	if !imageFile.IsValid() {
		return nil, errors.New("invalid image file")
	}
	if !apitype.IsSupported(imageFile.Path()) {
		return nil, errors.Wrapf(apitype.ErrUnsupportedImageType, "'%s'", imageFile.FileName())
	}
	return imagereader.LoadImage(imageFile.Path())
}
