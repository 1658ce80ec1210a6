package viewer

import (
	"fmt"
	"github.com/pkg/errors"
	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/logger"
)

type Service struct {
	sender      api.Sender
	imageLoader api.ImageLoader
	imageCache  api.ImageStore

	api.ImageService
}

func NewImageService(sender api.Sender, imageLoader api.ImageLoader, imageCache api.ImageStore) *Service {
	return &Service{
		sender:      sender,
		imageLoader: imageLoader,
		imageCache:  imageCache,
	}
}

// OpenImage decodes the requested file and hands it to the GUI. A file
// that cannot be shown is reported and nothing else changes.
func (s *Service) OpenImage(command *api.OpenImageCommand) {
	if command.Path == "" {
		logger.Debug.Printf("Request %s has no file, ignoring", command.RequestId)
		return
	}

	imageFile := apitype.NewImageFile(command.Path)
	logger.Info.Printf("Opening '%s'", imageFile.Path())

	img, err := s.imageLoader.LoadImage(imageFile)
	if err != nil {
		s.sender.SendError(errorMessage(imageFile, err), err)
		return
	}

	size := apitype.SizeFromRectangle(img.Bounds())
	s.imageCache.Put(imageFile, img)
	logger.Debug.Printf("Loaded %s (%s)", imageFile, size)

	s.sender.SendCommandToTopic(api.ImageLoaded, &api.ImageLoadedCommand{
		RequestId: command.RequestId,
		ImageFile: imageFile,
		Size:      size,
	})
}

func (s *Service) Close() {
	logger.Info.Print("Shutting down image service")
}

func errorMessage(imageFile *apitype.ImageFile, err error) string {
	switch {
	case errors.Is(err, apitype.ErrNotAnImage):
		return fmt.Sprintf("Given file is not an image: '%s'", imageFile.FileName())
	case errors.Is(err, apitype.ErrUnsupportedImageType):
		return fmt.Sprintf("Unsupported image type: '%s'", imageFile.FileName())
	case errors.Is(err, apitype.ErrInvalidImageDimensions):
		return fmt.Sprintf("Image has no pixels: '%s'", imageFile.FileName())
	default:
		return fmt.Sprintf("Could not open '%s'", imageFile.FileName())
	}
}
