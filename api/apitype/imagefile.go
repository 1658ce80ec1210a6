package apitype

import (
	"errors"
	"github.com/google/uuid"
	"path/filepath"
	"strings"
)

var (
	ErrNotAnImage           = errors.New("not a decodable image")
	ErrUnsupportedImageType = errors.New("unsupported image type")
)

type ImageId string

const NoImage = ImageId("")

func NewImageId() ImageId {
	return ImageId(uuid.New().String())
}

var supportedFileEndings = map[string]bool{
	".tif":  true,
	".tiff": true,
	".jpeg": true,
	".png":  true,
	".jpg":  true,
}

// SupportedFileEndings lists the extensions offered by the file picker, without the dot.
func SupportedFileEndings() []string {
	return []string{"tif", "tiff", "jpeg", "png", "jpg"}
}

func IsSupported(path string) bool {
	return supportedFileEndings[strings.ToLower(filepath.Ext(path))]
}

func IsJpeg(path string) bool {
	extension := strings.ToLower(filepath.Ext(path))
	return extension == ".jpg" || extension == ".jpeg"
}

type ImageFile struct {
	id        ImageId
	directory string
	filename  string
	path      string
}

func NewImageFileWithId(id ImageId, path string) *ImageFile {
	directory, filename := filepath.Split(path)
	return &ImageFile{
		id:        id,
		directory: filepath.Clean(directory),
		filename:  filename,
		path:      path,
	}
}

func NewImageFile(path string) *ImageFile {
	return NewImageFileWithId(NewImageId(), path)
}

func (s *ImageFile) IsValid() bool {
	return s != nil && s.path != ""
}

func (s *ImageFile) Id() ImageId {
	if s != nil {
		return s.id
	} else {
		return NoImage
	}
}

func (s *ImageFile) String() string {
	if s != nil {
		if s.IsValid() {
			return "ImageFile{" + s.filename + "}"
		} else {
			return "ImageFile<invalid>"
		}
	} else {
		return "ImageFile<nil>"
	}
}

func (s *ImageFile) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *ImageFile) Directory() string {
	if s != nil {
		return s.directory
	} else {
		return ""
	}
}

func (s *ImageFile) FileName() string {
	if s != nil {
		return s.filename
	} else {
		return ""
	}
}
