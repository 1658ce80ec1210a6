package imageloader

import (
	"errors"
	"image"
	"sync"
	"time"
	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/logger"
)

var emptyInstance = Instance{}

type Instance struct {
	imageFile *apitype.ImageFile
	full      image.Image
	scaled    image.Image
	scaler    api.Scaler
	mux       sync.Mutex
}

func NewInstance(imageFile *apitype.ImageFile, full image.Image, scaler api.Scaler) *Instance {
	return &Instance{
		imageFile: imageFile,
		full:      full,
		scaler:    scaler,
	}
}

func (s *Instance) IsValid() bool {
	return s.imageFile != nil && s.full != nil
}

func (s *Instance) GetFull() (image.Image, error) {
	if !s.IsValid() {
		return nil, errors.New("invalid image instance")
	}
	return s.full, nil
}

// GetScaled returns the full image scaled to exactly the given size. The
// last scaled bitmap is kept so that redrawing at an unchanged size is free.
func (s *Instance) GetScaled(size apitype.Size) (image.Image, error) {
	if !s.IsValid() {
		return nil, errors.New("invalid image instance")
	}
	if !size.IsPositive() {
		return nil, apitype.ErrInvalidDisplayArea
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if s.scaled != nil && apitype.SizeFromRectangle(s.scaled.Bounds()) == size {
		logger.Trace.Print("Use cached scaled image")
		return s.scaled, nil
	}

	startTime := time.Now()
	if apitype.SizeFromRectangle(s.full.Bounds()) == size {
		s.scaled = s.full
	} else {
		s.scaled = s.scaler.Scale(s.full, size)
	}
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("'%s': Scaled to %s with %s in %s",
			s.imageFile.FileName(), size, s.scaler.Name(), time.Since(startTime))
	}
	return s.scaled, nil
}

func (s *Instance) GetByteLength() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	byteLength := GetByteLength(s.full)
	if s.scaled != s.full {
		byteLength += GetByteLength(s.scaled)
	}
	return byteLength
}

func GetByteLength(img image.Image) int {
	if img != nil {
		// Approximation using the image size
		const bytesPerPixel = 4
		bounds := img.Bounds()
		return bounds.Dx() * bounds.Dy() * bytesPerPixel
	} else {
		return 0
	}
}
