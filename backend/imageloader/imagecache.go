package imageloader

import (
	"image"
	"runtime"
	"sync"
	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/logger"
)

type DefaultImageStore struct {
	imageCache map[apitype.ImageId]*Instance
	mux        sync.Mutex
	scaler     api.Scaler

	api.ImageStore
}

func NewImageCache(scaler api.Scaler) api.ImageStore {
	logger.Debug.Printf("Initialize image cache...")
	imageCache := &DefaultImageStore{
		imageCache: map[apitype.ImageId]*Instance{},
		scaler:     scaler,
	}
	logger.Debug.Printf("Image cache initialized with scaler '%s'", scaler.Name())
	return imageCache
}

func (s *DefaultImageStore) Put(imageFile *apitype.ImageFile, full image.Image) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.imageCache[imageFile.Id()] = NewInstance(imageFile, full, s.scaler)
}

func (s *DefaultImageStore) GetFull(imageId apitype.ImageId) (image.Image, error) {
	return s.getImage(imageId).GetFull()
}

func (s *DefaultImageStore) GetScaled(imageId apitype.ImageId, size apitype.Size) (image.Image, error) {
	return s.getImage(imageId).GetScaled(size)
}

func (s *DefaultImageStore) getImage(imageId apitype.ImageId) *Instance {
	s.mux.Lock()
	defer s.mux.Unlock()
	if instance, ok := s.imageCache[imageId]; ok {
		return instance
	}
	return &emptyInstance
}

// Purge drops every image except the one that is still shown.
func (s *DefaultImageStore) Purge(keep apitype.ImageId) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for imageId := range s.imageCache {
		if imageId != keep {
			delete(s.imageCache, imageId)
		}
	}
	runtime.GC()
}

func (s *DefaultImageStore) GetByteSize() (byteSize uint64) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, instance := range s.imageCache {
		byteSize += uint64(instance.GetByteLength())
	}
	return
}

func (s *DefaultImageStore) GetSizeInMB() (mbSize float64) {
	return float64(s.GetByteSize()) / (1024 * 1024)
}
