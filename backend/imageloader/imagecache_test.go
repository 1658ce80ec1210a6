package imageloader

import (
	"bytes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/util"
)

type countingScaler struct {
	calls int
	ImagingScaler
}

func (s *countingScaler) Scale(source image.Image, size apitype.Size) image.Image {
	s.calls++
	return s.ImagingScaler.Scale(source, size)
}

func newCountingScaler() *countingScaler {
	return &countingScaler{ImagingScaler: *NewScaler(util.ScalerImaging, util.QualityNormal).(*ImagingScaler)}
}

func createTestImage(width int, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	return img
}

func TestDefaultImageStore_GetFull(t *testing.T) {
	a := assert.New(t)
	cache := NewImageCache(newCountingScaler())

	t.Run("Valid", func(t *testing.T) {
		imageFile := apitype.NewImageFile("horizontal.png")
		full := createTestImage(80, 40)
		cache.Put(imageFile, full)

		img, err := cache.GetFull(imageFile.Id())
		a.Nil(err)
		a.Same(full, img)
	})
	t.Run("Invalid", func(t *testing.T) {
		img, err := cache.GetFull(apitype.NewImageId())
		a.NotNil(err)
		a.Nil(img)
	})
}

func TestDefaultImageStore_GetScaled(t *testing.T) {
	a := assert.New(t)
	scaler := newCountingScaler()
	cache := NewImageCache(scaler)

	imageFile := apitype.NewImageFile("horizontal.png")
	cache.Put(imageFile, createTestImage(80, 40))

	t.Run("Exact size", func(t *testing.T) {
		img, err := cache.GetScaled(imageFile.Id(), apitype.SizeOf(50, 25))
		if a.Nil(err) {
			a.Equal(apitype.SizeOf(50, 25), apitype.SizeFromRectangle(img.Bounds()))
		}
		a.Equal(1, scaler.calls)
	})
	t.Run("Same size is cached", func(t *testing.T) {
		_, err := cache.GetScaled(imageFile.Id(), apitype.SizeOf(50, 25))
		a.Nil(err)
		a.Equal(1, scaler.calls)
	})
	t.Run("Stretched", func(t *testing.T) {
		img, err := cache.GetScaled(imageFile.Id(), apitype.SizeOf(50, 300))
		if a.Nil(err) {
			a.Equal(apitype.SizeOf(50, 300), apitype.SizeFromRectangle(img.Bounds()))
		}
		a.Equal(2, scaler.calls)
	})
	t.Run("Natural size is not scaled", func(t *testing.T) {
		full, _ := cache.GetFull(imageFile.Id())
		img, err := cache.GetScaled(imageFile.Id(), apitype.SizeOf(80, 40))
		a.Nil(err)
		a.Same(full, img)
		a.Equal(2, scaler.calls)
	})
	t.Run("Empty size", func(t *testing.T) {
		img, err := cache.GetScaled(imageFile.Id(), apitype.SizeOf(0, 300))
		a.True(errors.Is(err, apitype.ErrInvalidDisplayArea))
		a.Nil(img)
	})
	t.Run("Invalid", func(t *testing.T) {
		img, err := cache.GetScaled(apitype.NewImageId(), apitype.SizeOf(100, 100))
		a.NotNil(err)
		a.Nil(img)
	})
}

func TestDefaultImageStore_Purge(t *testing.T) {
	a := assert.New(t)
	cache := NewImageCache(newCountingScaler())

	a.Equal(uint64(0), cache.GetByteSize())

	first := apitype.NewImageFile("first.png")
	second := apitype.NewImageFile("second.png")
	cache.Put(first, createTestImage(100, 100))
	cache.Put(second, createTestImage(100, 50))

	a.Equal(60000, int(cache.GetByteSize()))

	_, _ = cache.GetScaled(second.Id(), apitype.SizeOf(50, 25))
	a.Equal(65000, int(cache.GetByteSize()))
	a.InDelta(0.062, cache.GetSizeInMB(), 0.001)

	cache.Purge(second.Id())

	a.Equal(25000, int(cache.GetByteSize()))
	_, err := cache.GetFull(first.Id())
	a.NotNil(err)
	_, err = cache.GetFull(second.Id())
	a.Nil(err)
}

func TestNewScaler(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		implementation string
		quality        string
		name           string
	}{
		{implementation: util.ScalerImaging, quality: util.QualityNormal, name: "imaging/linear"},
		{implementation: util.ScalerImaging, quality: util.QualityHigh, name: "imaging/lanczos"},
		{implementation: util.ScalerResize, quality: util.QualityNormal, name: "resize/bilinear"},
		{implementation: util.ScalerResize, quality: util.QualityHigh, name: "resize/lanczos3"},
		{implementation: "", quality: "", name: "imaging/linear"},
	}
	source := createTestImage(90, 30)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaler := NewScaler(tt.implementation, tt.quality)
			a.Equal(tt.name, scaler.Name())

			scaled := scaler.Scale(source, apitype.SizeOf(31, 17))
			a.Equal(apitype.SizeOf(31, 17), apitype.SizeFromRectangle(scaled.Bounds()))
		})
	}
}

func TestFileImageLoader_LoadImage(t *testing.T) {
	a := assert.New(t)
	loader := NewImageLoader()
	dir := t.TempDir()

	t.Run("Valid", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		a.Nil(png.Encode(buffer, createTestImage(30, 60)))
		path := filepath.Join(dir, "vertical.png")
		a.Nil(os.WriteFile(path, buffer.Bytes(), 0644))

		img, err := loader.LoadImage(apitype.NewImageFile(path))
		if a.Nil(err) {
			a.Equal(apitype.SizeOf(30, 60), apitype.SizeFromRectangle(img.Bounds()))
		}
	})
	t.Run("Unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "notes.txt")
		a.Nil(os.WriteFile(path, []byte("text"), 0644))

		img, err := loader.LoadImage(apitype.NewImageFile(path))
		a.Nil(img)
		a.True(errors.Is(err, apitype.ErrUnsupportedImageType))
	})
	t.Run("Not an image", func(t *testing.T) {
		path := filepath.Join(dir, "notes.jpg")
		a.Nil(os.WriteFile(path, []byte("text"), 0644))

		img, err := loader.LoadImage(apitype.NewImageFile(path))
		a.Nil(img)
		a.True(errors.Is(err, apitype.ErrNotAnImage))
	})
	t.Run("Invalid", func(t *testing.T) {
		img, err := loader.LoadImage(apitype.NewImageFile(""))
		a.Nil(img)
		a.NotNil(err)
	})
}
