package imagereader

import (
	"bytes"
	"github.com/disintegration/imaging"
	"github.com/pixiv/go-libjpeg/jpeg"
	"github.com/pkg/errors"
	"image"
	"io/ioutil"
	"time"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/logger"
)

var options = &jpeg.DecoderOptions{}

// LoadImage decodes the file and applies its EXIF orientation so that the
// returned bitmap has the natural size the image is shown in.
func LoadImage(path string) (image.Image, error) {
	startTime := time.Now()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read '%s'", path)
	}

	decoded, err := decode(path, data)
	if err != nil {
		return nil, err
	}

	rotation, flipped := ReadOrientation(data)
	rotated := apitype.ExifRotateImage(decoded, rotation, flipped)

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("'%s': Decoded %s image in %s",
			path, apitype.SizeFromRectangle(rotated.Bounds()), time.Since(startTime))
	}
	return rotated, nil
}

func decode(path string, data []byte) (image.Image, error) {
	decoded, err := decodeBitmap(path, data)
	if err != nil {
		return nil, err
	}
	if !apitype.SizeFromRectangle(decoded.Bounds()).IsPositive() {
		return nil, errors.Wrapf(apitype.ErrInvalidImageDimensions, "'%s'", path)
	}
	return decoded, nil
}

func decodeBitmap(path string, data []byte) (image.Image, error) {
	if apitype.IsJpeg(path) {
		if decoded, err := jpeg.Decode(bytes.NewReader(data), options); err == nil {
			return decoded, nil
		} else {
			logger.Debug.Printf("'%s': libjpeg could not decode, trying other decoders: %s", path, err)
		}
	}

	decoded, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(apitype.ErrNotAnImage, "'%s': %s", path, err)
	}
	return decoded, nil
}
