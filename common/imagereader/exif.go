package imagereader

import (
	"bytes"
	"github.com/rwcarlsen/goexif/exif"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/logger"
)

// ReadOrientation returns the rotation and flip stored in the EXIF
// orientation tag. Files without EXIF data are left as they are.
func ReadOrientation(data []byte) (float64, bool) {
	decodedExif, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		logger.Trace.Printf("No Exif data: %s", err)
		return apitype.ExifOrientationToAngleAndFlip(apitype.ExifUnchangedOrientation)
	}

	orientationTag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		logger.Trace.Printf("Could not resolve orientation flag: %s", err)
		return apitype.ExifOrientationToAngleAndFlip(apitype.ExifUnchangedOrientation)
	}

	orientation, err := orientationTag.Int(0)
	if err != nil {
		logger.Warn.Print("Could not resolve orientation value", err)
		return apitype.ExifOrientationToAngleAndFlip(apitype.ExifUnchangedOrientation)
	}
	return apitype.ExifOrientationToAngleAndFlip(orientation)
}
