package ui

import (
	"github.com/OpenDiablo2/dialog"
	"github.com/pkg/errors"
	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
)

type DialogFilePicker struct {
	api.FilePicker
}

func NewFilePicker() api.FilePicker {
	return &DialogFilePicker{}
}

// PickImageFile opens the native open dialog limited to supported image types.
func (s *DialogFilePicker) PickImageFile() (string, error) {
	path, err := dialog.File().
		Title("Open Image").
		Filter("Pictures", apitype.SupportedFileEndings()...).
		Load()
	if err == dialog.ErrCancelled {
		return "", api.ErrPickerCancelled
	} else if err != nil {
		return "", errors.Wrap(err, "file dialog")
	}
	return path, nil
}
