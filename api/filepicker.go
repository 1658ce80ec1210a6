package api

import "errors"

var ErrPickerCancelled = errors.New("file selection cancelled")

type FilePicker interface {
	// PickImageFile blocks until the user selects a file or cancels.
	PickImageFile() (string, error)
}
