package api

import (
	"vincit.fi/image-viewer/api/apitype"
)

type ErrorCommand struct {
	Message string
}

type ImageLoadedCommand struct {
	RequestId apitype.RequestId
	ImageFile *apitype.ImageFile
	Size      apitype.Size

	apitype.Command
}

type Gui interface {
	SetImage(*ImageLoadedCommand)
	ShowError(*ErrorCommand)
	Run()
}
