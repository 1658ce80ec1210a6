package api

import "vincit.fi/image-viewer/api/apitype"

type OpenImageCommand struct {
	RequestId apitype.RequestId
	Path      string

	apitype.Command
}

type ImageService interface {
	OpenImage(*OpenImageCommand)
	Close()
}
