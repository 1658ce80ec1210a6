package api

import "vincit.fi/image-viewer/api/apitype"

type Sender interface {
	SendCommandToTopic(topic Topic, command apitype.Command)
	SendError(message string, err error)
}
