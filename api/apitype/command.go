package apitype

type Command interface{}

type RequestId string

const NoRequest = RequestId("")

func NewRequestId() RequestId {
	return RequestId(NewImageId())
}
