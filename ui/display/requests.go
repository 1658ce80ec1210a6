package display

import (
	"vincit.fi/image-viewer/api/apitype"
)

// RequestTracker remembers the latest open request so that results of
// requests the user has already replaced can be dropped.
type RequestTracker struct {
	latest apitype.RequestId
}

func NewRequestTracker() *RequestTracker {
	return &RequestTracker{latest: apitype.NoRequest}
}

// Begin starts a new request which replaces any earlier one.
func (s *RequestTracker) Begin() apitype.RequestId {
	s.latest = apitype.NewRequestId()
	return s.latest
}

func (s *RequestTracker) Accept(requestId apitype.RequestId) bool {
	return requestId != apitype.NoRequest && requestId == s.latest
}

func (s *RequestTracker) Latest() apitype.RequestId {
	return s.latest
}
