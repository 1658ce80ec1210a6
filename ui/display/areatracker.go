package display

import (
	"sync"
	"time"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/logger"
)

const DefaultResizeDebounce = time.Millisecond * 150

// AreaTracker debounces display area changes coming from the frame loop
// so that an image is rescaled once the window has stopped resizing.
// A drawable area following an undrawable one is applied at once.
type AreaTracker struct {
	delay   time.Duration
	now     func() time.Time
	wakeup  func()
	applied apitype.Size
	pending apitype.Size
	changed time.Time
	timer   *time.Timer
	mux     sync.Mutex
}

// NewAreaTracker creates a tracker; wakeup is invoked after the delay
// so that the frame loop gets to run again and pick up the change.
func NewAreaTracker(delay time.Duration, wakeup func()) *AreaTracker {
	return &AreaTracker{
		delay:  delay,
		now:    time.Now,
		wakeup: wakeup,
	}
}

// Update reports the currently available area. It returns the area to
// apply and true when the change has settled.
func (s *AreaTracker) Update(area apitype.Size) (apitype.Size, bool) {
	if area != s.pending {
		s.pending = area
		s.changed = s.now()

		if !s.applied.IsPositive() && area.IsPositive() {
			return s.apply()
		}
		s.scheduleWakeup()
		return s.applied, false
	}

	if s.pending != s.applied && s.now().Sub(s.changed) >= s.delay {
		return s.apply()
	}
	return s.applied, false
}

func (s *AreaTracker) apply() (apitype.Size, bool) {
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Applying display area %s (was %s)", s.pending, s.applied)
	}
	s.applied = s.pending
	return s.applied, true
}

func (s *AreaTracker) scheduleWakeup() {
	if s.wakeup == nil {
		return
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.wakeup)
}

func (s *AreaTracker) Stop() {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
