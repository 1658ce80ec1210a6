package display

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
	"vincit.fi/image-viewer/api/apitype"
)

type fakeClock struct {
	current time.Time
}

func (s *fakeClock) now() time.Time {
	return s.current
}

func (s *fakeClock) advance(duration time.Duration) {
	s.current = s.current.Add(duration)
}

func newTracker() (*AreaTracker, *fakeClock) {
	clock := &fakeClock{current: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)}
	tracker := NewAreaTracker(DefaultResizeDebounce, nil)
	tracker.now = clock.now
	return tracker, clock
}

func TestAreaTracker_FirstAreaIsImmediate(t *testing.T) {
	a := assert.New(t)
	tracker, _ := newTracker()

	area, ok := tracker.Update(apitype.SizeOf(500, 500))

	a.True(ok)
	a.Equal(apitype.SizeOf(500, 500), area)

	_, ok = tracker.Update(apitype.SizeOf(500, 500))
	a.False(ok)
}

func TestAreaTracker_Debounce(t *testing.T) {
	a := assert.New(t)
	tracker, clock := newTracker()
	tracker.Update(apitype.SizeOf(500, 500))

	area, ok := tracker.Update(apitype.SizeOf(600, 500))
	a.False(ok)
	a.Equal(apitype.SizeOf(500, 500), area)

	clock.advance(100 * time.Millisecond)
	_, ok = tracker.Update(apitype.SizeOf(700, 500))
	a.False(ok)

	clock.advance(100 * time.Millisecond)
	_, ok = tracker.Update(apitype.SizeOf(700, 500))
	a.False(ok)

	clock.advance(50 * time.Millisecond)
	area, ok = tracker.Update(apitype.SizeOf(700, 500))
	a.True(ok)
	a.Equal(apitype.SizeOf(700, 500), area)

	clock.advance(time.Second)
	_, ok = tracker.Update(apitype.SizeOf(700, 500))
	a.False(ok)
}

func TestAreaTracker_EmptyAreaIsNotImmediate(t *testing.T) {
	a := assert.New(t)
	tracker, clock := newTracker()

	_, ok := tracker.Update(apitype.SizeOf(0, 0))
	a.False(ok)

	clock.advance(time.Second)
	area, ok := tracker.Update(apitype.SizeOf(0, 0))
	a.False(ok)
	a.Equal(apitype.SizeOf(0, 0), area)

	area, ok = tracker.Update(apitype.SizeOf(300, 200))
	a.True(ok)
	a.Equal(apitype.SizeOf(300, 200), area)
}

func TestAreaTracker_Minimize(t *testing.T) {
	a := assert.New(t)
	tracker, clock := newTracker()
	tracker.Update(apitype.SizeOf(500, 500))

	_, ok := tracker.Update(apitype.SizeOf(0, 300))
	a.False(ok)
	clock.advance(DefaultResizeDebounce)
	area, ok := tracker.Update(apitype.SizeOf(0, 300))
	a.True(ok)
	a.Equal(apitype.SizeOf(0, 300), area)

	// Restoring a minimized window is immediate
	area, ok = tracker.Update(apitype.SizeOf(500, 500))
	a.True(ok)
	a.Equal(apitype.SizeOf(500, 500), area)
}

func TestAreaTracker_Wakeup(t *testing.T) {
	a := assert.New(t)
	woken := make(chan bool, 1)
	tracker := NewAreaTracker(time.Millisecond, func() {
		woken <- true
	})
	defer tracker.Stop()

	tracker.Update(apitype.SizeOf(500, 500))
	tracker.Update(apitype.SizeOf(600, 500))

	select {
	case <-woken:
	case <-time.After(time.Second):
		a.Fail("wakeup was not called")
	}
}

func TestRequestTracker(t *testing.T) {
	a := assert.New(t)
	tracker := NewRequestTracker()

	a.False(tracker.Accept(apitype.NoRequest))

	first := tracker.Begin()
	a.True(tracker.Accept(first))

	second := tracker.Begin()
	a.NotEqual(first, second)
	a.False(tracker.Accept(first))
	a.True(tracker.Accept(second))
	a.Equal(second, tracker.Latest())
}
