package event

import (
	"sync"
)

// GuiQueue collects calls that must run on the GUI thread. Any
// goroutine may Post; only the GUI loop calls Drain.
type GuiQueue struct {
	mux    sync.Mutex
	calls  []func()
	wakeup func()
}

func NewGuiQueue() *GuiQueue {
	return &GuiQueue{}
}

// SetWakeup registers a function that asks the GUI loop to run another
// frame after something has been posted.
func (s *GuiQueue) SetWakeup(wakeup func()) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.wakeup = wakeup
}

func (s *GuiQueue) Post(call func()) {
	s.mux.Lock()
	s.calls = append(s.calls, call)
	wakeup := s.wakeup
	s.mux.Unlock()

	if wakeup != nil {
		wakeup()
	}
}

// Drain runs all pending calls in posting order and returns how many ran.
// Calls posted while draining are left for the next Drain.
func (s *GuiQueue) Drain() int {
	s.mux.Lock()
	calls := s.calls
	s.calls = nil
	s.mux.Unlock()

	for _, call := range calls {
		call()
	}
	return len(calls)
}

func (s *GuiQueue) Len() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.calls)
}
