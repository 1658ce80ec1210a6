package util

import (
	"sync"
)

// Set is safe for concurrent use.
type Set[V comparable] struct {
	values map[V]bool
	mux    sync.RWMutex
}

func NewSet[V comparable]() *Set[V] {
	return &Set[V]{
		values: map[V]bool{},
	}
}

// Add returns true if the value was not in the set before.
func (s *Set[V]) Add(value V) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.values[value] {
		return false
	}
	s.values[value] = true
	return true
}

func (s *Set[V]) Remove(value V) {
	s.mux.Lock()
	defer s.mux.Unlock()
	delete(s.values, value)
}

func (s *Set[V]) Contains(value V) bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.values[value]
}

func (s *Set[V]) Len() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.values)
}

// Values returns the members in no particular order.
func (s *Set[V]) Values() []V {
	s.mux.RLock()
	defer s.mux.RUnlock()
	values := make([]V, 0, len(s.values))
	for value := range s.values {
		values = append(values, value)
	}
	return values
}

func (s *Set[V]) Clear() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.values = map[V]bool{}
}
