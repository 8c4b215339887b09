package appstate

import "slices"

// Signal is a payload-free event. Like Value, it delivers synchronously on
// the caller's goroutine.
type Signal struct {
	handlers []subscription[struct{}]
	nextID   int
	fired    int
}

// Subscribe registers fn and returns a func that removes it again.
func (s *Signal) Subscribe(fn func()) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, subscription[struct{}]{id: id, fn: func(_, _ struct{}) { fn() }})
	return func() {
		s.handlers = slices.DeleteFunc(s.handlers, func(h subscription[struct{}]) bool {
			return h.id == id
		})
	}
}

// Fire notifies every subscriber.
func (s *Signal) Fire() {
	s.fired++
	for _, h := range slices.Clone(s.handlers) {
		h.fn(struct{}{}, struct{}{})
	}
}

// Count returns how many times the signal has fired.
func (s *Signal) Count() int {
	return s.fired
}
