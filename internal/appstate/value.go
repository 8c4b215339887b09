package appstate

import "slices"

// Value is a single observable field of the application state.
//
// Handlers registered with OnChange run synchronously inside Set, in
// registration order, and only when the stored value actually changes. A
// handler may call Set on another Value; that nested delivery completes
// before the outer Set returns.
//
// Value is not safe for concurrent use. All access happens on the program
// goroutine.
type Value[T comparable] struct {
	name      string
	cur       T
	normalize func(T) T
	handlers  []subscription[T]
	nextID    int
}

type subscription[T comparable] struct {
	id int
	fn func(prev, cur T)
}

func newValue[T comparable](name string, def T) *Value[T] {
	return &Value[T]{name: name, cur: def}
}

// Name returns the field name.
func (v *Value[T]) Name() string {
	return v.name
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.cur
}

// Set stores x (after normalization) and notifies subscribers. It reports
// whether the stored value changed; a no-op set notifies nobody.
func (v *Value[T]) Set(x T) bool {
	if v.normalize != nil {
		x = v.normalize(x)
	}
	if x == v.cur {
		return false
	}
	prev := v.cur
	v.cur = x
	// Handlers may subscribe or unsubscribe while being notified.
	for _, s := range slices.Clone(v.handlers) {
		s.fn(prev, x)
	}
	return true
}

// OnChange registers fn and returns a func that removes it again.
func (v *Value[T]) OnChange(fn func(prev, cur T)) (unsubscribe func()) {
	v.nextID++
	id := v.nextID
	v.handlers = append(v.handlers, subscription[T]{id: id, fn: fn})
	return func() {
		v.handlers = slices.DeleteFunc(v.handlers, func(s subscription[T]) bool {
			return s.id == id
		})
	}
}

// Subscribers returns the number of registered handlers.
func (v *Value[T]) Subscribers() int {
	return len(v.handlers)
}
