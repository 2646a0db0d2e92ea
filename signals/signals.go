package signals

import "sync"

// Signal[T] is a reactive value that notifies subscribers when changed.
// No build tags — fully testable outside WASM.
type Signal[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   map[int]func(T)
	order  []int
}

// New creates a Signal with an initial value.
func New[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies all subscribers with the new value.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	subs := s.snapshot()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Update applies fn to the current value and publishes the result.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	v := s.value
	subs := s.snapshot()
	s.mu.Unlock()

	for _, sub := range subs {
		sub(v)
	}
}

// snapshot copies the subscriber list in registration order. Caller holds mu.
func (s *Signal[T]) snapshot() []func(T) {
	subs := make([]func(T), 0, len(s.order))
	for _, id := range s.order {
		if fn, ok := s.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}

// Subscribe registers a callback fired when the value changes.
// Returns an unsubscribe func — call it in OnDestroy to avoid memory leaks.
// Each subscription is tracked by its own id, so unsubscribing is safe in any
// order and calling the same unsubscribe twice is a no-op.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs == nil {
		s.subs = make(map[int]func(T))
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
		for i, oid := range s.order {
			if oid == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}
