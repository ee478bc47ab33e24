package core

import "sync"

// Observable holds a value and notifies listeners when it changes.
// Unlike Managed, an Observable is not tied to any state object and is safe
// to read and write from any goroutine. Use it to share a value between
// widgets or to feed UI state from background work.
type Observable[T any] struct {
	mu        sync.RWMutex
	value     T
	listeners map[int]func(T)
	nextID    int
}

// NewObservable creates an observable with the given initial value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set updates the value and notifies all listeners with the new value.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	o.value = value
	listeners := make([]func(T), 0, len(o.listeners))
	for _, fn := range o.listeners {
		listeners = append(listeners, fn)
	}
	o.mu.Unlock()

	// Notify outside the lock so listeners can read or write the observable.
	for _, fn := range listeners {
		fn(value)
	}
}

// Update applies a transformation to the current value atomically with
// respect to other Update/Set calls, then notifies listeners.
func (o *Observable[T]) Update(transform func(T) T) {
	o.mu.Lock()
	o.value = transform(o.value)
	value := o.value
	listeners := make([]func(T), 0, len(o.listeners))
	for _, fn := range o.listeners {
		listeners = append(listeners, fn)
	}
	o.mu.Unlock()

	for _, fn := range listeners {
		fn(value)
	}
}

// AddListener registers a listener called with each new value.
// Returns an unsubscribe function.
func (o *Observable[T]) AddListener(listener func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.listeners == nil {
		o.listeners = make(map[int]func(T))
	}
	id := o.nextID
	o.nextID++
	o.listeners[id] = listener
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners, id)
	}
}
