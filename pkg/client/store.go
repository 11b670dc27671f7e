package client

import "sync"

// Holder keeps the last value of a resource and republishes every new value
// to its subscribers. A slow subscriber only ever sees the latest value.
type Holder[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   map[int]chan T
	nextID int
}

func NewHolder[T any](initial T) *Holder[T] {
	return &Holder[T]{
		value: initial,
		subs:  make(map[int]chan T),
	}
}

func (h *Holder[T]) Get() T {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.value
}

func (h *Holder[T]) Set(value T) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.value = value
	h.publish()
}

// Update replaces the held value with fn applied to it.
func (h *Holder[T]) Update(fn func(T) T) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.value = fn(h.value)
	h.publish()
}

// Subscribe returns a channel receiving the current value and each later one,
// and a function that ends the subscription.
func (h *Holder[T]) Subscribe() (<-chan T, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan T, 1)
	ch <- h.value
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
}

// publish must be called with mu held.
func (h *Holder[T]) publish() {
	for _, ch := range h.subs {
		select {
		case <-ch:
		default:
		}
		ch <- h.value
	}
}
