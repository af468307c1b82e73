package editor

import "sync"

// ZoomSignal is a zoom command carried over the session's signal bus.
// The keyboard dispatcher publishes signals instead of calling the
// viewport engine directly, so it has no compile-time dependency on
// which viewport instance is active.
type ZoomSignal int

const (
	ZoomInSignal ZoomSignal = iota
	ZoomOutSignal
	ZoomResetSignal
)

// SignalBus is a session-scoped observer between the editor controller
// and whoever reacts to zoom commands. It replaces the global
// window-event bridge of earlier designs: the bus is owned by one
// session and dies with it, so nothing leaks across sessions.
type SignalBus struct {
	mu   sync.Mutex
	next int
	subs map[int]func(ZoomSignal)
}

// NewSignalBus returns an empty bus.
func NewSignalBus() *SignalBus {
	return &SignalBus{subs: make(map[int]func(ZoomSignal))}
}

// Subscribe registers fn and returns a cancel function that detaches
// it. Subscribers are invoked synchronously on Publish.
func (b *SignalBus) Subscribe(fn func(ZoomSignal)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers sig to every current subscriber.
func (b *SignalBus) Publish(sig ZoomSignal) {
	b.mu.Lock()
	fns := make([]func(ZoomSignal), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn(sig)
	}
}
