// pkg/events/buffer.go
package events

import "sync"

// queued is one pre-registration event descriptor.
type queued struct {
	name Name
	args []any
}

// earlyBuffer queues events emitted before any reporter registers so Run
// can replay them in original order. Append-only until drained; drain
// takes the whole queue atomically.
type earlyBuffer struct {
	mu     sync.Mutex
	events []queued
}

func newEarlyBuffer() *earlyBuffer {
	return &earlyBuffer{}
}

func (b *earlyBuffer) push(name Name, args []any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, queued{name: name, args: args})
}

func (b *earlyBuffer) drain() []queued {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.events
	b.events = nil
	return out
}

func (b *earlyBuffer) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}
