// pkg/output/lazy.go
package output

import "sync"

// Lazy memoizes sink resolution. Constructing a Lazy acquires nothing;
// the first Resolve call runs the resolve function and every later call
// returns the same sink and error.
type Lazy struct {
	mu      sync.Mutex
	resolve func() (Sink, error)
	done    bool

	sink Sink
	err  error
}

// NewLazy wraps a resolve function in a compute-once accessor.
func NewLazy(resolve func() (Sink, error)) *Lazy {
	return &Lazy{resolve: resolve}
}

// Resolve returns the memoized sink, computing it on first call. The
// resolve function's error is memoized too.
func (l *Lazy) Resolve() (Sink, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.done {
		l.sink, l.err = l.resolve()
		l.done = true
	}
	return l.sink, l.err
}

// Resolved reports whether Resolve has run. It lets teardown paths skip
// acquiring a sink that was never used.
func (l *Lazy) Resolved() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}
