// pkg/events/manager.go
// Package events implements the broadcast hub between a test-execution
// engine and its reporters. The Manager fans each emitted lifecycle event
// out to every registered reporter that handles it, isolates reporter
// failures from one another, and queues events emitted before the first
// reporter registers so Run can replay them.
package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/relay-run/relay/pkg/config"
	"github.com/relay-run/relay/pkg/console"
	"github.com/relay-run/relay/pkg/output"
	"github.com/relay-run/relay/pkg/reporter"
	"github.com/relay-run/relay/pkg/stringutil"
)

type entry struct {
	id  string
	rep reporter.Reporter
}

// Manager owns the reporter registry and the early event buffer.
type Manager struct {
	mu      sync.RWMutex
	entries []entry

	buffer   *earlyBuffer
	resolver *output.Resolver
	log      zerolog.Logger
}

// NewManager returns an empty hub. A nil resolver gets the default
// file-capable resolver writing to stdout.
func NewManager(logger zerolog.Logger, resolver *output.Resolver) *Manager {
	if resolver == nil {
		resolver = output.NewResolver()
	}
	return &Manager{
		buffer:   newEarlyBuffer(),
		resolver: resolver,
		log:      logger,
	}
}

// Add registers a reporter built from spec and returns the handle owning
// the new registry entry. Accepted spec forms:
//
//   - reporter.Factory (or a bare func of the same shape): constructed
//     with a derived copy of opts carrying a console capability and a
//     lazily resolved output sink
//   - reporter.Reporter: registered as-is
//   - map[string]any: a legacy topic map, wrapped in a LegacyAdapter
//
// Anything else is rejected and nothing is registered.
func (m *Manager) Add(spec any, opts *config.Options) (*Handle, error) {
	rep, err := m.build(spec, opts)
	if err != nil {
		return nil, err
	}

	h := &Handle{id: uuid.NewString(), manager: m, rep: rep}
	m.mu.Lock()
	m.entries = append(m.entries, entry{id: h.id, rep: rep})
	m.mu.Unlock()
	return h, nil
}

func (m *Manager) build(spec any, opts *config.Options) (reporter.Reporter, error) {
	switch s := spec.(type) {
	case reporter.Factory:
		return m.construct(s, opts)
	case func(*config.Options) (reporter.Reporter, error):
		return m.construct(s, opts)
	case reporter.Reporter:
		return s, nil
	case map[string]any:
		return reporter.NewLegacyAdapter(s), nil
	default:
		return nil, fmt.Errorf("unsupported reporter spec %T", spec)
	}
}

// construct derives the effective configuration and runs the factory. The
// caller's options value is never mutated.
func (m *Manager) construct(factory reporter.Factory, opts *config.Options) (reporter.Reporter, error) {
	derived := config.Derive(opts)
	if derived.Console == nil {
		derived.Console = console.Nop{}
	}
	if !derived.HasOutput() {
		derived.SetOutput(m.resolver.Lazy(derived.Filename))
	}

	rep, err := factory(derived)
	if err != nil {
		return nil, fmt.Errorf("construct reporter: %w", err)
	}
	if rep == nil {
		return nil, fmt.Errorf("reporter factory returned nil")
	}
	return rep, nil
}

// detach removes the entry with the given id, if still present.
func (m *Manager) detach(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.entries {
		if e.id == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}

// Empty tears down every registered reporter and clears the registry. The
// early event buffer is left untouched.
func (m *Manager) Empty() {
	m.mu.Lock()
	entries := m.entries
	m.entries = nil
	m.mu.Unlock()

	for _, e := range entries {
		d, ok := e.rep.(reporter.Destroyer)
		if !ok {
			continue
		}
		if err := safeDestroy(d); err != nil {
			m.log.Warn().Str("reporter", e.id).Err(err).Msg("reporter teardown failed")
		}
	}
}

func safeDestroy(d reporter.Destroyer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("teardown panic: %v", r)
		}
	}()
	return d.Destroy()
}

// Emit delivers an event to every reporter that handles it and returns
// once all handlers have settled. With an empty registry the event is
// queued for replay by Run and Emit returns immediately. A leading
// fatalError payload is marked reported exactly once per call, before any
// handler runs, and only when at least one reporter is registered.
// Reporter failures and panics are logged and swallowed; Emit never fails
// the caller.
func (m *Manager) Emit(ctx context.Context, name Name, args ...any) {
	m.mu.Lock()
	if len(m.entries) == 0 {
		m.buffer.push(name, args)
		m.mu.Unlock()
		return
	}
	snapshot := make([]entry, len(m.entries))
	copy(snapshot, m.entries)
	m.mu.Unlock()

	if name == FatalError && len(args) > 0 {
		if p, ok := args[0].(Reportable); ok {
			p.MarkReported()
		}
	}

	var wg sync.WaitGroup
	for _, e := range snapshot {
		h := e.rep.Handler(string(name))
		if h == nil {
			continue
		}
		wg.Add(1)
		go func(id string, h reporter.Handler) {
			defer wg.Done()
			m.invoke(ctx, id, name, h, args)
		}(e.id, h)
	}
	wg.Wait()
}

func (m *Manager) invoke(ctx context.Context, id string, name Name, h reporter.Handler, args []any) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Warn().
				Str("reporter", id).
				Str("event", string(name)).
				Interface("panic", r).
				Msg("reporter handler panicked")
		}
	}()
	if err := h(ctx, args...); err != nil {
		m.log.Warn().
			Str("reporter", id).
			Str("event", string(name)).
			Str("args", stringutil.Ellipsis(fmt.Sprint(args...), 120)).
			Err(err).
			Msg("reporter handler failed")
	}
}

// Run announces the run start to the current reporters, then replays
// every event buffered before the first registration, in original order,
// and clears the buffer. Replayed events that still find an empty
// registry are re-queued.
func (m *Manager) Run(ctx context.Context) {
	m.Emit(ctx, Run)
	for _, ev := range m.buffer.drain() {
		m.Emit(ctx, ev.name, ev.args...)
	}
}

// ReporterCount returns the number of registered reporters.
func (m *Manager) ReporterCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// BufferedCount returns the number of queued early events.
func (m *Manager) BufferedCount() int {
	return m.buffer.len()
}
