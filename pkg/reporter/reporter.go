// pkg/reporter/reporter.go
// Package reporter defines the contract event consumers satisfy and the
// adapter that lets legacy topic-map reporters satisfy it.
package reporter

import (
	"context"

	"github.com/relay-run/relay/pkg/config"
)

// Handler processes a single event emission. Arguments are positional and
// event-specific; a non-nil error is absorbed by the hub, never propagated.
type Handler func(ctx context.Context, args ...any) error

// Reporter exposes at most one handler per event name. A nil return means
// the reporter ignores that event.
type Reporter interface {
	Handler(event string) Handler
}

// Destroyer is the optional teardown capability. The hub invokes it when a
// reporter is removed or the registry is emptied.
type Destroyer interface {
	Destroy() error
}

// Factory constructs a reporter from derived options. The hub hands each
// factory its own copy of the options with a console capability and a lazy
// output accessor attached.
type Factory func(opts *config.Options) (Reporter, error)

// HandlerMap is a Reporter backed by a plain event-name map. It is the
// building block for native reporters and test doubles.
type HandlerMap map[string]Handler

// Handler returns the mapped handler, or nil when the event is unmapped.
func (m HandlerMap) Handler(event string) Handler { return m[event] }
