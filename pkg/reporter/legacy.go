// pkg/reporter/legacy.go
package reporter

import (
	"context"
	"sort"
	"strings"

	"github.com/relay-run/relay/pkg/stringutil"
)

// topicEvents is the fixed table mapping legacy topic identifiers to event
// names. Topics missing from the table but starting with a path separator
// get a name derived with stringutil.CamelPath; all other keys are ignored.
var topicEvents = map[string]string{
	"/test/new":     "newTest",
	"/suite/new":    "newSuite",
	"/client/end":   "runEnd",
	"/error":        "fatalError",
	"/runner/end":   "runEnd",
	"/runner/start": "runStart",
	"/tunnel/stop":  "tunnelEnd",
	"start":         "run",
	"stop":          "destroy",
}

// LegacyAdapter wraps an old topic-keyed callback mapping so it behaves as
// a Reporter. The event-name to delegate mapping is computed once at
// construction; dispatch is a plain map lookup.
type LegacyAdapter struct {
	handlers map[string]Handler
}

// NewLegacyAdapter builds an adapter from a flat topic map. Map values may
// be any of the callback forms accepted by normalizeCallback; entries with
// unrecognized topics or uncallable values are silently dropped.
func NewLegacyAdapter(topics map[string]any) *LegacyAdapter {
	a := &LegacyAdapter{handlers: make(map[string]Handler, len(topics))}
	for topic, cb := range topics {
		event, ok := eventNameForTopic(topic)
		if !ok {
			continue
		}
		h := normalizeCallback(cb)
		if h == nil {
			continue
		}
		a.handlers[event] = h
	}
	return a
}

// Handler implements Reporter.
func (a *LegacyAdapter) Handler(event string) Handler { return a.handlers[event] }

// Destroy implements the teardown capability by delegating to the callback
// the legacy map wired for "stop", when present.
func (a *LegacyAdapter) Destroy() error {
	h := a.handlers["destroy"]
	if h == nil {
		return nil
	}
	return h(context.Background())
}

// Events returns the sorted event names the adapter answers to.
func (a *LegacyAdapter) Events() []string {
	events := make([]string, 0, len(a.handlers))
	for event := range a.handlers {
		events = append(events, event)
	}
	sort.Strings(events)
	return events
}

func eventNameForTopic(topic string) (string, bool) {
	if event, ok := topicEvents[topic]; ok {
		return event, true
	}
	if strings.HasPrefix(topic, "/") {
		return stringutil.CamelPath(topic), true
	}
	return "", false
}

// normalizeCallback lifts the callback shapes found in legacy topic maps
// into the Handler signature. Unknown shapes yield nil.
func normalizeCallback(v any) Handler {
	switch fn := v.(type) {
	case Handler:
		return fn
	case func(ctx context.Context, args ...any) error:
		return fn
	case func(args ...any) error:
		return func(_ context.Context, args ...any) error {
			return fn(args...)
		}
	case func(args ...any):
		return func(_ context.Context, args ...any) error {
			fn(args...)
			return nil
		}
	case func() error:
		return func(context.Context, ...any) error {
			return fn()
		}
	case func():
		return func(context.Context, ...any) error {
			fn()
			return nil
		}
	default:
		return nil
	}
}
