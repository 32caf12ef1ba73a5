// pkg/config/options.go
// Package config carries reporter options and the hub's own settings.
package config

import (
	"errors"
	"time"

	"github.com/spf13/cast"

	"github.com/relay-run/relay/pkg/console"
	"github.com/relay-run/relay/pkg/output"
)

// ErrNoOutput is returned by Options.Output when no accessor is attached.
var ErrNoOutput = errors.New("config: no output attached")

// Options is the configuration handed to reporter factories. The output
// sink is attached as a lazy accessor: constructing an Options (or
// deriving one) never acquires a resource, only the first Output call
// does, and the resolved sink is reused for the lifetime of the instance.
type Options struct {
	// Console is the logging capability set. The hub defaults it to
	// console.Nop for derived options.
	Console console.Console

	// Filename selects a file sink in file-capable environments. Empty
	// means the process standard output.
	Filename string

	// Extra carries free-form user fields. Use the typed accessors to
	// read them.
	Extra map[string]any

	out *output.Lazy
}

// Derive returns a copy of base safe for per-reporter mutation. A nil
// base yields empty options. The Extra map is copied shallowly so the
// derived reporter cannot grow the caller's map.
func Derive(base *Options) *Options {
	o := &Options{}
	if base == nil {
		return o
	}
	o.Console = base.Console
	o.Filename = base.Filename
	o.out = base.out
	if len(base.Extra) > 0 {
		o.Extra = make(map[string]any, len(base.Extra))
		for k, v := range base.Extra {
			o.Extra[k] = v
		}
	}
	return o
}

// SetOutput attaches the lazy output accessor.
func (o *Options) SetOutput(l *output.Lazy) { o.out = l }

// HasOutput reports whether an output accessor is attached.
func (o *Options) HasOutput() bool { return o.out != nil }

// Output resolves the write sink on first call and returns the same sink
// (or the same resolution error) on every later call.
func (o *Options) Output() (output.Sink, error) {
	if o.out == nil {
		return nil, ErrNoOutput
	}
	return o.out.Resolve()
}

// OutputResolved reports whether the sink has actually been acquired.
// Teardown paths use it to avoid opening a sink only to close it.
func (o *Options) OutputResolved() bool {
	return o.out != nil && o.out.Resolved()
}

func (o *Options) extra(key string) any {
	if o.Extra == nil {
		return nil
	}
	return o.Extra[key]
}

// String returns the named extra field coerced to a string.
func (o *Options) String(key string) string { return cast.ToString(o.extra(key)) }

// Int returns the named extra field coerced to an int.
func (o *Options) Int(key string) int { return cast.ToInt(o.extra(key)) }

// Bool returns the named extra field coerced to a bool.
func (o *Options) Bool(key string) bool { return cast.ToBool(o.extra(key)) }

// Duration returns the named extra field coerced to a duration.
func (o *Options) Duration(key string) time.Duration { return cast.ToDuration(o.extra(key)) }
