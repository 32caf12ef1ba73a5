// pkg/console/console.go
// Package console models the console-like capability set reporters
// receive through their configuration. A no-op implementation is the
// default so reporters can log unconditionally.
package console

// Console is the capability set native reporters may call. Implementations
// must be safe for concurrent use.
type Console interface {
	Assert(condition bool, args ...any)
	Count(label string)
	Dir(v any)
	Error(args ...any)
	Exception(args ...any)
	Info(args ...any)
	Log(args ...any)
	Table(v any)
	Time(label string)
	TimeEnd(label string)
	Trace(args ...any)
	Warn(args ...any)
}

// Nop discards everything. It is the default console attached to derived
// reporter options when the caller supplies none.
type Nop struct{}

var _ Console = Nop{}

func (Nop) Assert(bool, ...any) {}
func (Nop) Count(string)        {}
func (Nop) Dir(any)             {}
func (Nop) Error(...any)        {}
func (Nop) Exception(...any)    {}
func (Nop) Info(...any)         {}
func (Nop) Log(...any)          {}
func (Nop) Table(any)           {}
func (Nop) Time(string)         {}
func (Nop) TimeEnd(string)      {}
func (Nop) Trace(...any)        {}
func (Nop) Warn(...any)         {}
