// pkg/console/writer.go
package console

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	errorPrefix = color.New(color.FgRed).Sprint("[ERROR]")
	warnPrefix  = color.New(color.FgYellow).Sprint("[WARN]")
	infoPrefix  = color.New(color.FgCyan).Sprint("[INFO]")
	tracePrefix = color.New(color.FgHiBlack).Sprint("[TRACE]")
)

// Writer renders console calls as plain lines on an io.Writer, with
// severity prefixes colored unless disabled.
type Writer struct {
	mu     sync.Mutex
	w      io.Writer
	color  bool
	counts map[string]int
	timers map[string]time.Time
}

var _ Console = (*Writer)(nil)

// NewWriter returns a colored console writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:      w,
		color:  true,
		counts: make(map[string]int),
		timers: make(map[string]time.Time),
	}
}

// NoColor disables the severity coloring.
func (c *Writer) NoColor() *Writer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.color = false
	return c
}

func (c *Writer) line(prefix, plain string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.color {
		prefix = plain
	}
	fmt.Fprintf(c.w, "%s %s\n", prefix, fmt.Sprint(args...))
}

func (c *Writer) Assert(condition bool, args ...any) {
	if !condition {
		c.line(errorPrefix, "[ERROR]", append([]any{"assertion failed: "}, args...)...)
	}
}

func (c *Writer) Count(label string) {
	c.mu.Lock()
	c.counts[label]++
	n := c.counts[label]
	c.mu.Unlock()
	c.line(infoPrefix, "[INFO]", fmt.Sprintf("%s: %d", label, n))
}

func (c *Writer) Dir(v any) {
	c.line(infoPrefix, "[INFO]", fmt.Sprintf("%+v", v))
}

func (c *Writer) Error(args ...any) {
	c.line(errorPrefix, "[ERROR]", args...)
}

func (c *Writer) Exception(args ...any) {
	c.line(errorPrefix, "[ERROR]", args...)
}

func (c *Writer) Info(args ...any) {
	c.line(infoPrefix, "[INFO]", args...)
}

func (c *Writer) Log(args ...any) {
	c.line(infoPrefix, "[INFO]", args...)
}

func (c *Writer) Table(v any) {
	c.line(infoPrefix, "[INFO]", fmt.Sprintf("%+v", v))
}

func (c *Writer) Time(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timers[label] = time.Now()
}

func (c *Writer) TimeEnd(label string) {
	c.mu.Lock()
	start, ok := c.timers[label]
	delete(c.timers, label)
	c.mu.Unlock()
	if !ok {
		c.line(warnPrefix, "[WARN]", fmt.Sprintf("timer %q was never started", label))
		return
	}
	c.line(infoPrefix, "[INFO]", fmt.Sprintf("%s: %s", label, time.Since(start)))
}

func (c *Writer) Trace(args ...any) {
	c.line(tracePrefix, "[TRACE]", args...)
}

func (c *Writer) Warn(args ...any) {
	c.line(warnPrefix, "[WARN]", args...)
}
