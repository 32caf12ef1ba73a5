// pkg/console/logger.go
package console

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger adapts a zerolog.Logger to the Console capability set.
type Logger struct {
	log zerolog.Logger

	mu     sync.Mutex
	counts map[string]int
	timers map[string]time.Time
}

var _ Console = (*Logger)(nil)

// NewLogger wraps log in a Console.
func NewLogger(log zerolog.Logger) *Logger {
	return &Logger{
		log:    log,
		counts: make(map[string]int),
		timers: make(map[string]time.Time),
	}
}

func (c *Logger) Assert(condition bool, args ...any) {
	if !condition {
		c.log.Error().Msg("assertion failed: " + fmt.Sprint(args...))
	}
}

func (c *Logger) Count(label string) {
	c.mu.Lock()
	c.counts[label]++
	n := c.counts[label]
	c.mu.Unlock()
	c.log.Info().Int("count", n).Msg(label)
}

func (c *Logger) Dir(v any) {
	c.log.Info().Interface("value", v).Msg("dir")
}

func (c *Logger) Error(args ...any) {
	c.log.Error().Msg(fmt.Sprint(args...))
}

func (c *Logger) Exception(args ...any) {
	c.log.Error().Msg(fmt.Sprint(args...))
}

func (c *Logger) Info(args ...any) {
	c.log.Info().Msg(fmt.Sprint(args...))
}

func (c *Logger) Log(args ...any) {
	c.log.Info().Msg(fmt.Sprint(args...))
}

func (c *Logger) Table(v any) {
	c.log.Info().Interface("table", v).Msg("table")
}

func (c *Logger) Time(label string) {
	c.mu.Lock()
	c.timers[label] = time.Now()
	c.mu.Unlock()
}

func (c *Logger) TimeEnd(label string) {
	c.mu.Lock()
	start, ok := c.timers[label]
	delete(c.timers, label)
	c.mu.Unlock()
	if !ok {
		c.log.Warn().Str("label", label).Msg("timer was never started")
		return
	}
	c.log.Info().Dur("elapsed", time.Since(start)).Msg(label)
}

func (c *Logger) Trace(args ...any) {
	c.log.Trace().Msg(fmt.Sprint(args...))
}

func (c *Logger) Warn(args ...any) {
	c.log.Warn().Msg(fmt.Sprint(args...))
}
