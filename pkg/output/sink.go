// pkg/output/sink.go
// Package output resolves write sinks for reporters: a file, the process
// standard output, or an in-page buffer. Sinks are acquired lazily on
// first use and memoized per configuration.
package output

import (
	"fmt"
	"io"
	"os"
)

// Sink is a writable destination for reporter output.
type Sink interface {
	io.Writer

	// End finishes the sink. File sinks close the underlying file, page
	// sinks flush to their document; the stdout sink never closes the
	// process stream.
	End() error
}

// FileSink writes to a regular file and closes it on End.
type FileSink struct {
	f *os.File
}

// OpenFileSink opens (truncating) the named file for writing.
func OpenFileSink(name string) (*FileSink, error) {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output file: %w", err)
	}
	return &FileSink{f: f}, nil
}

func (s *FileSink) Write(p []byte) (int, error) { return s.f.Write(p) }

func (s *FileSink) End() error { return s.f.Close() }

// StdoutSink forwards writes to the process standard output (or a stand-in
// writer). End goes through the same forwarding path and writes nothing:
// standard output is shared and must never be closed here.
type StdoutSink struct {
	w io.Writer
}

// NewStdoutSink wraps w, defaulting to os.Stdout when nil.
func NewStdoutSink(w io.Writer) *StdoutSink {
	if w == nil {
		w = os.Stdout
	}
	return &StdoutSink{w: w}
}

func (s *StdoutSink) Write(p []byte) (int, error) { return s.w.Write(p) }

func (s *StdoutSink) End() error { return nil }
