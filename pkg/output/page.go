// pkg/output/page.go
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrSinkEnded is returned for writes to a page sink after End.
var ErrSinkEnded = errors.New("output: sink already ended")

// Document collects finished page blocks. It stands in for the hosting
// page in environments that render output into a document instead of a
// stream: blocks become visible only once a sink ends.
type Document struct {
	mu     sync.Mutex
	blocks []string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

func (d *Document) append(block string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.blocks = append(d.blocks, block)
}

// Blocks returns a copy of the appended blocks in append order.
func (d *Document) Blocks() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// Render writes every block as a preformatted section.
func (d *Document) Render(w io.Writer) error {
	for _, block := range d.Blocks() {
		if _, err := fmt.Fprintf(w, "<pre>%s</pre>\n", block); err != nil {
			return fmt.Errorf("render document: %w", err)
		}
	}
	return nil
}

// PageSink accumulates written chunks in memory. End appends the
// accumulated text to the document as one preformatted block; no further
// writes are accepted afterwards.
type PageSink struct {
	mu    sync.Mutex
	doc   *Document
	buf   strings.Builder
	ended bool
}

// NewPageSink returns a sink that flushes into doc on End.
func NewPageSink(doc *Document) *PageSink {
	return &PageSink{doc: doc}
}

func (s *PageSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return 0, ErrSinkEnded
	}
	return s.buf.Write(p)
}

func (s *PageSink) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return ErrSinkEnded
	}
	s.ended = true
	s.doc.append(s.buf.String())
	return nil
}
