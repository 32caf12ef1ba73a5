// pkg/output/resolver.go
package output

import (
	"io"
	"os"
)

// Capability selects the kind of environment the resolver serves.
type Capability int

const (
	// CapabilityFile marks environments with file system access and a
	// process standard output.
	CapabilityFile Capability = iota
	// CapabilityPage marks document-hosting environments where output is
	// buffered and appended to a page when the sink ends.
	CapabilityPage
)

// Resolver produces write sinks for reporter configurations. Selection is
// explicit per capability rather than probed from ambient state:
//
//   - file capability with a filename: a lazily opened file sink
//   - file capability without a filename: a pass-through to stdout that
//     is never closed
//   - page capability: an in-memory buffer appended to the document on End
type Resolver struct {
	capability Capability
	stdout     io.Writer
	doc        *Document
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithCapability sets the environment capability.
func WithCapability(c Capability) ResolverOption {
	return func(r *Resolver) { r.capability = c }
}

// WithStdout overrides the stream backing filename-less sinks.
func WithStdout(w io.Writer) ResolverOption {
	return func(r *Resolver) { r.stdout = w }
}

// WithDocument sets the document page sinks flush into.
func WithDocument(d *Document) ResolverOption {
	return func(r *Resolver) { r.doc = d }
}

// NewResolver returns a resolver for a file-capable environment writing to
// os.Stdout unless configured otherwise.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{capability: CapabilityFile, stdout: os.Stdout}
	for _, opt := range opts {
		opt(r)
	}
	if r.doc == nil {
		r.doc = NewDocument()
	}
	return r
}

// Document returns the document page sinks flush into.
func (r *Resolver) Document() *Document { return r.doc }

// Lazy returns a memoized accessor for the sink this resolver would
// produce for filename. No resource is acquired until the first Resolve.
func (r *Resolver) Lazy(filename string) *Lazy {
	return NewLazy(func() (Sink, error) {
		return r.open(filename)
	})
}

func (r *Resolver) open(filename string) (Sink, error) {
	if r.capability == CapabilityPage {
		return NewPageSink(r.doc), nil
	}
	if filename != "" {
		return OpenFileSink(filename)
	}
	return NewStdoutSink(r.stdout), nil
}
