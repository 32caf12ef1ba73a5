package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyResolvesOnce(t *testing.T) {
	calls := 0
	l := NewLazy(func() (Sink, error) {
		calls++
		return NewStdoutSink(&bytes.Buffer{}), nil
	})

	assert.False(t, l.Resolved())
	assert.Equal(t, 0, calls, "construction must not acquire")

	first, err := l.Resolve()
	require.NoError(t, err)
	second, err := l.Resolve()
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Same(t, first, second)
	assert.True(t, l.Resolved())
}

func TestLazyMemoizesError(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	l := NewLazy(func() (Sink, error) {
		calls++
		return nil, boom
	})

	_, err := l.Resolve()
	assert.ErrorIs(t, err, boom)
	_, err = l.Resolve()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestResolverFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	r := NewResolver()

	l := r.Lazy(path)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "file must not exist before first resolve")

	sink, err := l.Resolve()
	require.NoError(t, err)

	_, err = sink.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, sink.End())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestResolverStdoutSinkNeverCloses(t *testing.T) {
	var buf bytes.Buffer
	r := NewResolver(WithStdout(&buf))

	sink, err := r.Lazy("").Resolve()
	require.NoError(t, err)

	_, err = sink.Write([]byte("one"))
	require.NoError(t, err)
	require.NoError(t, sink.End())

	// End must not close the stream: later writes still land.
	_, err = sink.Write([]byte("two"))
	require.NoError(t, err)
	assert.Equal(t, "onetwo", buf.String())
}

func TestResolverPageSink(t *testing.T) {
	doc := NewDocument()
	r := NewResolver(WithCapability(CapabilityPage), WithDocument(doc))

	sink, err := r.Lazy("ignored.log").Resolve()
	require.NoError(t, err)

	_, err = sink.Write([]byte("line one\n"))
	require.NoError(t, err)
	_, err = sink.Write([]byte("line two\n"))
	require.NoError(t, err)

	assert.Empty(t, doc.Blocks(), "nothing visible before End")
	require.NoError(t, sink.End())

	require.Len(t, doc.Blocks(), 1)
	assert.Equal(t, "line one\nline two\n", doc.Blocks()[0])

	_, err = sink.Write([]byte("late"))
	assert.ErrorIs(t, err, ErrSinkEnded)
}

func TestDocumentRender(t *testing.T) {
	doc := NewDocument()
	sink := NewPageSink(doc)
	_, err := sink.Write([]byte("results"))
	require.NoError(t, err)
	require.NoError(t, sink.End())

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Equal(t, "<pre>results</pre>\n", buf.String())
}

func TestFileSinkOpenError(t *testing.T) {
	r := NewResolver()
	_, err := r.Lazy(filepath.Join(t.TempDir(), "missing", "dir", "out.log")).Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open output file")
}
