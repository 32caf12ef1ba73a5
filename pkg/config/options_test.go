package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relay-run/relay/pkg/console"
	"github.com/relay-run/relay/pkg/output"
)

func TestDeriveNilBase(t *testing.T) {
	o := Derive(nil)
	require.NotNil(t, o)
	assert.Nil(t, o.Console)
	assert.False(t, o.HasOutput())
	assert.Empty(t, o.Filename)
}

func TestDeriveCopiesExtra(t *testing.T) {
	base := &Options{
		Console:  console.Nop{},
		Filename: "out.log",
		Extra:    map[string]any{"label": "x"},
	}

	derived := Derive(base)
	derived.Extra["label"] = "y"
	derived.Extra["added"] = true

	assert.Equal(t, "x", base.Extra["label"])
	assert.NotContains(t, base.Extra, "added")
	assert.Equal(t, "out.log", derived.Filename)
	assert.NotNil(t, derived.Console)
}

func TestOptionsOutputLazyAndMemoized(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	o := &Options{}
	o.SetOutput(output.NewLazy(func() (output.Sink, error) {
		calls++
		return output.NewStdoutSink(&buf), nil
	}))

	assert.True(t, o.HasOutput())
	assert.False(t, o.OutputResolved())
	assert.Equal(t, 0, calls, "attaching output must not acquire the sink")

	first, err := o.Output()
	require.NoError(t, err)
	second, err := o.Output()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.True(t, o.OutputResolved())
}

func TestOptionsOutputWithoutAccessor(t *testing.T) {
	o := &Options{}
	_, err := o.Output()
	assert.ErrorIs(t, err, ErrNoOutput)
}

func TestOptionsExtraAccessors(t *testing.T) {
	o := &Options{Extra: map[string]any{
		"name":    "console",
		"retries": "3",
		"verbose": true,
		"delay":   "150ms",
	}}

	assert.Equal(t, "console", o.String("name"))
	assert.Equal(t, 3, o.Int("retries"))
	assert.True(t, o.Bool("verbose"))
	assert.Equal(t, 150*time.Millisecond, o.Duration("delay"))

	assert.Empty(t, o.String("missing"))
	assert.Zero(t, o.Int("missing"))
	assert.False(t, o.Bool("missing"))
}
