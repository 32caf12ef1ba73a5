package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayStreamWritesRecordedEvents(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "replay.log")
	stream := strings.Join([]string{
		`{"event":"suiteStart","args":["main"]}`,
		`{"event":"testStart","args":["main - first"]}`,
		`{"event":"testPass","args":["main - first"]}`,
		`{"event":"suiteEnd","args":["main"]}`,
		``,
	}, "\n")

	summary, err := replayStream(context.Background(), strings.NewReader(stream), outFile)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Delivered)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Buffered)
	assert.Equal(t, 0, summary.Unreported)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	out := string(data)

	// The registered reporter saw the startup event and every record.
	assert.Contains(t, out, "run\t")
	assert.Contains(t, out, "suiteStart\tmain")
	assert.Contains(t, out, "testPass\tmain - first")
	assert.Less(t, strings.Index(out, "suiteStart"), strings.Index(out, "suiteEnd"))
}

func TestReplayStreamSkipsMalformedRecords(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "replay.log")
	stream := "not json at all\n" + `{"event":"testStart","args":[]}` + "\n"

	summary, err := replayStream(context.Background(), strings.NewReader(stream), outFile)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Delivered)
}

func TestReplayStreamMarksFatalErrors(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "replay.log")
	stream := `{"event":"fatalError","args":[{"message":"engine crashed"}]}` + "\n"

	summary, err := replayStream(context.Background(), strings.NewReader(stream), outFile)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Delivered)
	assert.Equal(t, 0, summary.Unreported, "a registered reporter received the fatal error")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fatalError\tengine crashed")
}

func TestEventsCommandListsVocabulary(t *testing.T) {
	cmd := NewEventsCommand()
	var out strings.Builder
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())

	for _, name := range []string{"coverage", "fatalError", "run", "destroy", "tunnelDownloadProgress"} {
		assert.Contains(t, out.String(), name)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()
	var out strings.Builder
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "relay")
}
