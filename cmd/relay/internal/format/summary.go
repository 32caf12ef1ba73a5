// cmd/relay/internal/format/summary.go
package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red
)

// Summary represents replay results for consistent formatting.
type Summary struct {
	Delivered  int // Events fanned out to reporters
	Buffered   int // Events still queued (no reporter was registered)
	Skipped    int // Malformed records dropped while decoding
	Unreported int // fatalError payloads no reporter received
}

// RenderSummary renders replay results as a short styled block.
func RenderSummary(s Summary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Replay summary"))
	b.WriteString("\n")
	b.WriteString(okStyle.Render(fmt.Sprintf("  ✓ Delivered: %d", s.Delivered)))
	b.WriteString("\n")
	if s.Buffered > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  ⊘ Buffered:  %d", s.Buffered)))
		b.WriteString("\n")
	}
	if s.Skipped > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  ⊘ Skipped:   %d", s.Skipped)))
		b.WriteString("\n")
	}
	if s.Unreported > 0 {
		b.WriteString(failStyle.Render(fmt.Sprintf("  ✗ Unreported fatal errors: %d", s.Unreported)))
		b.WriteString("\n")
	}

	return b.String()
}
