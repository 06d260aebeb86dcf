package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

// Styling for human-readable output. JSON output bypasses all of this.
var (
	spotifyGreen = lipgloss.Color("#1DB954")
	amber        = lipgloss.Color("#F59E0B")
	gray         = lipgloss.Color("#9CA3AF")

	stylePlaying = lipgloss.NewStyle().Foreground(spotifyGreen).Bold(true)
	stylePaused  = lipgloss.NewStyle().Foreground(amber)
	styleMuted   = lipgloss.NewStyle().Foreground(gray)
	styleTitle   = lipgloss.NewStyle().Bold(true)
)

// Table provides a simple aligned table formatter.
type Table struct {
	w *tabwriter.Writer
}

// NewTable creates a table writing to stdout with the given headers.
func NewTable(headers ...string) *Table {
	return NewTableWriter(os.Stdout, headers...)
}

// NewTableWriter creates a table writing to a specific writer.
func NewTableWriter(out io.Writer, headers ...string) *Table {
	t := &Table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
	if len(headers) > 0 {
		_, _ = t.w.Write([]byte(strings.Join(headers, "\t") + "\n"))
	}
	return t
}

// Row adds a row to the table.
func (t *Table) Row(values ...string) {
	_, _ = t.w.Write([]byte(strings.Join(values, "\t") + "\n"))
}

// Flush writes the table output.
func (t *Table) Flush() {
	_ = t.w.Flush()
}

// statusIcon returns an icon for the given boolean status.
func statusIcon(active bool) string {
	if active {
		return "●"
	}
	return "○"
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatDuration formats a duration in milliseconds as m:ss or h:mm:ss.
func formatDuration(ms int) string {
	seconds := ms / 1000
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// formatProgress renders a progress bar of the given width.
func formatProgress(current, total, width int) string {
	if total <= 0 {
		return strings.Repeat("─", width)
	}

	percent := float64(current) / float64(total)
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}

	return stylePlaying.Render(strings.Repeat("━", filled)) + styleMuted.Render(strings.Repeat("─", width-filled))
}
