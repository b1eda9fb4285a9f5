package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders a result set as a tab-delimited header line followed by
// one tab-delimited line per row. On a TTY the header is emphasized;
// the data rows stay plain so the output remains grep- and cut-friendly
// either way.
func (u *UI) Table(columns []string, rows [][]string) string {
	var sb strings.Builder

	header := strings.Join(columns, "\t")
	if u.shouldStyle() {
		header = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Render(header)
	}
	sb.WriteString(header)
	sb.WriteString("\n")

	for _, row := range rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}

	return sb.String()
}
