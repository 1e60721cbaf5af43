package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column is one table column with a fixed display width.
type Column struct {
	Title string
	Width int
}

// Row holds one cell value per column. Short rows render as blanks
// in the missing columns.
type Row []string

// Table is a fixed-width plain-text table with lipgloss coloring.
// It writes straight to a string rather than driving a TUI, so the
// same renderer serves one-shot commands and the watch view.
type Table struct {
	Columns []Column
	Rows    []Row
	SelIdx  int // highlighted row, -1 for none
}

// NewTable returns an empty table over the given columns.
func NewTable(cols []Column) *Table {
	return &Table{Columns: cols, SelIdx: -1}
}

// AddRow appends one row of cells.
func (t *Table) AddRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// fit forces s into exactly width runes: overlong values are cut,
// short ones space-padded. Styling happens after fitting so ANSI
// escapes never count against the width.
func fit(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// Render produces the table: styled header, dashed divider, then rows.
func (t *Table) Render() string {
	head := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	cell := lipgloss.NewStyle().Foreground(ColorValue)

	var sb strings.Builder

	for i, col := range t.Columns {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(head.Render(fit(col.Title, col.Width)))
	}
	sb.WriteString("\n")

	for i, col := range t.Columns {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(StyleDim.Render(strings.Repeat("-", col.Width)))
	}
	sb.WriteString("\n")

	for i, row := range t.Rows {
		style := cell
		if i == t.SelIdx {
			style = StyleSelected
		}
		for j, col := range t.Columns {
			if j > 0 {
				sb.WriteString(" ")
			}
			val := ""
			if j < len(row) {
				val = row[j]
			}
			sb.WriteString(style.Render(fit(val, col.Width)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// KeyValueBlock renders labeled values inside a rounded border, used
// for session, network, config and transaction summaries.
func KeyValueBlock(title string, pairs [][2]string) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(StyleTitle.Render(title))
		sb.WriteString("\n")
	}
	for _, p := range pairs {
		sb.WriteString("  ")
		sb.WriteString(StyleMeta.Render(fmt.Sprintf("%-20s", p[0]+":")))
		sb.WriteString(" ")
		sb.WriteString(StyleValue.Render(p[1]))
		sb.WriteString("\n")
	}
	return StyleBorder.Render(sb.String())
}
