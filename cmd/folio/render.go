package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// categoryColors mirrors the colours the site uses for skill categories.
var categoryColors = map[string]lipgloss.Color{
	"frontend": lipgloss.Color("39"),
	"backend":  lipgloss.Color("42"),
	"database": lipgloss.Color("214"),
	"devops":   lipgloss.Color("170"),
	"tools":    lipgloss.Color("229"),
	"mobile":   lipgloss.Color("204"),
}

func categoryStyle(category string) lipgloss.Style {
	c, ok := categoryColors[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return dimStyle
	}
	return lipgloss.NewStyle().Foreground(c)
}

// renderTable writes rows under headers. An empty table prints a single
// placeholder line instead.
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, dimStyle.Render("(none)"))
		return err
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// renderFields writes label/value pairs as a two-column table.
func renderFields(w io.Writer, fields [][2]string) error {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f[0], f[1]})
	}
	return renderTable(w, []string{"Field", "Value"}, rows)
}

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02")
}

func formatBool(b bool, yes, no string) string {
	if b {
		return okStyle.Render(yes)
	}
	return dimStyle.Render(no)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// joinList renders a list cell, keeping long lists to a readable width.
func joinList(items []string, max int) string {
	if len(items) == 0 {
		return "-"
	}
	if max > 0 && len(items) > max {
		return strings.Join(items[:max], ", ") + fmt.Sprintf(" +%d", len(items)-max)
	}
	return strings.Join(items, ", ")
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
