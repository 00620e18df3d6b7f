package ui

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"io"
	"strings"
)

// Colors used in the explorer output.
var (
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorYellow  = lipgloss.Color("#FFFF00")
	ColorRed     = lipgloss.Color("#FF0000")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
)

// Base styles reused by reporters, paginator and controller.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	LabelStyle = lipgloss.NewStyle().
			Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	ElapsedStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorCyan).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// Separator returns the line printed between sections
func Separator(width int) string {
	return strings.Repeat("-", width)
}

// PrintTitle writes a section title surrounded by blank lines
func PrintTitle(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n\n", TitleStyle.Render(title))
}

// PrintValue writes "label: value"
func PrintValue(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s %v\n", LabelStyle.Render(label+":"), value)
}

// PrintNotice writes an explanatory message, used when a statistic cannot be calculated
func PrintNotice(w io.Writer, message string) {
	fmt.Fprintln(w, NoticeStyle.Render(message))
}

func PrintError(w io.Writer, message string) {
	fmt.Fprintln(w, ErrorStyle.Render(message))
}

// PrintElapsed writes the time spent computing a section followed by the separator
func PrintElapsed(w io.Writer, seconds float64, separatorWidth int) {
	fmt.Fprintf(w, "\n%s\n%s\n", ElapsedStyle.Render(fmt.Sprintf("This took %v seconds.", seconds)), Separator(separatorWidth))
}

// RenderTable renders rows under header as a bordered table
func RenderTable(header []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimGray)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		}).
		Headers(header...).
		Rows(rows...).
		String()
}
