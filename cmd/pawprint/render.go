package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/pawprint/internal/paging"
)

var (
	accentColor = lipgloss.AdaptiveColor{Light: "#3A94C5", Dark: "#7FBBB3"}
	mutedColor  = lipgloss.AdaptiveColor{Light: "#829181", Dark: "#9DA9A0"}
	faintColor  = lipgloss.AdaptiveColor{Light: "#A6B0A0", Dark: "#7A8478"}
	warnColor   = lipgloss.AdaptiveColor{Light: "#DFA000", Dark: "#DBBC7F"}
	dangerColor = lipgloss.AdaptiveColor{Light: "#F85552", Dark: "#E67E80"}

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	footerStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(faintColor)).
		BorderColumn(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

// renderFacts renders label/value pairs with the labels aligned.
func renderFacts(facts [][2]string) string {
	width := 0
	for _, f := range facts {
		width = max(width, len(f[0]))
	}
	lines := make([]string, len(facts))
	for i, f := range facts {
		lines[i] = labelStyle.Render(f[0]+strings.Repeat(" ", width-len(f[0])+2)) + f[1]
	}
	return strings.Join(lines, "\n")
}

// pageFooter renders "page X of Y · summary" followed by the page window.
func pageFooter(totalPages, current int, summary string) string {
	text := summary
	if totalPages > 0 {
		text = fmt.Sprintf("page %d of %d · %s", current+1, totalPages, summary)
	}
	if window := paging.NewWindow(totalPages, current, paging.DefaultVisiblePages).String(); window != "" {
		text += "   " + window
	}
	return footerStyle.Render(text)
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
