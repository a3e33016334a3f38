package ui

import (
	"github.com/five82/pawprint/internal/paging"
)

// renderWindow draws the themed page selector. Nothing is drawn for fewer
// than two pages.
func (m Model) renderWindow(totalPages, current int) string {
	styles := m.theme.Styles()
	return paging.NewWindow(totalPages, current, paging.DefaultVisiblePages).Render(func(token string, part paging.Part) string {
		switch part {
		case paging.PartCurrent:
			return styles.AccentText.Bold(true).Render(token)
		case paging.PartDisabled, paging.PartEllipsis:
			return styles.FaintText.Render(token)
		default:
			return styles.MutedText.Render(token)
		}
	})
}
