package paging

import (
	"strconv"
	"strings"
)

// DefaultVisiblePages is the window width used when none is given.
const DefaultVisiblePages = 5

// Window describes which page controls to render.
//
// Pages is the contiguous run of page numbers around Current. ShowFirst and
// ShowLast request shortcuts to page 0 and the last page when those are
// outside the run; the ellipsis flags are set only when pages are skipped
// between the shortcut and the run.
type Window struct {
	Pages            []int
	Current          int
	TotalPages       int
	ShowFirst        bool
	LeadingEllipsis  bool
	ShowLast         bool
	TrailingEllipsis bool
	HasPrev          bool
	HasNext          bool
}

// Empty reports whether nothing should be rendered.
func (w Window) Empty() bool {
	return len(w.Pages) == 0
}

// NewWindow centers maxVisible page numbers on current, shifting the run
// when it would cross either end. Fewer than two pages yields an empty Window.
func NewWindow(totalPages, current, maxVisible int) Window {
	if totalPages <= 1 {
		return Window{}
	}
	if maxVisible <= 0 {
		maxVisible = DefaultVisiblePages
	}
	if current < 0 {
		current = 0
	}
	if current > totalPages-1 {
		current = totalPages - 1
	}

	start := current - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible - 1
	if end > totalPages-1 {
		end = totalPages - 1
		start = end - maxVisible + 1
		if start < 0 {
			start = 0
		}
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	return Window{
		Pages:            pages,
		Current:          current,
		TotalPages:       totalPages,
		ShowFirst:        start > 0,
		LeadingEllipsis:  start > 1,
		ShowLast:         end < totalPages-1,
		TrailingEllipsis: end < totalPages-2,
		HasPrev:          current > 0,
		HasNext:          current < totalPages-1,
	}
}

// Part classifies a token produced by Render.
type Part int

const (
	PartPage Part = iota
	PartCurrent
	PartEllipsis
	PartArrow
	PartDisabled
)

// Render lays out the window as space-separated tokens, e.g.
// "‹ 1 … 4 [5] 6 … 10 ›", passing each through paint. Page labels are
// 1-based. An empty window renders as "".
func (w Window) Render(paint func(token string, part Part) string) string {
	if w.Empty() {
		return ""
	}
	label := func(page int) string { return strconv.Itoa(page + 1) }
	arrow := func(glyph string, enabled bool) string {
		if enabled {
			return paint(glyph, PartArrow)
		}
		return paint(glyph, PartDisabled)
	}

	parts := []string{arrow("‹", w.HasPrev)}
	if w.ShowFirst {
		parts = append(parts, paint(label(0), PartPage))
	}
	if w.LeadingEllipsis {
		parts = append(parts, paint("…", PartEllipsis))
	}
	for _, page := range w.Pages {
		if page == w.Current {
			parts = append(parts, paint("["+label(page)+"]", PartCurrent))
		} else {
			parts = append(parts, paint(label(page), PartPage))
		}
	}
	if w.TrailingEllipsis {
		parts = append(parts, paint("…", PartEllipsis))
	}
	if w.ShowLast {
		parts = append(parts, paint(label(w.TotalPages-1), PartPage))
	}
	parts = append(parts, arrow("›", w.HasNext))
	return strings.Join(parts, " ")
}

// String renders the window without styling.
func (w Window) String() string {
	return w.Render(func(token string, _ Part) string { return token })
}
