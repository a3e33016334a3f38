// Package paging implements client-side filtering, pagination and the
// page-number window shown under paged lists.
package paging

import "strings"

// Result is one page of a filtered collection.
type Result[T any] struct {
	Items      []T
	Page       int
	Size       int
	Total      int // filtered count
	TotalPages int
}

// FilterByName keeps items whose name contains term, ignoring case.
// An empty term keeps everything.
func FilterByName[T any](items []T, term string, name func(T) string) []T {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(name(it)), needle) {
			out = append(out, it)
		}
	}
	return out
}

// TotalPages returns ceil(count/size), or zero when either is not positive.
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Slice returns the window [page*size, page*size+size) of items.
// Out-of-range pages yield an empty slice.
func Slice[T any](items []T, page, size int) []T {
	if size <= 0 || page < 0 {
		return nil
	}
	start := page * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Paginate filters items by name and slices out the requested page.
func Paginate[T any](items []T, term string, name func(T) string, page, size int) Result[T] {
	filtered := FilterByName(items, term, name)
	return Result[T]{
		Items:      Slice(filtered, page, size),
		Page:       page,
		Size:       size,
		Total:      len(filtered),
		TotalPages: TotalPages(len(filtered), size),
	}
}

// Pager keeps the state behind a client-side paged list: the full collection,
// the search term, the active category and the current page. Changing the
// term or the category moves back to the first page.
type Pager[T any] struct {
	items    []T
	name     func(T) string
	size     int
	term     string
	category string
	page     int
}

// NewPager builds a Pager with the given page size.
func NewPager[T any](size int, name func(T) string) *Pager[T] {
	if size <= 0 {
		size = 1
	}
	return &Pager[T]{name: name, size: size}
}

// SetItems replaces the collection. The page is kept when it still exists.
func (p *Pager[T]) SetItems(items []T) {
	p.items = items
	p.clamp()
}

// SetTerm updates the search term and reports whether it changed.
func (p *Pager[T]) SetTerm(term string) bool {
	term = strings.TrimSpace(term)
	if term == p.term {
		return false
	}
	p.term = term
	p.page = 0
	return true
}

// SetCategory updates the category (e.g. species) and reports whether it changed.
func (p *Pager[T]) SetCategory(category string) bool {
	if category == p.category {
		return false
	}
	p.category = category
	p.page = 0
	return true
}

// SetPage moves to page, clamped to the available pages.
func (p *Pager[T]) SetPage(page int) {
	p.page = page
	p.clamp()
}

// Next moves forward one page when possible.
func (p *Pager[T]) Next() { p.SetPage(p.page + 1) }

// Prev moves back one page when possible.
func (p *Pager[T]) Prev() { p.SetPage(p.page - 1) }

// Term returns the active search term.
func (p *Pager[T]) Term() string { return p.term }

// Category returns the active category.
func (p *Pager[T]) Category() string { return p.category }

// Page returns the current page index.
func (p *Pager[T]) Page() int { return p.page }

// Len returns the number of items before filtering.
func (p *Pager[T]) Len() int { return len(p.items) }

// Size returns the page size.
func (p *Pager[T]) Size() int { return p.size }

// View returns the visible page.
func (p *Pager[T]) View() Result[T] {
	return Paginate(p.items, p.term, p.name, p.page, p.size)
}

func (p *Pager[T]) clamp() {
	pages := TotalPages(len(FilterByName(p.items, p.term, p.name)), p.size)
	if p.page >= pages {
		p.page = pages - 1
	}
	if p.page < 0 {
		p.page = 0
	}
}
