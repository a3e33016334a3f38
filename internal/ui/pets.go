package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/format"
	"github.com/five82/pawprint/internal/state"
)

// handlePetsKey processes keyboard input for the pet listing.
func (m Model) handlePetsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Filters):
		m.editing = true
		m.form.load(m.query.Filters)
		return m, m.form.focusCmd()

	case key.Matches(msg, m.keys.ClearFilter):
		if m.query.Filters.IsZero() {
			return m, nil
		}
		m.query.Filters = adopt.Filters{}
		m.search.SetValue("")
		m.query.Page = 0
		m.savePrefs()
		return m, m.fetchPets()

	case key.Matches(msg, m.keys.CycleSort):
		m.query.Sort = adopt.NextSort(m.query.Sort)
		m.query.Page = 0
		m.savePrefs()
		return m, m.fetchPets()

	case key.Matches(msg, m.keys.Retry):
		return m, m.fetchPets()

	case key.Matches(msg, m.keys.ViewBreeds):
		return m.openBreeds()

	case key.Matches(msg, m.keys.Open):
		if pet, ok := m.selectedPet(); ok {
			return m.openDetail(pet)
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.snapshot.Page.Items)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.NextPage):
		return m.goToPage(m.query.Page + 1)
	case key.Matches(msg, m.keys.PrevPage):
		return m.goToPage(m.query.Page - 1)
	case key.Matches(msg, m.keys.FirstPage):
		return m.goToPage(0)
	case key.Matches(msg, m.keys.LastPage):
		return m.goToPage(m.snapshot.Page.TotalPages - 1)
	}

	return m, nil
}

// handleSearchKey feeds the name search input. Edits are debounced; enter
// applies the current value at once and esc drops unsettled edits.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m.applyNameSearch(m.search.Value())
	case tea.KeyEsc:
		// Discard the edit; the pending push is replaced by the active name.
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.query.Filters.Name)
		if m.nameSearch != nil {
			m.nameSearch.Push(m.query.Filters.Name)
		}
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	value := m.search.Value()
	if value == before {
		return m, cmd
	}
	if m.nameSearch != nil {
		m.nameSearch.Push(value)
		return m, cmd
	}
	next, fetch := m.applyNameSearch(value)
	return next, tea.Batch(cmd, fetch)
}

// applyNameSearch starts a fetch when the settled name differs from the
// active filter. A new term always returns to the first page.
func (m Model) applyNameSearch(value string) (tea.Model, tea.Cmd) {
	value = strings.TrimSpace(value)
	if value == m.query.Filters.Name {
		return m, nil
	}
	m.query.Filters.Name = value
	m.query.Page = 0
	m.savePrefs()
	return m, m.fetchPets()
}

func (m Model) goToPage(page int) (tea.Model, tea.Cmd) {
	total := m.snapshot.Page.TotalPages
	if total <= 0 {
		return m, nil
	}
	page = max(0, min(page, total-1))
	if page == m.query.Page {
		return m, nil
	}
	m.query.Page = page
	return m, m.fetchPets()
}

// fetchPets registers m.query with the store and returns the command that
// loads it. The generation is taken here, on the event loop, so requests are
// ordered by when the user made them.
func (m *Model) fetchPets() tea.Cmd {
	gen := m.store.Begin(m.query)
	m.petsGen = gen
	m.loading = true

	ctx, cat, store, q := m.ctx, m.catalog, m.store, m.query
	return func() tea.Msg {
		listing := cat.LoadPets(ctx, q)
		applied := store.Apply(gen, listing.Page, listing.Degraded, listing.Err)
		return petsLoadedMsg{gen: gen, applied: applied}
	}
}

// loadPetsCmd issues the first listing request.
func (m Model) loadPetsCmd() tea.Cmd {
	return m.fetchPets()
}

func (m Model) handlePetsLoaded(msg petsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen >= m.petsGen {
		m.loading = false
	}
	if !msg.applied {
		m.log.Debug("dropped stale pet listing", zap.Uint64("generation", msg.gen))
		return m, nil
	}
	return m.handleSnapshot(m.store.Snapshot())
}

// handleSnapshot adopts a store snapshot and resolves breed images whenever
// a new listing arrived, whether the UI or the poller fetched it.
func (m Model) handleSnapshot(snap state.Snapshot) (tea.Model, tea.Cmd) {
	changed := snap.Generation != m.snapshot.Generation
	m.snapshot = snap
	if m.selected >= len(snap.Page.Items) {
		m.selected = max(0, len(snap.Page.Items)-1)
	}
	if !changed || len(snap.Page.Items) == 0 {
		return m, nil
	}

	gen, pets, ctx, cat := snap.Generation, snap.Page.Items, m.ctx, m.catalog
	return m, func() tea.Msg {
		return imagesLoadedMsg{gen: gen, images: cat.Images(ctx, pets)}
	}
}

func (m Model) selectedPet() (adopt.Pet, bool) {
	items := m.snapshot.Page.Items
	if m.selected < 0 || m.selected >= len(items) {
		return adopt.Pet{}, false
	}
	return items[m.selected], true
}

// Rendering

type petColumn struct {
	title string
	width int
	value func(adopt.Pet) string
}

func (m Model) petColumns() []petColumn {
	cols := []petColumn{
		{"NAME", 16, func(p adopt.Pet) string { return p.Name }},
		{"SPECIES", 8, func(p adopt.Pet) string { return format.SpeciesLabel(p.Species) }},
		{"BREED", 22, func(p adopt.Pet) string { return orDash(p.Breed) }},
		{"AGE", 9, format.Age},
		{"STATUS", 10, func(p adopt.Pet) string { return format.StatusLabel(p.Status) }},
		{"SHELTER", 16, func(p adopt.Pet) string { return orDash(p.ShelterCity) }},
		{"IMG", 3, func(p adopt.Pet) string {
			if m.images[p.ID] != "" {
				return "●"
			}
			return "○"
		}},
	}
	if m.width > 0 && m.width < LayoutCompactWidth {
		return []petColumn{cols[0], cols[1], cols[3], cols[4]}
	}
	return cols
}

// renderPets renders the listing view.
func (m Model) renderPets() string {
	styles := m.theme.Styles()
	var b strings.Builder

	if banner := m.renderDegradedBanner(); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}
	b.WriteString(m.renderSearchLine())
	b.WriteString("\n")

	table := m.renderPetTable()
	if m.width >= LayoutStatsWidth && len(m.snapshot.Page.Items) > 0 {
		table = lipgloss.JoinHorizontal(lipgloss.Top, table, "  ", m.renderStatsPanel())
	}
	b.WriteString(table)
	b.WriteString("\n")

	b.WriteString(styles.Footer.Width(m.width).Render(m.renderPetsFooter()))
	return b.String()
}

func (m Model) renderDegradedBanner() string {
	if !m.snapshot.Degraded {
		return ""
	}
	styles := m.theme.Styles()
	text := "offline sample data"
	if reason := classifyConnectionError(m.snapshot.LastError); reason != "" {
		text += " (" + strings.ToLower(reason) + ")"
	}
	text += " · press r to retry"
	return styles.Banner.Width(m.width).Render(text)
}

func (m Model) renderSearchLine() string {
	styles := m.theme.Styles()
	if m.searching {
		return m.search.View()
	}
	parts := []string{styles.MutedText.Render("sort " + sortLabel(m.query.Sort))}
	if summary := filterSummary(m.query.Filters); summary != "" {
		parts = append(parts, styles.AccentText.Render(summary))
	} else {
		parts = append(parts, styles.FaintText.Render("no filters"))
	}
	return strings.Join(parts, styles.FaintText.Render("  │  "))
}

func (m Model) renderPetTable() string {
	styles := m.theme.Styles()
	items := m.snapshot.Page.Items

	if len(items) == 0 {
		switch {
		case m.loading || !m.snapshot.HasPage:
			return styles.MutedText.Render("Loading pets...")
		case !m.query.Filters.IsZero():
			return styles.MutedText.Render("No pets match these filters. Press x to clear them.")
		default:
			return styles.MutedText.Render("No pets listed yet.")
		}
	}

	cols := m.petColumns()
	var b strings.Builder

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = cell(c.title, c.width)
	}
	b.WriteString(styles.FaintText.Bold(true).Render("  " + strings.Join(header, " ")))
	b.WriteString("\n")

	start, end := visibleRange(len(items), m.selected, m.listRows())
	for i := start; i < end; i++ {
		pet := items[i]
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = cell(c.value(pet), c.width)
		}
		if i == m.selected {
			b.WriteString(styles.Selected.Render("▸ " + strings.Join(cells, " ")))
		} else {
			for j, c := range cols {
				style := styles.Text
				if c.title == "STATUS" {
					style = styles.ToneStyle(format.StatusTone(pet.Status))
				} else if c.title == "IMG" {
					style = styles.FaintText
				}
				cells[j] = style.Render(cells[j])
			}
			b.WriteString("  " + strings.Join(cells, " "))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderPetsFooter() string {
	page := m.snapshot.Page
	summary := fmt.Sprintf("%d pets", page.Total)
	if page.TotalPages > 0 {
		summary = fmt.Sprintf("page %d of %d · %s", page.Number+1, page.TotalPages, summary)
	}
	if m.loading {
		summary += " · loading"
	}
	window := m.renderWindow(page.TotalPages, m.query.Page)
	if window == "" {
		return summary
	}
	return window + "   " + summary
}

// listRows is how many table rows fit below the chrome.
func (m Model) listRows() int {
	rows := m.height - chromeRows - 1
	if m.snapshot.Degraded {
		rows--
	}
	return max(rows, 3)
}

// visibleRange returns the slice bounds of rows to draw so that selected stays visible.
func visibleRange(count, selected, rows int) (int, int) {
	if count <= rows {
		return 0, count
	}
	start := selected - rows/2
	start = max(0, min(start, count-rows))
	return start, start + rows
}

func sortLabel(s adopt.Sort) string {
	if s.Field == "" {
		s = adopt.DefaultSort
	}
	arrow := "↑"
	if s.Desc {
		arrow = "↓"
	}
	return s.Field + " " + arrow
}

func filterSummary(f adopt.Filters) string {
	var parts []string
	if f.Name != "" {
		parts = append(parts, "name~"+f.Name)
	}
	if f.Species != "" {
		parts = append(parts, format.SpeciesLabel(adopt.Species(f.Species)))
	}
	if f.Breed != "" {
		parts = append(parts, "breed~"+f.Breed)
	}
	if f.ShelterCity != "" {
		parts = append(parts, "city~"+f.ShelterCity)
	}
	if f.Status != "" {
		parts = append(parts, format.StatusLabel(adopt.Status(f.Status)))
	}
	return strings.Join(parts, " · ")
}
