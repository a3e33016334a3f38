package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/format"
)

// openBreeds switches to the breed browser, fetching the active species
// unless it is already loaded.
func (m Model) openBreeds() (tea.Model, tea.Cmd) {
	m.view = ViewBreeds
	if m.breedsLoading || (m.breedsFor == m.breedSpecies() && m.breedsErr == nil) {
		return m, nil
	}
	return m, m.fetchBreeds()
}

func (m Model) breedSpecies() adopt.Species {
	return adopt.Species(m.breeds.Category())
}

// fetchBreeds loads every breed of the active species. The response is
// tagged so a species toggle mid-flight discards the older list.
func (m *Model) fetchBreeds() tea.Cmd {
	species := m.breedSpecies()
	gen := m.breedGen.Next()
	m.breedsLoading = true
	m.breedsErr = nil

	ctx, cat := m.ctx, m.catalog
	return func() tea.Msg {
		list, err := cat.Breeds(ctx, species)
		return breedsLoadedMsg{gen: gen, species: species, breeds: list, err: err}
	}
}

func (m Model) handleBreedsLoaded(msg breedsLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.breedGen.IsCurrent(msg.gen) {
		m.log.Debug("dropped stale breed list",
			zap.Uint64("generation", msg.gen),
			zap.String("species", string(msg.species)))
		return m, nil
	}
	m.breedsLoading = false
	if msg.err != nil {
		m.log.Warn("breed list unavailable", zap.String("species", string(msg.species)), zap.Error(msg.err))
		m.breedsErr = msg.err
		m.breedsFor = ""
		m.breeds.SetItems(nil)
		m.breedSelected = 0
		return m, nil
	}
	m.breedsErr = nil
	m.breedsFor = msg.species
	m.breeds.SetItems(msg.breeds)
	m.clampBreedSelection()
	return m, nil
}

// handleBreedsKey processes keyboard input for the breed browser.
func (m Model) handleBreedsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ViewBreeds):
		m.view = ViewPets
		return m, nil

	case key.Matches(msg, m.keys.ToggleKind):
		next := adopt.SpeciesCat
		if m.breedSpecies() == adopt.SpeciesCat {
			next = adopt.SpeciesDog
		}
		if m.breeds.SetCategory(string(next)) {
			m.breeds.SetItems(nil)
			m.breedSelected = 0
			return m, m.fetchBreeds()
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.breedSearching = true
		m.breedSearch.CursorEnd()
		return m, m.breedSearch.Focus()

	case key.Matches(msg, m.keys.Retry):
		return m, m.fetchBreeds()

	case key.Matches(msg, m.keys.Down):
		if m.breedSelected < len(m.breeds.View().Items)-1 {
			m.breedSelected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.breedSelected > 0 {
			m.breedSelected--
		}

	case key.Matches(msg, m.keys.NextPage):
		m.breeds.Next()
		m.clampBreedSelection()
	case key.Matches(msg, m.keys.PrevPage):
		m.breeds.Prev()
		m.clampBreedSelection()
	case key.Matches(msg, m.keys.FirstPage):
		m.breeds.SetPage(0)
		m.clampBreedSelection()
	case key.Matches(msg, m.keys.LastPage):
		m.breeds.SetPage(m.breeds.View().TotalPages - 1)
		m.clampBreedSelection()
	}
	return m, nil
}

// handleBreedSearchKey feeds the breed search input. Enter applies the
// current value at once; esc drops edits that have not settled yet.
func (m Model) handleBreedSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.breedSearching = false
		m.breedSearch.Blur()
		m.applyBreedTerm(m.breedSearch.Value())
		return m, nil
	case tea.KeyEsc:
		m.breedSearching = false
		m.breedSearch.Blur()
		m.breedSearch.SetValue(m.breeds.Term())
		if m.breedTerm != nil {
			m.breedTerm.Push(m.breeds.Term())
		}
		return m, nil
	}

	before := m.breedSearch.Value()
	var cmd tea.Cmd
	m.breedSearch, cmd = m.breedSearch.Update(msg)
	if value := m.breedSearch.Value(); value != before {
		if m.breedTerm != nil {
			m.breedTerm.Push(value)
		} else {
			m.applyBreedTerm(value)
		}
	}
	return m, cmd
}

// applyBreedTerm narrows the breed list. A changed term returns to the first page.
func (m *Model) applyBreedTerm(term string) {
	if m.breeds.SetTerm(term) {
		m.breedSelected = 0
	}
}

func (m *Model) clampBreedSelection() {
	n := len(m.breeds.View().Items)
	if m.breedSelected >= n {
		m.breedSelected = max(0, n-1)
	}
}

// renderBreeds renders the breed browser.
func (m Model) renderBreeds() string {
	styles := m.theme.Styles()
	view := m.breeds.View()
	species := m.breedSpecies()

	var b strings.Builder

	tabs := make([]string, 0, 2)
	for _, s := range []adopt.Species{adopt.SpeciesDog, adopt.SpeciesCat} {
		label := format.SpeciesEmoji(s) + " " + format.SpeciesLabel(s) + "s"
		if s == species {
			tabs = append(tabs, styles.AccentText.Bold(true).Underline(true).Render(label))
		} else {
			tabs = append(tabs, styles.MutedText.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("   ")
	switch {
	case m.breedSearching:
		b.WriteString(m.breedSearch.View())
	case m.breeds.Term() != "":
		b.WriteString(styles.AccentText.Render("search: " + m.breeds.Term()))
	}
	b.WriteString("\n\n")

	switch {
	case m.breedsLoading && m.breeds.Len() == 0:
		b.WriteString(styles.MutedText.Render("Loading breeds..."))
	case m.breedsErr != nil:
		b.WriteString(styles.DangerText.Render("Breed list unavailable."))
		b.WriteString(styles.MutedText.Render(" Press r to retry."))
	case view.Total == 0 && m.breeds.Term() != "":
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("No breeds match %q.", m.breeds.Term())))
	case view.Total == 0:
		b.WriteString(styles.MutedText.Render("No breeds listed."))
	default:
		b.WriteString(m.renderBreedRows(view.Items))
		if sel, ok := m.selectedBreed(); ok {
			b.WriteString("\n\n")
			b.WriteString(m.renderBreedCard(sel, species))
		}
	}
	b.WriteString("\n")

	summary := fmt.Sprintf("%d breeds", m.breeds.Len())
	if m.breeds.Term() != "" {
		summary = fmt.Sprintf("%d of %d breeds", view.Total, m.breeds.Len())
	}
	if view.TotalPages > 0 {
		summary = fmt.Sprintf("page %d of %d · %s", view.Page+1, view.TotalPages, summary)
	}
	footer := summary
	if window := m.renderWindow(view.TotalPages, view.Page); window != "" {
		footer = window + "   " + summary
	}
	b.WriteString(styles.Footer.Width(m.width).Render(footer))
	return b.String()
}

func (m Model) renderBreedRows(items []adopt.BreedData) string {
	styles := m.theme.Styles()
	lines := make([]string, len(items))
	for i, breed := range items {
		energy := "-"
		if breed.HasEnergyLevel() {
			energy = format.EnergyBar(breed.EnergyLevel)
		}
		row := cell(breed.Name, 26) + " " + cell(orDash(breed.Origin), 16) + " " + cell(energy, 11)
		if i == m.breedSelected {
			lines[i] = styles.Selected.Render("▸ " + row)
		} else {
			lines[i] = "  " + styles.Text.Render(row)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) selectedBreed() (adopt.BreedData, bool) {
	items := m.breeds.View().Items
	if m.breedSelected < 0 || m.breedSelected >= len(items) {
		return adopt.BreedData{}, false
	}
	return items[m.breedSelected], true
}

// renderBreedCard shows the facts for one breed, used by the breed browser
// and the pet detail view.
func (m Model) renderBreedCard(breed adopt.BreedData, species adopt.Species) string {
	styles := m.theme.Styles()
	rows := []string{
		styles.AccentText.Bold(true).Render(breed.Name),
		styles.MutedText.Render("Origin       ") + styles.Text.Render(orDash(breed.Origin)),
		styles.MutedText.Render("Temperament  ") + styles.Text.Render(orDash(breed.Temperament)),
	}
	if breed.HasEnergyLevel() {
		rows = append(rows, styles.MutedText.Render("Energy       ")+styles.InfoText.Render(format.EnergyBar(breed.EnergyLevel)))
	}
	image := styles.FaintText.Render(format.Placeholder(species))
	if breed.ImageURL != "" {
		image = styles.InfoText.Render(breed.ImageURL)
	}
	rows = append(rows, styles.MutedText.Render("Image        ")+image)
	return styles.Panel.Render(strings.Join(rows, "\n"))
}
