package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/format"
)

// Filter form rows, in focus order.
const (
	fieldSpecies = iota
	fieldBreed
	fieldCity
	fieldStatus
	fieldCount
)

var (
	speciesChoices = []string{"", string(adopt.SpeciesDog), string(adopt.SpeciesCat)}
	statusChoices  = []string{"", string(adopt.StatusAvailable), string(adopt.StatusAdopted), string(adopt.StatusPending)}
)

// filterForm edits every filter except the name, which has its own search line.
type filterForm struct {
	breed   textinput.Model
	city    textinput.Model
	species int // index into speciesChoices
	status  int // index into statusChoices
	focus   int
}

func newFilterForm() filterForm {
	breed := textinput.New()
	breed.Placeholder = "any breed"
	breed.CharLimit = 64
	breed.Prompt = ""

	city := textinput.New()
	city.Placeholder = "any city"
	city.CharLimit = 64
	city.Prompt = ""

	return filterForm{breed: breed, city: city}
}

// load copies f into the form and focuses the first row.
func (ff *filterForm) load(f adopt.Filters) {
	ff.breed.SetValue(f.Breed)
	ff.city.SetValue(f.ShelterCity)
	ff.species = choiceIndex(speciesChoices, f.Species)
	ff.status = choiceIndex(statusChoices, f.Status)
	ff.focus = fieldSpecies
}

// apply returns base with the form's fields replacing its non-name filters.
func (ff filterForm) apply(base adopt.Filters) adopt.Filters {
	base.Species = speciesChoices[ff.species]
	base.Breed = strings.TrimSpace(ff.breed.Value())
	base.ShelterCity = strings.TrimSpace(ff.city.Value())
	base.Status = statusChoices[ff.status]
	return base
}

// focusCmd moves text focus to the focused row.
func (ff *filterForm) focusCmd() tea.Cmd {
	ff.breed.Blur()
	ff.city.Blur()
	switch ff.focus {
	case fieldBreed:
		return ff.breed.Focus()
	case fieldCity:
		return ff.city.Focus()
	}
	return nil
}

func (ff *filterForm) move(delta int) tea.Cmd {
	ff.focus = (ff.focus + delta + fieldCount) % fieldCount
	return ff.focusCmd()
}

// cycle steps the choice on a species or status row. It reports whether the
// focused row is a choice row.
func (ff *filterForm) cycle(delta int) bool {
	switch ff.focus {
	case fieldSpecies:
		ff.species = (ff.species + delta + len(speciesChoices)) % len(speciesChoices)
	case fieldStatus:
		ff.status = (ff.status + delta + len(statusChoices)) % len(statusChoices)
	default:
		return false
	}
	return true
}

func choiceIndex(choices []string, value string) int {
	value = strings.ToUpper(strings.TrimSpace(value))
	for i, c := range choices {
		if c == value {
			return i
		}
	}
	return 0
}

// handleFilterFormKey drives the filter form. Enter applies, esc cancels.
func (m Model) handleFilterFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.form.breed.Blur()
		m.form.city.Blur()
		return m, nil
	case "enter":
		m.editing = false
		m.form.breed.Blur()
		m.form.city.Blur()
		next := m.form.apply(m.query.Filters)
		if next == m.query.Filters {
			return m, nil
		}
		m.query.Filters = next
		m.query.Page = 0
		m.savePrefs()
		return m, m.fetchPets()
	case "tab", "down":
		return m, m.form.move(1)
	case "shift+tab", "up":
		return m, m.form.move(-1)
	case "left":
		if m.form.cycle(-1) {
			return m, nil
		}
	case "right", " ":
		if m.form.cycle(1) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case fieldBreed:
		m.form.breed, cmd = m.form.breed.Update(msg)
	case fieldCity:
		m.form.city, cmd = m.form.city.Update(msg)
	}
	return m, cmd
}

// renderFilterForm renders the filter editor panel.
func (m Model) renderFilterForm() string {
	styles := m.theme.Styles()
	ff := m.form

	choice := func(value string, label func(string) string) string {
		if value == "" {
			return "‹ any ›"
		}
		return "‹ " + label(value) + " ›"
	}
	speciesLabel := func(v string) string { return format.SpeciesLabel(adopt.Species(v)) }
	statusLabel := func(v string) string { return format.StatusLabel(adopt.Status(v)) }

	rows := []struct {
		label string
		value string
	}{
		{"Species", choice(speciesChoices[ff.species], speciesLabel)},
		{"Breed", ff.breed.View()},
		{"Shelter city", ff.city.View()},
		{"Status", choice(statusChoices[ff.status], statusLabel)},
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Filters"))
	b.WriteString("\n\n")
	for i, row := range rows {
		marker := "  "
		labelStyle := styles.MutedText
		if i == ff.focus {
			marker = "▸ "
			labelStyle = styles.AccentText
		}
		b.WriteString(labelStyle.Render(marker + padRight(row.label, 14)))
		b.WriteString(styles.Text.Render(row.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("tab move · ←/→ change · enter apply · esc cancel"))

	return styles.Panel.
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Render(b.String())
}
