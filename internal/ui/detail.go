package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/format"
)

// detailState holds the pet shown in the detail view.
type detailState struct {
	pet      adopt.Pet
	loading  bool
	err      error
	breed    adopt.BreedData
	hasBreed bool
	image    string
}

// openDetail shows pet straight away from the listing and refreshes it,
// together with its breed facts, in the background.
func (m Model) openDetail(pet adopt.Pet) (tea.Model, tea.Cmd) {
	m.view = ViewDetail
	m.detail = detailState{pet: pet, loading: true, image: m.images[pet.ID]}

	gen := m.detailGen.Next()
	ctx, cat := m.ctx, m.catalog
	listed := m.images[pet.ID]
	return m, func() tea.Msg {
		msg := detailLoadedMsg{gen: gen, image: listed}
		fetched, err := cat.Pet(ctx, pet.ID)
		if err != nil {
			msg.err = err
			fetched = pet
		}
		msg.pet = fetched
		msg.breed, msg.hasBreed = cat.BreedInfo(ctx, fetched.Species, fetched.Breed)
		if msg.hasBreed && msg.breed.ImageURL != "" {
			msg.image = msg.breed.ImageURL
		}
		return msg
	}
}

func (m Model) handleDetailLoaded(msg detailLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.detailGen.IsCurrent(msg.gen) {
		m.log.Debug("dropped stale pet detail", zap.Uint64("generation", msg.gen))
		return m, nil
	}
	if msg.err != nil {
		m.log.Warn("pet detail unavailable, showing listing data",
			zap.String("pet_id", msg.pet.ID), zap.Error(msg.err))
	}
	m.detail = detailState{
		pet:      msg.pet,
		err:      msg.err,
		breed:    msg.breed,
		hasBreed: msg.hasBreed,
		image:    msg.image,
	}
	return m, nil
}

// handleDetailKey processes keyboard input for the detail view. Up and down
// step through the pets of the current page.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Retry):
		return m.openDetail(m.detail.pet)
	case key.Matches(msg, m.keys.ViewBreeds):
		return m.openBreeds()
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.snapshot.Page.Items)-1 {
			m.selected++
			return m.openDetail(m.snapshot.Page.Items[m.selected])
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 && m.selected < len(m.snapshot.Page.Items) {
			m.selected--
			return m.openDetail(m.snapshot.Page.Items[m.selected])
		}
	}
	return m, nil
}

// renderDetail renders the pet detail view.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	d := m.detail
	pet := d.pet

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(format.SpeciesEmoji(pet.Species) + " " + pet.Name))
	b.WriteString(" ")
	b.WriteString(styles.StatusBadge(pet.Status).Render(format.StatusLabel(pet.Status)))
	if d.loading {
		b.WriteString(styles.FaintText.Render("  refreshing..."))
	}
	b.WriteString("\n\n")

	listed := "-"
	if created := pet.ParsedCreatedAt(); !created.IsZero() {
		listed = created.Local().Format("2 Jan 2006")
	}
	facts := []struct{ label, value string }{
		{"Species", format.SpeciesLabel(pet.Species)},
		{"Breed", orDash(pet.Breed)},
		{"Age", format.Age(pet)},
		{"Shelter", format.Location(pet)},
		{"Listed", listed},
		{"ID", pet.ID},
	}
	for _, f := range facts {
		b.WriteString(styles.MutedText.Render(padRight(f.label, 10)))
		b.WriteString(styles.Text.Render(f.value))
		b.WriteString("\n")
	}

	if d.err != nil {
		b.WriteString("\n")
		if errors.Is(d.err, adopt.ErrNotFound) {
			b.WriteString(styles.WarningText.Render("This pet is no longer listed."))
		} else {
			b.WriteString(styles.WarningText.Render("Showing listing data: " + strings.ToLower(classifyConnectionError(d.err))))
		}
		b.WriteString(styles.FaintText.Render("  r to retry"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case d.hasBreed:
		breed := d.breed
		if breed.ImageURL == "" {
			breed.ImageURL = d.image
		}
		b.WriteString(m.renderBreedCard(breed, pet.Species))
	case d.loading:
		b.WriteString(styles.FaintText.Render("Looking up breed..."))
	default:
		image := format.Placeholder(pet.Species)
		if d.image != "" {
			image = d.image
		}
		b.WriteString(styles.MutedText.Render("No breed information. "))
		b.WriteString(styles.FaintText.Render(image))
	}
	return b.String()
}
