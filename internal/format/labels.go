// Package format maps pet enumerations and values to display text.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/five82/pawprint/internal/adopt"
)

// Tone is a semantic color class; the UI theme decides the actual color.
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneMuted
	ToneWarning
)

// SpeciesLabel returns the human-readable species name.
func SpeciesLabel(species adopt.Species) string {
	switch normalize(string(species)) {
	case string(adopt.SpeciesDog):
		return "Dog"
	case string(adopt.SpeciesCat):
		return "Cat"
	default:
		return string(species)
	}
}

// SpeciesEmoji returns a glyph for the species, or a paw print when unknown.
func SpeciesEmoji(species adopt.Species) string {
	switch normalize(string(species)) {
	case string(adopt.SpeciesDog):
		return "🐕"
	case string(adopt.SpeciesCat):
		return "🐱"
	default:
		return "🐾"
	}
}

// StatusLabel returns the human-readable adoption status.
func StatusLabel(status adopt.Status) string {
	switch normalize(string(status)) {
	case string(adopt.StatusAvailable):
		return "Available"
	case string(adopt.StatusAdopted):
		return "Adopted"
	case string(adopt.StatusPending):
		return "Pending"
	default:
		return string(status)
	}
}

// StatusTone returns the color class for a status.
func StatusTone(status adopt.Status) Tone {
	switch normalize(string(status)) {
	case string(adopt.StatusAvailable):
		return ToneSuccess
	case string(adopt.StatusAdopted):
		return ToneMuted
	case string(adopt.StatusPending):
		return ToneWarning
	default:
		return ToneInfo
	}
}

// Age renders a pet's age, or "unknown".
func Age(p adopt.Pet) string {
	age, ok := p.Age()
	if !ok {
		return "unknown"
	}
	text := strconv.FormatFloat(age, 'f', -1, 64)
	if age == 1 {
		return text + " yr"
	}
	return text + " yrs"
}

// Location renders the shelter city and, when valid, its coordinates.
func Location(p adopt.Pet) string {
	city := strings.TrimSpace(p.ShelterCity)
	if city == "" {
		city = "Unknown shelter"
	}
	lat, lng, ok := p.Coordinates()
	if !ok {
		return city
	}
	return fmt.Sprintf("%s (%.4f, %.4f)", city, lat, lng)
}

// EnergyBar renders a 1-5 energy level as filled and empty dots.
func EnergyBar(level int) string {
	if level < 1 || level > 5 {
		return ""
	}
	return strings.Repeat("●", level) + strings.Repeat("○", 5-level) + fmt.Sprintf(" %d/5", level)
}

// Placeholder is shown in place of a breed image that could not be resolved.
func Placeholder(species adopt.Species) string {
	return SpeciesEmoji(species) + " no image"
}

func normalize(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
