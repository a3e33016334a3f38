package adopt

import (
	"math"
	"strings"
	"time"
)

// Species identifies the kind of animal a pet or breed belongs to.
type Species string

const (
	SpeciesDog Species = "DOG"
	SpeciesCat Species = "CAT"
)

// ParseSpecies accepts any casing of the known species.
func ParseSpecies(value string) (Species, bool) {
	switch Species(strings.ToUpper(strings.TrimSpace(value))) {
	case SpeciesDog:
		return SpeciesDog, true
	case SpeciesCat:
		return SpeciesCat, true
	default:
		return "", false
	}
}

// PathSegment returns the lowercase form used in breed endpoints.
func (s Species) PathSegment() string {
	return strings.ToLower(strings.TrimSpace(string(s)))
}

// Status is the adoption state of a pet.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusAdopted   Status = "ADOPTED"
	StatusPending   Status = "PENDING"
)

// ParseStatus accepts any casing of the known statuses.
func ParseStatus(value string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(value))) {
	case StatusAvailable:
		return StatusAvailable, true
	case StatusAdopted:
		return StatusAdopted, true
	case StatusPending:
		return StatusPending, true
	default:
		return "", false
	}
}

// Pet mirrors a pet record returned by /api/pets.
type Pet struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Species     Species  `json:"species"`
	Breed       string   `json:"breed"`
	AgeYears    *float64 `json:"ageYears,omitempty"`
	Status      Status   `json:"status"`
	ShelterCity string   `json:"shelterCity"`
	ShelterLat  *float64 `json:"shelterLat,omitempty"`
	ShelterLng  *float64 `json:"shelterLng,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

// Age reports the pet's age when it is known.
func (p Pet) Age() (float64, bool) {
	if p.AgeYears == nil {
		return 0, false
	}
	age := *p.AgeYears
	if math.IsNaN(age) || math.IsInf(age, 0) || age < 0 {
		return 0, false
	}
	return age, true
}

// Coordinates returns the shelter location when both values are present and in range.
func (p Pet) Coordinates() (lat, lng float64, ok bool) {
	if p.ShelterLat == nil || p.ShelterLng == nil {
		return 0, 0, false
	}
	lat, lng = *p.ShelterLat, *p.ShelterLng
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, false
	}
	return lat, lng, true
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (p Pet) ParsedCreatedAt() time.Time {
	return parseTime(p.CreatedAt)
}

// BreedData is the breed reference record served by /api/breeds/{species}.
type BreedData struct {
	Name        string `json:"name"`
	Origin      string `json:"origin,omitempty"`
	Temperament string `json:"temperament,omitempty"`
	EnergyLevel int    `json:"energy_level,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// HasEnergyLevel reports whether EnergyLevel carries a 1-5 rating.
func (b BreedData) HasEnergyLevel() bool {
	return b.EnergyLevel >= 1 && b.EnergyLevel <= 5
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
