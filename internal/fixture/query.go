package fixture

import (
	"cmp"
	"slices"
	"strings"

	"github.com/five82/pawprint/internal/adopt"
)

const (
	// DefaultPageSize applies when a query carries no size.
	DefaultPageSize = adopt.DefaultPageSize
	// MaxPageSize caps the size a client may ask for.
	MaxPageSize = 100
)

// Query filters, sorts and paginates pets the way the adoption API does.
// Text filters are case-insensitive substring matches; species and status
// must match exactly, so an unknown value matches nothing.
func Query(pets []adopt.Pet, q adopt.PetQuery) adopt.Page {
	matched := Filter(pets, q.Filters)
	SortPets(matched, q.Sort)

	size := q.Size
	switch {
	case size <= 0:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}
	page := max(q.Page, 0)

	start := min(page*size, len(matched))
	end := min(start+size, len(matched))
	return adopt.Page{
		Items:      slices.Clone(matched[start:end]),
		Number:     page,
		Size:       size,
		Total:      len(matched),
		TotalPages: adopt.TotalPages(len(matched), size),
		Shape:      adopt.ShapeEnvelope,
	}
}

// Filter returns the pets matching every non-empty filter.
func Filter(pets []adopt.Pet, f adopt.Filters) []adopt.Pet {
	name := strings.ToLower(strings.TrimSpace(f.Name))
	breed := strings.ToLower(strings.TrimSpace(f.Breed))
	city := strings.ToLower(strings.TrimSpace(f.ShelterCity))
	species := strings.ToUpper(strings.TrimSpace(f.Species))
	status := strings.ToUpper(strings.TrimSpace(f.Status))

	out := make([]adopt.Pet, 0, len(pets))
	for _, p := range pets {
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if breed != "" && !strings.Contains(strings.ToLower(p.Breed), breed) {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(p.ShelterCity), city) {
			continue
		}
		if species != "" && string(p.Species) != species {
			continue
		}
		if status != "" && string(p.Status) != status {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortPets orders pets in place. The zero Sort means DefaultSort. Pets with
// an unknown age sort after every known age regardless of direction.
func SortPets(pets []adopt.Pet, s adopt.Sort) {
	if s.Field == "" {
		s = adopt.DefaultSort
	}
	slices.SortStableFunc(pets, func(a, b adopt.Pet) int {
		if s.Field == "ageYears" {
			ageA, okA := a.Age()
			ageB, okB := b.Age()
			switch {
			case !okA && !okB:
				return 0
			case !okA:
				return 1
			case !okB:
				return -1
			}
			return direction(cmp.Compare(ageA, ageB), s.Desc)
		}
		return direction(cmp.Compare(sortKey(a, s.Field), sortKey(b, s.Field)), s.Desc)
	})
}

func sortKey(p adopt.Pet, field string) string {
	switch field {
	case "name":
		return strings.ToLower(p.Name)
	case "species":
		return string(p.Species)
	case "shelterCity":
		return strings.ToLower(p.ShelterCity)
	default:
		// RFC 3339 timestamps in one zone order lexically.
		return p.CreatedAt
	}
}

func direction(c int, desc bool) int {
	if desc {
		return -c
	}
	return c
}
