package adopt

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Filter field names as they appear in query strings.
const (
	FilterName        = "name"
	FilterSpecies     = "species"
	FilterBreed       = "breed"
	FilterShelterCity = "shelter_city"
	FilterStatus      = "status"
)

// Filters constrains a pet listing. Empty fields are unconstrained.
type Filters struct {
	Name        string
	Species     string
	Breed       string
	ShelterCity string
	Status      string
}

// Values encodes the non-empty filters as query parameters.
func (f Filters) Values() url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if v := strings.TrimSpace(value); v != "" {
			values.Set(key, v)
		}
	}
	set(FilterName, f.Name)
	set(FilterSpecies, strings.ToUpper(f.Species))
	set(FilterBreed, f.Breed)
	set(FilterShelterCity, f.ShelterCity)
	set(FilterStatus, strings.ToUpper(f.Status))
	return values
}

// Encode returns the query-string form of the filters.
func (f Filters) Encode() string {
	return f.Values().Encode()
}

// IsZero reports whether no filter is set.
func (f Filters) IsZero() bool {
	return len(f.Values()) == 0
}

// FiltersFromValues reads the recognized filter fields from query values.
// Unknown keys are ignored.
func FiltersFromValues(values url.Values) Filters {
	return Filters{
		Name:        strings.TrimSpace(values.Get(FilterName)),
		Species:     strings.ToUpper(strings.TrimSpace(values.Get(FilterSpecies))),
		Breed:       strings.TrimSpace(values.Get(FilterBreed)),
		ShelterCity: strings.TrimSpace(values.Get(FilterShelterCity)),
		Status:      strings.ToUpper(strings.TrimSpace(values.Get(FilterStatus))),
	}
}

// ParseFilters decodes a query string produced by Filters.Encode.
func ParseFilters(raw string) (Filters, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(raw), "?"))
	if err != nil {
		return Filters{}, fmt.Errorf("parse filters: %w", err)
	}
	return FiltersFromValues(values), nil
}

// ErrInvalidSort is returned when a sort expression is outside the allow-list.
var ErrInvalidSort = errors.New("invalid sort")

// SortFields lists the sortable pet fields in display order.
var SortFields = []string{"name", "ageYears", "createdAt", "species", "shelterCity"}

// Sort orders a pet listing.
type Sort struct {
	Field string
	Desc  bool
}

// DefaultSort is newest first.
var DefaultSort = Sort{Field: "createdAt", Desc: true}

// ParseSort parses a "field,direction" expression. The direction defaults to asc.
func ParseSort(expr string) (Sort, error) {
	field, dir, _ := strings.Cut(strings.TrimSpace(expr), ",")
	field = strings.TrimSpace(field)
	if !validSortField(field) {
		return Sort{}, fmt.Errorf("%w: field %q", ErrInvalidSort, field)
	}
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "", "asc":
		return Sort{Field: field}, nil
	case "desc":
		return Sort{Field: field, Desc: true}, nil
	default:
		return Sort{}, fmt.Errorf("%w: direction %q", ErrInvalidSort, dir)
	}
}

func (s Sort) String() string {
	if s.Field == "" {
		return DefaultSort.String()
	}
	if s.Desc {
		return s.Field + ",desc"
	}
	return s.Field + ",asc"
}

// SortOptions returns every allowed sort in a stable order.
func SortOptions() []Sort {
	out := make([]Sort, 0, len(SortFields)*2)
	for _, field := range SortFields {
		out = append(out, Sort{Field: field}, Sort{Field: field, Desc: true})
	}
	return out
}

// NextSort cycles through SortOptions.
func NextSort(current Sort) Sort {
	options := SortOptions()
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func validSortField(field string) bool {
	for _, f := range SortFields {
		if f == field {
			return true
		}
	}
	return false
}

// PetQuery configures /api/pets requests.
type PetQuery struct {
	Page    int
	Size    int
	Sort    Sort
	Filters Filters
}

// Values encodes the query, including paging and sort.
func (q PetQuery) Values() url.Values {
	values := q.Filters.Values()
	page := q.Page
	if page < 0 {
		page = 0
	}
	values.Set("page", strconv.Itoa(page))
	if q.Size > 0 {
		values.Set("size", strconv.Itoa(q.Size))
	}
	values.Set("sort", q.Sort.String())
	return values
}
