package adopt

import (
	"errors"
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestPet_Age(t *testing.T) {
	cases := []struct {
		name   string
		age    *float64
		want   float64
		wantOK bool
	}{
		{"absent", nil, 0, false},
		{"nan", ptr(math.NaN()), 0, false},
		{"negative", ptr(-1), 0, false},
		{"zero", ptr(0), 0, true},
		{"fractional", ptr(1.5), 1.5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Pet{AgeYears: tc.age}.Age()
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("Age() = %v, %v; want %v, %v", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestPet_Coordinates(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng *float64
		wantOK   bool
	}{
		{"both present", ptr(-23.55), ptr(-46.63), true},
		{"lat only", ptr(10), nil, false},
		{"lng only", nil, ptr(10), false},
		{"lat out of range", ptr(91), ptr(0), false},
		{"lng out of range", ptr(0), ptr(-180.5), false},
		{"boundaries", ptr(90), ptr(-180), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, ok := Pet{ShelterLat: tc.lat, ShelterLng: tc.lng}.Coordinates()
			if ok != tc.wantOK {
				t.Fatalf("Coordinates() ok = %v, want %v", ok, tc.wantOK)
			}
		})
	}
}

func TestParseSpeciesAndStatus(t *testing.T) {
	if s, ok := ParseSpecies(" dog "); !ok || s != SpeciesDog {
		t.Fatalf("ParseSpecies(dog) = %q, %v", s, ok)
	}
	if _, ok := ParseSpecies("bird"); ok {
		t.Fatalf("ParseSpecies(bird) ok = true")
	}
	if s, ok := ParseStatus("pending"); !ok || s != StatusPending {
		t.Fatalf("ParseStatus(pending) = %q, %v", s, ok)
	}
	if SpeciesCat.PathSegment() != "cat" {
		t.Fatalf("PathSegment = %q, want cat", SpeciesCat.PathSegment())
	}
}

func TestSort_ParseAndString(t *testing.T) {
	s, err := ParseSort("ageYears,desc")
	if err != nil {
		t.Fatalf("ParseSort returned error: %v", err)
	}
	if s != (Sort{Field: "ageYears", Desc: true}) || s.String() != "ageYears,desc" {
		t.Fatalf("ParseSort = %+v (%s)", s, s)
	}

	s, err = ParseSort("name")
	if err != nil || s.String() != "name,asc" {
		t.Fatalf("ParseSort(name) = %v, %v; want name,asc", s, err)
	}

	for _, bad := range []string{"id,asc", "name,sideways", ""} {
		if _, err := ParseSort(bad); !errors.Is(err, ErrInvalidSort) {
			t.Fatalf("ParseSort(%q) error = %v, want ErrInvalidSort", bad, err)
		}
	}

	if (Sort{}).String() != "createdAt,desc" {
		t.Fatalf("zero Sort = %q, want default", Sort{}.String())
	}
}

func TestNextSort_CyclesAllOptions(t *testing.T) {
	seen := map[Sort]bool{}
	s := SortOptions()[0]
	for i := 0; i < len(SortOptions()); i++ {
		seen[s] = true
		s = NextSort(s)
	}
	if len(seen) != len(SortFields)*2 {
		t.Fatalf("NextSort visited %d options, want %d", len(seen), len(SortFields)*2)
	}
	if s != SortOptions()[0] {
		t.Fatalf("NextSort did not wrap around: %v", s)
	}
}

func TestFilters_EncodeAndParse(t *testing.T) {
	f := Filters{Name: " Luna ", Species: "cat", ShelterCity: "Rio de Janeiro"}
	encoded := f.Encode()
	if encoded != "name=Luna&shelter_city=Rio+de+Janeiro&species=CAT" {
		t.Fatalf("Encode = %q", encoded)
	}

	parsed, err := ParseFilters("?" + encoded + "&unknown=1")
	if err != nil {
		t.Fatalf("ParseFilters returned error: %v", err)
	}
	want := Filters{Name: "Luna", Species: "CAT", ShelterCity: "Rio de Janeiro"}
	if parsed != want {
		t.Fatalf("ParseFilters = %+v, want %+v", parsed, want)
	}

	if !(Filters{Name: "   "}).IsZero() {
		t.Fatalf("blank filters should be zero")
	}
	if _, err := ParseFilters("%zz"); err == nil {
		t.Fatalf("ParseFilters(%%zz) returned nil error")
	}
}
