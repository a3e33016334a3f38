package format

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/pawprint/internal/adopt"
)

func age(v float64) *float64 { return &v }

func TestSpeciesFormatting(t *testing.T) {
	cases := []struct {
		in    adopt.Species
		label string
		emoji string
	}{
		{"DOG", "Dog", "🐕"},
		{" cat ", "Cat", "🐱"},
		{"BIRD", "BIRD", "🐾"},
	}
	for _, tc := range cases {
		if got := SpeciesLabel(tc.in); got != tc.label {
			t.Fatalf("SpeciesLabel(%q) = %q, want %q", tc.in, got, tc.label)
		}
		if got := SpeciesEmoji(tc.in); got != tc.emoji {
			t.Fatalf("SpeciesEmoji(%q) = %q, want %q", tc.in, got, tc.emoji)
		}
	}
}

func TestStatusFormatting(t *testing.T) {
	cases := []struct {
		in    adopt.Status
		label string
		tone  Tone
	}{
		{"AVAILABLE", "Available", ToneSuccess},
		{"adopted", "Adopted", ToneMuted},
		{"PENDING", "Pending", ToneWarning},
		{"ON_HOLD", "ON_HOLD", ToneInfo},
	}
	for _, tc := range cases {
		if got := StatusLabel(tc.in); got != tc.label {
			t.Fatalf("StatusLabel(%q) = %q, want %q", tc.in, got, tc.label)
		}
		if got := StatusTone(tc.in); got != tc.tone {
			t.Fatalf("StatusTone(%q) = %v, want %v", tc.in, got, tc.tone)
		}
	}
}

func TestAgeAndLocation(t *testing.T) {
	if got := Age(adopt.Pet{}); got != "unknown" {
		t.Fatalf("Age(nil) = %q", got)
	}
	if got := Age(adopt.Pet{AgeYears: age(1)}); got != "1 yr" {
		t.Fatalf("Age(1) = %q", got)
	}
	if got := Age(adopt.Pet{AgeYears: age(2.5)}); got != "2.5 yrs" {
		t.Fatalf("Age(2.5) = %q", got)
	}

	p := adopt.Pet{ShelterCity: "Recife", ShelterLat: age(-8.05), ShelterLng: age(-34.9)}
	if got := Location(p); got != "Recife (-8.0500, -34.9000)" {
		t.Fatalf("Location = %q", got)
	}
	p.ShelterLng = nil
	if got := Location(p); got != "Recife" {
		t.Fatalf("Location without lng = %q", got)
	}
}

func TestEnergyBar(t *testing.T) {
	if got := EnergyBar(3); got != "●●●○○ 3/5" {
		t.Fatalf("EnergyBar(3) = %q", got)
	}
	if got := EnergyBar(0); got != "" {
		t.Fatalf("EnergyBar(0) = %q, want empty", got)
	}
	if got := EnergyBar(6); got != "" {
		t.Fatalf("EnergyBar(6) = %q, want empty", got)
	}
}

func TestSummarize(t *testing.T) {
	pets := []adopt.Pet{
		{Status: adopt.StatusAvailable, AgeYears: age(2)},
		{Status: adopt.StatusAvailable, AgeYears: age(4)},
		{Status: adopt.StatusAdopted},
		{Status: adopt.StatusPending, AgeYears: age(math.NaN())},
	}
	got := Summarize(pets)
	want := Stats{Total: 4, Available: 2, Adopted: 1, Pending: 1, AverageAge: 3, KnownAges: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Summarize mismatch (-want +got):\n%s", diff)
	}

	if got := Summarize(nil); got != (Stats{}) {
		t.Fatalf("Summarize(nil) = %+v, want zero", got)
	}
}

func TestAgeDistribution(t *testing.T) {
	pets := []adopt.Pet{
		{AgeYears: age(0.5)},
		{AgeYears: age(1.5)},
		{AgeYears: age(2)},
		{AgeYears: age(3.9)},
		{AgeYears: age(6)},
		{AgeYears: age(7)},
		{AgeYears: age(15)},
		{},
	}
	want := []AgeBucket{
		{Label: "0-1", Count: 2},
		{Label: "2-3", Count: 2},
		{Label: "4-6", Count: 1},
		{Label: "7+", Count: 2},
		{Label: "unknown", Count: 1},
	}
	if diff := cmp.Diff(want, AgeDistribution(pets)); diff != "" {
		t.Fatalf("AgeDistribution mismatch (-want +got):\n%s", diff)
	}
}
