// Package fixture carries the sample adoption data used when the API is
// unreachable, and a small HTTP server that serves the same data for local
// development.
package fixture

import (
	"time"

	"github.com/google/uuid"

	"github.com/five82/pawprint/internal/adopt"
)

// namespace seeds deterministic pet IDs so fixture pets keep their IDs across runs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://pawprint.local/pets"))

// seededAt anchors fixture creation timestamps.
var seededAt = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

type shelter struct {
	city     string
	lat, lng float64
}

var shelters = map[string]shelter{
	"São Paulo":      {"São Paulo", -23.5505, -46.6333},
	"Rio de Janeiro": {"Rio de Janeiro", -22.9068, -43.1729},
	"Belo Horizonte": {"Belo Horizonte", -19.9167, -43.9345},
	"Curitiba":       {"Curitiba", -25.4284, -49.2733},
	"Porto Alegre":   {"Porto Alegre", -30.0346, -51.2177},
	"Recife":         {"Recife", -8.0476, -34.8770},
	"Salvador":       {"Salvador", -12.9777, -38.5016},
}

type seed struct {
	name    string
	species adopt.Species
	breed   string
	age     float64 // negative means unknown
	city    string
	status  adopt.Status
	noGeo   bool
}

var sampleSeeds = []seed{
	{"Buddy", adopt.SpeciesDog, "Golden Retriever", 3, "São Paulo", adopt.StatusAvailable, false},
	{"Luna", adopt.SpeciesCat, "Persian", 2, "Rio de Janeiro", adopt.StatusAvailable, false},
	{"Max", adopt.SpeciesDog, "Labrador", 4, "Belo Horizonte", adopt.StatusAvailable, false},
}

var datasetSeeds = append(append([]seed(nil), sampleSeeds...), []seed{
	{"Bella", adopt.SpeciesDog, "Beagle", 1, "Curitiba", adopt.StatusAvailable, false},
	{"Charlie", adopt.SpeciesDog, "German Shepherd", 6, "Porto Alegre", adopt.StatusPending, false},
	{"Mia", adopt.SpeciesCat, "Siamese", 0.5, "Recife", adopt.StatusAvailable, false},
	{"Thor", adopt.SpeciesDog, "Rottweiler", 8, "Salvador", adopt.StatusAdopted, false},
	{"Nina", adopt.SpeciesCat, "Maine Coon", 5, "São Paulo", adopt.StatusAvailable, false},
	{"Bob", adopt.SpeciesDog, "Bulldog", 2.5, "Rio de Janeiro", adopt.StatusAvailable, true},
	{"Mel", adopt.SpeciesCat, "Bengal", 1.5, "Belo Horizonte", adopt.StatusPending, false},
	{"Pipoca", adopt.SpeciesDog, "Poodle", 10, "Curitiba", adopt.StatusAvailable, false},
	{"Frajola", adopt.SpeciesCat, "Sphynx", 3, "Porto Alegre", adopt.StatusAdopted, false},
	{"Rex", adopt.SpeciesDog, "Boxer", -1, "Recife", adopt.StatusAvailable, false},
	{"Amora", adopt.SpeciesCat, "Ragdoll", 4, "Salvador", adopt.StatusAvailable, true},
	{"Toby", adopt.SpeciesDog, "Dachshund", 7, "São Paulo", adopt.StatusAvailable, false},
	{"Lola", adopt.SpeciesCat, "British Shorthair", 2, "Rio de Janeiro", adopt.StatusAdopted, false},
	{"Zeca", adopt.SpeciesDog, "Border Collie", 1, "Belo Horizonte", adopt.StatusAvailable, false},
	{"Cacau", adopt.SpeciesCat, "Abyssinian", 9, "Curitiba", adopt.StatusAvailable, false},
	{"Fred", adopt.SpeciesDog, "Labrador Retriever", 5, "Porto Alegre", adopt.StatusPending, false},
	{"Jade", adopt.SpeciesCat, "Persian", -1, "Recife", adopt.StatusAvailable, false},
	{"Duke", adopt.SpeciesDog, "Siberian Husky", 3.5, "Salvador", adopt.StatusAvailable, false},
	{"Belinha", adopt.SpeciesCat, "Scottish Fold", 6, "São Paulo", adopt.StatusAvailable, false},
	{"Spike", adopt.SpeciesDog, "Shih Tzu", 12, "Rio de Janeiro", adopt.StatusAdopted, false},
	{"Kiara", adopt.SpeciesCat, "Russian Blue", 0, "Belo Horizonte", adopt.StatusAvailable, false},
	{"Ozzy", adopt.SpeciesDog, "Pug", 4, "Curitiba", adopt.StatusAvailable, false},
}...)

var dogBreeds = []adopt.BreedData{
	{Name: "Beagle", Origin: "United Kingdom", Temperament: "Amiable, Even Tempered, Excitable, Determined", EnergyLevel: 4, ImageURL: "https://cdn2.thedogapi.com/images/Syd4xxqEm.jpg"},
	{Name: "Border Collie", Origin: "United Kingdom", Temperament: "Tenacious, Keen, Energetic, Responsive", EnergyLevel: 5, ImageURL: "https://cdn2.thedogapi.com/images/sGQvQUpsp.jpg"},
	{Name: "Boxer", Origin: "Germany", Temperament: "Devoted, Fearless, Friendly, Cheerful", EnergyLevel: 4, ImageURL: "https://cdn2.thedogapi.com/images/ry1kWe5VQ.jpg"},
	{Name: "Bulldog", Origin: "United Kingdom", Temperament: "Docile, Willful, Friendly, Gregarious", EnergyLevel: 2, ImageURL: "https://cdn2.thedogapi.com/images/pk1AAdloG.jpg"},
	{Name: "Dachshund", Origin: "Germany", Temperament: "Stubborn, Lively, Playful, Clever", EnergyLevel: 3, ImageURL: "https://cdn2.thedogapi.com/images/rkZRggqVX.jpg"},
	{Name: "German Shepherd", Origin: "Germany", Temperament: "Alert, Loyal, Obedient, Curious", EnergyLevel: 5, ImageURL: "https://cdn2.thedogapi.com/images/SJyBfg5NX.jpg"},
	{Name: "Golden Retriever", Origin: "United Kingdom", Temperament: "Intelligent, Kind, Reliable, Friendly", EnergyLevel: 4, ImageURL: "https://cdn2.thedogapi.com/images/HJ7Pzg5EQ.jpg"},
	{Name: "Labrador", Origin: "Canada", Temperament: "Kind, Outgoing, Agile, Gentle", EnergyLevel: 4},
	{Name: "Labrador Retriever", Origin: "Canada", Temperament: "Kind, Outgoing, Agile, Gentle, Intelligent", EnergyLevel: 5, ImageURL: "https://cdn2.thedogapi.com/images/B1uW7l5VX.jpg"},
	{Name: "Poodle", Origin: "Germany, France", Temperament: "Intelligent, Faithful, Active, Instinctual", EnergyLevel: 4},
	{Name: "Pug", Origin: "China", Temperament: "Docile, Clever, Charming, Stubborn", EnergyLevel: 2, ImageURL: "https://cdn2.thedogapi.com/images/HyJvcl9N7.jpg"},
	{Name: "Rottweiler", Origin: "Germany", Temperament: "Steady, Good-natured, Fearless, Devoted", EnergyLevel: 3, ImageURL: "https://cdn2.thedogapi.com/images/r1xXEgcNX.jpg"},
	{Name: "Shih Tzu", Origin: "China", Temperament: "Clever, Spunky, Outgoing, Friendly", EnergyLevel: 2, ImageURL: "https://cdn2.thedogapi.com/images/BkrJjgcV7.jpg"},
	{Name: "Siberian Husky", Origin: "Russia", Temperament: "Outgoing, Friendly, Alert, Gentle", EnergyLevel: 5, ImageURL: "https://cdn2.thedogapi.com/images/S17ZilqNm.jpg"},
}

var catBreeds = []adopt.BreedData{
	{Name: "Abyssinian", Origin: "Egypt", Temperament: "Active, Energetic, Independent, Intelligent", EnergyLevel: 5, ImageURL: "https://cdn2.thecatapi.com/images/0XYvRd7oD.jpg"},
	{Name: "Bengal", Origin: "United States", Temperament: "Alert, Agile, Energetic, Demanding", EnergyLevel: 5, ImageURL: "https://cdn2.thecatapi.com/images/O3btzLlsO.png"},
	{Name: "British Shorthair", Origin: "United Kingdom", Temperament: "Affectionate, Easy Going, Gentle, Loyal", EnergyLevel: 2, ImageURL: "https://cdn2.thecatapi.com/images/s4wQfYoEk.jpg"},
	{Name: "Maine Coon", Origin: "United States", Temperament: "Adaptable, Intelligent, Loving, Gentle", EnergyLevel: 3, ImageURL: "https://cdn2.thecatapi.com/images/OOD3VXAQn.jpg"},
	{Name: "Persian", Origin: "Iran (Persia)", Temperament: "Affectionate, Loyal, Sedate, Quiet", EnergyLevel: 1, ImageURL: "https://cdn2.thecatapi.com/images/-Zfz5z2jK.jpg"},
	{Name: "Ragdoll", Origin: "United States", Temperament: "Affectionate, Friendly, Gentle, Quiet", EnergyLevel: 3, ImageURL: "https://cdn2.thecatapi.com/images/oGefY4YoG.jpg"},
	{Name: "Russian Blue", Origin: "Russia", Temperament: "Active, Dependable, Easy Going, Gentle", EnergyLevel: 3},
	{Name: "Scottish Fold", Origin: "United Kingdom", Temperament: "Affectionate, Intelligent, Loyal, Playful", EnergyLevel: 3, ImageURL: "https://cdn2.thecatapi.com/images/o9t0LDcsa.jpg"},
	{Name: "Siamese", Origin: "Thailand", Temperament: "Active, Agile, Clever, Sociable", EnergyLevel: 5, ImageURL: "https://cdn2.thecatapi.com/images/ai6Jps4sx.jpg"},
	{Name: "Sphynx", Origin: "Canada", Temperament: "Loyal, Inquisitive, Friendly, Quiet", EnergyLevel: 3, ImageURL: "https://cdn2.thecatapi.com/images/BDb8ZXb1v.jpg"},
}

// PetID returns the deterministic fixture ID for a pet name.
func PetID(name string) string {
	return uuid.NewSHA1(namespace, []byte(name)).String()
}

// Pets returns the full development dataset, newest first by index.
func Pets() []adopt.Pet {
	return build(datasetSeeds)
}

// SamplePets returns the small dataset shown when the API is unreachable.
func SamplePets() []adopt.Pet {
	return build(sampleSeeds)
}

// Breeds returns the reference breeds for species, or nil for an unknown species.
func Breeds(species adopt.Species) []adopt.BreedData {
	var src []adopt.BreedData
	switch species {
	case adopt.SpeciesDog:
		src = dogBreeds
	case adopt.SpeciesCat:
		src = catBreeds
	default:
		return nil
	}
	return append([]adopt.BreedData(nil), src...)
}

// Fallback returns the sample dataset filtered, sorted and paginated like a
// real listing for q.
func Fallback(q adopt.PetQuery) adopt.Page {
	return Query(SamplePets(), q)
}

func build(seeds []seed) []adopt.Pet {
	pets := make([]adopt.Pet, 0, len(seeds))
	for i, s := range seeds {
		p := adopt.Pet{
			ID:          PetID(s.name),
			Name:        s.name,
			Species:     s.species,
			Breed:       s.breed,
			Status:      s.status,
			ShelterCity: s.city,
			CreatedAt:   seededAt.Add(-time.Duration(i) * 36 * time.Hour).Format(time.RFC3339),
		}
		if s.age >= 0 {
			age := s.age
			p.AgeYears = &age
		}
		if loc, ok := shelters[s.city]; ok && !s.noGeo {
			lat, lng := loc.lat, loc.lng
			p.ShelterLat = &lat
			p.ShelterLng = &lng
		}
		pets = append(pets, p)
	}
	return pets
}
