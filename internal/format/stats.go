package format

import "github.com/five82/pawprint/internal/adopt"

// Stats summarizes a set of pets.
type Stats struct {
	Total      int
	Available  int
	Adopted    int
	Pending    int
	AverageAge float64
	KnownAges  int
}

// Summarize counts pets by status and averages the known ages.
func Summarize(pets []adopt.Pet) Stats {
	var s Stats
	var ageSum float64
	for _, p := range pets {
		s.Total++
		switch StatusTone(p.Status) {
		case ToneSuccess:
			s.Available++
		case ToneMuted:
			s.Adopted++
		case ToneWarning:
			s.Pending++
		}
		if age, ok := p.Age(); ok {
			ageSum += age
			s.KnownAges++
		}
	}
	if s.KnownAges > 0 {
		s.AverageAge = ageSum / float64(s.KnownAges)
	}
	return s
}

// AgeBucket is one bar of the age distribution.
type AgeBucket struct {
	Label string
	Count int
}

// AgeDistribution groups pets into 0-1, 2-3, 4-6, 7+ and unknown age buckets.
// Fractional ages fall into the bucket of the whole years they have completed.
func AgeDistribution(pets []adopt.Pet) []AgeBucket {
	buckets := []AgeBucket{
		{Label: "0-1"},
		{Label: "2-3"},
		{Label: "4-6"},
		{Label: "7+"},
		{Label: "unknown"},
	}
	for _, p := range pets {
		age, ok := p.Age()
		switch {
		case !ok:
			buckets[4].Count++
		case age < 2:
			buckets[0].Count++
		case age < 4:
			buckets[1].Count++
		case age < 7:
			buckets[2].Count++
		default:
			buckets[3].Count++
		}
	}
	return buckets
}
