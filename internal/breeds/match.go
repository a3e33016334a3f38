package breeds

import (
	"strings"

	"github.com/five82/pawprint/internal/adopt"
)

// BestMatch picks the breed that best answers query.
//
// Precedence is fixed: a case-insensitive exact name wins, then the first
// candidate whose name contains the query or is contained by it, then the
// first candidate. An empty candidate list reports false.
func BestMatch(candidates []adopt.BreedData, query string) (adopt.BreedData, bool) {
	if len(candidates) == 0 {
		return adopt.BreedData{}, false
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return candidates[0], true
	}

	for _, c := range candidates {
		if strings.ToLower(strings.TrimSpace(c.Name)) == q {
			return c, true
		}
	}
	for _, c := range candidates {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" {
			continue
		}
		if strings.Contains(name, q) || strings.Contains(q, name) {
			return c, true
		}
	}
	return candidates[0], true
}
