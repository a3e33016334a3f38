// Package breeds resolves breed reference data and breed images for pets.
//
// Lookups are best effort. A failed request is logged and reported as "not
// found" so callers can fall back to placeholder content without branching on
// errors.
package breeds

import (
	"context"

	"go.uber.org/zap"

	"github.com/five82/pawprint/internal/adopt"
)

// Lister is the slice of the API client the finder needs.
type Lister interface {
	FetchBreeds(ctx context.Context, species adopt.Species, name string) ([]adopt.BreedData, error)
}

// Finder looks up a single breed by name.
type Finder struct {
	api Lister
	log *zap.Logger
}

// NewFinder returns a Finder backed by api. A nil logger discards output.
func NewFinder(api Lister, log *zap.Logger) *Finder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Finder{api: api, log: log}
}

// Find issues one breed query and returns the best match for name.
func (f *Finder) Find(ctx context.Context, species adopt.Species, name string) (adopt.BreedData, bool) {
	candidates, err := f.api.FetchBreeds(ctx, species, name)
	if err != nil {
		f.log.Warn("breed lookup failed",
			zap.String("species", string(species)),
			zap.String("breed", name),
			zap.Error(err))
		return adopt.BreedData{}, false
	}
	match, ok := BestMatch(candidates, name)
	if !ok {
		f.log.Debug("breed lookup returned no candidates",
			zap.String("species", string(species)),
			zap.String("breed", name))
	}
	return match, ok
}

// List returns every breed known for species. Unlike Find it reports errors,
// since the breeds browser has nothing sensible to show without the list.
func (f *Finder) List(ctx context.Context, species adopt.Species) ([]adopt.BreedData, error) {
	return f.api.FetchBreeds(ctx, species, "")
}
