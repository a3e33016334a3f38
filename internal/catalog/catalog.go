// Package catalog is the read-side service the TUI and CLI talk to. It
// composes the API client, breed finder and image resolver, and degrades pet
// listings to sample data when the API is unreachable.
package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/breeds"
	"github.com/five82/pawprint/internal/fixture"
)

// Listing is one page of pets. When Degraded is set, Page holds offline
// sample data and Err explains why the API could not be used.
type Listing struct {
	Page     adopt.Page
	Degraded bool
	Err      error
}

// Service answers catalog queries.
type Service struct {
	api      adopt.Fetcher
	finder   *breeds.Finder
	resolver *breeds.ImageResolver
	log      *zap.Logger
}

// New wires a Service. finder and resolver are usually built over the same api.
func New(api adopt.Fetcher, finder *breeds.Finder, resolver *breeds.ImageResolver, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: api, finder: finder, resolver: resolver, log: log}
}

// LoadPets fetches a page of pets. Any failure falls back to the sample
// dataset shaped to q, so the returned Page is always renderable.
func (s *Service) LoadPets(ctx context.Context, q adopt.PetQuery) Listing {
	page, err := s.api.FetchPets(ctx, q)
	if err == nil {
		return Listing{Page: page}
	}
	s.log.Warn("pet listing unavailable, using sample data",
		zap.String("query", q.Values().Encode()),
		zap.Error(err))
	return Listing{Page: fixture.Fallback(q), Degraded: true, Err: err}
}

// Pet fetches one pet. Unknown IDs return an error wrapping adopt.ErrNotFound;
// malformed IDs wrap adopt.ErrInvalidID and never reach the network.
func (s *Service) Pet(ctx context.Context, id string) (adopt.Pet, error) {
	pet, err := s.api.FetchPet(ctx, id)
	if err != nil {
		return adopt.Pet{}, fmt.Errorf("load pet: %w", err)
	}
	return pet, nil
}

// Breeds lists every breed of species.
func (s *Service) Breeds(ctx context.Context, species adopt.Species) ([]adopt.BreedData, error) {
	list, err := s.finder.List(ctx, species)
	if err != nil {
		return nil, fmt.Errorf("load %s breeds: %w", species.PathSegment(), err)
	}
	return list, nil
}

// BreedInfo returns the best-matching breed record. Its image is cached, so
// a following Images call for the same breed makes no request.
func (s *Service) BreedInfo(ctx context.Context, species adopt.Species, breed string) (adopt.BreedData, bool) {
	return s.resolver.Breed(ctx, species, breed)
}

// Images resolves breed images for a page of pets, keyed by pet ID.
func (s *Service) Images(ctx context.Context, pets []adopt.Pet) map[string]string {
	return s.resolver.ResolveAll(ctx, pets)
}
