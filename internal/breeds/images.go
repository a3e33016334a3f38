package breeds

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/cache"
)

// DefaultConcurrency bounds parallel breed requests in ResolveAll.
const DefaultConcurrency = 4

// ImageResolver maps a pet's breed to an image URL, memoizing hits.
type ImageResolver struct {
	finder      *Finder
	cache       *cache.Cache[string]
	log         *zap.Logger
	concurrency int
}

// NewImageResolver wires a resolver. The cache is owned by the caller; a nil
// cache disables memoization.
func NewImageResolver(finder *Finder, c *cache.Cache[string], log *zap.Logger) *ImageResolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImageResolver{finder: finder, cache: c, log: log, concurrency: DefaultConcurrency}
}

// Resolve returns the image URL for a breed, or "" when none is known.
// Only non-empty URLs are cached; misses are retried on the next call.
func (r *ImageResolver) Resolve(ctx context.Context, species adopt.Species, breed string) string {
	breed = strings.TrimSpace(breed)
	if breed == "" || species == "" {
		return ""
	}
	if url, ok := r.cache.Lookup(cache.BreedKey(string(species), breed)); ok {
		return url
	}
	match, _ := r.Breed(ctx, species, breed)
	return match.ImageURL
}

// Breed looks up the full breed record with one request and caches its
// image for later Resolve calls.
func (r *ImageResolver) Breed(ctx context.Context, species adopt.Species, breed string) (adopt.BreedData, bool) {
	breed = strings.TrimSpace(breed)
	match, ok := r.finder.Find(ctx, species, breed)
	if !ok {
		return adopt.BreedData{}, false
	}
	if strings.TrimSpace(match.ImageURL) != "" && breed != "" && species != "" {
		key := cache.BreedKey(string(species), breed)
		r.cache.Store(key, match.ImageURL)
		r.log.Debug("breed image cached", zap.String("key", key))
	}
	return match, true
}

// ResolveAll resolves images for a page of pets concurrently. The result is
// keyed by pet ID and omits pets with no image. Pets sharing a breed trigger
// a single lookup.
func (r *ImageResolver) ResolveAll(ctx context.Context, pets []adopt.Pet) map[string]string {
	byKey := make(map[string][]adopt.Pet)
	var order []string
	for _, p := range pets {
		if strings.TrimSpace(p.Breed) == "" {
			continue
		}
		key := cache.BreedKey(string(p.Species), p.Breed)
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], p)
	}

	urls := make([]string, len(order))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, key := range order {
		i := i
		first := byKey[key][0]
		g.Go(func() error {
			urls[i] = r.Resolve(gctx, first.Species, first.Breed)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]string, len(pets))
	for i, key := range order {
		if urls[i] == "" {
			continue
		}
		for _, p := range byKey[key] {
			out[p.ID] = urls[i]
		}
	}
	return out
}
