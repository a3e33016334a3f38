package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/breeds"
	"github.com/five82/pawprint/internal/cache"
	"github.com/five82/pawprint/internal/fixture"
)

func newService(t *testing.T, baseURL string) *Service {
	t.Helper()
	client, err := adopt.NewClient(baseURL, 2*time.Second)
	require.NoError(t, err)
	finder := breeds.NewFinder(client, nil)
	resolver := breeds.NewImageResolver(finder, cache.New[string](16, 0), nil)
	return New(client, finder, resolver, nil)
}

func TestLoadPets_LiveAPI(t *testing.T) {
	srv := httptest.NewServer(fixture.NewRouter(fixture.Options{}))
	defer srv.Close()
	svc := newService(t, srv.URL)

	listing := svc.LoadPets(context.Background(), adopt.PetQuery{Size: 5})
	require.NoError(t, listing.Err)
	assert.False(t, listing.Degraded)
	assert.Len(t, listing.Page.Items, 5)
	assert.Equal(t, len(fixture.Pets()), listing.Page.Total)
}

func TestLoadPets_FallsBackWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	svc := newService(t, url)
	listing := svc.LoadPets(context.Background(), adopt.PetQuery{Size: 10})

	require.Error(t, listing.Err)
	assert.True(t, listing.Degraded)
	assert.Len(t, listing.Page.Items, 3)
	assert.Equal(t, 1, listing.Page.TotalPages)
}

func TestLoadPets_FallsBackOnUnknownShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	listing := newService(t, srv.URL).LoadPets(context.Background(), adopt.PetQuery{})
	var shapeErr *adopt.ShapeError
	require.True(t, errors.As(listing.Err, &shapeErr), "got %v", listing.Err)
	assert.True(t, listing.Degraded)
	assert.NotEmpty(t, listing.Page.Items)
}

func TestPet_InvalidIDNeverHitsNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()
	svc := newService(t, srv.URL)

	_, err := svc.Pet(context.Background(), "42")
	assert.ErrorIs(t, err, adopt.ErrInvalidID)
	assert.Zero(t, hits.Load())

	_, err = svc.Pet(context.Background(), fixture.PetID("Ghost"))
	assert.ErrorIs(t, err, adopt.ErrNotFound)
	assert.EqualValues(t, 1, hits.Load())
}

func TestBreedsAndImages(t *testing.T) {
	srv := httptest.NewServer(fixture.NewRouter(fixture.Options{}))
	defer srv.Close()
	svc := newService(t, srv.URL)
	ctx := context.Background()

	dogs, err := svc.Breeds(ctx, adopt.SpeciesDog)
	require.NoError(t, err)
	assert.NotEmpty(t, dogs)

	info, ok := svc.BreedInfo(ctx, adopt.SpeciesCat, "persian")
	require.True(t, ok)
	assert.Equal(t, "Persian", info.Name)

	pets := fixture.SamplePets()
	images := svc.Images(ctx, pets)
	// Labrador has no image in the reference data.
	assert.Len(t, images, 2)
	assert.NotEmpty(t, images[fixture.PetID("Buddy")])
	labrador, ok := svc.BreedInfo(ctx, adopt.SpeciesDog, pets[2].Breed)
	require.True(t, ok)
	assert.Empty(t, labrador.ImageURL)
}

func TestBreedInfo_SharesImageWithListing(t *testing.T) {
	var breedHits atomic.Int32
	router := fixture.NewRouter(fixture.Options{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/breeds/") {
			breedHits.Add(1)
		}
		router.ServeHTTP(w, r)
	}))
	defer srv.Close()
	svc := newService(t, srv.URL)
	ctx := context.Background()

	buddy := fixture.SamplePets()[0]
	info, ok := svc.BreedInfo(ctx, buddy.Species, buddy.Breed)
	require.True(t, ok)
	require.NotEmpty(t, info.ImageURL)
	assert.EqualValues(t, 1, breedHits.Load())

	images := svc.Images(ctx, []adopt.Pet{buddy})
	assert.Equal(t, info.ImageURL, images[buddy.ID])
	assert.EqualValues(t, 1, breedHits.Load(), "image should come from the cache")
}

func TestBreeds_ErrorIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newService(t, srv.URL).Breeds(context.Background(), adopt.SpeciesCat)
	var statusErr *adopt.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}
