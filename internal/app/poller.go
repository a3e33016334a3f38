package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/catalog"
	"github.com/five82/pawprint/internal/state"
)

// Loader fetches a page of pets. *catalog.Service implements it.
type Loader interface {
	LoadPets(ctx context.Context, q adopt.PetQuery) catalog.Listing
}

// StartPoller launches a background goroutine that re-fetches the store's
// current query at a fixed cadence. It returns immediately and stops when ctx
// is cancelled. A non-positive interval disables polling.
func StartPoller(ctx context.Context, store *state.Store, loader Loader, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		return
	}
	if log == nil {
		log = zap.NewNop()
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			Refresh(ctx, store, loader, log)
		}
	}()
}

// Refresh fetches the store's current query once and applies the result
// unless a newer request was issued meanwhile. It reports whether the
// result was applied.
func Refresh(ctx context.Context, store *state.Store, loader Loader, log *zap.Logger) bool {
	q := store.Query()
	gen := store.Begin(q)
	listing := loader.LoadPets(ctx, q)
	if ctx.Err() != nil {
		return false
	}
	applied := store.Apply(gen, listing.Page, listing.Degraded, listing.Err)
	if !applied && log != nil {
		log.Debug("dropped stale pet listing", zap.Uint64("generation", gen))
	}
	return applied
}
