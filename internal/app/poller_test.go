package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/catalog"
	"github.com/five82/pawprint/internal/state"
)

type loaderFunc func(ctx context.Context, q adopt.PetQuery) catalog.Listing

func (f loaderFunc) LoadPets(ctx context.Context, q adopt.PetQuery) catalog.Listing {
	return f(ctx, q)
}

func listingOf(names ...string) catalog.Listing {
	items := make([]adopt.Pet, len(names))
	for i, n := range names {
		items[i] = adopt.Pet{Name: n}
	}
	return catalog.Listing{Page: adopt.Page{Items: items, Size: 10, Total: len(items), TotalPages: 1}}
}

func TestRefresh_UsesCurrentQuery(t *testing.T) {
	store := &state.Store{}
	store.Begin(adopt.PetQuery{Page: 2, Size: 5})

	var seen adopt.PetQuery
	applied := Refresh(context.Background(), store, loaderFunc(func(_ context.Context, q adopt.PetQuery) catalog.Listing {
		seen = q
		return listingOf("Buddy")
	}), nil)

	if !applied {
		t.Fatalf("Refresh did not apply its result")
	}
	if seen.Page != 2 || seen.Size != 5 {
		t.Fatalf("loader saw query %+v, want page 2 size 5", seen)
	}
	if snap := store.Snapshot(); !snap.HasPage || snap.Page.Items[0].Name != "Buddy" {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestRefresh_DropsResultWhenNewerRequestStarted(t *testing.T) {
	store := &state.Store{}

	applied := Refresh(context.Background(), store, loaderFunc(func(_ context.Context, q adopt.PetQuery) catalog.Listing {
		// The UI issues a newer request while this one is in flight.
		gen := store.Begin(adopt.PetQuery{Page: 1})
		store.Apply(gen, listingOf("Newer").Page, false, nil)
		return listingOf("Older")
	}), nil)

	if applied {
		t.Fatalf("stale refresh was applied")
	}
	if got := store.Snapshot().Page.Items[0].Name; got != "Newer" {
		t.Fatalf("snapshot holds %q, want Newer", got)
	}
}

func TestRefresh_RecordsDegradedListing(t *testing.T) {
	store := &state.Store{}
	Refresh(context.Background(), store, loaderFunc(func(context.Context, adopt.PetQuery) catalog.Listing {
		l := listingOf("Buddy", "Luna", "Max")
		l.Degraded = true
		l.Err = errors.New("connection refused")
		return l
	}), nil)

	snap := store.Snapshot()
	if !snap.Degraded || snap.LastError == nil || len(snap.Page.Items) != 3 {
		t.Fatalf("snapshot = %+v, want degraded sample data", snap)
	}
}

func TestStartPoller_RefreshesUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &state.Store{}
	var calls atomic.Int32
	loader := loaderFunc(func(context.Context, adopt.PetQuery) catalog.Listing {
		calls.Add(1)
		return listingOf("Buddy")
	})

	ctx, cancel := context.WithCancel(context.Background())
	StartPoller(ctx, store, loader, 10*time.Millisecond, nil)

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	if calls.Load() < 2 {
		t.Fatalf("poller ran %d times, want at least 2", calls.Load())
	}
	// Let the goroutine observe cancellation before the leak check.
	time.Sleep(30 * time.Millisecond)
}

func TestStartPoller_DisabledForZeroInterval(t *testing.T) {
	defer goleak.VerifyNone(t)

	var calls atomic.Int32
	StartPoller(context.Background(), &state.Store{}, loaderFunc(func(context.Context, adopt.PetQuery) catalog.Listing {
		calls.Add(1)
		return catalog.Listing{}
	}), 0, nil)

	time.Sleep(20 * time.Millisecond)
	if calls.Load() != 0 {
		t.Fatalf("disabled poller ran %d times", calls.Load())
	}
}
