// Package state holds the pet listing shared between fetches and the UI.
//
// # Overview
//
// Listing fetches run in their own goroutines (Bubble Tea commands and the
// optional refresh poller) while the UI reads the result on its own schedule.
// Store mediates between them:
//
//	Fetch:                            UI:
//	┌──────────────────────┐         ┌──────────────────┐
//	│ gen := store.Begin(q)│         │                  │
//	│ catalog.LoadPets(q)  │         │                  │
//	│ store.Apply(gen, …)  │────────→│ store.Snapshot() │
//	└──────────────────────┘ (mutex) └──────────────────┘
//
// # Request Generations
//
// Every fetch is tagged with a generation from Tracker. Begin issues a new
// generation, so a slow response for an older query can never overwrite the
// result of a newer one: Apply compares the response's generation against
// the latest issued and drops it when they differ.
//
//	g1 := store.Begin(page0)
//	g2 := store.Begin(page1)
//	store.Apply(g2, p1, false, nil) // applied
//	store.Apply(g1, p0, false, nil) // dropped, returns false
//
// # Update Semantics
//
//   - Success replaces the page and clears the error.
//   - A plain error keeps the previous page and records the error.
//   - A degraded response (offline sample data) replaces the page, records the
//     error and sets Degraded.
//
// Failures increment ConsecutiveFailures; IsOffline reports two or more.
//
// # Defensive Copying
//
// Apply and Snapshot copy the pet slice and Snapshot wraps the error, so a
// snapshot handed to the UI is never mutated by a later fetch.
//
// The zero Store is ready to use.
package state
