// Package ui provides the terminal user interface for pawprint.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea program. Model is the root state and every
// network call runs as a tea.Cmd that reports back with a message, so the
// event loop is the only goroutine that touches UI state.
//
// # Package Structure
//
//   - app.go: Model, Update loop, messages, commands and Run
//   - pets.go: Pet listing, selection, sort and paging
//   - filters.go: Filter form (species, breed, city, status)
//   - breeds.go: Breed reference browser with client-side paging
//   - detail.go: Single pet view with breed facts and image
//   - stats.go: Status counts and age distribution chart
//   - pagination.go: Page window footer
//   - header.go: Status bar and command hints
//   - help.go: Keyboard shortcut overlay
//   - theme.go, style_helpers.go: Colors and lipgloss styles
//
// # Views
//
//   - Pets: Filtered, sorted, paginated listing fetched from the API
//   - Breeds: Dog or cat breeds, searched and paged locally
//   - Detail: One pet with its breed data
//
// # Stale Responses
//
// Every fetch is tagged with a generation. Pet listings go through
// state.Store, which drops results for anything but the latest request;
// breed and detail fetches use their own state.Tracker. A response that
// arrives after a newer request was issued is logged at debug and ignored.
//
// # Degraded Mode
//
// When the API cannot serve a listing the catalog substitutes sample data.
// The UI shows an "offline sample data" banner and "r" retries the request.
// Breed lookups and images never block the listing: failures render a
// placeholder.
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context: ctx,
//		Catalog: svc.Catalog,
//		Store:   store,
//		Config:  cfg,
//	})
package ui
