// Package app is the composition root for pawprint.
//
// # Overview
//
// Run wires configuration, logging, the API client, the breed image cache,
// the catalog service, the shared listing store and the UI, then blocks in
// the Bubble Tea event loop. Build does the same wiring without a UI and is
// what the CLI subcommands use.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> LoadConfig()      Read config.toml, apply --api
//	       ├─────> logging.New()     JSON log file (the TUI owns the terminal)
//	       ├─────> Build()           Client, image cache, finder, resolver, catalog
//	       ├─────> prefs.Load()      Theme, sort and saved filters
//	       ├─────> StartPoller()     Optional background refresh
//	       └─────> ui.Run()          Start TUI (blocks)
//
//	Background Poller Loop (refresh_seconds > 0):
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│  ├─> store.Begin(store.Query())         │
//	│  ├─> catalog.LoadPets()                 │
//	│  └─> store.Apply(gen, …)                │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// The poller shares the store's generation tracker with the UI, so a poll
// that races a user-initiated fetch never overwrites the newer result.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid
//   - Logger initialization failure
//   - Invalid API URL
//
// Everything after startup is recoverable: listing failures degrade to
// sample data, breed and image failures are logged and shown as placeholders.
package app
