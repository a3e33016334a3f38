// Package config loads pawprint's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pawprint/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing, empty or out of range, use defaults
//
// # TOML Format
//
//	api_url = "http://localhost:8080"
//	page_size = 10
//	breed_page_size = 12
//	sort = "createdAt,desc"
//	debounce_ms = 500
//	refresh_seconds = 0
//	request_timeout_seconds = 5
//
//	[image_cache]
//	size = 256
//	ttl_minutes = 60
//
//	[log]
//	file = "~/.local/state/pawprint/pawprint.log"
//	level = "info"
//
// Every field is optional. debounce_ms and ttl_minutes accept zero (no delay,
// no expiry); for the other numeric fields zero means "use the default".
// Page sizes are capped at 100. Tilde expansion is applied to log.file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - A sort expression outside the allow-list (wraps adopt.ErrInvalidSort)
//
// Missing config files are NOT an error. pawprint works against a local API
// without any configuration.
package config
