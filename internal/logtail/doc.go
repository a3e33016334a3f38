// Package logtail reads the tail of pawprint's log file and renders its JSON
// lines for people.
//
// # Reading Log Files
//
// Read extracts the last maxLines from a file with a ring buffer:
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line in file:
//	   - Store line at current index
//	   - Advance index modulo maxLines
//	3. Unroll the ring starting at the oldest line
//
// This scans the file once and uses O(maxLines) memory. A non-positive
// maxLines returns the whole file. A missing file is not an error, since the
// log is only created on first write.
//
//	lines, err := logtail.Read(cfg.Log.File, 200)
//
// # Formatting
//
// pawprint logs JSON through zap. Format turns one such line into
//
//	2025-10-08 21:01:05 WARN [catalog] – pet listing unavailable error=… query=…
//
// Fields are sorted by key so output is stable. Lines that are not JSON
// (panics, foreign writers) pass through unchanged.
package logtail
