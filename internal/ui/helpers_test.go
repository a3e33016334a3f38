package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/format"
)

func colorString(c lipgloss.TerminalColor) string {
	if color, ok := c.(lipgloss.Color); ok {
		return string(color)
	}
	return ""
}

func TestClassifyConnectionError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("dial tcp: connect: connection refused"), "OFFLINE"},
		{errors.New("dial tcp: lookup api.invalid: no such host"), "HOST NOT FOUND"},
		{fmt.Errorf("execute request: %w", context.DeadlineExceeded), "TIMEOUT"},
		{fmt.Errorf("load pet: %w", adopt.ErrNotFound), "NOT FOUND"},
		{fmt.Errorf("load pet: %w", adopt.ErrInvalidID), "INVALID ID"},
		{fmt.Errorf("fetch: %w", &adopt.StatusError{Path: "/api/pets", StatusCode: 502}), "HTTP 502"},
		{&adopt.ShapeError{Reason: "empty body"}, "BAD RESPONSE"},
		{errors.New("boom"), "ERROR"},
	}
	for _, tt := range tests {
		if got := classifyConnectionError(tt.err); got != tt.want {
			t.Fatalf("classifyConnectionError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestTruncateAndCell(t *testing.T) {
	if got := truncate("Labrador Retriever", 10); got != "Labrado..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("Pug", 10); got != "Pug" {
		t.Fatalf("truncate short = %q", got)
	}
	if got := cell("Pug", 5); got != "Pug  " {
		t.Fatalf("cell = %q", got)
	}
	if got := cell("São Paulo", 9); got != "São Paulo" {
		t.Fatalf("cell should count runes, got %q", got)
	}
	if got := orDash("  "); got != "-" {
		t.Fatalf("orDash = %q", got)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		count, selected, rows int
		start, end            int
	}{
		{5, 0, 10, 0, 5},
		{20, 0, 5, 0, 5},
		{20, 10, 5, 8, 13},
		{20, 19, 5, 15, 20},
	}
	for _, tt := range tests {
		start, end := visibleRange(tt.count, tt.selected, tt.rows)
		if start != tt.start || end != tt.end {
			t.Fatalf("visibleRange(%d, %d, %d) = %d, %d; want %d, %d",
				tt.count, tt.selected, tt.rows, start, end, tt.start, tt.end)
		}
	}
}

func TestRenderAgeChartScalesToPeak(t *testing.T) {
	buckets := []format.AgeBucket{
		{Label: "0-1", Count: 4},
		{Label: "2-3", Count: 2},
		{Label: "4-6", Count: 1},
		{Label: "7+", Count: 0},
		{Label: "unknown", Count: 1},
	}
	lines := strings.Split(renderAgeChart(buckets, 8, GetTheme("Meadow").Styles()), "\n")
	if len(lines) != len(buckets) {
		t.Fatalf("got %d lines, want %d", len(lines), len(buckets))
	}
	wantBars := []int{8, 4, 2, 0, 2}
	for i, line := range lines {
		if got := strings.Count(line, "█"); got != wantBars[i] {
			t.Fatalf("bucket %s has %d blocks, want %d: %q", buckets[i].Label, got, wantBars[i], line)
		}
	}
}

func TestFilterSummaryAndSortLabel(t *testing.T) {
	f := adopt.Filters{Name: "bu", Species: "DOG", Status: "PENDING"}
	if got := filterSummary(f); got != "name~bu · Dog · Pending" {
		t.Fatalf("filterSummary = %q", got)
	}
	if got := sortLabel(adopt.Sort{}); got != "createdAt ↓" {
		t.Fatalf("sortLabel(zero) = %q", got)
	}
	if got := sortLabel(adopt.Sort{Field: "name"}); got != "name ↑" {
		t.Fatalf("sortLabel(name) = %q", got)
	}
}
