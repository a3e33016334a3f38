package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which breed and city columns are hidden.
	LayoutCompactWidth = 80

	// LayoutStatsWidth is the minimum width to show the stats panel beside the listing.
	LayoutStatsWidth = 120
)

// Chrome rows taken by the header, command bar, banner and footer.
const chromeRows = 6

// Timing constants.
const (
	// DefaultUIInterval is how often the UI re-reads the listing store.
	DefaultUIInterval = time.Second

	// ageBarWidth is the longest bar in the age distribution chart.
	ageBarWidth = 20
)
