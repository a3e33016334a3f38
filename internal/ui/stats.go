package ui

import (
	"fmt"
	"strings"

	"github.com/five82/pawprint/internal/format"
)

// renderStatsPanel summarizes the visible page: status counts, average age
// and an age distribution bar chart.
func (m Model) renderStatsPanel() string {
	styles := m.theme.Styles()
	pets := m.snapshot.Page.Items
	stats := format.Summarize(pets)

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("This page"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(fmt.Sprintf("%d pets", stats.Total)))
	b.WriteString("\n")
	b.WriteString(styles.SuccessText.Render(fmt.Sprintf("%d available", stats.Available)))
	b.WriteString(styles.FaintText.Render(" · "))
	b.WriteString(styles.WarningText.Render(fmt.Sprintf("%d pending", stats.Pending)))
	b.WriteString(styles.FaintText.Render(" · "))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d adopted", stats.Adopted)))
	b.WriteString("\n")
	if stats.KnownAges > 0 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("avg age %.1f yrs", stats.AverageAge)))
	} else {
		b.WriteString(styles.MutedText.Render("avg age unknown"))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render("Ages"))
	b.WriteString("\n")
	b.WriteString(renderAgeChart(format.AgeDistribution(pets), ageBarWidth, styles))

	return styles.Panel.Render(b.String())
}

// renderAgeChart draws one bar per bucket, scaled so the largest bucket fills width.
func renderAgeChart(buckets []format.AgeBucket, width int, styles Styles) string {
	peak := 0
	for _, bucket := range buckets {
		peak = max(peak, bucket.Count)
	}

	lines := make([]string, len(buckets))
	for i, bucket := range buckets {
		n := 0
		if peak > 0 {
			n = bucket.Count * width / peak
		}
		if bucket.Count > 0 && n == 0 {
			n = 1
		}
		lines[i] = styles.MutedText.Render(padRight(bucket.Label, 8)) +
			styles.InfoText.Render(strings.Repeat("█", n)) +
			styles.FaintText.Render(fmt.Sprintf(" %d", bucket.Count))
	}
	return strings.Join(lines, "\n")
}
