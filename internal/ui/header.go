package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pawprint/internal/adopt"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("🐾 pawprint", styles.Logo),
		m.renderViewTabs(styles, bg),
	}
	parts = append(parts, m.renderConnection(styles, bg))
	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, bg.Render("updated "+m.snapshot.LastUpdated.Format("15:04:05"), styles.FaintText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, sep))
}

func (m Model) renderViewTabs(styles Styles, bg BgStyle) string {
	tabs := []struct {
		view  View
		label string
	}{
		{ViewPets, "Pets"},
		{ViewBreeds, "Breeds"},
		{ViewDetail, "Detail"},
	}
	out := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.view == m.view {
			out = append(out, bg.Render("["+t.label+"]", styles.AccentText.Bold(true)))
		} else {
			out = append(out, bg.Render(t.label, styles.MutedText))
		}
	}
	return bg.Join(out, " ")
}

// renderConnection summarizes API health from the listing snapshot.
func (m Model) renderConnection(styles Styles, bg BgStyle) string {
	snap := m.snapshot
	switch {
	case !snap.HasPage && snap.LastError == nil:
		return bg.Render("connecting...", styles.WarningText)
	case snap.IsOffline():
		return bg.Render("API "+classifyConnectionError(snap.LastError), styles.DangerText) +
			bg.Space() + bg.Render(fmt.Sprintf("(%d failed)", snap.ConsecutiveFailures), styles.MutedText)
	case snap.LastError != nil:
		return bg.Render("API "+classifyConnectionError(snap.LastError), styles.WarningText)
	default:
		return bg.Render("online", styles.SuccessText)
	}
}

// classifyConnectionError returns a short description of an API error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	var statusErr *adopt.StatusError
	var shapeErr *adopt.ShapeError
	switch {
	case errors.Is(err, adopt.ErrNotFound):
		return "NOT FOUND"
	case errors.Is(err, adopt.ErrInvalidID):
		return "INVALID ID"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("HTTP %d", statusErr.StatusCode)
	case errors.As(err, &shapeErr):
		return "BAD RESPONSE"
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the key hints for the active view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.editing:
		commands = []cmd{{"tab", "Next"}, {"←/→", "Change"}, {"enter", "Apply"}, {"esc", "Cancel"}}
	case m.searching || m.breedSearching:
		commands = []cmd{{"enter", "Apply"}, {"esc", "Close"}}
	case m.view == ViewBreeds:
		commands = []cmd{{"tab", "Dogs/Cats"}, {"/", "Search"}, {"n/p", "Page"}, {"r", "Retry"}, {"esc", "Pets"}}
	case m.view == ViewDetail:
		commands = []cmd{{"j/k", "Next/Prev pet"}, {"r", "Refresh"}, {"b", "Breeds"}, {"esc", "Pets"}}
	default:
		commands = []cmd{{"/", "Name"}, {"f", "Filters"}, {"x", "Clear"}, {"s", "Sort"}, {"n/p", "Page"}, {"enter", "Open"}, {"b", "Breeds"}, {"r", "Retry"}}
	}
	commands = append(commands, cmd{"?", "Help"}, cmd{"q", "Quit"})

	parts := make([]string, 0, len(commands))
	for _, c := range commands {
		parts = append(parts, bg.Render("<"+c.key+">", styles.AccentText)+bg.Space()+bg.Render(c.desc, styles.MutedText))
	}
	return bg.FillLine(bg.Join(parts, "  "), m.width)
}
