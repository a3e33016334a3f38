package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/format"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and footer bars
	SurfaceAlt string // Panels and the filter form

	// Selection
	SelectionBg   string
	SelectionText string

	// Borders
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Banner: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Warning)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true).
			Padding(0, 1),

		theme: t,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Panel lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
	Banner   lipgloss.Style

	theme Theme
}

// ToneStyle returns the text style for a semantic tone.
func (s Styles) ToneStyle(tone format.Tone) lipgloss.Style {
	switch tone {
	case format.ToneSuccess:
		return s.SuccessText
	case format.ToneWarning:
		return s.WarningText
	case format.ToneMuted:
		return s.MutedText
	default:
		return s.InfoText
	}
}

// StatusBadge returns a filled badge style for an adoption status.
func (s Styles) StatusBadge(status adopt.Status) lipgloss.Style {
	color := s.theme.Info
	switch format.StatusTone(status) {
	case format.ToneSuccess:
		color = s.theme.Success
	case format.ToneWarning:
		color = s.theme.Warning
	case format.ToneMuted:
		color = s.theme.Muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.theme.Background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// WithBackground returns a copy of Styles whose text styles carry bgColor.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.SuccessText = s.SuccessText.Background(bg)
	out.WarningText = s.WarningText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.InfoText = s.InfoText.Background(bg)
	out.Footer = s.Footer.Background(bg)
	out.Logo = s.Logo.Background(bg)
	return out
}

// Theme definitions

const defaultThemeName = "Meadow"

var themes = map[string]Theme{
	"Meadow": meadowTheme(),
	"Dusk":   duskTheme(),
	"Harbor": harborTheme(),
}

var themeOrder = []string{"Meadow", "Dusk", "Harbor"}

// GetTheme returns a theme by name, or Meadow when the name is unknown.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return meadowTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names in cycle order.
func ThemeNames() []string {
	return themeOrder
}

func meadowTheme() Theme {
	// Everforest dark palette: https://github.com/sainnhe/everforest
	return Theme{
		Name: "Meadow",

		Background: "#232a2e", // bg_dim
		Surface:    "#2d353b", // bg0
		SurfaceAlt: "#343f44", // bg1

		SelectionBg:   "#475258", // bg3
		SelectionText: "#d3c6aa", // fg

		Border:      "#4f585e", // bg4
		BorderFocus: "#a7c080", // green

		Text:    "#d3c6aa", // fg
		Muted:   "#9da9a0", // grey2
		Faint:   "#7a8478", // grey0
		Accent:  "#7fbbb3", // blue
		Success: "#a7c080", // green
		Warning: "#dbbc7f", // yellow
		Danger:  "#e67e80", // red
		Info:    "#83c092", // aqua
	}
}

func duskTheme() Theme {
	// Rosé Pine palette: https://rosepinetheme.com/palette
	return Theme{
		Name: "Dusk",

		Background: "#191724", // base
		Surface:    "#1f1d2e", // surface
		SurfaceAlt: "#26233a", // overlay

		SelectionBg:   "#403d52", // highlight med
		SelectionText: "#e0def4", // text

		Border:      "#524f67", // highlight high
		BorderFocus: "#c4a7e7", // iris

		Text:    "#e0def4", // text
		Muted:   "#908caa", // subtle
		Faint:   "#6e6a86", // muted
		Accent:  "#c4a7e7", // iris
		Success: "#9ccfd8", // foam
		Warning: "#f6c177", // gold
		Danger:  "#eb6f92", // love
		Info:    "#ebbcba", // rose
	}
}

func harborTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Harbor",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500
	}
}
