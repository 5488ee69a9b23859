// Package ui handles terminal UI rendering.
package ui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/pawprint/internal/motion"
)

// Palette holds the hex colors of a theme. Hex values are required so
// that faded variants can be computed.
type Palette struct {
	Title      string // page title
	Heading    string // panel and card titles
	Text       string // body text
	Muted      string // descriptions, hints
	Border     string // card and row borders
	Accent     string // active tab
	BadgeFg    string
	BadgeBg    string
	Background string // terminal background the colors fade towards
}

// Light is a blue and purple palette on a white background.
var Light = Palette{
	Title:      "#1e40af",
	Heading:    "#1d4ed8",
	Text:       "#111827",
	Muted:      "#6b7280",
	Border:     "#d1d5db",
	Accent:     "#7c3aed",
	BadgeFg:    "#111827",
	BadgeBg:    "#e5e7eb",
	Background: "#ffffff",
}

// Dark is the same palette lifted for dark terminals.
var Dark = Palette{
	Title:      "#93c5fd",
	Heading:    "#60a5fa",
	Text:       "#e5e7eb",
	Muted:      "#9ca3af",
	Border:     "#4b5563",
	Accent:     "#a78bfa",
	BadgeFg:    "#f3f4f6",
	BadgeBg:    "#374151",
	Background: "#1e1e2e",
}

// Theme produces styles for a palette.
type Theme struct {
	Palette Palette
}

// ThemeFor resolves a theme name: "light", "dark" or "auto" (detect).
func ThemeFor(name string) Theme {
	switch name {
	case "light":
		return Theme{Palette: Light}
	case "dark":
		return Theme{Palette: Dark}
	}
	if lipgloss.HasDarkBackground() {
		return Theme{Palette: Dark}
	}
	return Theme{Palette: Light}
}

// Styles are the Lipgloss styles for one opacity level.
type Styles struct {
	Opacity float64

	Title       lipgloss.Style
	Heading     lipgloss.Style
	CardTitle   lipgloss.Style
	Description lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Subheading  lipgloss.Style

	Card   lipgloss.Style
	Row    lipgloss.Style
	Image  lipgloss.Style
	Badge  lipgloss.Style
	Button lipgloss.Style

	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Help    lipgloss.Style
	Divider lipgloss.Style
}

// opacitySteps quantizes opacity so that near-identical frames share
// identical colors.
const opacitySteps = 20

// At returns the theme's styles with every color faded to opacity.
func (t Theme) At(opacity float64) Styles {
	opacity = math.Round(math.Max(0, math.Min(1, opacity))*opacitySteps) / opacitySteps
	p := t.Palette
	c := func(hex string) lipgloss.Color {
		return lipgloss.Color(motion.Fade(hex, p.Background, opacity))
	}

	return Styles{
		Opacity: opacity,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(p.Title)),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(p.Heading)),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(p.Text)),
		Description: lipgloss.NewStyle().
			Foreground(c(p.Muted)),
		Text: lipgloss.NewStyle().
			Foreground(c(p.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(c(p.Muted)),
		Subheading: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(p.Text)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.Border)).
			Padding(0, 1),
		Row: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.Border)).
			Padding(0, 1),
		Image: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c(p.Border)).
			Foreground(c(p.Muted)),
		Badge: lipgloss.NewStyle().
			Foreground(c(p.BadgeFg)).
			Background(c(p.BadgeBg)).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.Border)).
			Foreground(c(p.Text)),

		TabBar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.Border)),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(p.Accent)).
			Underline(true),
		TabInactive: lipgloss.NewStyle().
			Foreground(c(p.Muted)),

		Help: lipgloss.NewStyle().
			Foreground(c(p.Muted)),
		Divider: lipgloss.NewStyle().
			Foreground(c(p.Border)),
	}
}

// Symbols
const (
	SymbolImage   = "▣"
	SymbolArrow   = "→"
	SymbolDivider = "─"
	SymbolFilter  = "/"
)
