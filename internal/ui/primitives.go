package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/henri123lemoine/pawprint/internal/motion"
)

// Pixel offsets from motion.Props map onto terminal cells at this size.
const (
	CellWidth  = 8
	CellHeight = 16
)

// invisible is the opacity below which a block paints as blank cells.
const invisible = 0.02

// Cols converts a horizontal pixel offset into columns.
func Cols(px float64) int { return int(math.Round(px / CellWidth)) }

// Rows converts a vertical pixel offset into rows.
func Rows(px float64) int { return int(math.Round(px / CellHeight)) }

// Visible reports whether a block at opacity o paints anything.
func Visible(o float64) bool { return o >= invisible }

// Transform applies the offsets of p to block without changing its size,
// like a CSS transform: content moved past an edge is clipped and the
// uncovered cells are blank. A transparent block becomes all blank.
func Transform(block string, p motion.Props) string {
	w, h := lipgloss.Size(block)
	if !Visible(p.Opacity) {
		return Blank(w, h)
	}
	dx, dy := Cols(p.X), Rows(p.Y)
	if dx == 0 && dy == 0 {
		return block
	}

	lines := strings.Split(block, "\n")
	if dx != 0 {
		for i, l := range lines {
			lines[i] = shiftLine(l, dx, w)
		}
	}

	blank := strings.Repeat(" ", w)
	switch {
	case dy > 0:
		dy = min(dy, h)
		lines = append(repeatLine(blank, dy), lines[:h-dy]...)
	case dy < 0:
		n := min(-dy, h)
		lines = append(lines[n:], repeatLine(blank, n)...)
	}
	return strings.Join(lines, "\n")
}

func shiftLine(l string, dx, w int) string {
	var s string
	if dx > 0 {
		s = ansi.Truncate(strings.Repeat(" ", dx)+l, w, "")
	} else {
		s = ansi.TruncateLeft(l, -dx, "")
	}
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func repeatLine(line string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = line
	}
	return out
}

// Blank returns a w×h block of spaces.
func Blank(w, h int) string {
	if h <= 0 {
		return ""
	}
	return strings.Join(repeatLine(strings.Repeat(" ", max(w, 0)), h), "\n")
}

// Card renders a bordered card of total width w. Empty sections are
// skipped.
func Card(st Styles, w int, title, description, body, footer string) string {
	inner := w - st.Card.GetHorizontalFrameSize()
	var parts []string
	if title != "" {
		parts = append(parts, st.CardTitle.Render(ansi.Truncate(title, inner, "…")))
	}
	if description != "" {
		parts = append(parts, st.Description.Render(ansi.Truncate(description, inner, "…")))
	}
	if body != "" {
		parts = append(parts, "", body)
	}
	if footer != "" {
		parts = append(parts, "", footer)
	}
	return st.Card.Width(w - st.Card.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Badge renders a small label with the secondary variant.
func Badge(st Styles, label string) string {
	return st.Badge.Render(label)
}

// Button renders an outline button spanning width w. Buttons are
// presentational only.
func Button(st Styles, label string, w int) string {
	return st.Button.
		Width(w - st.Button.GetHorizontalBorderSize()).
		Align(lipgloss.Center).
		Render(label)
}

// ImageSlot renders the frame an image would occupy. The image URL is
// attached as a terminal hyperlink; an empty URL degrades to a
// placeholder.
func ImageSlot(st Styles, w, h int, url, alt string) string {
	inner := max(w-st.Image.GetHorizontalBorderSize(), 1)
	var lines []string
	if url == "" {
		lines = append(lines, ansi.Truncate("image unavailable", inner, "…"))
	} else {
		lines = append(lines, ansi.Truncate(SymbolImage+" "+alt, inner, "…"))
		label := ansi.Truncate(url, inner, "…")
		lines = append(lines, ansi.SetHyperlink(url)+label+ansi.ResetHyperlink())
	}
	return st.Image.
		Width(inner).
		Height(max(h-st.Image.GetVerticalBorderSize(), 1)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// Tab is one trigger of the tab bar.
type Tab struct {
	Icon   string
	Label  string
	Active bool
}

// TabBar renders equal-width tab triggers inside a frame of width w.
func TabBar(st Styles, w int, tabs []Tab) string {
	if len(tabs) == 0 {
		return ""
	}
	inner := w - st.TabBar.GetHorizontalBorderSize()
	each := inner / len(tabs)
	cells := make([]string, len(tabs))
	for i, t := range tabs {
		cw := each
		if i == len(tabs)-1 {
			cw = inner - each*(len(tabs)-1)
		}
		style := st.TabInactive
		if t.Active {
			style = st.TabActive
		}
		label := t.Label
		if t.Icon != "" {
			label = t.Icon + " " + label
		}
		cells[i] = lipgloss.PlaceHorizontal(cw, lipgloss.Center, style.Render(ansi.Truncate(label, cw, "…")))
	}
	return st.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}
