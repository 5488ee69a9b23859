package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/pawprint/internal/motion"
)

// PageTitle is the heading shown above the tabs.
const PageTitle = "All About Dogs"

// TitleRows is the fixed height of the title region. The title slides
// inside it without moving the rest of the page.
const TitleRows = 3

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	Width    int
	Height   int
	MaxWidth int
	Theme    Theme

	Page   motion.Props // container fade-in
	TitleY float64      // title spring offset in pixels

	Tabs []Tab
	Body string // already painted panel content (viewport view)

	Filtering   bool
	FilterInput string
	FilterValue string
	Help        string
}

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 8

// ContentWidth returns the page width for a terminal of width w with
// an optional cap (0 = no cap).
func ContentWidth(w, maxWidth int) int {
	if w < MinWidth {
		w = MinWidth
	}
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	return w
}

// Render renders the full UI.
func Render(p RenderParams) string {
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}
	st := p.Theme.At(p.Page.Opacity)
	cw := ContentWidth(p.Width, p.MaxWidth)

	page := lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(p, st, cw),
		p.Body,
		renderFooter(p, st, cw),
	)
	page = Transform(page, motion.Props{Opacity: p.Page.Opacity})
	return lipgloss.PlaceHorizontal(p.Width, lipgloss.Center, page)
}

// ChromeHeight returns the rows taken by everything except the body.
func ChromeHeight(p RenderParams) int {
	st := p.Theme.At(1)
	cw := ContentWidth(p.Width, p.MaxWidth)
	return lipgloss.Height(renderHeader(p, st, cw)) + lipgloss.Height(renderFooter(p, st, cw))
}

// renderHeader renders the sliding title and the tab bar.
func renderHeader(p RenderParams, st Styles, cw int) string {
	title := st.Title.Width(cw).Align(lipgloss.Center).Render(PageTitle)
	region := lipgloss.PlaceVertical(TitleRows, lipgloss.Center, title)
	region = Transform(region, motion.Props{Opacity: 1, Y: p.TitleY})

	return lipgloss.JoinVertical(lipgloss.Left,
		region,
		TabBar(st, cw, p.Tabs),
	)
}

// renderFooter renders the filter line and the key help.
func renderFooter(p RenderParams, st Styles, cw int) string {
	var b strings.Builder
	b.WriteString(st.Divider.Render(strings.Repeat(SymbolDivider, cw)))
	if p.Filtering {
		b.WriteString("\n" + p.FilterInput)
	} else if p.FilterValue != "" {
		b.WriteString("\n" + st.Muted.Render("filter: "+p.FilterValue+"  (esc clears)"))
	}
	if p.Help != "" {
		b.WriteString("\n" + p.Help)
	}
	return b.String()
}
