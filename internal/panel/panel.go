// Package panel turns the static content tables into animated visual
// items, one renderer per panel.
package panel

import (
	"iter"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/pawprint/internal/content"
	"github.com/henri123lemoine/pawprint/internal/motion"
	"github.com/henri123lemoine/pawprint/internal/ui"
)

// Heading is the title block of a panel's wrapper card.
type Heading struct {
	Title       string
	Description string
}

// Content is the visual body of one item.
type Content interface {
	// Render paints the item at total width w.
	Render(st ui.Styles, w int) string
	// Search returns the text the filter matches against.
	Search() string
}

// Item is one entry of a panel, keyed by an identifier that is stable
// and unique within its table.
type Item struct {
	Key     string
	Index   int
	Enter   motion.Transition
	Content Content
}

// Placed is an item together with its props at the current instant.
type Placed struct {
	Item
	Props motion.Props
}

// Renderer maps one static table onto visual items.
type Renderer interface {
	Panel() content.Panel
	Heading() Heading
	// Items yields one item per table entry in table order.
	Items() iter.Seq[Item]
	// Paint lays out placed items at width w. opacity applies to the
	// static parts of the panel.
	Paint(th ui.Theme, w int, opacity float64, items []Placed) string
}

// Options configure every renderer.
type Options struct {
	Timing       motion.Timing
	ImageService string // base URL of the image-by-keyword service; empty disables images
}

// Set holds the three renderers.
type Set struct {
	Breeds Breeds
	Facts  Facts
	Tips   Tips
}

// NewSet builds the renderers for opts.
func NewSet(opts Options) Set {
	return Set{
		Breeds: Breeds{timing: opts.Timing, service: opts.ImageService},
		Facts:  Facts{timing: opts.Timing},
		Tips:   Tips{timing: opts.Timing},
	}
}

// For returns the renderer of p. It returns nil for an unknown panel.
func (s Set) For(p content.Panel) Renderer {
	switch p {
	case content.PanelBreeds:
		return s.Breeds
	case content.PanelFacts:
		return s.Facts
	case content.PanelCare:
		return s.Tips
	}
	return nil
}

// Collect drains a renderer's items into a slice.
func Collect(r Renderer) []Item {
	return slices.Collect(r.Items())
}

// Compose paints a panel's wrapper card (heading and items) and applies
// the wrapper transition to the whole block. The wrapper's opacity is
// folded into every item.
func Compose(r Renderer, th ui.Theme, w int, wrapper motion.Props, items []Placed) string {
	st := th.At(wrapper.Opacity)
	h := r.Heading()

	faded := make([]Placed, len(items))
	for i, it := range items {
		it.Props.Opacity *= wrapper.Opacity
		faded[i] = it
	}

	body := r.Paint(th, w, wrapper.Opacity, faded)
	if len(items) == 0 {
		body = st.Muted.Render("Nothing matches the filter.")
	}

	block := lipgloss.JoinVertical(lipgloss.Left,
		st.Heading.Render(h.Title),
		st.Description.Render(h.Description),
		"",
		body,
	)
	return ui.Transform(lipgloss.PlaceHorizontal(w, lipgloss.Left, block), wrapper)
}

// paint renders one placed item faded to its opacity.
func paint(th ui.Theme, it Placed, w int) string {
	return it.Content.Render(th.At(it.Props.Opacity), w)
}

// stack paints items one under another with a blank line between them.
func stack(th ui.Theme, w int, items []Placed) string {
	blocks := make([]string, len(items))
	for i, it := range items {
		blocks[i] = ui.Transform(paint(th, it, w), it.Props)
	}
	return joinBlocks(blocks, 1)
}

func joinBlocks(blocks []string, gap int) string {
	if len(blocks) == 0 {
		return ""
	}
	out := blocks[0]
	for _, b := range blocks[1:] {
		for range gap {
			out += "\n"
		}
		out += "\n" + b
	}
	return out
}
