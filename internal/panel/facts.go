package panel

import (
	"iter"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/henri123lemoine/pawprint/internal/content"
	"github.com/henri123lemoine/pawprint/internal/motion"
	"github.com/henri123lemoine/pawprint/internal/ui"
)

// Facts renders the fun-facts list.
type Facts struct {
	timing motion.Timing
}

// Panel implements Renderer.
func (Facts) Panel() content.Panel { return content.PanelFacts }

// Heading implements Renderer.
func (Facts) Heading() Heading {
	return Heading{
		Title:       "Fun Dog Facts",
		Description: "Discover interesting facts about our canine companions.",
	}
}

// Items implements Renderer. Facts have no natural key, so the position
// is used; rows slide in from the left.
func (f Facts) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for i, fc := range content.Facts() {
			it := Item{
				Key:     strconv.Itoa(i),
				Index:   i,
				Enter:   motion.Enter(motion.Props{X: -50}, motion.Stagger(i, f.timing.Stagger), f.timing.Item),
				Content: FactRow{Fact: fc.Fact, Icon: fc.Icon},
			}
			if !yield(it) {
				return
			}
		}
	}
}

// Paint implements Renderer.
func (Facts) Paint(th ui.Theme, w int, _ float64, items []Placed) string {
	return stack(th, w, items)
}

// FactRow is the content of one fact item.
type FactRow struct {
	Fact string
	Icon string
}

// Render implements Content.
func (r FactRow) Render(st ui.Styles, w int) string {
	inner := w - st.Row.GetHorizontalFrameSize()
	icon := r.Icon + " "
	text := wordwrap.String(r.Fact, max(inner-ansi.StringWidth(icon), 1))
	return st.Row.Width(w - st.Row.GetHorizontalBorderSize()).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, st.Text.Render(icon), st.Text.Render(text)),
	)
}

// Search implements Content.
func (r FactRow) Search() string { return r.Fact }
