package panel

import (
	"iter"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/henri123lemoine/pawprint/internal/content"
	"github.com/henri123lemoine/pawprint/internal/motion"
	"github.com/henri123lemoine/pawprint/internal/ui"
)

// TipsSubheading is shown above the tip rows.
const TipsSubheading = "Essential Dog Care Tips"

// Tips renders the care-tips list.
type Tips struct {
	timing motion.Timing
}

// Panel implements Renderer.
func (Tips) Panel() content.Panel { return content.PanelCare }

// Heading implements Renderer.
func (Tips) Heading() Heading {
	return Heading{
		Title:       "Dog Care Tips",
		Description: "Learn how to keep your furry friend happy and healthy.",
	}
}

// Items implements Renderer.
func (t Tips) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for i, tp := range content.Tips() {
			it := Item{
				Key:     strconv.Itoa(i),
				Index:   i,
				Enter:   motion.Enter(motion.Props{Y: 20}, motion.Stagger(i, t.timing.Stagger), t.timing.Item),
				Content: TipRow{Tip: tp.Tip, Category: tp.Category},
			}
			if !yield(it) {
				return
			}
		}
	}
}

// Paint implements Renderer.
func (Tips) Paint(th ui.Theme, w int, opacity float64, items []Placed) string {
	st := th.At(opacity)
	head := st.Subheading.Width(w).Align(lipgloss.Center).Render(TipsSubheading)
	return head + "\n\n" + stack(th, w, items)
}

// TipRow is the content of one tip item.
type TipRow struct {
	Tip      string
	Category string
}

// Render implements Content.
func (r TipRow) Render(st ui.Styles, w int) string {
	inner := w - st.Row.GetHorizontalFrameSize()
	return st.Row.Width(w - st.Row.GetHorizontalBorderSize()).Render(
		ui.Badge(st, r.Category) + "\n" + st.Text.Render(wordwrap.String(r.Tip, max(inner, 1))),
	)
}

// Search implements Content.
func (r TipRow) Search() string { return r.Category + " " + r.Tip }
