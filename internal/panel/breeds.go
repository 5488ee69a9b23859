package panel

import (
	"iter"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/pawprint/internal/content"
	"github.com/henri123lemoine/pawprint/internal/motion"
	"github.com/henri123lemoine/pawprint/internal/ui"
)

const (
	imageRows = 6
	gridGap   = 2
)

// Breeds renders the breed gallery as a grid of cards.
type Breeds struct {
	timing  motion.Timing
	service string
}

// Panel implements Renderer.
func (Breeds) Panel() content.Panel { return content.PanelBreeds }

// Heading implements Renderer.
func (Breeds) Heading() Heading {
	return Heading{
		Title:       "Popular Dog Breeds",
		Description: "Explore some of the most beloved dog breeds.",
	}
}

// Items implements Renderer. Cards rise 50px while fading in.
func (b Breeds) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for i, br := range content.Breeds() {
			it := Item{
				Key:   br.Name,
				Index: i,
				Enter: motion.Enter(motion.Props{Y: 50}, motion.Stagger(i, b.timing.Stagger), b.timing.Item),
				Content: BreedCard{
					Name:     br.Name,
					Trait:    br.Trait,
					ImageURL: ImageURL(b.service, br.Name),
				},
			}
			if !yield(it) {
				return
			}
		}
	}
}

// Paint implements Renderer. Cards in a row share the row's height.
func (b Breeds) Paint(th ui.Theme, w int, _ float64, items []Placed) string {
	cols := Columns(w)
	cardW := (w - gridGap*(cols-1)) / cols
	gap := strings.Repeat(" ", gridGap)

	var rows []string
	for start := 0; start < len(items); start += cols {
		row := items[start:min(start+cols, len(items))]

		cards := make([]string, len(row))
		height := 0
		for i, it := range row {
			cards[i] = paint(th, it, cardW)
			height = max(height, lipgloss.Height(cards[i]))
		}

		cells := make([]string, 0, 2*len(row))
		for i, it := range row {
			card := lipgloss.PlaceVertical(height, lipgloss.Top, cards[i])
			if i > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, ui.Transform(card, it.Props))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return joinBlocks(rows, 1)
}

// Columns returns how many cards fit side by side at width w.
func Columns(w int) int {
	switch {
	case w >= 96:
		return 3
	case w >= 64:
		return 2
	}
	return 1
}

// BreedCard is the content of one breed item.
type BreedCard struct {
	Name     string
	Trait    string
	ImageURL string // empty when no image can be requested
}

// Render implements Content.
func (c BreedCard) Render(st ui.Styles, w int) string {
	inner := w - st.Card.GetHorizontalFrameSize()
	return ui.Card(st, w,
		c.Name,
		c.Trait,
		ui.ImageSlot(st, inner, imageRows, c.ImageURL, c.Name),
		ui.Button(st, "Learn More "+ui.SymbolArrow, inner),
	)
}

// Search implements Content.
func (c BreedCard) Search() string { return c.Name + " " + c.Trait }

// ImageKeyword turns a breed name into the image service keyword: the
// name lowercased with its first space replaced by a dash. Later spaces
// are kept, so names of three or more words produce a keyword with a
// space in it.
func ImageKeyword(name string) string {
	return strings.Replace(strings.ToLower(name), " ", "-", 1)
}

// ImageURL builds the image request for a breed from the service base
// URL. The keyword is appended to any query the base already carries.
// It returns "" when the base is empty or not an absolute URL; the card
// then shows a placeholder.
func ImageURL(service, name string) string {
	if service == "" {
		return ""
	}
	u, err := url.Parse(service)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	keyword := ImageKeyword(name)
	if u.RawQuery != "" {
		keyword = u.RawQuery + "&" + keyword
	}
	u.RawQuery = keyword
	return u.String()
}
