package content

import "fmt"

// Panel identifies one of the three mutually exclusive content views.
type Panel int

const (
	PanelBreeds Panel = iota
	PanelFacts
	PanelCare
)

// Panels returns every panel in tab order.
func Panels() []Panel {
	return []Panel{PanelBreeds, PanelFacts, PanelCare}
}

// Valid reports whether p is one of the known panels.
func (p Panel) Valid() bool {
	return p >= PanelBreeds && p <= PanelCare
}

// String returns the panel identifier: "breeds", "facts" or "care".
func (p Panel) String() string {
	switch p {
	case PanelBreeds:
		return "breeds"
	case PanelFacts:
		return "facts"
	case PanelCare:
		return "care"
	}
	return fmt.Sprintf("panel(%d)", int(p))
}

// Label returns the tab trigger text.
func (p Panel) Label() string {
	switch p {
	case PanelBreeds:
		return "Dog Breeds"
	case PanelFacts:
		return "Fun Facts"
	case PanelCare:
		return "Care Tips"
	}
	return ""
}

// Icon returns the glyph shown before the tab label.
func (p Panel) Icon() string {
	switch p {
	case PanelBreeds:
		return "🐾"
	case PanelFacts:
		return "ℹ"
	case PanelCare:
		return "♥"
	}
	return ""
}

// ParsePanel maps an identifier back to its Panel.
func ParsePanel(s string) (Panel, bool) {
	for _, p := range Panels() {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}
