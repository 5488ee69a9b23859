package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/pawprint/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Panels
	Breeds key.Binding
	Facts  key.Binding
	Care   key.Binding
	Next   key.Binding
	Prev   key.Binding

	// Body
	Scroll key.Binding
	Filter key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Breeds: key.NewBinding(
			key.WithKeys("1", "b"),
			key.WithHelp("1/b", "breeds"),
		),
		Facts: key.NewBinding(
			key.WithKeys("2", "f"),
			key.WithHelp("2/f", "facts"),
		),
		Care: key.NewBinding(
			key.WithKeys("3", "c"),
			key.WithHelp("3/c", "care"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "prev tab"),
		),
		// Handled by the viewport; listed for help only.
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if cfg.Breeds != "" {
		km.Breeds = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Breeds)...),
			key.WithHelp(helpKeys(cfg.Breeds), "breeds"),
		)
	}
	if cfg.Facts != "" {
		km.Facts = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Facts)...),
			key.WithHelp(helpKeys(cfg.Facts), "facts"),
		)
	}
	if cfg.Care != "" {
		km.Care = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Care)...),
			key.WithHelp(helpKeys(cfg.Care), "care"),
		)
	}
	if cfg.Next != "" {
		km.Next = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Next)...),
			key.WithHelp(helpKeys(cfg.Next), "next tab"),
		)
	}
	if cfg.Prev != "" {
		km.Prev = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Prev)...),
			key.WithHelp(helpKeys(cfg.Prev), "prev tab"),
		)
	}
	if cfg.Filter != "" {
		km.Filter = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Filter)...),
			key.WithHelp(helpKeys(cfg.Filter), "filter"),
		)
	}
	if cfg.Help != "" {
		km.Help = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Help)...),
			key.WithHelp(helpKeys(cfg.Help), "more"),
		)
	}
	if cfg.Quit != "" {
		km.Quit = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit)...),
			key.WithHelp(helpKeys(cfg.Quit), "quit"),
		)
	}

	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Breeds, k.Facts, k.Care},
		{k.Next, k.Prev, k.Scroll},
		{k.Filter, k.Help, k.Quit},
	}
}

// parseKeys parses a comma-separated list of keys.
func parseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

// helpKeys formats a key list for the help footer.
func helpKeys(s string) string {
	return strings.Join(parseKeys(s), "/")
}
