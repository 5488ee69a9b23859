// Package ui provides rendering functions for the pawprint terminal UI.
//
// It contains the presentational primitives (cards, badges, buttons, image
// slots, the tab bar), the Theme that produces Lipgloss styles at a given
// opacity, and Render, which paints a whole page from RenderParams.
// Rendering is pure (no side effects) and separated from state management.
package ui
