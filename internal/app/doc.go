// Package app provides the main Bubble Tea application model for pawprint.
//
// It owns which content panel is active, switches the rendered panel on
// key presses and drives the entrance animations. Every panel switch
// starts a new mount, so each item's staggered entrance replays from the
// beginning. Animation state is only ever mount times plus the latest
// frame timestamp; Frame samples everything from those, so re-rendering
// and resizing never restart a transition.
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View).
package app
