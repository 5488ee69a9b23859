package app

import "time"

// Message types for the bubbletea app.

// MountedMsg is sent once the program has started. It sets the loaded
// flag, which fades the page in.
type MountedMsg struct{}

// FrameMsg is one animation frame, carrying its timestamp.
type FrameMsg time.Time
