package app

import (
	"github.com/henri123lemoine/plant-haiku/internal/ui"
)

// Message types for the bubbletea app.

// PanelLoadedMsg is sent when a tap has produced a new panel.
type PanelLoadedMsg struct {
	Panel ui.Panel
	Err   error
}
