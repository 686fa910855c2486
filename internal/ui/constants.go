package ui

import "fyne.io/fyne/v2"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconMusic    = "🎵"
)

// Text fragments
const (
	EntryLineFormat = "%d. %s"
	FieldFormat     = "%s: %s"
)

// Layout sizing
var (
	EntryListMinSize = fyne.NewSize(400, 240)
	SettingsSize     = fyne.NewSize(500, 320)
)
