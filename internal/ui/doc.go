package ui

// Package ui contains the Fyne-based desktop user interface. Each button press
// builds a flow input, renders it off the UI thread and applies the resulting
// view. All UI strings are localized via the locale package.
