package cli

// Package cli renders flow views on a terminal and asks for download
// confirmation when stdin is interactive.
