package model

// Package model defines domain data structures used across the app: playlist
// metadata returned by the extraction engine, download requests and reports,
// interaction stages, and the typed errors each operation can produce.
