package metadata

// Package metadata fetches flat playlist listings from an extraction engine and
// keeps successful results in a URL-keyed cache.
