package cache

// Package cache keeps fetched playlist metadata keyed by URL. Values live in
// process memory or, when configured, in Redis as JSON.
