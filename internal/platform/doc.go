package platform

// Package platform contains OS integration and external tooling glue:
// filesystem helpers, the yt-dlp engine, playlist listing and OS open/reveal.
