package web

// Package web serves the interaction flow over HTTP: a single page that
// previews a playlist and a form that confirms the download.
