package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for input that never reaches the engine.
var (
	// ErrEmptyURL is returned when no playlist URL was supplied.
	ErrEmptyURL = errors.New("playlist URL is empty")
	// ErrEmptyDirectory is returned when no target directory was supplied.
	ErrEmptyDirectory = errors.New("download directory is empty")
	// ErrNoEntryList is returned when the engine answered with a single item
	// instead of a playlist listing.
	ErrNoEntryList = errors.New("no playlist entries in response")
	// ErrNotADirectory is returned when the target path exists as a file.
	ErrNotADirectory = errors.New("path exists and is not a directory")
)

// ExtractionError reports a failed metadata fetch.
type ExtractionError struct {
	URL string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("fetch playlist info for %q: %v", e.URL, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// DirectoryError reports a target directory that is missing and could not
// be created. The engine is never invoked when this is returned.
type DirectoryError struct {
	Dir string
	Err error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("prepare download directory %q: %v", e.Dir, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// DownloadError reports a download or transcode that stopped the batch.
// Files written before the failure stay on disk.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download playlist %q: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// IsExtractionError reports whether err is or wraps an *ExtractionError
func IsExtractionError(err error) bool {
	var target *ExtractionError
	return errors.As(err, &target)
}

// IsDirectoryError reports whether err is or wraps a *DirectoryError
func IsDirectoryError(err error) bool {
	var target *DirectoryError
	return errors.As(err, &target)
}

// IsDownloadError reports whether err is or wraps a *DownloadError
func IsDownloadError(err error) bool {
	var target *DownloadError
	return errors.As(err, &target)
}

// Cause returns the innermost message of a typed error for display.
func Cause(err error) string {
	var (
		ex  *ExtractionError
		dir *DirectoryError
		dl  *DownloadError
	)
	switch {
	case errors.As(err, &ex) && ex.Err != nil:
		return ex.Err.Error()
	case errors.As(err, &dir) && dir.Err != nil:
		return dir.Err.Error()
	case errors.As(err, &dl) && dl.Err != nil:
		return dl.Err.Error()
	case err != nil:
		return err.Error()
	}
	return ""
}
