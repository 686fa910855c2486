package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RequestIDPrefix prefixes generated download request IDs
const RequestIDPrefix = "download-"

// DownloadRequest is built when the user confirms a download and dropped once
// the call returns.
type DownloadRequest struct {
	ID              string
	PlaylistURL     string
	TargetDirectory string
	CreatedAt       time.Time
}

// NewDownloadRequest creates a request with a fresh time-ordered ID
func NewDownloadRequest(playlistURL, targetDirectory string) DownloadRequest {
	return DownloadRequest{
		ID:              generateRequestID(),
		PlaylistURL:     playlistURL,
		TargetDirectory: targetDirectory,
		CreatedAt:       time.Now(),
	}
}

// DownloadReport summarises a completed download
type DownloadReport struct {
	RequestID  string
	Directory  string
	Files      []string // audio files written or rewritten, by name
	Bytes      int64    // combined size of Files
	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns how long the download took
func (r *DownloadReport) Elapsed() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// generateRequestID uses UUID v7 so IDs sort by creation time in logs
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RequestIDPrefix+"%d", time.Now().UnixNano())
	}
	return RequestIDPrefix + id.String()
}
