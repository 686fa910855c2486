package model

// Stage represents where an interaction currently is
type Stage string

const (
	// StageIdle means no URL has been entered yet
	StageIdle Stage = "idle"

	// StageFetchFailed means metadata could not be retrieved for the URL
	StageFetchFailed Stage = "fetch_failed"

	// StageMetadataShown means the playlist preview is displayed
	StageMetadataShown Stage = "metadata_shown"

	// StageDownloadRequested means the downloader is running
	StageDownloadRequested Stage = "download_requested"

	// StageDownloadCompleted means the whole playlist was downloaded
	StageDownloadCompleted Stage = "download_completed"

	// StageDownloadFailed means the download stopped with an error
	StageDownloadFailed Stage = "download_failed"
)

// String returns the string representation of Stage
func (s Stage) String() string {
	return string(s)
}

// IsTerminal returns true once a download attempt has produced its outcome
func (s Stage) IsTerminal() bool {
	return s == StageDownloadCompleted || s == StageDownloadFailed
}

// IsFailure returns true for stages that display an error
func (s Stage) IsFailure() bool {
	return s == StageFetchFailed || s == StageDownloadFailed
}

// ShowsMetadata returns true for stages rendered with the playlist preview
func (s Stage) ShowsMetadata() bool {
	return s == StageMetadataShown || s == StageDownloadRequested || s.IsTerminal()
}
