package download

import (
	"context"

	"github.com/ytget/yt-playlist-mp3/internal/model"
	"github.com/ytget/yt-playlist-mp3/internal/platform"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	Download(ctx context.Context, req model.DownloadRequest) (*model.DownloadReport, error)
}

// Engine downloads and transcodes every entry behind a URL.
type Engine interface {
	DownloadAudio(ctx context.Context, url string, opts platform.AudioOptions, onProgress func(platform.Progress)) error
}

// FFmpegResolver locates the transcoder before any network use.
type FFmpegResolver func(path string) (string, error)
