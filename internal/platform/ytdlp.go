package platform

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	goytdlp "github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-playlist-mp3/internal/model"
)

// Audio extraction defaults
const (
	BestAudioFormat     = "bestaudio/best"
	DefaultAudioCodec   = "mp3"
	DefaultAudioQuality = "192K"
	TitleOutputTemplate = "%(title)s.%(ext)s"
)

// DefaultProgressInterval is how often engine progress is reported
const DefaultProgressInterval = 500 * time.Millisecond

// Engine stderr marker for fatal messages
const engineErrorPrefix = "ERROR:"

// AudioOptions configures a download+transcode run
type AudioOptions struct {
	Directory string
	Format    string
	Codec     string
	Quality   string
}

// DefaultAudioOptions returns the fixed mp3 192K settings for dir
func DefaultAudioOptions(dir string) AudioOptions {
	return AudioOptions{
		Directory: dir,
		Format:    BestAudioFormat,
		Codec:     DefaultAudioCodec,
		Quality:   DefaultAudioQuality,
	}
}

// OutputTemplate returns the per-entry naming template inside Directory
func (o AudioOptions) OutputTemplate() string {
	return filepath.Join(o.Directory, TitleOutputTemplate)
}

// Progress is one engine progress report for the current entry
type Progress struct {
	Title           string
	DownloadedBytes int
	TotalBytes      int
	Percent         int
	ETA             time.Duration
	Finished        bool
}

// YTDLP drives the yt-dlp executable through go-ytdlp
type YTDLP struct {
	executable       string
	forceGeneric     bool
	progressInterval time.Duration
}

// NewYTDLP creates an engine. An empty executable uses yt-dlp from PATH.
func NewYTDLP(executable string, forceGeneric bool) *YTDLP {
	return &YTDLP{
		executable:       executable,
		forceGeneric:     forceGeneric,
		progressInterval: DefaultProgressInterval,
	}
}

// newCommand returns a fresh command bound to the configured executable
func (y *YTDLP) newCommand() *goytdlp.Command {
	cmd := goytdlp.New()
	if y.executable != "" {
		cmd.SetExecutable(y.executable)
	}
	return cmd
}

// ExtractFlat fetches a shallow playlist listing without downloading media
func (y *YTDLP) ExtractFlat(ctx context.Context, url string) (*model.PlaylistMetadata, error) {
	cmd := y.newCommand().
		Quiet().
		FlatPlaylist().
		DumpSingleJSON()
	if y.forceGeneric {
		cmd.ForceGenericExtractor()
	}

	result, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, engineError(result, err)
	}
	if result == nil {
		return nil, errors.New("yt-dlp returned no output")
	}

	meta, err := ParseDumpJSON([]byte(result.Stdout))
	if err != nil {
		return nil, err
	}
	meta.URL = url
	return meta, nil
}

// DownloadAudio downloads every entry behind url and transcodes it.
// Entries are processed sequentially and the first fatal error stops the run.
func (y *YTDLP) DownloadAudio(ctx context.Context, url string, opts AudioOptions, onProgress func(Progress)) error {
	cmd := y.newCommand().
		Format(opts.Format).
		ExtractAudio().
		AudioFormat(opts.Codec).
		AudioQuality(opts.Quality).
		AbortOnError().
		Output(opts.OutputTemplate())

	if onProgress != nil {
		cmd.ProgressFunc(y.progressInterval, func(update goytdlp.ProgressUpdate) {
			onProgress(progressFromUpdate(update))
		})
	}

	result, err := cmd.Run(ctx, url)
	if err != nil {
		return engineError(result, err)
	}
	return nil
}

// progressFromUpdate converts a go-ytdlp update into a Progress
func progressFromUpdate(update goytdlp.ProgressUpdate) Progress {
	p := Progress{
		DownloadedBytes: update.DownloadedBytes,
		TotalBytes:      update.TotalBytes,
		ETA:             update.ETA(),
		Finished:        !update.Finished.IsZero(),
	}
	if update.TotalBytes > 0 {
		p.Percent = int(float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100)
	}
	if update.Info != nil && update.Info.Title != nil {
		p.Title = *update.Info.Title
	}
	return p
}

// engineError prefers the engine's own last ERROR line over the exit status
func engineError(result *goytdlp.Result, err error) error {
	if result != nil {
		if msg := LastEngineError(result.Stderr); msg != "" {
			return errors.New(msg)
		}
	}
	return fmt.Errorf("yt-dlp failed: %w", err)
}

// LastEngineError returns the message of the last "ERROR:" line in stderr
func LastEngineError(stderr string) string {
	lines := strings.Split(stderr, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, engineErrorPrefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, engineErrorPrefix))
		}
	}
	return ""
}
