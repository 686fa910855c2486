package download

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ytget/yt-playlist-mp3/internal/model"
	"github.com/ytget/yt-playlist-mp3/internal/platform"
)

// Progress milestones logged per entry
const progressLogStep = 25

// Service handles download operations
type Service struct {
	engine     Engine
	findFFmpeg FFmpegResolver
	ffmpegPath string

	// one download at a time per service
	runMutex sync.Mutex

	onProgress func(model.DownloadRequest, platform.Progress) // callback for UI updates

	completed atomic.Int64
	failed    atomic.Int64
}

// NewService creates a new download service
func NewService(engine Engine) *Service {
	return &Service{engine: engine}
}

// SetFFmpegCheck enables the transcoder preflight with the given resolver
func (s *Service) SetFFmpegCheck(resolver FFmpegResolver, path string) {
	s.findFFmpeg = resolver
	s.ffmpegPath = path
}

// SetProgressCallback sets the callback function for engine progress
func (s *Service) SetProgressCallback(callback func(model.DownloadRequest, platform.Progress)) {
	s.onProgress = callback
}

// Completed returns the number of successful downloads
func (s *Service) Completed() int64 { return s.completed.Load() }

// Failed returns the number of failed downloads
func (s *Service) Failed() int64 { return s.failed.Load() }

// Download fetches every playlist entry as mp3 into req.TargetDirectory.
// Once started the run ignores caller cancellation and stops only at the
// first unrecoverable error. Nothing is retried.
func (s *Service) Download(ctx context.Context, req model.DownloadRequest) (*model.DownloadReport, error) {
	report, err := s.download(context.WithoutCancel(ctx), req)
	if err != nil {
		s.failed.Add(1)
		log.Printf("Download %s failed: %v", req.ID, err)
		return nil, err
	}
	s.completed.Add(1)
	log.Printf("Download %s completed: %d files in %s", req.ID, len(report.Files), report.Elapsed().Round(time.Second))
	return report, nil
}

func (s *Service) download(ctx context.Context, req model.DownloadRequest) (*model.DownloadReport, error) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	dir := req.TargetDirectory
	if strings.TrimSpace(dir) == "" {
		return nil, &model.DirectoryError{Dir: dir, Err: model.ErrEmptyDirectory}
	}

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, &model.DirectoryError{Dir: dir, Err: err}
	}

	if s.findFFmpeg != nil {
		if _, err := s.findFFmpeg(s.ffmpegPath); err != nil {
			return nil, &model.DownloadError{URL: req.PlaylistURL, Err: err}
		}
	}

	opts := platform.DefaultAudioOptions(dir)
	before, err := platform.SnapshotAudioFiles(dir, "."+opts.Codec)
	if err != nil {
		return nil, &model.DownloadError{URL: req.PlaylistURL, Err: err}
	}

	report := &model.DownloadReport{
		RequestID: req.ID,
		Directory: dir,
		StartedAt: time.Now(),
	}
	log.Printf("Download %s started: %s -> %s", req.ID, req.PlaylistURL, dir)

	tracker := &progressTracker{}
	err = s.engine.DownloadAudio(ctx, req.PlaylistURL, opts, func(p platform.Progress) {
		tracker.log(req.ID, p)
		if s.onProgress != nil {
			s.onProgress(req, p)
		}
	})
	report.FinishedAt = time.Now()
	if err != nil {
		return nil, &model.DownloadError{URL: req.PlaylistURL, Err: err}
	}

	after, err := platform.SnapshotAudioFiles(dir, "."+opts.Codec)
	if err != nil {
		return nil, &model.DownloadError{URL: req.PlaylistURL, Err: fmt.Errorf("list written files: %w", err)}
	}
	report.Files, report.Bytes = platform.DiffSnapshots(before, after)
	return report, nil
}

// progressTracker logs each entry at coarse percentage steps
type progressTracker struct {
	title   string
	logged  int
	entries int
}

func (t *progressTracker) log(requestID string, p platform.Progress) {
	if p.Title != t.title {
		t.title = p.Title
		t.logged = -1
		t.entries++
		log.Printf("Download %s entry %d: %s", requestID, t.entries, p.Title)
	}

	step := p.Percent / progressLogStep * progressLogStep
	if step > t.logged {
		t.logged = step
		log.Printf("Download %s entry %d: %d%%", requestID, t.entries, step)
	}
}
