package app

// Package app assembles the engine, cache, fetcher, downloader and flow
// shared by the command-line and desktop entry points.

import (
	"context"
	"time"

	"github.com/ytget/yt-playlist-mp3/internal/cache"
	"github.com/ytget/yt-playlist-mp3/internal/config"
	"github.com/ytget/yt-playlist-mp3/internal/download"
	"github.com/ytget/yt-playlist-mp3/internal/flow"
	"github.com/ytget/yt-playlist-mp3/internal/metadata"
	"github.com/ytget/yt-playlist-mp3/internal/model"
	"github.com/ytget/yt-playlist-mp3/internal/platform"
)

// Config selects engines and tuning for one App
type Config struct {
	Extractor       string
	YTDLPPath       string
	FFmpegPath      string
	SkipFFmpegCheck bool
	FetchTimeout    time.Duration
	CacheTTL        time.Duration
	PreviewLimit    int
	DefaultDir      func() string
	Cache           cache.Options
}

// App holds the wired services
type App struct {
	Fetcher    *metadata.Fetcher
	Downloader *download.Service
	Flow       *flow.Flow
}

// FromOptions maps parsed CLI options to a Config
func FromOptions(opts *config.Options) Config {
	return Config{
		Extractor:       opts.Extractor,
		YTDLPPath:       opts.YTDLPPath,
		FFmpegPath:      opts.FFmpegPath,
		SkipFFmpegCheck: opts.SkipFFmpegCheck,
		FetchTimeout:    opts.FetchTimeout,
		CacheTTL:        opts.CacheTTL,
		PreviewLimit:    opts.PreviewLimit,
		DefaultDir:      platform.WorkingDirectory,
		Cache: cache.Options{
			RedisAddr:     opts.RedisAddr,
			RedisPassword: opts.RedisPassword,
			RedisDB:       opts.RedisDB,
		},
	}
}

// New wires the services. A configured but unreachable Redis falls back to
// the in-memory cache.
func New(ctx context.Context, cfg Config) *App {
	engine := platform.NewYTDLP(cfg.YTDLPPath, config.ForceGeneric(cfg.Extractor))

	var extractor metadata.Extractor = engine
	if cfg.Extractor == config.ExtractorYouTube {
		extractor = platform.NewYouTubeLister(0)
	}

	store := cache.Open[*model.PlaylistMetadata](ctx, cfg.Cache)
	fetcher := metadata.NewFetcher(extractor, store)
	if cfg.FetchTimeout > 0 {
		fetcher.SetTimeout(cfg.FetchTimeout)
	}
	if cfg.CacheTTL > 0 {
		fetcher.SetTTL(cfg.CacheTTL)
	}

	downloader := download.NewService(engine)
	if !cfg.SkipFFmpegCheck {
		downloader.SetFFmpegCheck(platform.FindFFmpeg, cfg.FFmpegPath)
	}

	defaultDir := cfg.DefaultDir
	if defaultDir == nil {
		defaultDir = platform.WorkingDirectory
	}

	return &App{
		Fetcher:    fetcher,
		Downloader: downloader,
		Flow: flow.New(fetcher, downloader,
			flow.WithDefaultDirectory(defaultDir),
			flow.WithPreviewLimit(cfg.PreviewLimit),
		),
	}
}
