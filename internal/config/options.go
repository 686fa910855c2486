package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/joho/godotenv"
)

// Extractor modes
const (
	ExtractorGeneric = "generic"
	ExtractorYouTube = "youtube"
)

// DefaultEnvFile is loaded before flags are parsed when it exists
const DefaultEnvFile = ".env"

// ServeCmd runs the web front-end
type ServeCmd struct {
	Listen      string        `arg:"--listen,env:YTPL_LISTEN" default:":8080" help:"address to listen on"`
	RateLimit   float64       `arg:"--rate-limit,env:YTPL_RATE_LIMIT" default:"5" help:"requests per second allowed"`
	RateBurst   int           `arg:"--rate-burst,env:YTPL_RATE_BURST" default:"10" help:"burst size for the rate limiter"`
	ReadTimeout time.Duration `arg:"--read-timeout,env:YTPL_READ_TIMEOUT" default:"15s" help:"HTTP read timeout"`
}

// FetchCmd prints the playlist preview
type FetchCmd struct {
	URL string `arg:"positional,required" help:"playlist URL"`
}

// DownloadCmd previews and downloads a playlist as mp3
type DownloadCmd struct {
	URL string `arg:"positional,required" help:"playlist URL"`
	Dir string `arg:"-d,--dir,env:YTPL_DOWNLOAD_DIR" help:"target directory, created when missing (default: working directory)"`
	Yes bool   `arg:"-y,--yes" help:"download without asking for confirmation"`
}

// Options holds CLI arguments parsed by go-arg.
type Options struct {
	Serve    *ServeCmd    `arg:"subcommand:serve" help:"run the web front-end"`
	Fetch    *FetchCmd    `arg:"subcommand:fetch" help:"show playlist details"`
	Download *DownloadCmd `arg:"subcommand:download" help:"download a playlist as mp3"`

	Extractor       string        `arg:"--extractor,env:YTPL_EXTRACTOR" default:"generic" help:"metadata extractor: generic or youtube"`
	YTDLPPath       string        `arg:"--yt-dlp,env:YTPL_YTDLP_PATH" help:"path to the yt-dlp executable"`
	FFmpegPath      string        `arg:"--ffmpeg,env:YTPL_FFMPEG_PATH" help:"path to ffmpeg used for the preflight check"`
	SkipFFmpegCheck bool          `arg:"--skip-ffmpeg-check,env:YTPL_SKIP_FFMPEG_CHECK" help:"do not look for ffmpeg before downloading"`
	FetchTimeout    time.Duration `arg:"--fetch-timeout,env:YTPL_FETCH_TIMEOUT" default:"60s" help:"timeout for metadata extraction"`
	CacheTTL        time.Duration `arg:"--cache-ttl,env:YTPL_CACHE_TTL" default:"10m" help:"how long fetched metadata is reused"`
	RedisAddr       string        `arg:"--redis-addr,env:YTPL_REDIS_ADDR" help:"redis address for the metadata cache"`
	RedisPassword   string        `arg:"--redis-password,env:YTPL_REDIS_PASSWORD" help:"redis password"`
	RedisDB         int           `arg:"--redis-db,env:YTPL_REDIS_DB" default:"0" help:"redis database number"`
	Language        string        `arg:"--lang,env:YTPL_LANG" default:"en" help:"message language: en, ru or pt"`
	PreviewLimit    int           `arg:"--preview-limit,env:YTPL_PREVIEW_LIMIT" default:"20" help:"number of entries listed in the preview"`

	version string
}

// Version is printed by --version
func (o Options) Version() string {
	return "yt-playlist-mp3 " + o.version
}

// Description provides the help header
func (Options) Description() string {
	return "Preview a video playlist and download every entry as mp3 via yt-dlp.\n"
}

// LoadEnvFile loads variables from path without overriding the environment.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ParseArgs parses CLI arguments using go-arg.
// The parser is returned so callers can print usage on error.
func ParseArgs(args []string, version string) (*Options, *arg.Parser, error) {
	opts := &Options{version: version}
	parser, err := arg.NewParser(arg.Config{Program: "yt-playlist-mp3"}, opts)
	if err != nil {
		return nil, nil, err
	}
	if err := parser.Parse(args); err != nil {
		return opts, parser, err
	}
	if err := opts.Validate(); err != nil {
		return opts, parser, err
	}
	return opts, parser, nil
}

// Validate checks values go-arg cannot express
func (o *Options) Validate() error {
	switch o.Extractor {
	case ExtractorGeneric, ExtractorYouTube:
	default:
		return fmt.Errorf("unknown extractor %q (want %s or %s)", o.Extractor, ExtractorGeneric, ExtractorYouTube)
	}
	if o.PreviewLimit < 1 {
		return fmt.Errorf("preview limit must be positive, got %d", o.PreviewLimit)
	}
	if o.FetchTimeout < 0 || o.CacheTTL < 0 {
		return errors.New("timeouts must not be negative")
	}
	if o.Serve != nil && o.Serve.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive, got %v", o.Serve.RateLimit)
	}
	return nil
}

// ForceGeneric reports whether yt-dlp should skip site-specific extractors
// for the given extractor mode
func ForceGeneric(extractor string) bool {
	return extractor != ExtractorYouTube
}
