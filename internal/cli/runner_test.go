package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ytget/yt-playlist-mp3/internal/cache"
	"github.com/ytget/yt-playlist-mp3/internal/flow"
	"github.com/ytget/yt-playlist-mp3/internal/metadata"
	"github.com/ytget/yt-playlist-mp3/internal/model"
)

type stubFetcher struct {
	meta *model.PlaylistMetadata
	err  error
}

func (s stubFetcher) Fetch(_ context.Context, url string, _ bool) (*model.PlaylistMetadata, error) {
	if s.err != nil {
		return nil, &model.ExtractionError{URL: url, Err: s.err}
	}
	return s.meta, nil
}

type countingDownloader struct {
	calls int
	dirs  []string
	err   error
}

func (d *countingDownloader) Download(_ context.Context, req model.DownloadRequest) (*model.DownloadReport, error) {
	d.calls++
	d.dirs = append(d.dirs, req.TargetDirectory)
	if d.err != nil {
		return nil, d.err
	}
	return &model.DownloadReport{Files: []string{"a.mp3", "b.mp3", "c.mp3"}, Bytes: 9_000_000}, nil
}

func playlist(n int) *model.PlaylistMetadata {
	title := "Road Trip"
	uploader := "DJ"
	meta := &model.PlaylistMetadata{Title: &title, Uploader: &uploader, HasEntryList: true}
	for i := 1; i <= n; i++ {
		meta.Entries = append(meta.Entries, model.EntryMetadata{Index: i, Title: fmt.Sprintf("Song %d", i)})
	}
	return meta
}

func newRunner(fetcher stubFetcher, dl *countingDownloader, stdin string, tty bool) (*Runner, *bytes.Buffer) {
	f := flow.New(fetcher, dl, flow.WithDefaultDirectory(func() string { return "/work" }))
	out := &bytes.Buffer{}
	r := NewRunner(f, out, strings.NewReader(stdin))
	r.SetTerminalCheck(func() bool { return tty })
	return r, out
}

func TestFetch_PrintsPreview(t *testing.T) {
	r, out := newRunner(stubFetcher{meta: playlist(22)}, &countingDownloader{}, "", false)

	if code := r.Fetch(context.Background(), "u", "en"); code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}

	text := out.String()
	for _, want := range []string{
		"Fetching playlist details...",
		"Playlist: Road Trip",
		"Uploader: DJ",
		"Videos in playlist:",
		"1. Song 1\n",
		"20. Song 20\n",
		"... and more",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Song 21") {
		t.Error("entry 21 must not be printed")
	}
}

func TestFetch_Failure(t *testing.T) {
	r, out := newRunner(stubFetcher{err: errors.New("Unsupported URL")}, &countingDownloader{}, "", false)

	if code := r.Fetch(context.Background(), "u", "en"); code != ExitFailure {
		t.Fatalf("expected exit %d, got %d", ExitFailure, code)
	}
	if !strings.Contains(out.String(), "! Failed to retrieve playlist details.") {
		t.Errorf("expected failure message, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Error fetching playlist info: Unsupported URL") {
		t.Errorf("expected engine message, got:\n%s", out.String())
	}
}

func TestDownload_Confirmation(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		tty       bool
		yes       bool
		wantCode  int
		wantCalls int
		wantText  string
	}{
		{"yes flag skips prompt", "", false, true, ExitOK, 1, "Download completed!"},
		{"tty answer yes", "y\n", true, false, ExitOK, 1, "Download 3 entries to /work? [y/N] "},
		{"tty answer no", "n\n", true, false, ExitOK, 0, "Download cancelled."},
		{"tty empty answer", "", true, false, ExitOK, 0, "Download cancelled."},
		{"no tty without yes", "", false, false, ExitFailure, 0, "pass --yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dl := &countingDownloader{}
			r, out := newRunner(stubFetcher{meta: playlist(3)}, dl, tt.stdin, tt.tty)

			code := r.Download(context.Background(), "u", "", tt.yes, "en")
			if code != tt.wantCode {
				t.Errorf("expected exit %d, got %d", tt.wantCode, code)
			}
			if dl.calls != tt.wantCalls {
				t.Errorf("expected %d downloads, got %d", tt.wantCalls, dl.calls)
			}
			if !strings.Contains(out.String(), tt.wantText) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.wantText, out.String())
			}
		})
	}
}

func TestDownload_UsesGivenDirectory(t *testing.T) {
	dl := &countingDownloader{}
	r, out := newRunner(stubFetcher{meta: playlist(2)}, dl, "", false)

	if code := r.Download(context.Background(), "u", "/music", true, "en"); code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if len(dl.dirs) != 1 || dl.dirs[0] != "/music" {
		t.Errorf("expected download into /music, got %v", dl.dirs)
	}
	text := out.String()
	if strings.Count(text, "Fetching playlist details...") != 1 {
		t.Errorf("fetch status should be printed once, got:\n%s", text)
	}
	if !strings.Contains(text, "Downloading to: /music...") || !strings.Contains(text, "3 files, 9.0 MB") {
		t.Errorf("expected download status and summary, got:\n%s", text)
	}
}

func TestDownload_Failure(t *testing.T) {
	dl := &countingDownloader{err: &model.DownloadError{URL: "u", Err: errors.New("ffmpeg not found")}}
	r, out := newRunner(stubFetcher{meta: playlist(2)}, dl, "", false)

	if code := r.Download(context.Background(), "u", "/music", true, "en"); code != ExitFailure {
		t.Fatalf("expected exit %d, got %d", ExitFailure, code)
	}
	if strings.Count(out.String(), "! ") != 1 || !strings.Contains(out.String(), "Error downloading playlist: ffmpeg not found") {
		t.Errorf("expected one failure message, got:\n%s", out.String())
	}
}

func TestDownload_EmptyPlaylist(t *testing.T) {
	dl := &countingDownloader{}
	r, out := newRunner(stubFetcher{meta: playlist(0)}, dl, "y\n", true)

	if code := r.Download(context.Background(), "u", "/music", false, "en"); code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if dl.calls != 0 {
		t.Error("empty playlist must not be downloaded")
	}
	if !strings.Contains(out.String(), "no entries") {
		t.Errorf("expected empty playlist notice, got:\n%s", out.String())
	}
}

// countingExtractor returns a listing that grows by one entry per call
type countingExtractor struct{ calls int }

func (e *countingExtractor) ExtractFlat(_ context.Context, url string) (*model.PlaylistMetadata, error) {
	e.calls++
	meta := playlist(e.calls)
	meta.URL = url
	return meta, nil
}

func newCachedRunner(extractor *countingExtractor, dl *countingDownloader) (*Runner, *bytes.Buffer) {
	fetcher := metadata.NewFetcher(extractor, cache.NewMemory[*model.PlaylistMetadata]())
	f := flow.New(fetcher, dl, flow.WithDefaultDirectory(func() string { return "/work" }))
	out := &bytes.Buffer{}
	r := NewRunner(f, out, strings.NewReader(""))
	r.SetTerminalCheck(func() bool { return false })
	return r, out
}

func TestFetch_AlwaysExtractsAgain(t *testing.T) {
	extractor := &countingExtractor{}
	r, out := newCachedRunner(extractor, &countingDownloader{})

	r.Fetch(context.Background(), "https://example.com/list", "en")
	out.Reset()
	r.Fetch(context.Background(), "https://example.com/list", "en")

	if extractor.calls != 2 {
		t.Fatalf("expected every fetch to reach the engine, got %d calls", extractor.calls)
	}
	if !strings.Contains(out.String(), "2. Song 2") {
		t.Errorf("expected the current listing, got:\n%s", out.String())
	}
}

func TestDownload_ConfirmReusesDisplayedListing(t *testing.T) {
	extractor := &countingExtractor{}
	dl := &countingDownloader{}
	r, _ := newCachedRunner(extractor, dl)

	if code := r.Download(context.Background(), "https://example.com/list", "/music", true, "en"); code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if extractor.calls != 1 {
		t.Errorf("expected one extraction for preview and confirm, got %d", extractor.calls)
	}
	if dl.calls != 1 {
		t.Errorf("expected one download, got %d", dl.calls)
	}

	// A new command for the same URL extracts again
	r.Download(context.Background(), "https://example.com/list", "/music", true, "en")
	if extractor.calls != 2 {
		t.Errorf("expected a new preview to extract again, got %d calls", extractor.calls)
	}
}
