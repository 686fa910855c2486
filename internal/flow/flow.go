package flow

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ytget/yt-playlist-mp3/internal/locale"
	"github.com/ytget/yt-playlist-mp3/internal/model"
)

// Fetcher returns playlist metadata, optionally bypassing its cache
type Fetcher interface {
	Fetch(ctx context.Context, url string, refresh bool) (*model.PlaylistMetadata, error)
}

// Downloader runs one confirmed download
type Downloader interface {
	Download(ctx context.Context, req model.DownloadRequest) (*model.DownloadReport, error)
}

// Flow maps an Input to a View
type Flow struct {
	fetcher      Fetcher
	downloader   Downloader
	defaultDir   func() string
	previewLimit int
}

// Option configures a Flow
type Option func(*Flow)

// WithDefaultDirectory sets the directory pre-filled in the preview
func WithDefaultDirectory(dir func() string) Option {
	return func(f *Flow) { f.defaultDir = dir }
}

// WithPreviewLimit sets how many entries the preview lists
func WithPreviewLimit(limit int) Option {
	return func(f *Flow) {
		if limit > 0 {
			f.previewLimit = limit
		}
	}
}

// New creates a flow
func New(fetcher Fetcher, downloader Downloader, opts ...Option) *Flow {
	f := &Flow{
		fetcher:      fetcher,
		downloader:   downloader,
		defaultDir:   func() string { return "." },
		previewLimit: DefaultPreviewLimit,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Render runs one synchronous pass. A confirmed download blocks until the
// downloader returns.
func (f *Flow) Render(ctx context.Context, in Input) View {
	l := locale.For(in.Lang)
	url := strings.TrimSpace(in.URL)
	view := View{
		Stage: model.StageIdle,
		Lang:  l.GetCurrentLanguage(),
		URL:   url,
	}
	if url == "" {
		return view
	}

	view.Status = append(view.Status, l.GetText(locale.KeyFetching))
	meta, err := f.fetcher.Fetch(ctx, url, in.Fetch)
	if err != nil {
		view.Stage = model.StageFetchFailed
		view.Message = &Message{
			Kind:   MessageError,
			Text:   l.GetText(locale.KeyFetchFailed),
			Detail: l.Format(locale.KeyErrorFetching, model.Cause(err)),
		}
		return view
	}
	if !meta.HasEntryList {
		view.Stage = model.StageFetchFailed
		view.Message = &Message{Kind: MessageError, Text: l.GetText(locale.KeyFetchFailed)}
		return view
	}

	f.showMetadata(&view, meta)
	view.Directory = in.Directory
	if !in.Confirm && strings.TrimSpace(view.Directory) == "" {
		view.Directory = f.defaultDir()
	}

	if !meta.IsDownloadable() {
		view.Message = &Message{Kind: MessageInfo, Text: l.GetText(locale.KeyNoEntries)}
		return view
	}
	view.OfferDownload = true

	if !in.Confirm {
		return view
	}
	if strings.TrimSpace(view.Directory) == "" {
		view.Message = &Message{Kind: MessageError, Text: l.GetText(locale.KeyInvalidDirectory)}
		return view
	}

	return f.download(ctx, view, l)
}

// showMetadata fills the preview portion of the view
func (f *Flow) showMetadata(view *View, meta *model.PlaylistMetadata) {
	view.Stage = model.StageMetadataShown
	view.Title = meta.DisplayTitle()
	view.Uploader = meta.DisplayUploader()
	view.EntryCount = len(meta.Entries)

	shown, more := meta.Preview(f.previewLimit)
	view.More = more
	view.Entries = make([]PreviewEntry, 0, len(shown))
	for i, e := range shown {
		view.Entries = append(view.Entries, PreviewEntry{Number: i + 1, Title: e.Title})
	}
}

// download runs the confirmed request and sets the terminal message
func (f *Flow) download(ctx context.Context, view View, l *locale.Localization) View {
	req := model.NewDownloadRequest(view.URL, view.Directory)
	view.Stage = model.StageDownloadRequested
	view.Status = append(view.Status, l.Format(locale.KeyDownloadingTo, view.Directory))
	view.OfferDownload = false
	log.Printf("Download %s requested: %s -> %s", req.ID, req.PlaylistURL, req.TargetDirectory)

	report, err := f.downloader.Download(ctx, req)
	if err != nil {
		view.Stage = model.StageDownloadFailed
		key := locale.KeyErrorDownloading
		var dirErr *model.DirectoryError
		if errors.As(err, &dirErr) {
			key = locale.KeyErrorDirectory
			if errors.Is(err, model.ErrEmptyDirectory) {
				view.Message = &Message{Kind: MessageError, Text: l.GetText(locale.KeyInvalidDirectory)}
				return view
			}
		}
		view.Message = &Message{Kind: MessageError, Text: l.Format(key, model.Cause(err))}
		return view
	}

	if report == nil {
		report = &model.DownloadReport{RequestID: req.ID, Directory: view.Directory}
	}
	view.Stage = model.StageDownloadCompleted
	view.Report = report
	view.Message = &Message{
		Kind:   MessageSuccess,
		Text:   l.GetText(locale.KeyDownloadCompleted),
		Detail: l.Format(locale.KeyDownloadSummary, len(report.Files), humanize.Bytes(uint64(report.Bytes))),
	}
	return view
}
