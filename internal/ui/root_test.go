package ui

import (
	"context"
	"fmt"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-playlist-mp3/internal/config"
	"github.com/ytget/yt-playlist-mp3/internal/flow"
	"github.com/ytget/yt-playlist-mp3/internal/model"
)

type staticRenderer struct {
	view flow.View
}

func (r staticRenderer) Render(context.Context, flow.Input) flow.View { return r.view }

func newTestUI(t *testing.T) (*RootUI, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	window := app.NewWindow("test")
	factories := 0
	ui := NewRootUI(window, settings, func(*config.Settings) Renderer {
		factories++
		return staticRenderer{}
	})
	if factories != 1 {
		t.Fatalf("expected renderer to be built once, got %d", factories)
	}
	return ui, settings
}

func previewView(n, shown int) flow.View {
	view := flow.View{
		Stage:         model.StageMetadataShown,
		Lang:          "en",
		URL:           "https://example.com/list",
		Status:        []string{"Fetching playlist details..."},
		Title:         "Road Trip",
		Uploader:      model.NotAvailable,
		EntryCount:    n,
		More:          n > shown,
		Directory:     "/home/me",
		OfferDownload: n > 0,
	}
	for i := 1; i <= shown; i++ {
		view.Entries = append(view.Entries, flow.PreviewEntry{Number: i, Title: fmt.Sprintf("Song %d", i)})
	}
	return view
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _ := newTestUI(t)

	if ui.previewBox.Visible() {
		t.Error("preview should be hidden before a fetch")
	}
	if !ui.downloadBtn.Disabled() {
		t.Error("download should be disabled before a fetch")
	}
	if ui.messageLabel.Visible() || ui.openBtn.Visible() {
		t.Error("no message or folder button expected initially")
	}
}

func TestRootUI_ApplyPreview(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.apply(previewView(25, 20))

	if !ui.previewBox.Visible() {
		t.Fatal("preview should be visible")
	}
	if ui.titleLabel.Text != "Playlist: Road Trip" {
		t.Errorf("unexpected title label: %q", ui.titleLabel.Text)
	}
	if ui.uploaderLabel.Text != "Uploader: N/A" {
		t.Errorf("unexpected uploader label: %q", ui.uploaderLabel.Text)
	}
	if len(ui.entries) != 20 {
		t.Errorf("expected 20 list items, got %d", len(ui.entries))
	}
	if !ui.moreLabel.Visible() {
		t.Error("expected and-more label for 25 entries")
	}
	if ui.dirEntry.Text != "/home/me" {
		t.Errorf("expected prefilled directory, got %q", ui.dirEntry.Text)
	}
	if ui.downloadBtn.Disabled() {
		t.Error("download should be enabled")
	}
}

func TestRootUI_ApplyShortPreview(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.apply(previewView(3, 3))

	if ui.moreLabel.Visible() {
		t.Error("and-more label must be hidden for 3 entries")
	}
}

func TestRootUI_ApplyFetchFailure(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.apply(previewView(5, 5))

	ui.apply(flow.View{
		Stage:   model.StageFetchFailed,
		Lang:    "en",
		Message: &flow.Message{Kind: flow.MessageError, Text: "Failed to retrieve playlist details.", Detail: "Error fetching playlist info: 404"},
	})

	if ui.previewBox.Visible() || len(ui.entries) != 0 {
		t.Error("fetch failure must clear the preview")
	}
	if !ui.downloadBtn.Disabled() || ui.dirBox.Visible() {
		t.Error("fetch failure must not offer a download")
	}
	if ui.messageLabel.Text != "Failed to retrieve playlist details." || !ui.detailLabel.Visible() {
		t.Errorf("unexpected message state: %q", ui.messageLabel.Text)
	}
}

func TestRootUI_ApplyCompleted(t *testing.T) {
	ui, _ := newTestUI(t)

	view := previewView(2, 2)
	view.Stage = model.StageDownloadCompleted
	view.OfferDownload = false
	view.Message = &flow.Message{Kind: flow.MessageSuccess, Text: "Download completed!", Detail: "2 files, 5.0 MB"}
	ui.apply(view)

	if ui.messageLabel.Text != "Download completed!" || ui.detailLabel.Text != "2 files, 5.0 MB" {
		t.Errorf("unexpected message: %q / %q", ui.messageLabel.Text, ui.detailLabel.Text)
	}
	if !ui.openBtn.Visible() {
		t.Error("open folder button should be visible after completion")
	}
	if !ui.downloadBtn.Disabled() {
		t.Error("download should be disabled in a terminal state")
	}
}

func TestRootUI_Input(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.urlEntry.SetText("  https://example.com/list\n")
	ui.dirEntry.SetText(" /music ")

	in := ui.input(false, true)
	if in.URL != "https://example.com/list" || in.Directory != "/music" || !in.Confirm || in.Fetch {
		t.Errorf("unexpected input: %+v", in)
	}
	if in.Lang != "en" {
		t.Errorf("expected lang en, got %s", in.Lang)
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, settings := newTestUI(t)
	ui.onLanguageChange("ru")

	if settings.GetLanguage() != "ru" {
		t.Errorf("expected language to be saved, got %s", settings.GetLanguage())
	}
	if ui.fetchBtn.Text != "Получить" {
		t.Errorf("expected russian fetch button, got %q", ui.fetchBtn.Text)
	}
}

func TestSettingsDialog_Save(t *testing.T) {
	ui, settings := newTestUI(t)

	saved := 0
	sd := NewSettingsDialog(settings, ui.localization, ui.window, func() { saved++ })
	sd.loadCurrentSettings()
	sd.downloadDirEntry.SetText("/music")
	sd.extractorSelect.SetSelected(config.ExtractorYouTube)
	sd.autoRevealCheck.SetChecked(true)
	sd.languageSelect.SetSelected("Português")
	sd.save()

	if settings.GetDownloadDirectory() != "/music" {
		t.Errorf("expected /music, got %s", settings.GetDownloadDirectory())
	}
	if settings.GetExtractor() != config.ExtractorYouTube {
		t.Errorf("expected youtube extractor, got %s", settings.GetExtractor())
	}
	if !settings.GetAutoRevealOnComplete() {
		t.Error("expected auto reveal to be saved")
	}
	if settings.GetLanguage() != "pt" {
		t.Errorf("expected pt, got %s", settings.GetLanguage())
	}
	if saved != 1 {
		t.Errorf("expected saved callback once, got %d", saved)
	}
}

func TestCleanURL(t *testing.T) {
	if got := cleanURL("\thttps://x/y?list=1\r\n"); got != "https://x/y?list=1" {
		t.Errorf("unexpected cleaned URL: %q", got)
	}
}
