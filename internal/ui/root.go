package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-playlist-mp3/internal/config"
	"github.com/ytget/yt-playlist-mp3/internal/flow"
	"github.com/ytget/yt-playlist-mp3/internal/locale"
	"github.com/ytget/yt-playlist-mp3/internal/model"
	"github.com/ytget/yt-playlist-mp3/internal/platform"
)

// Renderer runs one flow pass
type Renderer interface {
	Render(ctx context.Context, in flow.Input) flow.View
}

// RendererFactory builds a renderer from the current settings
type RendererFactory func(settings *config.Settings) Renderer

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *locale.Localization
	newRenderer  RendererFactory
	renderer     Renderer

	urlEntry      *widget.Entry
	fetchBtn      *widget.Button
	dirEntry      *widget.Entry
	browseBtn     *widget.Button
	downloadBtn   *widget.Button
	openBtn       *widget.Button
	statusLabel   *widget.Label
	titleLabel    *widget.Label
	uploaderLabel *widget.Label
	entriesLabel  *widget.Label
	entryList     *widget.List
	moreLabel     *widget.Label
	messageLabel  *widget.Label
	detailLabel   *widget.Label
	spinner       *widget.ProgressBarInfinite
	previewBox    *fyne.Container
	dirBox        *fyne.Container

	view    flow.View
	entries []flow.PreviewEntry

	// one render at a time
	busyMutex sync.Mutex
	busy      bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, newRenderer RendererFactory) *RootUI {
	localization := locale.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		newRenderer:  newRenderer,
		renderer:     newRenderer(settings),
	}

	window.SetTitle(localization.GetText(locale.KeyAppTitle))
	ui.setupUI()
	ui.apply(flow.View{Stage: model.StageIdle})
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(locale.KeyEnterURL))
	// Fetch when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) { ui.onFetchClick() }
	ui.fetchBtn = widget.NewButton(ui.localization.GetText(locale.KeyFetch), ui.onFetchClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.fetchBtn, ui.urlEntry)

	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	ui.titleLabel = widget.NewLabel("")
	ui.uploaderLabel = widget.NewLabel("")
	ui.entriesLabel = widget.NewLabel(ui.localization.GetText(locale.KeyVideosInPlaylist))
	ui.moreLabel = widget.NewLabel(ui.localization.GetText(locale.KeyAndMore))
	ui.entryList = widget.NewList(
		func() int { return len(ui.entries) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(ui.entries) {
				return
			}
			e := ui.entries[id]
			item.(*widget.Label).SetText(fmt.Sprintf(EntryLineFormat, e.Number, e.Title))
		},
	)
	listHolder := container.NewGridWrap(EntryListMinSize, ui.entryList)
	ui.previewBox = container.NewVBox(ui.titleLabel, ui.uploaderLabel, ui.entriesLabel, listHolder, ui.moreLabel)

	ui.dirEntry = widget.NewEntry()
	ui.browseBtn = widget.NewButton(ui.localization.GetText(locale.KeyBrowse), ui.onBrowseDirectory)
	ui.downloadBtn = widget.NewButton(ui.localization.GetText(locale.KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	dirRow := container.NewBorder(nil, nil, nil, ui.browseBtn, ui.dirEntry)
	ui.dirBox = container.NewVBox(widget.NewLabel(ui.localization.GetText(locale.KeyDirectoryPrompt)), dirRow, ui.downloadBtn)

	ui.messageLabel = widget.NewLabel("")
	ui.messageLabel.Wrapping = fyne.TextWrapWord
	ui.detailLabel = widget.NewLabel("")
	ui.detailLabel.Wrapping = fyne.TextWrapWord
	ui.openBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(locale.KeyOpenFolder), ui.onOpenFolder)

	content := container.NewVBox(
		topPanel,
		ui.spinner,
		ui.statusLabel,
		ui.previewBox,
		ui.dirBox,
		ui.messageLabel,
		ui.detailLabel,
		ui.openBtn,
	)
	ui.window.SetContent(container.NewVScroll(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(locale.KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(locale.KeyLanguage))
	for code, name := range locale.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		// Mark current language
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(IconMusic, settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates static texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(locale.KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(l.GetText(locale.KeyEnterURL))
	ui.fetchBtn.SetText(l.GetText(locale.KeyFetch))
	ui.browseBtn.SetText(l.GetText(locale.KeyBrowse))
	ui.downloadBtn.SetText(l.GetText(locale.KeyDownload))
	ui.openBtn.SetText(IconFolder + " " + l.GetText(locale.KeyOpenFolder))
	ui.entriesLabel.SetText(l.GetText(locale.KeyVideosInPlaylist))
	ui.moreLabel.SetText(l.GetText(locale.KeyAndMore))
}

// onFetchClick fetches the URL, bypassing cached metadata
func (ui *RootUI) onFetchClick() {
	ui.run(ui.input(true, false))
}

// onDownloadClick confirms the download of the displayed playlist
func (ui *RootUI) onDownloadClick() {
	ui.run(ui.input(false, true))
}

// input snapshots the widgets into a flow input
func (ui *RootUI) input(fetch, confirm bool) flow.Input {
	return flow.Input{
		URL:       cleanURL(ui.urlEntry.Text),
		Directory: strings.TrimSpace(ui.dirEntry.Text),
		Fetch:     fetch,
		Confirm:   confirm,
		Lang:      ui.localization.GetCurrentLanguage(),
	}
}

// run renders in the background and applies the view on the UI thread
func (ui *RootUI) run(in flow.Input) {
	ui.busyMutex.Lock()
	if ui.busy {
		ui.busyMutex.Unlock()
		return
	}
	ui.busy = true
	ui.busyMutex.Unlock()

	log.Printf("Processing URL: %s (fetch=%v confirm=%v)", in.URL, in.Fetch, in.Confirm)
	ui.setBusy(in)

	renderer := ui.renderer
	go func() {
		view := renderer.Render(context.Background(), in)
		fyne.Do(func() {
			ui.apply(view)
			ui.busyMutex.Lock()
			ui.busy = false
			ui.busyMutex.Unlock()
		})
		if view.Stage == model.StageDownloadCompleted && ui.settings.GetAutoRevealOnComplete() {
			ui.reveal(view.Directory)
		}
	}()
}

// setBusy shows progress while a render is running
func (ui *RootUI) setBusy(in flow.Input) {
	l := ui.localization
	status := l.GetText(locale.KeyFetching)
	if in.Confirm && in.Directory != "" {
		status = l.Format(locale.KeyDownloadingTo, in.Directory)
	}
	ui.statusLabel.SetText(status)
	ui.spinner.Show()
	ui.fetchBtn.Disable()
	ui.downloadBtn.Disable()
}

// apply draws a view. Must run on the UI thread.
func (ui *RootUI) apply(view flow.View) {
	ui.view = view
	ui.spinner.Hide()
	ui.fetchBtn.Enable()

	ui.statusLabel.SetText(strings.Join(view.Status, "\n"))

	if view.Stage.ShowsMetadata() {
		l := locale.For(view.Lang)
		ui.titleLabel.SetText(fmt.Sprintf(FieldFormat, l.GetText(locale.KeyPlaylist), view.Title))
		ui.uploaderLabel.SetText(fmt.Sprintf(FieldFormat, l.GetText(locale.KeyUploader), view.Uploader))
		ui.entries = view.Entries
		ui.entryList.Refresh()
		showIf(ui.entriesLabel, len(view.Entries) > 0)
		showIf(ui.moreLabel, view.More)
		ui.previewBox.Show()
		if view.Directory != "" || ui.dirEntry.Text == "" {
			ui.dirEntry.SetText(view.Directory)
		}
	} else {
		ui.entries = nil
		ui.entryList.Refresh()
		ui.previewBox.Hide()
	}

	showIf(ui.dirBox, view.Stage.ShowsMetadata() && (view.OfferDownload || view.Stage.IsTerminal()))
	if view.OfferDownload {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}

	ui.messageLabel.Importance = widget.MediumImportance
	ui.messageLabel.SetText("")
	ui.detailLabel.SetText("")
	if msg := view.Message; msg != nil {
		switch msg.Kind {
		case flow.MessageError:
			ui.messageLabel.Importance = widget.DangerImportance
		case flow.MessageSuccess:
			ui.messageLabel.Importance = widget.SuccessImportance
		}
		ui.messageLabel.SetText(msg.Text)
		ui.detailLabel.SetText(msg.Detail)
	}
	ui.messageLabel.Refresh()
	showIf(ui.messageLabel, view.Message != nil)
	showIf(ui.detailLabel, view.Message != nil && view.Message.Detail != "")
	showIf(ui.openBtn, view.Stage == model.StageDownloadCompleted)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved rebuilds the renderer and reapplies language
func (ui *RootUI) onSettingsSaved() {
	ui.renderer = ui.newRenderer(ui.settings)
	ui.onLanguageChange(ui.settings.GetLanguage())
	if strings.TrimSpace(ui.dirEntry.Text) == "" {
		ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
	}
}

// onBrowseDirectory handles directory browsing
func (ui *RootUI) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.dirEntry.SetText(uri.Path())
	}, ui.window)
}

// onOpenFolder opens the last download directory
func (ui *RootUI) onOpenFolder() {
	go ui.reveal(ui.view.Directory)
}

func (ui *RootUI) reveal(dir string) {
	if err := platform.OpenDirectory(dir); err != nil {
		log.Printf("Failed to open folder %s: %v", dir, err)
		fyne.Do(func() {
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(locale.KeyErrorOpeningDir), err), ui.window)
		})
	}
}

// cleanURL strips characters pasted along with a URL
func cleanURL(raw string) string {
	cleaned := strings.ReplaceAll(raw, "\n", "")
	cleaned = strings.ReplaceAll(cleaned, "\r", "")
	cleaned = strings.ReplaceAll(cleaned, "\t", " ")
	return strings.TrimSpace(cleaned)
}

func showIf(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}
