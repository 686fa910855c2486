package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-playlist-mp3/internal/locale"
	"github.com/ytget/yt-playlist-mp3/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyLanguage           = "app_language"
	KeyExtractor          = "extractor"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultLanguage           = locale.LangSystem
	DefaultExtractor          = ExtractorGeneric
	DefaultAutoRevealComplete = false
)

// Settings manages desktop configuration. Playlist URLs are never stored.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory, falling
// back to the working directory without persisting it
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		return platform.WorkingDirectory()
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetExtractor returns the configured metadata extractor
func (s *Settings) GetExtractor() string {
	switch e := s.app.Preferences().String(KeyExtractor); e {
	case ExtractorGeneric, ExtractorYouTube:
		return e
	default:
		return DefaultExtractor
	}
}

// SetExtractor sets the metadata extractor. Unknown values reset to default.
func (s *Settings) SetExtractor(extractor string) {
	if extractor != ExtractorGeneric && extractor != ExtractorYouTube {
		extractor = DefaultExtractor
	}
	s.app.Preferences().SetString(KeyExtractor, extractor)
}

// GetAutoRevealOnComplete returns whether to open the folder after a download
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the folder after a download
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	options := map[string]string{locale.LangSystem: "System Default"}
	for code, name := range locale.GetAvailableLanguages() {
		options[code] = name
	}
	return options
}
