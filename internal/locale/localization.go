package locale

// Package locale holds user-facing text translations

import (
	"fmt"
	"strings"
)

// Supported language codes
const (
	LangEnglish    = "en"
	LangRussian    = "ru"
	LangPortuguese = "pt"
	LangSystem     = "system"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyEnterURL          = "enter_url"
	KeyFetch             = "fetch"
	KeyFetching          = "fetching"
	KeyPlaylist          = "playlist"
	KeyUploader          = "uploader"
	KeyVideosInPlaylist  = "videos_in_playlist"
	KeyAndMore           = "and_more"
	KeyDirectoryPrompt   = "directory_prompt"
	KeyDownload          = "download"
	KeyDownloadingTo     = "downloading_to"
	KeyDownloadCompleted = "download_completed"
	KeyDownloadSummary   = "download_summary"
	KeyErrorFetching     = "error_fetching"
	KeyFetchFailed       = "fetch_failed"
	KeyErrorDownloading  = "error_downloading"
	KeyInvalidDirectory  = "invalid_directory"
	KeyErrorDirectory    = "error_directory"
	KeyNoEntries         = "no_entries"
	KeyConfirmDownload   = "confirm_download"
	KeyConfirmRequired   = "confirm_required"
	KeyDownloadCancelled = "download_cancelled"
	KeyRateLimited       = "rate_limited"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyOpenFolder        = "open_folder"
	KeyErrorOpeningDir   = "error_opening_dir"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	return &Localization{currentLanguage: LangEnglish}
}

// For returns a localization set to lang
func For(lang string) *Localization {
	l := NewLocalization()
	l.SetLanguage(lang)
	return l
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	lang = Normalize(lang)
	if _, exists := texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if text, found := texts[l.currentLanguage][key]; found {
		return text
	}

	// Fallback to English
	if text, found := texts[LangEnglish][key]; found {
		return text
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with args applied
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangEnglish:    "English",
		LangRussian:    "Русский",
		LangPortuguese: "Português",
	}
}

// Normalize maps "system" and empty values to English and lowercases the rest
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || lang == LangSystem {
		// Use system locale - simplified to English for now
		return LangEnglish
	}
	return lang
}

// Match picks the first supported language of an Accept-Language header
func Match(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		base, _, _ := strings.Cut(strings.ToLower(tag), "-")
		if _, ok := texts[base]; ok {
			return base
		}
	}
	return LangEnglish
}
