package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-playlist-mp3/internal/platform"
)

func newTestSettings(t *testing.T) *Settings {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	return NewSettings(a)
}

func TestSettings_Defaults(t *testing.T) {
	s := newTestSettings(t)

	if got := s.GetDownloadDirectory(); got != platform.WorkingDirectory() {
		t.Errorf("expected working directory fallback, got %s", got)
	}
	if s.app.Preferences().String(KeyDownloadDir) != "" {
		t.Error("fallback directory must not be persisted")
	}
	if s.GetLanguage() != DefaultLanguage {
		t.Errorf("expected %s, got %s", DefaultLanguage, s.GetLanguage())
	}
	if s.GetExtractor() != DefaultExtractor {
		t.Errorf("expected %s, got %s", DefaultExtractor, s.GetExtractor())
	}
	if s.GetAutoRevealOnComplete() {
		t.Error("auto reveal should be off by default")
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	s := newTestSettings(t)

	s.SetDownloadDirectory("/srv/music/mixes")
	s.SetLanguage("ru")
	s.SetAutoRevealOnComplete(true)

	if s.GetDownloadDirectory() != "/srv/music/mixes" {
		t.Errorf("directory not saved: %s", s.GetDownloadDirectory())
	}
	if s.GetLanguage() != "ru" {
		t.Errorf("language not saved: %s", s.GetLanguage())
	}
	if !s.GetAutoRevealOnComplete() {
		t.Error("auto reveal not saved")
	}
}

func TestSettings_Extractor(t *testing.T) {
	s := newTestSettings(t)

	for _, tt := range []struct {
		set, want string
	}{
		{ExtractorYouTube, ExtractorYouTube},
		{"soundcloud", DefaultExtractor},
		{ExtractorGeneric, ExtractorGeneric},
	} {
		t.Run(tt.set, func(t *testing.T) {
			s.SetExtractor(tt.set)
			if got := s.GetExtractor(); got != tt.want {
				t.Errorf("SetExtractor(%q): got %s, want %s", tt.set, got, tt.want)
			}
		})
	}
}

func TestSettings_LanguageOptions(t *testing.T) {
	options := newTestSettings(t).GetLanguageOptions()

	for _, code := range []string{"system", "en", "ru", "pt"} {
		if options[code] == "" {
			t.Errorf("missing language option %q", code)
		}
	}
	if len(options) != 4 {
		t.Errorf("expected 4 options, got %d", len(options))
	}
}
