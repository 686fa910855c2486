package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseArgs_Defaults(t *testing.T) {
	opts, _, err := ParseArgs([]string{"fetch", "https://example.com/list"}, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.Fetch == nil || opts.Fetch.URL != "https://example.com/list" {
		t.Fatalf("expected fetch subcommand with URL, got %+v", opts.Fetch)
	}
	if opts.Extractor != ExtractorGeneric || !ForceGeneric(opts.Extractor) {
		t.Errorf("expected generic extractor by default, got %s", opts.Extractor)
	}
	if opts.PreviewLimit != 20 {
		t.Errorf("expected preview limit 20, got %d", opts.PreviewLimit)
	}
	if opts.FetchTimeout != 60*time.Second {
		t.Errorf("expected fetch timeout 60s, got %v", opts.FetchTimeout)
	}
	if opts.CacheTTL != 10*time.Minute {
		t.Errorf("expected cache ttl 10m, got %v", opts.CacheTTL)
	}
	if opts.Language != "en" {
		t.Errorf("expected language en, got %s", opts.Language)
	}
}

func TestParseArgs_Subcommands(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, o *Options)
	}{
		{
			name: "serve with listen address",
			args: []string{"serve", "--listen", "127.0.0.1:9000"},
			check: func(t *testing.T, o *Options) {
				if o.Serve == nil || o.Serve.Listen != "127.0.0.1:9000" {
					t.Errorf("unexpected serve options: %+v", o.Serve)
				}
				if o.Serve.RateLimit != 5 || o.Serve.RateBurst != 10 {
					t.Errorf("unexpected rate limit defaults: %+v", o.Serve)
				}
			},
		},
		{
			name: "download with dir and yes",
			args: []string{"--extractor", "youtube", "download", "https://example.com/list", "--dir", "/music", "-y"},
			check: func(t *testing.T, o *Options) {
				if o.Download == nil || o.Download.Dir != "/music" || !o.Download.Yes {
					t.Errorf("unexpected download options: %+v", o.Download)
				}
				if ForceGeneric(o.Extractor) {
					t.Error("youtube extractor must not force the generic extractor")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, _, err := ParseArgs(tt.args, "test")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, opts)
		})
	}
}

func TestParseArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown extractor", []string{"--extractor", "vimeo", "fetch", "u"}},
		{"zero preview limit", []string{"--preview-limit", "0", "fetch", "u"}},
		{"missing url", []string{"fetch"}},
		{"zero rate limit", []string{"serve", "--rate-limit", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseArgs(tt.args, "test"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseArgs_Environment(t *testing.T) {
	t.Setenv("YTPL_LANG", "ru")
	t.Setenv("YTPL_REDIS_ADDR", "localhost:6379")

	opts, _, err := ParseArgs([]string{"fetch", "u"}, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Language != "ru" || opts.RedisAddr != "localhost:6379" {
		t.Errorf("environment not applied: lang=%s redis=%s", opts.Language, opts.RedisAddr)
	}
}

func TestOptionsVersion(t *testing.T) {
	opts, _, err := ParseArgs([]string{"fetch", "u"}, "1.2.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Version() != "yt-playlist-mp3 1.2.3" {
		t.Errorf("unexpected version: %s", opts.Version())
	}
}

func TestLoadEnvFile(t *testing.T) {
	const key = "YTPL_TEST_FROM_DOTENV"
	os.Unsetenv(key)
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=loaded\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if os.Getenv(key) != "loaded" {
		t.Errorf("expected %s to be loaded, got %q", key, os.Getenv(key))
	}

	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}
