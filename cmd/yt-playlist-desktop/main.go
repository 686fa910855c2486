package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/ytget/yt-playlist-mp3/internal/app"
	"github.com/ytget/yt-playlist-mp3/internal/config"
	"github.com/ytget/yt-playlist-mp3/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-playlist-mp3"
	AppName = "Playlist to MP3"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	if err := config.LoadEnvFile(config.DefaultEnvFile); err != nil {
		log.Printf("failed to load %s: %v", config.DefaultEnvFile, err)
	}

	myApp := fyneapp.NewWithID(AppID)
	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	// Environment still supplies engine paths and the cache; the extractor
	// and default directory follow the saved preferences.
	opts, _, err := config.ParseArgs(nil, version)
	if err != nil {
		log.Printf("ignoring invalid environment options: %v", err)
		opts = &config.Options{Extractor: config.ExtractorGeneric}
	}

	ui.NewRootUI(myWindow, settings, func(s *config.Settings) ui.Renderer {
		cfg := app.FromOptions(opts)
		cfg.Extractor = s.GetExtractor()
		cfg.DefaultDir = s.GetDownloadDirectory
		return app.New(context.Background(), cfg).Flow
	})

	myWindow.ShowAndRun()
}
