package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"

	"github.com/ytget/yt-playlist-mp3/internal/app"
	"github.com/ytget/yt-playlist-mp3/internal/cli"
	"github.com/ytget/yt-playlist-mp3/internal/config"
	"github.com/ytget/yt-playlist-mp3/internal/web"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := config.LoadEnvFile(config.DefaultEnvFile); err != nil {
		log.Printf("failed to load %s: %v", config.DefaultEnvFile, err)
	}

	opts, parser, err := config.ParseArgs(os.Args[1:], version)
	switch {
	case parser == nil:
		log.Fatalf("invalid options definition: %v", err)
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelp(os.Stdout)
		return
	case errors.Is(err, arg.ErrVersion):
		fmt.Println(opts.Version())
		return
	case err != nil:
		parser.Fail(err.Error())
	case parser.Subcommand() == nil:
		parser.WriteHelp(os.Stderr)
		os.Exit(cli.ExitFailure)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services := app.New(ctx, app.FromOptions(opts))

	switch {
	case opts.Serve != nil:
		fmt.Printf("yt-playlist-mp3 %s listening on %s\n", version, opts.Serve.Listen)
		server, err := web.NewServer(services.Flow, web.Stats{
			Fetches:   services.Fetcher.Fetches,
			Completed: services.Downloader.Completed,
			Failed:    services.Downloader.Failed,
		}, web.Config{
			Language:    opts.Language,
			RateLimit:   opts.Serve.RateLimit,
			RateBurst:   opts.Serve.RateBurst,
			ReadTimeout: opts.Serve.ReadTimeout,
		})
		if err != nil {
			log.Fatalf("failed to create server: %v", err)
		}
		if err := server.ListenAndServe(ctx, opts.Serve.Listen); err != nil {
			log.Fatalf("server error: %v", err)
		}

	case opts.Fetch != nil:
		runner := cli.NewRunner(services.Flow, os.Stdout, os.Stdin)
		code := runner.Fetch(ctx, opts.Fetch.URL, opts.Language)
		stop()
		os.Exit(code)

	case opts.Download != nil:
		runner := cli.NewRunner(services.Flow, os.Stdout, os.Stdin)
		code := runner.Download(ctx, opts.Download.URL, opts.Download.Dir, opts.Download.Yes, opts.Language)
		stop()
		os.Exit(code)
	}
}
