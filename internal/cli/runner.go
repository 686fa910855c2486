package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ytget/yt-playlist-mp3/internal/flow"
	"github.com/ytget/yt-playlist-mp3/internal/locale"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Renderer runs one flow pass
type Renderer interface {
	Render(ctx context.Context, in flow.Input) flow.View
}

// Runner executes fetch and download commands
type Runner struct {
	renderer Renderer
	out      io.Writer
	in       io.Reader
	isTTY    func() bool
}

// NewRunner creates a runner writing to out and reading answers from in
func NewRunner(renderer Renderer, out io.Writer, in io.Reader) *Runner {
	return &Runner{
		renderer: renderer,
		out:      out,
		in:       in,
		isTTY:    StdinIsTerminal,
	}
}

// SetTerminalCheck overrides how the runner detects an interactive stdin
func (r *Runner) SetTerminalCheck(isTTY func() bool) {
	r.isTTY = isTTY
}

// StdinIsTerminal reports whether os.Stdin is a terminal
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Fetch prints a freshly extracted playlist preview for url
func (r *Runner) Fetch(ctx context.Context, url string, lang string) int {
	view := r.renderer.Render(ctx, flow.Input{URL: url, Fetch: true, Lang: lang})
	PrintView(r.out, view)
	return exitCode(view)
}

// Download previews url, asks for confirmation unless yes is set, then
// downloads into dir. An empty dir uses the flow's default directory.
func (r *Runner) Download(ctx context.Context, url, dir string, yes bool, lang string) int {
	l := locale.For(lang)

	preview := r.renderer.Render(ctx, flow.Input{URL: url, Directory: dir, Fetch: true, Lang: lang})
	PrintView(r.out, preview)
	if !preview.OfferDownload {
		return exitCode(preview)
	}

	if !yes {
		if !r.isTTY() {
			fmt.Fprintln(r.out, l.GetText(locale.KeyConfirmRequired))
			return ExitFailure
		}
		if !r.confirm(l.Format(locale.KeyConfirmDownload, preview.EntryCount, preview.Directory)) {
			fmt.Fprintln(r.out, l.GetText(locale.KeyDownloadCancelled))
			return ExitOK
		}
	}

	result := r.renderer.Render(ctx, flow.Input{
		URL:       url,
		Directory: preview.Directory,
		Confirm:   true,
		Lang:      lang,
	})
	printOutcome(r.out, result, len(preview.Status))
	return exitCode(result)
}

// confirm prints prompt and reads a y/yes answer
func (r *Runner) confirm(prompt string) bool {
	fmt.Fprint(r.out, prompt)
	answer, err := bufio.NewReader(r.in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func exitCode(view flow.View) int {
	if view.Failed() {
		return ExitFailure
	}
	return ExitOK
}
