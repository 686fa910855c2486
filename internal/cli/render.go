package cli

import (
	"fmt"
	"io"

	"github.com/ytget/yt-playlist-mp3/internal/flow"
	"github.com/ytget/yt-playlist-mp3/internal/locale"
)

// PrintView writes the whole view as plain text
func PrintView(w io.Writer, view flow.View) {
	l := locale.For(view.Lang)

	for _, line := range view.Status {
		fmt.Fprintln(w, line)
	}

	if view.Stage.ShowsMetadata() {
		fmt.Fprintf(w, "%s: %s\n", l.GetText(locale.KeyPlaylist), view.Title)
		fmt.Fprintf(w, "%s: %s\n", l.GetText(locale.KeyUploader), view.Uploader)
		if len(view.Entries) > 0 {
			fmt.Fprintln(w, l.GetText(locale.KeyVideosInPlaylist))
			for _, e := range view.Entries {
				fmt.Fprintf(w, "%d. %s\n", e.Number, e.Title)
			}
			if view.More {
				fmt.Fprintln(w, l.GetText(locale.KeyAndMore))
			}
		}
	}

	printMessage(w, view.Message)
}

// printOutcome writes status lines after the first skip ones and the message
func printOutcome(w io.Writer, view flow.View, skip int) {
	for i, line := range view.Status {
		if i >= skip {
			fmt.Fprintln(w, line)
		}
	}
	printMessage(w, view.Message)
}

func printMessage(w io.Writer, msg *flow.Message) {
	if msg == nil {
		return
	}
	prefix := ""
	if msg.Kind == flow.MessageError {
		prefix = "! "
	}
	fmt.Fprintf(w, "%s%s\n", prefix, msg.Text)
	if msg.Detail != "" {
		fmt.Fprintf(w, "%s%s\n", prefix, msg.Detail)
	}
}
