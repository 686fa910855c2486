package flow

import (
	"github.com/ytget/yt-playlist-mp3/internal/model"
)

// DefaultPreviewLimit is how many entries the preview lists
const DefaultPreviewLimit = 20

// Input is the immutable per-render session state
type Input struct {
	URL       string
	Directory string
	Fetch     bool // re-fetch even when a cached listing exists
	Confirm   bool // the download button was pressed
	Lang      string
}

// MessageKind classifies the single message of a view
type MessageKind string

const (
	MessageInfo    MessageKind = "info"
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Message is shown once per view
type Message struct {
	Kind   MessageKind
	Text   string
	Detail string
}

// PreviewEntry is one numbered line of the preview
type PreviewEntry struct {
	Number int
	Title  string
}

// View is everything a front-end needs to draw one pass
type View struct {
	Stage model.Stage
	Lang  string
	URL   string

	Status []string

	Title      string
	Uploader   string
	Entries    []PreviewEntry
	More       bool
	EntryCount int

	Directory     string
	OfferDownload bool

	Message *Message
	Report  *model.DownloadReport
}

// HasMessage reports whether the view carries a message
func (v View) HasMessage() bool {
	return v.Message != nil
}

// Failed reports whether the view ends in an error message
func (v View) Failed() bool {
	return v.Message != nil && v.Message.Kind == MessageError
}
