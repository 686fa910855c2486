package platform

import (
	"encoding/json"
	"fmt"

	"github.com/ytget/yt-playlist-mp3/internal/model"
)

// dumpDocument is the subset of yt-dlp's --dump-single-json output we read.
// Entries is a pointer so an absent list differs from an empty one.
type dumpDocument struct {
	Type     string       `json:"_type"`
	ID       string       `json:"id"`
	Title    *string      `json:"title"`
	Uploader *string      `json:"uploader"`
	Entries  *[]dumpEntry `json:"entries"`
}

type dumpEntry struct {
	ID       string  `json:"id"`
	Title    *string `json:"title"`
	URL      string  `json:"url"`
	Duration float64 `json:"duration"`
}

// ParseDumpJSON decodes a single-JSON engine document into PlaylistMetadata.
// Fields are taken as reported; entry order is kept.
func ParseDumpJSON(data []byte) (*model.PlaylistMetadata, error) {
	var doc dumpDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode yt-dlp output: %w", err)
	}

	meta := &model.PlaylistMetadata{
		Title:    doc.Title,
		Uploader: doc.Uploader,
	}
	if doc.Entries == nil {
		return meta, nil
	}

	meta.HasEntryList = true
	meta.Entries = make([]model.EntryMetadata, 0, len(*doc.Entries))
	for i, e := range *doc.Entries {
		entry := model.EntryMetadata{
			ID:       e.ID,
			URL:      e.URL,
			Duration: e.Duration,
			Index:    i + 1,
		}
		if e.Title != nil {
			entry.Title = *e.Title
		}
		meta.Entries = append(meta.Entries, entry)
	}

	return meta, nil
}
