package platform

import (
	"context"
	"fmt"
	"strings"

	ytget "github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-playlist-mp3/internal/model"
)

// URL parameters
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// YouTubeLister lists YouTube playlists natively without spawning yt-dlp.
// Title and uploader are not reported in this mode.
type YouTubeLister struct {
	limit int
}

// NewYouTubeLister creates a lister. A non-positive limit lists every item.
func NewYouTubeLister(limit int) *YouTubeLister {
	if limit < 0 {
		limit = 0
	}
	return &YouTubeLister{limit: limit}
}

// ExtractFlat lists the playlist named by the list= parameter of url
func (l *YouTubeLister) ExtractFlat(ctx context.Context, url string) (*model.PlaylistMetadata, error) {
	playlistID, err := ExtractPlaylistID(url)
	if err != nil {
		return nil, err
	}

	items, err := ytget.New().GetPlaylistItemsAll(ctx, playlistID, l.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	meta := &model.PlaylistMetadata{
		URL:          url,
		HasEntryList: true,
		Entries:      make([]model.EntryMetadata, 0, len(items)),
	}
	for i, it := range items {
		meta.Entries = append(meta.Entries, model.EntryMetadata{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
			Index: i + 1,
		})
	}
	return meta, nil
}

// ExtractPlaylistID returns the list= value of a YouTube URL.
// Supported shapes:
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&start_radio=1
func ExtractPlaylistID(url string) (string, error) {
	_, after, found := strings.Cut(url, PlaylistParam)
	if !found {
		return "", fmt.Errorf("URL does not contain playlist parameter")
	}

	playlistID, _, _ := strings.Cut(after, ParamSeparator)
	if playlistID == "" {
		return "", fmt.Errorf("empty playlist ID")
	}
	return playlistID, nil
}
