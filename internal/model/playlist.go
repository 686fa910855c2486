package model

// NotAvailable is shown in place of playlist fields the engine did not report.
const NotAvailable = "N/A"

// EntryMetadata is a single shallow entry of a flat playlist listing.
// Only Title drives behaviour; the other fields are kept as reported.
type EntryMetadata struct {
	ID       string  `json:"id,omitempty"`
	Title    string  `json:"title"`
	URL      string  `json:"url,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Index    int     `json:"index"` // 1-based position in the listing
}

// PlaylistMetadata is what the extraction engine reported for a URL.
// Values are produced fresh per fetch and never mutated afterwards.
type PlaylistMetadata struct {
	URL      string          `json:"url"`
	Title    *string         `json:"title,omitempty"`
	Uploader *string         `json:"uploader,omitempty"`
	Entries  []EntryMetadata `json:"entries"`

	// HasEntryList is false when the engine returned a single item instead of
	// a listing. An empty listing sets it to true with no Entries.
	HasEntryList bool `json:"has_entry_list"`
}

// DisplayTitle returns the playlist title or NotAvailable
func (p *PlaylistMetadata) DisplayTitle() string {
	if p.Title == nil {
		return NotAvailable
	}
	return *p.Title
}

// DisplayUploader returns the uploader or NotAvailable
func (p *PlaylistMetadata) DisplayUploader() string {
	if p.Uploader == nil {
		return NotAvailable
	}
	return *p.Uploader
}

// Preview returns at most limit leading entries and whether more exist.
// A non-positive limit returns every entry.
func (p *PlaylistMetadata) Preview(limit int) ([]EntryMetadata, bool) {
	if limit <= 0 || len(p.Entries) <= limit {
		return p.Entries, false
	}
	return p.Entries[:limit], true
}

// EntryTitles returns entry titles in listing order
func (p *PlaylistMetadata) EntryTitles() []string {
	titles := make([]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		titles = append(titles, e.Title)
	}
	return titles
}

// IsDownloadable reports whether the listing has at least one entry.
func (p *PlaylistMetadata) IsDownloadable() bool {
	return p.HasEntryList && len(p.Entries) > 0
}
