package download

// Package download implements the playlist download pipeline built on top of
// yt-dlp. It prepares the target directory, runs one sequential
// download+transcode pass and reports which audio files were written.
