package platform

import (
	"fmt"
	"os/exec"
)

// DefaultFFmpegBinary is looked up on PATH when no explicit path is set
const DefaultFFmpegBinary = "ffmpeg"

// FindFFmpeg resolves the transcoder binary yt-dlp uses for audio extraction
func FindFFmpeg(path string) (string, error) {
	if path == "" {
		path = DefaultFFmpegBinary
	}
	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", fmt.Errorf("ffmpeg not found (%s): %w", path, err)
	}
	return resolved, nil
}
