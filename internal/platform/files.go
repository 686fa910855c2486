package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/ytget/yt-playlist-mp3/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// File extensions left behind by an interrupted engine run
var (
	SkippedExtensions = []string{".part", ".ytdl", ".temp"}
)

// CreateDirectoryIfNotExists creates the directory and any missing parents.
// An existing non-directory path is an error.
func CreateDirectoryIfNotExists(dirPath string) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dirPath, model.ErrNotADirectory)
	}
	return nil
}

// WorkingDirectory returns the process working directory, or "." when it
// cannot be resolved
func WorkingDirectory() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

// FileState is the size and modification time of one file in a snapshot
type FileState struct {
	Size    int64
	ModTime time.Time
}

// SnapshotAudioFiles lists regular files in dir with the given extension.
// A missing directory yields an empty snapshot.
func SnapshotAudioFiles(dir, ext string) (map[string]FileState, error) {
	snapshot := make(map[string]FileState)

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return snapshot, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || isSkippedFile(entry.Name()) {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		snapshot[entry.Name()] = FileState{Size: info.Size(), ModTime: info.ModTime()}
	}

	return snapshot, nil
}

// DiffSnapshots returns the names present in after that are new or changed
// compared to before, sorted, and their combined size
func DiffSnapshots(before, after map[string]FileState) ([]string, int64) {
	var (
		names []string
		total int64
	)
	for name, state := range after {
		prev, existed := before[name]
		if existed && prev.Size == state.Size && prev.ModTime.Equal(state.ModTime) {
			continue
		}
		names = append(names, name)
		total += state.Size
	}
	sort.Strings(names)
	return names, total
}

// isSkippedFile reports whether the name belongs to a partial download
func isSkippedFile(name string) bool {
	for _, ext := range SkippedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// OpenDirectory shows the directory in the system file manager
func OpenDirectory(dir string) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		return fmt.Errorf("directory does not exist: %s", absPath)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openDirectoryLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openDirectoryLinux tries xdg-open first, then common file managers
func openDirectoryLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
