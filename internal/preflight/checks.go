package preflight

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"attnview/internal/assets"
	"attnview/internal/responses"
	"attnview/internal/task"
)

// Access selects the permissions CheckDirectoryAccess requires.
type Access int

const (
	ReadOnly Access = iota
	ReadWrite
)

// CheckDirectoryAccess verifies that path is a directory with the requested access.
func CheckDirectoryAccess(name, path string, access Access) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}

	mode, label := uint32(unix.R_OK|unix.X_OK), "read ok"
	if access == ReadWrite {
		mode, label = unix.R_OK|unix.W_OK|unix.X_OK, "read/write ok"
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, label)}
}

// CheckTaskFolder inspects one task folder: its responses file, how many ids
// lack an original image or AOI overlay, and which heatmap video would play.
// Missing assets are reported but do not fail the check.
func CheckTaskFolder(root string, t task.Task, titles map[string]string) Result {
	name := task.TitleWith(t, titles) + " task"
	dir := t.Dir(root)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: task folder not found)", dir)}
	}

	var parts []string
	m, err := responses.LoadFile(filepath.Join(dir, responses.Filename))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		parts = append(parts, responses.Filename+" missing")
	case err != nil:
		parts = append(parts, responses.Filename+" unreadable")
	case len(m) == 0:
		parts = append(parts, responses.Filename+" empty")
	default:
		parts = append(parts, fmt.Sprintf("%d responses", len(m)))
	}

	for _, sub := range []string{assets.OriginalDir, assets.AOIDir} {
		if info, err := os.Stat(filepath.Join(dir, sub)); err != nil || !info.IsDir() {
			parts = append(parts, "no "+sub+"/ folder")
		}
	}

	missingOriginal, missingAOI := 0, 0
	var video assets.Slot
	for i, id := range responses.Order(m) {
		paths := assets.Resolve(dir, t, id)
		if !paths.Original.Found() {
			missingOriginal++
		}
		if paths.AOIStatus == assets.StatusMissing {
			missingAOI++
		}
		if i == 0 {
			video = paths.Video
		}
	}
	if missingOriginal > 0 {
		parts = append(parts, fmt.Sprintf("%d missing original", missingOriginal))
	}
	if missingAOI > 0 {
		parts = append(parts, fmt.Sprintf("%d missing AOI", missingAOI))
	}
	if video.Found() {
		parts = append(parts, "video "+filepath.Base(video.Path))
	} else {
		parts = append(parts, "no video")
	}
	return Result{Name: name, Passed: true, Detail: strings.Join(parts, ", ")}
}

// CheckBind verifies that addr can be listened on.
func CheckBind(ctx context.Context, addr string) Result {
	const name = "Listen address"
	if strings.TrimSpace(addr) == "" {
		return Result{Name: name, Detail: "missing bind address"}
	}
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", addr, err)}
	}
	_ = ln.Close()
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (available)", addr)}
}
