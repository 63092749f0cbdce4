package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"attnview/internal/respid"
	"attnview/internal/task"
)

const (
	// OriginalDir holds the stimulus images, one per response id.
	OriginalDir = "Original_image"
	// AOIDir holds area-of-interest overlays.
	AOIDir = "aois"
	// HeatmapVideo is the preferred video filename inside a task directory.
	HeatmapVideo = "heatmap.mp4"

	imageExt = ".png"
	videoExt = ".mp4"
)

// Status describes whether a slot's file was found.
type Status string

const (
	StatusFound   Status = "found"
	StatusMissing Status = "missing"
	StatusAbsent  Status = "absent"
)

// Slot is one displayable file.
type Slot struct {
	Label  string `json:"label,omitempty"`
	Path   string `json:"path,omitempty"`
	Status Status `json:"status"`
}

// Found reports whether the slot points at an existing file.
func (s Slot) Found() bool {
	return s.Status == StatusFound
}

// Paths bundles every asset for one (task, id) pair.
type Paths struct {
	Original  Slot   `json:"original"`
	AOI       []Slot `json:"aoi"`
	AOIStatus Status `json:"aoi_status"`
	Video     Slot   `json:"video"`
}

// HasVideo reports whether a heatmap video was located.
func (p Paths) HasVideo() bool {
	return p.Video.Found()
}

// FrameFilename maps a response id to its image filename. Numeric ids are
// zero-padded to three digits; any other id is used as the stem.
func FrameFilename(id string) string {
	if padded, ok := respid.Pad(id); ok {
		return padded + imageExt
	}
	if strings.HasSuffix(strings.ToLower(id), imageExt) {
		return id
	}
	return id + imageExt
}

// ImagePath joins taskDir, subdir, and the frame filename for id.
func ImagePath(taskDir, subdir, id string) string {
	return filepath.Join(taskDir, subdir, FrameFilename(id))
}

// Resolve computes the asset slots for id within taskDir.
func Resolve(taskDir string, t task.Task, id string) Paths {
	paths := Paths{
		Original: fileSlot("", ImagePath(taskDir, OriginalDir, id)),
		Video:    FindHeatmapVideo(taskDir),
	}
	if t == task.Recall {
		paths.AOI = resolveRecallAOI(taskDir, id)
	} else {
		paths.AOI = []Slot{fileSlot("", ImagePath(taskDir, AOIDir, id))}
	}
	paths.AOIStatus = StatusFound
	for _, slot := range paths.AOI {
		if !slot.Found() {
			paths.AOIStatus = StatusMissing
		}
	}
	return paths
}

// Recall trials may carry a reference/current pair instead of one overlay.
func resolveRecallAOI(taskDir, id string) []Slot {
	ref := filepath.Join(taskDir, AOIDir, id+"_ref"+imageExt)
	cur := filepath.Join(taskDir, AOIDir, id+"_current"+imageExt)
	generic := ImagePath(taskDir, AOIDir, id)

	hasRef := isRegularFile(ref)
	hasCur := isRegularFile(cur)
	switch {
	case hasRef && hasCur:
		return []Slot{
			{Label: "Reference", Path: ref, Status: StatusFound},
			{Label: "Current", Path: cur, Status: StatusFound},
		}
	case hasCur:
		return []Slot{{Path: cur, Status: StatusFound}}
	case hasRef:
		return []Slot{{Path: ref, Status: StatusFound}}
	default:
		return []Slot{fileSlot("", generic)}
	}
}

// FindHeatmapVideo prefers heatmap.mp4 and otherwise falls back to the
// lexicographically first .mp4 file in taskDir.
func FindHeatmapVideo(taskDir string) Slot {
	preferred := filepath.Join(taskDir, HeatmapVideo)
	if isRegularFile(preferred) {
		return Slot{Path: preferred, Status: StatusFound}
	}
	entries, err := os.ReadDir(taskDir)
	if err != nil {
		return Slot{Status: StatusAbsent}
	}
	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), videoExt) {
			continue
		}
		full := filepath.Join(taskDir, entry.Name())
		if isRegularFile(full) {
			candidates = append(candidates, entry.Name())
		}
	}
	if len(candidates) == 0 {
		return Slot{Status: StatusAbsent}
	}
	sort.Strings(candidates)
	return Slot{Path: filepath.Join(taskDir, candidates[0]), Status: StatusFound}
}

func fileSlot(label, path string) Slot {
	status := StatusMissing
	if isRegularFile(path) {
		status = StatusFound
	}
	return Slot{Label: label, Path: path, Status: status}
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
