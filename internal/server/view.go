package server

import (
	"net/url"
	"path/filepath"
	"strings"

	"attnview/internal/assets"
	"attnview/internal/review"
)

// slotView is an asset slot with the URL the page loads it from.
type slotView struct {
	Label  string        `json:"label,omitempty"`
	Path   string        `json:"path"`
	Status assets.Status `json:"status"`
	URL    string        `json:"url,omitempty"`
}

// frameView is the JSON shape served to the page.
type frameView struct {
	review.Frame
	// Session identifies the session the version counter belongs to.
	Session  string     `json:"session"`
	Warnings []string   `json:"warnings,omitempty"`
	Original *slotView  `json:"original,omitempty"`
	AOI      []slotView `json:"aoi,omitempty"`
	Video    *slotView  `json:"video,omitempty"`
	// VideoNotice replaces the player when no video was found.
	VideoNotice string `json:"video_notice,omitempty"`
}

func newFrameView(sessionID string, frame review.Frame, root string) frameView {
	view := frameView{Frame: frame, Session: sessionID, Warnings: frame.MissingWarnings()}
	if frame.Assets == nil {
		return view
	}
	original := newSlotView(frame.Assets.Original, root)
	view.Original = &original
	for _, slot := range frame.Assets.AOI {
		view.AOI = append(view.AOI, newSlotView(slot, root))
	}
	if frame.HasVideo {
		video := newSlotView(frame.Assets.Video, root)
		view.Video = &video
	} else {
		view.VideoNotice = review.NoVideoNotice
	}
	return view
}

func newSlotView(slot assets.Slot, root string) slotView {
	view := slotView{Label: slot.Label, Path: slot.Path, Status: slot.Status}
	if slot.Found() {
		view.URL = mediaURL(root, slot.Path)
	}
	return view
}

// mediaURL maps a file under root to its /media/ URL, or "" when path lies
// outside root.
func mediaURL(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return mediaPrefix + (&url.URL{Path: filepath.ToSlash(rel)}).EscapedPath()
}
