package review

import (
	"attnview/internal/assets"
	"attnview/internal/playback"
	"attnview/internal/task"
)

// EmptyResponsesNotice is shown when a task has no usable responses.
const EmptyResponsesNotice = "responses.json is empty or missing."

// NoVideoNotice is shown in place of the heatmap player.
const NoVideoNotice = "No heatmap video found in this task folder."

// TaskOption is one entry of the task switcher.
type TaskOption struct {
	Name   task.Task `json:"name"`
	Title  string    `json:"title"`
	Active bool      `json:"active"`
}

// Frame is everything a render surface needs for one cycle.
type Frame struct {
	Version     uint64        `json:"version"`
	Task        task.Task     `json:"task"`
	Title       string        `json:"title"`
	Tasks       []TaskOption  `json:"tasks"`
	Dir         string        `json:"dir"`
	IDs         []string      `json:"ids"`
	Index       int           `json:"index"`
	CurrentID   string        `json:"current_id"`
	Text        string        `json:"text"`
	DisplayText string        `json:"display_text"`
	Notice      string        `json:"notice,omitempty"`
	Blocked     bool          `json:"blocked"`
	Error       string        `json:"error,omitempty"`
	Assets      *assets.Paths `json:"assets,omitempty"`
	HasVideo    bool          `json:"has_video"`
	Playing     bool          `json:"playing"`
	Mode        playback.Mode `json:"mode"`
	Interval    float64       `json:"interval"`
}

// MissingWarnings lists advisory messages for every missing asset slot.
func (f Frame) MissingWarnings() []string {
	if f.Assets == nil {
		return nil
	}
	var out []string
	if f.Assets.Original.Status == assets.StatusMissing {
		out = append(out, "Missing: "+f.Assets.Original.Path)
	}
	if f.Assets.AOIStatus == assets.StatusMissing {
		out = append(out, f.AOIWarning())
	}
	return out
}

// AOIWarning returns the warning text for a missing AOI slot.
func (f Frame) AOIWarning() string {
	if f.Task == task.Recall {
		return "Missing AOI for ID: " + f.CurrentID
	}
	if f.Assets != nil && len(f.Assets.AOI) > 0 {
		return "Missing: " + f.Assets.AOI[0].Path
	}
	return "Missing AOI for ID: " + f.CurrentID
}
