package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"attnview/internal/assets"
	"attnview/internal/task"
	"attnview/internal/testsupport"
)

func TestFrameFilename(t *testing.T) {
	tests := map[string]string{
		"7":       "007.png",
		"001":     "001.png",
		"42":      "042.png",
		"1234":    "1234.png",
		"abc":     "abc.png",
		"x.png":   "x.png",
		"trial_a": "trial_a.png",
		"IMG.PNG": "IMG.PNG",
	}
	for id, want := range tests {
		if got := assets.FrameFilename(id); got != want {
			t.Fatalf("FrameFilename(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestResolveDescribeFindsOriginalAndAOI(t *testing.T) {
	root := testsupport.NewDataRoot(t)
	dir := testsupport.WriteTask(t, root, task.Describe, testsupport.TaskFixture{
		Originals: []string{"1"},
		AOIs:      []string{"001.png"},
	})

	paths := assets.Resolve(dir, task.Describe, "1")
	if !paths.Original.Found() {
		t.Fatalf("expected original found, got %+v", paths.Original)
	}
	if want := filepath.Join(dir, "Original_image", "001.png"); paths.Original.Path != want {
		t.Fatalf("unexpected original path %q want %q", paths.Original.Path, want)
	}
	if paths.AOIStatus != assets.StatusFound || len(paths.AOI) != 1 {
		t.Fatalf("unexpected AOI resolution %+v", paths.AOI)
	}
	if paths.HasVideo() {
		t.Fatalf("expected no video, got %+v", paths.Video)
	}
	if paths.Video.Status != assets.StatusAbsent {
		t.Fatalf("expected absent video status, got %q", paths.Video.Status)
	}
}

func TestResolveMissingFilesAreReportedNotFatal(t *testing.T) {
	root := testsupport.NewDataRoot(t)
	dir := testsupport.WriteTask(t, root, task.Compare, testsupport.TaskFixture{})

	paths := assets.Resolve(dir, task.Compare, "003")
	if paths.Original.Status != assets.StatusMissing {
		t.Fatalf("expected missing original, got %q", paths.Original.Status)
	}
	if paths.AOIStatus != assets.StatusMissing {
		t.Fatalf("expected missing AOI, got %q", paths.AOIStatus)
	}
	if want := filepath.Join(dir, "aois", "003.png"); paths.AOI[0].Path != want {
		t.Fatalf("missing slot should carry expected path, got %q", paths.AOI[0].Path)
	}
}

func TestResolveRecallOrder(t *testing.T) {
	tests := []struct {
		name      string
		files     []string
		wantFiles []string
		wantLabel []string
		wantState assets.Status
	}{
		{
			name:      "pair",
			files:     []string{"5_ref.png", "5_current.png", "005.png"},
			wantFiles: []string{"5_ref.png", "5_current.png"},
			wantLabel: []string{"Reference", "Current"},
			wantState: assets.StatusFound,
		},
		{
			name:      "current only",
			files:     []string{"5_current.png", "005.png"},
			wantFiles: []string{"5_current.png"},
			wantLabel: []string{""},
			wantState: assets.StatusFound,
		},
		{
			name:      "ref only",
			files:     []string{"5_ref.png"},
			wantFiles: []string{"5_ref.png"},
			wantLabel: []string{""},
			wantState: assets.StatusFound,
		},
		{
			name:      "generic",
			files:     []string{"005.png"},
			wantFiles: []string{"005.png"},
			wantLabel: []string{""},
			wantState: assets.StatusFound,
		},
		{
			name:      "missing",
			wantFiles: []string{"005.png"},
			wantLabel: []string{""},
			wantState: assets.StatusMissing,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := testsupport.NewDataRoot(t)
			dir := testsupport.WriteTask(t, root, task.Recall, testsupport.TaskFixture{AOIs: tc.files})

			paths := assets.Resolve(dir, task.Recall, "5")
			if paths.AOIStatus != tc.wantState {
				t.Fatalf("AOI status = %q, want %q", paths.AOIStatus, tc.wantState)
			}
			if len(paths.AOI) != len(tc.wantFiles) {
				t.Fatalf("got %d AOI slots, want %d: %+v", len(paths.AOI), len(tc.wantFiles), paths.AOI)
			}
			for i, slot := range paths.AOI {
				if want := filepath.Join(dir, "aois", tc.wantFiles[i]); slot.Path != want {
					t.Fatalf("slot %d path = %q, want %q", i, slot.Path, want)
				}
				if slot.Label != tc.wantLabel[i] {
					t.Fatalf("slot %d label = %q, want %q", i, slot.Label, tc.wantLabel[i])
				}
			}
		})
	}
}

func TestResolveNonRecallIgnoresPairFiles(t *testing.T) {
	root := testsupport.NewDataRoot(t)
	dir := testsupport.WriteTask(t, root, task.Describe, testsupport.TaskFixture{
		AOIs: []string{"5_ref.png", "5_current.png"},
	})
	paths := assets.Resolve(dir, task.Describe, "5")
	if paths.AOIStatus != assets.StatusMissing {
		t.Fatalf("describe task should only look for the padded AOI, got %+v", paths.AOI)
	}
}

func TestFindHeatmapVideoPrefersNamedFile(t *testing.T) {
	root := testsupport.NewDataRoot(t)
	dir := testsupport.WriteTask(t, root, task.Describe, testsupport.TaskFixture{
		Files: []string{"a.mp4", "heatmap.mp4"},
	})
	slot := assets.FindHeatmapVideo(dir)
	if want := filepath.Join(dir, "heatmap.mp4"); slot.Path != want || !slot.Found() {
		t.Fatalf("unexpected video slot %+v", slot)
	}
}

func TestFindHeatmapVideoFallsBackLexicographically(t *testing.T) {
	root := testsupport.NewDataRoot(t)
	dir := testsupport.WriteTask(t, root, task.Compare, testsupport.TaskFixture{
		Files: []string{"zeta.mp4", "Beta.MP4", "notes.txt"},
	})
	if err := os.MkdirAll(filepath.Join(dir, "Alpha.mp4"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	slot := assets.FindHeatmapVideo(dir)
	if want := filepath.Join(dir, "Beta.MP4"); slot.Path != want {
		t.Fatalf("expected %q, got %+v", want, slot)
	}
}

func TestFindHeatmapVideoAbsentDirectory(t *testing.T) {
	slot := assets.FindHeatmapVideo(filepath.Join(t.TempDir(), "nope"))
	if slot.Status != assets.StatusAbsent || slot.Path != "" {
		t.Fatalf("expected absent slot, got %+v", slot)
	}
}

func TestDirectoryNamedLikeImageIsMissing(t *testing.T) {
	root := testsupport.NewDataRoot(t)
	dir := testsupport.WriteTask(t, root, task.Describe, testsupport.TaskFixture{})
	if err := os.MkdirAll(filepath.Join(dir, "Original_image", "001.png"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if paths := assets.Resolve(dir, task.Describe, "001"); paths.Original.Found() {
		t.Fatal("directory must not count as an image")
	}
}
