package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"attnview/internal/assets"
	"attnview/internal/config"
	"attnview/internal/responses"
	"attnview/internal/review"
	"attnview/internal/task"
)

const previewWidth = 48

type listEntry struct {
	ID       string        `json:"id"`
	Text     string        `json:"text"`
	Original assets.Status `json:"original"`
	AOI      assets.Status `json:"aoi"`
}

type listOutput struct {
	Task    string      `json:"task"`
	Title   string      `json:"title"`
	Dir     string      `json:"dir"`
	Video   string      `json:"video,omitempty"`
	Notice  string      `json:"notice,omitempty"`
	Entries []listEntry `json:"entries"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var taskFlag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the responses of a task with asset availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			t, err := resolveTask(cfg, taskFlag)
			if err != nil {
				return err
			}
			out, err := buildListOutput(cfg, ctx.reportLogger(cfg), t)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderList(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&taskFlag, "task", "t", "", "Task to list (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func buildListOutput(cfg *config.Config, logger *slog.Logger, t task.Task) (listOutput, error) {
	ctrl := openController(cfg, logger, t)
	frame := ctrl.Frame()
	if frame.Blocked {
		return listOutput{}, errors.New(frame.Error)
	}
	catalog := ctrl.Catalog()
	out := listOutput{
		Task:    t.String(),
		Title:   frame.Title,
		Dir:     frame.Dir,
		Notice:  frame.Notice,
		Entries: make([]listEntry, 0, len(catalog.IDs)),
	}
	if video := assets.FindHeatmapVideo(catalog.Dir); video.Found() {
		out.Video = video.Path
	}
	for _, id := range catalog.IDs {
		paths := assets.Resolve(catalog.Dir, t, id)
		out.Entries = append(out.Entries, listEntry{
			ID:       id,
			Text:     catalog.Responses.Text(id),
			Original: paths.Original.Status,
			AOI:      paths.AOIStatus,
		})
	}
	return out, nil
}

func renderList(out listOutput) string {
	rows := make([][]string, 0, len(out.Entries))
	for _, e := range out.Entries {
		rows = append(rows, []string{e.ID, preview(responses.DisplayText(e.Text)), string(e.Original), string(e.AOI)})
	}
	video := review.NoVideoNotice
	if out.Video != "" {
		video = "Heatmap video: " + filepath.Base(out.Video)
	}
	caption := fmt.Sprintf("%s (%s) · %s", out.Title, out.Dir, video)
	if out.Notice != "" {
		caption += "\n" + out.Notice
	}
	return renderTable(
		[]string{"ID", "Response", "Original", "AOI"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
		caption,
	)
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewWidth {
		return s
	}
	runes := []rune(s)
	return string(runes[:previewWidth-1]) + "…"
}
