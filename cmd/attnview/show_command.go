package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"attnview/internal/assets"
	"attnview/internal/review"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var taskFlag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one response with its asset paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			t, err := resolveTask(cfg, taskFlag)
			if err != nil {
				return err
			}
			ctrl := openController(cfg, ctx.reportLogger(cfg), t)
			if ctrl.Blocked() {
				return errors.New(ctrl.Frame().Error)
			}
			if err := selectID(ctrl, args[0]); err != nil {
				return err
			}
			frame := ctrl.Frame()
			if jsonOutput {
				return writeJSON(cmd, frame)
			}
			out := cmd.OutOrStdout()
			printer := newStatusPrinter(out)
			printShow(printer, frame)
			printer.flush(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&taskFlag, "task", "t", "", "Task the id belongs to (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the frame as JSON")
	return cmd
}

func printShow(p *statusPrinter, frame review.Frame) {
	p.header(fmt.Sprintf("%s · ID %s", frame.Title, frame.CurrentID))
	p.status("Response", statusInfo, frame.DisplayText)
	if frame.Notice != "" {
		p.status("Responses", statusWarn, frame.Notice)
	}
	if frame.Assets == nil {
		return
	}
	p.slot("Original", frame.Assets.Original)
	for _, slot := range frame.Assets.AOI {
		label := "AOI"
		if slot.Label != "" {
			label = "AOI " + slot.Label
		}
		if slot.Status == assets.StatusMissing {
			p.status(label, statusWarn, frame.AOIWarning())
			continue
		}
		p.slot(label, slot)
	}
	if frame.HasVideo {
		p.status("Heatmap video", statusOK, filepath.Base(frame.Assets.Video.Path))
	} else {
		p.status("Heatmap video", statusWarn, review.NoVideoNotice)
	}
}
