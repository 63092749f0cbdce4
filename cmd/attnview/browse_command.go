package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"attnview/internal/tui"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	var taskFlag string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Review responses in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			t, err := resolveTask(cfg, taskFlag)
			if err != nil {
				return err
			}
			// Console logging would corrupt the alternate screen.
			logger := ctx.reportLogger(cfg)
			state := cfg.InitialState()
			state.Task = t
			return tui.Run(newLibrary(cfg, logger), state, logger)
		},
	}

	cmd.Flags().StringVarP(&taskFlag, "task", "t", "", "Task to open first")
	return cmd
}
