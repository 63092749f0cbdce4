package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"attnview/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var probeBind bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the data root and task folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			results := preflight.RunAll(cmd.Context(), cfg, probeBind)
			failed := preflight.Failed(results)

			if jsonOutput {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				printer := newStatusPrinter(out)
				printer.header("Preflight · " + cfg.Paths.DataRoot)
				for _, r := range results {
					kind := statusOK
					if !r.Passed {
						kind = statusError
					}
					printer.status(r.Name, kind, r.Detail)
				}
				printer.flush(out)
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d checks failed", len(failed), len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&probeBind, "bind", false, "Also verify the server listen address is free")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")
	return cmd
}
