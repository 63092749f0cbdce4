package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"attnview/internal/logging"
	"attnview/internal/preflight"
	"attnview/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the review page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if b := strings.TrimSpace(bind); b != "" {
				cfg.Server.Bind = b
			}

			lock, err := server.AcquireLock(cfg.LockPath())
			if err != nil {
				return err
			}
			defer lock.Release() //nolint:errcheck

			opts := logging.OptionsFromConfig(cfg)
			opts.RunID = uuid.NewString()
			logger, err := logging.New(opts)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			for _, result := range preflight.Failed(preflight.RunAll(signalCtx, cfg, false)) {
				logging.WarnWithContext(logger, "preflight check failed", "preflight_failed",
					logging.String("check", result.Name),
					logging.String("detail", result.Detail),
					logging.String(logging.FieldErrorHint, "run `attnview check` for the full report"),
				)
			}

			srv, err := server.New(cfg, logger)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			if err := srv.Start(signalCtx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Serving http://%s/ (Ctrl+C to stop)\n", srv.Addr())

			<-signalCtx.Done()
			srv.Stop()
			logger.Info("review server shutting down")
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (overrides server.bind)")
	return cmd
}
