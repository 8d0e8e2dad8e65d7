package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/ingest"
)

func runCmd() *cobra.Command {
	var manifest string
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Download, convert and catalog the bundles listed in a manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			if manifest == "" {
				return fmt.Errorf("manifest required (--manifest)")
			}

			manager, err := ingest.NewManager(cfg, logger)
			if err != nil {
				return fmt.Errorf("initializing ingest manager: %w", err)
			}
			defer manager.Shutdown()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if interval > 0 {
				return manager.RunPeriodically(ctx, manifest, interval)
			}

			stats, err := manager.Run(ctx, manifest)
			if err != nil {
				return err
			}

			fmt.Printf("Processed %d, skipped %d, failed %d\n", stats.Processed, stats.Skipped, stats.Failed)
			if stats.Failed > 0 {
				return fmt.Errorf("%d bundle(s) failed", stats.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&manifest, "manifest", "", "path to the bundle manifest JSON")
	cmd.Flags().DurationVar(&interval, "interval", 0, "re-run every interval (e.g. 6h); run once when unset")
	return cmd
}
