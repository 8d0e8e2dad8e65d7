package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/ingest"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Rewrite the Parquet catalog indexes from the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := ingest.NewManager(cfg, logger)
			if err != nil {
				return fmt.Errorf("initializing ingest manager: %w", err)
			}
			defer manager.Shutdown()

			if err := manager.Export(context.Background()); err != nil {
				return err
			}

			fmt.Printf("Wrote %s and %s\n", cfg.ZipParquetPath, cfg.GroupedParquetPath)
			return nil
		},
	}
}
