package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/appconf"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/logging"
)

var (
	verbose   bool
	baseURL   string
	catalogDB string

	cfg    appconf.IngestConfig
	logger *slog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest DMI SIGRID-3 ice charts into the catalog",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = appconf.LoadIngestConfig()
			if baseURL != "" {
				cfg.ShapefileBaseURL = baseURL
			}
			if catalogDB != "" {
				cfg.CatalogDBPath = catalogDB
			}
			cfg.Verbose = verbose

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = logging.NewStructuredLogger(os.Stdout, level)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the chart archive base URL")
	root.PersistentFlags().StringVar(&catalogDB, "catalog-db", "", "override the catalog SQLite path")

	root.AddCommand(runCmd(), exportCmd())
	return root.Execute()
}
