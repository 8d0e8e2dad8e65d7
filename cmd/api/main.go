package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gtif-cerulean/dmi-ice-charts/internal/app"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/appconf"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/chartdb"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/logging"
	"github.com/gtif-cerulean/dmi-ice-charts/internal/restapi"
)

func main() {
	var (
		port        int
		envFlag     string
		apiKeysFlag string
		rateLimit   int
		catalogDB   string
	)

	flag.IntVar(&port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "", "Comma separated API keys; empty disables key checks")
	flag.IntVar(&rateLimit, "rate-limit", 100, "Requests per second per API key (-1 for unlimited)")
	flag.StringVar(&catalogDB, "catalog-db", "catalog.db", "Path to the catalog SQLite database")
	flag.Parse()

	var apiKeys []string
	if apiKeysFlag != "" {
		apiKeys = strings.Split(apiKeysFlag, ",")
		for i := range apiKeys {
			apiKeys[i] = strings.TrimSpace(apiKeys[i])
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	env := appconf.EnvFlagToEnvironment(envFlag)

	db, err := chartdb.NewClient(chartdb.NewConfig(catalogDB, env, false))
	if err != nil {
		logger.Error("failed to open catalog database", "path", catalogDB, "error", err)
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(db, logger, "catalog_db")

	application := &app.Application{
		Config: appconf.Config{
			Port:          port,
			Env:           env,
			ApiKeys:       apiKeys,
			RateLimit:     rateLimit,
			CatalogDBPath: catalogDB,
		},
		Logger:    logger,
		CatalogDB: db,
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      api.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		logger.Info("shutting down server", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", env.String())
	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
