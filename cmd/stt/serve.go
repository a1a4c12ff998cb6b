package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/stt-search/internal/api"
	"github.com/Veraticus/stt-search/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP search API",
		Long: `Start the HTTP API.

Endpoints:
  GET /                                           health check
  GET /search_all_months?Kota_Asal=..&Kota_Tujuan=..  per-month STT totals

The data source is created once at startup and every request reads the
full sheet, so results always reflect the current data.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default :5000, or 0.0.0.0:$PORT)")
	cmd.Flags().Duration("shutdown-timeout", 10*time.Second, "grace period for in-flight requests on shutdown")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()

	if viper.GetString("logging.level") == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	searcher, closeSource, err := initSearcher(ctx, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize search: %w", err)
	}
	defer closeSource()

	grace, _ := cmd.Flags().GetDuration("shutdown-timeout")
	addr := config.ServerAddr()
	if cmd.Flags().Changed("addr") {
		addr, _ = cmd.Flags().GetString("addr")
	}

	server := api.NewServer(addr, api.NewRouter(searcher, logger), logger)
	if err := server.Run(ctx, grace); err != nil {
		return fmt.Errorf("http server failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
