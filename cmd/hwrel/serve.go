package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zulandar/hwrel/internal/config"
	"github.com/zulandar/hwrel/internal/db"
	"github.com/zulandar/hwrel/internal/logging"
	"github.com/zulandar/hwrel/internal/scheduler"
	"github.com/zulandar/hwrel/internal/server"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Serves the JSON API and Prometheus metrics. When schedule.recalculate is set, the configured root is also recalculated on that cron schedule.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to hwrel config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (default from config)")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	if port <= 0 {
		port = cfg.Server.Port
	}

	logger, err := logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format, "hwrel")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	limits, err := db.LoadStressLimits(gormDB)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(cmd.OutOrStdout(), "\nReceived %s, shutting down...\n", sig)
		cancel()
	}()

	var calcMu sync.Mutex

	if cfg.Schedule.Recalculate != "" {
		sched, err := scheduler.New(scheduler.Opts{
			DB:           gormDB,
			Logger:       logger.Named("scheduler"),
			Cron:         cfg.Schedule.Recalculate,
			RootID:       cfg.Schedule.RootID,
			HRMultiplier: cfg.HRMultiplier,
			Workers:      cfg.Server.Workers,
			Limits:       limits,
			CalcLock:     &calcMu,
		})
		if err != nil {
			return err
		}
		go sched.Run(ctx)
		logger.Info("scheduler enabled",
			zap.String("cron", cfg.Schedule.Recalculate), zap.Uint("root_id", cfg.Schedule.RootID))
	}

	return server.Start(ctx, server.StartOpts{
		DB:           gormDB,
		Port:         port,
		Out:          cmd.OutOrStdout(),
		Logger:       logger.Named("server"),
		HRMultiplier: cfg.HRMultiplier,
		Workers:      cfg.Server.Workers,
		Limits:       limits,
		CalcLock:     &calcMu,
	})
}
