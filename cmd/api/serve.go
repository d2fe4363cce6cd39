package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flagConfig)
		},
	}
}

// runServe 启动服务,收到SIGINT/SIGTERM后优雅关闭
func runServe(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	app, cleanup, err := InitializeApp(configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, log := app.Config, app.Log

	shutdownTracer, err := tracing.InitTracer(cfg.Tracing.Enabled, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Warn("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	if cfg.Seed.OnStartup {
		if _, err := app.Seeder.Seed(ctx); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	printBanner(cfg)
	log.Info("server started", slog.String("addr", srv.Addr))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func printBanner(cfg *config.Config) {
	base := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	fmt.Println()
	fmt.Println(color.GreenString("✓"), "bookshelf listening on", color.CyanString(base))
	fmt.Printf("  %-10s %s\n", "frontend:", base+"/")
	fmt.Printf("  %-10s %s\n", "api:", base+"/api/books")
	fmt.Printf("  %-10s %s\n", "health:", base+"/ping")
	if cfg.Metrics.Enabled {
		fmt.Printf("  %-10s %s\n", "metrics:", base+"/metrics")
	}
	if cfg.Server.Swagger {
		fmt.Printf("  %-10s %s\n", "swagger:", base+"/swagger/index.html")
	}
	if cfg.MQ.Enabled {
		fmt.Printf("  %-10s %s\n", "events:", color.YellowString(cfg.MQ.Exchange))
	}
	fmt.Println()
}
