package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	ginserver "travelgo/internal/infra/http/gin"
	"travelgo/internal/infra/obs"
)

func newServeCommand(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), s)
		},
	}
	cmd.Flags().String("addr", "", "HTTP listen address (default :8080)")
	_ = s.v.BindPFlag("http_addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func runServe(ctx context.Context, s *settings) error {
	cfg, err := s.load()
	if err != nil {
		return err
	}
	logger := obs.NewLogger(cfg.Env, obs.LogOptions{Level: cfg.LogLevel, File: cfg.LogFile})

	deps, err := connectDependencies(cfg, logger)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		deps.close(closeCtx, logger)
	}()
	if err != nil {
		return err
	}

	app := buildApplication(cfg, logger, deps)
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger, Metrics: deps.metrics}, app.health, app.handlers)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		app.warmUp(ctx, logger)
		return nil
	})
	if deps.worker != nil {
		group.Go(func() error {
			logger.Info("outbox worker starting", "interval", deps.worker.Interval)
			if err := deps.worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		app.pages.CloseAll()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
		return nil
	})
	group.Go(func() error {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "resources", cfg.ResourceSource)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	err = group.Wait()
	logger.Info("HTTP server stopped")
	return err
}
