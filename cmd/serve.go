package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"phishguard/internal/analyzer"
	"phishguard/internal/api"
	"phishguard/internal/api/handler/v1handler"
	"phishguard/internal/classifier"
	"phishguard/internal/config"
	"phishguard/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupAnalyzer loads the model artifact, runs the classifier self-test and
// assembles the analysis pipeline. A classifier that fails its self-test is
// kept in the pipeline as unavailable so the rule fallback still serves.
func setupAnalyzer(ctx context.Context, cfg *config.Config) (*analyzer.Analyzer, *classifier.Adapter) {
	artifact, err := classifier.LoadArtifact(cfg.Classifier.ModelPath)
	if err != nil {
		logger.Fatal(ctx, "could not load model artifact", zap.Error(err))
	}

	adapter := classifier.New(ctx, artifact)
	svc, err := analyzer.New(adapter)
	if err != nil {
		logger.Fatal(ctx, "could not create analyzer", zap.Error(err))
	}

	return svc, adapter
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the analysis API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			svc, adapter := setupAnalyzer(ctx, cfg)
			logger.Info(ctx, "analysis pipeline ready",
				zap.String("modelVersion", adapter.Version()),
				zap.Bool("classifierAvailable", adapter.Available()))

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Analyzer: svc,
					Status:   adapter,
				},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
