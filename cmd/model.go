package main

import (
	"context"
	"encoding/json"
	"os"

	"phishguard/internal/classifier"
	"phishguard/internal/config"
	"phishguard/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// modelCommand inspects the configured model artifact: it loads it, runs the
// classifier self-test and prints the version, feature schema and self-test
// outcome. Useful for validating an artifact before deploying it.
func modelCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Validates and describes the configured model artifact",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			artifact, err := classifier.LoadArtifact(cfg.Classifier.ModelPath)
			if err != nil {
				logger.Fatal(ctx, "could not load model artifact", zap.Error(err))
			}

			adapter := classifier.New(ctx, artifact)

			out := struct {
				Version      string   `json:"version"`
				Features     []string `json:"features"`
				FeatureCount int      `json:"featureCount"`
				SelfTestOK   bool     `json:"selfTestOk"`
			}{
				Version:      artifact.Version,
				Features:     artifact.Features,
				FeatureCount: len(artifact.Features),
				SelfTestOK:   adapter.Available(),
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				logger.Fatal(ctx, "could not encode model description", zap.Error(err))
			}

			if !adapter.Available() {
				os.Exit(1)
			}
		},
	}

	return cmd
}
