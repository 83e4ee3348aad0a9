package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"phishguard/internal/config"
	"phishguard/pkg/guardclient"
	"phishguard/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCommand runs a one-shot analysis of a URL through the client
// coordinator and prints the result as JSON. When the service is down the
// output is the preliminary PENDING verdict, same as any other client.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <url>",
		Short: "Analyzes a single URL and prints the result as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			client := guardclient.NewClient(&http.Client{Timeout: cfg.Client.Timeout}, cfg.Client.BaseURL)
			coordinator := guardclient.NewCoordinator(client, cfg.Client.Timeout)

			result, err := coordinator.Check(ctx, args[0])
			if err != nil {
				logger.Fatal(ctx, "could not check URL", zap.Error(err))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				logger.Fatal(ctx, "could not encode result", zap.Error(err))
			}

			if !result.ServiceAvailable {
				logger.Warn(ctx, "analysis service unreachable, verdict is preliminary",
					zap.String("baseURL", cfg.Client.BaseURL))
			}
		},
	}

	return cmd
}
