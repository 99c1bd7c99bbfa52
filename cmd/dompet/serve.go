package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dompet/dompet/internal/api"
	"github.com/dompet/dompet/internal/service"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve the ledger over a JSON HTTP API. Allowed CORS origins can be
configured under server.cors_origins in the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, registry, repo, err := initLedger(ctx, service.SlogNotifier{})
			if err != nil {
				return err
			}
			defer repo.Close()

			origins := viper.GetStringSlice("server.cors_origins")
			server := api.NewServer(store, registry, origins)

			slog.Info("Starting API server", "addr", addr, "cors_origins", origins)
			return server.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return cmd
}
