// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/parkledger/cmd/app/commands"
	"github.com/allisson/parkledger/internal/config"
)

var version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "parkledger",
		Usage:   "Privacy-preserving parking session service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
					return commands.RunMigrations(logger, cfg.DBDriver, cfg.DBConnectionString)
				},
			},
			{
				Name:      "status",
				Usage:     "Look up the parked status for a plate",
				ArgsUsage: "<plate>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunStatus(ctx, os.Stdout, cmd.Args().First())
				},
			},
			{
				Name:  "create-session-key",
				Usage: "Generate a new 256-bit session key for metadata encryption",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "kms-key-uri",
						Aliases: []string{"k"},
						Value:   "",
						Usage:   "KMS key URI to wrap the generated key (e.g., gcpkms://..., base64key://...)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCreateSessionKey(ctx, os.Stdout, cmd.String("kms-key-uri"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
