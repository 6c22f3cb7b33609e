package main

import (
	"context"
	"log/slog"
	"os"

	"ariga.io/atlas-go-sdk/atlasexec"

	"wanderbook/internal/pkg/config"
)

// Applies pending SQL migrations from the migrations/ directory using the
// atlas CLI. Run before starting the server in any fresh environment.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	res, err := client.MigrateApply(context.Background(), &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://migrations",
	})
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("migrations applied",
		"target", res.Target,
		"applied", len(res.Applied),
	)
}
