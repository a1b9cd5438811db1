package db

import (
	"context"
	"fmt"
	"log/slog"

	"meeting-room-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Migrate applies pending migrations from cfg.MigrationsDir using the
// atlas CLI. The exclusion constraint on reservations lives there; the
// application-level overlap check is only an early rejection.
func Migrate(ctx context.Context, cfg config.DBConfig) error {
	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return fmt.Errorf("failed to init atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: "file://" + cfg.MigrationsDir,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	slog.Info("migrations applied",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied))

	return nil
}
