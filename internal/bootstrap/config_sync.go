package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hollowpine/frontier/internal/catalog"
	"github.com/hollowpine/frontier/internal/repository"
)

// SyncItemCatalog loads, validates, and syncs the item catalog to the
// database. Hash-based change detection skips the sync when the config file
// is unchanged since the last run.
func SyncItemCatalog(ctx context.Context, configPath string, defRepo repository.Definition) error {
	slog.Info(LogMsgSyncingItems)
	loader := catalog.NewLoader()

	cfg, err := loader.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load item catalog config: %w", err)
	}

	if err := loader.Validate(cfg); err != nil {
		return fmt.Errorf("invalid item catalog config: %w", err)
	}

	result, err := loader.SyncToDatabase(ctx, cfg, defRepo, configPath)
	if err != nil {
		return fmt.Errorf("failed to sync item catalog to database: %w", err)
	}

	if result.Inserted > 0 || result.Updated > 0 {
		slog.Info(LogMsgItemsSynced,
			"inserted", result.Inserted,
			"updated", result.Updated,
			"skipped", result.Skipped)
	} else {
		slog.Info(LogMsgItemsUnchanged)
	}

	return nil
}
