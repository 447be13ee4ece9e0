package repository

import (
	"context"

	"github.com/hollowpine/frontier/internal/domain"
)

// Definition defines the interface for item-definition persistence
type Definition interface {
	GetAllDefinitions(ctx context.Context) ([]domain.ItemDefinition, error)
	GetDefinitionByID(ctx context.Context, id int) (*domain.ItemDefinition, error)
	GetDefinitionByName(ctx context.Context, name string) (*domain.ItemDefinition, error)
	InsertDefinition(ctx context.Context, def *domain.ItemDefinition) (int, error)
	UpdateDefinition(ctx context.Context, id int, def *domain.ItemDefinition) error

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
