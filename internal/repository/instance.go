package repository

import (
	"context"

	"github.com/hollowpine/frontier/internal/domain"
)

// Instance defines the interface for item-instance persistence
type Instance interface {
	GetInstance(ctx context.Context, instanceID string) (*domain.ItemInstance, error)
	GetInstancesByOwner(ctx context.Context, owner string) ([]domain.ItemInstance, error)
	InsertInstance(ctx context.Context, inst *domain.ItemInstance) error
	UpdateInstance(ctx context.Context, inst *domain.ItemInstance) error
	DeleteInstance(ctx context.Context, instanceID string) error
}
