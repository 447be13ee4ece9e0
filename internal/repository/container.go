package repository

import (
	"context"

	"github.com/hollowpine/frontier/internal/domain"
)

// Container defines the interface for container-record persistence
type Container interface {
	GetContainer(ctx context.Context, kind domain.ContainerKind, containerID string) (*domain.ContainerRecord, error)
	// GetContainerByOwner looks up the single container of a kind owned by a
	// principal. Used for equipment, which is one record per player.
	GetContainerByOwner(ctx context.Context, kind domain.ContainerKind, owner string) (*domain.ContainerRecord, error)
	InsertContainer(ctx context.Context, rec *domain.ContainerRecord) error
	UpdateContainer(ctx context.Context, rec *domain.ContainerRecord) error
	DeleteContainer(ctx context.Context, kind domain.ContainerKind, containerID string) error
}
