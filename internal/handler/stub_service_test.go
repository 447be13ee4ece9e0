package handler

import (
	"context"

	"github.com/hollowpine/frontier/internal/domain"
	"github.com/hollowpine/frontier/internal/inventory"
)

// stubInventoryService implements inventory.Service with overridable function
// fields. Unset fields succeed and record nothing.
type stubInventoryService struct {
	getPlayerItemsFn func(ctx context.Context, player string) (*inventory.PlayerItems, error)
	getContainerFn   func(ctx context.Context, kind domain.ContainerKind, containerID string) (*domain.ContainerRecord, error)
	createFn         func(ctx context.Context, kind domain.ContainerKind, owner string) (*domain.ContainerRecord, error)
	deleteFn         func(ctx context.Context, kind domain.ContainerKind, containerID, spillTo string) error

	moveInFn     func(ctx context.Context, player, instanceID string, kind domain.ContainerKind, containerID string, slot int) error
	moveOutFn    func(ctx context.Context, player string, kind domain.ContainerKind, containerID string, slot int, dst domain.Location) error
	moveWithinFn func(ctx context.Context, player string, kind domain.ContainerKind, containerID string, srcSlot, dstSlot int) error

	splitInFn     func(ctx context.Context, player, instanceID string, qty int, kind domain.ContainerKind, containerID string, slot int) error
	splitOutFn    func(ctx context.Context, player string, kind domain.ContainerKind, containerID string, slot, qty int, dst domain.Location) error
	splitWithinFn func(ctx context.Context, player string, kind domain.ContainerKind, containerID string, srcSlot, dstSlot, qty int) error

	quickInFn  func(ctx context.Context, player, instanceID string, kind domain.ContainerKind, containerID string) error
	quickOutFn func(ctx context.Context, player string, kind domain.ContainerKind, containerID string, slot int) error

	equipFn   func(ctx context.Context, player, instanceID string, body domain.BodySlot) error
	unequipFn func(ctx context.Context, player string, body domain.BodySlot) error

	grantFn   func(ctx context.Context, player, itemName string, quantity int) error
	consumeFn func(ctx context.Context, player, itemName string, quantity int) error
}

func (s *stubInventoryService) GetPlayerItems(ctx context.Context, player string) (*inventory.PlayerItems, error) {
	if s.getPlayerItemsFn != nil {
		return s.getPlayerItemsFn(ctx, player)
	}
	return &inventory.PlayerItems{}, nil
}

func (s *stubInventoryService) GetContainer(ctx context.Context, kind domain.ContainerKind, containerID string) (*domain.ContainerRecord, error) {
	if s.getContainerFn != nil {
		return s.getContainerFn(ctx, kind, containerID)
	}
	return domain.NewContainerRecord(containerID, kind, "owner"), nil
}

func (s *stubInventoryService) CreateContainer(ctx context.Context, kind domain.ContainerKind, owner string) (*domain.ContainerRecord, error) {
	if s.createFn != nil {
		return s.createFn(ctx, kind, owner)
	}
	return domain.NewContainerRecord("new-container", kind, owner), nil
}

func (s *stubInventoryService) DeleteContainer(ctx context.Context, kind domain.ContainerKind, containerID, spillTo string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, kind, containerID, spillTo)
	}
	return nil
}

func (s *stubInventoryService) MoveIntoContainer(ctx context.Context, player, instanceID string, kind domain.ContainerKind, containerID string, slot int) error {
	if s.moveInFn != nil {
		return s.moveInFn(ctx, player, instanceID, kind, containerID, slot)
	}
	return nil
}

func (s *stubInventoryService) MoveOutOfContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, slot int, dst domain.Location) error {
	if s.moveOutFn != nil {
		return s.moveOutFn(ctx, player, kind, containerID, slot, dst)
	}
	return nil
}

func (s *stubInventoryService) MoveWithinContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, srcSlot, dstSlot int) error {
	if s.moveWithinFn != nil {
		return s.moveWithinFn(ctx, player, kind, containerID, srcSlot, dstSlot)
	}
	return nil
}

func (s *stubInventoryService) SplitIntoContainer(ctx context.Context, player, instanceID string, qty int, kind domain.ContainerKind, containerID string, slot int) error {
	if s.splitInFn != nil {
		return s.splitInFn(ctx, player, instanceID, qty, kind, containerID, slot)
	}
	return nil
}

func (s *stubInventoryService) SplitOutOfContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, slot, qty int, dst domain.Location) error {
	if s.splitOutFn != nil {
		return s.splitOutFn(ctx, player, kind, containerID, slot, qty, dst)
	}
	return nil
}

func (s *stubInventoryService) SplitWithinContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, srcSlot, dstSlot, qty int) error {
	if s.splitWithinFn != nil {
		return s.splitWithinFn(ctx, player, kind, containerID, srcSlot, dstSlot, qty)
	}
	return nil
}

func (s *stubInventoryService) QuickMoveIntoContainer(ctx context.Context, player, instanceID string, kind domain.ContainerKind, containerID string) error {
	if s.quickInFn != nil {
		return s.quickInFn(ctx, player, instanceID, kind, containerID)
	}
	return nil
}

func (s *stubInventoryService) QuickMoveOutOfContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, slot int) error {
	if s.quickOutFn != nil {
		return s.quickOutFn(ctx, player, kind, containerID, slot)
	}
	return nil
}

func (s *stubInventoryService) Equip(ctx context.Context, player, instanceID string, body domain.BodySlot) error {
	if s.equipFn != nil {
		return s.equipFn(ctx, player, instanceID, body)
	}
	return nil
}

func (s *stubInventoryService) Unequip(ctx context.Context, player string, body domain.BodySlot) error {
	if s.unequipFn != nil {
		return s.unequipFn(ctx, player, body)
	}
	return nil
}

func (s *stubInventoryService) GrantItem(ctx context.Context, player, itemName string, quantity int) error {
	if s.grantFn != nil {
		return s.grantFn(ctx, player, itemName, quantity)
	}
	return nil
}

func (s *stubInventoryService) ConsumeItem(ctx context.Context, player, itemName string, quantity int) error {
	if s.consumeFn != nil {
		return s.consumeFn(ctx, player, itemName, quantity)
	}
	return nil
}
