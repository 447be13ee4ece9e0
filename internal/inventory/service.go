package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hollowpine/frontier/internal/domain"
	"github.com/hollowpine/frontier/internal/event"
	"github.com/hollowpine/frontier/internal/logger"
	"github.com/hollowpine/frontier/internal/repository"
)

// PlayerItems is the read view of everything a player holds
type PlayerItems struct {
	Inventory []*domain.ItemInstance         `json:"inventory"`
	Hotbar    []*domain.ItemInstance         `json:"hotbar"`
	Equipped  map[domain.BodySlot]*domain.ItemInstance `json:"equipped"`
}

// Service defines the interface for item and slot-transfer operations
type Service interface {
	GetPlayerItems(ctx context.Context, player string) (*PlayerItems, error)
	GetContainer(ctx context.Context, kind domain.ContainerKind, containerID string) (*domain.ContainerRecord, error)
	CreateContainer(ctx context.Context, kind domain.ContainerKind, owner string) (*domain.ContainerRecord, error)
	DeleteContainer(ctx context.Context, kind domain.ContainerKind, containerID, spillTo string) error

	MoveIntoContainer(ctx context.Context, player, instanceID string, kind domain.ContainerKind, containerID string, slot int) error
	MoveOutOfContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, slot int, dst domain.Location) error
	MoveWithinContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, srcSlot, dstSlot int) error

	SplitIntoContainer(ctx context.Context, player, instanceID string, qty int, kind domain.ContainerKind, containerID string, slot int) error
	SplitOutOfContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, slot, qty int, dst domain.Location) error
	SplitWithinContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, srcSlot, dstSlot, qty int) error

	QuickMoveIntoContainer(ctx context.Context, player, instanceID string, kind domain.ContainerKind, containerID string) error
	QuickMoveOutOfContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, slot int) error

	Equip(ctx context.Context, player, instanceID string, body domain.BodySlot) error
	Unequip(ctx context.Context, player string, body domain.BodySlot) error

	GrantItem(ctx context.Context, player, itemName string, quantity int) error
	ConsumeItem(ctx context.Context, player, itemName string, quantity int) error
}

type service struct {
	store  repository.Store
	defs   DefinitionSource
	bus    event.Bus
	engine *Engine
}

// NewService creates a new inventory service
func NewService(store repository.Store, defs DefinitionSource, bus event.Bus) Service {
	return &service{
		store:  store,
		defs:   defs,
		bus:    bus,
		engine: NewEngine(defs),
	}
}

// withTx runs fn inside a transaction, committing only when fn succeeds. The
// deferred rollback is a no-op after a successful commit.
func (s *service) withTx(ctx context.Context, fn func(tx repository.Tx) error) error {
	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, domain.ErrTxClosed) {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", rbErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// loadSession builds the acting player's working set: their instances plus
// their equipment record, created lazily on first touch.
func (s *service) loadSession(ctx context.Context, tx repository.Tx, player string) (*Session, bool, error) {
	instances, err := tx.GetInstancesByOwner(ctx, player)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load instances: %w", err)
	}
	ws := NewWorkspace(player, instances)

	equipRec, err := tx.GetContainerByOwner(ctx, domain.ContainerEquipment, player)
	equipCreated := false
	if errors.Is(err, domain.ErrContainerNotFound) {
		equipRec = domain.NewContainerRecord(uuid.NewString(), domain.ContainerEquipment, player)
		equipCreated = true
		err = nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load equipment: %w", err)
	}
	return NewSession(ws, equipRec), equipCreated, nil
}

// loadGrid fetches a world container and pulls every instance its slots
// reference into the workspace, so foreign-owned stacks resolve too.
func (s *service) loadGrid(ctx context.Context, tx repository.Tx, sess *Session, kind domain.ContainerKind, containerID string) (*Grid, error) {
	rec, err := tx.GetContainer(ctx, kind, containerID)
	if err != nil {
		if errors.Is(err, domain.ErrContainerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load container: %w", err)
	}
	for _, ref := range rec.Slots {
		if ref == nil || sess.WS.Instance(ref.InstanceID) != nil {
			continue
		}
		inst, instErr := tx.GetInstance(ctx, ref.InstanceID)
		if instErr != nil {
			return nil, fmt.Errorf("failed to load contained instance %s: %w", ref.InstanceID, instErr)
		}
		sess.WS.Add(inst)
	}
	return NewGrid(rec), nil
}

// resolveContainer returns the Container view an operation targets: the
// session's own equipment set for the equipment kind, a loaded grid otherwise.
func (s *service) resolveContainer(ctx context.Context, tx repository.Tx, sess *Session, kind domain.ContainerKind, containerID string) (Container, *Grid, error) {
	if kind == domain.ContainerEquipment {
		return sess.Equipment, nil, nil
	}
	grid, err := s.loadGrid(ctx, tx, sess, kind, containerID)
	if err != nil {
		return nil, nil, err
	}
	return grid, grid, nil
}

// persist writes the session's accumulated instance changes plus the touched
// container records inside the operation's transaction.
func (s *service) persist(ctx context.Context, tx repository.Tx, sess *Session, equipCreated bool, grids ...*Grid) error {
	created, updated, deleted := sess.WS.Changes()
	for _, inst := range created {
		if err := tx.InsertInstance(ctx, inst); err != nil {
			return fmt.Errorf("failed to insert instance: %w", err)
		}
	}
	for _, inst := range updated {
		if err := tx.UpdateInstance(ctx, inst); err != nil {
			return fmt.Errorf("failed to update instance: %w", err)
		}
	}
	for _, id := range deleted {
		if err := tx.DeleteInstance(ctx, id); err != nil {
			return fmt.Errorf("failed to delete instance: %w", err)
		}
	}

	if equipCreated {
		if err := tx.InsertContainer(ctx, sess.Equipment.Record()); err != nil {
			return fmt.Errorf("failed to insert equipment: %w", err)
		}
	} else {
		if err := tx.UpdateContainer(ctx, sess.Equipment.Record()); err != nil {
			return fmt.Errorf("failed to update equipment: %w", err)
		}
	}
	for _, grid := range grids {
		if grid == nil {
			continue
		}
		if err := tx.UpdateContainer(ctx, grid.Record()); err != nil {
			return fmt.Errorf("failed to update container: %w", err)
		}
	}
	return nil
}

// publishUnequips emits an unequipped event per body slot the session vacated
func (s *service) publishUnequips(ctx context.Context, player string, sess *Session) {
	for _, body := range sess.Unequipped() {
		s.publish(ctx, event.NewItemUnequippedEvent(player, body))
	}
}

func (s *service) publish(ctx context.Context, ev event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, ev); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish event", "event_type", ev.Type, "error", err)
	}
}

func (s *service) GetPlayerItems(ctx context.Context, player string) (*PlayerItems, error) {
	log := logger.FromContext(ctx)
	log.Info("GetPlayerItems called", "player", player)

	instances, err := s.store.GetInstancesByOwner(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to load instances: %w", err)
	}

	items := &PlayerItems{
		Inventory: make([]*domain.ItemInstance, domain.PlayerInventorySlots),
		Hotbar:    make([]*domain.ItemInstance, domain.PlayerHotbarSlots),
		Equipped:  make(map[domain.BodySlot]*domain.ItemInstance),
	}
	for i := range instances {
		inst := instances[i]
		switch inst.Location.Kind {
		case domain.LocationInventory:
			if inst.Location.Index >= 0 && inst.Location.Index < len(items.Inventory) {
				items.Inventory[inst.Location.Index] = &inst
			}
		case domain.LocationHotbar:
			if inst.Location.Index >= 0 && inst.Location.Index < len(items.Hotbar) {
				items.Hotbar[inst.Location.Index] = &inst
			}
		case domain.LocationEquipped:
			items.Equipped[inst.Location.Body] = &inst
		}
	}
	return items, nil
}

func (s *service) GetContainer(ctx context.Context, kind domain.ContainerKind, containerID string) (*domain.ContainerRecord, error) {
	rec, err := s.store.GetContainer(ctx, kind, containerID)
	if err != nil {
		if errors.Is(err, domain.ErrContainerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load container: %w", err)
	}
	return rec, nil
}

func (s *service) CreateContainer(ctx context.Context, kind domain.ContainerKind, owner string) (*domain.ContainerRecord, error) {
	log := logger.FromContext(ctx)

	if kind.SlotCount() == 0 || kind == domain.ContainerEquipment {
		return nil, fmt.Errorf("%w: container kind %q", domain.ErrInvalidInput, kind)
	}
	rec := domain.NewContainerRecord(uuid.NewString(), kind, owner)
	if err := s.store.InsertContainer(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to insert container: %w", err)
	}

	log.Info("Container created", "container_id", rec.ID, "kind", kind)
	s.publish(ctx, event.NewContainerCreatedEvent(rec.ID, kind, owner))
	return rec, nil
}

// DeleteContainer removes a world container, spilling its contents into the
// receiving player's inventory and hotbar first. The delete fails without
// side effects when the spill does not fit.
func (s *service) DeleteContainer(ctx context.Context, kind domain.ContainerKind, containerID, spillTo string) error {
	log := logger.FromContext(ctx)

	if kind == domain.ContainerEquipment {
		return fmt.Errorf("%w: equipment containers are permanent", domain.ErrInvalidInput)
	}

	spilled := 0
	err := s.withTx(ctx, func(tx repository.Tx) error {
		sess, equipCreated, err := s.loadSession(ctx, tx, spillTo)
		if err != nil {
			return err
		}
		grid, err := s.loadGrid(ctx, tx, sess, kind, containerID)
		if err != nil {
			return err
		}

		for i := 0; i < grid.NumSlots(); i++ {
			if _, occupied := grid.At(i); !occupied {
				continue
			}
			if err := s.engine.QuickMoveOut(ctx, sess, grid, i); err != nil {
				return fmt.Errorf("failed to spill slot %d: %w", i, err)
			}
			if _, still := grid.At(i); still {
				return fmt.Errorf("failed to spill slot %d: %w", i, domain.ErrInventoryFull)
			}
			spilled++
		}

		if err := s.persist(ctx, tx, sess, equipCreated); err != nil {
			return err
		}
		return tx.DeleteContainer(ctx, kind, containerID)
	})
	if err != nil {
		return err
	}

	log.Info("Container deleted", "container_id", containerID, "kind", kind, "spilled_stacks", spilled)
	s.publish(ctx, event.NewContainerDeletedEvent(containerID, kind, spilled))
	return nil
}

// transfer is the shared shape of every slot operation: load the session and
// target container, run the engine mutation, persist on success.
func (s *service) transfer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, op func(sess *Session, c Container) error) (*Session, error) {
	var out *Session
	err := s.withTx(ctx, func(tx repository.Tx) error {
		sess, equipCreated, err := s.loadSession(ctx, tx, player)
		if err != nil {
			return err
		}
		c, grid, err := s.resolveContainer(ctx, tx, sess, kind, containerID)
		if err != nil {
			return err
		}
		if err := op(sess, c); err != nil {
			return err
		}
		out = sess
		return s.persist(ctx, tx, sess, equipCreated, grid)
	})
	return out, err
}

func (s *service) MoveIntoContainer(ctx context.Context, player, instanceID string, kind domain.ContainerKind, containerID string, slot int) error {
	log := logger.FromContext(ctx)

	var from domain.Location
	sess, err := s.transfer(ctx, player, kind, containerID, func(sess *Session, c Container) error {
		if inst := sess.WS.Instance(instanceID); inst != nil {
			from = inst.Location
		}
		return s.engine.MoveInto(ctx, sess, instanceID, c, slot)
	})
	if err != nil {
		log.Warn("MoveIntoContainer failed", "player", player, "error", err)
		return err
	}

	to := domain.ContainedLocation(kind, containerID, slot)
	if kind == domain.ContainerEquipment {
		if body, ok := BodyAt(slot); ok {
			to = domain.EquippedLocation(body)
			s.publish(ctx, event.NewItemEquippedEvent(player, body))
		}
	}
	s.publish(ctx, event.NewItemMovedEvent(player, instanceID, from, to, "move"))
	s.publishUnequips(ctx, player, sess)
	return nil
}

func (s *service) MoveOutOfContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, slot int, dst domain.Location) error {
	log := logger.FromContext(ctx)

	sess, err := s.transfer(ctx, player, kind, containerID, func(sess *Session, c Container) error {
		return s.engine.MoveOut(ctx, sess, c, slot, dst)
	})
	if err != nil {
		log.Warn("MoveOutOfContainer failed", "player", player, "error", err)
		return err
	}

	from := domain.ContainedLocation(kind, containerID, slot)
	s.publish(ctx, event.NewItemMovedEvent(player, "", from, dst, "move"))
	s.publishUnequips(ctx, player, sess)
	return nil
}

func (s *service) MoveWithinContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, srcSlot, dstSlot int) error {
	log := logger.FromContext(ctx)

	sess, err := s.transfer(ctx, player, kind, containerID, func(sess *Session, c Container) error {
		return s.engine.MoveWithin(ctx, sess, c, srcSlot, dstSlot)
	})
	if err != nil {
		log.Warn("MoveWithinContainer failed", "player", player, "error", err)
		return err
	}

	from := domain.ContainedLocation(kind, containerID, srcSlot)
	to := domain.ContainedLocation(kind, containerID, dstSlot)
	s.publish(ctx, event.NewItemMovedEvent(player, "", from, to, "move"))
	s.publishUnequips(ctx, player, sess)
	return nil
}

// splitEvent finds the instance the operation created, if it survived placement
func splitEvent(sess *Session) (string, int) {
	created, _, _ := sess.WS.Changes()
	for _, inst := range created {
		return inst.ID, inst.Quantity
	}
	return "", 0
}

func (s *service) SplitIntoContainer(ctx context.Context, player, instanceID string, qty int, kind domain.ContainerKind, containerID string, slot int) error {
	log := logger.FromContext(ctx)

	sess, err := s.transfer(ctx, player, kind, containerID, func(sess *Session, c Container) error {
		return s.engine.SplitInto(ctx, sess, instanceID, qty, c, slot)
	})
	if err != nil {
		log.Warn("SplitIntoContainer failed", "player", player, "error", err)
		return err
	}

	newID, _ := splitEvent(sess)
	s.publish(ctx, event.NewStackSplitEvent(player, instanceID, newID, qty))
	return nil
}

func (s *service) SplitOutOfContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, slot, qty int, dst domain.Location) error {
	log := logger.FromContext(ctx)

	sess, err := s.transfer(ctx, player, kind, containerID, func(sess *Session, c Container) error {
		return s.engine.SplitOut(ctx, sess, c, slot, qty, dst)
	})
	if err != nil {
		log.Warn("SplitOutOfContainer failed", "player", player, "error", err)
		return err
	}

	newID, _ := splitEvent(sess)
	s.publish(ctx, event.NewStackSplitEvent(player, "", newID, qty))
	return nil
}

func (s *service) SplitWithinContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, srcSlot, dstSlot, qty int) error {
	log := logger.FromContext(ctx)

	sess, err := s.transfer(ctx, player, kind, containerID, func(sess *Session, c Container) error {
		return s.engine.SplitWithin(ctx, sess, c, srcSlot, dstSlot, qty)
	})
	if err != nil {
		log.Warn("SplitWithinContainer failed", "player", player, "error", err)
		return err
	}

	newID, _ := splitEvent(sess)
	s.publish(ctx, event.NewStackSplitEvent(player, "", newID, qty))
	return nil
}

func (s *service) QuickMoveIntoContainer(ctx context.Context, player, instanceID string, kind domain.ContainerKind, containerID string) error {
	log := logger.FromContext(ctx)

	var from domain.Location
	sess, err := s.transfer(ctx, player, kind, containerID, func(sess *Session, c Container) error {
		if inst := sess.WS.Instance(instanceID); inst != nil {
			from = inst.Location
		}
		return s.engine.QuickMoveIn(ctx, sess, instanceID, c)
	})
	if err != nil {
		log.Warn("QuickMoveIntoContainer failed", "player", player, "error", err)
		return err
	}

	to := domain.Location{Kind: domain.LocationContained, ContainerKind: kind, ContainerID: containerID}
	s.publish(ctx, event.NewItemMovedEvent(player, instanceID, from, to, "quick_move"))
	s.publishUnequips(ctx, player, sess)
	return nil
}

func (s *service) QuickMoveOutOfContainer(ctx context.Context, player string, kind domain.ContainerKind, containerID string, slot int) error {
	log := logger.FromContext(ctx)

	sess, err := s.transfer(ctx, player, kind, containerID, func(sess *Session, c Container) error {
		return s.engine.QuickMoveOut(ctx, sess, c, slot)
	})
	if err != nil {
		log.Warn("QuickMoveOutOfContainer failed", "player", player, "error", err)
		return err
	}

	from := domain.ContainedLocation(kind, containerID, slot)
	to := domain.Location{Kind: domain.LocationInventory, Index: -1}
	s.publish(ctx, event.NewItemMovedEvent(player, "", from, to, "quick_move"))
	s.publishUnequips(ctx, player, sess)
	return nil
}

func (s *service) Equip(ctx context.Context, player, instanceID string, body domain.BodySlot) error {
	log := logger.FromContext(ctx)

	idx, ok := SlotIndex(body)
	if !ok {
		return fmt.Errorf("%w: body slot %q", domain.ErrInvalidInput, body)
	}

	var from domain.Location
	sess, err := s.transfer(ctx, player, domain.ContainerEquipment, "", func(sess *Session, c Container) error {
		if inst := sess.WS.Instance(instanceID); inst != nil {
			from = inst.Location
		}
		return s.engine.MoveInto(ctx, sess, instanceID, c, idx)
	})
	if err != nil {
		log.Warn("Equip failed", "player", player, "body_slot", body, "error", err)
		return err
	}

	log.Info("Item equipped", "player", player, "body_slot", body)
	s.publish(ctx, event.NewItemEquippedEvent(player, body))
	s.publish(ctx, event.NewItemMovedEvent(player, instanceID, from, domain.EquippedLocation(body), "move"))
	s.publishUnequips(ctx, player, sess)
	return nil
}

// Unequip moves the occupant of a body slot into the first free inventory slot
func (s *service) Unequip(ctx context.Context, player string, body domain.BodySlot) error {
	log := logger.FromContext(ctx)

	idx, ok := SlotIndex(body)
	if !ok {
		return fmt.Errorf("%w: body slot %q", domain.ErrInvalidInput, body)
	}

	_, err := s.transfer(ctx, player, domain.ContainerEquipment, "", func(sess *Session, c Container) error {
		if _, occupied := sess.Equipment.At(idx); !occupied {
			return fmt.Errorf("%w: %s", domain.ErrSlotEmpty, body)
		}
		dstIdx, found := firstEmptySlot(sess.Inventory)
		if !found {
			return domain.ErrInventoryFull
		}
		return s.engine.MoveOut(ctx, sess, c, idx, sess.Inventory.LocationFor(dstIdx))
	})
	if err != nil {
		log.Warn("Unequip failed", "player", player, "body_slot", body, "error", err)
		return err
	}

	log.Info("Item unequipped", "player", player, "body_slot", body)
	s.publish(ctx, event.NewItemUnequippedEvent(player, body))
	return nil
}

func (s *service) GrantItem(ctx context.Context, player, itemName string, quantity int) error {
	log := logger.FromContext(ctx)

	var stacks int
	err := s.withTx(ctx, func(tx repository.Tx) error {
		sess, equipCreated, err := s.loadSession(ctx, tx, player)
		if err != nil {
			return err
		}
		granted, err := s.engine.Grant(ctx, sess, itemName, quantity)
		if err != nil {
			return err
		}
		stacks = len(granted)
		return s.persist(ctx, tx, sess, equipCreated)
	})
	if err != nil {
		log.Warn("GrantItem failed", "player", player, "item", itemName, "error", err)
		return err
	}

	log.Info("Item granted", "player", player, "item", itemName, "quantity", quantity, "stacks", stacks)
	s.publish(ctx, event.NewItemGrantedEvent(player, itemName, quantity, stacks))
	return nil
}

func (s *service) ConsumeItem(ctx context.Context, player, itemName string, quantity int) error {
	log := logger.FromContext(ctx)

	err := s.withTx(ctx, func(tx repository.Tx) error {
		sess, equipCreated, err := s.loadSession(ctx, tx, player)
		if err != nil {
			return err
		}
		if err := s.engine.Consume(ctx, sess, itemName, quantity); err != nil {
			return err
		}
		return s.persist(ctx, tx, sess, equipCreated)
	})
	if err != nil {
		log.Warn("ConsumeItem failed", "player", player, "item", itemName, "error", err)
		return err
	}

	log.Info("Item consumed", "player", player, "item", itemName, "quantity", quantity)
	s.publish(ctx, event.NewItemConsumedEvent(player, itemName, quantity))
	return nil
}
