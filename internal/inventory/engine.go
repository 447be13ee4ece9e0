package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/hollowpine/frontier/internal/domain"
)

// DefinitionSource is the read-only catalog view the engine needs. The engine
// always works from definition IDs carried on the instances; name lookups are
// for boundary callers (grant, seeding).
type DefinitionSource interface {
	DefinitionByID(ctx context.Context, id int) (*domain.ItemDefinition, error)
	DefinitionByName(ctx context.Context, name string) (*domain.ItemDefinition, error)
}

// Session is the in-memory working set of one engine invocation: the acting
// owner's instances plus Container views over their inventory, hotbar and
// equipment. World containers touched by the operation are passed to the
// individual engine methods.
type Session struct {
	WS        *Workspace
	Inventory *PlayerPanel
	Hotbar    *PlayerPanel
	Equipment *Equipment

	unequipped []domain.BodySlot
}

// NewSession builds a session from a loaded workspace and equipment record
func NewSession(ws *Workspace, equipRec *domain.ContainerRecord) *Session {
	return &Session{
		WS:        ws,
		Inventory: NewInventoryPanel(ws),
		Hotbar:    NewHotbarPanel(ws),
		Equipment: NewEquipment(equipRec),
	}
}

// Panel returns the player-side Container for a location kind
func (s *Session) Panel(kind domain.LocationKind) *PlayerPanel {
	if kind == domain.LocationHotbar {
		return s.Hotbar
	}
	return s.Inventory
}

// Unequipped reports the body slots vacated during the operation, for event
// publication by the caller.
func (s *Session) Unequipped() []domain.BodySlot { return s.unequipped }

func (s *Session) noteUnequip(body domain.BodySlot) {
	s.unequipped = append(s.unequipped, body)
}

// clearEquippedOrigin vacates the equipment slot an instance is leaving. This
// is the unequip-on-relocate side effect: the equipment reference is cleared
// whenever an equipped item is moved anywhere else.
func (s *Session) clearEquippedOrigin(origin domain.Location) {
	if origin.Kind != domain.LocationEquipped {
		return
	}
	if idx, ok := SlotIndex(origin.Body); ok {
		s.Equipment.Clear(idx)
		s.noteUnequip(origin.Body)
	}
}

// Engine implements the slot-transfer operations. It mutates only the session
// and the Container views handed to it; persistence and atomicity are the
// caller's concern.
type Engine struct {
	defs DefinitionSource
}

// NewEngine creates an engine over a definition source
func NewEngine(defs DefinitionSource) *Engine {
	return &Engine{defs: defs}
}

// place writes both halves of a placement: the container slot cache and the
// instance's own Location. Keeping these in one helper is what preserves the
// cache-consistency invariant.
func (e *Engine) place(s *Session, inst *domain.ItemInstance, c Container, index int) {
	c.Put(index, domain.SlotRef{InstanceID: inst.ID, DefinitionID: inst.DefinitionID})
	inst.Location = c.LocationFor(index)
	s.WS.Touch(inst.ID)
}

// occupant resolves a slot ref to its live instance record
func (e *Engine) occupant(s *Session, ref domain.SlotRef) (*domain.ItemInstance, error) {
	inst := s.WS.Instance(ref.InstanceID)
	if inst == nil {
		return nil, fmt.Errorf("%w: slot references %s", domain.ErrInstanceNotFound, ref.InstanceID)
	}
	return inst, nil
}

// checkEquipTarget validates equipment-slot compatibility when the target
// container is an equipment set; other containers accept anything.
func (e *Engine) checkEquipTarget(ctx context.Context, dst Container, index, definitionID int) error {
	eq, ok := dst.(*Equipment)
	if !ok {
		return nil
	}
	body, ok := BodyAt(index)
	if !ok {
		return domain.ErrInvalidSlotIndex
	}
	def, err := e.defs.DefinitionByID(ctx, definitionID)
	if err != nil {
		return err
	}
	_ = eq
	return CheckEquip(def, body)
}

// MoveInto moves an instance from a player slot (inventory, hotbar or
// equipped) into a container slot. An occupied target is merged when the
// stacks are compatible, or swapped otherwise. The operation is
// all-or-nothing: a merge that would leave a remainder fails with
// ErrPartialMergeOnly and changes nothing.
func (e *Engine) MoveInto(ctx context.Context, s *Session, instanceID string, dst Container, slot int) error {
	inst := s.WS.Instance(instanceID)
	if inst == nil {
		return fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, instanceID)
	}
	if inst.Owner != s.WS.Owner {
		return domain.ErrNotOwned
	}
	if slot < 0 || slot >= dst.NumSlots() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidSlotIndex, slot)
	}

	origin := inst.Location
	if !origin.IsPlayerSide() && origin.Kind != domain.LocationEquipped {
		return fmt.Errorf("%w: %s", domain.ErrWrongLocation, origin)
	}

	occ, occupied := dst.At(slot)
	if occupied && occ.InstanceID == inst.ID {
		return nil // already there, nothing to do
	}

	if err := e.checkEquipTarget(ctx, dst, slot, inst.DefinitionID); err != nil {
		return err
	}

	if !occupied {
		s.clearEquippedOrigin(origin)
		e.place(s, inst, dst, slot)
		return nil
	}

	target, err := e.occupant(s, occ)
	if err != nil {
		return err
	}
	def, err := e.defs.DefinitionByID(ctx, inst.DefinitionID)
	if err != nil {
		return err
	}

	res, mergeErr := CalculateMerge(inst, target, def)
	if mergeErr == nil {
		if !res.DeleteSource {
			return domain.ErrPartialMergeOnly
		}
		target.Quantity = res.TargetNewQty
		s.WS.Touch(target.ID)
		s.clearEquippedOrigin(origin)
		s.WS.Delete(inst.ID)
		return nil
	}
	if errors.Is(mergeErr, domain.ErrTargetFull) {
		return mergeErr
	}

	// Incompatible stacks: swap the occupant into the moving item's former
	// location. An equipped origin has no addressable former slot, so the
	// occupant falls back to the first free inventory slot.
	switch origin.Kind {
	case domain.LocationInventory, domain.LocationHotbar:
		target.Owner = s.WS.Owner
		target.Location = origin
		s.WS.Touch(target.ID)
	case domain.LocationEquipped:
		idx, ok := firstEmptySlot(s.Inventory)
		if !ok {
			return domain.ErrInventoryFull
		}
		target.Owner = s.WS.Owner
		target.Location = s.Inventory.LocationFor(idx)
		s.WS.Touch(target.ID)
		s.clearEquippedOrigin(origin)
	}
	e.place(s, inst, dst, slot)
	return nil
}

// MoveOut moves the occupant of a container slot to a player inventory or
// hotbar slot. The container slot is cleared only when the instance fully
// relocates; every failure leaves the slot untouched.
func (e *Engine) MoveOut(ctx context.Context, s *Session, src Container, slot int, dst domain.Location) error {
	if !dst.IsPlayerSide() {
		return fmt.Errorf("%w: destination must be a player slot", domain.ErrInvalidInput)
	}
	panel := s.Panel(dst.Kind)
	if dst.Index < 0 || dst.Index >= panel.NumSlots() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidSlotIndex, dst.Index)
	}
	if slot < 0 || slot >= src.NumSlots() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidSlotIndex, slot)
	}

	occ, occupied := src.At(slot)
	if !occupied {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotEmpty, slot)
	}
	inst, err := e.occupant(s, occ)
	if err != nil {
		return err
	}

	srcBody, fromEquipment := e.equipmentBody(src, slot)

	dstOcc, dstOccupied := panel.At(dst.Index)
	if !dstOccupied {
		src.Clear(slot)
		inst.Owner = s.WS.Owner
		inst.Location = dst
		s.WS.Touch(inst.ID)
		if fromEquipment {
			s.noteUnequip(srcBody)
		}
		return nil
	}

	target, err := e.occupant(s, dstOcc)
	if err != nil {
		return err
	}
	def, err := e.defs.DefinitionByID(ctx, inst.DefinitionID)
	if err != nil {
		return err
	}

	res, mergeErr := CalculateMerge(inst, target, def)
	if mergeErr == nil {
		if !res.DeleteSource {
			return domain.ErrPartialMergeOnly
		}
		target.Quantity = res.TargetNewQty
		s.WS.Touch(target.ID)
		s.WS.Delete(inst.ID)
		src.Clear(slot)
		if fromEquipment {
			s.noteUnequip(srcBody)
		}
		return nil
	}
	if errors.Is(mergeErr, domain.ErrTargetFull) {
		return mergeErr
	}

	// Swap: the player-slot occupant takes the container slot
	if err := e.checkEquipTarget(ctx, src, slot, target.DefinitionID); err != nil {
		return err
	}
	e.place(s, target, src, slot)
	inst.Owner = s.WS.Owner
	inst.Location = dst
	s.WS.Touch(inst.ID)
	if fromEquipment {
		s.noteUnequip(srcBody)
	}
	return nil
}

// MoveWithin moves a stack between two slots of the same container. Moving a
// slot onto itself is a successful no-op.
func (e *Engine) MoveWithin(ctx context.Context, s *Session, c Container, srcSlot, dstSlot int) error {
	if srcSlot < 0 || srcSlot >= c.NumSlots() || dstSlot < 0 || dstSlot >= c.NumSlots() {
		return fmt.Errorf("%w: %d -> %d", domain.ErrInvalidSlotIndex, srcSlot, dstSlot)
	}

	occ, occupied := c.At(srcSlot)
	if !occupied {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotEmpty, srcSlot)
	}
	if srcSlot == dstSlot {
		return nil // idempotent no-op
	}
	inst, err := e.occupant(s, occ)
	if err != nil {
		return err
	}

	if err := e.checkEquipTarget(ctx, c, dstSlot, inst.DefinitionID); err != nil {
		return err
	}

	dstOcc, dstOccupied := c.At(dstSlot)
	if !dstOccupied {
		c.Clear(srcSlot)
		e.place(s, inst, c, dstSlot)
		return nil
	}

	target, err := e.occupant(s, dstOcc)
	if err != nil {
		return err
	}
	def, err := e.defs.DefinitionByID(ctx, inst.DefinitionID)
	if err != nil {
		return err
	}

	res, mergeErr := CalculateMerge(inst, target, def)
	if mergeErr == nil {
		if !res.DeleteSource {
			return domain.ErrPartialMergeOnly
		}
		target.Quantity = res.TargetNewQty
		s.WS.Touch(target.ID)
		s.WS.Delete(inst.ID)
		c.Clear(srcSlot)
		return nil
	}
	if errors.Is(mergeErr, domain.ErrTargetFull) {
		return mergeErr
	}

	// Swap the two cache entries
	if err := e.checkEquipTarget(ctx, c, srcSlot, target.DefinitionID); err != nil {
		return err
	}
	e.place(s, target, c, srcSlot)
	e.place(s, inst, c, dstSlot)
	return nil
}

// equipmentBody reports whether a container is the session's equipment set
// and, if so, which body slot an index addresses.
func (e *Engine) equipmentBody(c Container, index int) (domain.BodySlot, bool) {
	if _, ok := c.(*Equipment); !ok {
		return "", false
	}
	body, ok := BodyAt(index)
	return body, ok
}
