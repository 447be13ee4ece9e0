package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hollowpine/frontier/internal/domain"
)

// carve validates a split and creates the new stack. The caller must place the
// new instance before the session is persisted; a placement failure aborts the
// whole operation, so the source's quantity reduction never reaches the store
// on its own.
func (e *Engine) carve(ctx context.Context, s *Session, inst *domain.ItemInstance, qty int) (*domain.ItemInstance, *domain.ItemDefinition, error) {
	def, err := e.defs.DefinitionByID(ctx, inst.DefinitionID)
	if err != nil {
		return nil, nil, err
	}
	if !def.Stackable {
		return nil, nil, domain.ErrNotStackable
	}
	if qty <= 0 || qty >= inst.Quantity || qty > domain.MaxTransactionQuantity {
		return nil, nil, fmt.Errorf("%w: %d of %d", domain.ErrSourceQuantityInvalid, qty, inst.Quantity)
	}

	inst.Quantity -= qty
	s.WS.Touch(inst.ID)

	split := &domain.ItemInstance{
		ID:           uuid.NewString(),
		Owner:        inst.Owner,
		DefinitionID: inst.DefinitionID,
		Quantity:     qty,
		Location:     domain.FreeLocation(),
	}
	s.WS.Create(split)
	return split, def, nil
}

// undoCarve reverses a carve whose placement failed, so the session stays
// consistent even before the transaction rollback discards it.
func (e *Engine) undoCarve(s *Session, inst, split *domain.ItemInstance, qty int) {
	inst.Quantity += qty
	s.WS.Delete(split.ID)
}

// settleSplit places a freshly carved stack against a target slot: an empty
// slot takes the whole stack, a same-definition occupant absorbs as much as
// fits and any remainder falls to the container's first empty slot.
func (e *Engine) settleSplit(s *Session, split *domain.ItemInstance, def *domain.ItemDefinition, dst Container, slot int, fullErr error) error {
	occ, occupied := dst.At(slot)
	if !occupied {
		e.place(s, split, dst, slot)
		return nil
	}

	target, err := e.occupant(s, occ)
	if err != nil {
		return err
	}
	res, mergeErr := CalculateMerge(split, target, def)
	if mergeErr != nil {
		return mergeErr
	}

	if res.DeleteSource {
		target.Quantity = res.TargetNewQty
		s.WS.Touch(target.ID)
		s.WS.Delete(split.ID)
		return nil
	}

	// Remainder needs a home before anything mutates
	idx, ok := firstEmptySlot(dst)
	if !ok {
		return fullErr
	}
	target.Quantity = res.TargetNewQty
	s.WS.Touch(target.ID)
	split.Quantity = res.SourceNewQty
	e.place(s, split, dst, idx)
	return nil
}

// SplitInto carves qty off a player-held stack and places the new stack into
// a container slot. The whole split-and-place sequence is atomic: any failure
// aborts before persistence, leaving the source stack at its full quantity.
func (e *Engine) SplitInto(ctx context.Context, s *Session, instanceID string, qty int, dst Container, slot int) error {
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
	if _, isEquipment := dst.(*Equipment); isEquipment {
		// Stackable items never pass CheckEquip, so a split can never land
		// on an equipment slot.
		return domain.ErrNotEquippable
	}

	split, def, err := e.carve(ctx, s, inst, qty)
	if err != nil {
		return err
	}
	if err := e.settleSplit(s, split, def, dst, slot, domain.ErrContainerFull); err != nil {
		e.undoCarve(s, inst, split, qty)
		return err
	}
	return nil
}

// SplitOut carves qty off a contained stack and places the new stack into a
// player inventory or hotbar slot. The source stack keeps its remainder in
// its original container slot.
func (e *Engine) SplitOut(ctx context.Context, s *Session, src Container, srcSlot, qty int, dst domain.Location) error {
	if !dst.IsPlayerSide() {
		return fmt.Errorf("%w: destination must be a player slot", domain.ErrInvalidInput)
	}
	if srcSlot < 0 || srcSlot >= src.NumSlots() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidSlotIndex, srcSlot)
	}
	panel := s.Panel(dst.Kind)
	if dst.Index < 0 || dst.Index >= panel.NumSlots() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidSlotIndex, dst.Index)
	}

	occ, occupied := src.At(srcSlot)
	if !occupied {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotEmpty, srcSlot)
	}
	inst, err := e.occupant(s, occ)
	if err != nil {
		return err
	}

	split, def, err := e.carve(ctx, s, inst, qty)
	if err != nil {
		return err
	}
	split.Owner = s.WS.Owner

	dstOcc, dstOccupied := panel.At(dst.Index)
	if !dstOccupied {
		split.Location = dst
		return nil
	}

	target, err := e.occupant(s, dstOcc)
	if err != nil {
		e.undoCarve(s, inst, split, qty)
		return err
	}
	res, mergeErr := CalculateMerge(split, target, def)
	if mergeErr != nil {
		e.undoCarve(s, inst, split, qty)
		return mergeErr
	}

	if res.DeleteSource {
		target.Quantity = res.TargetNewQty
		s.WS.Touch(target.ID)
		s.WS.Delete(split.ID)
		return nil
	}

	idx, ok := firstEmptySlot(panel)
	if !ok {
		e.undoCarve(s, inst, split, qty)
		return domain.ErrInventoryFull
	}
	target.Quantity = res.TargetNewQty
	s.WS.Touch(target.ID)
	split.Quantity = res.SourceNewQty
	split.Location = panel.LocationFor(idx)
	return nil
}

// SplitWithin carves qty off a contained stack and places the new stack into
// another slot of the same container.
func (e *Engine) SplitWithin(ctx context.Context, s *Session, c Container, srcSlot, dstSlot, qty int) error {
	if srcSlot < 0 || srcSlot >= c.NumSlots() || dstSlot < 0 || dstSlot >= c.NumSlots() {
		return fmt.Errorf("%w: %d -> %d", domain.ErrInvalidSlotIndex, srcSlot, dstSlot)
	}
	if srcSlot == dstSlot {
		return domain.ErrSameSlot
	}

	occ, occupied := c.At(srcSlot)
	if !occupied {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotEmpty, srcSlot)
	}
	inst, err := e.occupant(s, occ)
	if err != nil {
		return err
	}

	split, def, err := e.carve(ctx, s, inst, qty)
	if err != nil {
		return err
	}
	if err := e.settleSplit(s, split, def, c, dstSlot, domain.ErrContainerFull); err != nil {
		e.undoCarve(s, inst, split, qty)
		return err
	}
	return nil
}
