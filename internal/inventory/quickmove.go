package inventory

import (
	"context"
	"fmt"

	"github.com/hollowpine/frontier/internal/domain"
)

// mergeAcross greedily merges an instance into same-definition stacks of a
// container, scanning slots left to right. Returns the remaining quantity and
// whether any transfer happened. Determinism of the slot order is part of the
// engine contract; callers rely on reproducible placement.
func (e *Engine) mergeAcross(s *Session, inst *domain.ItemInstance, def *domain.ItemDefinition, c Container) (remaining int, merged bool, err error) {
	remaining = inst.Quantity
	if !def.Stackable {
		return remaining, false, nil
	}
	capacity := def.EffectiveStackSize()

	for i := 0; i < c.NumSlots() && remaining > 0; i++ {
		occ, occupied := c.At(i)
		if !occupied || occ.DefinitionID != inst.DefinitionID || occ.InstanceID == inst.ID {
			continue
		}
		target, tErr := e.occupant(s, occ)
		if tErr != nil {
			return remaining, merged, tErr
		}
		space := capacity - target.Quantity
		if space <= 0 {
			continue
		}
		transfer := remaining
		if transfer > space {
			transfer = space
		}
		target.Quantity += transfer
		s.WS.Touch(target.ID)
		remaining -= transfer
		merged = true
	}
	return remaining, merged, nil
}

// QuickMoveIn auto-places a player-held instance into a container: greedy
// merge against every same-definition stack in slot order, then the first
// empty slot for whatever remains. A partial merge with no room left for the
// remainder is a success; the leftover stays in the source's original
// location. ContainerFull is returned only when nothing at all was placed.
func (e *Engine) QuickMoveIn(ctx context.Context, s *Session, instanceID string, dst Container) error {
	inst := s.WS.Instance(instanceID)
	if inst == nil {
		return fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, instanceID)
	}
	if inst.Owner != s.WS.Owner {
		return domain.ErrNotOwned
	}
	origin := inst.Location
	if !origin.IsPlayerSide() && origin.Kind != domain.LocationEquipped {
		return fmt.Errorf("%w: %s", domain.ErrWrongLocation, origin)
	}

	def, err := e.defs.DefinitionByID(ctx, inst.DefinitionID)
	if err != nil {
		return err
	}

	remaining, merged, err := e.mergeAcross(s, inst, def, dst)
	if err != nil {
		return err
	}
	if remaining == 0 {
		s.clearEquippedOrigin(origin)
		s.WS.Delete(inst.ID)
		return nil
	}
	if remaining != inst.Quantity {
		inst.Quantity = remaining
		s.WS.Touch(inst.ID)
	}

	idx, ok := e.firstPlaceable(ctx, inst.DefinitionID, dst)
	if ok {
		s.clearEquippedOrigin(origin)
		e.place(s, inst, dst, idx)
		return nil
	}
	if merged {
		return nil // partial success, remainder stays where it was
	}
	return domain.ErrContainerFull
}

// QuickMoveOut auto-places a contained stack into the player's inventory and
// hotbar: greedy merge across the inventory then the hotbar, then the first
// empty inventory slot (hotbar as fallback) for the remainder. The container
// slot is cleared only on full relocation.
func (e *Engine) QuickMoveOut(ctx context.Context, s *Session, src Container, slot int) error {
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

	def, err := e.defs.DefinitionByID(ctx, inst.DefinitionID)
	if err != nil {
		return err
	}

	srcBody, fromEquipment := e.equipmentBody(src, slot)

	original := inst.Quantity
	remaining := original
	merged := false
	for _, panel := range []*PlayerPanel{s.Inventory, s.Hotbar} {
		inst.Quantity = remaining
		var m bool
		remaining, m, err = e.mergeAcross(s, inst, def, panel)
		if err != nil {
			return err
		}
		merged = merged || m
		if remaining == 0 {
			break
		}
	}

	if remaining == 0 {
		s.WS.Delete(inst.ID)
		src.Clear(slot)
		if fromEquipment {
			s.noteUnequip(srcBody)
		}
		return nil
	}
	inst.Quantity = remaining
	if remaining != original {
		s.WS.Touch(inst.ID)
	}

	for _, panel := range []*PlayerPanel{s.Inventory, s.Hotbar} {
		if idx, ok := firstEmptySlot(panel); ok {
			src.Clear(slot)
			inst.Owner = s.WS.Owner
			inst.Location = panel.LocationFor(idx)
			s.WS.Touch(inst.ID)
			if fromEquipment {
				s.noteUnequip(srcBody)
			}
			return nil
		}
	}
	if merged {
		return nil // remainder stays in the container slot
	}
	return domain.ErrInventoryFull
}

// firstPlaceable finds the first empty slot an instance may legally occupy.
// Plain containers accept anything; equipment requires slot compatibility.
func (e *Engine) firstPlaceable(ctx context.Context, definitionID int, c Container) (int, bool) {
	eq, isEquipment := c.(*Equipment)
	if !isEquipment {
		return firstEmptySlot(c)
	}
	def, err := e.defs.DefinitionByID(ctx, definitionID)
	if err != nil {
		return -1, false
	}
	for i := 0; i < eq.NumSlots(); i++ {
		if _, occupied := eq.At(i); occupied {
			continue
		}
		body, _ := BodyAt(i)
		if CheckEquip(def, body) == nil {
			return i, true
		}
	}
	return -1, false
}
