package inventory

import (
	"github.com/hollowpine/frontier/internal/domain"
)

// Equipment adapts a player's equipment record to the Container capability.
// Slots are addressed by BodySlot through a fixed enum-to-index mapping; the
// main hand is always the last index and accepts any equippable item.
type Equipment struct {
	rec *domain.ContainerRecord
}

// NewEquipment wraps an equipment container record
func NewEquipment(rec *domain.ContainerRecord) *Equipment {
	return &Equipment{rec: rec}
}

// Record returns the underlying record for persistence
func (e *Equipment) Record() *domain.ContainerRecord { return e.rec }

// Owner returns the wearing player
func (e *Equipment) Owner() string { return e.rec.Owner }

// SlotIndex maps a body slot to its index in the equipment record
func SlotIndex(body domain.BodySlot) (int, bool) {
	for i, b := range domain.BodySlotOrder {
		if b == body {
			return i, true
		}
	}
	return -1, false
}

// BodyAt maps a slot index back to its body slot
func BodyAt(index int) (domain.BodySlot, bool) {
	if index < 0 || index >= len(domain.BodySlotOrder) {
		return "", false
	}
	return domain.BodySlotOrder[index], true
}

func (e *Equipment) NumSlots() int { return len(e.rec.Slots) }

func (e *Equipment) At(index int) (domain.SlotRef, bool) {
	if index < 0 || index >= len(e.rec.Slots) || e.rec.Slots[index] == nil {
		return domain.SlotRef{}, false
	}
	return *e.rec.Slots[index], true
}

func (e *Equipment) Put(index int, ref domain.SlotRef) {
	e.rec.Slots[index] = &ref
}

func (e *Equipment) Clear(index int) {
	e.rec.Slots[index] = nil
}

func (e *Equipment) LocationFor(index int) domain.Location {
	body, _ := BodyAt(index)
	return domain.EquippedLocation(body)
}

// AtBody returns the occupant of a named body slot
func (e *Equipment) AtBody(body domain.BodySlot) (domain.SlotRef, bool) {
	idx, ok := SlotIndex(body)
	if !ok {
		return domain.SlotRef{}, false
	}
	return e.At(idx)
}

// CheckEquip validates that a definition may occupy a body slot. The main
// hand accepts any equippable item; named body slots require the definition's
// declared equip slot to match.
func CheckEquip(def *domain.ItemDefinition, body domain.BodySlot) error {
	if !def.Equippable {
		return domain.ErrNotEquippable
	}
	if body == domain.MainHand {
		return nil
	}
	if def.EquipSlot == nil || *def.EquipSlot != body {
		return domain.ErrWrongEquipSlot
	}
	return nil
}
