package inventory

import (
	"github.com/google/uuid"

	"github.com/hollowpine/frontier/internal/domain"
)

const (
	defWood   = 1
	defStone  = 2
	defAxe    = 3
	defHelmet = 4
	defStew   = 5
)

func testDefs() *FakeDefinitions {
	head := domain.BodySlotHead
	return NewFakeDefinitions(
		domain.ItemDefinition{ID: defWood, Name: "wood", Category: domain.CategoryMaterial, Stackable: true, StackSize: 50},
		domain.ItemDefinition{ID: defStone, Name: "stone", Category: domain.CategoryMaterial, Stackable: true, StackSize: 50},
		domain.ItemDefinition{ID: defAxe, Name: "axe", Category: domain.CategoryTool, Equippable: true},
		domain.ItemDefinition{ID: defHelmet, Name: "helmet", Category: domain.CategoryArmor, Equippable: true, EquipSlot: &head},
		domain.ItemDefinition{ID: defStew, Name: "stew", Category: domain.CategoryConsumable, Stackable: true, StackSize: 10},
	)
}

func testEngine() *Engine {
	return NewEngine(testDefs())
}

func newTestSession(owner string, instances ...domain.ItemInstance) *Session {
	ws := NewWorkspace(owner, instances)
	equip := domain.NewContainerRecord(uuid.NewString(), domain.ContainerEquipment, owner)
	return NewSession(ws, equip)
}

func newStorageBox() *Grid {
	return NewGrid(domain.NewContainerRecord(uuid.NewString(), domain.ContainerStorageBox, ""))
}

// putInGrid places an instance into a grid slot and registers it with the
// session, mirroring what loading a persisted container does.
func putInGrid(s *Session, g *Grid, slot int, inst *domain.ItemInstance) {
	inst.Location = g.LocationFor(slot)
	g.Put(slot, domain.SlotRef{InstanceID: inst.ID, DefinitionID: inst.DefinitionID})
	if s.WS.Instance(inst.ID) == nil {
		s.WS.Add(inst)
	}
}

func invItem(owner string, id string, def, qty, slot int) domain.ItemInstance {
	return domain.ItemInstance{
		ID:           id,
		Owner:        owner,
		DefinitionID: def,
		Quantity:     qty,
		Location:     domain.InventoryLocation(slot),
	}
}

func hotbarItem(owner string, id string, def, qty, slot int) domain.ItemInstance {
	return domain.ItemInstance{
		ID:           id,
		Owner:        owner,
		DefinitionID: def,
		Quantity:     qty,
		Location:     domain.HotbarLocation(slot),
	}
}

// totalQuantity sums a definition's quantity across the whole session,
// workspace instances only.
func totalQuantity(s *Session, def int) int {
	total := 0
	for i := 0; i < s.Inventory.NumSlots(); i++ {
		if ref, ok := s.Inventory.At(i); ok && ref.DefinitionID == def {
			total += s.WS.Instance(ref.InstanceID).Quantity
		}
	}
	for i := 0; i < s.Hotbar.NumSlots(); i++ {
		if ref, ok := s.Hotbar.At(i); ok && ref.DefinitionID == def {
			total += s.WS.Instance(ref.InstanceID).Quantity
		}
	}
	return total
}

func gridQuantity(s *Session, g *Grid, def int) int {
	total := 0
	for i := 0; i < g.NumSlots(); i++ {
		if ref, ok := g.At(i); ok && ref.DefinitionID == def {
			total += s.WS.Instance(ref.InstanceID).Quantity
		}
	}
	return total
}
