package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationString(t *testing.T) {
	t.Run("renders each variant", func(t *testing.T) {
		assert.Equal(t, "inventory[3]", InventoryLocation(3).String())
		assert.Equal(t, "hotbar[0]", HotbarLocation(0).String())
		assert.Equal(t, "equipped[chest]", EquippedLocation(BodySlotChest).String())
		assert.Equal(t, "storage_box:box-1[7]", ContainedLocation(ContainerStorageBox, "box-1", 7).String())
		assert.Equal(t, "free", FreeLocation().String())
	})
}

func TestLocationIsPlayerSide(t *testing.T) {
	assert.True(t, InventoryLocation(0).IsPlayerSide())
	assert.True(t, HotbarLocation(5).IsPlayerSide())
	assert.False(t, EquippedLocation(MainHand).IsPlayerSide())
	assert.False(t, ContainedLocation(ContainerCampfireFuel, "cf-1", 0).IsPlayerSide())
	assert.False(t, FreeLocation().IsPlayerSide())
}

func TestEffectiveStackSize(t *testing.T) {
	t.Run("stackable uses stack size", func(t *testing.T) {
		def := &ItemDefinition{Stackable: true, StackSize: 1000}
		assert.Equal(t, 1000, def.EffectiveStackSize())
	})

	t.Run("non-stackable is always 1", func(t *testing.T) {
		def := &ItemDefinition{Stackable: false, StackSize: 50}
		assert.Equal(t, 1, def.EffectiveStackSize())
	})

	t.Run("zero stack size clamps to 1", func(t *testing.T) {
		def := &ItemDefinition{Stackable: true, StackSize: 0}
		assert.Equal(t, 1, def.EffectiveStackSize())
	})
}

func TestContainerRecord(t *testing.T) {
	t.Run("new record has kind-sized empty slots", func(t *testing.T) {
		rec := NewContainerRecord("box-1", ContainerStorageBox, "alice")
		assert.Len(t, rec.Slots, StorageBoxSlots)
		assert.True(t, rec.IsEmpty())
	})

	t.Run("occupied record is not empty", func(t *testing.T) {
		rec := NewContainerRecord("cf-1", ContainerCampfireFuel, "alice")
		rec.Slots[2] = &SlotRef{InstanceID: "inst-1", DefinitionID: 4}
		assert.False(t, rec.IsEmpty())
	})

	t.Run("equipment order pins main hand last", func(t *testing.T) {
		assert.Equal(t, MainHand, BodySlotOrder[EquipmentSlots-1])
		assert.Len(t, BodySlotOrder, EquipmentSlots)
	})
}
