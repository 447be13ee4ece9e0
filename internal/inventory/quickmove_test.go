package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowpine/frontier/internal/domain"
)

func TestQuickMoveIn(t *testing.T) {
	ctx := context.Background()
	e := testEngine()

	t.Run("merges across every matching stack in slot order", func(t *testing.T) {
		s := newTestSession("alice", invItem("alice", "w1", defWood, 25, 0))
		box := newStorageBox()
		putInGrid(s, box, 1, &domain.ItemInstance{ID: "w2", Owner: "alice", DefinitionID: defWood, Quantity: 40})
		putInGrid(s, box, 3, &domain.ItemInstance{ID: "w3", Owner: "alice", DefinitionID: defWood, Quantity: 35})

		err := e.QuickMoveIn(ctx, s, "w1", box)
		require.NoError(t, err)

		assert.Equal(t, 50, s.WS.Instance("w2").Quantity, "earlier slot fills first")
		assert.Equal(t, 50, s.WS.Instance("w3").Quantity)
		assert.Nil(t, s.WS.Instance("w1"), "fully distributed source is deleted")

		var refs int
		for i := 0; i < box.NumSlots(); i++ {
			if _, ok := box.At(i); ok {
				refs++
			}
		}
		assert.Equal(t, 2, refs, "no new slot consumed")
	})

	t.Run("places the remainder into the first empty slot", func(t *testing.T) {
		s := newTestSession("alice", invItem("alice", "w1", defWood, 30, 0))
		box := newStorageBox()
		putInGrid(s, box, 1, &domain.ItemInstance{ID: "w2", Owner: "alice", DefinitionID: defWood, Quantity: 45})

		err := e.QuickMoveIn(ctx, s, "w1", box)
		require.NoError(t, err)

		assert.Equal(t, 50, s.WS.Instance("w2").Quantity)
		inst := s.WS.Instance("w1")
		require.NotNil(t, inst)
		assert.Equal(t, 25, inst.Quantity)

		ref, ok := box.At(0)
		require.True(t, ok)
		assert.Equal(t, "w1", ref.InstanceID)
	})

	t.Run("partial merge with a full container is still a success", func(t *testing.T) {
		s := newTestSession("alice", invItem("alice", "w1", defWood, 30, 2))
		box := newStorageBox()
		for i := 0; i < box.NumSlots(); i++ {
			qty := 50
			if i == 0 {
				qty = 45
			}
			putInGrid(s, box, i, &domain.ItemInstance{ID: stackID("w", i), Owner: "alice", DefinitionID: defWood, Quantity: qty})
		}

		err := e.QuickMoveIn(ctx, s, "w1", box)
		require.NoError(t, err)

		inst := s.WS.Instance("w1")
		require.NotNil(t, inst)
		assert.Equal(t, 25, inst.Quantity)
		assert.Equal(t, domain.InventoryLocation(2), inst.Location, "leftover stays in its original slot")
	})

	t.Run("full container with no merge fails", func(t *testing.T) {
		s := newTestSession("alice", invItem("alice", "s1", defStone, 10, 0))
		box := newStorageBox()
		for i := 0; i < box.NumSlots(); i++ {
			putInGrid(s, box, i, &domain.ItemInstance{ID: stackID("w", i), Owner: "alice", DefinitionID: defWood, Quantity: 50})
		}

		err := e.QuickMoveIn(ctx, s, "s1", box)
		assert.ErrorIs(t, err, domain.ErrContainerFull)
		assert.Equal(t, domain.InventoryLocation(0), s.WS.Instance("s1").Location)
	})

	t.Run("non-stackable item takes an empty slot", func(t *testing.T) {
		s := newTestSession("alice", invItem("alice", "a1", defAxe, 1, 0))
		box := newStorageBox()
		putInGrid(s, box, 0, &domain.ItemInstance{ID: "a2", Owner: "alice", DefinitionID: defAxe, Quantity: 1})

		err := e.QuickMoveIn(ctx, s, "a1", box)
		require.NoError(t, err)

		ref, ok := box.At(1)
		require.True(t, ok)
		assert.Equal(t, "a1", ref.InstanceID)
	})
}

func TestQuickMoveOut(t *testing.T) {
	ctx := context.Background()
	e := testEngine()

	t.Run("merges into inventory before hotbar", func(t *testing.T) {
		s := newTestSession("alice",
			invItem("alice", "w2", defWood, 45, 0),
			hotbarItem("alice", "w3", defWood, 40, 0),
		)
		box := newStorageBox()
		putInGrid(s, box, 0, &domain.ItemInstance{ID: "w1", Owner: "alice", DefinitionID: defWood, Quantity: 10})

		err := e.QuickMoveOut(ctx, s, box, 0)
		require.NoError(t, err)

		assert.Equal(t, 50, s.WS.Instance("w2").Quantity)
		assert.Equal(t, 45, s.WS.Instance("w3").Quantity, "hotbar takes what inventory could not")
		assert.Nil(t, s.WS.Instance("w1"))
		_, occupied := box.At(0)
		assert.False(t, occupied)
	})

	t.Run("ownership transfers to the acting player", func(t *testing.T) {
		s := newTestSession("alice")
		box := newStorageBox()
		putInGrid(s, box, 0, &domain.ItemInstance{ID: "w1", Owner: "bob", DefinitionID: defWood, Quantity: 10})

		err := e.QuickMoveOut(ctx, s, box, 0)
		require.NoError(t, err)

		inst := s.WS.Instance("w1")
		assert.Equal(t, "alice", inst.Owner)
		assert.Equal(t, domain.InventoryLocation(0), inst.Location)
	})

	t.Run("remainder stays in the container when panels are full", func(t *testing.T) {
		s := newTestSession("alice", fullPanels("alice", 49)...)
		box := newStorageBox()
		putInGrid(s, box, 0, &domain.ItemInstance{ID: "x1", Owner: "alice", DefinitionID: defWood, Quantity: 50})

		err := e.QuickMoveOut(ctx, s, box, 0)
		require.NoError(t, err, "partial merge is a success")

		// 30 panel slots absorb one unit each, 20 stay behind
		inst := s.WS.Instance("x1")
		require.NotNil(t, inst)
		assert.Equal(t, domain.LocationContained, inst.Location.Kind, "leftover keeps its slot")
		assert.Equal(t, 20, inst.Quantity)
	})

	t.Run("no merge and no space fails", func(t *testing.T) {
		s := newTestSession("alice", fullPanels("alice", 50)...)
		box := newStorageBox()
		putInGrid(s, box, 0, &domain.ItemInstance{ID: "s1", Owner: "alice", DefinitionID: defStone, Quantity: 5})

		err := e.QuickMoveOut(ctx, s, box, 0)
		assert.ErrorIs(t, err, domain.ErrInventoryFull)

		ref, occupied := box.At(0)
		require.True(t, occupied)
		assert.Equal(t, "s1", ref.InstanceID)
	})
}

// stackID builds deterministic instance IDs for seeded grids
func stackID(prefix string, i int) string {
	return prefix + "-" + string(rune('a'+i))
}

// fullPanels fills every inventory and hotbar slot with wood stacks of qty
func fullPanels(owner string, qty int) []domain.ItemInstance {
	var out []domain.ItemInstance
	for i := 0; i < domain.PlayerInventorySlots; i++ {
		out = append(out, invItem(owner, stackID("inv", i), defWood, qty, i))
	}
	for i := 0; i < domain.PlayerHotbarSlots; i++ {
		out = append(out, hotbarItem(owner, stackID("hot", i), defWood, qty, i))
	}
	return out
}
