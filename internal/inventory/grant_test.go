package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowpine/frontier/internal/domain"
)

func TestGrant(t *testing.T) {
	ctx := context.Background()
	e := testEngine()

	t.Run("tops up existing stacks before opening new ones", func(t *testing.T) {
		s := newTestSession("alice",
			invItem("alice", "w1", defWood, 40, 0),
			hotbarItem("alice", "w2", defWood, 45, 1),
		)

		granted, err := e.Grant(ctx, s, "wood", 20)
		require.NoError(t, err)

		assert.Equal(t, 50, s.WS.Instance("w1").Quantity)
		assert.Equal(t, 50, s.WS.Instance("w2").Quantity)

		// 10 into w1, 5 into w2, 5 left over as a fresh stack
		created, _, _ := s.WS.Changes()
		require.Len(t, created, 1)
		assert.Equal(t, 5, created[0].Quantity)
		assert.Equal(t, domain.LocationInventory, created[0].Location.Kind)
		assert.Equal(t, 1, created[0].Location.Index, "first empty inventory slot")
		assert.Len(t, granted, 3)
	})

	t.Run("chunks a large grant into stack-size pieces", func(t *testing.T) {
		s := newTestSession("alice")

		granted, err := e.Grant(ctx, s, "wood", 120)
		require.NoError(t, err)
		require.Len(t, granted, 3)

		assert.Equal(t, 50, granted[0].Quantity)
		assert.Equal(t, 50, granted[1].Quantity)
		assert.Equal(t, 20, granted[2].Quantity)
		assert.Equal(t, 0, granted[0].Location.Index)
		assert.Equal(t, 1, granted[1].Location.Index)
		assert.Equal(t, 2, granted[2].Location.Index)
	})

	t.Run("grants non-stackable items one per slot", func(t *testing.T) {
		s := newTestSession("alice")

		granted, err := e.Grant(ctx, s, "axe", 3)
		require.NoError(t, err)
		require.Len(t, granted, 3)
		for _, inst := range granted {
			assert.Equal(t, 1, inst.Quantity)
		}
	})

	t.Run("fails whole when the remainder does not fit", func(t *testing.T) {
		s := newTestSession("alice", fullPanels("alice", 50)...)

		_, err := e.Grant(ctx, s, "wood", 10)
		assert.ErrorIs(t, err, domain.ErrInventoryFull)

		created, updated, deleted := s.WS.Changes()
		assert.Empty(t, created)
		assert.Empty(t, updated)
		assert.Empty(t, deleted)
	})

	t.Run("rejects an unknown item name", func(t *testing.T) {
		s := newTestSession("alice")

		_, err := e.Grant(ctx, s, "unobtainium", 1)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("rejects a non-positive quantity", func(t *testing.T) {
		s := newTestSession("alice")

		_, err := e.Grant(ctx, s, "wood", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects a quantity above the transaction cap", func(t *testing.T) {
		s := newTestSession("alice")

		_, err := e.Grant(ctx, s, "wood", domain.MaxTransactionQuantity+1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestConsume(t *testing.T) {
	ctx := context.Background()
	e := testEngine()

	t.Run("drains stacks left to right, inventory first", func(t *testing.T) {
		s := newTestSession("alice",
			invItem("alice", "w1", defWood, 10, 0),
			invItem("alice", "w2", defWood, 10, 5),
			hotbarItem("alice", "w3", defWood, 10, 0),
		)

		err := e.Consume(ctx, s, "wood", 15)
		require.NoError(t, err)

		assert.Nil(t, s.WS.Instance("w1"), "first stack is consumed whole")
		assert.Equal(t, 5, s.WS.Instance("w2").Quantity)
		assert.Equal(t, 10, s.WS.Instance("w3").Quantity, "hotbar untouched while inventory suffices")
	})

	t.Run("spans into the hotbar when inventory runs out", func(t *testing.T) {
		s := newTestSession("alice",
			invItem("alice", "w1", defWood, 10, 0),
			hotbarItem("alice", "w2", defWood, 10, 0),
		)

		err := e.Consume(ctx, s, "wood", 14)
		require.NoError(t, err)

		assert.Nil(t, s.WS.Instance("w1"))
		assert.Equal(t, 6, s.WS.Instance("w2").Quantity)
	})

	t.Run("fails without mutation when short", func(t *testing.T) {
		s := newTestSession("alice", invItem("alice", "w1", defWood, 10, 0))

		err := e.Consume(ctx, s, "wood", 11)
		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
		assert.Equal(t, 10, s.WS.Instance("w1").Quantity)

		_, updated, deleted := s.WS.Changes()
		assert.Empty(t, updated)
		assert.Empty(t, deleted)
	})

	t.Run("ignores contained stacks of the same definition", func(t *testing.T) {
		s := newTestSession("alice", invItem("alice", "w1", defWood, 5, 0))
		box := newStorageBox()
		putInGrid(s, box, 0, &domain.ItemInstance{ID: "w2", Owner: "alice", DefinitionID: defWood, Quantity: 50})

		err := e.Consume(ctx, s, "wood", 10)
		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	})
}
