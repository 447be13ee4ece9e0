package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hollowpine/frontier/internal/domain"
)

// Grant creates qty units of a definition in the player's inventory. Existing
// player-side stacks are topped up first, inventory before hotbar, then the
// remainder is chunked into fresh stacks in empty inventory slots. The whole
// grant is all-or-nothing: if the remainder does not fit, nothing is changed
// and ErrInventoryFull is returned.
func (e *Engine) Grant(ctx context.Context, s *Session, itemName string, qty int) ([]*domain.ItemInstance, error) {
	if qty <= 0 || qty > domain.MaxTransactionQuantity {
		return nil, fmt.Errorf("%w: quantity %d", domain.ErrInvalidInput, qty)
	}
	def, err := e.defs.DefinitionByName(ctx, itemName)
	if err != nil {
		return nil, err
	}

	capacity := def.EffectiveStackSize()
	remaining := qty

	// Plan first against a copy of the panel state so a failure changes
	// nothing. topUps maps instance ID to added quantity.
	type topUp struct {
		inst *domain.ItemInstance
		add  int
	}
	var topUps []topUp
	if def.Stackable {
		for _, panel := range []*PlayerPanel{s.Inventory, s.Hotbar} {
			for i := 0; i < panel.NumSlots() && remaining > 0; i++ {
				occ, occupied := panel.At(i)
				if !occupied || occ.DefinitionID != def.ID {
					continue
				}
				inst, instErr := e.occupant(s, occ)
				if instErr != nil {
					return nil, instErr
				}
				space := capacity - inst.Quantity
				if space <= 0 {
					continue
				}
				add := remaining
				if add > space {
					add = space
				}
				topUps = append(topUps, topUp{inst: inst, add: add})
				remaining -= add
			}
		}
	}

	stacksNeeded := (remaining + capacity - 1) / capacity
	freeSlots := emptySlots(s.Inventory)
	if stacksNeeded > len(freeSlots) {
		return nil, domain.ErrInventoryFull
	}

	var granted []*domain.ItemInstance
	for _, t := range topUps {
		t.inst.Quantity += t.add
		s.WS.Touch(t.inst.ID)
		granted = append(granted, t.inst)
	}
	for i := 0; i < stacksNeeded; i++ {
		amount := capacity
		if remaining < capacity {
			amount = remaining
		}
		remaining -= amount
		inst := &domain.ItemInstance{
			ID:           uuid.NewString(),
			Owner:        s.WS.Owner,
			DefinitionID: def.ID,
			Quantity:     amount,
			Location:     s.Inventory.LocationFor(freeSlots[i]),
		}
		s.WS.Create(inst)
		granted = append(granted, inst)
	}
	return granted, nil
}

// Consume removes qty units of a definition from the player's inventory and
// hotbar, draining stacks left to right, inventory first. Fails with
// ErrInsufficientQuantity before touching anything if the player holds less
// than qty in total.
func (e *Engine) Consume(ctx context.Context, s *Session, itemName string, qty int) error {
	if qty <= 0 || qty > domain.MaxTransactionQuantity {
		return fmt.Errorf("%w: quantity %d", domain.ErrInvalidInput, qty)
	}
	def, err := e.defs.DefinitionByName(ctx, itemName)
	if err != nil {
		return err
	}

	var held []*domain.ItemInstance
	total := 0
	for _, panel := range []*PlayerPanel{s.Inventory, s.Hotbar} {
		for i := 0; i < panel.NumSlots(); i++ {
			occ, occupied := panel.At(i)
			if !occupied || occ.DefinitionID != def.ID {
				continue
			}
			inst, instErr := e.occupant(s, occ)
			if instErr != nil {
				return instErr
			}
			held = append(held, inst)
			total += inst.Quantity
		}
	}
	if total < qty {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientQuantity, total, qty)
	}

	remaining := qty
	for _, inst := range held {
		if remaining <= 0 {
			break
		}
		if inst.Quantity <= remaining {
			remaining -= inst.Quantity
			s.WS.Delete(inst.ID)
			continue
		}
		inst.Quantity -= remaining
		remaining = 0
		s.WS.Touch(inst.ID)
	}
	return nil
}

// emptySlots lists every empty slot index of a container in order
func emptySlots(c Container) []int {
	var free []int
	for i := 0; i < c.NumSlots(); i++ {
		if _, occupied := c.At(i); !occupied {
			free = append(free, i)
		}
	}
	return free
}
