package inventory

import (
	"github.com/hollowpine/frontier/internal/domain"
)

// Container is the uniform capability over heterogeneous fixed-size slot
// arrays: world containers, the equipment set, and the player's own inventory
// and hotbar all expose the same addressing surface to the engine.
type Container interface {
	NumSlots() int
	// At returns the slot's cached (instance, definition) pair, or ok=false
	// when the slot is vacant.
	At(index int) (domain.SlotRef, bool)
	// Put writes the slot cache entry. The engine is responsible for keeping
	// the referenced instance's Location in step via LocationFor.
	Put(index int, ref domain.SlotRef)
	Clear(index int)
	// LocationFor returns the Location an instance occupying the given slot
	// must carry.
	LocationFor(index int) domain.Location
}

// firstEmptySlot returns the lowest vacant slot index, scanning left to right
func firstEmptySlot(c Container) (int, bool) {
	for i := 0; i < c.NumSlots(); i++ {
		if _, ok := c.At(i); !ok {
			return i, true
		}
	}
	return -1, false
}

// Grid adapts a persisted container record to the Container capability. The
// record's flat slot array is the authoritative placement pointer for every
// instance it references.
type Grid struct {
	rec *domain.ContainerRecord
}

// NewGrid wraps a container record
func NewGrid(rec *domain.ContainerRecord) *Grid {
	return &Grid{rec: rec}
}

// Record returns the underlying record for persistence
func (g *Grid) Record() *domain.ContainerRecord { return g.rec }

// Kind returns the container kind
func (g *Grid) Kind() domain.ContainerKind { return g.rec.Kind }

// ID returns the container identity
func (g *Grid) ID() string { return g.rec.ID }

func (g *Grid) NumSlots() int { return len(g.rec.Slots) }

func (g *Grid) At(index int) (domain.SlotRef, bool) {
	if index < 0 || index >= len(g.rec.Slots) || g.rec.Slots[index] == nil {
		return domain.SlotRef{}, false
	}
	return *g.rec.Slots[index], true
}

func (g *Grid) Put(index int, ref domain.SlotRef) {
	g.rec.Slots[index] = &ref
}

func (g *Grid) Clear(index int) {
	g.rec.Slots[index] = nil
}

func (g *Grid) LocationFor(index int) domain.Location {
	return domain.ContainedLocation(g.rec.Kind, g.rec.ID, index)
}

// PlayerPanel is a Container view over the owner's inventory or hotbar. Unlike
// world containers there is no slot cache: the instances' own Location fields
// are the slots, so At scans the workspace and Put is satisfied by the
// engine's Location write.
type PlayerPanel struct {
	ws   *Workspace
	kind domain.LocationKind // LocationInventory or LocationHotbar
	size int
}

// NewInventoryPanel returns the Container view of the owner's main inventory
func NewInventoryPanel(ws *Workspace) *PlayerPanel {
	return &PlayerPanel{ws: ws, kind: domain.LocationInventory, size: domain.PlayerInventorySlots}
}

// NewHotbarPanel returns the Container view of the owner's hotbar
func NewHotbarPanel(ws *Workspace) *PlayerPanel {
	return &PlayerPanel{ws: ws, kind: domain.LocationHotbar, size: domain.PlayerHotbarSlots}
}

func (p *PlayerPanel) NumSlots() int { return p.size }

func (p *PlayerPanel) At(index int) (domain.SlotRef, bool) {
	if index < 0 || index >= p.size {
		return domain.SlotRef{}, false
	}
	inst := p.ws.instanceAt(p.kind, index)
	if inst == nil {
		return domain.SlotRef{}, false
	}
	return domain.SlotRef{InstanceID: inst.ID, DefinitionID: inst.DefinitionID}, true
}

// Put is a no-op: the engine's Location write on the instance is the
// authoritative placement for player-side slots.
func (p *PlayerPanel) Put(index int, ref domain.SlotRef) {}

func (p *PlayerPanel) Clear(index int) {
	if inst := p.ws.instanceAt(p.kind, index); inst != nil {
		inst.Location = domain.FreeLocation()
		p.ws.Touch(inst.ID)
	}
}

func (p *PlayerPanel) LocationFor(index int) domain.Location {
	if p.kind == domain.LocationHotbar {
		return domain.HotbarLocation(index)
	}
	return domain.InventoryLocation(index)
}
