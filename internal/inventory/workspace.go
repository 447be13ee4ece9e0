package inventory

import (
	"github.com/hollowpine/frontier/internal/domain"
)

// Workspace holds the item-instance records touched by one engine invocation.
// All mutation happens here in memory; the service persists the accumulated
// changes in a single transaction only when the whole operation succeeded, so
// any error leaves the stores untouched.
type Workspace struct {
	Owner string

	instances map[string]*domain.ItemInstance
	created   map[string]bool
	dirty     map[string]bool
	deleted   map[string]bool
}

// NewWorkspace builds a workspace for the acting owner from loaded instances
func NewWorkspace(owner string, instances []domain.ItemInstance) *Workspace {
	ws := &Workspace{
		Owner:     owner,
		instances: make(map[string]*domain.ItemInstance, len(instances)),
		created:   make(map[string]bool),
		dirty:     make(map[string]bool),
		deleted:   make(map[string]bool),
	}
	for i := range instances {
		inst := instances[i]
		ws.instances[inst.ID] = &inst
	}
	return ws
}

// Add registers an already-persisted instance loaded after construction,
// typically one referenced by a container slot but owned by someone else.
func (w *Workspace) Add(inst *domain.ItemInstance) {
	if _, exists := w.instances[inst.ID]; !exists {
		w.instances[inst.ID] = inst
	}
}

// Instance returns the live record for an ID, or nil
func (w *Workspace) Instance(id string) *domain.ItemInstance {
	return w.instances[id]
}

// Create registers a brand-new instance born inside this operation
func (w *Workspace) Create(inst *domain.ItemInstance) {
	w.instances[inst.ID] = inst
	w.created[inst.ID] = true
}

// Touch marks an instance as mutated so it is written back on commit
func (w *Workspace) Touch(id string) {
	if !w.created[id] {
		w.dirty[id] = true
	}
}

// Delete removes an instance. A created-then-deleted instance never reaches
// the store at all.
func (w *Workspace) Delete(id string) {
	delete(w.instances, id)
	delete(w.dirty, id)
	if w.created[id] {
		delete(w.created, id)
		return
	}
	w.deleted[id] = true
}

// Changes reports the accumulated instance mutations for persistence
func (w *Workspace) Changes() (created, updated []*domain.ItemInstance, deleted []string) {
	for id := range w.created {
		created = append(created, w.instances[id])
	}
	for id := range w.dirty {
		updated = append(updated, w.instances[id])
	}
	for id := range w.deleted {
		deleted = append(deleted, id)
	}
	return created, updated, deleted
}

// instanceAt finds the owner's instance occupying a player-side slot
func (w *Workspace) instanceAt(kind domain.LocationKind, index int) *domain.ItemInstance {
	for _, inst := range w.instances {
		if inst.Owner == w.Owner && inst.Location.Kind == kind && inst.Location.Index == index {
			return inst
		}
	}
	return nil
}
