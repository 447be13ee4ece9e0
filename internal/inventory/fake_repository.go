package inventory

import (
	"context"
	"fmt"

	"github.com/hollowpine/frontier/internal/domain"
	"github.com/hollowpine/frontier/internal/repository"
)

// FakeStore is a stateful in-memory implementation of repository.Store for
// testing. It stores deep copies so engine mutations never leak into "persisted"
// state before commit, which lets tests assert transactional behavior.
//
// This fake must remain in the inventory package to avoid import cycles.
type FakeStore struct {
	instances  map[string]domain.ItemInstance
	containers map[string]domain.ContainerRecord // keyed by kind/id

	FailBegin  bool
	FailCommit bool
}

// NewFakeStore creates an empty fake store
func NewFakeStore() *FakeStore {
	return &FakeStore{
		instances:  make(map[string]domain.ItemInstance),
		containers: make(map[string]domain.ContainerRecord),
	}
}

func containerKey(kind domain.ContainerKind, id string) string {
	return string(kind) + "/" + id
}

// SeedInstance installs an instance directly, bypassing transactions
func (f *FakeStore) SeedInstance(inst domain.ItemInstance) {
	f.instances[inst.ID] = inst
}

// SeedContainer installs a container record directly, bypassing transactions
func (f *FakeStore) SeedContainer(rec domain.ContainerRecord) {
	f.containers[containerKey(rec.Kind, rec.ID)] = copyContainer(rec)
}

// InstanceCount reports how many instances are persisted
func (f *FakeStore) InstanceCount() int { return len(f.instances) }

// TotalQuantity sums the persisted quantity of one definition, for
// conservation assertions.
func (f *FakeStore) TotalQuantity(definitionID int) int {
	total := 0
	for _, inst := range f.instances {
		if inst.DefinitionID == definitionID {
			total += inst.Quantity
		}
	}
	return total
}

func copyContainer(rec domain.ContainerRecord) domain.ContainerRecord {
	out := rec
	out.Slots = make([]*domain.SlotRef, len(rec.Slots))
	for i, ref := range rec.Slots {
		if ref != nil {
			r := *ref
			out.Slots[i] = &r
		}
	}
	return out
}

func (f *FakeStore) GetInstance(ctx context.Context, instanceID string) (*domain.ItemInstance, error) {
	inst, ok := f.instances[instanceID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, instanceID)
	}
	out := inst
	return &out, nil
}

func (f *FakeStore) GetInstancesByOwner(ctx context.Context, owner string) ([]domain.ItemInstance, error) {
	var out []domain.ItemInstance
	for _, inst := range f.instances {
		if inst.Owner == owner {
			out = append(out, inst)
		}
	}
	return out, nil
}

func (f *FakeStore) InsertInstance(ctx context.Context, inst *domain.ItemInstance) error {
	if _, exists := f.instances[inst.ID]; exists {
		return fmt.Errorf("%w: duplicate instance %s", domain.ErrDatabaseError, inst.ID)
	}
	f.instances[inst.ID] = *inst
	return nil
}

func (f *FakeStore) UpdateInstance(ctx context.Context, inst *domain.ItemInstance) error {
	if _, exists := f.instances[inst.ID]; !exists {
		return fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, inst.ID)
	}
	f.instances[inst.ID] = *inst
	return nil
}

func (f *FakeStore) DeleteInstance(ctx context.Context, instanceID string) error {
	if _, exists := f.instances[instanceID]; !exists {
		return fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, instanceID)
	}
	delete(f.instances, instanceID)
	return nil
}

func (f *FakeStore) GetContainer(ctx context.Context, kind domain.ContainerKind, containerID string) (*domain.ContainerRecord, error) {
	rec, ok := f.containers[containerKey(kind, containerID)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrContainerNotFound, containerID)
	}
	out := copyContainer(rec)
	return &out, nil
}

func (f *FakeStore) GetContainerByOwner(ctx context.Context, kind domain.ContainerKind, owner string) (*domain.ContainerRecord, error) {
	for _, rec := range f.containers {
		if rec.Kind == kind && rec.Owner == owner {
			out := copyContainer(rec)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s for %s", domain.ErrContainerNotFound, kind, owner)
}

func (f *FakeStore) InsertContainer(ctx context.Context, rec *domain.ContainerRecord) error {
	key := containerKey(rec.Kind, rec.ID)
	if _, exists := f.containers[key]; exists {
		return fmt.Errorf("%w: duplicate container %s", domain.ErrDatabaseError, rec.ID)
	}
	f.containers[key] = copyContainer(*rec)
	return nil
}

func (f *FakeStore) UpdateContainer(ctx context.Context, rec *domain.ContainerRecord) error {
	key := containerKey(rec.Kind, rec.ID)
	if _, exists := f.containers[key]; !exists {
		return fmt.Errorf("%w: %s", domain.ErrContainerNotFound, rec.ID)
	}
	f.containers[key] = copyContainer(*rec)
	return nil
}

func (f *FakeStore) DeleteContainer(ctx context.Context, kind domain.ContainerKind, containerID string) error {
	key := containerKey(kind, containerID)
	if _, exists := f.containers[key]; !exists {
		return fmt.Errorf("%w: %s", domain.ErrContainerNotFound, containerID)
	}
	delete(f.containers, key)
	return nil
}

// fakeTx buffers writes against a snapshot and applies them on Commit, so an
// aborted operation leaves the store exactly as it was.
type fakeTx struct {
	store  *FakeStore
	shadow *FakeStore
	done   bool
}

func (f *FakeStore) BeginTx(ctx context.Context) (repository.Tx, error) {
	if f.FailBegin {
		return nil, fmt.Errorf("%w: begin refused", domain.ErrDatabaseError)
	}
	shadow := NewFakeStore()
	for id, inst := range f.instances {
		shadow.instances[id] = inst
	}
	for key, rec := range f.containers {
		shadow.containers[key] = copyContainer(rec)
	}
	return &fakeTx{store: f, shadow: shadow}, nil
}

func (t *fakeTx) GetInstance(ctx context.Context, instanceID string) (*domain.ItemInstance, error) {
	return t.shadow.GetInstance(ctx, instanceID)
}

func (t *fakeTx) GetInstancesByOwner(ctx context.Context, owner string) ([]domain.ItemInstance, error) {
	return t.shadow.GetInstancesByOwner(ctx, owner)
}

func (t *fakeTx) InsertInstance(ctx context.Context, inst *domain.ItemInstance) error {
	return t.shadow.InsertInstance(ctx, inst)
}

func (t *fakeTx) UpdateInstance(ctx context.Context, inst *domain.ItemInstance) error {
	return t.shadow.UpdateInstance(ctx, inst)
}

func (t *fakeTx) DeleteInstance(ctx context.Context, instanceID string) error {
	return t.shadow.DeleteInstance(ctx, instanceID)
}

func (t *fakeTx) GetContainer(ctx context.Context, kind domain.ContainerKind, containerID string) (*domain.ContainerRecord, error) {
	return t.shadow.GetContainer(ctx, kind, containerID)
}

func (t *fakeTx) GetContainerByOwner(ctx context.Context, kind domain.ContainerKind, owner string) (*domain.ContainerRecord, error) {
	return t.shadow.GetContainerByOwner(ctx, kind, owner)
}

func (t *fakeTx) InsertContainer(ctx context.Context, rec *domain.ContainerRecord) error {
	return t.shadow.InsertContainer(ctx, rec)
}

func (t *fakeTx) UpdateContainer(ctx context.Context, rec *domain.ContainerRecord) error {
	return t.shadow.UpdateContainer(ctx, rec)
}

func (t *fakeTx) DeleteContainer(ctx context.Context, kind domain.ContainerKind, containerID string) error {
	return t.shadow.DeleteContainer(ctx, kind, containerID)
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	if t.store.FailCommit {
		t.done = true
		return fmt.Errorf("%w: commit refused", domain.ErrDatabaseError)
	}
	t.store.instances = t.shadow.instances
	t.store.containers = t.shadow.containers
	t.done = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true
	return nil
}

// FakeDefinitions is an in-memory DefinitionSource for tests
type FakeDefinitions struct {
	byID   map[int]*domain.ItemDefinition
	byName map[string]*domain.ItemDefinition
}

// NewFakeDefinitions creates a definition source over a fixed catalog
func NewFakeDefinitions(defs ...domain.ItemDefinition) *FakeDefinitions {
	f := &FakeDefinitions{
		byID:   make(map[int]*domain.ItemDefinition),
		byName: make(map[string]*domain.ItemDefinition),
	}
	for i := range defs {
		def := defs[i]
		f.byID[def.ID] = &def
		f.byName[def.Name] = &def
	}
	return f
}

func (f *FakeDefinitions) DefinitionByID(ctx context.Context, id int) (*domain.ItemDefinition, error) {
	def, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
	}
	return def, nil
}

func (f *FakeDefinitions) DefinitionByName(ctx context.Context, name string) (*domain.ItemDefinition, error) {
	def, ok := f.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	return def, nil
}
