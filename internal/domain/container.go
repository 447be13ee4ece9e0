package domain

// ContainerKind identifies the concrete shape of a slot-cache backed container
type ContainerKind string

const (
	ContainerStorageBox   ContainerKind = "storage_box"
	ContainerCampfireFuel ContainerKind = "campfire_fuel"
	ContainerEquipment    ContainerKind = "equipment"
)

// ValidContainerKinds defines the accepted container kinds for API input
var ValidContainerKinds = map[ContainerKind]bool{
	ContainerStorageBox:   true,
	ContainerCampfireFuel: true,
	ContainerEquipment:    true,
}

// Slot counts per container shape
const (
	PlayerInventorySlots = 24
	PlayerHotbarSlots    = 6
	StorageBoxSlots      = 18
	CampfireFuelSlots    = 5
	EquipmentSlots       = 7 // six body slots plus main hand
)

// SlotCount returns the fixed slot count for a container kind
func (k ContainerKind) SlotCount() int {
	switch k {
	case ContainerStorageBox:
		return StorageBoxSlots
	case ContainerCampfireFuel:
		return CampfireFuelSlots
	case ContainerEquipment:
		return EquipmentSlots
	default:
		return 0
	}
}

// SlotRef is a container slot's cached pointer to the instance occupying it.
// The cached DefinitionID must always equal the referenced instance's
// DefinitionID; the slot-transfer engine maintains that equality.
type SlotRef struct {
	InstanceID   string `json:"instance_id"`
	DefinitionID int    `json:"definition_id"`
}

// ContainerRecord is the persisted form of a slot-cache backed container.
// Slots is a flat fixed-size array indexed directly by slot index; nil means
// the slot is empty. Stored as a JSONB column.
type ContainerRecord struct {
	ID    string        `json:"container_id"`
	Kind  ContainerKind `json:"kind"`
	Owner string        `json:"owner"` // placing player for world containers, wearer for equipment
	Slots []*SlotRef    `json:"slots"`
}

// NewContainerRecord creates an empty container record of the given kind
func NewContainerRecord(id string, kind ContainerKind, owner string) *ContainerRecord {
	return &ContainerRecord{
		ID:    id,
		Kind:  kind,
		Owner: owner,
		Slots: make([]*SlotRef, kind.SlotCount()),
	}
}

// IsEmpty reports whether every slot of the record is vacant
func (c *ContainerRecord) IsEmpty() bool {
	for _, ref := range c.Slots {
		if ref != nil {
			return false
		}
	}
	return true
}
