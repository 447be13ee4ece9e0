package domain

// Category classifies an item definition for filtering and handler dispatch
type Category string

const (
	CategoryTool       Category = "TOOL"
	CategoryMaterial   Category = "MATERIAL"
	CategoryPlaceable  Category = "PLACEABLE"
	CategoryArmor      Category = "ARMOR"
	CategoryConsumable Category = "CONSUMABLE"
)

// ValidCategories defines the accepted item categories
var ValidCategories = map[Category]bool{
	CategoryTool:       true,
	CategoryMaterial:   true,
	CategoryPlaceable:  true,
	CategoryArmor:      true,
	CategoryConsumable: true,
}

// ItemDefinition is a catalog entry describing a kind of item.
// Definitions are seeded once at world bootstrap and never mutated afterwards;
// every other component treats them as read-only.
type ItemDefinition struct {
	ID         int       `json:"item_id" db:"item_id"`
	Name       string    `json:"name" db:"name"` // unique, used as a semantic key by callers
	Category   Category  `json:"category" db:"category"`
	Stackable  bool      `json:"stackable" db:"stackable"`
	StackSize  int       `json:"stack_size" db:"stack_size"`
	Equippable bool      `json:"equippable" db:"equippable"`
	EquipSlot  *BodySlot `json:"equip_slot,omitempty" db:"equip_slot"` // Nullable: main-hand-only items have no body slot
}

// EffectiveStackSize returns the stack capacity for merge math.
// Non-stackable definitions always behave as capacity 1.
func (d *ItemDefinition) EffectiveStackSize() int {
	if !d.Stackable || d.StackSize < 1 {
		return 1
	}
	return d.StackSize
}
