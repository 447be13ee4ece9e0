package catalog

// Configuration file names
const (
	// ConfigFileName is the metadata key under which item sync state is stored
	ConfigFileName = "items.json"

	// ItemsSchemaPath is the JSON schema the items config must satisfy
	ItemsSchemaPath = "configs/schemas/items.schema.json"
)

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgReadForHashFailed    = "failed to read config file: %w"
)

// Validation error message fragments
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Database operation error messages
const (
	ErrMsgCheckFileChangeFailed = "failed to check if file changed: %w"
	ErrMsgGetExistingFailed     = "failed to get existing definitions: %w"
	ErrMsgUpdateDefFailed       = "failed to update definition '%s': %w"
	ErrMsgInsertDefFailed       = "failed to insert definition '%s': %w"
)

// Sync operation log messages
const (
	LogMsgConfigUnchanged      = "Items config file unchanged, skipping sync"
	LogMsgSyncCompleted        = "Items sync completed"
	LogMsgUpdatedDefinition    = "Updated item definition"
	LogMsgInsertedDefinition   = "Inserted item definition"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
)

// Format strings for error construction
const (
	ErrFmtItemAtIndexEmpty   = "%w: item at index %d has empty name"
	ErrFmtItemBadCategory    = "%w: item '%s' has unknown category '%s'"
	ErrFmtItemBadStackSize   = "%w: stackable item '%s' needs a stack_size of at least 2"
	ErrFmtItemStrayStackSize = "%w: non-stackable item '%s' must not set stack_size"
	ErrFmtItemBadEquipSlot   = "%w: item '%s' has unknown equip_slot '%s'"
	ErrFmtItemStrayEquipSlot = "%w: non-equippable item '%s' must not set equip_slot"
	ErrFmtItemStackEquip     = "%w: item '%s' cannot be both stackable and equippable"
)

// Cache configuration
const (
	// DefinitionCacheSize bounds the in-memory definition cache
	DefinitionCacheSize = 512
)
