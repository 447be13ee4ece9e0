package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hollowpine/frontier/internal/domain"
	"github.com/hollowpine/frontier/internal/logger"
	"github.com/hollowpine/frontier/internal/repository"
	"github.com/hollowpine/frontier/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateName = errors.New("duplicate item name")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for item definitions
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Stackable  bool    `json:"stackable"`
	StackSize  int     `json:"stack_size,omitempty"`
	Equippable bool    `json:"equippable"`
	EquipSlot  *string `json:"equip_slot,omitempty"`
}

// Loader handles loading and validating the item catalog configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Definition, configPath string) (*SyncResult, error)
}

// SyncResult contains the result of syncing definitions to the database
type SyncResult struct {
	Inserted int
	Updated  int
	Skipped  int
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses an items JSON file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the catalog configuration for errors the schema cannot
// express: cross-field rules and duplicate names.
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		item := &config.Items[i]
		if err := l.validateDef(i, item, names); err != nil {
			return err
		}
	}
	return nil
}

func (l *catalogLoader) validateDef(index int, item *Def, names map[string]bool) error {
	if item.Name == "" {
		return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, index)
	}
	if names[item.Name] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateName, item.Name)
	}
	names[item.Name] = true

	if !domain.ValidCategories[domain.Category(item.Category)] {
		return fmt.Errorf(ErrFmtItemBadCategory, ErrInvalidConfig, item.Name, item.Category)
	}

	if item.Stackable {
		if item.StackSize < 2 {
			return fmt.Errorf(ErrFmtItemBadStackSize, ErrInvalidConfig, item.Name)
		}
		if item.Equippable {
			return fmt.Errorf(ErrFmtItemStackEquip, ErrInvalidConfig, item.Name)
		}
	} else if item.StackSize != 0 {
		return fmt.Errorf(ErrFmtItemStrayStackSize, ErrInvalidConfig, item.Name)
	}

	if item.EquipSlot != nil {
		if !item.Equippable {
			return fmt.Errorf(ErrFmtItemStrayEquipSlot, ErrInvalidConfig, item.Name)
		}
		if !domain.ValidBodySlots[domain.BodySlot(*item.EquipSlot)] {
			return fmt.Errorf(ErrFmtItemBadEquipSlot, ErrInvalidConfig, item.Name, *item.EquipSlot)
		}
	}
	return nil
}

// toDefinition maps a config entry to its domain form
func toDefinition(item Def) *domain.ItemDefinition {
	def := &domain.ItemDefinition{
		Name:       item.Name,
		Category:   domain.Category(item.Category),
		Stackable:  item.Stackable,
		StackSize:  item.StackSize,
		Equippable: item.Equippable,
	}
	if item.EquipSlot != nil {
		slot := domain.BodySlot(*item.EquipSlot)
		def.EquipSlot = &slot
	}
	return def
}

// SyncToDatabase syncs the catalog configuration to the database idempotently.
// A content hash recorded in sync metadata lets unchanged configs skip the
// whole pass.
func (l *catalogLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Definition, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	hash, changed, err := hasFileChanged(ctx, repo, configPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
	}
	if !changed {
		log.Info(LogMsgConfigUnchanged, "path", configPath)
		return &SyncResult{}, nil
	}

	existing, err := repo.GetAllDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingFailed, err)
	}
	byName := make(map[string]*domain.ItemDefinition, len(existing))
	for i := range existing {
		byName[existing[i].Name] = &existing[i]
	}

	result := &SyncResult{}
	for _, item := range config.Items {
		if err := l.syncOne(ctx, repo, item, byName, result); err != nil {
			return nil, err
		}
	}

	meta := &domain.SyncMetadata{
		ConfigName:  ConfigFileName,
		ContentHash: hash,
		LastSynced:  time.Now().UTC(),
	}
	if err := repo.UpsertSyncMetadata(ctx, meta); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped)
	return result, nil
}

func (l *catalogLoader) syncOne(ctx context.Context, repo repository.Definition, item Def, byName map[string]*domain.ItemDefinition, result *SyncResult) error {
	log := logger.FromContext(ctx)

	def := toDefinition(item)
	existing, ok := byName[item.Name]
	if !ok {
		id, err := repo.InsertDefinition(ctx, def)
		if err != nil {
			return fmt.Errorf(ErrMsgInsertDefFailed, item.Name, err)
		}
		result.Inserted++
		log.Info(LogMsgInsertedDefinition, "name", item.Name, "id", id)
		return nil
	}

	if definitionsEqual(existing, def) {
		result.Skipped++
		return nil
	}
	if err := repo.UpdateDefinition(ctx, existing.ID, def); err != nil {
		return fmt.Errorf(ErrMsgUpdateDefFailed, item.Name, err)
	}
	result.Updated++
	log.Info(LogMsgUpdatedDefinition, "name", item.Name, "id", existing.ID)
	return nil
}

func definitionsEqual(a, b *domain.ItemDefinition) bool {
	if a.Category != b.Category || a.Stackable != b.Stackable ||
		a.StackSize != b.StackSize || a.Equippable != b.Equippable {
		return false
	}
	switch {
	case a.EquipSlot == nil && b.EquipSlot == nil:
		return true
	case a.EquipSlot == nil || b.EquipSlot == nil:
		return false
	default:
		return *a.EquipSlot == *b.EquipSlot
	}
}

// hasFileChanged reports whether the config content differs from the last
// synced hash. Returns the current hash either way.
func hasFileChanged(ctx context.Context, repo repository.Definition, configPath string) (string, bool, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", false, fmt.Errorf(ErrMsgReadForHashFailed, err)
	}
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	meta, err := repo.GetSyncMetadata(ctx, ConfigFileName)
	if err != nil {
		// First sync, no metadata yet
		return hash, true, nil
	}
	return hash, meta.ContentHash != hash, nil
}
