package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hollowpine/frontier/internal/domain"
)

const (
	queryGetAllDefinitions = `
		SELECT item_id, name, category, stackable, stack_size, equippable, equip_slot
		FROM item_definitions
		ORDER BY item_id`

	queryGetDefinitionByID = `
		SELECT item_id, name, category, stackable, stack_size, equippable, equip_slot
		FROM item_definitions
		WHERE item_id = $1`

	queryGetDefinitionByName = `
		SELECT item_id, name, category, stackable, stack_size, equippable, equip_slot
		FROM item_definitions
		WHERE name = $1`

	queryInsertDefinition = `
		INSERT INTO item_definitions (name, category, stackable, stack_size, equippable, equip_slot)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING item_id`

	queryUpdateDefinition = `
		UPDATE item_definitions
		SET name = $2, category = $3, stackable = $4, stack_size = $5, equippable = $6, equip_slot = $7
		WHERE item_id = $1`

	queryGetSyncMetadata = `
		SELECT config_name, content_hash, last_synced
		FROM sync_metadata
		WHERE config_name = $1`

	queryUpsertSyncMetadata = `
		INSERT INTO sync_metadata (config_name, content_hash, last_synced)
		VALUES ($1, $2, $3)
		ON CONFLICT (config_name)
		DO UPDATE SET content_hash = EXCLUDED.content_hash, last_synced = EXCLUDED.last_synced`
)

// DefinitionRepo is the pgx-backed implementation of repository.Definition
type DefinitionRepo struct {
	db *pgxpool.Pool
}

// NewDefinitionRepo creates a definition repository over a connection pool
func NewDefinitionRepo(db *pgxpool.Pool) *DefinitionRepo {
	return &DefinitionRepo{db: db}
}

func scanDefinition(row pgx.Row) (*domain.ItemDefinition, error) {
	var def domain.ItemDefinition
	var equipSlot *string
	err := row.Scan(&def.ID, &def.Name, &def.Category, &def.Stackable, &def.StackSize, &def.Equippable, &equipSlot)
	if err != nil {
		return nil, err
	}
	if equipSlot != nil {
		slot := domain.BodySlot(*equipSlot)
		def.EquipSlot = &slot
	}
	return &def, nil
}

func equipSlotParam(def *domain.ItemDefinition) *string {
	if def.EquipSlot == nil {
		return nil
	}
	s := string(*def.EquipSlot)
	return &s
}

// GetAllDefinitions returns every catalog definition
func (r *DefinitionRepo) GetAllDefinitions(ctx context.Context) ([]domain.ItemDefinition, error) {
	rows, err := r.db.Query(ctx, queryGetAllDefinitions)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListDefinitionsFailed, err)
	}
	defer rows.Close()

	var defs []domain.ItemDefinition
	for rows.Next() {
		var def domain.ItemDefinition
		var equipSlot *string
		if err := rows.Scan(&def.ID, &def.Name, &def.Category, &def.Stackable, &def.StackSize, &def.Equippable, &equipSlot); err != nil {
			return nil, fmt.Errorf(ErrMsgListDefinitionsFailed, err)
		}
		if equipSlot != nil {
			slot := domain.BodySlot(*equipSlot)
			def.EquipSlot = &slot
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListDefinitionsFailed, err)
	}
	return defs, nil
}

// GetDefinitionByID fetches a definition by its numeric ID
func (r *DefinitionRepo) GetDefinitionByID(ctx context.Context, id int) (*domain.ItemDefinition, error) {
	def, err := scanDefinition(r.db.QueryRow(ctx, queryGetDefinitionByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
		}
		return nil, fmt.Errorf(ErrMsgGetDefinitionFailed, err)
	}
	return def, nil
}

// GetDefinitionByName fetches a definition by its unique name
func (r *DefinitionRepo) GetDefinitionByName(ctx context.Context, name string) (*domain.ItemDefinition, error) {
	def, err := scanDefinition(r.db.QueryRow(ctx, queryGetDefinitionByName, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
		}
		return nil, fmt.Errorf(ErrMsgGetDefinitionFailed, err)
	}
	return def, nil
}

// InsertDefinition inserts a new definition and returns its assigned ID
func (r *DefinitionRepo) InsertDefinition(ctx context.Context, def *domain.ItemDefinition) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, queryInsertDefinition,
		def.Name, def.Category, def.Stackable, def.StackSize, def.Equippable, equipSlotParam(def)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInsertDefinitionFailed, err)
	}
	return id, nil
}

// UpdateDefinition rewrites an existing definition
func (r *DefinitionRepo) UpdateDefinition(ctx context.Context, id int, def *domain.ItemDefinition) error {
	tag, err := r.db.Exec(ctx, queryUpdateDefinition,
		id, def.Name, def.Category, def.Stackable, def.StackSize, def.Equippable, equipSlotParam(def))
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateDefinitionFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
	}
	return nil
}

// GetSyncMetadata fetches the recorded sync state for a config file
func (r *DefinitionRepo) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var meta domain.SyncMetadata
	err := r.db.QueryRow(ctx, queryGetSyncMetadata, configName).
		Scan(&meta.ConfigName, &meta.ContentHash, &meta.LastSynced)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no sync metadata for %s", configName)
		}
		return nil, fmt.Errorf(ErrMsgGetSyncMetadataFailed, err)
	}
	return &meta, nil
}

// UpsertSyncMetadata records the sync state for a config file
func (r *DefinitionRepo) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	_, err := r.db.Exec(ctx, queryUpsertSyncMetadata,
		metadata.ConfigName, metadata.ContentHash, metadata.LastSynced)
	if err != nil {
		return fmt.Errorf(ErrMsgUpsertSyncMetadataFailed, err)
	}
	return nil
}
