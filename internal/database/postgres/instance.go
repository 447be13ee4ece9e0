package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hollowpine/frontier/internal/domain"
)

const (
	queryGetInstance = `
		SELECT instance_id, owner, definition_id, quantity, location
		FROM item_instances
		WHERE instance_id = $1`

	queryGetInstancesByOwner = `
		SELECT instance_id, owner, definition_id, quantity, location
		FROM item_instances
		WHERE owner = $1
		ORDER BY instance_id`

	queryInsertInstance = `
		INSERT INTO item_instances (instance_id, owner, definition_id, quantity, location)
		VALUES ($1, $2, $3, $4, $5)`

	queryUpdateInstance = `
		UPDATE item_instances
		SET owner = $2, definition_id = $3, quantity = $4, location = $5
		WHERE instance_id = $1`

	queryDeleteInstance = `
		DELETE FROM item_instances
		WHERE instance_id = $1`
)

func scanInstance(row pgx.Row) (*domain.ItemInstance, error) {
	var inst domain.ItemInstance
	err := row.Scan(&inst.ID, &inst.Owner, &inst.DefinitionID, &inst.Quantity, &inst.Location)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (q *queries) GetInstance(ctx context.Context, instanceID string) (*domain.ItemInstance, error) {
	inst, err := scanInstance(q.db.QueryRow(ctx, queryGetInstance, instanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, instanceID)
		}
		return nil, fmt.Errorf(ErrMsgGetInstanceFailed, err)
	}
	return inst, nil
}

func (q *queries) GetInstancesByOwner(ctx context.Context, owner string) ([]domain.ItemInstance, error) {
	rows, err := q.db.Query(ctx, queryGetInstancesByOwner, owner)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListInstancesFailed, err)
	}
	defer rows.Close()

	var instances []domain.ItemInstance
	for rows.Next() {
		var inst domain.ItemInstance
		if err := rows.Scan(&inst.ID, &inst.Owner, &inst.DefinitionID, &inst.Quantity, &inst.Location); err != nil {
			return nil, fmt.Errorf(ErrMsgListInstancesFailed, err)
		}
		instances = append(instances, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListInstancesFailed, err)
	}
	return instances, nil
}

func (q *queries) InsertInstance(ctx context.Context, inst *domain.ItemInstance) error {
	_, err := q.db.Exec(ctx, queryInsertInstance,
		inst.ID, inst.Owner, inst.DefinitionID, inst.Quantity, inst.Location)
	if err != nil {
		return fmt.Errorf(ErrMsgInsertInstanceFailed, err)
	}
	return nil
}

func (q *queries) UpdateInstance(ctx context.Context, inst *domain.ItemInstance) error {
	tag, err := q.db.Exec(ctx, queryUpdateInstance,
		inst.ID, inst.Owner, inst.DefinitionID, inst.Quantity, inst.Location)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateInstanceFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, inst.ID)
	}
	return nil
}

func (q *queries) DeleteInstance(ctx context.Context, instanceID string) error {
	tag, err := q.db.Exec(ctx, queryDeleteInstance, instanceID)
	if err != nil {
		return fmt.Errorf(ErrMsgDeleteInstanceFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, instanceID)
	}
	return nil
}
