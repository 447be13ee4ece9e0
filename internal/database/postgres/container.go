package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hollowpine/frontier/internal/domain"
)

const (
	queryGetContainer = `
		SELECT container_id, kind, owner, slots
		FROM containers
		WHERE kind = $1 AND container_id = $2`

	queryGetContainerByOwner = `
		SELECT container_id, kind, owner, slots
		FROM containers
		WHERE kind = $1 AND owner = $2`

	queryInsertContainer = `
		INSERT INTO containers (container_id, kind, owner, slots)
		VALUES ($1, $2, $3, $4)`

	queryUpdateContainer = `
		UPDATE containers
		SET owner = $3, slots = $4
		WHERE kind = $1 AND container_id = $2`

	queryDeleteContainer = `
		DELETE FROM containers
		WHERE kind = $1 AND container_id = $2`
)

func scanContainer(row pgx.Row) (*domain.ContainerRecord, error) {
	var rec domain.ContainerRecord
	err := row.Scan(&rec.ID, &rec.Kind, &rec.Owner, &rec.Slots)
	if err != nil {
		return nil, err
	}
	// Slot arrays are fixed-length per kind
	if len(rec.Slots) != rec.Kind.SlotCount() {
		normalized := make([]*domain.SlotRef, rec.Kind.SlotCount())
		copy(normalized, rec.Slots)
		rec.Slots = normalized
	}
	return &rec, nil
}

func (q *queries) GetContainer(ctx context.Context, kind domain.ContainerKind, containerID string) (*domain.ContainerRecord, error) {
	rec, err := scanContainer(q.db.QueryRow(ctx, queryGetContainer, kind, containerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrContainerNotFound, kind, containerID)
		}
		return nil, fmt.Errorf(ErrMsgGetContainerFailed, err)
	}
	return rec, nil
}

func (q *queries) GetContainerByOwner(ctx context.Context, kind domain.ContainerKind, owner string) (*domain.ContainerRecord, error) {
	rec, err := scanContainer(q.db.QueryRow(ctx, queryGetContainerByOwner, kind, owner))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s owned by %s", domain.ErrContainerNotFound, kind, owner)
		}
		return nil, fmt.Errorf(ErrMsgGetContainerFailed, err)
	}
	return rec, nil
}

func (q *queries) InsertContainer(ctx context.Context, rec *domain.ContainerRecord) error {
	_, err := q.db.Exec(ctx, queryInsertContainer, rec.ID, rec.Kind, rec.Owner, rec.Slots)
	if err != nil {
		return fmt.Errorf(ErrMsgInsertContainerFailed, err)
	}
	return nil
}

func (q *queries) UpdateContainer(ctx context.Context, rec *domain.ContainerRecord) error {
	tag, err := q.db.Exec(ctx, queryUpdateContainer, rec.Kind, rec.ID, rec.Owner, rec.Slots)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateContainerFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrContainerNotFound, rec.Kind, rec.ID)
	}
	return nil
}

func (q *queries) DeleteContainer(ctx context.Context, kind domain.ContainerKind, containerID string) error {
	tag, err := q.db.Exec(ctx, queryDeleteContainer, kind, containerID)
	if err != nil {
		return fmt.Errorf(ErrMsgDeleteContainerFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrContainerNotFound, kind, containerID)
	}
	return nil
}
