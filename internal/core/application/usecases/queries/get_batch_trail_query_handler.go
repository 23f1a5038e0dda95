package queries

import (
	"context"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBatchTrailQueryHandler reads the audit trail for one crop batch.
type GetBatchTrailQueryHandler struct {
	db *gorm.DB
}

// NewGetBatchTrailQueryHandler creates a handler for batch history reads.
func NewGetBatchTrailQueryHandler(db *gorm.DB) GetBatchTrailQueryHandler {
	return GetBatchTrailQueryHandler{db: db}
}

// Handle returns the batch's audit rows, oldest first.
func (h GetBatchTrailQueryHandler) Handle(
	ctx context.Context,
	query GetBatchTrailQuery,
) ([]GetBatchTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trail := make([]GetBatchTrailQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			actor_id,
			actor_role,
			action,
			from_status,
			to_status,
			details,
			occurred_at
		FROM audit_records
		WHERE entity_id = ?
		ORDER BY occurred_at, id
	`, query.BatchID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetBatchTrailQueryResponse
		var id, actorID uuid.UUID
		var role int

		err = rows.Scan(
			&id,
			&actorID,
			&role,
			&resp.Action,
			&resp.FromStatus,
			&resp.ToStatus,
			&resp.Details,
			&resp.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ActorID, err = kernel.UUIDFromBytes(actorID[:])
		if err != nil {
			return nil, err
		}
		resp.ActorRole = staff.Role(role).String()
		trail = append(trail, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trail, nil
}
