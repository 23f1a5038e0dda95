package queries

import (
	"errors"
	"time"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/guard"
)

var ErrGetBatchTrailQueryIsNotConstructed = errors.New(
	"GetBatchTrailQuery must be created via NewGetBatchTrailQuery constructor",
)

// GetBatchTrailQuery retrieves the audit trail recorded against one crop
// batch, oldest first. This is the chain-of-custody view a tracking code
// resolves to.
type GetBatchTrailQuery struct {
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBatchTrailQuery creates a trail query for one batch.
func NewGetBatchTrailQuery(batchID kernel.UUID) (GetBatchTrailQuery, error) {
	if err := batchID.Validate(); err != nil {
		return GetBatchTrailQuery{}, err
	}
	return GetBatchTrailQuery{
		batchID: batchID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// BatchID returns the batch whose trail is being read.
func (q GetBatchTrailQuery) BatchID() kernel.UUID { return q.batchID }

// Validate ensures the query was created through the constructor.
func (q GetBatchTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchTrailQueryIsNotConstructed)
}

// GetBatchTrailQueryResponse is one audit row in the batch's history.
type GetBatchTrailQueryResponse struct {
	ID         kernel.UUID
	ActorID    kernel.UUID
	ActorRole  string
	Action     string
	FromStatus string
	ToStatus   string
	Details    string
	OccurredAt time.Time
}
