package queries

import (
	"errors"
	"time"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/guard"
)

var ErrGetActiveTransportTasksQueryIsNotConstructed = errors.New(
	"GetActiveTransportTasksQuery must be created via NewGetActiveTransportTasksQuery constructor",
)

// GetActiveTransportTasksQuery retrieves all tasks that still hold
// resources: scheduled, in transit or delayed. Backs the coordinator's
// monitoring view.
type GetActiveTransportTasksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveTransportTasksQuery creates a parameterless query for all
// active transport tasks.
func NewGetActiveTransportTasksQuery() GetActiveTransportTasksQuery {
	return GetActiveTransportTasksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveTransportTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveTransportTasksQueryIsNotConstructed)
}

// GetActiveTransportTasksQueryResponse is one active task row, joined with
// the batch's tracking code so the list is scannable without a second fetch.
type GetActiveTransportTasksQueryResponse struct {
	ID            kernel.UUID
	BatchID       kernel.UUID
	TrackingCode  string
	Status        string
	ScheduledDate time.Time
	Pickup        string
	Delivery      string
	DriverID      *kernel.UUID
	VehicleID     *kernel.UUID
}
