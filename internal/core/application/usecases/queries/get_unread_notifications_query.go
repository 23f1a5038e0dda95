// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections with raw SQL;
// they never mutate state.
package queries

import (
	"errors"
	"time"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/guard"
)

var ErrGetUnreadNotificationsQueryIsNotConstructed = errors.New(
	"GetUnreadNotificationsQuery must be created via NewGetUnreadNotificationsQuery constructor",
)

// GetUnreadNotificationsQuery retrieves one recipient's unread notifications,
// newest first. Backs the notification inbox badge.
//
// Example:
//
//	query, err := NewGetUnreadNotificationsQuery(actor.ID())
//	if err != nil {
//	    return err
//	}
//	notifications, err := handler.Handle(ctx, query)
type GetUnreadNotificationsQuery struct {
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnreadNotificationsQuery creates a query scoped to one recipient.
func NewGetUnreadNotificationsQuery(recipientID kernel.UUID) (GetUnreadNotificationsQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return GetUnreadNotificationsQuery{}, err
	}
	return GetUnreadNotificationsQuery{
		recipientID: recipientID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RecipientID returns the recipient whose inbox is being read.
func (q GetUnreadNotificationsQuery) RecipientID() kernel.UUID { return q.recipientID }

// Validate ensures the query was created through the constructor.
func (q GetUnreadNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnreadNotificationsQueryIsNotConstructed)
}

// GetUnreadNotificationsQueryResponse is one unread notification row.
type GetUnreadNotificationsQueryResponse struct {
	ID           kernel.UUID
	Kind         string
	Title        string
	Message      string
	BatchID      string
	TrackingCode string
	TaskID       string
	CreatedAt    time.Time
}
