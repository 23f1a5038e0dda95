// Package audit contains the append-only audit trail entry. Every
// state-changing operation writes one entry inside the same transaction as
// the change it records.
package audit

import (
	"errors"
	"time"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/pkg/errs"
	"agrotrace/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created via
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New(
	"Entry must be created via NewEntry or RestoreEntry")

// Entry records who did what to which entity, with the before and after
// status where the operation changed one.
type Entry struct {
	id         kernel.UUID
	actorID    kernel.UUID
	actorRole  staff.Role
	action     string
	entityKind string
	entityID   kernel.UUID
	fromStatus string
	toStatus   string
	details    string
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates an audit entry. fromStatus and toStatus may be empty for
// operations that do not move a status, such as reporting an issue.
func NewEntry(
	id kernel.UUID,
	actorID kernel.UUID,
	actorRole staff.Role,
	action string,
	entityKind string,
	entityID kernel.UUID,
	fromStatus string,
	toStatus string,
	details string,
	occurredAt time.Time,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(), actorID.Validate(), actorRole.Validate(), entityID.Validate(),
	); err != nil {
		return nil, err
	}
	if action == "" {
		return nil, errs.NewValueIsRequiredError("action")
	}
	if entityKind == "" {
		return nil, errs.NewValueIsRequiredError("entityKind")
	}

	return &Entry{
		id:         id,
		actorID:    actorID,
		actorRole:  actorRole,
		action:     action,
		entityKind: entityKind,
		entityID:   entityID,
		fromStatus: fromStatus,
		toStatus:   toStatus,
		details:    details,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	actorID kernel.UUID,
	actorRole staff.Role,
	action string,
	entityKind string,
	entityID kernel.UUID,
	fromStatus string,
	toStatus string,
	details string,
	occurredAt time.Time,
) (*Entry, error) {
	return NewEntry(id, actorID, actorRole, action, entityKind, entityID,
		fromStatus, toStatus, details, occurredAt)
}

// Validate ensures the entry was built through a constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID { return e.id }

// ActorID returns who performed the operation.
func (e *Entry) ActorID() kernel.UUID { return e.actorID }

// ActorRole returns the actor's role at the time of the operation.
func (e *Entry) ActorRole() staff.Role { return e.actorRole }

// Action returns the operation name.
func (e *Entry) Action() string { return e.action }

// EntityKind returns the kind of entity the operation touched.
func (e *Entry) EntityKind() string { return e.entityKind }

// EntityID returns the identifier of the touched entity.
func (e *Entry) EntityID() kernel.UUID { return e.entityID }

// FromStatus returns the status before the operation, or empty.
func (e *Entry) FromStatus() string { return e.fromStatus }

// ToStatus returns the status after the operation, or empty.
func (e *Entry) ToStatus() string { return e.toStatus }

// Details returns free-form context, such as a cancellation reason.
func (e *Entry) Details() string { return e.details }

// OccurredAt returns when the operation happened.
func (e *Entry) OccurredAt() time.Time { return e.occurredAt }
