package staff

import (
	"errors"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor")

// Actor is a verified identity: who is calling, and in which role.
// It is what the identity resolver yields from an opaque token, and what the
// notification fan-out query returns as a recipient profile.
//
// WarehouseID is set only for warehouse managers and scopes them to one
// warehouse; Active distinguishes current staff from deactivated profiles
// that must never receive notifications.
type Actor struct {
	id          kernel.UUID
	role        Role
	warehouseID *kernel.UUID
	active      bool

	guard guard.ConstructorGuard
}

// NewActor creates a verified actor.
func NewActor(id kernel.UUID, role Role, warehouseID *kernel.UUID, active bool) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return Actor{}, err
		}
	}

	return Actor{
		id:          id,
		role:        role,
		warehouseID: warehouseID,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was built through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's user identifier.
func (a Actor) ID() kernel.UUID { return a.id }

// Role returns the actor's role.
func (a Actor) Role() Role { return a.role }

// WarehouseID returns the warehouse the actor is scoped to, or nil.
func (a Actor) WarehouseID() *kernel.UUID { return a.warehouseID }

// IsActive reports whether the profile is current staff.
func (a Actor) IsActive() bool { return a.active }
