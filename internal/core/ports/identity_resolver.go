package ports

import (
	"context"

	"agrotrace/internal/core/domain/model/staff"
)

// IdentityResolver turns an opaque bearer token into a verified actor.
// Implementations must not interpret the token in the application core;
// verification lives entirely behind this port.
type IdentityResolver interface {
	// Resolve verifies the token and returns the actor it belongs to.
	// An unknown or expired token yields errs.ErrUnauthorized.
	Resolve(ctx context.Context, token string) (staff.Actor, error)
}
