package staffrepo

import (
	"context"
	"errors"

	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIdentityResolver implements ports.IdentityResolver against the staff
// table. A token maps to exactly one profile; deactivated profiles resolve
// but carry active=false, which the role gate rejects.
type GormIdentityResolver struct {
	db *gorm.DB
}

// NewGormIdentityResolver creates a token resolver backed by the staff table.
func NewGormIdentityResolver(db *gorm.DB) *GormIdentityResolver {
	return &GormIdentityResolver{db: db}
}

// Resolve verifies the bearer token and returns the actor it belongs to.
func (r *GormIdentityResolver) Resolve(ctx context.Context, token string) (staff.Actor, error) {
	if token == "" {
		return staff.Actor{}, errs.NewUnauthorizedError("unknown", "authenticate")
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return staff.Actor{}, errs.NewUnauthorizedError("unknown", "authenticate")
		}
		return staff.Actor{}, err
	}

	return actorToDomain(dto)
}
