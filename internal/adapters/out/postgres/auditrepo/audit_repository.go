// Package auditrepo persists the append-only audit trail. Entries are
// written inside the same transaction as the change they record.
package auditrepo

import (
	"context"
	"time"

	"agrotrace/internal/core/domain/model/audit"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryDTO is the database row for one audit entry.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID    uuid.UUID `gorm:"type:uuid;index"`
	ActorRole  int
	Action     string `gorm:"size:64"`
	EntityKind string `gorm:"size:32;index:idx_audit_entity"`
	EntityID   uuid.UUID `gorm:"type:uuid;index:idx_audit_entity"`
	FromStatus string `gorm:"size:32"`
	ToStatus   string `gorm:"size:32"`
	Details    string
	OccurredAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "audit_records".
func (EntryDTO) TableName() string {
	return "audit_records"
}

func fromDomain(entry *audit.Entry) EntryDTO {
	return EntryDTO{
		ID:         entry.ID().Bytes(),
		ActorID:    entry.ActorID().Bytes(),
		ActorRole:  int(entry.ActorRole()),
		Action:     entry.Action(),
		EntityKind: entry.EntityKind(),
		EntityID:   entry.EntityID().Bytes(),
		FromStatus: entry.FromStatus(),
		ToStatus:   entry.ToStatus(),
		Details:    entry.Details(),
		OccurredAt: entry.OccurredAt(),
	}
}

// GormAuditRepository implements ports.AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Add saves a new audit entry to the database.
func (r *GormAuditRepository) Add(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
