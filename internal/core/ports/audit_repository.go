package ports

import (
	"context"

	"agrotrace/internal/core/domain/model/audit"
)

// AuditRepository defines the persistence contract for the audit trail.
// Entries are append-only; there is no update or delete.
type AuditRepository interface {
	// Add persists a new audit entry.
	Add(ctx context.Context, entry *audit.Entry) error
}
