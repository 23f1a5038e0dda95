// Package postgres provides the GORM-based Unit of Work used by command
// handlers. Each unit of work owns one database transaction; repositories
// obtained from it run against that transaction until Commit or Rollback.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.BatchRepository().Update(ctx, aggregate); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"agrotrace/internal/adapters/out/postgres/auditrepo"
	"agrotrace/internal/adapters/out/postgres/batchrepo"
	"agrotrace/internal/adapters/out/postgres/notificationrepo"
	"agrotrace/internal/adapters/out/postgres/resourcerepo"
	"agrotrace/internal/adapters/out/postgres/staffrepo"
	"agrotrace/internal/adapters/out/postgres/transportrepo"
	"agrotrace/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one database
// connection. Each business operation gets a fresh instance so concurrent
// commands never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based units of work.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories a command touches. Repository accessors bind to the open
// transaction when one exists, otherwise to the main connection.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a new database transaction. Calling Begin on a unit of work
// that already holds a transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Rolling back after a successful commit returns ErrInvalidTransaction,
// which deferred rollbacks ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// BatchRepository returns a crop batch repository bound to the transaction.
func (uow *GormUnitOfWork) BatchRepository() ports.BatchRepository {
	return batchrepo.NewGormBatchRepository(uow.conn())
}

// TransportTaskRepository returns a task repository bound to the transaction.
func (uow *GormUnitOfWork) TransportTaskRepository() ports.TransportTaskRepository {
	return transportrepo.NewGormTransportTaskRepository(uow.conn())
}

// DriverRepository returns a driver repository bound to the transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return resourcerepo.NewGormDriverRepository(uow.conn())
}

// VehicleRepository returns a vehicle repository bound to the transaction.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return resourcerepo.NewGormVehicleRepository(uow.conn())
}

// StaffRepository returns a staff repository bound to the transaction.
func (uow *GormUnitOfWork) StaffRepository() ports.StaffRepository {
	return staffrepo.NewGormStaffRepository(uow.conn())
}

// NotificationRepository returns a notification repository bound to the
// transaction.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}

// AuditRepository returns an audit repository bound to the transaction.
func (uow *GormUnitOfWork) AuditRepository() ports.AuditRepository {
	return auditrepo.NewGormAuditRepository(uow.conn())
}
