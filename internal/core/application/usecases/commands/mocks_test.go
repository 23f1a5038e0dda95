package commands_test

import (
	"context"

	"agrotrace/internal/core/application/events"
	"agrotrace/internal/core/application/usecases/commands"
	"agrotrace/internal/core/domain/model/audit"
	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/notification"
	"agrotrace/internal/core/domain/model/resource"
	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/core/domain/model/transport"
	"agrotrace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, b *batch.CropBatch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Update(ctx context.Context, b *batch.CropBatch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.CropBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.CropBatch), args.Error(1)
}
func (m *MockBatchRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*batch.CropBatch, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.CropBatch), args.Error(1)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, t *transport.TransportTask) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTaskRepository) Update(ctx context.Context, t *transport.TransportTask) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*transport.TransportTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.TransportTask), args.Error(1)
}
func (m *MockTaskRepository) GetActiveByBatch(ctx context.Context, batchID kernel.UUID) ([]*transport.TransportTask, error) {
	args := m.Called(ctx, batchID)
	return args.Get(0).([]*transport.TransportTask), args.Error(1)
}
func (m *MockTaskRepository) GetActiveByDriver(ctx context.Context, driverID kernel.UUID) ([]*transport.TransportTask, error) {
	args := m.Called(ctx, driverID)
	return args.Get(0).([]*transport.TransportTask), args.Error(1)
}
func (m *MockTaskRepository) GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*transport.TransportTask, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]*transport.TransportTask), args.Error(1)
}
func (m *MockTaskRepository) AddIssue(ctx context.Context, issue *transport.TransportIssue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}
func (m *MockTaskRepository) UpdateIssue(ctx context.Context, issue *transport.TransportIssue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}
func (m *MockTaskRepository) GetIssue(ctx context.Context, id kernel.UUID) (*transport.TransportIssue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.TransportIssue), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *resource.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepository) Update(ctx context.Context, d *resource.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*resource.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Driver), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *resource.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepository) Update(ctx context.Context, v *resource.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*resource.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Vehicle), args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) GetActor(ctx context.Context, id kernel.UUID) (staff.Actor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(staff.Actor), args.Error(1)
}
func (m *MockStaffRepository) GetActiveByRole(ctx context.Context, role staff.Role) ([]staff.Actor, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]staff.Actor), args.Error(1)
}
func (m *MockStaffRepository) GetActiveManagersByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]staff.Actor, error) {
	args := m.Called(ctx, warehouseID)
	return args.Get(0).([]staff.Actor), args.Error(1)
}
func (m *MockStaffRepository) GetWarehouse(ctx context.Context, id kernel.UUID) (*staff.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Warehouse), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}
func (m *MockNotificationRepository) GetAllUndispatched(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Add(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockTransportUoW serves every UoW shape the handlers need; the narrower
// BatchUoW and NotificationUoW interfaces are subsets of its method set.
type MockTransportUoW struct{ mock.Mock }

func (m *MockTransportUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTransportUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTransportUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTransportUoW) BatchRepository() ports.BatchRepository {
	return m.Called().Get(0).(ports.BatchRepository)
}
func (m *MockTransportUoW) TransportTaskRepository() ports.TransportTaskRepository {
	return m.Called().Get(0).(ports.TransportTaskRepository)
}
func (m *MockTransportUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}
func (m *MockTransportUoW) VehicleRepository() ports.VehicleRepository {
	return m.Called().Get(0).(ports.VehicleRepository)
}
func (m *MockTransportUoW) StaffRepository() ports.StaffRepository {
	return m.Called().Get(0).(ports.StaffRepository)
}
func (m *MockTransportUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}
func (m *MockTransportUoW) AuditRepository() ports.AuditRepository {
	return m.Called().Get(0).(ports.AuditRepository)
}

type MockTransportUoWFactory struct{ mock.Mock }

func (m *MockTransportUoWFactory) Create() commands.TransportUoW {
	return m.Called().Get(0).(commands.TransportUoW)
}

type MockBatchUoWFactory struct{ mock.Mock }

func (m *MockBatchUoWFactory) Create() commands.BatchUoW {
	return m.Called().Get(0).(commands.BatchUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	return m.Called().Get(0).(commands.NotificationUoW)
}

// MockDispatcher records dispatched events for assertions.
type MockDispatcher struct {
	Events []events.Event
}

func (m *MockDispatcher) Dispatch(_ context.Context, event events.Event) {
	m.Events = append(m.Events, event)
}
