package transportrepo

import (
	"context"
	"errors"
	"time"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/transport"
	"agrotrace/internal/pkg/errs"

	"gorm.io/gorm"
)

// activeStatuses are the task statuses that hold a driver and a vehicle.
var activeStatuses = []int{
	int(transport.Scheduled),
	int(transport.InTransit),
	int(transport.Delayed),
}

// GormTransportTaskRepository implements ports.TransportTaskRepository using GORM.
type GormTransportTaskRepository struct {
	db *gorm.DB
}

// NewGormTransportTaskRepository creates a new GORM transport task repository.
func NewGormTransportTaskRepository(db *gorm.DB) *GormTransportTaskRepository {
	return &GormTransportTaskRepository{db: db}
}

// Add saves a new transport task to the database.
func (r *GormTransportTaskRepository) Add(ctx context.Context, aggregate *transport.TransportTask) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := taskFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewSchedulingConflictError("task",
				aggregate.ID().String(), dateString(aggregate.ScheduledDate()))
		}
		return err
	}
	return nil
}

// Update saves an existing task, conditional on the status it was loaded
// with. Zero matched rows means another transaction moved the task first;
// the caller's scheduling decision was based on stale state.
func (r *GormTransportTaskRepository) Update(ctx context.Context, aggregate *transport.TransportTask) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := taskFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TaskDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(aggregate.PersistedStatus())).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewSchedulingConflictError("task",
			aggregate.ID().String(), dateString(aggregate.ScheduledDate()))
	}

	return nil
}

// Get retrieves a transport task by ID.
func (r *GormTransportTaskRepository) Get(ctx context.Context, id kernel.UUID) (*transport.TransportTask, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("taskId", id.String())
		}
		return nil, err
	}

	return taskToDomain(dto)
}

// GetActiveByBatch retrieves the batch's tasks in an active status.
func (r *GormTransportTaskRepository) GetActiveByBatch(ctx context.Context, batchID kernel.UUID) ([]*transport.TransportTask, error) {
	return r.findActive(ctx, "batch_id = ?", batchID)
}

// GetActiveByDriver retrieves the driver's active tasks across all dates.
func (r *GormTransportTaskRepository) GetActiveByDriver(ctx context.Context, driverID kernel.UUID) ([]*transport.TransportTask, error) {
	return r.findActive(ctx, "driver_id = ?", driverID)
}

// GetActiveByVehicle retrieves the vehicle's active tasks across all dates.
func (r *GormTransportTaskRepository) GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*transport.TransportTask, error) {
	return r.findActive(ctx, "vehicle_id = ?", vehicleID)
}

func (r *GormTransportTaskRepository) findActive(ctx context.Context, condition string, id kernel.UUID) ([]*transport.TransportTask, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dtos []TaskDTO
	err := r.db.WithContext(ctx).
		Where(condition, id.Bytes()).
		Where("status IN ?", activeStatuses).
		Order("scheduled_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*transport.TransportTask, 0, len(dtos))
	for _, dto := range dtos {
		task, err := taskToDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// AddIssue saves a new issue report.
func (r *GormTransportTaskRepository) AddIssue(ctx context.Context, issue *transport.TransportIssue) error {
	if err := issue.Validate(); err != nil {
		return err
	}

	dto := issueFromDomain(issue)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateIssue saves changes to an existing issue report.
func (r *GormTransportTaskRepository) UpdateIssue(ctx context.Context, issue *transport.TransportIssue) error {
	if err := issue.Validate(); err != nil {
		return err
	}

	dto := issueFromDomain(issue)
	result := r.db.WithContext(ctx).Model(&IssueDTO{}).
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("issueId", issue.ID().String())
	}
	return nil
}

// GetIssue retrieves an issue report by ID.
func (r *GormTransportTaskRepository) GetIssue(ctx context.Context, id kernel.UUID) (*transport.TransportIssue, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IssueDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("issueId", id.String())
		}
		return nil, err
	}

	return issueToDomain(dto)
}

func dateString(d time.Time) string {
	return d.Format(time.DateOnly)
}
