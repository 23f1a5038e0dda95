package cmd

import (
	"log/slog"

	httpin "agrotrace/internal/adapters/in/http"
	"agrotrace/internal/adapters/out/postgres"
	"agrotrace/internal/adapters/out/postgres/auditrepo"
	"agrotrace/internal/adapters/out/postgres/batchrepo"
	"agrotrace/internal/adapters/out/postgres/notificationrepo"
	"agrotrace/internal/adapters/out/postgres/resourcerepo"
	"agrotrace/internal/adapters/out/postgres/staffrepo"
	"agrotrace/internal/adapters/out/postgres/transportrepo"
	"agrotrace/internal/core/application/events"
	"agrotrace/internal/core/application/usecases/commands"
	"agrotrace/internal/core/application/usecases/queries"
	"agrotrace/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher *events.NotificationDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *uowFactory,
		logger:     logger,
	}
	root.dispatcher = events.NewNotificationDispatcher(root.eventsUoWFactory(), logger)
	return root
}

// MigrateSchema creates all tables and the supporting indexes. The partial
// unique index cannot be expressed with gorm tags, so it is created with
// raw SQL after AutoMigrate.
func MigrateSchema(db *gorm.DB) error {
	err := db.AutoMigrate(
		&batchrepo.BatchDTO{},
		&transportrepo.TaskDTO{},
		&transportrepo.IssueDTO{},
		&resourcerepo.DriverDTO{},
		&resourcerepo.VehicleDTO{},
		&staffrepo.StaffDTO{},
		&staffrepo.WarehouseDTO{},
		&notificationrepo.NotificationDTO{},
		&auditrepo.EntryDTO{},
	)
	if err != nil {
		return err
	}

	// One active task per batch. Statuses 1, 2 and 5 are Scheduled,
	// InTransit and Delayed; finished tasks do not block a new one.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uidx_transport_tasks_active_batch
		 ON transport_tasks (batch_id) WHERE status IN (1, 2, 5)`,
	).Error
}

func (c *CompositionRoot) batchUoWFactory() commands.BatchUoWFactory {
	return FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) transportUoWFactory() commands.TransportUoWFactory {
	return FuncTransportUoWFactory(func() commands.TransportUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) eventsUoWFactory() events.UoWFactory {
	return FuncEventsUoWFactory(func() events.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateUpdateCropStatusCommandHandler() commands.UpdateCropStatusCommandHandler {
	return commands.NewUpdateCropStatusCommandHandler(c.batchUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAssignWarehouseCommandHandler() commands.AssignWarehouseCommandHandler {
	return commands.NewAssignWarehouseCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateScheduleTransportCommandHandler() commands.ScheduleTransportCommandHandler {
	return commands.NewScheduleTransportCommandHandler(c.transportUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAssignDriverToTaskCommandHandler() commands.AssignDriverToTaskCommandHandler {
	return commands.NewAssignDriverToTaskCommandHandler(c.transportUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTransportTaskStatusCommandHandler() commands.UpdateTransportTaskStatusCommandHandler {
	return commands.NewUpdateTransportTaskStatusCommandHandler(c.transportUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.transportUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.transportUoWFactory())
}

func (c *CompositionRoot) CreateReportIssueCommandHandler() commands.ReportIssueCommandHandler {
	return commands.NewReportIssueCommandHandler(c.transportUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateGetUnreadNotificationsQueryHandler() queries.GetUnreadNotificationsQueryHandler {
	return queries.NewGetUnreadNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveTransportTasksQueryHandler() queries.GetActiveTransportTasksQueryHandler {
	return queries.NewGetActiveTransportTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBatchTrailQueryHandler() queries.GetBatchTrailQueryHandler {
	return queries.NewGetBatchTrailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		staffrepo.NewGormIdentityResolver(c.gormDB),
		c.CreateUpdateCropStatusCommandHandler(),
		c.CreateAssignWarehouseCommandHandler(),
		c.CreateScheduleTransportCommandHandler(),
		c.CreateAssignDriverToTaskCommandHandler(),
		c.CreateUpdateTransportTaskStatusCommandHandler(),
		c.CreateConfirmPickupCommandHandler(),
		c.CreateConfirmDeliveryCommandHandler(),
		c.CreateReportIssueCommandHandler(),
		c.CreateMarkNotificationReadCommandHandler(),
		c.CreateGetUnreadNotificationsQueryHandler(),
		c.CreateGetActiveTransportTasksQueryHandler(),
		c.CreateGetBatchTrailQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.eventsUoWFactory(), c.dispatcher, c.logger)
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncTransportUoWFactory func() commands.TransportUoW

func (f FuncTransportUoWFactory) Create() commands.TransportUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncEventsUoWFactory func() events.UoW

func (f FuncEventsUoWFactory) Create() events.UoW {
	return f()
}
