package queries_test

import (
	"context"
	"testing"
	"time"

	"agrotrace/internal/adapters/out/postgres/auditrepo"
	"agrotrace/internal/adapters/out/postgres/batchrepo"
	"agrotrace/internal/adapters/out/postgres/notificationrepo"
	"agrotrace/internal/adapters/out/postgres/transportrepo"
	"agrotrace/internal/core/application/usecases/queries"
	"agrotrace/internal/core/domain/model/audit"
	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/notification"
	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/core/domain/model/transport"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container        *postgres.PostgresContainer
	db               *gorm.DB
	batchRepo        *batchrepo.GormBatchRepository
	taskRepo         *transportrepo.GormTransportTaskRepository
	notificationRepo *notificationrepo.GormNotificationRepository
	auditRepo        *auditrepo.GormAuditRepository
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&batchrepo.BatchDTO{},
		&transportrepo.TaskDTO{},
		&transportrepo.IssueDTO{},
		&notificationrepo.NotificationDTO{},
		&auditrepo.EntryDTO{},
	)
	suite.Require().NoError(err)

	suite.batchRepo = batchrepo.NewGormBatchRepository(db)
	suite.taskRepo = transportrepo.NewGormTransportTaskRepository(db)
	suite.notificationRepo = notificationrepo.NewGormNotificationRepository(db)
	suite.auditRepo = auditrepo.NewGormAuditRepository(db)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	for _, table := range []string{"notifications", "transport_tasks", "crop_batches", "audit_records"} {
		err := suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error
		suite.Require().NoError(err)
	}
}

func (suite *QueriesIntegrationTestSuite) addBatch(code string, status batch.Status) *batch.CropBatch {
	trackingCode, err := kernel.NewTrackingCode(code)
	suite.Require().NoError(err)

	aggregate, err := batch.RestoreCropBatch(
		kernel.NewUUID(), trackingCode, "Coffee", "Arabica", 120, status,
		kernel.NewUUID(), nil,
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
		nil, "",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.batchRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *QueriesIntegrationTestSuite) addTask(batchID kernel.UUID, status transport.Status, date time.Time) *transport.TransportTask {
	driverID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	var pickupAt, deliveryAt *time.Time
	if status == transport.InTransit || status == transport.Delivered {
		pickupAt = &date
	}
	if status == transport.Delivered {
		deliveryAt = &date
	}

	task, err := transport.RestoreTransportTask(
		kernel.NewUUID(), batchID, kernel.NewUUID(), &driverID, &vehicleID,
		status, date, "farm gate", "central warehouse", pickupAt, deliveryAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.taskRepo.Add(context.Background(), task))
	return task
}

func (suite *QueriesIntegrationTestSuite) addNotification(recipientID kernel.UUID, read bool, createdAt time.Time) *notification.Notification {
	n, err := notification.RestoreNotification(
		kernel.NewUUID(), recipientID, notification.BatchProcessed,
		"Batch processed", "Batch CB-2025-001 has been processed",
		notification.Metadata{BatchID: kernel.NewUUID().String(), TrackingCode: "CB-2025-001"},
		read, true, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.notificationRepo.Add(context.Background(), n))
	return n
}

func (suite *QueriesIntegrationTestSuite) TestGetUnreadNotifications_FiltersAndOrders() {
	recipient := kernel.NewUUID()
	other := kernel.NewUUID()

	older := suite.addNotification(recipient, false, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	newer := suite.addNotification(recipient, false, time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC))
	suite.addNotification(recipient, true, time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC))
	suite.addNotification(other, false, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	query, err := queries.NewGetUnreadNotificationsQuery(recipient)
	suite.Require().NoError(err)

	result, err := queries.NewGetUnreadNotificationsQueryHandler(suite.db).
		Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(newer.ID()), "newest unread first")
	suite.True(result[1].ID.IsEqual(older.ID()))
	suite.Equal("BATCH_PROCESSED", result[0].Kind)
	suite.Equal("CB-2025-001", result[0].TrackingCode)
}

func (suite *QueriesIntegrationTestSuite) TestGetUnreadNotifications_EmptyInbox() {
	query, err := queries.NewGetUnreadNotificationsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := queries.NewGetUnreadNotificationsQueryHandler(suite.db).
		Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueriesIntegrationTestSuite) TestGetActiveTransportTasks_ExcludesFinishedTasks() {
	shipped := suite.addBatch("CB-2025-001", batch.Shipped)
	stored := suite.addBatch("CB-2025-002", batch.Stored)

	scheduled := suite.addTask(shipped.ID(), transport.Scheduled,
		time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC))
	inTransit := suite.addTask(shipped.ID(), transport.InTransit,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	suite.addTask(stored.ID(), transport.Delivered,
		time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC))

	result, err := queries.NewGetActiveTransportTasksQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetActiveTransportTasksQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(inTransit.ID()), "earliest scheduled date first")
	suite.Equal("InTransit", result[0].Status)
	suite.True(result[1].ID.IsEqual(scheduled.ID()))
	suite.Equal("CB-2025-001", result[0].TrackingCode)
	suite.Require().NotNil(result[0].DriverID)
	suite.True(result[0].DriverID.IsEqual(*inTransit.DriverID()))
}

func (suite *QueriesIntegrationTestSuite) TestGetBatchTrail_OrderedOldestFirst() {
	aggregate := suite.addBatch("CB-2025-003", batch.Processed)
	actorID := kernel.NewUUID()

	second, err := audit.NewEntry(
		kernel.NewUUID(), actorID, staff.Procurement,
		"update_crop_status", "crop_batch", aggregate.ID(),
		"Harvested", "Processed", "",
		time.Date(2025, 2, 22, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	first, err := audit.NewEntry(
		kernel.NewUUID(), actorID, staff.Farmer,
		"update_crop_status", "crop_batch", aggregate.ID(),
		"ReadyForHarvest", "Harvested", "",
		time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.auditRepo.Add(context.Background(), second))
	suite.Require().NoError(suite.auditRepo.Add(context.Background(), first))

	query, err := queries.NewGetBatchTrailQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := queries.NewGetBatchTrailQueryHandler(suite.db).
		Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal("Harvested", result[0].ToStatus)
	suite.Equal("FARMER", result[0].ActorRole)
	suite.Equal("Processed", result[1].ToStatus)
	suite.Equal("PROCUREMENT", result[1].ActorRole)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
