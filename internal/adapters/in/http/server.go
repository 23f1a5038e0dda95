// Package http exposes the workflow over an echo server. Every route sits
// behind bearer-token authentication; the resolved actor travels through the
// request context into the command and query handlers.
package http

import (
	"net/http"
	"strings"
	"time"

	"agrotrace/internal/core/application/usecases/commands"
	"agrotrace/internal/core/application/usecases/queries"
	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/core/domain/model/transport"
	"agrotrace/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// Server wires HTTP routes to application use cases.
type Server struct {
	identity ports.IdentityResolver

	updateCropStatusHandler     commands.UpdateCropStatusCommandHandler
	assignWarehouseHandler      commands.AssignWarehouseCommandHandler
	scheduleTransportHandler    commands.ScheduleTransportCommandHandler
	assignDriverHandler         commands.AssignDriverToTaskCommandHandler
	updateTaskStatusHandler     commands.UpdateTransportTaskStatusCommandHandler
	confirmPickupHandler        commands.ConfirmPickupCommandHandler
	confirmDeliveryHandler      commands.ConfirmDeliveryCommandHandler
	reportIssueHandler          commands.ReportIssueCommandHandler
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler

	unreadNotificationsHandler queries.GetUnreadNotificationsQueryHandler
	activeTasksHandler         queries.GetActiveTransportTasksQueryHandler
	batchTrailHandler          queries.GetBatchTrailQueryHandler
}

// NewServer creates an HTTP server with the required handlers.
func NewServer(
	identity ports.IdentityResolver,
	updateCropStatusHandler commands.UpdateCropStatusCommandHandler,
	assignWarehouseHandler commands.AssignWarehouseCommandHandler,
	scheduleTransportHandler commands.ScheduleTransportCommandHandler,
	assignDriverHandler commands.AssignDriverToTaskCommandHandler,
	updateTaskStatusHandler commands.UpdateTransportTaskStatusCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	reportIssueHandler commands.ReportIssueCommandHandler,
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler,
	unreadNotificationsHandler queries.GetUnreadNotificationsQueryHandler,
	activeTasksHandler queries.GetActiveTransportTasksQueryHandler,
	batchTrailHandler queries.GetBatchTrailQueryHandler,
) *Server {
	return &Server{
		identity:                    identity,
		updateCropStatusHandler:     updateCropStatusHandler,
		assignWarehouseHandler:      assignWarehouseHandler,
		scheduleTransportHandler:    scheduleTransportHandler,
		assignDriverHandler:         assignDriverHandler,
		updateTaskStatusHandler:     updateTaskStatusHandler,
		confirmPickupHandler:        confirmPickupHandler,
		confirmDeliveryHandler:      confirmDeliveryHandler,
		reportIssueHandler:          reportIssueHandler,
		markNotificationReadHandler: markNotificationReadHandler,
		unreadNotificationsHandler:  unreadNotificationsHandler,
		activeTasksHandler:          activeTasksHandler,
		batchTrailHandler:           batchTrailHandler,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1 behind the actor
// middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", s.actorMiddleware)

	api.POST("/batches/:id/status", s.UpdateBatchStatus)
	api.POST("/batches/:id/warehouse", s.AssignWarehouse)
	api.GET("/batches/:id/trail", s.GetBatchTrail)

	api.POST("/transport-tasks", s.ScheduleTransport)
	api.GET("/transport-tasks/active", s.GetActiveTransportTasks)
	api.POST("/transport-tasks/:id/assign", s.AssignDriver)
	api.POST("/transport-tasks/:id/status", s.UpdateTaskStatus)
	api.POST("/transport-tasks/:id/pickup", s.ConfirmPickup)
	api.POST("/transport-tasks/:id/delivery", s.ConfirmDelivery)
	api.POST("/transport-tasks/:id/issues", s.ReportIssue)

	api.GET("/notifications", s.GetUnreadNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
}

// actorMiddleware resolves the bearer token into a staff actor and stores it
// in the request context. Requests without a valid token never reach a
// handler.
func (s *Server) actorMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return errorResponse(ctx, http.StatusUnauthorized, "missing bearer token")
		}

		actor, err := s.identity.Resolve(ctx.Request().Context(), token)
		if err != nil {
			return domainError(ctx, err)
		}

		ctx.Set(actorContextKey, actor)
		return next(ctx)
	}
}

func actorFromContext(ctx echo.Context) staff.Actor {
	actor, _ := ctx.Get(actorContextKey).(staff.Actor)
	return actor
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func domainError(ctx echo.Context, err error) error {
	code := statusFromError(err)
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// UpdateBatchStatusRequest is the body of POST /batches/:id/status.
type UpdateBatchStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// UpdateBatchStatus handles POST /api/v1/batches/:id/status.
func (s *Server) UpdateBatchStatus(ctx echo.Context) error {
	batchID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid batch id")
	}

	var req UpdateBatchStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}
	target, err := batch.StatusFromString(req.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewUpdateCropStatusCommand(
		actorFromContext(ctx).ID(), batchID, target, req.Notes)
	if err != nil {
		return domainError(ctx, err)
	}
	if err = s.updateCropStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignWarehouseRequest is the body of POST /batches/:id/warehouse.
type AssignWarehouseRequest struct {
	WarehouseID string `json:"warehouseId"`
}

// AssignWarehouse handles POST /api/v1/batches/:id/warehouse.
func (s *Server) AssignWarehouse(ctx echo.Context) error {
	batchID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid batch id")
	}

	var req AssignWarehouseRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}
	warehouseID, err := kernel.UUIDFromString(req.WarehouseID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid warehouse id")
	}

	cmd, err := commands.NewAssignWarehouseCommand(
		actorFromContext(ctx).ID(), batchID, warehouseID)
	if err != nil {
		return domainError(ctx, err)
	}
	if err = s.assignWarehouseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ScheduleTransportRequest is the body of POST /transport-tasks.
type ScheduleTransportRequest struct {
	BatchID       string `json:"batchId"`
	DriverID      string `json:"driverId"`
	VehicleID     string `json:"vehicleId"`
	ScheduledDate string `json:"scheduledDate"`
	Pickup        string `json:"pickup"`
	Delivery      string `json:"delivery"`
}

// ScheduleTransport handles POST /api/v1/transport-tasks.
func (s *Server) ScheduleTransport(ctx echo.Context) error {
	var req ScheduleTransportRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	batchID, err := kernel.UUIDFromString(req.BatchID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid batch id")
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid driver id")
	}
	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid vehicle id")
	}
	scheduledDate, err := time.Parse(time.DateOnly, req.ScheduledDate)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "scheduledDate must be YYYY-MM-DD")
	}

	cmd, err := commands.NewScheduleTransportCommand(
		actorFromContext(ctx).ID(), batchID, driverID, vehicleID,
		scheduledDate, req.Pickup, req.Delivery)
	if err != nil {
		return domainError(ctx, err)
	}
	if err = s.scheduleTransportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AssignDriverRequest is the body of POST /transport-tasks/:id/assign.
type AssignDriverRequest struct {
	DriverID  string `json:"driverId"`
	VehicleID string `json:"vehicleId"`
}

// AssignDriver handles POST /api/v1/transport-tasks/:id/assign.
func (s *Server) AssignDriver(ctx echo.Context) error {
	taskID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid task id")
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid driver id")
	}
	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid vehicle id")
	}

	cmd, err := commands.NewAssignDriverToTaskCommand(
		actorFromContext(ctx).ID(), taskID, driverID, vehicleID)
	if err != nil {
		return domainError(ctx, err)
	}
	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateTaskStatusRequest is the body of POST /transport-tasks/:id/status.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// UpdateTaskStatus handles POST /api/v1/transport-tasks/:id/status.
func (s *Server) UpdateTaskStatus(ctx echo.Context) error {
	taskID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid task id")
	}

	var req UpdateTaskStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}
	target, err := transport.StatusFromString(req.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewUpdateTransportTaskStatusCommand(
		actorFromContext(ctx).ID(), taskID, target, req.Reason)
	if err != nil {
		return domainError(ctx, err)
	}
	if err = s.updateTaskStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ScanRequest is the body of the pickup and delivery confirmations.
type ScanRequest struct {
	ScannedCode string `json:"scannedCode"`
}

// ConfirmPickup handles POST /api/v1/transport-tasks/:id/pickup.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	taskID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid task id")
	}

	var req ScanRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewConfirmPickupCommand(
		actorFromContext(ctx).ID(), taskID, req.ScannedCode)
	if err != nil {
		return domainError(ctx, err)
	}
	if err = s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ConfirmDelivery handles POST /api/v1/transport-tasks/:id/delivery.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	taskID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid task id")
	}

	var req ScanRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(
		actorFromContext(ctx).ID(), taskID, req.ScannedCode)
	if err != nil {
		return domainError(ctx, err)
	}
	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ReportIssueRequest is the body of POST /transport-tasks/:id/issues.
type ReportIssueRequest struct {
	IssueType   string `json:"issueType"`
	Description string `json:"description"`
}

// ReportIssue handles POST /api/v1/transport-tasks/:id/issues.
func (s *Server) ReportIssue(ctx echo.Context) error {
	taskID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid task id")
	}

	var req ReportIssueRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}
	issueType, err := transport.IssueTypeFromString(req.IssueType)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewReportIssueCommand(
		actorFromContext(ctx).ID(), taskID, issueType, req.Description)
	if err != nil {
		return domainError(ctx, err)
	}
	if err = s.reportIssueHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// Notification is the JSON shape of one unread notification.
type Notification struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	BatchID      string    `json:"batchId,omitempty"`
	TrackingCode string    `json:"trackingCode,omitempty"`
	TaskID       string    `json:"taskId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GetUnreadNotifications handles GET /api/v1/notifications. The inbox is
// always scoped to the authenticated actor.
func (s *Server) GetUnreadNotifications(ctx echo.Context) error {
	query, err := queries.NewGetUnreadNotificationsQuery(actorFromContext(ctx).ID())
	if err != nil {
		return domainError(ctx, err)
	}

	notifications, err := s.unreadNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Notification, len(notifications))
	for i, n := range notifications {
		response[i] = Notification{
			ID:           n.ID.String(),
			Kind:         n.Kind,
			Title:        n.Title,
			Message:      n.Message,
			BatchID:      n.BatchID,
			TrackingCode: n.TrackingCode,
			TaskID:       n.TaskID,
			CreatedAt:    n.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid notification id")
	}

	cmd, err := commands.NewMarkNotificationReadCommand(
		actorFromContext(ctx).ID(), notificationID)
	if err != nil {
		return domainError(ctx, err)
	}
	if err = s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// TransportTask is the JSON shape of one active task row.
type TransportTask struct {
	ID            string  `json:"id"`
	BatchID       string  `json:"batchId"`
	TrackingCode  string  `json:"trackingCode"`
	Status        string  `json:"status"`
	ScheduledDate string  `json:"scheduledDate"`
	Pickup        string  `json:"pickup"`
	Delivery      string  `json:"delivery"`
	DriverID      *string `json:"driverId,omitempty"`
	VehicleID     *string `json:"vehicleId,omitempty"`
}

// GetActiveTransportTasks handles GET /api/v1/transport-tasks/active.
func (s *Server) GetActiveTransportTasks(ctx echo.Context) error {
	tasks, err := s.activeTasksHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveTransportTasksQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]TransportTask, len(tasks))
	for i, task := range tasks {
		row := TransportTask{
			ID:            task.ID.String(),
			BatchID:       task.BatchID.String(),
			TrackingCode:  task.TrackingCode,
			Status:        task.Status,
			ScheduledDate: task.ScheduledDate.Format(time.DateOnly),
			Pickup:        task.Pickup,
			Delivery:      task.Delivery,
		}
		if task.DriverID != nil {
			id := task.DriverID.String()
			row.DriverID = &id
		}
		if task.VehicleID != nil {
			id := task.VehicleID.String()
			row.VehicleID = &id
		}
		response[i] = row
	}
	return ctx.JSON(http.StatusOK, response)
}

// AuditRecord is the JSON shape of one batch trail row.
type AuditRecord struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actorId"`
	ActorRole  string    `json:"actorRole"`
	Action     string    `json:"action"`
	FromStatus string    `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus,omitempty"`
	Details    string    `json:"details,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// GetBatchTrail handles GET /api/v1/batches/:id/trail.
func (s *Server) GetBatchTrail(ctx echo.Context) error {
	batchID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid batch id")
	}

	query, err := queries.NewGetBatchTrailQuery(batchID)
	if err != nil {
		return domainError(ctx, err)
	}
	trail, err := s.batchTrailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]AuditRecord, len(trail))
	for i, record := range trail {
		response[i] = AuditRecord{
			ID:         record.ID.String(),
			ActorID:    record.ActorID.String(),
			ActorRole:  record.ActorRole,
			Action:     record.Action,
			FromStatus: record.FromStatus,
			ToStatus:   record.ToStatus,
			Details:    record.Details,
			OccurredAt: record.OccurredAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}
