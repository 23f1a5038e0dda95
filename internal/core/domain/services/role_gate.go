package services

import (
	"agrotrace/internal/core/domain/model/batch"
	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/pkg/errs"
)

// Action is a write operation guarded by the role gate. Every mutating
// command names its action and checks it here before touching any state.
type Action string

const (
	ActionUpdateCropStatus      Action = "update_crop_status"
	ActionAssignWarehouse       Action = "assign_warehouse"
	ActionScheduleTransport     Action = "schedule_transport"
	ActionAssignDriver          Action = "assign_driver"
	ActionUpdateTransportStatus Action = "update_transport_status"
	ActionConfirmPickup         Action = "confirm_pickup"
	ActionConfirmDelivery       Action = "confirm_delivery"
	ActionReportIssue           Action = "report_issue"
)

// allowedActions maps each role to the write actions it may perform.
// Permission logic lives only here; command handlers never hard-code roles.
var allowedActions = map[staff.Role]map[Action]bool{
	staff.Farmer: {
		ActionUpdateCropStatus: true,
	},
	staff.Procurement: {
		ActionUpdateCropStatus: true,
		ActionAssignWarehouse:  true,
	},
	staff.Coordinator: {
		ActionUpdateCropStatus:      true,
		ActionScheduleTransport:     true,
		ActionAssignDriver:          true,
		ActionUpdateTransportStatus: true,
		ActionReportIssue:           true,
	},
	staff.Driver: {
		ActionConfirmPickup:   true,
		ActionConfirmDelivery: true,
		ActionReportIssue:     true,
	},
	staff.WarehouseManager: {
		ActionUpdateCropStatus: true,
	},
}

// allowedTargets maps each role to the batch statuses it may set. A role is
// permanently forbidden from statuses outside its set: a farmer can never
// ship, receive, or store a batch, no matter the batch's current status.
var allowedTargets = map[staff.Role]map[batch.Status]bool{
	staff.Farmer: {
		batch.Growing:         true,
		batch.ReadyForHarvest: true,
		batch.Harvested:       true,
	},
	staff.Procurement: {
		batch.PendingApproval: true,
		batch.Processed:       true,
		batch.Packaged:        true,
	},
	staff.Coordinator: {
		batch.Shipped: true,
	},
	staff.WarehouseManager: {
		batch.Received: true,
		batch.Stored:   true,
	},
}

// RoleGate is the authorization component. All checks are static table
// lookups; it fails closed for unknown roles and actions.
type RoleGate struct{}

// NewRoleGate creates a RoleGate.
func NewRoleGate() RoleGate {
	return RoleGate{}
}

// CheckAction fails with UnauthorizedError unless the actor's role may
// perform the action. Inactive profiles are always rejected.
func (g RoleGate) CheckAction(actor staff.Actor, action Action) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsActive() {
		return errs.NewUnauthorizedErrorWithCause(actor.Role().String(), string(action),
			errs.NewValueIsInvalidError("profile is deactivated"))
	}
	if !allowedActions[actor.Role()][action] {
		return errs.NewUnauthorizedError(actor.Role().String(), string(action))
	}
	return nil
}

// CheckTransition fails with UnauthorizedError unless the actor may move a
// batch from current to target.
//
// Two rules apply on top of CheckAction:
//   - the target status must be in the role's allowed set,
//   - the field-collection role loses all write access once the batch
//     crosses the custody hand-off boundary (Packaged and beyond). This is
//     a hand-off, not a precondition: the batch now belongs to a later stage.
func (g RoleGate) CheckTransition(actor staff.Actor, current, target batch.Status) error {
	if err := g.CheckAction(actor, ActionUpdateCropStatus); err != nil {
		return err
	}
	if actor.Role() == staff.Farmer && current.AtOrPastHandoff() {
		return errs.NewUnauthorizedErrorWithCause(actor.Role().String(), string(ActionUpdateCropStatus),
			errs.NewValueIsInvalidError("batch has been handed off to a later stage"))
	}
	if !allowedTargets[actor.Role()][target] {
		return errs.NewUnauthorizedError(actor.Role().String(),
			string(ActionUpdateCropStatus)+" to "+target.String())
	}
	return nil
}
