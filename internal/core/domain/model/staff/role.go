package staff

import (
	"fmt"

	"agrotrace/internal/pkg/errs"
)

// Role identifies which stage of the supply chain an actor is responsible for.
type Role int

const (
	// RoleUnknown catches uninitialized values.
	RoleUnknown Role = iota

	// Farmer registers batches in the field and drives them to Harvested.
	Farmer

	// Procurement reviews harvested batches, accepts them into Processed,
	// packages them, and assigns the destination warehouse.
	Procurement

	// Coordinator schedules transport tasks and manages their lifecycle.
	Coordinator

	// Driver executes transport tasks: pickup and delivery confirmations,
	// issue reports.
	Driver

	// WarehouseManager confirms receipt and storage at the destination.
	WarehouseManager
)

var roleStrings = map[Role]string{
	RoleUnknown:      "Unknown",
	Farmer:           "FARMER",
	Procurement:      "PROCUREMENT",
	Coordinator:      "COORDINATOR",
	Driver:           "DRIVER",
	WarehouseManager: "WAREHOUSE_MANAGER",
}

// RoleFromString parses a wire-format role name ("WAREHOUSE_MANAGER").
func RoleFromString(s string) (Role, error) {
	for role, name := range roleStrings {
		if name == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a role", s))
}

// Validate checks the role is a defined, non-zero value.
func (r Role) Validate() error {
	if _, ok := roleStrings[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := roleStrings[r]; ok {
		return str
	}
	return "Unknown"
}
