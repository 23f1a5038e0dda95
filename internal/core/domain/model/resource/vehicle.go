package resource

import (
	"errors"
	"fmt"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/errs"
	"agrotrace/internal/pkg/guard"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle was not created
// through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle")

// VehicleStatus represents the availability of a vehicle.
type VehicleStatus int

const (
	// VehicleUnknown catches uninitialized values.
	VehicleUnknown VehicleStatus = iota

	// VehicleAvailable means the vehicle can be assigned to a new task.
	VehicleAvailable

	// VehicleInUse means the vehicle is committed to an active task.
	VehicleInUse

	// VehicleMaintenance means the vehicle is being serviced; never assigned.
	VehicleMaintenance
)

var vehicleStatusStrings = map[VehicleStatus]string{
	VehicleUnknown:     "Unknown",
	VehicleAvailable:   "Available",
	VehicleInUse:       "InUse",
	VehicleMaintenance: "Maintenance",
}

// Validate checks the status is a defined, non-zero value.
func (s VehicleStatus) Validate() error {
	if _, ok := vehicleStatusStrings[s]; !ok || s == VehicleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("vehicleStatus",
			fmt.Errorf("%d is not a valid vehicle status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s VehicleStatus) String() string {
	if str, ok := vehicleStatusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// Vehicle is an aggregate representing a transport vehicle.
// The same busy/release invariant as Driver applies.
type Vehicle struct {
	id         kernel.UUID
	plateNo    string
	kind       string
	capacityKg float64
	status     VehicleStatus

	persistedStatus VehicleStatus

	guard guard.ConstructorGuard
}

// NewVehicle creates a vehicle in Available status.
func NewVehicle(id kernel.UUID, plateNo, kind string, capacityKg float64) (*Vehicle, error) {
	v := &Vehicle{
		status: VehicleAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlateNo(plateNo),
		v.setCapacityKg(capacityKg),
	); err != nil {
		return nil, err
	}
	v.kind = kind

	return v, nil
}

// RestoreVehicle reconstructs a vehicle from persistence.
func RestoreVehicle(id kernel.UUID, plateNo, kind string, capacityKg float64, status VehicleStatus) (*Vehicle, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	v := &Vehicle{
		status:          status,
		persistedStatus: status,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlateNo(plateNo),
		v.setCapacityKg(capacityKg),
	); err != nil {
		return nil, err
	}
	v.kind = kind

	return v, nil
}

// Validate ensures the vehicle was built through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID { return v.id }

// PlateNo returns the registration plate.
func (v *Vehicle) PlateNo() string { return v.plateNo }

// Kind returns the vehicle kind, e.g. "refrigerated truck".
func (v *Vehicle) Kind() string { return v.kind }

// CapacityKg returns the load capacity in kilograms.
func (v *Vehicle) CapacityKg() float64 { return v.capacityKg }

// Status returns the vehicle's availability status.
func (v *Vehicle) Status() VehicleStatus { return v.status }

// PersistedStatus returns the status observed at load time.
func (v *Vehicle) PersistedStatus() VehicleStatus { return v.persistedStatus }

// IsAvailable reports whether the vehicle can take a new task.
func (v *Vehicle) IsAvailable() bool { return v.status == VehicleAvailable }

// MarkBusy flips the vehicle to InUse.
// Fails with ResourceUnavailableError unless the vehicle is Available.
func (v *Vehicle) MarkBusy() error {
	if v.status != VehicleAvailable {
		return errs.NewResourceUnavailableError("vehicle", v.id.String(), v.status.String())
	}
	v.status = VehicleInUse
	return nil
}

// Release flips the vehicle back to Available. Fails for a vehicle in
// maintenance, which the scheduler must not touch.
func (v *Vehicle) Release() error {
	switch v.status {
	case VehicleInUse, VehicleAvailable:
		v.status = VehicleAvailable
		return nil
	default:
		return errs.NewResourceUnavailableError("vehicle", v.id.String(), v.status.String())
	}
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setPlateNo(plateNo string) error {
	if plateNo == "" {
		return errs.NewValueIsRequiredError("plateNo")
	}
	v.plateNo = plateNo
	return nil
}

func (v *Vehicle) setCapacityKg(capacityKg float64) error {
	if capacityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacityKg",
			fmt.Errorf("%v is not greater than 0", capacityKg))
	}
	v.capacityKg = capacityKg
	return nil
}
