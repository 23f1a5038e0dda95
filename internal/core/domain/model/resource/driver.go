package resource

import (
	"errors"
	"fmt"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/errs"
	"agrotrace/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when a Driver was not created through
// NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// DriverStatus represents the availability of a driver.
type DriverStatus int

const (
	// DriverUnknown catches uninitialized values.
	DriverUnknown DriverStatus = iota

	// DriverAvailable means the driver can be assigned to a new task.
	DriverAvailable

	// DriverOnDuty means the driver holds at least one active task.
	DriverOnDuty

	// DriverOffDuty means the driver is not working; never auto-assigned.
	DriverOffDuty
)

var driverStatusStrings = map[DriverStatus]string{
	DriverUnknown:   "Unknown",
	DriverAvailable: "Available",
	DriverOnDuty:    "OnDuty",
	DriverOffDuty:   "OffDuty",
}

// Validate checks the status is a defined, non-zero value.
func (s DriverStatus) Validate() error {
	if _, ok := driverStatusStrings[s]; !ok || s == DriverUnknown {
		return errs.NewValueIsInvalidErrorWithCause("driverStatus",
			fmt.Errorf("%d is not a valid driver status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s DriverStatus) String() string {
	if str, ok := driverStatusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// Driver is an aggregate representing a transport driver.
//
// Invariant: status is OnDuty exactly while the driver is referenced by an
// active transport task; MarkBusy and Release are only called by the
// scheduler inside the same transaction that creates or closes the task.
type Driver struct {
	id        kernel.UUID
	name      string
	phone     string
	licenseNo string
	status    DriverStatus

	persistedStatus DriverStatus

	guard guard.ConstructorGuard
}

// NewDriver creates a driver in Available status.
func NewDriver(id kernel.UUID, name, phone, licenseNo string) (*Driver, error) {
	d := &Driver{
		status: DriverAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicenseNo(licenseNo),
	); err != nil {
		return nil, err
	}
	d.phone = phone

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(id kernel.UUID, name, phone, licenseNo string, status DriverStatus) (*Driver, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d := &Driver{
		status:          status,
		persistedStatus: status,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicenseNo(licenseNo),
	); err != nil {
		return nil, err
	}
	d.phone = phone

	return d, nil
}

// Validate ensures the driver was built through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// Name returns the driver's display name.
func (d *Driver) Name() string { return d.name }

// Phone returns the driver's contact number.
func (d *Driver) Phone() string { return d.phone }

// LicenseNo returns the driving licence number.
func (d *Driver) LicenseNo() string { return d.licenseNo }

// Status returns the driver's availability status.
func (d *Driver) Status() DriverStatus { return d.status }

// PersistedStatus returns the status observed at load time, used for
// conditional updates. DriverUnknown for fresh drivers.
func (d *Driver) PersistedStatus() DriverStatus { return d.persistedStatus }

// IsAvailable reports whether the driver can take a new task.
func (d *Driver) IsAvailable() bool { return d.status == DriverAvailable }

// MarkBusy flips the driver to OnDuty.
// Fails with ResourceUnavailableError unless the driver is Available.
func (d *Driver) MarkBusy() error {
	if d.status != DriverAvailable {
		return errs.NewResourceUnavailableError("driver", d.id.String(), d.status.String())
	}
	d.status = DriverOnDuty
	return nil
}

// Release flips the driver back to Available. Idempotent for an already
// available driver; fails for an off-duty one, which the scheduler must not
// touch.
func (d *Driver) Release() error {
	switch d.status {
	case DriverOnDuty, DriverAvailable:
		d.status = DriverAvailable
		return nil
	default:
		return errs.NewResourceUnavailableError("driver", d.id.String(), d.status.String())
	}
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setLicenseNo(licenseNo string) error {
	if licenseNo == "" {
		return errs.NewValueIsRequiredError("licenseNo")
	}
	d.licenseNo = licenseNo
	return nil
}
