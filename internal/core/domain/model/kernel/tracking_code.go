package kernel

import (
	"fmt"
	"regexp"

	"agrotrace/internal/pkg/errs"

	"agrotrace/internal/pkg/guard"
)

// ErrTrackingCodeIsNotConstructed indicates a TrackingCode was not created
// via NewTrackingCode.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingCode must be created via NewTrackingCode")

// trackingCodePattern is the canonical batch code format: "CB-<year>-<seq>",
// e.g. "CB-2025-001". The code is printed on the batch label and scanned by
// drivers at pickup and delivery.
var trackingCodePattern = regexp.MustCompile(`^CB-\d{4}-\d{3,}$`)

// TrackingCode is the canonical, human-readable identifier of a crop batch.
// It travels with the physical goods (as a printed label) while the UUID
// stays internal, which is why pickup and delivery confirmation compare
// scanned codes rather than UUIDs.
//
// TrackingCode is an immutable value object; the zero value is invalid.
type TrackingCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewTrackingCode validates and creates a TrackingCode.
// Returns an error when the value does not match the CB-YYYY-NNN format.
func NewTrackingCode(value string) (TrackingCode, error) {
	if value == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("trackingCode")
	}
	if !trackingCodePattern.MatchString(value) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause("trackingCode",
			fmt.Errorf("%q does not match CB-YYYY-NNN", value))
	}
	return TrackingCode{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the code as printed on the batch label.
func (c TrackingCode) String() string {
	return c.value
}

// Matches reports whether a scanned code equals this code.
// The comparison is exact: scanning is a custody check, not a search.
func (c TrackingCode) Matches(scanned string) bool {
	return c.value == scanned
}

// IsEqual compares two tracking codes by value.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate returns ErrTrackingCodeIsNotConstructed for the zero value.
func (c TrackingCode) Validate() error {
	return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
}
