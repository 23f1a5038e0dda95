package batch

import (
	"fmt"

	"agrotrace/internal/pkg/errs"
)

// Status represents the lifecycle state of a crop batch.
//
// The main chain is linear:
//
//	Planted → Growing → ReadyForHarvest → Harvested → PendingApproval
//	        → Processed → Packaged → Shipped → Received → Stored
//
// with two sanctioned shortcuts: procurement review may accept a harvested
// batch straight into Processed, and a processed batch may ship without a
// separate packaging step. Stored is terminal.
//
// Status is a value object; transitions are validated against the table
// below before any mutation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Planted is the initial status when a batch is registered in the field.
	Planted

	// Growing indicates the crop is developing and not yet harvestable.
	Growing

	// ReadyForHarvest indicates the field stage considers the crop mature.
	// Entering this status notifies procurement.
	ReadyForHarvest

	// Harvested indicates the crop has been collected. Entering this status
	// stamps the batch's actual harvest time.
	Harvested

	// PendingApproval indicates the batch awaits procurement review.
	PendingApproval

	// Processed indicates procurement has accepted the batch.
	// From here the batch becomes eligible for transport scheduling.
	Processed

	// Packaged indicates the batch has been packed for shipment.
	// This is the hand-off boundary: the field stage loses write access
	// at Packaged and beyond.
	Packaged

	// Shipped indicates a transport task has been scheduled for the batch.
	// Requires a destination warehouse.
	Shipped

	// Received indicates the destination warehouse has confirmed receipt.
	// This is distinct from the driver's delivery confirmation.
	Received

	// Stored indicates the batch is in warehouse storage. Terminal.
	Stored
)

// statusStrings maps all Status values, including Unknown, for display.
var statusStrings = map[Status]string{
	Unknown:         "Unknown",
	Planted:         "Planted",
	Growing:         "Growing",
	ReadyForHarvest: "ReadyForHarvest",
	Harvested:       "Harvested",
	PendingApproval: "PendingApproval",
	Processed:       "Processed",
	Packaged:        "Packaged",
	Shipped:         "Shipped",
	Received:        "Received",
	Stored:          "Stored",
}

// transitions is the legal-transition table keyed by current status.
// A requested status must be a direct successor of the current one;
// there is no skipping.
var transitions = map[Status][]Status{
	Planted:         {Growing},
	Growing:         {ReadyForHarvest},
	ReadyForHarvest: {Harvested},
	Harvested:       {PendingApproval, Processed},
	PendingApproval: {Processed},
	Processed:       {Packaged, Shipped},
	Packaged:        {Shipped},
	Shipped:         {Received},
	Received:        {Stored},
	Stored:          {},
}

// StatusFromString parses a wire-format status name ("ReadyForHarvest").
// Returns an error for unknown names and for "Unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a crop batch status", s))
}

// Validate checks that the Status is one of the defined values.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := statusStrings[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether target is a direct successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Transition validates and performs a move to target.
// Returns InvalidTransitionError if target is not a direct successor.
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError("crop batch", s.String(), target.String())
	}
	return target, nil
}

// IsTerminal reports whether no further transitions exist from s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0 && s != Unknown
}

// AtOrPastHandoff reports whether the batch has crossed the custody boundary
// after which the field-collection role may no longer write to it.
func (s Status) AtOrPastHandoff() bool {
	return s == Packaged || s == Shipped || s == Received || s == Stored
}

// EligibleForTransport reports whether a transport task may be scheduled
// for a batch in this status.
func (s Status) EligibleForTransport() bool {
	return s == Processed || s == Packaged
}
