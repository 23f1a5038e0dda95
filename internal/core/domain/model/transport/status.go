package transport

import (
	"fmt"

	"agrotrace/internal/pkg/errs"
)

// Status represents the lifecycle state of a transport task.
//
//	Scheduled → InTransit → Delivered
//	     │          │
//	     │          ├→ Delayed → InTransit   (explicit resume after issue)
//	     └──────────┴→ Cancelled
//
// Delivered and Cancelled are terminal; terminal tasks are retained for
// audit and reporting, never deleted.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota

	// Scheduled means the task exists and awaits pickup. A task may sit in
	// Scheduled indefinitely; there is no timeout.
	Scheduled

	// InTransit means the driver confirmed pickup with a matching scan.
	InTransit

	// Delivered means the driver confirmed delivery. Terminal.
	Delivered

	// Cancelled means the coordinator called the task off. Terminal.
	Cancelled

	// Delayed means an issue (typically a vehicle breakdown) interrupted the
	// trip. Resuming to InTransit is an explicit coordinator action, never
	// automatic.
	Delayed
)

var statusStrings = map[Status]string{
	StatusUnknown: "Unknown",
	Scheduled:     "Scheduled",
	InTransit:     "InTransit",
	Delivered:     "Delivered",
	Cancelled:     "Cancelled",
	Delayed:       "Delayed",
}

var transitions = map[Status][]Status{
	Scheduled: {InTransit, Cancelled},
	InTransit: {Delivered, Delayed, Cancelled},
	Delayed:   {InTransit, Cancelled},
	Delivered: {},
	Cancelled: {},
}

// StatusFromString parses a wire-format status name ("InTransit").
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a transport task status", s))
}

// Validate checks the status is a defined, non-zero value.
func (s Status) Validate() error {
	if _, ok := statusStrings[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether target is a legal successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Transition validates and performs a move to target.
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError("transport task", s.String(), target.String())
	}
	return target, nil
}

// IsActive reports whether the task still commits its driver and vehicle.
// Delayed counts as active: the resources stay with the task until it is
// delivered or cancelled.
func (s Status) IsActive() bool {
	return s == Scheduled || s == InTransit || s == Delayed
}

// IsTerminal reports whether no further transitions exist from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
