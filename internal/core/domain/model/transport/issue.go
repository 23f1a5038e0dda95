package transport

import (
	"errors"
	"fmt"
	"time"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/errs"
	"agrotrace/internal/pkg/guard"
)

// ErrTransportIssueIsNotConstructed is returned when a TransportIssue was not
// created through NewTransportIssue or RestoreTransportIssue.
var ErrTransportIssueIsNotConstructed = errors.New(
	"TransportIssue must be created via NewTransportIssue or RestoreTransportIssue")

// IssueType classifies a reported transport problem.
type IssueType int

const (
	IssueTypeUnknown IssueType = iota

	// VehicleBreakdown forces the owning task into Delayed.
	VehicleBreakdown

	TrafficDelay
	WeatherDelay
	Accident
	OtherIssue
)

var issueTypeStrings = map[IssueType]string{
	IssueTypeUnknown: "Unknown",
	VehicleBreakdown: "VehicleBreakdown",
	TrafficDelay:     "TrafficDelay",
	WeatherDelay:     "WeatherDelay",
	Accident:         "Accident",
	OtherIssue:       "Other",
}

// IssueTypeFromString parses a wire-format issue type name.
func IssueTypeFromString(s string) (IssueType, error) {
	for it, name := range issueTypeStrings {
		if name == s && it != IssueTypeUnknown {
			return it, nil
		}
	}
	return IssueTypeUnknown, errs.NewValueIsInvalidErrorWithCause("issueType",
		fmt.Errorf("%q is not an issue type", s))
}

// Validate checks the type is a defined, non-zero value.
func (t IssueType) Validate() error {
	if _, ok := issueTypeStrings[t]; !ok || t == IssueTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("issueType",
			fmt.Errorf("%d is not a valid issue type", t))
	}
	return nil
}

// String implements fmt.Stringer.
func (t IssueType) String() string {
	if str, ok := issueTypeStrings[t]; ok {
		return str
	}
	return "Unknown"
}

// ForcesDelay reports whether reporting this issue type must push the owning
// task into Delayed.
func (t IssueType) ForcesDelay() bool {
	return t == VehicleBreakdown
}

// IssueStatus tracks the handling of a reported issue.
type IssueStatus int

const (
	IssueStatusUnknown IssueStatus = iota
	IssueOpen
	IssueInProgress
	IssueResolved
	IssueEscalated
)

var issueStatusStrings = map[IssueStatus]string{
	IssueStatusUnknown: "Unknown",
	IssueOpen:          "Open",
	IssueInProgress:    "InProgress",
	IssueResolved:      "Resolved",
	IssueEscalated:     "Escalated",
}

// Validate checks the status is a defined, non-zero value.
func (s IssueStatus) Validate() error {
	if _, ok := issueStatusStrings[s]; !ok || s == IssueStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("issueStatus",
			fmt.Errorf("%d is not a valid issue status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s IssueStatus) String() string {
	if str, ok := issueStatusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// TransportIssue records a problem reported against a transport task by its
// driver or coordinator.
type TransportIssue struct {
	id          kernel.UUID
	taskID      kernel.UUID
	reporterID  kernel.UUID
	issueType   IssueType
	status      IssueStatus
	description string
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewTransportIssue creates an issue in Open status.
func NewTransportIssue(
	id kernel.UUID,
	taskID kernel.UUID,
	reporterID kernel.UUID,
	issueType IssueType,
	description string,
	now time.Time,
) (*TransportIssue, error) {
	if err := errors.Join(
		id.Validate(),
		taskID.Validate(),
		reporterID.Validate(),
		issueType.Validate(),
	); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}

	return &TransportIssue{
		id:          id,
		taskID:      taskID,
		reporterID:  reporterID,
		issueType:   issueType,
		status:      IssueOpen,
		description: description,
		createdAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreTransportIssue reconstructs an issue from persistence.
func RestoreTransportIssue(
	id kernel.UUID,
	taskID kernel.UUID,
	reporterID kernel.UUID,
	issueType IssueType,
	status IssueStatus,
	description string,
	createdAt time.Time,
) (*TransportIssue, error) {
	if err := errors.Join(
		id.Validate(),
		taskID.Validate(),
		reporterID.Validate(),
		issueType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &TransportIssue{
		id:          id,
		taskID:      taskID,
		reporterID:  reporterID,
		issueType:   issueType,
		status:      status,
		description: description,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the issue was built through a constructor.
func (i *TransportIssue) Validate() error {
	if i == nil {
		return ErrTransportIssueIsNotConstructed
	}
	return i.guard.Validate(ErrTransportIssueIsNotConstructed)
}

// ID returns the issue's unique identifier.
func (i *TransportIssue) ID() kernel.UUID { return i.id }

// TaskID returns the transport task the issue was reported against.
func (i *TransportIssue) TaskID() kernel.UUID { return i.taskID }

// ReporterID returns who reported the issue.
func (i *TransportIssue) ReporterID() kernel.UUID { return i.reporterID }

// Type returns the issue classification.
func (i *TransportIssue) Type() IssueType { return i.issueType }

// Status returns the issue handling status.
func (i *TransportIssue) Status() IssueStatus { return i.status }

// Description returns the reporter's free-form description.
func (i *TransportIssue) Description() string { return i.description }

// CreatedAt returns when the issue was reported.
func (i *TransportIssue) CreatedAt() time.Time { return i.createdAt }
