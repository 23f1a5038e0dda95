package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrObjectNotFound      = errors.New("object not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrMissingPrerequisite = errors.New("missing prerequisite")
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrSchedulingConflict  = errors.New("scheduling conflict")
	ErrCodeMismatch        = errors.New("code mismatch")
)

// sanitize flattens newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named entity.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// UnauthorizedError indicates the actor's role may not perform the action,
// or the actor does not own the entity it is trying to mutate.
type UnauthorizedError struct {
	Role   string
	Action string
	Cause  error
}

// NewUnauthorizedError creates an UnauthorizedError for a role attempting an action.
func NewUnauthorizedError(role, action string) *UnauthorizedError {
	return &UnauthorizedError{Role: role, Action: action}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping a cause.
func NewUnauthorizedErrorWithCause(role, action string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Role: role, Action: action, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: role %s may not %s (cause: %s)",
			ErrUnauthorized, e.Role, e.Action, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: role %s may not %s", ErrUnauthorized, e.Role, e.Action))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidTransitionError indicates a requested status is not a legal successor
// of the current status in the entity's transition table.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

// NewInvalidTransitionError creates an InvalidTransitionError for an entity kind.
func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s",
		ErrInvalidTransition, e.Entity, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// MissingPrerequisiteError indicates a transition requires an attribute that
// has not been set yet, e.g. shipping a batch with no destination warehouse.
type MissingPrerequisiteError struct {
	ParamName string
	Detail    string
}

// NewMissingPrerequisiteError creates a MissingPrerequisiteError for the named attribute.
func NewMissingPrerequisiteError(paramName, detail string) *MissingPrerequisiteError {
	return &MissingPrerequisiteError{ParamName: paramName, Detail: detail}
}

func (e *MissingPrerequisiteError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s (%s)", ErrMissingPrerequisite, e.ParamName, e.Detail))
}

func (e *MissingPrerequisiteError) Unwrap() error {
	return ErrMissingPrerequisite
}

// ResourceUnavailableError indicates a driver or vehicle is not in a status
// that allows a new assignment.
type ResourceUnavailableError struct {
	Kind   string
	ID     string
	Status string
}

// NewResourceUnavailableError creates a ResourceUnavailableError for a resource kind.
func NewResourceUnavailableError(kind, id, status string) *ResourceUnavailableError {
	return &ResourceUnavailableError{Kind: kind, ID: id, Status: status}
}

func (e *ResourceUnavailableError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s is %s", ErrResourceUnavailable, e.Kind, e.ID, e.Status))
}

func (e *ResourceUnavailableError) Unwrap() error {
	return ErrResourceUnavailable
}

// SchedulingConflictError indicates a driver or vehicle already holds an
// active transport task on the requested date, or a concurrent writer won
// the race for the same resource.
type SchedulingConflictError struct {
	Kind string
	ID   string
	Date string
}

// NewSchedulingConflictError creates a SchedulingConflictError for a resource kind.
func NewSchedulingConflictError(kind, id, date string) *SchedulingConflictError {
	return &SchedulingConflictError{Kind: kind, ID: id, Date: date}
}

func (e *SchedulingConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s already committed on %s",
		ErrSchedulingConflict, e.Kind, e.ID, e.Date))
}

func (e *SchedulingConflictError) Unwrap() error {
	return ErrSchedulingConflict
}

// CodeMismatchError indicates a scanned tracking code does not match the
// canonical code of the batch a transport task carries. Security relevant.
type CodeMismatchError struct {
	Scanned string
}

// NewCodeMismatchError creates a CodeMismatchError recording the scanned value.
// The canonical code is deliberately not included in the message.
func NewCodeMismatchError(scanned string) *CodeMismatchError {
	return &CodeMismatchError{Scanned: scanned}
}

func (e *CodeMismatchError) Error() string {
	return sanitize(fmt.Sprintf("%s: scanned code %q does not match batch", ErrCodeMismatch, e.Scanned))
}

func (e *CodeMismatchError) Unwrap() error {
	return ErrCodeMismatch
}
