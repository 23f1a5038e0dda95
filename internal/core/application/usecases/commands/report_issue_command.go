package commands

import (
	"errors"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/transport"
	"agrotrace/internal/pkg/errs"
	"agrotrace/internal/pkg/guard"
)

var ErrReportIssueCommandIsNotConstructed = errors.New(
	"ReportIssueCommand must be created via NewReportIssueCommand constructor",
)

// ReportIssueCommand represents a driver or coordinator filing an issue
// against a transport task.
type ReportIssueCommand struct { //nolint:recvcheck //using for validation
	actorID     kernel.UUID
	taskID      kernel.UUID
	issueType   transport.IssueType
	description string

	guard guard.ConstructorGuard
}

// NewReportIssueCommand creates a command to report a transport issue.
func NewReportIssueCommand(
	actorID kernel.UUID,
	taskID kernel.UUID,
	issueType transport.IssueType,
	description string,
) (ReportIssueCommand, error) {
	command := ReportIssueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setTaskID(taskID),
		command.setIssue(issueType, description),
	); err != nil {
		return ReportIssueCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

// ActorID returns the reporter.
func (c ReportIssueCommand) ActorID() kernel.UUID {
	return c.actorID
}

// TaskID returns the task the issue is filed against.
func (c ReportIssueCommand) TaskID() kernel.UUID {
	return c.taskID
}

// IssueType returns the issue category.
func (c ReportIssueCommand) IssueType() transport.IssueType {
	return c.issueType
}

// Description returns the reporter's account of the problem.
func (c ReportIssueCommand) Description() string {
	return c.description
}

func (c *ReportIssueCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ReportIssueCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *ReportIssueCommand) setIssue(issueType transport.IssueType, description string) error {
	if err := issueType.Validate(); err != nil {
		return err
	}
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.issueType = issueType
	c.description = description
	return nil
}
