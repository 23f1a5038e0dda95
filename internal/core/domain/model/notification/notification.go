// Package notification contains the Notification entity written by the
// fan-out dispatcher. Notifications are append-only: nothing mutates after
// creation except the read and dispatched flags.
package notification

import (
	"errors"
	"fmt"
	"time"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/pkg/errs"
	"agrotrace/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created via NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification")

// Type is the stable notification type carried to clients for routing.
type Type int

const (
	TypeUnknown Type = iota

	// BatchReadyForHarvest tells procurement a batch reached ReadyForHarvest.
	BatchReadyForHarvest

	// BatchProcessed tells procurement a batch was accepted into Processed.
	BatchProcessed

	// BatchShipped tells coordinators and the destination warehouse managers
	// a batch left the processing stage.
	BatchShipped

	// TransportScheduled tells the coordinator and the destination warehouse
	// managers that a transport task was created for a batch.
	TransportScheduled

	// TransportIssueReported tells the owning coordinator an issue was filed.
	TransportIssueReported
)

var typeStrings = map[Type]string{
	TypeUnknown:            "Unknown",
	BatchReadyForHarvest:   "BATCH_READY_FOR_HARVEST",
	BatchProcessed:         "BATCH_PROCESSED",
	BatchShipped:           "BATCH_SHIPPED",
	TransportScheduled:     "TRANSPORT_SCHEDULED",
	TransportIssueReported: "TRANSPORT_ISSUE_REPORTED",
}

// Validate checks the type is a defined, non-zero value.
func (t Type) Validate() error {
	if _, ok := typeStrings[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("notificationType",
			fmt.Errorf("%d is not a valid notification type", t))
	}
	return nil
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if str, ok := typeStrings[t]; ok {
		return str
	}
	return "Unknown"
}

// Metadata carries the batch identifiers clients use for deep-linking.
type Metadata struct {
	BatchID      string `json:"batchId"`
	TrackingCode string `json:"trackingCode"`
	TaskID       string `json:"taskId,omitempty"`
}

// Notification is one fan-out message for one recipient.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	kind        Type
	title       string
	message     string
	metadata    Metadata
	read        bool
	dispatched  bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates an unread notification.
func NewNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	kind Type,
	title string,
	message string,
	metadata Metadata,
	now time.Time,
) (*Notification, error) {
	if err := errors.Join(id.Validate(), recipientID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Notification{
		id:          id,
		recipientID: recipientID,
		kind:        kind,
		title:       title,
		message:     message,
		metadata:    metadata,
		createdAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	kind Type,
	title string,
	message string,
	metadata Metadata,
	read bool,
	dispatched bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, recipientID, kind, title, message, metadata, createdAt)
	if err != nil {
		return nil, err
	}
	n.read = read
	n.dispatched = dispatched
	return n, nil
}

// Validate ensures the notification was built through a constructor.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// RecipientID returns who the notification is addressed to.
func (n *Notification) RecipientID() kernel.UUID { return n.recipientID }

// Kind returns the stable notification type.
func (n *Notification) Kind() Type { return n.kind }

// Title returns the short human-readable title.
func (n *Notification) Title() string { return n.title }

// Message returns the human-readable body.
func (n *Notification) Message() string { return n.message }

// Meta returns the deep-link payload.
func (n *Notification) Meta() Metadata { return n.metadata }

// IsRead reports whether the recipient has read the notification.
func (n *Notification) IsRead() bool { return n.read }

// IsDispatched reports whether delivery to the recipient's channel succeeded.
func (n *Notification) IsDispatched() bool { return n.dispatched }

// CreatedAt returns the creation time.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// MarkRead flips the read flag.
func (n *Notification) MarkRead() {
	n.read = true
}

// MarkDispatched records a successful delivery. The relay job skips
// dispatched notifications, so a failed delivery is retried later.
func (n *Notification) MarkDispatched() {
	n.dispatched = true
}
