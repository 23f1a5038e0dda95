// Package transport contains the TransportTask aggregate and TransportIssue
// entity.
//
// A transport task assigns one driver and one vehicle to move one crop batch
// between two locations. Its lifecycle (Scheduled → InTransit → Delivered /
// Cancelled / Delayed) is driven by scanned pickup and delivery confirmations
// and by issue reports, and is deliberately decoupled from the batch's own
// status: a driver confirming delivery never marks the batch received. The
// warehouse does that with its own confirmation, preserving the custody
// chain.
package transport
