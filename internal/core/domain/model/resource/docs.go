// Package resource contains the Driver and Vehicle aggregates, the scarce
// transport resources allocated by the scheduler.
//
// Both carry an availability status that must mirror the task table: a driver
// or vehicle is busy exactly when it is referenced by an active transport
// task. Only the scheduler flips these statuses, and it releases a resource
// back to Available only after confirming no other active task still holds it.
package resource
