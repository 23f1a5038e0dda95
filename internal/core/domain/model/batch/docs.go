// Package batch contains the CropBatch aggregate, the central entity of the
// supply-chain workflow.
//
// A crop batch moves through a closed, ordered set of statuses from Planted
// to Stored. The legal moves are captured in a single transition table
// (see status.go); the aggregate refuses any status change that is not a
// direct successor of its current status, and refuses to ship without a
// destination warehouse. Which roles may request which transitions is decided
// separately by the role gate in the services package; the aggregate only
// knows what is structurally legal, not who is asking.
package batch
