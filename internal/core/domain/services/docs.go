// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the supply-chain workflow.
// It implements business logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - RoleGate: the single authorization point deciding which role may
//     perform which action and which batch status transitions
//   - TransportScheduler: allocation of drivers and vehicles to transport
//     tasks, conflict detection, and the resource release policy
//
// Domain services coordinate between aggregates; they hold no state of
// their own and perform no I/O. Command handlers load the aggregates,
// call the services, and persist the results.
package services
