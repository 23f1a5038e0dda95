// Package staff defines the actors of the supply chain and their roles,
// plus the Warehouse entity that scopes warehouse-manager actors.
//
// Five roles partition the workflow, one per stage: Farmer (field
// collection), Procurement (review), Coordinator (transport coordination),
// Driver (transport execution), and WarehouseManager (receipt). The role
// gate in the services package decides what each role may do.
package staff
