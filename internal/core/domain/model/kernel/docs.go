// Package kernel contains shared value objects used across the domain model.
//
// Value objects here are immutable, validated at construction, and safe for
// concurrent use. The zero value of each type is invalid; instances must be
// created through the provided constructor functions.
package kernel
