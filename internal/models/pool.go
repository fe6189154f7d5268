package models

import (
	"time"
)

// Pool represents a reservoir of pre-fetched random numbers for one die type,
// scoped either to the shared public tier or to a single user
type Pool struct {
	// ID is the store key for the pool
	ID string

	// UserID is the owning user, empty for the public pool
	UserID string

	// DieType is the die this pool serves
	DieType DieType

	// Numbers holds the unused random numbers in FIFO order
	Numbers []int

	// LastRefill is when the pool contents were last replaced
	LastRefill time.Time

	// CreatedAt is when the pool was created
	CreatedAt time.Time

	// UpdatedAt is when the pool was last written
	UpdatedAt time.Time
}

// PoolStatus is a read-only snapshot of one pool's state
type PoolStatus struct {
	// Remaining is the number of unused values left in the pool
	Remaining int

	// LastRefill is when the pool was last refilled
	LastRefill time.Time
}
