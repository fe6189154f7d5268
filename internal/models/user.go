package models

import (
	"time"
)

// MaxRollHistoryEntries caps the per-user roll history list
const MaxRollHistoryEntries = 200

// User represents a registered account with its own dice pools
type User struct {
	// ID is the unique identifier for the user
	ID string

	// Name is the display name of the user
	Name string

	// Email is the user's login email, stored lowercase
	Email string

	// Avatar is an optional avatar URL
	Avatar string

	// PasswordHash is the bcrypt hash of the user's password
	PasswordHash string

	// CreatedAt is when the user registered
	CreatedAt time.Time

	// UpdatedAt is when the user was last updated
	UpdatedAt time.Time
}

// RollHistoryEntry is one saved roll in a user's bounded history
type RollHistoryEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// Timestamp is when the roll happened
	Timestamp time.Time

	// DiceRolled describes the dice rolled, e.g. "2d6 + 1d20"
	DiceRolled string

	// Total is the sum of all dice in the roll
	Total int

	// Details holds the individual die results
	Details []RollDetail
}

// RollDetail is the per-die-type breakdown of a history entry
type RollDetail struct {
	// DieType is the die that was rolled
	DieType DieType

	// Results are the individual values rolled
	Results []int
}
