package pool

import "github.com/KirkDiggler/dicebag/internal/models"

// GetOrCreatePublicPoolInput contains parameters for loading a public pool
type GetOrCreatePublicPoolInput struct {
	DieType models.DieType
}

// GetOrCreateUserPoolInput contains parameters for loading a user pool
type GetOrCreateUserPoolInput struct {
	UserID  string
	DieType models.DieType
}

// ReplacePoolNumbersInput contains parameters for replacing a pool's contents
type ReplacePoolNumbersInput struct {
	// PoolID is the store key of the pool to overwrite
	PoolID string

	// Numbers fully replaces the stored sequence; never merged
	Numbers []int
}
