package pool

import (
	"time"

	"github.com/KirkDiggler/dicebag/internal/common/clock"
	"github.com/KirkDiggler/dicebag/internal/models"
	"github.com/KirkDiggler/dicebag/internal/randomorg"
	poolRepo "github.com/KirkDiggler/dicebag/internal/repositories/pool"
	"github.com/KirkDiggler/dicebag/internal/services/tracker"
)

// Config holds configuration for the pool manager service
type Config struct {
	// PoolRepo persists the pools
	PoolRepo poolRepo.Repository

	// Tracker enforces the anonymous daily quota
	Tracker tracker.Service

	// RandomClient fetches refill batches from the provider
	RandomClient randomorg.Client

	// Clock, defaults to the system clock
	Clock clock.Clock

	// PublicPoolSize is the refill batch size for the shared public pools
	PublicPoolSize int

	// UserPoolSize is the refill batch size for per-user pools
	UserPoolSize int

	// MaxDicePerType caps a single request's quantity for one die type
	MaxDicePerType int
}

// GetNumbersInput contains parameters for drawing numbers
type GetNumbersInput struct {
	// DieType is the die to roll
	DieType models.DieType

	// Quantity is how many numbers to draw
	Quantity int

	// UserID selects the caller's private pool; empty uses the public pool
	UserID string

	// Identity is the anonymous caller's network identity, used for the
	// daily quota; ignored when UserID is set
	Identity string
}

// GetNumbersOutput contains the drawn numbers in FIFO pool order
type GetNumbersOutput struct {
	Numbers []int
}

// GetPoolStatusInput contains parameters for the pool status snapshot
type GetPoolStatusInput struct {
	// UserID selects the user's pools; empty reports the public pools
	UserID string
}

// GetPoolStatusOutput contains per-die-type pool snapshots
type GetPoolStatusOutput struct {
	Pools map[models.DieType]models.PoolStatus
}

// GetStatsInput contains parameters for the stats snapshot
type GetStatsInput struct {
	// Identity scopes the usage portion of the stats
	Identity string
}

// GetStatsOutput contains service counters and quota standing
type GetStatsOutput struct {
	// TotalRolls is the number of dice served since startup
	TotalRolls int64

	// TotalAPICalls is the number of provider refill calls since startup
	TotalAPICalls int64

	// LastRefill maps pool keys to their most recent in-process refill
	LastRefill map[string]time.Time

	// Usage is the caller's quota standing
	Usage *models.UsageStats
}
