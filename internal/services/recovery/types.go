package recovery

import (
	"time"

	"github.com/KirkDiggler/dicebag/internal/common/clock"
	"github.com/KirkDiggler/dicebag/internal/models"
	poolRepo "github.com/KirkDiggler/dicebag/internal/repositories/pool"
	poolService "github.com/KirkDiggler/dicebag/internal/services/pool"
)

// Config holds configuration for the recovery service
type Config struct {
	// PoolRepo creates missing public pools at startup
	PoolRepo poolRepo.Repository

	// PoolService supplies status and stats for health checks
	PoolService poolService.Service

	// Clock, defaults to the system clock
	Clock clock.Clock

	// LowPoolThreshold marks pools with fewer remaining numbers as low
	LowPoolThreshold int
}

// HealthCheckOutput reports pool health for external alerting
type HealthCheckOutput struct {
	// Healthy is false when pool state could not be read
	Healthy bool

	// Pools holds the per-die-type public pool snapshots
	Pools map[models.DieType]models.PoolStatus

	// LowPools lists die types whose remaining count is below threshold
	LowPools []models.DieType

	// Usage is the anonymous-tier quota configuration snapshot
	Usage *models.UsageStats

	// Timestamp is when the check ran
	Timestamp time.Time
}
