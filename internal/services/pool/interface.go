package pool

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dicebag/internal/services/pool Service

// Service defines the interface for pool-backed dice operations
type Service interface {
	// GetNumbers draws a quantity of random numbers for a die type,
	// refilling the backing pool from the provider as needed
	GetNumbers(ctx context.Context, input *GetNumbersInput) (*GetNumbersOutput, error)

	// GetPoolStatus reports the remaining count and last refill time of
	// every pool in the caller's tier
	GetPoolStatus(ctx context.Context, input *GetPoolStatusInput) (*GetPoolStatusOutput, error)

	// GetStats reports service counters and the caller's quota standing
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
}
